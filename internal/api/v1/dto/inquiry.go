package dto

// InquiryCreateDTO is the request body for submitting an admission inquiry.
type InquiryCreateDTO struct {
	Name             string  `json:"name" validate:"required"`
	Phone            string  `json:"phone" validate:"required"`
	Email            *string `json:"email" validate:"omitempty,email"`
	CourseInterested string  `json:"course_interested" validate:"required"`
	Message          *string `json:"message"`
}
