package dto

// CourseCreateDTO is the request body for creating a course.
type CourseCreateDTO struct {
	Name        string   `json:"name" validate:"required"`
	Stream      string   `json:"stream" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Duration    string   `json:"duration" validate:"required"`
	Features    []string `json:"features" validate:"required"`
}
