package model

import "time"

// Inquiry is an admission inquiry submitted from the contact form.
// Status is free text; only the bootstrap value "new" and whatever the admin
// sets via the status update endpoint ever appear.
type Inquiry struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Email            *string   `json:"email"`
	CourseInterested string    `json:"course_interested"`
	Message          *string   `json:"message"`
	CreatedAt        time.Time `json:"created_at"`
	Status           string    `json:"status"`
}
