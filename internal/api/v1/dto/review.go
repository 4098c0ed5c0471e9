package dto

// ReviewCreateDTO is the request body for submitting a review. Rating is a
// pointer so that an explicit 0 is distinguishable from a missing field; the
// value itself is deliberately unbounded.
type ReviewCreateDTO struct {
	Name    string `json:"name" validate:"required"`
	Rating  *int   `json:"rating" validate:"required"`
	Comment string `json:"comment" validate:"required"`
	Course  string `json:"course" validate:"required"`
}
