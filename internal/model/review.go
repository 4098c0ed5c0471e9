package model

import "time"

// Review is a student review. Course is a free-text reference to a course
// name, not a foreign key. Approved is not exposed for mutation via the API.
type Review struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Course    string    `json:"course"`
	CreatedAt time.Time `json:"created_at"`
	Approved  bool      `json:"approved"`
}
