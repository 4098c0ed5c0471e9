package model

import "time"

// Course is one course offering shown on the site.
type Course struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Stream      string    `json:"stream"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Features    []string  `json:"features"`
	CreatedAt   time.Time `json:"created_at"`
}
