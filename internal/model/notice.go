package model

import "time"

// Notice is an announcement shown on the notice board.
type Notice struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	Active    bool      `json:"active"`
}
