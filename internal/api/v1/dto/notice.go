package dto

// NoticeCreateDTO is the request body for publishing a notice.
type NoticeCreateDTO struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Priority string `json:"priority" validate:"required"`
}
