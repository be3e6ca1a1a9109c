package models

// FAQ is a question/answer entry. The backend names the fields title and
// description.
type FAQ struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// EntityID implements resource.Entity.
func (f FAQ) EntityID() int64 { return f.ID }
