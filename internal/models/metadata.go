package models

// Metadata is the site-wide contact and social profile record. The backend
// keeps at most one; create-or-update is decided by id presence.
type Metadata struct {
	ID          int64  `json:"id"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Facebook    string `json:"facebook"`
	Instagram   string `json:"instagram"`
	Twitter     string `json:"twitter"`
	Linkedin    string `json:"linkedin"`
	WebsiteName string `json:"website_name"`
}

// EntityID implements resource.Entity.
func (m Metadata) EntityID() int64 { return m.ID }
