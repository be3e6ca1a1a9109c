package models

// BlogStatus is the publication state of a post.
type BlogStatus string

const (
	BlogPublish BlogStatus = "publish"
	BlogDraft   BlogStatus = "draft"
)

// Blog is a blog post as returned by the rental API. Content is HTML
// authored in the admin editor; it is sanitized before render.
type Blog struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Status        BlogStatus `json:"status"`
	Image         string     `json:"image"`
	DatePublished string     `json:"date_published"`
	Slug          string     `json:"slug"`
}

// EntityID implements resource.Entity.
func (b Blog) EntityID() int64 { return b.ID }

// ImageRef implements resource.ImageBearer.
func (b Blog) ImageRef() string { return b.Image }

// IsPublished reports whether the post is publicly visible.
func (b Blog) IsPublished() bool { return b.Status == BlogPublish }
