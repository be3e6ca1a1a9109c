package models

// Gallery is a photo gallery item.
type Gallery struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

// EntityID implements resource.Entity.
func (g Gallery) EntityID() int64 { return g.ID }

// ImageRef implements resource.ImageBearer.
func (g Gallery) ImageRef() string { return g.Image }
