package web

import (
	"net/url"
	"strings"

	"github.com/sewakita/rentweb/internal/models"
)

// HomeData is the aggregate payload of the backend's /web/home endpoint.
type HomeData struct {
	Gallery   []models.Gallery     `json:"gallery"`
	Mobil     []models.Car         `json:"mobil"`
	Testimoni []models.Testimonial `json:"testimoni"`
	FAQ       []models.FAQ         `json:"faq"`
}

// CarFilters are the public listing filters, forwarded verbatim to the API.
type CarFilters struct {
	Search       string
	Seat         string
	Merk         string
	Transmission string
	Page         string
}

// Query encodes the non-empty filters as API query parameters.
func (f CarFilters) Query() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val = strings.TrimSpace(val); val != "" {
			v.Set(key, val)
		}
	}
	set("search", f.Search)
	set("seat", f.Seat)
	set("merk", f.Merk)
	set("transmission", f.Transmission)
	set("page", f.Page)
	return v
}

// TestimonialDTO is the public review submission payload.
type TestimonialDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Rate     string `json:"rate"`
	Feedback string `json:"feedback"`
}
