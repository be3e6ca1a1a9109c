package models

// Testimonial is a customer review with a 1-5 rating.
type Testimonial struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Rate     FlexInt `json:"rate"`
	Feedback string  `json:"feedback"`
}

// EntityID implements resource.Entity.
func (t Testimonial) EntityID() int64 { return t.ID }
