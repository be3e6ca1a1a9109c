package web

import (
	"context"
	"net/url"

	"github.com/sewakita/rentweb/internal/apiclient"
	"github.com/sewakita/rentweb/internal/models"
)

// Service reads the public endpoints. No authentication, no writes except
// the public testimonial submission.
type Service struct {
	api *apiclient.Client
}

// NewService creates the public site service.
func NewService(api *apiclient.Client) *Service {
	return &Service{api: api}
}

// Home fetches the landing page aggregate.
func (s *Service) Home(ctx context.Context) (*HomeData, error) {
	var data HomeData
	if err := s.api.Get(ctx, "/web/home", "", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Cars fetches the car listing with filters forwarded to the API.
func (s *Service) Cars(ctx context.Context, f CarFilters) ([]models.Car, error) {
	var cars []models.Car
	if err := s.api.Get(ctx, "/web/mobil", "", f.Query(), &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// Blogs fetches published posts.
func (s *Service) Blogs(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := s.api.Get(ctx, "/web/blog", "", nil, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// BlogBySlug fetches one post.
func (s *Service) BlogBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	var blog models.Blog
	if err := s.api.Get(ctx, "/web/blog/"+url.PathEscape(slug), "", nil, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// FAQs fetches entries, optionally filtered by a search keyword.
func (s *Service) FAQs(ctx context.Context, search string) ([]models.FAQ, error) {
	var q url.Values
	if search != "" {
		q = url.Values{"search": {search}}
	}
	var faqs []models.FAQ
	if err := s.api.Get(ctx, "/web/faq", "", q, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

// Contact fetches the site metadata shown on the contact page.
func (s *Service) Contact(ctx context.Context) (*models.Metadata, error) {
	var meta models.Metadata
	if err := s.api.Get(ctx, "/web/kontak", "", nil, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Testimonials fetches public reviews.
func (s *Service) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	var items []models.Testimonial
	if err := s.api.Get(ctx, "/web/testimoni", "", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SubmitTestimonial sends a public review.
func (s *Service) SubmitTestimonial(ctx context.Context, dto *TestimonialDTO) error {
	return s.api.PostJSON(ctx, "/web/testimoni", "", dto, nil)
}
