package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sewakita/rentweb/internal/config"
	"github.com/sewakita/rentweb/internal/pkg/pagination"
	"github.com/sewakita/rentweb/internal/pkg/view"
	"go.uber.org/zap"
)

const homeGallerySlide = 4

// Handler serves the public marketing pages: read-only renders of what the
// API returns, plus the public testimonial form.
type Handler struct {
	svc    *Service
	render *view.Renderer
	site   config.SiteConfig
	logger *zap.Logger
}

// NewHandler creates the public site handler.
func NewHandler(svc *Service, render *view.Renderer, site config.SiteConfig, logger *zap.Logger) *Handler {
	return &Handler{
		svc:    svc,
		render: render,
		site:   site,
		logger: logger,
	}
}

// RegisterRoutes mounts the public pages.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.home)
	r.GET("/cars", h.cars)
	r.GET("/blog", h.blogs)
	r.GET("/blog/:slug", h.blogDetail)
	r.GET("/faq", h.faqs)
	r.GET("/testimonials", h.testimonials)
	r.POST("/testimonials", h.submitTestimonial)
	r.GET("/contact", h.contact)
}

// GET /
func (h *Handler) home(c *gin.Context) {
	data, err := h.svc.Home(c.Request.Context())
	if err != nil {
		h.logger.Warn("home fetch failed", zap.Error(err))
		h.render.HTML(c, http.StatusOK, "web/home.html", gin.H{
			"Title": h.site.Name,
			"Error": "Gagal memuat data. Coba muat ulang halaman.",
		})
		return
	}

	// The gallery renders as slides of four.
	gq := pagination.FromContext(c, homeGallerySlide)
	gq.Size = homeGallerySlide
	slide, meta := pagination.Slice(data.Gallery, gq)

	h.render.HTML(c, http.StatusOK, "web/home.html", gin.H{
		"Title":        h.site.Name,
		"Gallery":      slide,
		"GalleryMeta":  meta,
		"Cars":         data.Mobil,
		"Testimonials": data.Testimoni,
		"FAQs":         data.FAQ,
	})
}

// GET /cars?search=&seat=&merk=&transmission=&page=
func (h *Handler) cars(c *gin.Context) {
	filters := CarFilters{
		Search:       c.Query("search"),
		Seat:         c.Query("seat"),
		Merk:         c.Query("merk"),
		Transmission: c.Query("transmission"),
		Page:         c.Query("page"),
	}

	// Each request fetches its own list; no state is shared between
	// visitors, so concurrent searches cannot see each other's results.
	cars, err := h.svc.Cars(c.Request.Context(), filters)
	data := gin.H{
		"Title":   "Daftar Mobil",
		"Cars":    cars,
		"Filters": filters,
	}
	if err != nil {
		h.logger.Warn("car listing failed", zap.Error(err))
		data["Error"] = "Gagal mengambil data mobil."
	}
	h.render.HTML(c, http.StatusOK, "web/cars.html", data)
}

// GET /blog?page=N: client-side pagination over the full list
func (h *Handler) blogs(c *gin.Context) {
	blogs, err := h.svc.Blogs(c.Request.Context())
	if err != nil {
		h.logger.Warn("blog list failed", zap.Error(err))
		h.render.HTML(c, http.StatusOK, "web/blogs.html", gin.H{
			"Title": "Blog",
			"Error": "Gagal memuat artikel.",
		})
		return
	}

	q := pagination.FromContext(c, h.site.PageSize)
	page, meta := pagination.Slice(blogs, q)
	h.render.HTML(c, http.StatusOK, "web/blogs.html", gin.H{
		"Title": "Blog",
		"Blogs": page,
		"Meta":  meta,
	})
}

// GET /blog/:slug
func (h *Handler) blogDetail(c *gin.Context) {
	blog, err := h.svc.BlogBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.render.HTML(c, http.StatusNotFound, "web/blog_detail.html", gin.H{
			"Title": "Artikel tidak ditemukan",
			"Error": "Artikel tidak ditemukan.",
		})
		return
	}
	h.render.HTML(c, http.StatusOK, "web/blog_detail.html", gin.H{
		"Title": blog.Title,
		"Blog":  blog,
	})
}

// GET /faq?search=
func (h *Handler) faqs(c *gin.Context) {
	keyword := c.Query("search")
	faqs, err := h.svc.FAQs(c.Request.Context(), keyword)
	data := gin.H{
		"Title":   "FAQ",
		"FAQs":    faqs,
		"Keyword": keyword,
	}
	if err != nil {
		h.logger.Warn("faq fetch failed", zap.Error(err))
		data["Error"] = "Gagal memuat FAQ."
	}
	h.render.HTML(c, http.StatusOK, "web/faqs.html", data)
}

// GET /testimonials?page=N
func (h *Handler) testimonials(c *gin.Context) {
	items, err := h.svc.Testimonials(c.Request.Context())
	if err != nil {
		h.logger.Warn("testimonial fetch failed", zap.Error(err))
		h.render.HTML(c, http.StatusOK, "web/testimonials.html", gin.H{
			"Title": "Testimoni",
			"Error": "Gagal memuat testimoni.",
		})
		return
	}

	q := pagination.FromContext(c, h.site.PageSize)
	page, meta := pagination.Slice(items, q)
	h.render.HTML(c, http.StatusOK, "web/testimonials.html", gin.H{
		"Title": "Testimoni",
		"Items": page,
		"Meta":  meta,
		"Sent":  c.Query("sent") == "1",
	})
}

// POST /testimonials: public review submission
func (h *Handler) submitTestimonial(c *gin.Context) {
	dto := &TestimonialDTO{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Rate:     c.PostForm("rate"),
		Feedback: c.PostForm("feedback"),
	}
	if err := h.svc.SubmitTestimonial(c.Request.Context(), dto); err != nil {
		h.logger.Warn("testimonial submit failed", zap.Error(err))
		items, _ := h.svc.Testimonials(c.Request.Context())
		page, meta := pagination.Slice(items, pagination.Query{Page: 1, Size: h.site.PageSize})
		h.render.HTML(c, http.StatusUnprocessableEntity, "web/testimonials.html", gin.H{
			"Title": "Testimoni",
			"Items": page,
			"Meta":  meta,
			"Error": "Gagal mengirim testimoni. Pastikan semua data terisi dengan benar.",
			"Form":  dto,
		})
		return
	}
	c.Redirect(http.StatusFound, "/testimonials?sent=1")
}

// GET /contact
func (h *Handler) contact(c *gin.Context) {
	meta, err := h.svc.Contact(c.Request.Context())
	data := gin.H{"Title": "Kontak Kami"}
	if err != nil {
		h.logger.Warn("contact fetch failed", zap.Error(err))
		data["Error"] = "Gagal memuat data kontak."
	} else {
		data["Contact"] = meta
	}
	h.render.HTML(c, http.StatusOK, "web/contact.html", data)
}
