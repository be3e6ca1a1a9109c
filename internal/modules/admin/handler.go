package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sewakita/rentweb/internal/apiclient"
	"github.com/sewakita/rentweb/internal/models"
	"github.com/sewakita/rentweb/internal/pkg/view"
	"github.com/sewakita/rentweb/internal/resource"
	"github.com/sewakita/rentweb/internal/session"
	"go.uber.org/zap"
)

// NavItem is one sidebar entry.
type NavItem struct {
	Name  string
	Label string
	Href  string
}

// Handler serves the admin console: dashboard plus one CRUD screen per
// resource, all driven by the same workflow.
type Handler struct {
	api       *apiclient.Client
	resources map[string]Resource
	sessions  *session.Manager
	render    *view.Renderer
	logger    *zap.Logger
	nav       []NavItem
}

// NewHandler creates the admin handler.
func NewHandler(api *apiclient.Client, resources map[string]Resource, sessions *session.Manager, render *view.Renderer, logger *zap.Logger) *Handler {
	h := &Handler{api: api, resources: resources, sessions: sessions, render: render, logger: logger}
	h.nav = append(h.nav, NavItem{Name: "dashboard", Label: "Dashboard", Href: "/admin/dashboard"})
	for _, name := range Order {
		if res, ok := resources[name]; ok {
			h.nav = append(h.nav, NavItem{Name: name, Label: res.Schema().Label, Href: "/admin/" + name})
		}
	}
	return h
}

// RegisterRoutes mounts the console behind the login guard.
func (h *Handler) RegisterRoutes(r *gin.Engine, authMW gin.HandlerFunc) {
	g := r.Group("/admin", authMW)

	g.GET("", func(c *gin.Context) { c.Redirect(http.StatusFound, "/admin/dashboard") })
	g.GET("/dashboard", h.dashboard)

	for name, res := range h.resources {
		res := res
		g.GET("/"+name, h.page(res))
		g.POST("/"+name, h.submit(res))
		g.GET("/"+name+"/:id/delete", h.confirmDelete(res))
		g.POST("/"+name+"/:id/delete", h.delete(res))
	}
}

// GET /admin/dashboard
func (h *Handler) dashboard(c *gin.Context) {
	st := h.sessions.Current(c)

	var dash models.Dashboard
	err := h.api.Get(c.Request.Context(), "/admin/dashboard", st.Token, nil, &dash)
	if err != nil {
		// Only a definite auth failure ends the session; a transient error
		// must not look like a logout.
		if apiclient.IsAuthError(err) {
			h.sessions.Logout(c)
			c.Redirect(http.StatusFound, "/login")
			return
		}
		h.logger.Warn("dashboard fetch failed", zap.Error(err))
		h.render.HTML(c, http.StatusOK, "admin/dashboard.html", gin.H{
			"Title": "Dashboard",
			"Nav":   h.nav,
			"Error": "Gagal memuat data dashboard. Coba lagi.",
		})
		return
	}

	h.render.HTML(c, http.StatusOK, "admin/dashboard.html", gin.H{
		"Title":     "Dashboard",
		"Nav":       h.nav,
		"Dashboard": dash,
	})
}

// GET /admin/:resource: list plus form, in create or edit mode
func (h *Handler) page(res Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := h.sessions.Current(c)
		schema := res.Schema()

		rows, err := res.List(c.Request.Context(), st.Token)
		if err != nil {
			if apiclient.IsAuthError(err) {
				h.sessions.Logout(c)
				c.Redirect(http.StatusFound, "/login")
				return
			}
			// Stale-but-visible: keep whatever the cache held.
			h.sessions.Flash(c, "error", "Gagal memuat data "+schema.Label+".")
			h.logger.Warn("list failed", zap.String("resource", schema.Name), zap.Error(err))
		}

		draft := schema.NewDraft()
		var editingID *int64
		preview := ""

		if raw := c.Query("edit"); raw != "" {
			if id, perr := strconv.ParseInt(raw, 10, 64); perr == nil {
				if d, p, ok := res.BeginEdit(id); ok {
					draft, preview, editingID = d, p, &id
				} else {
					h.sessions.Flash(c, "error", schema.Label+" tidak ditemukan.")
				}
			}
		} else if schema.Singleton && len(rows) > 0 {
			// Create-or-update is decided by the presence of an id.
			if d, p, ok := res.BeginEdit(rows[0].ID); ok {
				id := rows[0].ID
				draft, preview, editingID = d, p, &id
			}
		}

		h.renderPage(c, res, rows, draft, editingID, preview, http.StatusOK)
	}
}

// POST /admin/:resource: create or update
func (h *Handler) submit(res Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := h.sessions.Current(c)
		schema := res.Schema()

		draft := schema.DraftFromRequest(c)
		var editingID *int64
		if raw := c.PostForm("editing_id"); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id != 0 {
				editingID = &id
			}
		}

		if missing := schema.MissingRequired(draft); len(missing) > 0 {
			h.sessions.Flash(c, "error", "Kolom wajib belum diisi: "+joinComma(missing))
			h.renderPage(c, res, res.Rows(), draft, editingID, "", http.StatusUnprocessableEntity)
			return
		}

		var upload *apiclient.Upload
		if schema.HasImage {
			if fh, err := c.FormFile("image"); err == nil && fh != nil {
				f, err := fh.Open()
				if err != nil {
					h.sessions.Flash(c, "error", "Gagal membaca file gambar.")
					h.renderPage(c, res, res.Rows(), draft, editingID, "", http.StatusUnprocessableEntity)
					return
				}
				defer f.Close()
				upload = &apiclient.Upload{FieldName: "image", Filename: fh.Filename, Content: f}
			}
		}

		err := res.Submit(c.Request.Context(), st.Token, draft, editingID, upload)
		if err != nil {
			if apiclient.IsAuthError(err) {
				h.sessions.Logout(c)
				c.Redirect(http.StatusFound, "/login")
				return
			}
			h.logger.Warn("submit failed", zap.String("resource", schema.Name), zap.Error(err))
			// Preserve the form so the user can retry.
			h.sessions.Flash(c, "error", "Gagal menyimpan data "+schema.Label+".")
			h.renderPage(c, res, res.Rows(), draft, editingID, "", http.StatusBadGateway)
			return
		}

		if editingID != nil {
			h.sessions.Flash(c, "success", schema.Label+" berhasil diperbarui!")
		} else {
			h.sessions.Flash(c, "success", schema.Label+" berhasil ditambahkan!")
		}
		// Redirect resets the form to create mode and clears any staged file.
		c.Redirect(http.StatusFound, "/admin/"+schema.Name)
	}
}

// GET /admin/:resource/:id/delete: blocking confirmation step
func (h *Handler) confirmDelete(res Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		schema := res.Schema()
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.Redirect(http.StatusFound, "/admin/"+schema.Name)
			return
		}
		h.render.HTML(c, http.StatusOK, "admin/confirm_delete.html", gin.H{
			"Title":  "Hapus " + schema.Label,
			"Nav":    h.nav,
			"Schema": schema,
			"ID":     id,
		})
	}
}

// POST /admin/:resource/:id/delete
func (h *Handler) delete(res Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := h.sessions.Current(c)
		schema := res.Schema()

		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.Redirect(http.StatusFound, "/admin/"+schema.Name)
			return
		}
		confirmed := c.PostForm("confirm") == "yes"

		err = res.Delete(c.Request.Context(), st.Token, id, confirmed)
		switch {
		case errors.Is(err, resource.ErrNotConfirmed):
			// Declined: nothing was sent, nothing changes.
		case err == nil:
			h.sessions.Flash(c, "success", schema.Label+" berhasil dihapus!")
		case apiclient.IsAuthError(err):
			h.sessions.Logout(c)
			c.Redirect(http.StatusFound, "/login")
			return
		default:
			h.logger.Warn("delete failed", zap.String("resource", schema.Name), zap.Int64("id", id), zap.Error(err))
			h.sessions.Flash(c, "error", "Gagal menghapus data "+schema.Label+".")
		}
		c.Redirect(http.StatusFound, "/admin/"+schema.Name)
	}
}

func (h *Handler) renderPage(c *gin.Context, res Resource, rows []Row, draft resource.Draft, editingID *int64, preview string, status int) {
	schema := res.Schema()
	h.render.HTML(c, status, "admin/resource.html", gin.H{
		"Title":        "Kelola " + schema.Label,
		"Nav":          h.nav,
		"Schema":       schema,
		"Rows":         rows,
		"Form":         draft.Values,
		"EditingID":    editingID,
		"ImagePreview": preview,
	})
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
