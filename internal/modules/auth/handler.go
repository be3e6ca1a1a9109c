package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sewakita/rentweb/internal/pkg/view"
	"github.com/sewakita/rentweb/internal/session"
	"go.uber.org/zap"
)

// Handler serves the login/register pages and the logout action.
type Handler struct {
	svc      *Service
	sessions *session.Manager
	render   *view.Renderer
	logger   *zap.Logger
}

// NewHandler creates the auth handler.
func NewHandler(svc *Service, sessions *session.Manager, render *view.Renderer, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, sessions: sessions, render: render, logger: logger}
}

// RegisterRoutes mounts the auth pages. guestMW bounces already logged-in
// visitors to the dashboard.
func (h *Handler) RegisterRoutes(r *gin.Engine, guestMW gin.HandlerFunc) {
	r.GET("/login", guestMW, h.loginPage)
	r.POST("/login", guestMW, h.login)
	r.GET("/register", guestMW, h.registerPage)
	r.POST("/register", guestMW, h.register)
	r.POST("/logout", h.logout)
}

// GET /login
func (h *Handler) loginPage(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "auth/login.html", gin.H{"Title": "Login"})
}

// POST /login
func (h *Handler) login(c *gin.Context) {
	dto := &LoginDTO{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}
	resp, err := h.svc.Login(c.Request.Context(), dto)
	if err != nil {
		h.logger.Warn("login failed", zap.String("email", dto.Email), zap.Error(err))
		h.render.HTML(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Title": "Login",
			"Error": "Login failed. Please check your email and password.",
			"Email": dto.Email,
		})
		return
	}
	if err := h.sessions.Login(c, resp.AccessToken, resp.User); err != nil {
		h.render.HTML(c, http.StatusInternalServerError, "auth/login.html", gin.H{
			"Title": "Login",
			"Error": "Could not start a session. Please try again.",
			"Email": dto.Email,
		})
		return
	}
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// GET /register
func (h *Handler) registerPage(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "auth/register.html", gin.H{"Title": "Register"})
}

// POST /register
func (h *Handler) register(c *gin.Context) {
	dto := &RegisterDTO{
		Name:                 c.PostForm("name"),
		Email:                c.PostForm("email"),
		Password:             c.PostForm("password"),
		PasswordConfirmation: c.PostForm("password_confirmation"),
	}
	resp, err := h.svc.Register(c.Request.Context(), dto)
	if err != nil {
		h.render.HTML(c, http.StatusUnprocessableEntity, "auth/register.html", gin.H{
			"Title": "Register",
			"Error": "Registration failed. Please check the form and try again.",
			"Name":  dto.Name,
			"Email": dto.Email,
		})
		return
	}
	if resp.AccessToken != "" {
		if err := h.sessions.Login(c, resp.AccessToken, resp.User); err == nil {
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
	}
	c.Redirect(http.StatusFound, "/login")
}

// POST /logout: notify-and-discard
func (h *Handler) logout(c *gin.Context) {
	if st := h.sessions.Current(c); st.LoggedIn() {
		h.svc.Logout(c.Request.Context(), st.Token)
	}
	h.sessions.Logout(c)
	c.Redirect(http.StatusFound, "/login")
}
