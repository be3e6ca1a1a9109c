package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sewakita/rentweb/internal/config"
	"github.com/sewakita/rentweb/internal/models"
	jwtpkg "github.com/sewakita/rentweb/internal/pkg/jwt"
)

const contextKey = "rentweb_session_state"

// Manager binds signed browser cookies to server-side session records.
type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration
	secure     bool
}

// State is the loaded session for one request. A zero Token means the
// visitor is not logged in; that absence is the sole signal the route guard
// uses.
type State struct {
	ID      string
	Token   string
	Profile *models.User
	flashes []Flash
}

// LoggedIn reports whether a bearer token is present.
func (s *State) LoggedIn() bool { return s != nil && s.Token != "" }

// NewManager creates a session manager.
func NewManager(store Store, cfg config.SessionConfig) *Manager {
	return &Manager{
		store:      store,
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     cfg.Secure,
	}
}

// Current loads the request's session, caching it on the gin context. It
// never fails: a missing, invalid, or expired cookie yields an anonymous
// state.
func (m *Manager) Current(c *gin.Context) *State {
	if v, ok := c.Get(contextKey); ok {
		if st, ok := v.(*State); ok {
			return st
		}
	}
	st := m.load(c)
	c.Set(contextKey, st)
	return st
}

// Login creates a fresh session holding the bearer token and profile and
// sets the signed cookie. Any prior session record is replaced.
func (m *Manager) Login(c *gin.Context, token string, profile *models.User) error {
	if prev := m.Current(c); prev.ID != "" {
		_ = m.store.Delete(c.Request.Context(), prev.ID)
	}

	id := uuid.New().String()
	d := &Data{Token: token, Profile: profile}
	if err := m.store.Put(c.Request.Context(), id, d, m.ttl); err != nil {
		return err
	}
	signed, err := jwtpkg.Sign(id, m.ttl)
	if err != nil {
		_ = m.store.Delete(c.Request.Context(), id)
		return err
	}
	m.setCookie(c, signed, int(m.ttl.Seconds()))
	c.Set(contextKey, &State{ID: id, Token: token, Profile: profile})
	return nil
}

// Logout removes the server-side record and clears the cookie. It always
// succeeds locally regardless of the backend's opinion.
func (m *Manager) Logout(c *gin.Context) {
	if st := m.Current(c); st.ID != "" {
		_ = m.store.Delete(c.Request.Context(), st.ID)
	}
	m.setCookie(c, "", -1)
	c.Set(contextKey, &State{})
}

// Flash queues a one-shot notification on the current session. Anonymous
// visitors get no flash (nothing to attach it to).
func (m *Manager) Flash(c *gin.Context, kind, message string) {
	st := m.Current(c)
	if st.ID == "" {
		return
	}
	st.flashes = append(st.flashes, Flash{Kind: kind, Message: message})
	m.persist(c, st)
}

// TakeFlashes returns and clears pending notifications.
func (m *Manager) TakeFlashes(c *gin.Context) []Flash {
	st := m.Current(c)
	if st.ID == "" || len(st.flashes) == 0 {
		return nil
	}
	out := st.flashes
	st.flashes = nil
	m.persist(c, st)
	return out
}

func (m *Manager) load(c *gin.Context) *State {
	raw, err := c.Cookie(m.cookieName)
	if err != nil || raw == "" {
		return &State{}
	}
	claims, err := jwtpkg.Parse(raw)
	if err != nil {
		return &State{}
	}
	d, err := m.store.Get(c.Request.Context(), claims.SessionID)
	if err != nil || d == nil {
		return &State{}
	}
	return &State{ID: claims.SessionID, Token: d.Token, Profile: d.Profile, flashes: d.Flashes}
}

func (m *Manager) persist(c *gin.Context, st *State) {
	d := &Data{Token: st.Token, Profile: st.Profile, Flashes: st.flashes}
	_ = m.store.Put(c.Request.Context(), st.ID, d, m.ttl)
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
