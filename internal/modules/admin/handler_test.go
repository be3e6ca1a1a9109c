package admin

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sewakita/rentweb/internal/apiclient"
	"github.com/sewakita/rentweb/internal/config"
	"github.com/sewakita/rentweb/internal/middleware"
	"github.com/sewakita/rentweb/internal/models"
	"github.com/sewakita/rentweb/internal/pkg/storageurl"
	"github.com/sewakita/rentweb/internal/pkg/view"
	"github.com/sewakita/rentweb/internal/session"
	webassets "github.com/sewakita/rentweb/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// faqBackend is an in-memory /admin/faqs collection plus the dashboard
// endpoint. Every handler checks the bearer token.
type faqBackend struct {
	mu     sync.Mutex
	items  []models.FAQ
	nextID int64
	reqs   []string
}

func (b *faqBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.reqs = append(b.reqs, r.Method+" "+r.URL.Path)

		if r.Header.Get("Authorization") != "Bearer tok-abc" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Unauthenticated."}`))
			return
		}

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/admin/dashboard":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"message": "Selamat datang, Admin",
				"blogs":   []interface{}{},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/admin/faqs":
			json.NewEncoder(w).Encode(b.items)
		case r.Method == http.MethodPost && r.URL.Path == "/admin/faqs":
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			b.nextID++
			b.items = append(b.items, models.FAQ{ID: b.nextID, Title: body["title"], Description: body["description"]})
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/admin/faqs/"):
			id, _ := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/admin/faqs/"), 10, 64)
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			for i := range b.items {
				if b.items[i].ID == id {
					b.items[i].Title = body["title"]
					b.items[i].Description = body["description"]
					w.WriteHeader(http.StatusOK)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/admin/faqs/"):
			id, _ := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/admin/faqs/"), 10, 64)
			for i := range b.items {
				if b.items[i].ID == id {
					b.items = append(b.items[:i], b.items[i+1:]...)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func (b *faqBackend) requests() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.reqs...)
}

type adminFixture struct {
	router   *gin.Engine
	sessions *session.Manager
	backend  *faqBackend
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := &faqBackend{nextID: 10}
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	api := apiclient.New(srv.URL)
	resolver := storageurl.New("")
	sessions := session.NewManager(session.NewMemoryStore(), config.SessionConfig{
		CookieName: "rentweb_session",
		TTL:        time.Hour,
	})
	render := view.New(config.SiteConfig{Name: "Sewakita Rental"}, sessions)

	r := gin.New()
	tmpl := template.Must(template.New("").
		Funcs(view.FuncMap(resolver)).
		ParseFS(webassets.Templates, "templates/*/*.html"))
	r.SetHTMLTemplate(tmpl)

	h := NewHandler(api, BuildResources(api, resolver), sessions, render, zap.NewNop())
	h.RegisterRoutes(r, middleware.RequireLogin(sessions))

	return &adminFixture{router: r, sessions: sessions, backend: backend}
}

// loginCookie creates a server-side session holding the token the backend
// expects and returns the signed cookie a browser would carry.
func (f *adminFixture) loginCookie(t *testing.T, token string) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/", nil)
	require.NoError(t, f.sessions.Login(c, token, &models.User{ID: 1, Name: "Admin"}))
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "rentweb_session" {
			return ck
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func (f *adminFixture) get(path string, ck *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if ck != nil {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *adminFixture) post(path string, form url.Values, ck *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if ck != nil {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestAdminRequiresLogin(t *testing.T) {
	f := newAdminFixture(t)
	rec := f.get("/admin/faqs", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestDashboard(t *testing.T) {
	f := newAdminFixture(t)
	ck := f.loginCookie(t, "tok-abc")

	rec := f.get("/admin/dashboard", ck)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Selamat datang, Admin")
}

func TestExpiredTokenRedirectsToLogin(t *testing.T) {
	f := newAdminFixture(t)
	ck := f.loginCookie(t, "tok-stale")

	rec := f.get("/admin/dashboard", ck)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	// the session is gone; replaying the cookie stays anonymous
	rec = f.get("/admin/faqs", ck)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestCreateFAQ(t *testing.T) {
	f := newAdminFixture(t)
	ck := f.loginCookie(t, "tok-abc")

	rec := f.post("/admin/faqs", url.Values{
		"title":       {"Bagaimana cara booking?"},
		"description": {"Hubungi kami via WhatsApp."},
	}, ck)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/faqs", rec.Header().Get("Location"))

	list := f.get("/admin/faqs", ck)
	assert.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "Bagaimana cara booking?")
	assert.Contains(t, list.Body.String(), "berhasil ditambahkan!")
	// server-assigned id appears in the row actions
	assert.Contains(t, list.Body.String(), "/admin/faqs?edit=11")
}

func TestCreateFAQMissingRequired(t *testing.T) {
	f := newAdminFixture(t)
	ck := f.loginCookie(t, "tok-abc")

	rec := f.post("/admin/faqs", url.Values{"title": {"Tanpa jawaban"}}, ck)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Kolom wajib belum diisi")
	// the typed value is preserved for retry
	assert.Contains(t, rec.Body.String(), "Tanpa jawaban")

	for _, req := range f.backend.requests() {
		assert.NotEqual(t, "POST /admin/faqs", req, "invalid form never reaches the backend")
	}
}

func TestEditFAQ(t *testing.T) {
	f := newAdminFixture(t)
	f.backend.items = []models.FAQ{{ID: 3, Title: "Pertanyaan lama", Description: "Jawaban lama"}}
	ck := f.loginCookie(t, "tok-abc")

	// edit mode prefills the form
	page := f.get("/admin/faqs?edit=3", ck)
	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Pertanyaan lama")
	assert.Contains(t, page.Body.String(), `name="editing_id" value="3"`)

	rec := f.post("/admin/faqs", url.Values{
		"editing_id":  {"3"},
		"title":       {"Pertanyaan baru"},
		"description": {"Jawaban baru"},
	}, ck)
	assert.Equal(t, http.StatusFound, rec.Code)

	assert.Contains(t, f.backend.requests(), "PUT /admin/faqs/3", "edits update in place")

	list := f.get("/admin/faqs", ck)
	assert.Contains(t, list.Body.String(), "Pertanyaan baru")
	assert.Contains(t, list.Body.String(), "berhasil diperbarui!")
	assert.NotContains(t, list.Body.String(), "Pertanyaan lama")
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	f := newAdminFixture(t)
	f.backend.items = []models.FAQ{{ID: 3, Title: "Hapus saya", Description: "x"}}
	ck := f.loginCookie(t, "tok-abc")
	f.get("/admin/faqs", ck) // warm the cache

	// the confirmation page blocks the action
	page := f.get("/admin/faqs/3/delete", ck)
	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Ya, hapus")

	// posting without the confirm field is a decline: nothing is sent
	rec := f.post("/admin/faqs/3/delete", url.Values{}, ck)
	assert.Equal(t, http.StatusFound, rec.Code)
	for _, req := range f.backend.requests() {
		assert.NotEqual(t, "DELETE /admin/faqs/3", req)
	}

	// confirming deletes and refetches
	rec = f.post("/admin/faqs/3/delete", url.Values{"confirm": {"yes"}}, ck)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, f.backend.requests(), "DELETE /admin/faqs/3")

	list := f.get("/admin/faqs", ck)
	assert.Contains(t, list.Body.String(), "berhasil dihapus!")
	assert.NotContains(t, list.Body.String(), "Hapus saya")
}

func TestAdminRootRedirectsToDashboard(t *testing.T) {
	f := newAdminFixture(t)
	ck := f.loginCookie(t, "tok-abc")
	rec := f.get("/admin", ck)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))
}
