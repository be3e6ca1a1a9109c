package resource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/sewakita/rentweb/internal/apiclient"
	"github.com/sewakita/rentweb/internal/pkg/storageurl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type faqEntity struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (f faqEntity) EntityID() int64 { return f.ID }

// fakeBackend is an in-memory REST collection at /admin/faqs.
type fakeBackend struct {
	mu      sync.Mutex
	items   []faqEntity
	nextID  int64
	failGet bool
	reqs    []string // "METHOD path" in arrival order
}

func newFakeBackend(seed ...faqEntity) *fakeBackend {
	b := &fakeBackend{items: seed, nextID: 100}
	return b
}

func (b *fakeBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.reqs = append(b.reqs, r.Method+" "+r.URL.Path)

		switch {
		case r.Method == http.MethodGet:
			if b.failGet {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			json.NewEncoder(w).Encode(b.items)
		case r.Method == http.MethodPost && r.URL.Path == "/admin/faqs":
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			b.nextID++
			b.items = append(b.items, faqEntity{ID: b.nextID, Title: body["title"], Description: body["description"]})
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(b.items[len(b.items)-1])
		case r.Method == http.MethodPut:
			id := pathID(r.URL.Path)
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			for i := range b.items {
				if b.items[i].ID == id {
					b.items[i].Title = body["title"]
					b.items[i].Description = body["description"]
					json.NewEncoder(w).Encode(b.items[i])
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodDelete:
			id := pathID(r.URL.Path)
			for i := range b.items {
				if b.items[i].ID == id {
					b.items = append(b.items[:i], b.items[i+1:]...)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

func pathID(p string) int64 {
	id, _ := strconv.ParseInt(p[strings.LastIndex(p, "/")+1:], 10, 64)
	return id
}

func faqSchema() Schema {
	return Schema{
		Name:  "faqs",
		Label: "FAQ",
		Path:  "/admin/faqs",
		Fields: []Field{
			{Name: "title", Label: "Pertanyaan", Type: FieldText, Required: true},
			{Name: "description", Label: "Jawaban", Type: FieldTextarea, Required: true},
		},
	}
}

func newFAQController(t *testing.T, b *fakeBackend) *Controller[faqEntity] {
	t.Helper()
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	return NewController[faqEntity](apiclient.New(srv.URL), storageurl.New(""), faqSchema())
}

func TestListCachesSnapshot(t *testing.T) {
	b := newFakeBackend(faqEntity{ID: 1, Title: "A", Description: "a"})
	ct := newFAQController(t, b)

	items, err := ct.List(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, items, ct.Items())
}

func TestListFailureKeepsStaleCache(t *testing.T) {
	b := newFakeBackend(faqEntity{ID: 1, Title: "A", Description: "a"})
	ct := newFAQController(t, b)

	_, err := ct.List(context.Background(), "tok")
	require.NoError(t, err)

	b.mu.Lock()
	b.failGet = true
	b.mu.Unlock()

	items, err := ct.List(context.Background(), "tok")
	require.Error(t, err)
	require.Len(t, items, 1, "previous snapshot survives the failed fetch")
	assert.Equal(t, "A", items[0].Title)
}

func TestSubmitCreateRefetches(t *testing.T) {
	b := newFakeBackend()
	ct := newFAQController(t, b)
	_, _ = ct.List(context.Background(), "tok")

	d := faqSchema().NewDraft()
	d.Values.Set("title", "Bagaimana cara booking?")
	d.Values.Set("description", "Hubungi kami via WhatsApp.")

	require.NoError(t, ct.Submit(context.Background(), "tok", d, nil, nil))

	// the new entry shows up with the server-assigned id, via refetch
	items := ct.Items()
	require.Len(t, items, 1)
	assert.EqualValues(t, 101, items[0].ID)
	assert.Equal(t, "Bagaimana cara booking?", items[0].Title)
}

func TestSubmitEditTargetsItemPath(t *testing.T) {
	b := newFakeBackend(faqEntity{ID: 7, Title: "Lama", Description: "x"})
	ct := newFAQController(t, b)
	_, _ = ct.List(context.Background(), "tok")

	d, _, ok := ct.BeginEdit(7)
	require.True(t, ok)
	assert.Equal(t, "Lama", d.Values.Get("title"))

	d.Values.Set("title", "Baru")
	id := int64(7)
	require.NoError(t, ct.Submit(context.Background(), "tok", d, &id, nil))

	b.mu.Lock()
	reqs := append([]string(nil), b.reqs...)
	b.mu.Unlock()
	assert.Contains(t, reqs, "PUT /admin/faqs/7", "an edit updates, it never creates")
	assert.NotContains(t, reqs, "POST /admin/faqs")

	items := ct.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Baru", items[0].Title)
}

func TestBeginEditUnknownID(t *testing.T) {
	ct := newFAQController(t, newFakeBackend())
	_, _, ok := ct.BeginEdit(42)
	assert.False(t, ok)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	b := newFakeBackend(faqEntity{ID: 1, Title: "A", Description: "a"})
	ct := newFAQController(t, b)
	_, _ = ct.List(context.Background(), "tok")

	before := len(b.reqs)
	err := ct.Delete(context.Background(), "tok", 1, false)
	assert.ErrorIs(t, err, ErrNotConfirmed)

	b.mu.Lock()
	after := len(b.reqs)
	b.mu.Unlock()
	assert.Equal(t, before, after, "declining sends nothing to the backend")
	assert.Len(t, ct.Items(), 1)
}

func TestDeleteConfirmed(t *testing.T) {
	b := newFakeBackend(faqEntity{ID: 1, Title: "A", Description: "a"})
	ct := newFAQController(t, b)
	_, _ = ct.List(context.Background(), "tok")

	require.NoError(t, ct.Delete(context.Background(), "tok", 1, true))
	assert.Empty(t, ct.Items())

	b.mu.Lock()
	reqs := append([]string(nil), b.reqs...)
	b.mu.Unlock()
	assert.Contains(t, reqs, "DELETE /admin/faqs/1")
}

func TestDraftFromRequestMissingRequired(t *testing.T) {
	s := faqSchema()
	d := s.NewDraft()
	d.Values.Set("title", "x")
	missing := s.MissingRequired(d)
	require.Len(t, missing, 1)
	assert.Equal(t, "Jawaban", missing[0])
}
