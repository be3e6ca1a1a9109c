package admin

import (
	"testing"

	"github.com/sewakita/rentweb/internal/apiclient"
	"github.com/sewakita/rentweb/internal/pkg/storageurl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The backend names its collections in Indonesian for cars and testimonials
// and in English for the rest; a wrong segment here means every request for
// that screen 404s.
func TestResourcePathsMatchBackend(t *testing.T) {
	res := BuildResources(apiclient.New("http://api.test"), storageurl.New("http://api.test/storage"))
	require.Len(t, res, len(Order))

	want := map[string]string{
		"blogs":        "/admin/blogs",
		"cars":         "/admin/mobils",
		"galleries":    "/admin/galleries",
		"testimonials": "/admin/testimoni",
		"faqs":         "/admin/faqs",
		"metadata":     "/admin/metadata",
	}
	for name, path := range want {
		r, ok := res[name]
		require.True(t, ok, name)
		assert.Equal(t, path, r.Schema().Path, name)
	}
}
