package view

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sewakita/rentweb/internal/config"
	"github.com/sewakita/rentweb/internal/pkg/richtext"
	"github.com/sewakita/rentweb/internal/pkg/storageurl"
	"github.com/sewakita/rentweb/internal/session"
)

// Renderer wraps gin's HTML rendering with the data every page needs: site
// identity, the current session, and pending flash notifications.
type Renderer struct {
	site     config.SiteConfig
	sessions *session.Manager
}

// New creates a renderer.
func New(site config.SiteConfig, sessions *session.Manager) *Renderer {
	return &Renderer{site: site, sessions: sessions}
}

// HTML renders a template with the shared layout data merged in.
func (r *Renderer) HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	st := r.sessions.Current(c)
	data["SiteName"] = r.site.Name
	data["LoggedIn"] = st.LoggedIn()
	data["Profile"] = st.Profile
	data["Path"] = c.Request.URL.Path
	if _, ok := data["Flashes"]; !ok {
		data["Flashes"] = r.sessions.TakeFlashes(c)
	}
	c.HTML(status, name, data)
}

// FuncMap returns the template functions shared by all pages.
func FuncMap(resolver *storageurl.Resolver) template.FuncMap {
	return template.FuncMap{
		"imageURL": resolver.Resolve,
		"rupiah":   Rupiah,
		"stars":    Stars,
		// Stored rich text is sanitized again on the way out; the template
		// engine would otherwise escape it wholesale.
		"richHTML": func(s string) template.HTML {
			return template.HTML(richtext.Sanitize(s))
		},
		"excerpt": Excerpt,
	}
}

// Rupiah formats a price the way the site displays it: "Rp 250.000".
func Rupiah(v float64) string {
	n := int64(v)
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := "Rp " + strings.Join(parts, ".")
	if neg {
		out = "Rp -" + strings.Join(parts, ".")
	}
	return out
}

// Stars renders a 1-5 rating as filled/empty star runes.
func Stars(rate int) string {
	if rate < 0 {
		rate = 0
	}
	if rate > 5 {
		rate = 5
	}
	return strings.Repeat("★", rate) + strings.Repeat("☆", 5-rate)
}

// Excerpt strips tags and truncates to n runes for list previews.
func Excerpt(html string, n int) string {
	text := richtext.StripTags(html)
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= n {
		return string(runes)
	}
	return strings.TrimSpace(string(runes[:n])) + "…"
}
