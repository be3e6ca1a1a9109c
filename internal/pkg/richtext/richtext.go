package richtext

import (
	"bytes"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// Editor is the narrow interface over a rich-text editing surface. The admin
// form owns one instance per request cycle; nothing else reaches into it.
type Editor interface {
	Content() string
	SetContent(html string)
	Clear()
}

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Table,
		extension.Strikethrough,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
	),
)

var policy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("p", "span", "div", "blockquote", "pre", "code")
	p.AllowAttrs("style").OnElements("p", "span")
	return p
}()

// Sanitize strips script content and dangerous attributes from user-authored
// HTML. Applied both before content is sent to the backend and before stored
// content is injected into a page.
func Sanitize(html string) string {
	return policy.Sanitize(html)
}

var stripPolicy = bluemonday.StrictPolicy()

// StripTags removes all markup, leaving plain text for previews.
func StripTags(html string) string {
	return stripPolicy.Sanitize(html)
}

// RenderMarkdown converts markdown to sanitized HTML.
func RenderMarkdown(md string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return Sanitize(buf.String()), nil
}

// LooksLikeHTML reports whether authored content is already HTML rather than
// markdown. The admin form accepts both.
func LooksLikeHTML(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">")
}

// BufferEditor is the server-side Editor used by the admin blog form: a
// sanitizing buffer the handler fills from the submitted form or from the
// entity being edited.
type BufferEditor struct {
	mu   sync.Mutex
	html string
}

// NewBufferEditor creates an empty editor.
func NewBufferEditor() *BufferEditor { return &BufferEditor{} }

// Content returns the current serialized HTML.
func (e *BufferEditor) Content() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.html
}

// SetContent overwrites the editor with stored HTML, sanitizing on the way in.
func (e *BufferEditor) SetContent(html string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.html = Sanitize(html)
}

// Clear empties the editor.
func (e *BufferEditor) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.html = ""
}

// LoadAuthored fills the editor from form input: raw HTML is sanitized,
// anything else is treated as markdown and rendered.
func (e *BufferEditor) LoadAuthored(input string) error {
	if LooksLikeHTML(input) {
		e.SetContent(input)
		return nil
	}
	html, err := RenderMarkdown(input)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.html = html
	e.mu.Unlock()
	return nil
}
