// Package web holds the embedded templates and static assets served by the
// site. Everything ships inside the binary so deployment is a single file.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates
var Templates embed.FS

//go:embed static
var staticRoot embed.FS

// Static is the static asset tree, rooted so URLs map directly to files.
var Static, _ = fs.Sub(staticRoot, "static")
