package web

import "embed"

// TemplatesFS embeds the HTML templates used by the static dashboard export.
//
//go:embed templates/*.html
var TemplatesFS embed.FS
