// Package assets embeds the email & site templates and the static files served by the site.
package assets

import "embed"

// `all:` keeps the `_` prefixed layouts & partials.
//
//go:embed all:templates static
var FS embed.FS

const (
	EmailTemplatesDir = "templates/email"
	SiteTemplatesDir  = "templates/site"
	StaticDir         = "static"
)
