package overview

import (
	"embed"

	"github.com/pokesprite/pokesprite/internal/platform/templates"
)

//go:embed templates/*.html
var templatesFS embed.FS

// DefaultOverviewTemplate returns the embedded icon overview page.
func DefaultOverviewTemplate() (*templates.Template, error) {
	return templates.ParseFS(templatesFS, "templates/overview.html")
}

// DefaultBuildTemplate returns the embedded build summary page.
func DefaultBuildTemplate() (*templates.Template, error) {
	return templates.ParseFS(templatesFS, "templates/build.html")
}
