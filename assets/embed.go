package assets

import (
	"embed"
	"io/fs"
)

//go:embed scenario.yaml locales/*.yaml
var FS embed.FS

// DefaultScenario returns the embedded demo scenario.
func DefaultScenario() ([]byte, error) {
	return FS.ReadFile("scenario.yaml")
}

// Locales returns the narration catalogs rooted at their directory.
func Locales() (fs.FS, error) {
	return fs.Sub(FS, "locales")
}
