// Package walkthrough holds the ordered, independent demonstrations the tour
// prints. Sections write to Env.Out only; logging goes through Env.Log.
package walkthrough

import (
	"context"
	"fmt"
	"io"

	"github.com/samvad-hq/feature-tour/internal/logger"
)

// Env is what every section may touch.
type Env struct {
	Out           io.Writer
	Log           logger.Logger
	Args          []string
	InfoFile      string
	OutFile       string
	HelloFile     string
	UptimeCommand string
	RunID         string
}

// Section is one named demonstration. A returned error ends the tour.
type Section struct {
	Name string
	Run  func(ctx context.Context, env *Env) error
}

// Sections returns the demonstrations in the order they are shown. The fetch
// section is injected because it needs runtime wiring.
func Sections(fetch Section) []Section {
	return []Section{
		{Name: "basics", Run: basics},
		{Name: "structs", Run: structs},
		{Name: "traits", Run: traits},
		{Name: "strings", Run: stringMethods},
		{Name: "collections", Run: collections},
		{Name: "matching", Run: matching},
		{Name: "random", Run: random},
		{Name: "regex", Run: regexDemo},
		{Name: "json", Run: jsonDemo},
		{Name: "markup", Run: markup},
		{Name: "modules", Run: modules},
		{Name: "cli", Run: cliArgs},
		{Name: "files", Run: files},
		fetch,
		{Name: "process", Run: process},
	}
}

func heading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s >>\n\n", title)
}
