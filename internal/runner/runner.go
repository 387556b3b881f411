package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/Mavwarf/ctmicons/internal/config"
	"github.com/Mavwarf/ctmicons/internal/history"
	"github.com/Mavwarf/ctmicons/internal/icon"
)

// Renderer writes a single icon.
type Renderer interface {
	Render(spec config.IconSpec) (icon.Result, error)
}

// Publisher announces a finished render.
type Publisher interface {
	PublishResult(res icon.Result) error
}

// Runner renders a list of icons in order. Store and Publisher are
// optional; their failures are reported to Err but never stop the run.
type Runner struct {
	Renderer  Renderer
	Out       io.Writer
	Err       io.Writer
	Store     history.Store
	Publisher Publisher
}

// Execute renders specs sequentially. It stops at the first render error
// and returns it along with the results written so far; files already
// written are left in place.
func (r *Runner) Execute(specs []config.IconSpec) ([]icon.Result, error) {
	out := r.Out
	if out == nil {
		out = io.Discard
	}

	results := make([]icon.Result, 0, len(specs))
	for _, spec := range specs {
		res, err := r.Renderer.Render(spec)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		fmt.Fprintf(out, "Created: %s (%dx%d)\n", spec.Path, spec.Size, spec.Size)

		if r.Store != nil {
			if err := r.Store.Record(res); err != nil {
				r.warn("history", err)
			}
		}
		if r.Publisher != nil {
			if err := r.Publisher.PublishResult(res); err != nil {
				r.warn("mqtt", err)
			}
		}
	}

	fmt.Fprintln(out, "All icons created successfully!")
	return results, nil
}

func (r *Runner) warn(pkg string, err error) {
	w := r.Err
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "%s: %v\n", pkg, err)
}
