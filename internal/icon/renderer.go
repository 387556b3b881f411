package icon

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/Mavwarf/ctmicons/internal/config"
	"github.com/Mavwarf/ctmicons/internal/fontres"
	"github.com/Mavwarf/ctmicons/internal/paths"
)

// Renderer turns icon specs into files. It holds no state between calls,
// so one Renderer may be shared across goroutines.
type Renderer struct {
	Text  string
	Scale float64
	Fonts []string  // font candidates; empty means fontres.Candidates()
	Debug io.Writer // font resolution diagnostics, nil = silent
}

// Result describes one written icon.
type Result struct {
	Spec       config.IconSpec
	Format     Format
	FontSource string
	FontSize   int
	Bytes      int
	SHA256     string
	Time       time.Time
}

// NewRenderer builds a Renderer from config options.
func NewRenderer(opts config.Options) *Renderer {
	return &Renderer{
		Text:  opts.Text,
		Scale: opts.FontScale,
		Fonts: opts.Fonts,
	}
}

func (r *Renderer) candidates() []string {
	if len(r.Fonts) > 0 {
		return r.Fonts
	}
	return fontres.Candidates()
}

// Image renders an icon in memory. The returned handle is already closed;
// its Source and Size describe the font that was used.
func (r *Renderer) Image(size int) (*image.RGBA, fontres.Handle) {
	h := fontres.Resolve(r.candidates(), FontSize(size, r.Scale), r.Debug)
	defer h.Close()
	return Draw(size, r.Text, h.Face), h
}

// Render draws the icon described by spec and writes it to spec.Path,
// replacing any existing file. The parent directory must already exist.
func (r *Renderer) Render(spec config.IconSpec) (Result, error) {
	img, h := r.Image(spec.Size)
	format := FormatFor(spec.Path)

	var buf bytes.Buffer
	if err := Encode(&buf, img, format); err != nil {
		return Result{}, fmt.Errorf("rendering %s: %w", spec.Path, err)
	}
	if err := paths.WriteFile(spec.Path, buf.Bytes()); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", spec.Path, err)
	}

	sum := sha256.Sum256(buf.Bytes())
	return Result{
		Spec:       spec,
		Format:     format,
		FontSource: h.Source,
		FontSize:   h.Size,
		Bytes:      buf.Len(),
		SHA256:     hex.EncodeToString(sum[:]),
		Time:       time.Now(),
	}, nil
}
