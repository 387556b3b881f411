// Package fontres resolves the font used to label icons. Resolution walks a
// list of candidate font files and falls back to a built-in bitmap face, so
// it always yields something drawable.
package fontres

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Embedded is the candidate name that selects the Go Bold font compiled into
// the binary instead of a file on disk.
const Embedded = "gobold"

// BuiltinSource is the Handle.Source reported for the last-resort face.
const BuiltinSource = "builtin:7x13"

// Handle is a resolved, sized font face.
type Handle struct {
	Face   font.Face
	Source string // file path, Embedded, or BuiltinSource
	Size   int    // requested size in points; the builtin face ignores it
}

// Builtin reports whether resolution fell through to the fixed-size default.
func (h Handle) Builtin() bool {
	return h.Source == BuiltinSource
}

// Close releases the face. The builtin face has nothing to release.
func (h Handle) Close() error {
	if h.Face == nil || h.Builtin() {
		return nil
	}
	return h.Face.Close()
}

// Resolve tries each candidate in order and returns the first that loads at
// the given size. Any failure (missing file, parse error, unusable size)
// moves on to the next candidate; failures are reported to debug when it is
// non-nil. If nothing loads, the builtin 7x13 face is returned.
func Resolve(candidates []string, size int, debug io.Writer) Handle {
	for _, c := range candidates {
		face, err := load(c, size)
		if err != nil {
			if debug != nil {
				fmt.Fprintf(debug, "fontres: %s: %v\n", c, err)
			}
			continue
		}
		return Handle{Face: face, Source: c, Size: size}
	}
	if debug != nil {
		fmt.Fprintf(debug, "fontres: using %s\n", BuiltinSource)
	}
	return Handle{Face: basicfont.Face7x13, Source: BuiltinSource, Size: size}
}

func load(candidate string, size int) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %d", size)
	}

	var data []byte
	if candidate == Embedded {
		data = gobold.TTF
	} else {
		b, err := os.ReadFile(candidate)
		if err != nil {
			return nil, err
		}
		data = b
	}

	f, err := parse(candidate, data)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// parse handles both single fonts and .ttc collections; for a collection the
// first face is used.
func parse(name string, data []byte) (*opentype.Font, error) {
	if strings.HasSuffix(strings.ToLower(name), ".ttc") {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse collection: %w", err)
		}
		if coll.NumFonts() == 0 {
			return nil, fmt.Errorf("empty font collection")
		}
		return coll.Font(0)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return f, nil
}
