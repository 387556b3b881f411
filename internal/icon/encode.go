package icon

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	ico "github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"
)

// Format is an output image encoding.
type Format int

const (
	PNG Format = iota
	ICO
)

// maxICOSize is the largest edge an ICO directory entry can describe.
const maxICOSize = 256

func (f Format) String() string {
	switch f {
	case ICO:
		return "ico"
	default:
		return "png"
	}
}

// FormatFor picks the encoding from the output path's extension. Anything
// other than .ico is written as PNG.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".ico") {
		return ICO
	}
	return PNG
}

// Encode writes img to w in the given format. ICO images wider than 256px
// are downscaled first.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case ICO:
		if err := ico.Encode(w, fitICO(img)); err != nil {
			return fmt.Errorf("encode ico: %w", err)
		}
	default:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
	}
	return nil
}

func fitICO(src image.Image) image.Image {
	b := src.Bounds()
	if b.Dx() <= maxICOSize && b.Dy() <= maxICOSize {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, maxICOSize, maxICOSize))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
