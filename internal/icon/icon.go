// Package icon draws text-labelled square placeholder icons.
package icon

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FontSize returns the point size used for an icon of the given edge
// length. The fractional part is truncated.
func FontSize(size int, scale float64) int {
	return int(float64(size) * scale)
}

// Measure returns the tight pixel bounding box of text as drawn with its
// top-left anchor at (0,0), where the top edge is the font's ascender line.
// Glyphs with side bearings or accents may make Min non-zero.
func Measure(face font.Face, text string) image.Rectangle {
	b, _ := font.BoundString(face, text)
	ascent := face.Metrics().Ascent
	return image.Rect(
		b.Min.X.Floor(),
		(ascent + b.Min.Y).Floor(),
		b.Max.X.Ceil(),
		(ascent + b.Max.Y).Ceil(),
	)
}

// Origin returns the top-left anchor that centers a box of the given
// dimensions on a size×size canvas. Min of the box is not compensated for,
// so glyphs whose bounds don't start at (0,0) end up slightly off-centre.
func Origin(size int, box image.Rectangle) image.Point {
	return image.Pt(floorDiv(size-box.Dx(), 2), floorDiv(size-box.Dy(), 2))
}

// Draw renders text in black, centered on a white size×size canvas.
// Negative sizes yield an empty canvas.
func Draw(size int, text string, face font.Face) *image.RGBA {
	if size < 0 {
		size = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	o := Origin(size, Measure(face, text))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(o.X), Y: fixed.I(o.Y) + face.Metrics().Ascent},
	}
	d.DrawString(text)
	return img
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
