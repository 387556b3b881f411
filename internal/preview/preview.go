// Package preview prints images to a truecolor terminal using half-block
// characters: each cell shows two vertically stacked pixels.
package preview

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

const halfBlock = "▀"

// TermWidth returns the column count of the terminal on fd, or
// DefaultWidth if fd is not a terminal.
func TermWidth(fd int) int {
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// Fit scales img down so that it is at most width pixels wide. Images that
// already fit are returned unchanged.
func Fit(img image.Image, width int) image.Image {
	b := img.Bounds()
	if width <= 0 || b.Dx() <= width {
		return img
	}
	h := b.Dy() * width / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// Render writes img to w, at most width columns wide.
func Render(w io.Writer, img image.Image, width int) error {
	img = Fit(img, width)
	b := img.Bounds()
	bw := bufio.NewWriter(w)

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := rgb(img.At(x, y))
			bottom := top
			if y+1 < b.Max.Y {
				bottom = rgb(img.At(x, y+1))
			}
			fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B, halfBlock)
		}
		bw.WriteString("\x1b[0m\n")
	}
	return bw.Flush()
}

func rgb(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
