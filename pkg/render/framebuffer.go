// Package render draws rotating wireframes into a pixel buffer and shows
// them in the terminal or saves them as images.
package render

import (
	"image"
	"image/color"
	"iter"
)

// Framebuffer is a 2D array of pixels that can be rendered to the terminal.
// We use double vertical resolution by using half-block characters (▀▄).
//
// A Framebuffer is also a draw.Image, so it can be scaled or encoded
// without copying.
type Framebuffer struct {
	Width  int          // Width in "pixels" (same as terminal columns)
	Height int          // Height in "pixels" (2x terminal rows due to half-blocks)
	Pixels []color.RGBA // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
// Height should be 2x the desired terminal rows for half-block rendering.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y). Writes outside the buffer are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y), or transparent black out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine strokes the line from (x0, y0) to (x1, y1) with a square pen
// of side 2*r+1. r of 0 draws single pixels; equal endpoints draw a dot.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1, r int, c color.RGBA) {
	for x, y := range linePixels(x0, y0, x1, y1) {
		if r == 0 {
			fb.SetPixel(x, y, c)
			continue
		}
		for py := y - r; py <= y+r; py++ {
			for px := x - r; px <= x+r; px++ {
				fb.SetPixel(px, py, c)
			}
		}
	}
}

// linePixels yields the pixels of a Bresenham line, endpoints included.
func linePixels(x0, y0, x1, y1 int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		dx := abs(x1 - x0)
		dy := -abs(y1 - y0)
		sx := 1
		if x0 > x1 {
			sx = -1
		}
		sy := 1
		if y0 > y1 {
			sy = -1
		}
		err := dx + dy

		for {
			if !yield(x0, y0) {
				return
			}
			if x0 == x1 && y0 == y1 {
				return
			}
			e2 := 2 * err
			if e2 >= dy {
				err += dy
				x0 += sx
			}
			if e2 <= dx {
				err += dx
				y0 += sy
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Count returns how many pixels equal c.
func (fb *Framebuffer) Count(c color.RGBA) int {
	n := 0
	for _, p := range fb.Pixels {
		if p == c {
			n++
		}
	}
	return n
}

func (fb *Framebuffer) ColorModel() color.Model { return color.RGBAModel }

func (fb *Framebuffer) Bounds() image.Rectangle { return image.Rect(0, 0, fb.Width, fb.Height) }

func (fb *Framebuffer) At(x, y int) color.Color { return fb.GetPixel(x, y) }

func (fb *Framebuffer) Set(x, y int, c color.Color) {
	fb.SetPixel(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}
