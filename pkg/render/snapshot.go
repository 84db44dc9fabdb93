package render

import (
	"fmt"
	"image"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// Downsample shrinks img by an integer factor with CatmullRom filtering.
// A factor below 2 returns img itself when it is already an *image.RGBA
// and a copy otherwise.
func Downsample(img image.Image, factor int) *image.RGBA {
	b := img.Bounds()
	if factor < 2 {
		if rgba, ok := img.(*image.RGBA); ok {
			return rgba
		}
		dst := image.NewRGBA(b)
		draw.Draw(dst, b, img, b.Min, draw.Src)
		return dst
	}
	w, h := max(b.Dx()/factor, 1), max(b.Dy()/factor, 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// SaveWebP writes fb as a lossless WebP image, first shrinking it by
// supersample when that is 2 or more. Render into a framebuffer supersample
// times the wanted size, with a wireframe pen of about supersample/2, to
// get smooth lines of visible weight.
func SaveWebP(fb *Framebuffer, path string, supersample int) error {
	img := Downsample(fb, supersample)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close() //nolint:errcheck // closed explicitly on success

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("WebP encode: %w", err)
	}
	return f.Close()
}
