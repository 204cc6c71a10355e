// Package diagram renders the CIE 1931 xy chromaticity diagram with
// the converted spectrum's coordinates marked on it.
package diagram

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/esimov/colorquant"

	"github.com/spectronaut/spdrgb/cmf"
	"github.com/spectronaut/spdrgb/colorspace"
)

// Options controls the rendered image.
type Options struct {
	// Size is the width and height in pixels.
	Size int
	// Quantize, when positive, reduces the rendered image to that
	// many colors.
	Quantize int
}

// diagram plot area in chromaticity coordinates
const (
	maxX = 0.8
	maxY = 0.9
)

// Render draws the spectral locus, shaded with the approximate color
// of each locus wavelength, and marks point with a filled circle when
// hasPoint is true.
func Render(t *cmf.Table, point colorspace.Chromaticity, hasPoint bool, opts Options) image.Image {
	if opts.Size <= 0 {
		opts.Size = 800
	}

	img := image.NewNRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	fill(img, color.NRGBA{255, 255, 255, 255})
	grid(img, opts.Size)

	xs, ys := t.Locus()
	for i := 0; i+1 < len(xs); i++ {
		c := locusColor(xs[i], ys[i])
		line(img,
			px(xs[i], opts.Size), py(ys[i], opts.Size),
			px(xs[i+1], opts.Size), py(ys[i+1], opts.Size),
			c)
	}
	// line of purples
	if n := len(xs); n > 1 {
		line(img,
			px(xs[n-1], opts.Size), py(ys[n-1], opts.Size),
			px(xs[0], opts.Size), py(ys[0], opts.Size),
			color.NRGBA{128, 0, 128, 255})
	}

	if hasPoint {
		disc(img, px(point.X, opts.Size), py(point.Y, opts.Size), opts.Size/100+2,
			color.NRGBA{220, 20, 20, 255})
	}

	if opts.Quantize > 0 {
		out := image.NewNRGBA(img.Bounds())
		colorquant.NoDither.Quantize(img, out, opts.Quantize, false, true)
		return out
	}

	return img
}

// WritePNG encodes img to a PNG file at path.
func WritePNG(path string, img image.Image) error {
	f, e := os.Create(path)
	if e != nil {
		return e
	}
	defer f.Close()

	return png.Encode(f, img)
}

// locusColor approximates the display color of the monochromatic
// stimulus at chromaticity (x, y).
func locusColor(x, y float64) color.NRGBA {
	if y <= 0 {
		return color.NRGBA{0, 0, 0, 255}
	}
	xyz := colorspace.XYZ{X: x / y, Y: 1, Z: (1 - x - y) / y}
	rgb := colorspace.ToSRGB(xyz)
	return color.NRGBA{rgb.R, rgb.G, rgb.B, 255}
}

// px and py map chromaticity coordinates to pixel coordinates, with
// the y axis flipped so the origin sits bottom-left.
func px(x float64, size int) int { return int(x / maxX * float64(size-1)) }
func py(y float64, size int) int { return (size - 1) - int(y/maxY*float64(size-1)) }

func fill(img *image.NRGBA, c color.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// grid draws light gridlines every 0.1 in both axes.
func grid(img *image.NRGBA, size int) {
	c := color.NRGBA{225, 225, 225, 255}
	for v := 0.1; v < maxX; v += 0.1 {
		line(img, px(v, size), 0, px(v, size), size-1, c)
	}
	for v := 0.1; v < maxY; v += 0.1 {
		line(img, 0, py(v, size), size-1, py(v, size), c)
	}
}

// line draws a segment with the Bresenham algorithm.
func line(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		img.SetNRGBA(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func disc(img *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}
