package cloud

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Render draws the placed points as filled circles on a white canvas.
func Render(points []Point, size, radius int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = white.R
		img.Pix[i+1] = white.G
		img.Pix[i+2] = white.B
		img.Pix[i+3] = white.A
	}

	for _, pt := range points {
		fillCircle(img, pt.X, pt.Y, radius, color.RGBA{
			R: pt.Colour.R, G: pt.Colour.G, B: pt.Colour.B, A: 255,
		})
	}
	return img
}

// fillCircle rasterises a filled circle by horizontal scanlines.
func fillCircle(img *image.RGBA, cx, cy float64, r int, c color.RGBA) {
	bounds := img.Bounds()
	rf := float64(r)
	minY := int(cy - rf)
	maxY := int(cy + rf)
	for y := minY; y <= maxY; y++ {
		dy := float64(y) + 0.5 - cy
		span := rf*rf - dy*dy
		if span < 0 {
			continue
		}
		half := math.Sqrt(span)
		minX := int(cx - half)
		maxX := int(cx + half)
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		if minX < bounds.Min.X {
			minX = bounds.Min.X
		}
		if maxX >= bounds.Max.X {
			maxX = bounds.Max.X - 1
		}
		for x := minX; x <= maxX; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// Preview downsamples a rendered canvas to the preview size with a
// Catmull-Rom kernel, so the preview stays faithful to the full render.
func Preview(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// SavePNG writes an image as PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close image file: %w", err)
	}
	return nil
}
