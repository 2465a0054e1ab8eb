package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
)

// channelValue converts one linear color channel to its 8-bit output value:
// gamma-2 correction (square root), clamp to [0, 0.999], scale by 256 and
// truncate
func channelValue(linear float64) int {
	corrected := math.Sqrt(math.Max(linear, 0))
	if corrected > 0.999 {
		corrected = 0.999
	}
	return int(256 * corrected)
}

// WritePPM emits the framebuffer as a plain-text PPM (P3) image: the header
// "P3\n{width} {height}\n255\n" followed by one "R G B" triplet per pixel,
// rows top-to-bottom, columns left-to-right.
func WritePPM(w io.Writer, fb *Framebuffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return fmt.Errorf("ppm: writing header: %w", err)
	}

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y).GetColor()
			_, err := fmt.Fprintf(bw, "%d %d %d\n",
				channelValue(c.X), channelValue(c.Y), channelValue(c.Z))
			if err != nil {
				return fmt.Errorf("ppm: writing pixel (%d,%d): %w", x, y, err)
			}
		}
	}

	return bw.Flush()
}

// WritePNG encodes the framebuffer as a PNG with the same gamma correction
// and quantization as the PPM output
func WritePNG(w io.Writer, fb *Framebuffer) error {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y).GetColor()
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(channelValue(c.X)),
				G: uint8(channelValue(c.Y)),
				B: uint8(channelValue(c.Z)),
				A: 255,
			})
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png: encoding image: %w", err)
	}
	return nil
}
