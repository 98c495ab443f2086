package output

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// MaxChannelValue is the largest encoded channel value
const MaxChannelValue = 255

// Frame is a rendered image of accumulated sample sums, (0,0) at the top left
type Frame interface {
	Size() (width, height int)
	SamplesPerPixel() int
	PixelSum(x, y int) core.Color
}

// EncodeColor averages an accumulated color over its samples, applies gamma 2.0
// and maps each channel to [0,255]
func EncodeColor(sum core.Color, samplesPerPixel int) (r, g, b int) {
	scale := 1.0 / float64(max(1, samplesPerPixel))
	return encodeChannel(sum.X * scale), encodeChannel(sum.Y * scale), encodeChannel(sum.Z * scale)
}

func encodeChannel(c float64) int {
	// Negative and NaN inputs are black
	if !(c > 0) {
		return 0
	}
	return int(256 * core.Clamp(math.Sqrt(c), 0, 0.999))
}

// WriteHeader writes the plain-text PPM header
func WriteHeader(w io.Writer, width, height int) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n%d\n", width, height, MaxChannelValue); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	return nil
}

// WriteColor writes one encoded pixel as "r g b\n"
func WriteColor(w io.Writer, sum core.Color, samplesPerPixel int) error {
	r, g, b := EncodeColor(sum, samplesPerPixel)
	if _, err := fmt.Fprintf(w, "%d %d %d\n", r, g, b); err != nil {
		return fmt.Errorf("failed to write pixel: %w", err)
	}
	return nil
}

// WritePPM writes the frame as a P3 image, rows top to bottom, pixels left to right
func WritePPM(w io.Writer, frame Frame) error {
	bw := bufio.NewWriter(w)
	width, height := frame.Size()
	samples := frame.SamplesPerPixel()

	if err := WriteHeader(bw, width, height); err != nil {
		return err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if err := WriteColor(bw, frame.PixelSum(x, y), samples); err != nil {
				return err
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM output: %w", err)
	}
	return nil
}
