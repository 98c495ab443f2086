package output

import (
	"fmt"

	"github.com/fogleman/gg"
)

// SavePNG writes the frame to path as a PNG using the same encoding as the PPM stream
func SavePNG(path string, frame Frame) error {
	width, height := frame.Size()
	samples := frame.SamplesPerPixel()

	dc := gg.NewContext(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b := EncodeColor(frame.PixelSum(x, y), samples)
			dc.SetRGB255(r, g, b)
			dc.SetPixel(x, y)
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save PNG %s: %w", path, err)
	}
	return nil
}
