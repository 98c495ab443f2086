package renderer

import "github.com/df07/go-weekend-raytracer/pkg/core"

// Image holds accumulated sample sums in output order: row 0 is the top scanline
type Image struct {
	width, height   int
	samplesPerPixel int
	rows            [][]core.Color
}

// NewImage creates an image with empty (black) rows
func NewImage(width, height, samplesPerPixel int) *Image {
	rows := make([][]core.Color, height)
	for y := range rows {
		rows[y] = make([]core.Color, width)
	}
	return &Image{
		width:           width,
		height:          height,
		samplesPerPixel: samplesPerPixel,
		rows:            rows,
	}
}

// SetScanline stores the pixels of scanline j, counted from the bottom
func (img *Image) SetScanline(j int, pixels []core.Color) {
	img.rows[img.height-1-j] = pixels
}

// Size returns the image dimensions
func (img *Image) Size() (width, height int) {
	return img.width, img.height
}

// SamplesPerPixel returns how many samples each pixel sum holds
func (img *Image) SamplesPerPixel() int {
	return img.samplesPerPixel
}

// PixelSum returns the accumulated color at (x, y) with (0,0) at the top left
func (img *Image) PixelSum(x, y int) core.Color {
	return img.rows[y][x]
}

// PixelColor returns the averaged linear color at (x, y)
func (img *Image) PixelColor(x, y int) core.Color {
	return img.rows[y][x].Divide(float64(img.samplesPerPixel))
}
