package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of camera rays traced
	Scanlines    int           // Number of scanlines rendered
	Workers      int           // Number of workers used
	Elapsed      time.Duration // Wall-clock render time
}

// SamplesPerSecond returns the camera-ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}
