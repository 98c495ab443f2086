package renderer

import (
	"math/rand"
	"time"
)

// Render traces the whole image in parallel, one scanline per task. Scanline j uses a generator
// seeded from (Seed, j), so the result is the same for any worker count.
func (rt *Raytracer) Render() (*Image, RenderStats) {
	startTime := time.Now()
	height := rt.config.Height

	pool := NewWorkerPool(rt, rt.config.NumWorkers)
	pool.Start()

	// Top scanline first, matching output order
	for j := height - 1; j >= 0; j-- {
		pool.SubmitTask(RowTask{
			Row:    j,
			Random: rand.New(rand.NewSource(rowSeed(rt.config.Seed, j))),
		})
	}

	img := NewImage(rt.config.Width, height, rt.config.SamplesPerPixel)
	for remaining := height; remaining > 0; remaining-- {
		rt.logger.Printf("Scanlines remaining: %d\n", remaining)
		result, _ := pool.GetResult()
		img.SetScanline(result.Row, result.Pixels)
	}
	pool.Stop()

	rt.logger.Printf("Done.\n")

	stats := RenderStats{
		TotalPixels:  rt.config.Width * height,
		TotalSamples: rt.config.Width * height * rt.config.SamplesPerPixel,
		Scanlines:    height,
		Workers:      pool.GetNumWorkers(),
		Elapsed:      time.Since(startTime),
	}
	return img, stats
}

func rowSeed(seed int64, row int) int64 {
	return seed*1_000_003 + int64(row)
}
