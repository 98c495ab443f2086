package output

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestSavePNG(t *testing.T) {
	frame := &testFrame{
		rows: [][]core.Color{
			{core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1)},
			{core.NewVec3(0, 0, 0), core.NewVec3(0.25, 0.25, 0.25), core.NewVec3(9, 9, 9)},
		},
		samples: 1,
	}

	path := filepath.Join(t.TempDir(), "render.png")
	if err := SavePNG(path, frame); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 3 || bounds.Dy() != 2 {
		t.Fatalf("Expected 3x2 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			r, g, b := EncodeColor(frame.PixelSum(x, y), 1)
			pr, pg, pb, _ := img.At(x, y).RGBA()
			if int(pr>>8) != r || int(pg>>8) != g || int(pb>>8) != b {
				t.Errorf("Pixel (%d,%d): expected (%d,%d,%d), got (%d,%d,%d)", x, y, r, g, b, pr>>8, pg>>8, pb>>8)
			}
		}
	}
}

func TestSavePNG_BadPath(t *testing.T) {
	frame := &testFrame{rows: [][]core.Color{{core.NewVec3(1, 1, 1)}}, samples: 1}
	path := filepath.Join(t.TempDir(), "missing", "render.png")
	if err := SavePNG(path, frame); err == nil {
		t.Error("Expected error for a path in a missing directory")
	}
}
