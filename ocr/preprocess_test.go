package ocr

import (
	"image"
	"image/color"
	"testing"
)

func TestPrepareConvertsToGrayscale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2000, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 2000; x++ {
			src.Set(x, y, color.RGBA{R: 200, G: 50, B: 50, A: 255})
		}
	}

	out := Prepare(src)

	if _, ok := out.(*image.Gray); !ok {
		t.Errorf("Expected *image.Gray, got %T", out)
	}
	if out.Bounds().Dx() != 2000 {
		t.Errorf("Expected width 2000 to be preserved, got %d", out.Bounds().Dx())
	}
}

func TestPrepareUpscalesSmallImages(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 600, 300))

	out := Prepare(src)

	if out.Bounds().Dx() != minRecognitionWidth {
		t.Errorf("Expected width %d, got %d", minRecognitionWidth, out.Bounds().Dx())
	}
	if out.Bounds().Dy() != 600 {
		t.Errorf("Expected height scaled to 600, got %d", out.Bounds().Dy())
	}
}

func TestPrepareLeavesWideImagesAlone(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, minRecognitionWidth, 400))

	out := Prepare(src)

	if out != src {
		t.Error("Expected a wide grayscale image to be returned unchanged")
	}
}

func TestPrepareEmptyImage(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 0, 0))

	out := Prepare(src)

	if out.Bounds().Dx() != 0 {
		t.Errorf("Expected empty image to stay empty, got width %d", out.Bounds().Dx())
	}
}

func TestPrepareNormalizesOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 2010, 120))

	out := Prepare(src)

	if out.Bounds().Min.X != 0 || out.Bounds().Min.Y != 0 {
		t.Errorf("Expected bounds anchored at origin, got %v", out.Bounds().Min)
	}
	if out.Bounds().Dx() != 2000 || out.Bounds().Dy() != 100 {
		t.Errorf("Expected 2000x100, got %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
	}
}
