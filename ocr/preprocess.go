package ocr

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// minRecognitionWidth is the narrowest image width Tesseract handles well;
// smaller renders are upscaled before recognition.
const minRecognitionWidth = 1200

// Prepare normalizes a page image for recognition: converts to grayscale
// and upscales images narrower than minRecognitionWidth with Catmull-Rom
// resampling. Images that are already wide enough are only grayscaled.
func Prepare(img image.Image) image.Image {
	gray := toGray(img)

	width := gray.Bounds().Dx()
	if width >= minRecognitionWidth || width == 0 {
		return gray
	}

	scale := float64(minRecognitionWidth) / float64(width)
	dst := image.NewGray(image.Rect(0, 0, minRecognitionWidth, int(float64(gray.Bounds().Dy())*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), gray, gray.Bounds(), draw.Over, nil)
	return dst
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}

	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x-bounds.Min.X, y-bounds.Min.Y, color.GrayModel.Convert(img.At(x, y)))
		}
	}
	return gray
}
