package ocr

import (
	"image"

	"github.com/tsawler/fintab/model"
)

// Token is one recognized word with its layout placement.
type Token struct {
	// Text is the recognized word text.
	Text string

	// Confidence is the engine's confidence for this token on the 0-100
	// scale.
	Confidence float64

	// Block identifies the layout block the token belongs to, as segmented
	// by the engine.
	Block int

	// BBox is the token's bounding box in image pixels (top-left origin).
	BBox model.BBox
}

// bboxFromRect converts a pixel rectangle to a model bounding box.
func bboxFromRect(r image.Rectangle) model.BBox {
	return model.BBox{
		X0: float64(r.Min.X),
		Y0: float64(r.Min.Y),
		X1: float64(r.Max.X),
		Y1: float64(r.Max.Y),
	}
}
