package ocr

import (
	"image"

	"github.com/tsawler/folio/internal/imaging"
	"github.com/tsawler/folio/model"
)

// minRecognizeSide is the smallest image dimension Tesseract handles
// well. Smaller images are upscaled before recognition.
const minRecognizeSide = 300

// RecognizeBitmap runs recognition on a raw page bitmap. Small images
// are upscaled first, since recognition accuracy drops sharply below
// roughly 300 pixels per side.
func (c *Client) RecognizeBitmap(b model.Bitmap) (string, error) {
	img, err := imaging.Decode(b)
	if err != nil {
		return "", err
	}

	var scaled image.Image = img
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if side := min(w, h); side > 0 && side < minRecognizeSide {
		factor := (minRecognizeSide + side - 1) / side
		scaled = imaging.Scale(img, w*factor, h*factor)
	}

	data, err := imaging.EncodePNG(scaled)
	if err != nil {
		return "", err
	}
	return c.RecognizeImage(data)
}
