package folio

import (
	"fmt"

	"github.com/tsawler/folio/backend"
	"github.com/tsawler/folio/ocr"
)

// RecognizeImageText runs text recognition on the image object at the
// given index, for building accessibility descriptions of pages whose
// images carry no alt text. The caller owns the recognition client.
func (p *Page) RecognizeImageText(index int, client *ocr.Client) (string, error) {
	obj := p.page.Object(index)
	if obj == nil {
		return "", fmt.Errorf("folio: no page object at index %d", index)
	}
	img, ok := obj.(backend.ImageData)
	if !ok || obj.Kind() != backend.KindImage {
		return "", fmt.Errorf("folio: page object at index %d is not an image", index)
	}
	bitmap, err := img.Bitmap()
	if err != nil {
		return "", fmt.Errorf("folio: reading image: %w", err)
	}
	return client.RecognizeBitmap(bitmap)
}
