//go:build !ocr

// Package ocr recognizes text in page images, backing the engine's
// image alt text support.
//
// This is the stub used when the "ocr" build tag is not set; every
// operation returns ErrNotEnabled. Rebuild with the tag to enable
// recognition:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed on the system.
package ocr

import "errors"

// ErrNotEnabled is returned when recognition is requested but support
// was not compiled in. Rebuild with -tags ocr to enable it.
var ErrNotEnabled = errors.New("text recognition not enabled; rebuild with -tags ocr")

// Client is a stub recognition client.
type Client struct{}

// New returns ErrNotEnabled.
func New() (*Client, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op. It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// RecognizeImage returns ErrNotEnabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrNotEnabled
}

// SetLanguage returns ErrNotEnabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrNotEnabled
}
