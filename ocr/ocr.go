//go:build ocr

// Package ocr recognizes text in page images, backing the engine's
// image alt text support. It wraps the Tesseract engine via gosseract
// and requires Tesseract to be installed on the system:
//
//	brew install tesseract        (macOS)
//	apt-get install tesseract-ocr (Ubuntu/Debian)
//
// Builds without the "ocr" tag get a stub whose operations return
// ErrNotEnabled.
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for text recognition.
type Client struct {
	client *gosseract.Client
}

// New creates a recognition client. Close it when done to release
// Tesseract resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases recognition resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage runs recognition on encoded image data (PNG, TIFF,
// JPEG) and returns the recognized text with surrounding whitespace
// trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognition failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// SetLanguage sets the recognition language(s). Multiple languages are
// "+" separated (e.g. "eng+fra"). Default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets how Tesseract analyzes the page layout. See
// gosseract.PageSegMode for available modes.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}
