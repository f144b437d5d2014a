// Package imaging converts between raw page bitmaps and Go images,
// and provides the scaling used to prepare small images for text
// recognition.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/tsawler/folio/model"
)

// Decode converts a raw bitmap into an RGBA image. BGRA input has its
// red and blue channels swapped, grayscale input is expanded, and RGBA
// input is copied row by row to drop any stride padding.
func Decode(b model.Bitmap) (*image.RGBA, error) {
	if b.IsEmpty() {
		return nil, fmt.Errorf("imaging: empty bitmap")
	}
	bpp := b.Format.BytesPerPixel()
	if bpp == 0 {
		return nil, fmt.Errorf("imaging: unknown pixel format %d", b.Format)
	}
	stride := b.Stride
	if stride == 0 {
		stride = b.Width * bpp
	}
	if len(b.Pixels) < stride*b.Height {
		return nil, fmt.Errorf("imaging: pixel buffer too short: %d < %d",
			len(b.Pixels), stride*b.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		src := b.Pixels[y*stride:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < b.Width; x++ {
			switch b.Format {
			case model.FormatBGRA:
				dst[x*4+0] = src[x*4+2]
				dst[x*4+1] = src[x*4+1]
				dst[x*4+2] = src[x*4+0]
				dst[x*4+3] = src[x*4+3]
			case model.FormatRGBA:
				copy(dst[x*4:x*4+4], src[x*4:x*4+4])
			case model.FormatGray:
				g := src[x]
				dst[x*4+0] = g
				dst[x*4+1] = g
				dst[x*4+2] = g
				dst[x*4+3] = 0xFF
			}
		}
	}
	return img, nil
}

// SwapRedBlue exchanges the first and third channel of every pixel in
// place, converting between BGRA and RGBA byte order. Gray bitmaps are
// returned unchanged.
func SwapRedBlue(b model.Bitmap) {
	if b.Format == model.FormatGray {
		return
	}
	stride := b.Stride
	if stride == 0 {
		stride = b.Width * 4
	}
	for y := 0; y < b.Height; y++ {
		row := b.Pixels[y*stride:]
		for x := 0; x < b.Width; x++ {
			row[x*4], row[x*4+2] = row[x*4+2], row[x*4]
		}
	}
}

// Scale resizes img to width by height using bilinear interpolation.
func Scale(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// EncodePNG serializes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("imaging: encoding png: %w", err)
	}
	return buf.Bytes(), nil
}
