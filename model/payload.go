package model

// Color is an RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// Black is the default object color, fully opaque.
var Black = Color{A: 255}

// PixelFormat identifies the channel layout of a Bitmap's pixel buffer.
type PixelFormat int

const (
	// FormatBGRA is 4 bytes per pixel in blue, green, red, alpha order,
	// the layout most renderers hand back.
	FormatBGRA PixelFormat = iota
	// FormatRGBA is 4 bytes per pixel in red, green, blue, alpha order.
	FormatRGBA
	// FormatGray is 1 byte per pixel.
	FormatGray
)

// BytesPerPixel returns the pixel stride for the format, or 0 for a
// format it does not know.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case FormatBGRA, FormatRGBA:
		return 4
	case FormatGray:
		return 1
	}
	return 0
}

// Bitmap is the pixel payload of an image object. Rows are Stride bytes
// apart; Stride may exceed Width*BytesPerPixel for padded buffers.
type Bitmap struct {
	Width  int
	Height int
	Stride int
	Format PixelFormat
	Pixels []byte
}

// IsEmpty reports whether the bitmap holds no pixels.
func (b Bitmap) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0 || len(b.Pixels) == 0
}

// SegmentCommand is the drawing command of a path segment.
type SegmentCommand int

const (
	// SegmentMove starts a new subpath at the segment's end point.
	SegmentMove SegmentCommand = iota
	// SegmentLine draws a straight line to the segment's end point.
	SegmentLine
)

// PathSegment is one segment of a path object's outline, in page space.
type PathSegment struct {
	Command SegmentCommand
	X, Y    float64
	// Closed marks the segment that closes its subpath.
	Closed bool
}

// TextRenderMode controls how a text object's glyphs are painted.
type TextRenderMode int

const (
	// RenderModeUnknown marks a mode the engine does not support.
	RenderModeUnknown TextRenderMode = iota - 1
	// RenderModeFill paints glyph interiors with the fill color.
	RenderModeFill
	// RenderModeStroke outlines glyphs with the stroke color.
	RenderModeStroke
	// RenderModeFillStroke both fills and outlines glyphs.
	RenderModeFillStroke
)
