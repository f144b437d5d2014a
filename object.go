package folio

import (
	"strings"

	"github.com/tsawler/folio/backend"
	"github.com/tsawler/folio/model"
)

// PageObject is the engine-side value of one piece of page content:
// a *PathObject, *ImageObject, or *TextObject. The set is closed; a
// type switch over these three covers every case.
type PageObject interface {
	isPageObject()
}

// ObjectAttrs holds the attributes shared by all page object kinds.
// Matrix is the object's device-space matrix; the conversion to and
// from the backing store's page-space matrix happens inside the
// engine.
type ObjectAttrs struct {
	Matrix      model.Matrix
	FillColor   model.Color
	StrokeColor model.Color
	StrokeWidth float64
}

// PathObject is a vector path.
type PathObject struct {
	ObjectAttrs
	Segments []model.PathSegment
	Fill     bool
	Stroke   bool
}

// ImageObject is a raster image.
type ImageObject struct {
	ObjectAttrs
	Bitmap model.Bitmap
}

// TextObject is a run of text.
type TextObject struct {
	ObjectAttrs
	Text       string
	Font       Font
	FontSize   float64
	RenderMode model.TextRenderMode
}

func (*PathObject) isPageObject()  {}
func (*ImageObject) isPageObject() {}
func (*TextObject) isPageObject()  {}

// Font names a standard font by family and style.
type Font struct {
	Family string
	Bold   bool
	Italic bool
}

// PostScriptName maps the font to its base-14 PostScript name.
// Courier and Helvetica use Oblique for their slanted variants, Times
// uses Italic and names its regular weight Times-Roman. Families
// without style variants, and unknown families, pass through
// unchanged.
func (f Font) PostScriptName() string {
	switch f.Family {
	case "Courier", "Helvetica":
		switch {
		case f.Bold && f.Italic:
			return f.Family + "-BoldOblique"
		case f.Bold:
			return f.Family + "-Bold"
		case f.Italic:
			return f.Family + "-Oblique"
		}
		return f.Family
	case "Times":
		switch {
		case f.Bold && f.Italic:
			return "Times-BoldItalic"
		case f.Bold:
			return "Times-Bold"
		case f.Italic:
			return "Times-Italic"
		}
		return "Times-Roman"
	}
	return f.Family
}

// fontFromPostScriptName is the inverse of PostScriptName.
func fontFromPostScriptName(name string) Font {
	family, style, _ := strings.Cut(name, "-")
	if family == "Times" && style == "Roman" {
		style = ""
	}
	return Font{
		Family: family,
		Bold:   strings.Contains(style, "Bold"),
		Italic: strings.Contains(style, "Italic") || strings.Contains(style, "Oblique"),
	}
}

// createObject builds a backing object from po and writes po's
// attributes onto it. The returned object is unowned; the caller must
// insert or close it.
func (p *Page) createObject(po PageObject) (backend.Object, bool) {
	if p.doc == nil {
		return nil, false
	}
	var obj backend.Object
	var err error
	switch o := po.(type) {
	case *PathObject:
		obj, err = p.doc.CreatePath(o.Segments)
	case *ImageObject:
		obj, err = p.doc.CreateImage(o.Bitmap)
	case *TextObject:
		obj, err = p.doc.CreateText(o.Font.PostScriptName(), o.FontSize, o.Text)
	default:
		return nil, false
	}
	if err != nil || obj == nil {
		p.log.Printf("folio: creating object: %v", err)
		return nil, false
	}
	if !p.updateObject(obj, po) {
		obj.Close()
		return nil, false
	}
	return obj, true
}

// updateObject writes po's attributes onto the backing object obj.
// The object's content type must match po's; segments and text content
// are fixed at creation and are not rewritten here.
func (p *Page) updateObject(obj backend.Object, po PageObject) bool {
	switch o := po.(type) {
	case *PathObject:
		path, ok := obj.(backend.PathData)
		if !ok || obj.Kind() != backend.KindPath {
			return false
		}
		if err := path.SetDrawMode(o.Fill, o.Stroke); err != nil {
			p.log.Printf("folio: set draw mode: %v", err)
			return false
		}
		// Paths are laid out relative to the whole page; no bounds
		// correction applies.
		if !p.applyDeviceMatrix(obj, o.Matrix, model.Rect{}) {
			return false
		}
		obj.SetStrokeWidth(o.StrokeWidth)
		obj.SetStrokeColor(o.StrokeColor)
		obj.SetFillColor(o.FillColor)
		return true

	case *ImageObject:
		img, ok := obj.(backend.ImageData)
		if !ok || obj.Kind() != backend.KindImage {
			return false
		}
		if err := img.SetBitmap(o.Bitmap); err != nil {
			p.log.Printf("folio: set bitmap: %v", err)
			return false
		}
		bounds, err := obj.Bounds()
		if err != nil {
			return false
		}
		return p.applyDeviceMatrix(obj, o.Matrix, bounds)

	case *TextObject:
		txt, ok := obj.(backend.TextData)
		if !ok || obj.Kind() != backend.KindText {
			return false
		}
		if err := txt.SetText(o.Text); err != nil {
			p.log.Printf("folio: set text: %v", err)
			return false
		}
		if o.RenderMode != model.RenderModeUnknown {
			if err := txt.SetRenderMode(o.RenderMode); err != nil {
				p.log.Printf("folio: set render mode: %v", err)
				return false
			}
		}
		obj.SetFillColor(o.FillColor)
		obj.SetStrokeColor(o.StrokeColor)
		obj.SetStrokeWidth(o.StrokeWidth)
		bounds, err := obj.Bounds()
		if err != nil {
			return false
		}
		return p.applyDeviceMatrix(obj, o.Matrix, bounds)
	}
	return false
}

// applyDeviceMatrix installs the device-space matrix onto a backing
// object whose transform primitive is relative. The matrix is reset to
// identity and the inverse derivation is replayed as ordered steps;
// the order is load-bearing.
func (p *Page) applyDeviceMatrix(obj backend.Object, device model.Matrix, bounds model.Rect) bool {
	if err := obj.SetMatrix(model.Identity()); err != nil {
		p.log.Printf("folio: reset matrix: %v", err)
		return false
	}
	for _, step := range model.PageMatrixSteps(device, bounds, p.page.Height()) {
		if err := obj.Transform(step.M); err != nil {
			p.log.Printf("folio: transform %s: %v", step.Name, err)
			return false
		}
	}
	return true
}

// populateObject reads a backing object into its engine value, or nil
// when the object is of an unsupported kind or cannot be read.
func (p *Page) populateObject(obj backend.Object) PageObject {
	switch obj.Kind() {
	case backend.KindPath:
		path, ok := obj.(backend.PathData)
		if !ok {
			return nil
		}
		segments, err := path.Segments()
		if err != nil || len(segments) == 0 {
			return nil
		}
		fill, stroke, err := path.DrawMode()
		if err != nil {
			p.log.Printf("folio: path draw mode: %v", err)
			return nil
		}
		attrs, ok := p.readAttrs(obj, model.Rect{})
		if !ok {
			return nil
		}
		return &PathObject{ObjectAttrs: attrs, Segments: segments, Fill: fill, Stroke: stroke}

	case backend.KindImage:
		img, ok := obj.(backend.ImageData)
		if !ok {
			return nil
		}
		bitmap, err := img.Bitmap()
		if err != nil {
			p.log.Printf("folio: image bitmap: %v", err)
			return nil
		}
		bounds, err := obj.Bounds()
		if err != nil {
			return nil
		}
		attrs, ok := p.readAttrs(obj, bounds)
		if !ok {
			return nil
		}
		return &ImageObject{ObjectAttrs: attrs, Bitmap: bitmap}

	case backend.KindText:
		txt, ok := obj.(backend.TextData)
		if !ok {
			return nil
		}
		content, err := txt.Text()
		if err != nil {
			return nil
		}
		fontName, err := txt.FontName()
		if err != nil {
			return nil
		}
		size, err := txt.FontSize()
		if err != nil {
			return nil
		}
		mode, err := txt.RenderMode()
		if err != nil {
			mode = model.RenderModeUnknown
		}
		bounds, err := obj.Bounds()
		if err != nil {
			return nil
		}
		attrs, ok := p.readAttrs(obj, bounds)
		if !ok {
			return nil
		}
		return &TextObject{
			ObjectAttrs: attrs,
			Text:        content,
			Font:        fontFromPostScriptName(fontName),
			FontSize:    size,
			RenderMode:  mode,
		}
	}
	return nil
}

// readAttrs reads the shared attributes of a backing object,
// converting its page-space matrix to device space.
func (p *Page) readAttrs(obj backend.Object, bounds model.Rect) (ObjectAttrs, bool) {
	pageMatrix, err := obj.Matrix()
	if err != nil {
		p.log.Printf("folio: object matrix: %v", err)
		return ObjectAttrs{}, false
	}
	var attrs ObjectAttrs
	attrs.Matrix = model.ObjectDeviceMatrix(pageMatrix, bounds, p.page.Height())
	attrs.FillColor, _ = obj.FillColor()
	attrs.StrokeColor, _ = obj.StrokeColor()
	attrs.StrokeWidth, _ = obj.StrokeWidth()
	return attrs, true
}
