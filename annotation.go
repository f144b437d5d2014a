package folio

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/folio/backend"
	"github.com/tsawler/folio/model"
)

// Annotation is the engine-side value of one page annotation: a
// *StampAnnotation, *HighlightAnnotation, or *FreeTextAnnotation. The
// set is closed; a type switch over these three covers every case.
type Annotation interface {
	isAnnotation()
}

// StampAnnotation holds arbitrary page objects as its appearance. Only
// path and image objects are carried; anything else occupies its index
// as a nil slot.
type StampAnnotation struct {
	Bounds  model.Rect
	Objects []PageObject
}

// HighlightAnnotation marks one page-space rectangle per highlighted
// line.
type HighlightAnnotation struct {
	Bounds []model.Rect
	Color  model.Color
}

// FreeTextAnnotation places free-standing text on the page.
// RichContent optionally carries the text as rich content markup.
type FreeTextAnnotation struct {
	Bounds          model.Rect
	Text            string
	TextColor       model.Color
	BackgroundColor model.Color
	RichContent     string
}

func (*StampAnnotation) isAnnotation()     {}
func (*HighlightAnnotation) isAnnotation() {}
func (*FreeTextAnnotation) isAnnotation()  {}

// PlainRichContent extracts the plain text from the annotation's rich
// content markup, which documents store as a small XHTML fragment. It
// returns "" when there is no markup or it cannot be parsed.
func (f *FreeTextAnnotation) PlainRichContent() string {
	if f.RichContent == "" {
		return ""
	}
	node, err := html.Parse(strings.NewReader(f.RichContent))
	if err != nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)
	return strings.TrimSpace(b.String())
}

// unionBounds folds a highlight's per-line rectangles into the
// annotation's overall rectangle.
func unionBounds(rects []model.Rect) model.Rect {
	var out model.Rect
	have := false
	for _, r := range rects {
		if r.IsEmpty() {
			continue
		}
		if have {
			out = out.Union(r)
		} else {
			out = r
			have = true
		}
	}
	return out
}

// populateAnnotation reads a backing annotation into its engine value,
// or nil when the subtype is unsupported or required attributes are
// missing.
func (p *Page) populateAnnotation(annot backend.Annotation) Annotation {
	switch annot.Subtype() {
	case backend.SubtypeStamp:
		rect, err := annot.Rect()
		if err != nil {
			p.log.Printf("folio: stamp rect: %v", err)
			return nil
		}
		stamp := &StampAnnotation{Bounds: rect}
		for i := 0; i < annot.ObjectCount(); i++ {
			obj := annot.Object(i)
			var po PageObject
			if obj != nil {
				switch obj.Kind() {
				case backend.KindPath, backend.KindImage:
					po = p.populateObject(obj)
				}
			}
			// nil slots are kept so indices line up with the store
			stamp.Objects = append(stamp.Objects, po)
		}
		return stamp

	case backend.SubtypeHighlight:
		color, err := annot.Color()
		if err != nil {
			p.log.Printf("folio: highlight color: %v", err)
			return nil
		}
		var bounds []model.Rect
		for i := 0; i < annot.QuadCount(); i++ {
			q, err := annot.Quad(i)
			if err != nil {
				p.log.Printf("folio: highlight quad %d: %v", i, err)
				break
			}
			bounds = append(bounds, q.Rect())
		}
		return &HighlightAnnotation{Bounds: bounds, Color: color}

	case backend.SubtypeFreeText:
		rect, err := annot.Rect()
		if err != nil {
			p.log.Printf("folio: free text rect: %v", err)
			return nil
		}
		contents, err := annot.Contents()
		if err != nil {
			return nil
		}
		ft := &FreeTextAnnotation{Bounds: rect, Text: contents}
		ft.TextColor, _ = annot.TextColor()
		ft.BackgroundColor, _ = annot.BackgroundColor()
		ft.RichContent, _ = annot.RichContent()
		return ft
	}
	return nil
}

// createAnnotation builds a backing annotation from a. On failure the
// partially built annotation is returned alongside false so the caller
// can remove it from the page.
func (p *Page) createAnnotation(a Annotation) (backend.Annotation, bool) {
	var subtype backend.AnnotationSubtype
	switch a.(type) {
	case *StampAnnotation:
		subtype = backend.SubtypeStamp
	case *HighlightAnnotation:
		subtype = backend.SubtypeHighlight
	case *FreeTextAnnotation:
		subtype = backend.SubtypeFreeText
	default:
		return nil, false
	}
	annot, err := p.page.CreateAnnotation(subtype)
	if err != nil || annot == nil {
		p.log.Printf("folio: creating annotation: %v", err)
		return nil, false
	}
	if !p.updateAnnotation(annot, a) {
		return annot, false
	}
	return annot, true
}

// updateAnnotation writes a's attributes onto the backing annotation.
// The subtypes must match.
func (p *Page) updateAnnotation(annot backend.Annotation, a Annotation) bool {
	switch v := a.(type) {
	case *StampAnnotation:
		if annot.Subtype() != backend.SubtypeStamp {
			return false
		}
		if err := annot.SetRect(v.Bounds); err != nil {
			p.log.Printf("folio: stamp rect: %v", err)
			return false
		}
		// Rewrite the appearance wholesale: drop existing objects,
		// then append the new set.
		for annot.ObjectCount() > 0 {
			if err := annot.RemoveObject(0); err != nil {
				p.log.Printf("folio: clearing stamp object: %v", err)
				return false
			}
		}
		for _, po := range v.Objects {
			if po == nil {
				return false
			}
			obj, ok := p.createObject(po)
			if !ok {
				return false
			}
			if err := annot.AppendObject(obj); err != nil {
				p.log.Printf("folio: appending stamp object: %v", err)
				obj.Close()
				return false
			}
		}
		return true

	case *HighlightAnnotation:
		if annot.Subtype() != backend.SubtypeHighlight {
			return false
		}
		if err := annot.SetRect(unionBounds(v.Bounds)); err != nil {
			p.log.Printf("folio: highlight rect: %v", err)
			return false
		}
		if err := annot.SetColor(v.Color); err != nil {
			p.log.Printf("folio: highlight color: %v", err)
			return false
		}
		// Resync quads in place: overwrite the shared prefix, append
		// any surplus, and zero trailing slots rather than removing
		// them. Slot count never shrinks.
		existing := annot.QuadCount()
		for i, r := range v.Bounds {
			q := model.QuadFromRect(r)
			var err error
			if i < existing {
				err = annot.SetQuad(i, q)
			} else {
				err = annot.AppendQuad(q)
			}
			if err != nil {
				p.log.Printf("folio: highlight quad %d: %v", i, err)
				return false
			}
		}
		for i := len(v.Bounds); i < existing; i++ {
			if err := annot.SetQuad(i, model.Quad{}); err != nil {
				p.log.Printf("folio: zeroing quad %d: %v", i, err)
				return false
			}
		}
		return true

	case *FreeTextAnnotation:
		if annot.Subtype() != backend.SubtypeFreeText {
			return false
		}
		if err := annot.SetRect(v.Bounds); err != nil {
			p.log.Printf("folio: free text rect: %v", err)
			return false
		}
		if err := annot.SetContents(v.Text); err != nil {
			p.log.Printf("folio: free text contents: %v", err)
			return false
		}
		annot.SetTextColor(v.TextColor)
		annot.SetBackgroundColor(v.BackgroundColor)
		if v.RichContent != "" {
			annot.SetRichContent(v.RichContent)
		}
		return true
	}
	return false
}
