package folio

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/folio/model"
)

func TestAddStampAnnotation(t *testing.T) {
	_, page, p := newLetterPage()

	stamp := &StampAnnotation{
		Bounds:  model.RectFrom(100, 100, 300, 200),
		Objects: []PageObject{testPath()},
	}
	index := p.AddPageAnnotation(stamp)
	if index != 0 {
		t.Fatalf("AddPageAnnotation = %d, want 0", index)
	}
	if got := page.AnnotationCount(); got != 1 {
		t.Fatalf("backing AnnotationCount = %d, want 1", got)
	}

	annots := p.PageAnnotations()
	if len(annots) != 1 {
		t.Fatalf("PageAnnotations = %d annotations, want 1", len(annots))
	}
	got, ok := annots[0].(*StampAnnotation)
	if !ok {
		t.Fatalf("annotation 0 is %T, want *StampAnnotation", annots[0])
	}
	if diff := cmp.Diff(stamp, got); diff != "" {
		t.Errorf("stamp round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAddStampAnnotationRollback(t *testing.T) {
	_, page, p := newLetterPage()

	// A nil object slot aborts the add partway through; the annotation
	// created for it must be removed again.
	stamp := &StampAnnotation{
		Bounds:  model.RectFrom(0, 0, 10, 10),
		Objects: []PageObject{testPath(), nil},
	}
	if got := p.AddPageAnnotation(stamp); got != -1 {
		t.Errorf("AddPageAnnotation = %d, want -1", got)
	}
	if got := page.AnnotationCount(); got != 0 {
		t.Errorf("backing AnnotationCount = %d, want 0 after rollback", got)
	}
}

func TestFreeTextRoundTrip(t *testing.T) {
	_, _, p := newLetterPage()

	ft := &FreeTextAnnotation{
		Bounds:          model.RectFrom(50, 600, 250, 650),
		Text:            "Hello World",
		TextColor:       model.Color{B: 255, A: 255},
		BackgroundColor: model.Color{R: 255, G: 255, B: 255, A: 255},
		RichContent:     "<p>Hello <b>World</b></p>",
	}
	if got := p.AddPageAnnotation(ft); got != 0 {
		t.Fatalf("AddPageAnnotation = %d, want 0", got)
	}
	got, ok := p.PageAnnotations()[0].(*FreeTextAnnotation)
	if !ok {
		t.Fatalf("annotation 0 is %T, want *FreeTextAnnotation", p.PageAnnotations()[0])
	}
	if diff := cmp.Diff(ft, got); diff != "" {
		t.Errorf("free text round trip mismatch (-want +got):\n%s", diff)
	}
	if plain := got.PlainRichContent(); plain != "Hello World" {
		t.Errorf("PlainRichContent = %q, want %q", plain, "Hello World")
	}
}

func TestPlainRichContent(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{"empty", "", ""},
		{"plain", "<p>just text</p>", "just text"},
		{"nested styling", "<p><i>a</i> <b>b</b></p>", "a b"},
		{"surrounding space", "<p>  padded  </p>", "padded"},
		{"bare text", "no markup at all", "no markup at all"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := &FreeTextAnnotation{RichContent: tt.markup}
			if got := ft.PlainRichContent(); got != tt.want {
				t.Errorf("PlainRichContent = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHighlightRoundTrip(t *testing.T) {
	_, page, p := newLetterPage()

	hl := &HighlightAnnotation{
		Bounds: []model.Rect{
			model.RectFrom(10, 700, 110, 712),
			model.RectFrom(10, 680, 90, 692),
		},
		Color: model.Color{R: 255, G: 255, A: 128},
	}
	if got := p.AddPageAnnotation(hl); got != 0 {
		t.Fatalf("AddPageAnnotation = %d, want 0", got)
	}

	backing := page.Annotation(0)
	rect, err := backing.Rect()
	if err != nil {
		t.Fatalf("Rect: %v", err)
	}
	if want := model.RectFrom(10, 680, 110, 712); rect != want {
		t.Errorf("annotation rect = %+v, want the union %+v", rect, want)
	}

	got, ok := p.PageAnnotations()[0].(*HighlightAnnotation)
	if !ok {
		t.Fatalf("annotation 0 is %T, want *HighlightAnnotation", p.PageAnnotations()[0])
	}
	if diff := cmp.Diff(hl, got); diff != "" {
		t.Errorf("highlight round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestHighlightQuadShrinkKeepsSlots(t *testing.T) {
	_, page, p := newLetterPage()

	p.AddPageAnnotation(&HighlightAnnotation{
		Bounds: []model.Rect{
			model.RectFrom(10, 700, 110, 712),
			model.RectFrom(10, 680, 90, 692),
			model.RectFrom(10, 660, 70, 672),
		},
		Color: model.Color{R: 255, G: 255, A: 128},
	})

	kept := model.RectFrom(10, 700, 110, 712)
	ok := p.UpdatePageAnnotation(0, &HighlightAnnotation{
		Bounds: []model.Rect{kept},
		Color:  model.Color{R: 255, G: 255, A: 128},
	})
	if !ok {
		t.Fatal("UpdatePageAnnotation = false")
	}

	backing := page.Annotation(0)
	if got := backing.QuadCount(); got != 3 {
		t.Fatalf("QuadCount = %d, want 3: shrinking zeroes slots, it never drops them", got)
	}
	q0, _ := backing.Quad(0)
	if q0.Rect() != kept {
		t.Errorf("quad 0 = %+v, want %+v", q0.Rect(), kept)
	}
	for i := 1; i < 3; i++ {
		q, _ := backing.Quad(i)
		if !q.IsZero() {
			t.Errorf("quad %d = %+v, want zeroed", i, q)
		}
	}
}

func TestUpdateAnnotationSubtypeMismatch(t *testing.T) {
	_, _, p := newLetterPage()
	p.AddPageAnnotation(&FreeTextAnnotation{Text: "note"})

	hl := &HighlightAnnotation{
		Bounds: []model.Rect{model.RectFrom(0, 0, 10, 10)},
		Color:  model.Color{A: 255},
	}
	if p.UpdatePageAnnotation(0, hl) {
		t.Error("UpdatePageAnnotation = true across subtypes")
	}
	if p.UpdatePageAnnotation(5, hl) {
		t.Error("UpdatePageAnnotation(5) = true for out of range index")
	}
}

func TestRemovePageAnnotation(t *testing.T) {
	_, page, p := newLetterPage()
	p.AddPageAnnotation(&FreeTextAnnotation{Text: "first"})
	p.AddPageAnnotation(&FreeTextAnnotation{Text: "second"})

	if !p.RemovePageAnnotation(0) {
		t.Fatal("RemovePageAnnotation(0) = false")
	}
	if got := page.AnnotationCount(); got != 1 {
		t.Errorf("backing AnnotationCount = %d, want 1", got)
	}
	got := p.PageAnnotations()[0].(*FreeTextAnnotation)
	if got.Text != "second" {
		t.Errorf("remaining annotation Text = %q, want %q (indices must shift down)", got.Text, "second")
	}

	if p.RemovePageAnnotation(3) {
		t.Error("RemovePageAnnotation(3) = true for out of range index")
	}
}
