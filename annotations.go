package folio

// PageAnnotations returns the annotations on the page. The cache is
// rebuilt from the backing store on every call; unsupported subtypes
// and annotations with missing attributes occupy their index as a nil
// slot.
func (p *Page) PageAnnotations() []Annotation {
	p.populateAnnotations()
	out := make([]Annotation, len(p.annots))
	copy(out, p.annots)
	return out
}

func (p *Page) populateAnnotations() {
	n := p.page.AnnotationCount()
	p.annots = make([]Annotation, n)
	for i := 0; i < n; i++ {
		annot := p.page.Annotation(i)
		if annot == nil {
			continue
		}
		p.annots[i] = p.populateAnnotation(annot)
	}
}

// AddPageAnnotation adds a to the page and returns its index, or -1
// on failure. A partially created annotation is removed again before
// returning so a failed add leaves the page unchanged. As with page
// objects, an empty cache is never transitioned to partially populated
// by a single add.
func (p *Page) AddPageAnnotation(a Annotation) int {
	if a == nil {
		return -1
	}
	annot, ok := p.createAnnotation(a)
	if !ok {
		if annot != nil {
			if i := p.page.AnnotationIndex(annot); i >= 0 {
				p.page.RemoveAnnotation(i)
			}
		}
		return -1
	}
	if err := p.page.GenerateContent(); err != nil {
		p.log.Printf("folio: generating content: %v", err)
	}
	if len(p.annots) > 0 {
		p.annots = append(p.annots, a)
	}
	return p.page.AnnotationIndex(annot)
}

// RemovePageAnnotation deletes the annotation at index. Later
// annotations shift down by one.
func (p *Page) RemovePageAnnotation(index int) bool {
	p.populateAnnotations()
	if index < 0 || index >= len(p.annots) {
		return false
	}
	if err := p.page.RemoveAnnotation(index); err != nil {
		p.log.Printf("folio: removing annotation %d: %v", index, err)
		return false
	}
	if err := p.page.GenerateContent(); err != nil {
		p.log.Printf("folio: generating content: %v", err)
	}
	p.annots = append(p.annots[:index], p.annots[index+1:]...)
	return true
}

// UpdatePageAnnotation rewrites the backing annotation at index from
// a. The slot must hold a supported annotation and a's subtype must
// match it.
func (p *Page) UpdatePageAnnotation(index int, a Annotation) bool {
	p.populateAnnotations()
	if index < 0 || index >= len(p.annots) || p.annots[index] == nil {
		return false
	}
	if a == nil {
		return false
	}
	annot := p.page.Annotation(index)
	if annot == nil {
		return false
	}
	if !p.updateAnnotation(annot, a) {
		return false
	}
	if err := p.page.GenerateContent(); err != nil {
		p.log.Printf("folio: generating content: %v", err)
	}
	return true
}
