package folio

// PageObjects returns the engine's view of the page objects. The cache
// is rebuilt from the backing store when refetch is true or on first
// use; unsupported or unreadable objects occupy their index as a nil
// slot so that positions keep matching the backing store.
func (p *Page) PageObjects(refetch bool) []PageObject {
	if refetch || len(p.objects) == 0 {
		p.populateObjects()
	}
	out := make([]PageObject, len(p.objects))
	copy(out, p.objects)
	return out
}

func (p *Page) populateObjects() {
	n := p.page.ObjectCount()
	p.objects = make([]PageObject, n)
	for i := 0; i < n; i++ {
		obj := p.page.Object(i)
		if obj == nil {
			continue
		}
		p.objects[i] = p.populateObject(obj)
	}
}

// AddPageObject appends po to the page and returns its index, or -1 on
// failure. An empty cache stays empty; it is only ever filled by a
// full enumeration, never transitioned to partially populated by a
// single add.
func (p *Page) AddPageObject(po PageObject) int {
	obj, ok := p.createObject(po)
	if !ok {
		return -1
	}
	if err := p.page.InsertObject(obj); err != nil {
		p.log.Printf("folio: inserting object: %v", err)
		obj.Close()
		return -1
	}
	if err := p.page.GenerateContent(); err != nil {
		p.log.Printf("folio: generating content: %v", err)
	}
	if len(p.objects) > 0 {
		p.objects = append(p.objects, po)
	}
	return p.page.ObjectCount() - 1
}

// RemovePageObject deletes the page object at index. Later objects
// shift down by one. It reports whether the backing store removed the
// object.
func (p *Page) RemovePageObject(index int) bool {
	obj := p.page.Object(index)
	if obj == nil {
		return false
	}
	if err := p.page.RemoveObject(obj); err != nil {
		p.log.Printf("folio: removing object %d: %v", index, err)
		return false
	}
	obj.Close()
	if err := p.page.GenerateContent(); err != nil {
		p.log.Printf("folio: generating content: %v", err)
	}
	if len(p.objects) > 0 && index < len(p.objects) {
		p.objects = append(p.objects[:index], p.objects[index+1:]...)
	}
	return true
}

// UpdatePageObject rewrites the attributes of the backing object at
// index from po. The cached value at that index is left alone; callers
// observe the update through a refetch.
func (p *Page) UpdatePageObject(index int, po PageObject) bool {
	if index < 0 || index >= p.page.ObjectCount() {
		return false
	}
	obj := p.page.Object(index)
	if obj == nil {
		return false
	}
	if !p.updateObject(obj, po) {
		return false
	}
	if err := p.page.GenerateContent(); err != nil {
		p.log.Printf("folio: generating content: %v", err)
	}
	return true
}
