// Package folio is a page interaction engine for rendered documents.
// Given a backend page, it provides coordinate transforms between page
// space and device space, accent-insensitive text search, word and
// boundary selection with right-to-left support, page object and
// annotation editing with cache synchronization, and dirty rectangle
// tracking for incremental redraws.
//
// Basic usage:
//
//	page := folio.New(doc, backendPage)
//	matches := page.FindMatches("séance")
//	bounds := page.BoundsOfMatches(matches)
//
// Page space has its origin at the bottom left corner with y growing
// upward; device space has its origin at the top left corner with y
// growing downward. All public search and selection results are in
// device space unless noted otherwise.
package folio

import (
	"github.com/tsawler/folio/backend"
	"github.com/tsawler/folio/model"
)

// Page wraps a backend page with interaction state: the lazily loaded
// text layer, cached page objects and annotations, and the pending
// invalidated region. Page is not safe for concurrent use.
type Page struct {
	doc  backend.Document
	page backend.Page

	log             Logger
	fingerTolerance float64

	// textState tracks the lazy text layer load: 0 not attempted,
	// 1 loaded, -1 load failed.
	textState int
	text      backend.TextPage
	charCount int

	// firstPrintable and lastPrintable are computed once, on demand.
	// -1 means the page has no printable character; the scanned flags
	// keep that result sticky too.
	firstPrintable int
	lastPrintable  int
	firstScanned   bool
	lastScanned    bool

	objects []PageObject
	annots  []Annotation

	invalid    model.DeviceRect
	hasInvalid bool
}

// New wraps page in an interaction engine. doc is used to create page
// objects for editing operations; it may be nil for read-only use.
func New(doc backend.Document, page backend.Page, opts ...Option) *Page {
	p := &Page{
		doc:             doc,
		page:            page,
		log:             NopLogger{},
		fingerTolerance: defaultFingerTolerance,
		firstPrintable:  -1,
		lastPrintable:   -1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
