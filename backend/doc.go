// Package backend defines the interfaces a document renderer must
// implement to drive the interaction engine. A backend owns the
// authoritative page content: its text layer, page objects, and
// annotations. The engine layers caching, coordinate transforms,
// search, and selection on top of these primitives without knowing
// how the backing store represents them.
//
// Package memdoc provides an in-memory implementation used in tests.
package backend
