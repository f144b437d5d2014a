// Package memdoc is an in-memory implementation of the backend
// interfaces. Pages, text layers, objects, and annotations are plain
// Go values, which makes the package useful as a fixture for engine
// tests and as a reference for what a rendering backend must provide.
package memdoc
