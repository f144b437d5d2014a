// Package text provides Unicode character classification, query
// normalization, and writing-direction detection for page text.
//
// Classification distinguishes word breaks, line breaks, and characters
// that may be skipped while matching a search query (combining marks,
// soft hyphens, zero-width characters, and hyphens inside words).
// Normalization strips diacritics and folds case so that searches are
// accent and case insensitive. Direction detection identifies
// right-to-left scripts such as Arabic and Hebrew, which selection
// code uses to order boundary points correctly.
package text
