// Package model defines the geometric and payload primitives shared by the
// page interaction engine and its backing store: points and rectangles in
// page and device space, affine matrices and the page/device matrix
// derivations, quadrilaterals, colors, bitmaps, and path segments.
//
// Two coordinate systems appear throughout:
//
//   - Page space: the PDF's native system. The origin is the bottom-left
//     corner of the page and y increases upward. Units are page points.
//   - Device space: the rendering surface. The origin is the top-left corner
//     and y increases downward. Units are pixels.
//
// The two are never mixed implicitly; converting between them always goes
// through an explicit transform on the page.
package model
