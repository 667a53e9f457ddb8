// Package geometry turns compass headings into drawable heading segments.
//
// Latitude and longitude are treated as a flat Cartesian plane: longitude is
// x, latitude is y, and one degree on either axis has the same length. This
// is only meaningful for small regions, which is all a heading indicator needs.
//
// The heading recorded at a row describes the course flown on arrival at that
// row, so the segment drawn at row i uses the heading recorded at row i+1.
// The last row has no successor and keeps its own heading.
package geometry
