// Package formatter serializes rendered tracks for use outside the figure.
//
// BuildGeoJSON writes the sampled path and every heading segment as a GeoJSON
// FeatureCollection, so the same geometry that was drawn can be inspected in
// any GIS tool.
package formatter
