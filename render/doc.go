// Package render draws GPS tracks and heading histograms with go-chart.
//
// A Figure is one or more panels laid out left to right. The track panel
// scatters every (lon, lat) sample, draws one heading segment per sample and
// optionally the path through the samples in table order. Its axis ranges
// are widened so a degree of latitude and a degree of longitude cover the
// same number of pixels, otherwise headings would appear skewed.
package render
