// Package trackviz plots GPS tracks with a heading indicator at every sample.
//
// A track file (CSV with a header row, or GPX) is loaded, its latitude,
// longitude and heading columns are found by name, and the result is drawn
// as a scatter of points, a short segment per point pointing along the
// heading recorded at the next sample, and optionally a heading histogram.
//
// # Entry points
//
//   - LoadAndPlotGPSTrack: strict column names (latitude/longitude/course),
//     single panel, logs a preview and summary of the data.
//   - PlotWithCustomSettings: permissive names (lat/lon/head), custom marker
//     size and colours, and a second panel with the heading distribution.
//
// Both write the figure to Options.Output (PNG or SVG by extension, a temp
// PNG when empty) and may open it with the system viewer.
package trackviz
