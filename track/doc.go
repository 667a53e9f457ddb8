/*
Package track loads GPS sample tables and turns them into numeric tracks.

A Table is the file as read: a header row and the raw cell strings, in file
order. Nothing in this package mutates a Table after it is loaded.

# Column detection

Input files name their columns differently ("Latitude (deg)", "lat",
"Course Over Ground", "heading", ...). A Resolver classifies each header by
substring tests on the lowercased, trimmed name:

	m, err := track.StrictResolver.Resolve(table.Columns)
	if err != nil {
	    // *track.ResolutionError lists the missing categories and the
	    // columns that were available
	}
	tr, err := track.Extract(table, m)

Rules are evaluated per column in a fixed order (latitude, longitude,
heading). The first rule that matches classifies the column, and the first
column seen for a category wins. A header such as "lat_long" is therefore a
latitude column for the permissive resolver, never a longitude column.

# Statistics

Summarize reports the coordinate and heading ranges and the haversine path
length. HeadingHistogram bins raw heading values into 36 buckets of 10°.
*/
package track
