package trackviz

import (
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/theoremus-urban-solutions/trackviz/track"
)

// Preview renders the first n rows of t as an aligned, indexed text table.
func Preview(t *track.Table, n int) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', tabwriter.AlignRight)

	sb.Grow(64 * (n + 1))
	tw.Write([]byte("\t" + strings.Join(t.Columns, "\t") + "\t\n"))
	for i, row := range t.Head(n).Rows {
		tw.Write([]byte(strconv.Itoa(i) + "\t" + strings.Join(row, "\t") + "\t\n"))
	}
	tw.Flush()
	return strings.TrimRight(sb.String(), "\n")
}
