package render

import (
	"strconv"
	"strings"

	"medpin/internal/stats"
)

// Floats renders a dataset as a bracketed, space-separated list.
func Floats(values []float64, precision int) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, v := range values {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', precision, 64))
	}
	sb.WriteString("]")
	return sb.String()
}

// Ints renders an index list as a bracketed, space-separated list.
func Ints(values []int) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, v := range values {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteString("]")
	return sb.String()
}

// Report produces the console summary for a median result. precision
// is the number of significant digits, or -1 for the shortest exact
// representation.
func Report(values []float64, r stats.Result, precision int) string {
	var sb strings.Builder
	sb.WriteString("values:  " + Floats(values, precision) + "\n")
	if r.Empty() {
		sb.WriteString("median:  no data")
		return sb.String()
	}
	sb.WriteString("median:  " + strconv.FormatFloat(r.Median, 'g', precision, 64) + "\n")
	sb.WriteString("indices: " + Ints(r.Indices))
	return sb.String()
}
