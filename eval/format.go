package eval

import "strconv"

// DefaultPrecision is the number of decimals printed when none is
// configured, the same as C's %f.
const DefaultPrecision = 6

// Format renders v with precision decimals, or in the shortest form that
// parses back to v when precision is negative.
func Format(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
