package workload

import "strconv"

// parseHours parses a numeric hours cell, treating blank or unparseable
// cells as 0 hours rather than an error — an empty cell is the normal way
// a workload sheet spells "no hours of this type for this row".
func parseHours(cell string) int {
	if cell == "" {
		return 0
	}
	n, err := strconv.Atoi(cell)
	if err != nil {
		return 0
	}
	return n
}

// hasPositiveHours reports whether a numeric hours cell parses to a value
// greater than zero.
func hasPositiveHours(cell string) bool {
	return parseHours(cell) > 0
}
