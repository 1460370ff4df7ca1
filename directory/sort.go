package directory

import "golang.org/x/exp/slices"

// sortStrings sorts a stop's bus list lexicographically so no
// map-iteration order leaks into query results.
func sortStrings(s []string) {
	slices.Sort(s)
}
