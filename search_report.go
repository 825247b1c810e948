package hodl

import (
	"fmt"
	"strings"
)

// SearchReport summarizes symbol search results as plain text, in input
// order. It is pure: callers decide where the string goes.
func SearchReport(results []SearchResult) string {
	switch len(results) {
	case 0:
		return "Search returned no results."
	case 1:
		return fmt.Sprintf("Search result: %s, id=%s", results[0].Name, results[0].ID)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Search returned %d results:", len(results))
	for _, r := range results {
		fmt.Fprintf(&b, "\n\t - %s, id=%s", r.Name, r.ID)
	}
	return b.String()
}
