package exodus

import "strings"

// convertNames turns the rows of a fixed-width character array into host
// strings: NUL and space padding is trimmed and the result lowercased, so
// all name lookups can compare lowercase to lowercase.
func convertNames(raw []string) (names []string) {
	names = make([]string, len(raw))
	for i, row := range raw {
		names[i] = strings.ToLower(strings.Trim(row, "\x00 \t"))
	}
	return
}
