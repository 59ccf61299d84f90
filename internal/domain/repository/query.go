package repository

import "strings"

// Filter narrows listing queries by name. Both fields are optional; the zero
// value matches everything. Results are always returned in a deterministic
// order (by name) so the paginator downstream stays stable.
type Filter struct {
	FirstLetter string // Keep only names starting with this prefix.
	SearchText  string // Keep only names containing this substring.
}

// Matches reports whether name passes the filter.
func (f Filter) Matches(name string) bool {
	if f.FirstLetter != "" && !strings.HasPrefix(name, f.FirstLetter) {
		return false
	}

	return f.SearchText == "" || strings.Contains(name, f.SearchText)
}
