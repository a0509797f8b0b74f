package portfolio

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fold lowercases s with Unicode rules. A Caser is not safe for concurrent
// use, so one is built per call.
func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

// containsFold reports whether the folded form of s contains term. term must
// already be folded.
func containsFold(s, term string) bool {
	return strings.Contains(fold(s), term)
}

func anyContainsFold(list []string, term string) bool {
	for _, s := range list {
		if containsFold(s, term) {
			return true
		}
	}
	return false
}
