package scraper

import (
	"regexp"
	"strings"

	"bostadskollen/helpers"
)

// textRule is one named, independent extraction pattern. Rules for a field
// run in a fixed order and the first rule that yields an accepted value wins;
// later rules are never consulted once a field is set.
type textRule struct {
	name string
	re   *regexp.Regexp
	// min is a sanity floor for amount rules; a parsed value at or below it
	// is rejected and the scan continues with the next rule. 0 disables it.
	min int
}

// firstSubmatch runs the rules in order against the page and returns the
// first capture of the first matching rule, plus the rule's name.
func firstSubmatch(rules []textRule, page string) (string, string) {
	for _, r := range rules {
		if m := r.re.FindStringSubmatch(page); m != nil {
			return m[1], r.name
		}
	}
	return "", ""
}

// matchAmount runs the rules in order, parsing the first capture as a whole
// amount in kronor. Values failing the rule's floor are skipped.
func matchAmount(rules []textRule, page string) (int, string) {
	for _, r := range rules {
		m := r.re.FindStringSubmatch(page)
		if m == nil {
			continue
		}
		v := helpers.ParseDigits(m[1])
		if v > 0 && v > r.min {
			return v, r.name
		}
	}
	return 0, ""
}

// stripWhitespace removes every whitespace rune. Amount captures like
// "11 500 000" become parseable digit runs.
func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
