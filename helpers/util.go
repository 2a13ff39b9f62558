package helpers

import (
	"strconv"
	"strings"
	"unicode"
)

// FormatThousands groups an integer in thousands with spaces, the way Swedish
// amounts are displayed: 11500000 -> "11 500 000".
func FormatThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		s = s[1:]
	}

	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}
	if n < 0 {
		return "-" + b.String()
	}
	return b.String()
}

// FormatKronor renders an amount in whole kronor as a display price:
// 11500000 -> "11 500 000 kr".
func FormatKronor(n int) string {
	return FormatThousands(n) + " kr"
}

// ParseDigits strips every non-digit rune from s and parses what remains as
// an integer. Returns 0 when nothing is left or the value does not fit.
func ParseDigits(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// TitleCase uppercases the first letter of each space-separated word.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// CollapseSpaces trims s and collapses every whitespace run to one space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
