package scraper

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstSubmatchOrder(t *testing.T) {
	rules := []textRule{
		{name: "labeled", re: regexp.MustCompile(`Boarea\s*(\d+)`)},
		{name: "generic", re: regexp.MustCompile(`(\d+)\s*m²`)},
	}

	// Both rules match; the labeled one wins because it comes first
	v, rule := firstSubmatch(rules, "92 m² ... Boarea 81")
	assert.Equal(t, "81", v)
	assert.Equal(t, "labeled", rule)

	v, rule = firstSubmatch(rules, "92 m²")
	assert.Equal(t, "92", v)
	assert.Equal(t, "generic", rule)

	v, rule = firstSubmatch(rules, "nothing here")
	assert.Equal(t, "", v)
	assert.Equal(t, "", rule)
}

func TestMatchAmountFloor(t *testing.T) {
	rules := []textRule{
		{name: "labeled", re: regexp.MustCompile(`Pris:\s*([\d\s]+)\s*kr`), min: 100000},
		{name: "fallback", re: regexp.MustCompile(`Slutpris:\s*([\d\s]+)\s*kr`), min: 100000},
	}

	// The labeled rule matches a number below the floor, so the scan moves on
	v, rule := matchAmount(rules, "Pris: 5 000 kr ... Slutpris: 5 495 000 kr")
	assert.Equal(t, 5495000, v)
	assert.Equal(t, "fallback", rule)

	v, rule = matchAmount(rules, "Pris: 5 000 kr")
	assert.Equal(t, 0, v)
	assert.Equal(t, "", rule)

	v, _ = matchAmount(rules, "Pris: 11 500 000 kr")
	assert.Equal(t, 11500000, v)
}

func TestStripWhitespace(t *testing.T) {
	assert.Equal(t, "11500000", stripWhitespace("11 500 000"))
	assert.Equal(t, "123", stripWhitespace("  1 2\t3\n"))
	assert.Equal(t, "", stripWhitespace("   "))
}
