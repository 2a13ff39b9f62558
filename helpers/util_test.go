package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", FormatThousands(0))
	assert.Equal(t, "999", FormatThousands(999))
	assert.Equal(t, "1 000", FormatThousands(1000))
	assert.Equal(t, "11 500 000", FormatThousands(11500000))
	assert.Equal(t, "109 000", FormatThousands(109000))
}

func TestFormatKronor(t *testing.T) {
	assert.Equal(t, "5 495 000 kr", FormatKronor(5495000))
	assert.Equal(t, "0 kr", FormatKronor(0))
}

func TestParseDigits(t *testing.T) {
	assert.Equal(t, 11500000, ParseDigits("11 500 000 kr"))
	assert.Equal(t, 5495000, ParseDigits("5,495,000"))
	assert.Equal(t, 0, ParseDigits("no digits here"))
	assert.Equal(t, 0, ParseDigits(""))
}

// A price embedded in a recognized pattern must survive the
// parse-then-format round trip unchanged.
func TestKronorRoundTrip(t *testing.T) {
	for _, n := range []int{1, 999, 1000, 100001, 5495000, 11500000} {
		assert.Equal(t, n, ParseDigits(FormatKronor(n)))
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Gotgatan 12", TitleCase("gotgatan 12"))
	assert.Equal(t, "Upplands Vasby", TitleCase("upplands vasby"))
	assert.Equal(t, "", TitleCase(""))
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "a b", CollapseSpaces("  a \n b  "))
	assert.Equal(t, "", CollapseSpaces("   "))
}
