package prep

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestCleanText_StripsURLs(t *testing.T) {
	got := CleanText("read this https://example.com/article now")

	assert.Equal(t, "read this now", got)
}

func TestCleanText_DecodesEntities(t *testing.T) {
	got := CleanText("roads &amp; bridges")

	assert.Equal(t, "roads & bridges", got)
}

func TestCleanText_CollapsesWhitespace(t *testing.T) {
	got := CleanText("  too \n\n many\t spaces  ")

	assert.Equal(t, "too many spaces", got)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
}
