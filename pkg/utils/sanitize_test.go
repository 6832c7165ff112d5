package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeSQLWildcards(t *testing.T) {
	assert.Equal(t, "CS2103T", EscapeSQLWildcards("CS2103T"))
	assert.Equal(t, "\\%\\_", EscapeSQLWildcards("%_"))
	assert.Equal(t, "\\\\x", EscapeSQLWildcards("\\x"))
}

func TestSanitizeSearchQuery(t *testing.T) {
	assert.Equal(t, "%CS%", SanitizeSearchQuery("  CS  "))
	assert.Equal(t, "%100\\%%", SanitizeSearchQuery("100%"))

	long := SanitizeSearchQuery(strings.Repeat("a", 500))
	assert.LessOrEqual(t, len(long), 102)
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt; c", SanitizeText("  a <b> c  "))
	assert.Equal(t, "plain", SanitizeText("plain"))
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID("0b9bd977-8571-4857-9a06-ded4a17534a4"))
	assert.False(t, IsValidID(""))
	assert.False(t, IsValidID("not-a-uuid"))
	assert.False(t, IsValidID("0b9bd977-8571-4857-9a06"))
}
