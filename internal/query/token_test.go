package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlainTokens(t *testing.T) {
	tokens, err := Parse("Anne Miller", DefaultFlags())
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, KindPlain, tokens[0].Kind)
	assert.Equal(t, "Anne", tokens[0].Text)
	assert.Equal(t, "Miller", tokens[1].Text)
}

func TestParseQuotedPhraseIsOneToken(t *testing.T) {
	tokens, err := Parse(`"Anne Miller"`, DefaultFlags())
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "Anne Miller", tokens[0].Text)
}

func TestParseQuoteEscapes(t *testing.T) {
	tokens, err := Parse(`"a\tb\"c\\d"`, DefaultFlags())
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "a\tb\"c\\d", tokens[0].Text)
}

func TestParseUnterminatedQuoteFails(t *testing.T) {
	_, err := Parse(`"unterminated`, DefaultFlags())
	assert.Error(t, err)
}

func TestParseInvalidEscapeFails(t *testing.T) {
	_, err := Parse(`"bad\qescape"`, DefaultFlags())
	assert.Error(t, err)
}

func TestParseShortFlagConcatenation(t *testing.T) {
	tokens, err := Parse("-cls foo", DefaultFlags())
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	f := tokens[0].Flags
	assert.True(t, f.CaseSensitive)
	assert.Equal(t, ScopeLastElement, f.Scope)
	assert.True(t, f.SmartSpaces)
}

func TestParseUnknownShortFlagFails(t *testing.T) {
	_, err := Parse("-z foo", DefaultFlags())
	assert.Error(t, err)
}

func TestParseUnknownLongFlagFails(t *testing.T) {
	_, err := Parse("--nonsense foo", DefaultFlags())
	assert.Error(t, err)
}

func TestParseLongFlags(t *testing.T) {
	tokens, err := Parse("--ls foo", DefaultFlags())
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.True(t, tokens[0].Flags.LiteralSeparator)
}

func TestParseModeShortFlags(t *testing.T) {
	tokens, err := Parse("-2 *.mp3", DefaultFlags())
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, KindGlob, tokens[0].Kind)
}

func TestParseAutoModeDetectsGlobMeta(t *testing.T) {
	tokens, err := Parse("*.mp3 plain", DefaultFlags())
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, KindGlob, tokens[0].Kind)
	assert.Equal(t, KindPlain, tokens[1].Kind)
}

func TestParsePlainModeForcesPlain(t *testing.T) {
	tokens, err := Parse("-1 *.mp3", DefaultFlags())
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, KindPlain, tokens[0].Kind)
	assert.Equal(t, "*.mp 3", tokens[0].Text) // smart spaces split the letter/digit boundary
}

func TestCanonicalizeSmartSpace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AnneMiller", "Anne Miller"},
		{"track01", "track 01"},
		{"01track", "01 track"},
		{"already canonical", "already canonical"},
		{"", ""},
		{"HTMLParser", "HTMLParser"}, // no lower-to-upper or digit boundary here
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalizeSmartSpace(tt.in), "input %q", tt.in)
	}
}

func TestSmartSpaceIdempotent(t *testing.T) {
	once := canonicalizeSmartSpace("AnneMiller99")
	twice := canonicalizeSmartSpace(once)
	assert.Equal(t, once, twice)
}
