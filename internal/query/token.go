package query

import (
	"fmt"
	"strings"
	"unicode"

	"fsidx/internal/ferrors"
)

// Kind distinguishes the two token shapes Parse returns; flag words are
// consumed during parsing and have no Kind.
type Kind int

const (
	KindPlain Kind = iota
	KindGlob
)

// Token is one parsed, classified query element together with the flag
// state that was active when it was parsed. Flag tokens are consumed
// during parsing and never appear in the returned slice: they only leave
// their effect on the Flags snapshot of later tokens.
type Token struct {
	Kind  Kind
	Text  string // set for KindPlain, already smart-space canonicalized
	Glob  *Glob  // set for KindGlob
	Flags Flags
}

// globMeta is the set of bytes that mark a literal as a glob pattern in
// auto mode.
const globMeta = "*?[]{}"

// Parse splits query into a token list, applying flag mutations as they
// are encountered and starting from base. Unknown flags, bad quoting, and
// glob compile failures all return an error wrapping
// ferrors.QueryParseError before any token is produced.
func Parse(query string, base Flags) ([]Token, error) {
	fields, err := splitFields(query)
	if err != nil {
		return nil, err
	}

	flags := base
	var tokens []Token
	for _, field := range fields {
		if isFlagWord(field) {
			if err := applyFlagWord(&flags, field); err != nil {
				return nil, err
			}
			continue
		}

		tok, err := classify(field, flags)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func isFlagWord(s string) bool {
	return len(s) > 1 && s[0] == '-'
}

func applyFlagWord(f *Flags, word string) error {
	if strings.HasPrefix(word, "--") {
		name := word[2:]
		mutate, ok := longFlagNames[name]
		if !ok {
			return fmt.Errorf("%w: unknown flag %q", ferrors.QueryParseError, word)
		}
		mutate(f)
		return nil
	}

	letters := word[1:]
	for i := 0; i < len(letters); i++ {
		if !applyShortFlag(f, letters[i]) {
			return fmt.Errorf("%w: unknown flag %q in %q", ferrors.QueryParseError, string(letters[i]), word)
		}
	}
	return nil
}

// classify decides whether field is a Plain or Glob token under the
// currently active mode, then builds the Token.
func classify(field string, flags Flags) (Token, error) {
	useGlob := false
	switch flags.Mode {
	case ModeGlob:
		useGlob = true
	case ModePlain:
		useGlob = false
	default: // ModeAuto
		useGlob = strings.ContainsAny(field, globMeta)
	}

	if useGlob {
		m, err := CompileGlob(field, flags)
		if err != nil {
			return Token{}, err
		}
		return Token{Kind: KindGlob, Glob: m, Flags: flags}, nil
	}

	text := field
	if flags.SmartSpaces {
		text = canonicalizeSmartSpace(text)
	}
	return Token{Kind: KindPlain, Text: text, Flags: flags}, nil
}

// canonicalizeSmartSpace inserts a space at every camel-case boundary: an
// uppercase letter preceded by a lowercase letter or digit, or a digit
// adjacent to a letter. Applying it twice is a no-op because the inserted
// spaces are not themselves letter/digit transitions.
func canonicalizeSmartSpace(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)

	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && isBoundary(runes[i-1], r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isBoundary(prev, cur rune) bool {
	prevLower := unicode.IsLower(prev)
	prevDigit := unicode.IsDigit(prev)
	curUpper := unicode.IsUpper(cur)
	curDigit := unicode.IsDigit(cur)
	prevLetter := unicode.IsLetter(prev)
	curLetter := unicode.IsLetter(cur)

	if curUpper && (prevLower || prevDigit) {
		return true
	}
	if curDigit && prevLetter {
		return true
	}
	if curLetter && prevDigit {
		return true
	}
	return false
}

// splitFields tokenizes the raw query string on whitespace outside
// quotes, honoring double-quoted literals with a restricted escape set.
func splitFields(query string) ([]string, error) {
	var fields []string
	var cur strings.Builder
	inField := false
	runes := []rune(query)

	flush := func() {
		if inField {
			fields = append(fields, cur.String())
			cur.Reset()
			inField = false
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			inField = true
			i++
			for {
				if i >= len(runes) {
					return nil, fmt.Errorf("%w: unterminated quote", ferrors.QueryParseError)
				}
				c := runes[i]
				if c == '"' {
					break
				}
				if c == '\\' {
					i++
					if i >= len(runes) {
						return nil, fmt.Errorf("%w: unterminated escape", ferrors.QueryParseError)
					}
					esc, err := unescape(runes[i])
					if err != nil {
						return nil, err
					}
					cur.WriteRune(esc)
					i++
					continue
				}
				cur.WriteRune(c)
				i++
			}
		case unicode.IsSpace(r):
			flush()
		default:
			inField = true
			cur.WriteRune(r)
		}
	}
	flush()
	return fields, nil
}

func unescape(r rune) (rune, error) {
	switch r {
	case 't':
		return '\t', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	default:
		return 0, fmt.Errorf("%w: invalid escape sequence \\%c", ferrors.QueryParseError, r)
	}
}
