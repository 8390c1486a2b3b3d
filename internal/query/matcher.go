package query

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// smartSpaceSeparators is the set of bytes a literal space in a plain
// token may match in addition to itself, or zero characters.
const smartSpaceSeparators = " -_\t"

// Match reports whether path satisfies every token, in order. Zero tokens
// never match.
func Match(tokens []Token, path string) bool {
	if len(tokens) == 0 {
		return false
	}

	var cursor int
	haveScope := false
	var lastScope Scope

	for _, tok := range tokens {
		if !haveScope || tok.Flags.Scope != lastScope {
			cursor = 0
		}
		haveScope = true
		lastScope = tok.Flags.Scope

		subject := subjectFor(path, tok.Flags.Scope)

		switch tok.Kind {
		case KindPlain:
			start := 0
			if tok.Flags.Order == OrderSame {
				start = cursor
			}
			end, ok := findPlain(subject, tok.Text, start, tok.Flags)
			if !ok {
				return false
			}
			cursor = end
		case KindGlob:
			if !tok.Glob.Match(subject) {
				return false
			}
		}
	}
	return true
}

func subjectFor(path string, scope Scope) string {
	if scope == ScopeWholePath {
		return path
	}
	idx := strings.LastIndexByte(path, '/')
	if idx < 0 {
		return path
	}
	return path[idx+1:]
}

// findPlain finds the first, shortest occurrence of pattern in subject at
// or after start, honoring smart-space and case-sensitivity flags; on a
// word-boundary failure it keeps searching at the next start position.
// It returns the byte offset just past the match.
func findPlain(subject, pattern string, start int, flags Flags) (int, bool) {
	subjectRunes := []rune(subject)
	patternRunes := []rune(pattern)

	startRune := runeOffset(subjectRunes, subject, start)
	for s := startRune; s <= len(subjectRunes); s++ {
		end, ok := matchAt(subjectRunes, s, patternRunes, 0, flags)
		if !ok {
			continue
		}
		if flags.WordBoundaries && !hasWordBoundary(subjectRunes, s, end) {
			continue
		}
		return runeLenToByteLen(subjectRunes, end), true
	}
	return 0, false
}

// runeOffset converts a byte offset in subject into a rune index.
func runeOffset(runes []rune, subject string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	count := 0
	for i := range subject {
		if i >= byteOffset {
			return count
		}
		count++
	}
	return len(runes)
}

func runeLenToByteLen(runes []rune, n int) int {
	b := 0
	for i := 0; i < n && i < len(runes); i++ {
		b += len(string(runes[i]))
	}
	return b
}

// matchAt tries to match patternRunes[pi:] against subjectRunes starting
// at si, exploring the zero-width option for a smart-space token before
// the consuming option, so the first success found is the shortest.
func matchAt(subject []rune, si int, pattern []rune, pi int, flags Flags) (int, bool) {
	if pi == len(pattern) {
		return si, true
	}

	p := pattern[pi]
	if flags.SmartSpaces && p == ' ' {
		if end, ok := matchAt(subject, si, pattern, pi+1, flags); ok {
			return end, true
		}
		if si < len(subject) && strings.ContainsRune(smartSpaceSeparators, subject[si]) {
			if end, ok := matchAt(subject, si+1, pattern, pi+1, flags); ok {
				return end, true
			}
		}
		return 0, false
	}

	if si >= len(subject) {
		return 0, false
	}
	if !runeEqual(subject[si], p, flags.CaseSensitive) {
		return 0, false
	}
	return matchAt(subject, si+1, pattern, pi+1, flags)
}

var foldCaser = cases.Fold()

func runeEqual(a, b rune, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
	if a == b {
		return true
	}
	// ASCII fast path.
	if a < unicode.MaxASCII && b < unicode.MaxASCII {
		return asciiLower(a) == asciiLower(b)
	}
	// Unicode case folding (cases.Fold) restricted to the BMP; outside it
	// runes fold to themselves (documented limitation).
	if a > 0xFFFF || b > 0xFFFF {
		return false
	}
	return foldCaser.String(string(a)) == foldCaser.String(string(b))
}

func asciiLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

type charClass int

const (
	classLower charClass = iota
	classUpper
	classDigit
	classOther
)

func classOf(r rune) charClass {
	switch {
	case unicode.IsLower(r):
		return classLower
	case unicode.IsUpper(r):
		return classUpper
	case unicode.IsDigit(r):
		return classDigit
	default:
		return classOther
	}
}

// hasWordBoundary checks that the byte before start (if any) is not in the
// same class as the first matched rune, and the byte after end (if any) is
// not in the same class as the last matched rune. An empty match always
// satisfies the check.
func hasWordBoundary(subject []rune, start, end int) bool {
	if start == end {
		return true
	}
	if start > 0 {
		if classOf(subject[start-1]) == classOf(subject[start]) {
			return false
		}
	}
	if end < len(subject) {
		if classOf(subject[end-1]) == classOf(subject[end]) {
			return false
		}
	}
	return true
}
