package query

import (
	"fmt"
	"regexp"
	"strings"

	"fsidx/internal/ferrors"
)

// Glob is a compiled glob pattern. Case sensitivity and the
// literal-separator policy are baked in at compile time; the same Glob is
// reused against every candidate path.
type Glob struct {
	re *regexp.Regexp
}

// Match reports whether subject, in its entirety, satisfies the compiled
// pattern.
func (g *Glob) Match(subject string) bool {
	return g.re.MatchString(subject)
}

// CompileGlob compiles pattern under flags.CaseSensitive and
// flags.LiteralSeparator. Syntax:
//
//   - "*"      any run of bytes; excludes '/' when LiteralSeparator is set.
//   - "?"      exactly one character; excludes '/' when LiteralSeparator is set.
//   - "**"     matches zero or more whole path segments, including across
//     '/'; legal only as a whole segment (leading, trailing, or between
//     two '/'s) — elsewhere it is a parse error. "**" alone matches the
//     root and everything under it.
//   - "{a,b}"  alternation between literal/glob branches; does not nest.
//   - "[...]" / "[!...]"  a character class / its negation.
func CompileGlob(pattern string, flags Flags) (*Glob, error) {
	body, err := translate(pattern, flags.LiteralSeparator)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("^(?s)")
	if !flags.CaseSensitive {
		sb.WriteString("(?i)")
	}
	sb.WriteString(body)
	sb.WriteString("$")

	compiled, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid glob %q: %v", ferrors.QueryParseError, pattern, err)
	}
	return &Glob{re: compiled}, nil
}

// translate walks pattern once, emitting an equivalent regexp fragment.
func translate(pattern string, literalSeparator bool) (string, error) {
	var out strings.Builder
	runes := []rune(pattern)
	n := len(runes)

	starClass := "."
	if literalSeparator {
		starClass = "[^/]"
	}

	for i := 0; i < n; {
		switch r := runes[i]; r {
		case '*':
			if i+1 < n && runes[i+1] == '*' {
				advance, err := emitDoubleStar(runes, i, &out)
				if err != nil {
					return "", fmt.Errorf("%w: %v in %q", ferrors.QueryParseError, err, pattern)
				}
				i += advance
				continue
			}
			out.WriteString(starClass + "*")
			i++
		case '?':
			out.WriteString(starClass)
			i++
		case '[':
			end, err := copyClass(runes, i, &out)
			if err != nil {
				return "", fmt.Errorf("%w: %v in %q", ferrors.QueryParseError, err, pattern)
			}
			i = end + 1
		case '{':
			end, err := copyAlternation(runes, i, &out, literalSeparator)
			if err != nil {
				return "", fmt.Errorf("%w: %v in %q", ferrors.QueryParseError, err, pattern)
			}
			i = end + 1
		default:
			out.WriteString(regexp.QuoteMeta(string(r)))
			i++
		}
	}
	return out.String(), nil
}

// emitDoubleStar handles a "**" starting at runes[i]. It writes the
// equivalent regexp fragment to out and returns how many runes (starting
// at i) it consumed. "**" is only legal occupying a whole path segment:
// at the very start or end of the pattern, or flanked by '/' on both
// sides.
func emitDoubleStar(runes []rune, i int, out *strings.Builder) (int, error) {
	before := i == 0 || runes[i-1] == '/'
	after := i+2 >= len(runes) || runes[i+2] == '/'
	if !before || !after {
		return 0, fmt.Errorf("\"**\" must stand alone between separators")
	}

	switch {
	case i == 0 && i+2 == len(runes):
		// The whole pattern is "**": matches everything, root included.
		out.WriteString(".*")
		return 2, nil
	case i == 0:
		// Leading "**/": zero or more whole segments before what follows.
		out.WriteString("(?:.*/)?")
		return 3, nil
	case i+2 == len(runes):
		// Trailing "/**": the '/' just emitted becomes optional, along
		// with everything after it.
		s := out.String()
		out.Reset()
		out.WriteString(strings.TrimSuffix(s, "/"))
		out.WriteString("(?:/.*)?")
		return 2, nil
	default:
		// Middle "/**/": the leading '/' was already emitted literally;
		// fold the trailing '/' into the optional group.
		out.WriteString("(?:.*/)?")
		return 3, nil
	}
}

// copyClass copies a "[...]"/"[!...]" character class, returning the index
// of its closing ']'.
func copyClass(runes []rune, start int, out *strings.Builder) (int, error) {
	i := start + 1
	negate := i < len(runes) && runes[i] == '!'
	if negate {
		i++
	}
	classStart := i
	for i < len(runes) && runes[i] != ']' {
		i++
	}
	if i >= len(runes) {
		return 0, fmt.Errorf("unterminated \"[\"")
	}
	body := string(runes[classStart:i])

	out.WriteByte('[')
	if negate {
		out.WriteByte('^')
	}
	out.WriteString(regexpClassBody(body))
	out.WriteByte(']')
	return i, nil
}

// regexpClassBody escapes a glob character-class body for safe embedding
// inside a regexp character class, preserving ranges like "0-9".
func regexpClassBody(body string) string {
	var out strings.Builder
	for _, r := range body {
		switch r {
		case '\\', ']', '^':
			out.WriteByte('\\')
			out.WriteRune(r)
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

// copyAlternation copies a "{a,b,...}" alternation, returning the index of
// its closing '}'. Branches may contain '*', '?', and '[...]' but not a
// nested '{'.
func copyAlternation(runes []rune, start int, out *strings.Builder, literalSeparator bool) (int, error) {
	i := start + 1
	branchStart := i
	var branches []string
	for i < len(runes) {
		switch runes[i] {
		case '{':
			return 0, fmt.Errorf("nested \"{\" is not allowed")
		case ',':
			branches = append(branches, string(runes[branchStart:i]))
			branchStart = i + 1
		case '}':
			branches = append(branches, string(runes[branchStart:i]))
			out.WriteString("(?:")
			for bi, branch := range branches {
				if bi > 0 {
					out.WriteByte('|')
				}
				sub, err := translate(branch, literalSeparator)
				if err != nil {
					return 0, err
				}
				out.WriteString(sub)
			}
			out.WriteByte(')')
			return i, nil
		}
		i++
	}
	return 0, fmt.Errorf("unterminated \"{\"")
}
