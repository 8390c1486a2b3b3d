// Package query implements the token parser, glob compiler, and matcher
// that together evaluate a locate query against a candidate path.
package query

// Order controls whether plain-text tokens must appear in the order they
// were typed.
type Order int

const (
	OrderAny Order = iota
	OrderSame
)

// Scope selects which portion of a candidate path a token is matched
// against.
type Scope int

const (
	ScopeWholePath Scope = iota
	ScopeLastElement
)

// Mode controls how a non-flag token is classified.
type Mode int

const (
	ModeAuto Mode = iota
	ModePlain
	ModeGlob
)

// Flags is the full set of locate flags. Every field has a spelled-out
// default matching the CLI/config defaults.
type Flags struct {
	CaseSensitive    bool
	Order            Order
	Scope            Scope
	SmartSpaces      bool
	WordBoundaries   bool
	LiteralSeparator bool
	Mode             Mode
}

// DefaultFlags returns the LocateFlags defaults from the configuration
// schema: case-insensitive, any-order, whole-path, smart spaces on, word
// boundaries off, literal separator off, auto mode.
func DefaultFlags() Flags {
	return Flags{
		CaseSensitive:    false,
		Order:            OrderAny,
		Scope:            ScopeWholePath,
		SmartSpaces:      true,
		WordBoundaries:   false,
		LiteralSeparator: false,
		Mode:             ModeAuto,
	}
}

// applyShortFlag applies the mutation for a single short-flag letter.
// Returns false for an unrecognized letter.
func applyShortFlag(f *Flags, r byte) bool {
	switch r {
	case 'c':
		f.CaseSensitive = true
	case 'i':
		f.CaseSensitive = false
	case 'a':
		f.Order = OrderAny
	case 'o':
		f.Order = OrderSame
	case 'w':
		f.Scope = ScopeWholePath
	case 'l':
		f.Scope = ScopeLastElement
	case 's':
		f.SmartSpaces = true
	case 'S':
		f.SmartSpaces = false
	case 'b':
		f.WordBoundaries = true
	case 'B':
		f.WordBoundaries = false
	case '0':
		f.Mode = ModeAuto
	case '1':
		f.Mode = ModePlain
	case '2':
		f.Mode = ModeGlob
	default:
		return false
	}
	return true
}

// longFlagNames maps every recognized long-flag spelling to its mutation.
// This is exactly the long-flag set from the locate man page: --ls/--nls
// for the literal-separator policy, plus the long spellings of the mode
// flags whose short forms are digits (-0/-1/-2).
var longFlagNames = map[string]func(*Flags){
	"ls":    func(f *Flags) { f.LiteralSeparator = true },
	"nls":   func(f *Flags) { f.LiteralSeparator = false },
	"auto":  func(f *Flags) { f.Mode = ModeAuto },
	"plain": func(f *Flags) { f.Mode = ModePlain },
	"glob":  func(f *Flags) { f.Mode = ModeGlob },
}
