package logger

import "golang.org/x/term"

// isTerminal reports whether fd refers to an interactive terminal, used to
// decide between colored text output and plain/JSON output.
func isTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}
