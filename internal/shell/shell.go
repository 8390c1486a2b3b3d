// Package shell implements fsidx's interactive REPL: a readline-backed loop
// that parses each line as a locate query, runs it against the configured
// roots, prints the hits, and remembers them so "open N" can hand one off
// to the desktop's default application.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"fsidx/internal/config"
	"fsidx/internal/logger"
	"fsidx/internal/openwith"
	"fsidx/internal/query"
	"fsidx/internal/search"
)

// Options configures a Shell run.
type Options struct {
	Config      *config.Config
	HistoryFile string
	Stdout      io.Writer
	Stderr      io.Writer
}

// memSink collects hits for one query so a later "open N" can resolve N
// back to a path.
type memSink struct {
	hits     []search.Hit
	warnings []string
}

func (s *memSink) Hit(h search.Hit) { s.hits = append(s.hits, h) }
func (s *memSink) Warning(root string, err error) {
	s.warnings = append(s.warnings, fmt.Sprintf("%s: %v", root, err))
}

// Run starts the REPL and blocks until the user exits (Ctrl-D, "exit" or
// "quit"). Cancelling ctx, or pressing Ctrl-C while a search runs, cancels
// searches; neither ends the loop.
func Run(ctx context.Context, opts Options) error {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "fsidx> ",
		HistoryFile:     opts.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          stdout,
		Stderr:          stderr,
	})
	if err != nil {
		return fmt.Errorf("shell: init readline: %w", err)
	}
	defer rl.Close()

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	defaultFlags, err := opts.Config.Defaults.ToQueryFlags()
	if err != nil {
		return fmt.Errorf("shell: resolve default flags: %w", err)
	}

	var lastHits []search.Hit

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("shell: read line: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		if rest, ok := strings.CutPrefix(line, "open "); ok {
			handleOpen(strings.TrimSpace(rest), lastHits, stderr)
			continue
		}

		tokens, err := query.Parse(line, defaultFlags)
		if err != nil {
			fmt.Fprintf(stderr, "parse error: %v\n", err)
			continue
		}

		sink := &memSink{}
		if err := search.Run(ctx, opts.Config.DBDir, opts.Config.Roots, tokens, sink); err != nil {
			fmt.Fprintf(stderr, "search error: %v\n", err)
			logger.Error("shell search failed", logger.Query(line), logger.Reason(err.Error()))
			continue
		}
		for _, w := range sink.warnings {
			fmt.Fprintf(stderr, "warning: %s\n", w)
		}
		if err := search.WritePlain(stdout, sink.hits); err != nil {
			fmt.Fprintf(stderr, "output error: %v\n", err)
		}
		lastHits = sink.hits
	}
}

func handleOpen(arg string, hits []search.Hit, stderr io.Writer) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(hits) {
		fmt.Fprintf(stderr, "open: invalid hit number %q\n", arg)
		return
	}
	hit := hits[n-1]
	if err := openwith.Open(hit.Path); err != nil {
		fmt.Fprintf(stderr, "open: %v\n", err)
	}
}
