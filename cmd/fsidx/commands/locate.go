package commands

import (
	"errors"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"fsidx/internal/cli/output"
	"fsidx/internal/ferrors"
	"fsidx/internal/query"
	"fsidx/internal/search"
)

var locateOutputFormat string

var locateCmd = &cobra.Command{
	Use:                "locate [flags] [tokens]...",
	Short:              "Search the pathname database",
	DisableFlagParsing: true,
	RunE:               runLocate,
}

func init() {
	locateCmd.Flags().StringVarP(&locateOutputFormat, "output", "O", "plain", "output format: plain, table, json, yaml")
}

func runLocate(cmd *cobra.Command, rawArgs []string) error {
	args, format, err := extractOutputFlag(rawArgs)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	base, err := cfg.Defaults.ToQueryFlags()
	if err != nil {
		return err
	}

	queryStr := strings.Join(args, " ")
	tokens, err := query.Parse(queryStr, base)
	if err != nil {
		return errors.Join(ferrors.QueryParseError, err)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	sink := &collectingSink{}
	if err := search.Run(ctx, cfg.DBDir, cfg.Roots, tokens, sink); err != nil {
		return err
	}
	for _, w := range sink.warnings {
		cmd.PrintErrln("warning:", w)
	}

	return renderHits(cmd, sink.hits, format)
}

// extractOutputFlag pulls "-O"/"--output" (with its value) out of a raw,
// unparsed argument list, since locateCmd disables cobra's flag parsing so
// the locate-query grammar (-c -i -a -o ...) can own the dash-prefixed
// tokens instead.
func extractOutputFlag(args []string) ([]string, string, error) {
	format := "plain"
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-O" || a == "--output":
			if i+1 >= len(args) {
				return nil, "", errors.New("--output requires a value")
			}
			format = args[i+1]
			i++
		case strings.HasPrefix(a, "--output="):
			format = strings.TrimPrefix(a, "--output=")
		default:
			out = append(out, a)
		}
	}
	return out, format, nil
}

type collectingSink struct {
	hits     []search.Hit
	warnings []string
}

func (s *collectingSink) Hit(h search.Hit) { s.hits = append(s.hits, h) }
func (s *collectingSink) Warning(root string, err error) {
	s.warnings = append(s.warnings, root+": "+err.Error())
}

func renderHits(cmd *cobra.Command, hits []search.Hit, format string) error {
	if format == "plain" || format == "" {
		return search.WritePlain(cmd.OutOrStdout(), hits)
	}

	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	printer := output.NewPrinter(cmd.OutOrStdout(), f, false)
	return printer.Print(search.HitList{Hits: hits, ShowSize: true})
}
