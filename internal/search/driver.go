// Package search implements the search driver: it streams every
// configured root's database through the query matcher and reports hits
// to a caller-supplied sink, honoring cooperative cancellation.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"fsidx/internal/ferrors"
	"fsidx/internal/fsdb"
	"fsidx/internal/query"
)

// Hit is one matched path, decorated with a 1-based ordinal that is
// monotonically increasing across the whole search.
type Hit struct {
	Root    string
	Path    string
	Size    uint64
	HasSize bool
	Ordinal int
}

// Sink receives search output. Hit is called once per match, in result
// order; Warning reports a per-root problem that does not abort the rest
// of the search (a missing database, a malformed one).
type Sink interface {
	Hit(Hit)
	Warning(root string, err error)
}

// Run streams every root's database in order, evaluating tokens against
// each decoded path and reporting matches to sink. It returns
// ferrors.Cancelled if ctx is cancelled partway through; any other error
// indicates a driver-level problem unrelated to a single root (none are
// currently possible, but the signature leaves room for one).
func Run(ctx context.Context, dbDir string, roots []string, tokens []query.Token, sink Sink) error {
	ordinal := 0
	for _, root := range roots {
		select {
		case <-ctx.Done():
			return ferrors.Cancelled
		default:
		}

		dbPath := fsdb.PathForRoot(dbDir, root)
		if _, err := os.Stat(dbPath); err != nil {
			if os.IsNotExist(err) {
				sink.Warning(root, fmt.Errorf("no database for root %q; run update first", root))
				continue
			}
			sink.Warning(root, fmt.Errorf("%w: %v", ferrors.IoFailure, err))
			continue
		}

		if err := runRoot(ctx, dbPath, root, tokens, sink, &ordinal); err != nil {
			if errors.Is(err, ferrors.Cancelled) {
				return err
			}
			sink.Warning(root, err)
		}
	}
	return nil
}

func runRoot(ctx context.Context, dbPath, root string, tokens []query.Token, sink Sink, ordinal *int) error {
	rd, err := fsdb.OpenReader(dbPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ferrors.IoFailure, err)
	}
	defer rd.Close()

	for {
		select {
		case <-ctx.Done():
			return ferrors.Cancelled
		default:
		}

		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if query.Match(tokens, string(rec.Path)) {
			*ordinal++
			sink.Hit(Hit{
				Root:    root,
				Path:    string(rec.Path),
				Size:    rec.Size,
				HasSize: rec.HasSize,
				Ordinal: *ordinal,
			})
		}
	}
}
