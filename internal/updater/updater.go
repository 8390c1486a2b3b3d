// Package updater drives the walker and database encoder together to
// (re)build one root's database file.
package updater

import (
	"context"
	"errors"
	"fmt"
	"os"

	"fsidx/internal/ferrors"
	"fsidx/internal/fsdb"
	"fsidx/internal/logger"
	"fsidx/internal/walk"
)

// Result summarizes one root's update.
type Result struct {
	Root     string
	Count    int
	Warnings int
}

// Root walks root and writes its database under dbDir, replacing any
// existing database for that root atomically. It returns ferrors.Cancelled
// if ctx is cancelled partway through, leaving the previous database (if
// any) untouched.
func Root(ctx context.Context, dbDir, root string) (Result, error) {
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return Result{Root: root}, fmt.Errorf("%w: create db dir: %v", ferrors.IoFailure, err)
	}

	enc, err := fsdb.CreateEncoder(fsdb.PathForRoot(dbDir, root))
	if err != nil {
		return Result{Root: root}, fmt.Errorf("%w: %v", ferrors.IoFailure, err)
	}

	res := Result{Root: root}
	var walkErr error
	cancelled := false

	walk.Walk(ctx, root, func(path string, warnErr error) {
		res.Warnings++
		logger.Warn("walk warning", logger.Path(path), logger.Reason(warnErr.Error()))
	}, func(e walk.Entry) bool {
		select {
		case <-ctx.Done():
			cancelled = true
			return false
		default:
		}

		hasSize := e.Kind == walk.KindRegular
		if err := enc.Write([]byte(e.Path), e.Size, hasSize); err != nil {
			walkErr = err
			return false
		}
		res.Count++
		return true
	})

	if cancelled || ctx.Err() != nil {
		_ = enc.Abort()
		return res, ferrors.Cancelled
	}
	if walkErr != nil {
		_ = enc.Abort()
		return res, fmt.Errorf("%w: %v", ferrors.IoFailure, walkErr)
	}
	if err := enc.Close(); err != nil {
		return res, fmt.Errorf("%w: %v", ferrors.IoFailure, err)
	}
	return res, nil
}

// All updates every root in turn, stopping immediately if ctx is
// cancelled. A per-root IoFailure does not stop the remaining roots.
func All(ctx context.Context, dbDir string, roots []string) ([]Result, error) {
	results := make([]Result, 0, len(roots))
	for _, root := range roots {
		select {
		case <-ctx.Done():
			return results, ferrors.Cancelled
		default:
		}

		res, err := Root(ctx, dbDir, root)
		results = append(results, res)
		if err != nil {
			if errors.Is(err, ferrors.Cancelled) {
				return results, err
			}
			logger.Error("update failed", logger.Root(root), logger.Reason(err.Error()))
			continue
		}
		logger.Info("update complete", logger.Root(root), logger.Count(res.Count))
	}
	return results, nil
}
