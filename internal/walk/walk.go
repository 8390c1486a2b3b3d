// Package walk recursively enumerates a root folder in a fully
// deterministic order for the database encoder to consume.
package walk

import (
	"context"
	"os"
	"path/filepath"
	"sort"
)

// Kind classifies a walked entry for the purpose of size reporting.
type Kind int

const (
	// KindRegular is an ordinary file; its Size is meaningful.
	KindRegular Kind = iota
	// KindDirectory is a directory.
	KindDirectory
	// KindOther is anything else: symlink, device, socket, FIFO, ...
	KindOther
)

// Entry is one (absolute path, size, kind) tuple produced by the walker.
type Entry struct {
	Path string
	Kind Kind
	// Size is only meaningful when Kind == KindRegular.
	Size uint64
}

// WarningFunc receives a non-fatal warning for one inaccessible entry.
// Walking continues with the next sibling after it is called.
type WarningFunc func(path string, err error)

// Walk enumerates root in deterministic order and calls visit for each
// entry. The root itself is visited first, then its children depth-first;
// within a directory, children are visited in raw byte order of their base
// name. Symbolic links are reported as their own KindOther entry and are
// never followed. Directories that cannot be read (permission denied,
// removed mid-walk, ...) are reported via onWarning and walking continues
// with the next sibling instead of aborting.
//
// visit returns false to stop the walk early (used for cooperative
// cancellation); Walk then returns immediately without visiting further
// entries.
func Walk(ctx context.Context, root string, onWarning WarningFunc, visit func(Entry) bool) {
	walkOne(ctx, root, onWarning, visit)
}

// walkOne visits path and, if it is a directory, its children. It returns
// false if the walk should stop entirely (cancellation or visit asked to
// stop), true to keep visiting siblings.
func walkOne(ctx context.Context, path string, onWarning WarningFunc, visit func(Entry) bool) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}

	info, err := os.Lstat(path)
	if err != nil {
		onWarning(path, err)
		return true
	}

	entry := entryFromInfo(path, info)
	if !visit(entry) {
		return false
	}

	if entry.Kind != KindDirectory {
		return true
	}

	names, err := readSortedNames(path)
	if err != nil {
		onWarning(path, err)
		return true
	}

	for _, name := range names {
		if !walkOne(ctx, filepath.Join(path, name), onWarning, visit) {
			return false
		}
	}
	return true
}

// entryFromInfo classifies a stat result into a walk.Entry.
func entryFromInfo(path string, info os.FileInfo) Entry {
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return Entry{Path: path, Kind: KindOther}
	case info.IsDir():
		return Entry{Path: path, Kind: KindDirectory}
	case info.Mode().IsRegular():
		return Entry{Path: path, Kind: KindRegular, Size: uint64(info.Size())}
	default:
		return Entry{Path: path, Kind: KindOther}
	}
}

// readSortedNames lists a directory's entries sorted by raw byte order of
// the base name. os.ReadDir already returns entries in this order, but we
// sort explicitly so the ordering invariant does not silently depend on an
// implementation detail of the standard library.
func readSortedNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	sort.Strings(names)
	return names, nil
}
