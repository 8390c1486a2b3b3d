package fsdb

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"fsidx/internal/varint"
)

// Encoder streams records into a database file in walker order, delta
// encoding each path against the previous one. It writes to a temp file
// beside the final path and only renames it into place on Close, so a
// reader never observes a partially written database.
type Encoder struct {
	f         *os.File
	w         *bufio.Writer
	tmpPath   string
	finalPath string
	prev      []byte
	closed    bool
}

// CreateEncoder opens a new encoder targeting finalPath. The caller must
// call either Close (to commit) or Abort (to discard) exactly once.
func CreateEncoder(finalPath string) (*Encoder, error) {
	dir := filepath.Dir(finalPath)
	tmp, err := os.CreateTemp(dir, ".fsdb-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("fsdb: create temp database: %w", err)
	}
	e := &Encoder{
		f:         tmp,
		w:         bufio.NewWriter(tmp),
		tmpPath:   tmp.Name(),
		finalPath: finalPath,
	}
	if _, err := e.w.WriteString(Magic); err != nil {
		e.discard()
		return nil, fmt.Errorf("fsdb: write header: %w", err)
	}
	return e, nil
}

// Write appends one record. path must sort after every path previously
// passed to Write (walker order); Write does not itself verify this.
func (e *Encoder) Write(path []byte, size uint64, hasSize bool) error {
	lcp := commonPrefixLen(e.prev, path)
	discard := len(e.prev) - lcp
	suffix := path[lcp:]

	header := varint.Append(nil, uint64(discard))
	header = varint.Append(header, uint64(len(suffix)))
	if _, err := e.w.Write(header); err != nil {
		return fmt.Errorf("fsdb: write record header: %w", err)
	}
	if _, err := e.w.Write(suffix); err != nil {
		return fmt.Errorf("fsdb: write path suffix: %w", err)
	}

	sizeField := NoSize
	if hasSize {
		sizeField = size
	}
	if _, err := e.w.Write(varint.Append(nil, sizeField)); err != nil {
		return fmt.Errorf("fsdb: write size field: %w", err)
	}

	e.prev = append(e.prev[:0], path...)
	return nil
}

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// Close flushes and syncs the temp file, then atomically renames it into
// place. On failure the temp file is removed; no partial database is left
// at finalPath.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if err := e.w.Flush(); err != nil {
		e.f.Close()
		os.Remove(e.tmpPath)
		return fmt.Errorf("fsdb: flush database: %w", err)
	}
	if err := e.f.Sync(); err != nil {
		e.f.Close()
		os.Remove(e.tmpPath)
		return fmt.Errorf("fsdb: sync database: %w", err)
	}
	if err := e.f.Close(); err != nil {
		os.Remove(e.tmpPath)
		return fmt.Errorf("fsdb: close database: %w", err)
	}
	if err := os.Rename(e.tmpPath, e.finalPath); err != nil {
		os.Remove(e.tmpPath)
		return fmt.Errorf("fsdb: rename database into place: %w", err)
	}
	return nil
}

// Abort discards the in-progress database and removes the temp file. Call
// it instead of Close when the walk was cancelled or failed partway
// through.
func (e *Encoder) Abort() error {
	if e.closed {
		return nil
	}
	e.closed = true
	return e.discard()
}

func (e *Encoder) discard() error {
	e.f.Close()
	return os.Remove(e.tmpPath)
}
