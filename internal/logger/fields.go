package logger

import (
	"log/slog"
)

// Standard field keys for structured logging, kept consistent across every
// update/locate/shell log statement so lines can be grepped or aggregated.
const (
	KeyRoot    = "root"    // configured root folder being walked/searched
	KeyPath    = "path"    // absolute filesystem path
	KeyDBPath  = "db_path" // on-disk database file path
	KeySize    = "size"    // file size in bytes
	KeyOrdinal = "ordinal" // 1-based hit ordinal within a search
	KeyOffset  = "offset"  // byte offset within a database file
	KeyReason  = "reason"  // human-readable diagnostic detail
	KeyQuery   = "query"   // raw query string typed by the user
	KeyCount   = "count"   // generic item count (records written, hits found)
)

// Root returns a slog.Attr for a configured root folder.
func Root(root string) slog.Attr {
	return slog.String(KeyRoot, root)
}

// Path returns a slog.Attr for an absolute filesystem path.
func Path(path string) slog.Attr {
	return slog.String(KeyPath, path)
}

// DBPath returns a slog.Attr for a database file path.
func DBPath(path string) slog.Attr {
	return slog.String(KeyDBPath, path)
}

// Size returns a slog.Attr for a file size in bytes.
func Size(n uint64) slog.Attr {
	return slog.Uint64(KeySize, n)
}

// Ordinal returns a slog.Attr for a 1-based search hit ordinal.
func Ordinal(n int) slog.Attr {
	return slog.Int(KeyOrdinal, n)
}

// Offset returns a slog.Attr for a byte offset within a database file.
func Offset(n int64) slog.Attr {
	return slog.Int64(KeyOffset, n)
}

// Reason returns a slog.Attr for a human-readable diagnostic detail.
func Reason(reason string) slog.Attr {
	return slog.String(KeyReason, reason)
}

// Query returns a slog.Attr for the raw query string typed by the user.
func Query(q string) slog.Attr {
	return slog.String(KeyQuery, q)
}

// Count returns a slog.Attr for a generic item count.
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}
