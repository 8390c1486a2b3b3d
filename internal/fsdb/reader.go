package fsdb

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"fsidx/internal/ferrors"
	"fsidx/internal/varint"
)

// countingByteReader wraps a *bufio.Reader and counts bytes consumed via
// ReadByte, so Reader can report precise offsets in MalformedDatabase.
type countingByteReader struct {
	r *bufio.Reader
	n int64
}

func (c *countingByteReader) ReadByte() (byte, error) {
	b, err := c.r.ReadByte()
	if err == nil {
		c.n++
	}
	return b, err
}

// Reader streams records out of a database file written by Encoder. Each
// call to Next reuses an internal path buffer: the Path returned by one
// Record is only valid until the next call to Next.
type Reader struct {
	f    *os.File
	br   *bufio.Reader
	cr   *countingByteReader
	path string
	buf  []byte
}

// OpenReader opens path and validates its header.
func OpenReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fsdb: open database: %w", err)
	}
	br := bufio.NewReader(f)
	header := make([]byte, MagicLen)
	if _, err := io.ReadFull(br, header); err != nil || string(header) != Magic {
		f.Close()
		return nil, &ferrors.MalformedDatabase{Path: path, Offset: 0, Reason: "bad or missing header"}
	}
	return &Reader{
		f:    f,
		br:   br,
		cr:   &countingByteReader{r: br},
		path: path,
	}, nil
}

// Next decodes the next record, or returns io.EOF once the database is
// exhausted. A truncated or inconsistent record produces a
// *ferrors.MalformedDatabase instead.
func (rd *Reader) Next() (Record, error) {
	// Peek a single byte to distinguish a clean end-of-file at a record
	// boundary from a truncated record.
	b, err := rd.br.ReadByte()
	if err != nil {
		return Record{}, io.EOF
	}
	if err := rd.br.UnreadByte(); err != nil {
		return Record{}, rd.malformed("internal: unread byte failed")
	}
	_ = b

	discard, err := varint.Decode(rd.cr)
	if err != nil {
		return Record{}, rd.malformed("truncated discard length")
	}
	if int(discard) > len(rd.buf) {
		return Record{}, rd.malformed(fmt.Sprintf("discard %d exceeds current path length %d", discard, len(rd.buf)))
	}

	suffixLen, err := varint.Decode(rd.cr)
	if err != nil {
		return Record{}, rd.malformed("truncated suffix length")
	}

	rd.buf = rd.buf[:len(rd.buf)-int(discard)]
	start := len(rd.buf)
	rd.buf = append(rd.buf, make([]byte, suffixLen)...)
	if _, err := io.ReadFull(rd.br, rd.buf[start:]); err != nil {
		return Record{}, rd.malformed("truncated path suffix")
	}
	rd.cr.n += int64(suffixLen)

	sizeField, err := varint.Decode(rd.cr)
	if err != nil {
		return Record{}, rd.malformed("truncated size field")
	}

	rec := Record{Path: rd.buf}
	if sizeField == NoSize {
		rec.HasSize = false
	} else {
		rec.HasSize = true
		rec.Size = sizeField
	}
	return rec, nil
}

// Close releases the underlying file.
func (rd *Reader) Close() error {
	return rd.f.Close()
}

func (rd *Reader) malformed(reason string) error {
	return &ferrors.MalformedDatabase{
		Path:   rd.path,
		Offset: int64(MagicLen) + rd.cr.n,
		Reason: reason,
	}
}
