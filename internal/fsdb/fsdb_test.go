package fsdb

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDB(t *testing.T, path string, records []Record) {
	t.Helper()
	enc, err := CreateEncoder(path)
	require.NoError(t, err)
	for _, r := range records {
		require.NoError(t, enc.Write(r.Path, r.Size, r.HasSize))
	}
	require.NoError(t, enc.Close())
}

func readAll(t *testing.T, path string) []Record {
	t.Helper()
	rd, err := OpenReader(path)
	require.NoError(t, err)
	defer rd.Close()

	var out []Record
	for {
		rec, err := rd.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		// Path aliases the reader's buffer; copy before it's reused.
		out = append(out, Record{Path: append([]byte(nil), rec.Path...), Size: rec.Size, HasSize: rec.HasSize})
	}
	return out
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	records := []Record{
		{Path: []byte("/music"), HasSize: false},
		{Path: []byte("/music/Album"), HasSize: false},
		{Path: []byte("/music/Album/01.flac"), Size: 1234, HasSize: true},
		{Path: []byte("/music/Album/02.flac"), Size: 5678, HasSize: true},
		{Path: []byte("/music/Other"), HasSize: false},
		{Path: []byte("/music/Other/readme.txt"), Size: 0, HasSize: true},
	}

	dbPath := filepath.Join(t.TempDir(), "root.fsdb")
	writeDB(t, dbPath, records)
	got := readAll(t, dbPath)

	require.Len(t, got, len(records))
	for i, want := range records {
		assert.Equal(t, string(want.Path), string(got[i].Path), "record %d path", i)
		assert.Equal(t, want.Size, got[i].Size, "record %d size", i)
		assert.Equal(t, want.HasSize, got[i].HasSize, "record %d hasSize", i)
	}
}

func TestEncodeDecodeEmptyDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "empty.fsdb")
	writeDB(t, dbPath, nil)

	rd, err := OpenReader(dbPath)
	require.NoError(t, err)
	defer rd.Close()

	_, err = rd.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestOpenReaderRejectsBadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.fsdb")
	require.NoError(t, os.WriteFile(path, []byte("not-a-db"), 0o644))

	_, err := OpenReader(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad or missing header")
}

func TestReaderRejectsTruncatedRecord(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "trunc.fsdb")
	writeDB(t, dbPath, []Record{
		{Path: []byte("/a/b/c"), Size: 1, HasSize: true},
	})

	raw, err := os.ReadFile(dbPath)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dbPath, raw[:len(raw)-1], 0o644))

	rd, err := OpenReader(dbPath)
	require.NoError(t, err)
	defer rd.Close()

	_, err = rd.Next()
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}

func TestReaderRejectsDiscardLargerThanPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "discard.fsdb")
	enc, err := CreateEncoder(dbPath)
	require.NoError(t, err)
	require.NoError(t, enc.Write([]byte("/a"), 0, false))
	require.NoError(t, enc.Close())

	raw, err := os.ReadFile(dbPath)
	require.NoError(t, err)
	// First record byte after the header is the discard varint; force it to
	// an impossibly large discard for a fresh (empty) previous path.
	raw[MagicLen] = 0x7f
	require.NoError(t, os.WriteFile(dbPath, raw, 0o644))

	rd, err := OpenReader(dbPath)
	require.NoError(t, err)
	defer rd.Close()

	_, err = rd.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds current path length")
}

func TestEncoderAbortRemovesTempFile(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "aborted.fsdb")
	enc, err := CreateEncoder(dbPath)
	require.NoError(t, err)
	require.NoError(t, enc.Write([]byte("/a"), 0, false))
	require.NoError(t, enc.Abort())

	_, err = os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp file should have been removed")
}

func TestPathForRoot(t *testing.T) {
	got := PathForRoot("/db", "/Users/me/Music")
	assert.Equal(t, filepath.Join("/db", "_Users_me_Music.fsdb"), got)
}
