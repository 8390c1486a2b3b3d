package search

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitListHeadersAndRows(t *testing.T) {
	list := HitList{
		Hits: []Hit{
			{Ordinal: 1, Path: "/a/b.txt", Size: 10, HasSize: true},
			{Ordinal: 2, Path: "/a/c", HasSize: false},
		},
		ShowSize: true,
	}

	assert.Equal(t, []string{"#", "PATH", "SIZE"}, list.Headers())
	rows := list.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "/a/b.txt", "10B"}, rows[0])
	assert.Equal(t, []string{"2", "/a/c", "-"}, rows[1])
}

func TestHitListHeadersWithoutSize(t *testing.T) {
	list := HitList{Hits: []Hit{{Ordinal: 1, Path: "/a"}}}
	assert.Equal(t, []string{"#", "PATH"}, list.Headers())
	assert.Equal(t, [][]string{{"1", "/a"}}, list.Rows())
}

func TestWritePlain(t *testing.T) {
	var buf bytes.Buffer
	hits := []Hit{
		{Ordinal: 1, Path: "/music/song.mp3", Size: 4096, HasSize: true},
		{Ordinal: 2, Path: "/music/dir", HasSize: false},
	}
	require.NoError(t, WritePlain(&buf, hits))

	out := buf.String()
	assert.Contains(t, out, "1. /music/song.mp3 (4096 bytes)\n")
	assert.Contains(t, out, "2. /music/dir\n")
}
