package shell

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"fsidx/internal/search"
)

func TestHandleOpenRejectsOutOfRange(t *testing.T) {
	var stderr bytes.Buffer
	hits := []search.Hit{{Ordinal: 1, Path: "/a"}}

	handleOpen("5", hits, &stderr)
	assert.Contains(t, stderr.String(), "invalid hit number")
}

func TestHandleOpenRejectsNonNumeric(t *testing.T) {
	var stderr bytes.Buffer
	handleOpen("abc", nil, &stderr)
	assert.Contains(t, stderr.String(), "invalid hit number")
}

func TestMemSinkCollectsHitsAndWarnings(t *testing.T) {
	s := &memSink{}
	s.Hit(search.Hit{Ordinal: 1, Path: "/x"})
	s.Warning("/root", assert.AnError)

	assert.Len(t, s.hits, 1)
	assert.Len(t, s.warnings, 1)
	assert.Contains(t, s.warnings[0], "/root")
}
