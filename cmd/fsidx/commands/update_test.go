package commands

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsidx/internal/fsdb"
)

func TestExistingDatabasesFindsOnlyPresentOnes(t *testing.T) {
	dbDir := t.TempDir()
	require.NoError(t, os.WriteFile(fsdb.PathForRoot(dbDir, "/music"), []byte(fsdb.Magic), 0o644))

	found := existingDatabases(dbDir, []string{"/music", "/videos"})
	assert.Equal(t, []string{"/music"}, found)
}

func TestExistingDatabasesEmptyWhenNoneExist(t *testing.T) {
	dbDir := t.TempDir()
	assert.Empty(t, existingDatabases(dbDir, []string{"/music"}))
}
