package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsidx/internal/ferrors"
	"fsidx/internal/query"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fsidx.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
[index]
folder = ["/Users/me/Music", "/Volumes/Archive"]
dbpath = "/Users/me/.fsidx/db"

[locate]
case-sensitive = true
order = "same-order"
scope = "last-element"
smart-spaces = false
word-boundaries = true
literal-separator = true
mode = "glob"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/Users/me/Music", "/Volumes/Archive"}, cfg.Roots)
	assert.Equal(t, "/Users/me/.fsidx/db", cfg.DBDir)
	assert.True(t, cfg.Defaults.CaseSensitive)
	assert.Equal(t, "same-order", cfg.Defaults.Order)
	assert.Equal(t, "glob", cfg.Defaults.Mode)
}

func TestLoadAppliesDefaultsWhenLocateTableMissing(t *testing.T) {
	path := writeConfig(t, `
[index]
folder = ["/data"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "any-order", cfg.Defaults.Order)
	assert.Equal(t, "whole-path", cfg.Defaults.Scope)
	assert.True(t, cfg.Defaults.SmartSpaces)
	assert.Equal(t, "auto", cfg.Defaults.Mode)
}

func TestLoadDerivesDBDirFromHomeWhenUnset(t *testing.T) {
	path := writeConfig(t, `
[index]
folder = ["/data"]
`)

	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".fsidx", "db"), cfg.DBDir)
}

func TestLoadRejectsMissingFolder(t *testing.T) {
	path := writeConfig(t, `
[index]
folder = []
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidEnum(t *testing.T) {
	path := writeConfig(t, `
[index]
folder = ["/data"]

[locate]
order = "backwards"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFileIsConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "nope.toml"))
	assert.ErrorIs(t, err, ferrors.ConfigInvalid)
}

func TestResolvePathPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("FSIDX_CONFIG_FILE", "")

	homeConfig := filepath.Join(home, ".fsidx", "fsidx.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(homeConfig), 0o755))
	require.NoError(t, os.WriteFile(homeConfig, []byte("[index]\nfolder=[\"/x\"]\n"), 0o644))

	got, err := resolvePath("")
	require.NoError(t, err)
	assert.Equal(t, homeConfig, got)

	explicit := filepath.Join(home, "explicit.toml")
	got, err = resolvePath(explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, got)
}

func TestToQueryFlagsTranslation(t *testing.T) {
	f := LocateFlags{
		CaseSensitive:    true,
		Order:            "same-order",
		Scope:            "last-element",
		SmartSpaces:      false,
		WordBoundaries:   true,
		LiteralSeparator: true,
		Mode:             "glob",
	}
	qf, err := f.ToQueryFlags()
	require.NoError(t, err)
	assert.Equal(t, query.OrderSame, qf.Order)
	assert.Equal(t, query.ScopeLastElement, qf.Scope)
	assert.Equal(t, query.ModeGlob, qf.Mode)
	assert.True(t, qf.CaseSensitive)
	assert.True(t, qf.WordBoundaries)
	assert.True(t, qf.LiteralSeparator)
	assert.False(t, qf.SmartSpaces)
}

func TestToQueryFlagsRejectsUnknownEnum(t *testing.T) {
	f := DefaultLocateFlags()
	f.Mode = "nonsense"
	_, err := f.ToQueryFlags()
	assert.Error(t, err)
}
