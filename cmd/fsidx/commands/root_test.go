package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommandHasExpectedSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range GetRootCmd().Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"update", "locate", "shell", "version", "completion"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}
