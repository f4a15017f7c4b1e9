package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.Equal(t, "ops-status", root.Name())
	assert.Subset(t, names, []string{"serve", "version", "check"})
	assert.NotNil(t, root.Flags().Lookup("config"))
	assert.NotNil(t, root.Flags().Lookup("port"))
}
