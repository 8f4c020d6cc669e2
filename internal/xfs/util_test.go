package xfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "docs", "a.yaml"), ExpandTilde("~/docs/a.yaml"))
	assert.Equal(t, "/abs/a.yaml", ExpandTilde("/abs/a.yaml"))
	assert.Equal(t, "rel/a.yaml", ExpandTilde("rel/a.yaml"))
}

func TestExpandTilde_Edges(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandTilde("~"))
	assert.Equal(t, "~user/a.yaml", ExpandTilde("~user/a.yaml"))
	assert.Equal(t, "", ExpandTilde(""))
}
