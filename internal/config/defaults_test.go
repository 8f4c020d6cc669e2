package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ekisa-team/convdict/internal/envvar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFieldsPath(t *testing.T) {
	t.Setenv(envvar.ConvdictFields, "/etc/convdict/env.yaml")
	assert.Equal(t, "/tmp/flag.yaml", ResolveFieldsPath("/tmp/flag.yaml"))
	assert.Equal(t, "/etc/convdict/env.yaml", ResolveFieldsPath(""))

	require.NoError(t, os.Unsetenv(envvar.ConvdictFields))
	assert.Equal(t, filepath.Join(DefaultConfigPath(), DefaultFieldsFile), ResolveFieldsPath(""))
}

func TestDefaultConfigPath_XDG(t *testing.T) {
	if _, err := os.UserHomeDir(); err != nil {
		t.Skip("no home directory")
	}

	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	path := DefaultConfigPath()
	assert.Equal(t, "convdict", filepath.Base(path))
}
