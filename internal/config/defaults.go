package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/ekisa-team/convdict/internal/envvar"
	"github.com/ekisa-team/convdict/internal/xfs"
)

// DefaultFieldsFile is the field file name looked up in the config directory.
const DefaultFieldsFile = "fields.yaml"

// DefaultConfigPath returns the default path for the convdict config directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "convdict", "config")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "convdict")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "convdict")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "convdict")
		}
		return filepath.Join(home, ".config", "convdict")
	}
}

// ResolveFieldsPath returns the path to the field file.
// Precedence:
// 1. The -fields flag value.
// 2. CONVDICT_FIELDS environment variable.
// 3. fields.yaml in the default config directory.
func ResolveFieldsPath(flagValue string) string {
	if flagValue != "" {
		return xfs.ExpandTilde(flagValue)
	}
	if p := os.Getenv(envvar.ConvdictFields); p != "" {
		return xfs.ExpandTilde(p)
	}
	return filepath.Join(DefaultConfigPath(), DefaultFieldsFile)
}
