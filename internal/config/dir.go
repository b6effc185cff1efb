// Package config holds the global configuration and the per-workspace
// state file that lets the CLI reconstruct a workspace between runs.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the wfctl configuration directory.
//
// Resolution:
//   - $WFCTL_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/wfctl if set (respects XDG on any platform)
//   - %AppData%/wfctl on Windows
//   - ~/.config/wfctl on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("WFCTL_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wfctl")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wfctl")
		}
	}

	// macOS and Linux: ~/.config/wfctl
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "wfctl")
}
