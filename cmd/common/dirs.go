package common

import (
	"os"
	"path/filepath"
)

// ConfigDir is where dit keeps its config and log files.
func ConfigDir() string {
	return filepath.Join(configHome(), appName)
}

// https://specifications.freedesktop.org/basedir/latest/#variables
func configHome() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return dir
}
