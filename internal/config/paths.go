// ABOUTME: Standard filesystem paths for ttyctl configuration and data
// ABOUTME: Resolves ~/.ttyctl/ for the inputrc file and per-application history

package config

import (
	"os"
	"path/filepath"
	"strings"
)

const globalDirName = ".ttyctl"

// GlobalDir returns the user-global config directory (~/.ttyctl/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// InputrcFile returns the default line-editor configuration file.
func InputrcFile() string {
	return filepath.Join(GlobalDir(), "inputrc.yaml")
}

// HistoryFile returns the history file for an application. Path
// separators in the name are replaced so the file stays in the history
// directory.
func HistoryFile(appName string) string {
	if appName == "" {
		appName = "default"
	}
	name := strings.NewReplacer("/", "_", `\`, "_", "..", "_").Replace(appName)
	return filepath.Join(GlobalDir(), "history", name)
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
