package ui

import (
	"os"
	"path/filepath"
	"strings"
)

// ToUserFriendlyPath shortens absPath by replacing the home directory prefix with "~".
func ToUserFriendlyPath(absPath, homeDir string) string {
	if homeDir == "" {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	if strings.HasPrefix(absPath, homeDir+string(os.PathSeparator)) {
		return filepath.Join("~", strings.TrimPrefix(absPath, homeDir+string(os.PathSeparator)))
	}
	return absPath
}
