package ui

import (
	"fmt"
	"os"
	"os/user"
)

// InputMarker precedes the line being edited.
const InputMarker = "$"

// PromptInfo holds what the prompt header displays.
type PromptInfo struct {
	User string
	Host string
	Path string
}

// CurrentPromptInfo collects the user, host and working directory of the shell.
// Lookups that fail fall back to placeholders instead of failing the prompt.
func CurrentPromptInfo() PromptInfo {
	info := PromptInfo{User: "?", Host: "localhost", Path: "?"}

	var homeDir string
	if usr, err := user.Current(); err == nil {
		info.User = usr.Username
		homeDir = usr.HomeDir
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		info.Host = host
	}
	if cwd, err := os.Getwd(); err == nil {
		info.Path = ToUserFriendlyPath(cwd, homeDir)
	}
	return info
}

// FormatPrompt renders the two-line prompt: a header followed by the input marker.
func FormatPrompt(info PromptInfo) string {
	return fmt.Sprintf("%s %s [%s@%s:%s]\n%s ",
		DetailColor("###"),
		ShellNameColor("neo"),
		UserColor(info.User),
		HostColor(info.Host),
		PathColor(info.Path),
		DetailColor(InputMarker),
	)
}

// FormatInputLine renders the marker followed by the buffer being edited.
func FormatInputLine(buffer string) string {
	return DetailColor(InputMarker) + " " + buffer
}
