package ui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AntonioJCosta/neo/internal/core/domain/request"
	"github.com/AntonioJCosta/neo/internal/core/domain/response"
	"github.com/fatih/color"
)

func withoutColor(t *testing.T) {
	t.Helper()
	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = previous })
}

func TestToUserFriendlyPath(t *testing.T) {
	home := filepath.Join(string(filepath.Separator), "home", "neo")
	tests := []struct {
		name string
		path string
		home string
		want string
	}{
		{name: "home itself", path: home, home: home, want: "~"},
		{name: "inside home", path: filepath.Join(home, "src", "app"), home: home, want: filepath.Join("~", "src", "app")},
		{name: "outside home", path: "/etc", home: home, want: "/etc"},
		{name: "sibling sharing a prefix", path: home + "-backup", home: home, want: home + "-backup"},
		{name: "unknown home", path: "/tmp", home: "", want: "/tmp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToUserFriendlyPath(tt.path, tt.home); got != tt.want {
				t.Errorf("ToUserFriendlyPath(%q, %q) = %q, want %q", tt.path, tt.home, got, tt.want)
			}
		})
	}
}

func TestFormatPrompt(t *testing.T) {
	withoutColor(t)
	got := FormatPrompt(PromptInfo{User: "ada", Host: "engine", Path: "~/notes"})
	want := "### neo [ada@engine:~/notes]\n$ "
	if got != want {
		t.Errorf("FormatPrompt() = %q, want %q", got, want)
	}
}

func TestFormatInputLine(t *testing.T) {
	withoutColor(t)
	if got := FormatInputLine("ls -l"); got != "$ ls -l" {
		t.Errorf("FormatInputLine() = %q, want %q", got, "$ ls -l")
	}
}

func TestDiagnosticReporter(t *testing.T) {
	withoutColor(t)

	tests := []struct {
		name           string
		showDelimiters bool
		want           string
	}{
		{
			name:           "with delimiters",
			showDelimiters: true,
			want:           "? using system command\n```\n```\n* OK\n* ERROR\n",
		},
		{
			name:           "without delimiters",
			showDelimiters: false,
			want:           "? using system command\n* OK\n* ERROR\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			rep := NewDiagnosticReporter(&out, tt.showDelimiters)

			rep.SystemCommandFallback(request.New("ls"))
			rep.ExternalOutputStart()
			rep.ExternalOutputEnd()
			rep.Outcome(response.Ok())
			rep.Outcome(response.Error())

			if out.String() != tt.want {
				t.Errorf("reporter output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestCurrentPromptInfo(t *testing.T) {
	info := CurrentPromptInfo()
	if strings.TrimSpace(info.User) == "" || strings.TrimSpace(info.Host) == "" || strings.TrimSpace(info.Path) == "" {
		t.Errorf("CurrentPromptInfo() returned empty fields: %#v", info)
	}
}
