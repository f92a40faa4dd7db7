package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For markers and other dim diagnostics
)

// Prompt Colors
var (
	ShellNameColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	UserColor      = color.New(color.FgMagenta).SprintFunc()
	HostColor      = color.New(color.FgHiMagenta).SprintFunc()
	PathColor      = color.New(color.FgYellow).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)
