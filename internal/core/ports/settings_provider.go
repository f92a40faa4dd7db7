package ports

import "github.com/AntonioJCosta/neo/internal/core/domain/settings"

// SettingsProvider defines the contract for loading the shell's settings.
type SettingsProvider interface {
	// GetSettings returns the configured settings, falling back to defaults
	// for anything the source does not specify.
	GetSettings() (settings.Settings, error)
}
