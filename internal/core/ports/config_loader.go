package ports

import "go.trai.ch/forge/internal/core/domain"

// ConfigLoader defines the interface for loading the server settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the settings file starting at cwd and walking up, or reads
	// explicitPath when it is not empty.
	Load(cwd, explicitPath string) (*domain.Settings, error)
}
