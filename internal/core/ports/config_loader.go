package ports

import "go.trai.ch/tldr/internal/core/domain"

// ConfigLoader defines the interface for loading the plugin configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds tldr.yaml starting from cwd and walking up, and returns the
	// resolved configuration. A missing file yields the defaults rooted at cwd.
	Load(cwd string) (*domain.Config, error)
}
