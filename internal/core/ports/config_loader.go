package ports

import "go.cachet.dev/cachet/internal/core/domain"

// ConfigLoader resolves the run specification from configuration and the CI
// environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	Load(path string) (*domain.RunSpec, error)
}
