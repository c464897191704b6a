package service

import (
	"cliphub/internal/domain/entity"

	"github.com/pkg/errors"
)

// ProviderRegistry resolves the adapter for a platform. The orchestrator and
// callback flow depend only on this lookup plus the ProviderAdapter interface;
// no provider-specific branching exists outside the adapters themselves.
type ProviderRegistry struct {
	adapters map[entity.Platform]ProviderAdapter
}

// NewProviderRegistry builds a registry from the configured adapters.
func NewProviderRegistry(adapters ...ProviderAdapter) *ProviderRegistry {
	byPlatform := make(map[entity.Platform]ProviderAdapter, len(adapters))
	for _, adapter := range adapters {
		byPlatform[adapter.Platform()] = adapter
	}

	return &ProviderRegistry{adapters: byPlatform}
}

// Adapter returns the adapter registered for a platform.
func (r *ProviderRegistry) Adapter(platform entity.Platform) (ProviderAdapter, error) {
	adapter, ok := r.adapters[platform]
	if !ok {
		return nil, errors.Errorf("no provider adapter registered for platform %q", platform)
	}

	return adapter, nil
}

// Platforms lists the platforms that currently have an adapter.
func (r *ProviderRegistry) Platforms() []entity.Platform {
	platforms := make([]entity.Platform, 0, len(r.adapters))
	for platform := range r.adapters {
		platforms = append(platforms, platform)
	}

	return platforms
}
