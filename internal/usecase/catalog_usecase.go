package usecase

import (
	"context"

	"illusphere_backend/internal/domain/entities"
	"illusphere_backend/internal/usecase/interfaces"
)

// ServiceWithOptions bundles a base service with its selectable tiers, the
// shape the intake form renders.
type ServiceWithOptions struct {
	Service           entities.Service
	ComplexityOptions []entities.ComplexityOption
}

// ICatalogUseCase exposes read-only catalog listings.
type ICatalogUseCase interface {
	ListServices(ctx context.Context) ([]ServiceWithOptions, error)
	ListAdditionalServices(ctx context.Context) ([]entities.AdditionalService, error)
}

type CatalogUseCase struct {
	catalog interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalog interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// ListServices returns active services with their complexity options.
// Inactive services are filtered out; their options are never fetched.
func (u *CatalogUseCase) ListServices(ctx context.Context) ([]ServiceWithOptions, error) {
	services, err := u.catalog.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ServiceWithOptions, 0, len(services))
	for _, s := range services {
		if !s.IsActive {
			continue
		}
		options, err := u.catalog.ListComplexityOptionsByService(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, ServiceWithOptions{Service: s, ComplexityOptions: options})
	}
	return out, nil
}

func (u *CatalogUseCase) ListAdditionalServices(ctx context.Context) ([]entities.AdditionalService, error) {
	return u.catalog.ListAdditionalServices(ctx)
}
