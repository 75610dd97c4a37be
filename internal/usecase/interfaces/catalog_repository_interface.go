package interfaces

import (
	"context"

	"illusphere_backend/internal/domain/entities"
)

// ICatalogRepository abstracts read access to the priced catalog and the
// write path used only by the seed command.
//
// Lookups return a zero-value entity (empty ID) when the id does not resolve;
// the pricing engine translates that into its not-found failure.

type ICatalogRepository interface {
	GetComplexityOption(ctx context.Context, id string) (entities.ComplexityOption, error)
	GetAdditionalService(ctx context.Context, id string) (entities.AdditionalService, error)

	ListServices(ctx context.Context) ([]entities.Service, error)
	ListComplexityOptionsByService(ctx context.Context, serviceID string) ([]entities.ComplexityOption, error)
	ListAdditionalServices(ctx context.Context) ([]entities.AdditionalService, error)

	GetServiceBySlug(ctx context.Context, slug string) (entities.Service, error)
	GetComplexityOptionBySlug(ctx context.Context, slug string) (entities.ComplexityOption, error)
	GetAdditionalServiceBySlug(ctx context.Context, slug string) (entities.AdditionalService, error)
	PutService(ctx context.Context, s entities.Service) error
	PutComplexityOption(ctx context.Context, c entities.ComplexityOption) error
	PutAdditionalService(ctx context.Context, a entities.AdditionalService) error
}
