package entities

// ServiceCategory groups services on the intake form.

type ServiceCategory string

const (
	ServiceCategoryTech     ServiceCategory = "TECH"
	ServiceCategoryCreative ServiceCategory = "CREATIVE"
)

// Service is a base offering (e.g. Web Development). Read-only from the
// intake workflow's perspective; the seed command maintains it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI slug-index (PK: slug), used by the idempotent seeder

type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Category    ServiceCategory `json:"category"`
	Icon        string          `json:"icon"`
	BasePrice   int64           `json:"base_price"`
	IsActive    bool            `json:"is_active"`
}

// ComplexityOption is a priced tier under a Service. Prices are whole IDR
// units with MinPrice <= MaxPrice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI service_id-index (PK: service_id)
//   - GSI slug-index (PK: slug)

type ComplexityOption struct {
	ID          string `json:"id"`
	ServiceID   string `json:"service_id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	MinPrice    int64  `json:"min_price"`
	MaxPrice    int64  `json:"max_price"`
}

// AdditionalService is a standalone priced add-on, same price-range shape as
// ComplexityOption but not tied to any base service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI slug-index (PK: slug)

type AdditionalService struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	MinPrice    int64  `json:"min_price"`
	MaxPrice    int64  `json:"max_price"`
}
