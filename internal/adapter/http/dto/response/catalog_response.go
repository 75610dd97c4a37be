package response

import (
	"illusphere_backend/internal/domain/entities"
	"illusphere_backend/internal/usecase"
)

type ComplexityOptionResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	MinPrice    int64  `json:"minPrice"`
	MaxPrice    int64  `json:"maxPrice"`
}

type ServiceResponse struct {
	ID                string                     `json:"id"`
	Name              string                     `json:"name"`
	Slug              string                     `json:"slug"`
	Description       string                     `json:"description"`
	Category          string                     `json:"category"`
	Icon              string                     `json:"icon"`
	BasePrice         int64                      `json:"basePrice"`
	ComplexityOptions []ComplexityOptionResponse `json:"complexityOptions"`
}

type AdditionalServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	MinPrice    int64  `json:"minPrice"`
	MaxPrice    int64  `json:"maxPrice"`
}

func FromServiceWithOptions(s usecase.ServiceWithOptions) ServiceResponse {
	options := make([]ComplexityOptionResponse, 0, len(s.ComplexityOptions))
	for _, opt := range s.ComplexityOptions {
		options = append(options, ComplexityOptionResponse{
			ID:          opt.ID,
			Name:        opt.Name,
			Slug:        opt.Slug,
			Description: opt.Description,
			MinPrice:    opt.MinPrice,
			MaxPrice:    opt.MaxPrice,
		})
	}
	return ServiceResponse{
		ID:                s.Service.ID,
		Name:              s.Service.Name,
		Slug:              s.Service.Slug,
		Description:       s.Service.Description,
		Category:          string(s.Service.Category),
		Icon:              s.Service.Icon,
		BasePrice:         s.Service.BasePrice,
		ComplexityOptions: options,
	}
}

func FromAdditionalService(a entities.AdditionalService) AdditionalServiceResponse {
	return AdditionalServiceResponse{
		ID:          a.ID,
		Name:        a.Name,
		Slug:        a.Slug,
		Description: a.Description,
		Icon:        a.Icon,
		MinPrice:    a.MinPrice,
		MaxPrice:    a.MaxPrice,
	}
}
