package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"illusphere_backend/internal/domain/entities"
	"illusphere_backend/internal/usecase/interfaces"
)

var (
	ErrComplexityOptionNotFound  = errors.New("complexity option not found")
	ErrAdditionalServiceNotFound = errors.New("additional service not found")
)

// timelineModifiers adjusts both estimate bounds by delivery urgency.
// Unrecognized timeline values deliberately fall back to 0 (no adjustment)
// rather than failing the submission.
var timelineModifiers = map[entities.TimelineType]float64{
	entities.TimelineRush:       0.30,
	entities.TimelineStandard:   0.00,
	entities.TimelineFlexible:   -0.10,
	entities.TimelineNoDeadline: -0.15,
}

// TimelineModifier returns the pricing adjustment for a timeline type.
func TimelineModifier(t entities.TimelineType) float64 {
	if m, ok := timelineModifiers[t]; ok {
		return m
	}
	return 0
}

// ServiceSelection is one {service, complexity tier} pair picked on the
// intake form.
type ServiceSelection struct {
	ServiceID    string
	ComplexityID string
}

// ServiceLine is the priced snapshot of one selection, copied verbatim from
// the catalog at quote time.
type ServiceLine struct {
	ServiceID          string
	ComplexityOptionID string
	SelectedMinPrice   int64
	SelectedMaxPrice   int64
}

// AdditionalServiceLine is the priced snapshot of one selected add-on.
type AdditionalServiceLine struct {
	AdditionalServiceID string
	SelectedMinPrice    int64
	SelectedMaxPrice    int64
}

// Quote is the result of pricing one submission.
type Quote struct {
	EstimatedMin       int64
	EstimatedMax       int64
	TimelineModifier   float64
	Services           []ServiceLine
	AdditionalServices []AdditionalServiceLine
}

// PricingEngine aggregates per-line price ranges from the catalog and applies
// the timeline modifier.
//
// Both bounds go through the same aggregation and the same rounding, so
// EstimatedMin <= EstimatedMax holds by construction as long as every catalog
// row satisfies min <= max.
type PricingEngine struct {
	catalog interfaces.ICatalogRepository
}

func NewPricingEngine(catalog interfaces.ICatalogRepository) *PricingEngine {
	return &PricingEngine{catalog: catalog}
}

// Estimate prices the given selections in input order. The first selection id
// that does not resolve in the catalog aborts the whole computation; no
// partial aggregate is returned. Duplicate selections are each priced on
// their own line, no deduplication.
func (p *PricingEngine) Estimate(
	ctx context.Context,
	selections []ServiceSelection,
	additionalIDs []string,
	timeline entities.TimelineType,
) (Quote, error) {
	var min, max int64

	lines := make([]ServiceLine, 0, len(selections))
	for _, sel := range selections {
		opt, err := p.catalog.GetComplexityOption(ctx, sel.ComplexityID)
		if err != nil {
			return Quote{}, err
		}
		if opt.ID == "" {
			return Quote{}, fmt.Errorf("%w: %s", ErrComplexityOptionNotFound, sel.ComplexityID)
		}

		min += opt.MinPrice
		max += opt.MaxPrice
		lines = append(lines, ServiceLine{
			ServiceID:          sel.ServiceID,
			ComplexityOptionID: sel.ComplexityID,
			SelectedMinPrice:   opt.MinPrice,
			SelectedMaxPrice:   opt.MaxPrice,
		})
	}

	addLines := make([]AdditionalServiceLine, 0, len(additionalIDs))
	for _, id := range additionalIDs {
		add, err := p.catalog.GetAdditionalService(ctx, id)
		if err != nil {
			return Quote{}, err
		}
		if add.ID == "" {
			return Quote{}, fmt.Errorf("%w: %s", ErrAdditionalServiceNotFound, id)
		}

		min += add.MinPrice
		max += add.MaxPrice
		addLines = append(addLines, AdditionalServiceLine{
			AdditionalServiceID: id,
			SelectedMinPrice:    add.MinPrice,
			SelectedMaxPrice:    add.MaxPrice,
		})
	}

	modifier := TimelineModifier(timeline)

	return Quote{
		EstimatedMin:       applyModifier(min, modifier),
		EstimatedMax:       applyModifier(max, modifier),
		TimelineModifier:   modifier,
		Services:           lines,
		AdditionalServices: addLines,
	}, nil
}

// applyModifier rounds to the nearest whole currency unit, half away from
// zero (math.Round semantics).
func applyModifier(amount int64, modifier float64) int64 {
	return int64(math.Round(float64(amount) * (1 + modifier)))
}
