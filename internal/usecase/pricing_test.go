package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"illusphere_backend/internal/domain/entities"
	mock_interfaces "illusphere_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTimelineModifier(t *testing.T) {
	cases := []struct {
		timeline entities.TimelineType
		want     float64
	}{
		{entities.TimelineRush, 0.30},
		{entities.TimelineStandard, 0.00},
		{entities.TimelineFlexible, -0.10},
		{entities.TimelineNoDeadline, -0.15},
		{entities.TimelineType("SOMEDAY"), 0.00},
		{entities.TimelineType(""), 0.00},
	}
	for _, tc := range cases {
		if got := TimelineModifier(tc.timeline); got != tc.want {
			t.Fatalf("TimelineModifier(%q) = %v, want %v", tc.timeline, got, tc.want)
		}
	}
}

func TestPricingEngine_Estimate(t *testing.T) {
	t.Run("rush modifier on both bounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		engine := NewPricingEngine(catalog)

		catalog.EXPECT().GetComplexityOption(gomock.Any(), "cx-1").Return(entities.ComplexityOption{
			ID: "cx-1", ServiceID: "svc-1", MinPrice: 10000000, MaxPrice: 20000000,
		}, nil)

		quote, err := engine.Estimate(context.Background(),
			[]ServiceSelection{{ServiceID: "svc-1", ComplexityID: "cx-1"}},
			nil, entities.TimelineRush)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.EstimatedMin != 13000000 || quote.EstimatedMax != 26000000 {
			t.Fatalf("expected [13000000, 26000000], got [%d, %d]", quote.EstimatedMin, quote.EstimatedMax)
		}
		if quote.TimelineModifier != 0.30 {
			t.Fatalf("expected modifier 0.30, got %v", quote.TimelineModifier)
		}
	})

	t.Run("no deadline modifier on both bounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		engine := NewPricingEngine(catalog)

		catalog.EXPECT().GetComplexityOption(gomock.Any(), "cx-1").Return(entities.ComplexityOption{
			ID: "cx-1", MinPrice: 10000000, MaxPrice: 20000000,
		}, nil)

		quote, err := engine.Estimate(context.Background(),
			[]ServiceSelection{{ServiceID: "svc-1", ComplexityID: "cx-1"}},
			nil, entities.TimelineNoDeadline)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.EstimatedMin != 8500000 || quote.EstimatedMax != 17000000 {
			t.Fatalf("expected [8500000, 17000000], got [%d, %d]", quote.EstimatedMin, quote.EstimatedMax)
		}
	})

	t.Run("standard timeline with additional service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		engine := NewPricingEngine(catalog)

		catalog.EXPECT().GetComplexityOption(gomock.Any(), "cx-1").Return(entities.ComplexityOption{
			ID: "cx-1", MinPrice: 3000000, MaxPrice: 7000000,
		}, nil)
		catalog.EXPECT().GetAdditionalService(gomock.Any(), "add-1").Return(entities.AdditionalService{
			ID: "add-1", MinPrice: 1500000, MaxPrice: 5000000,
		}, nil)

		quote, err := engine.Estimate(context.Background(),
			[]ServiceSelection{{ServiceID: "svc-1", ComplexityID: "cx-1"}},
			[]string{"add-1"}, entities.TimelineStandard)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.EstimatedMin != 4500000 || quote.EstimatedMax != 12000000 {
			t.Fatalf("expected [4500000, 12000000], got [%d, %d]", quote.EstimatedMin, quote.EstimatedMax)
		}
		if len(quote.Services) != 1 || len(quote.AdditionalServices) != 1 {
			t.Fatalf("expected one line each, got %d/%d", len(quote.Services), len(quote.AdditionalServices))
		}
	})

	t.Run("snapshot lines carry catalog prices verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		engine := NewPricingEngine(catalog)

		catalog.EXPECT().GetComplexityOption(gomock.Any(), "cx-1").Return(entities.ComplexityOption{
			ID: "cx-1", MinPrice: 3000000, MaxPrice: 7000000,
		}, nil)
		catalog.EXPECT().GetAdditionalService(gomock.Any(), "add-1").Return(entities.AdditionalService{
			ID: "add-1", MinPrice: 1500000, MaxPrice: 5000000,
		}, nil)

		quote, err := engine.Estimate(context.Background(),
			[]ServiceSelection{{ServiceID: "svc-1", ComplexityID: "cx-1"}},
			[]string{"add-1"}, entities.TimelineRush)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		line := quote.Services[0]
		if line.ServiceID != "svc-1" || line.ComplexityOptionID != "cx-1" {
			t.Fatalf("unexpected service line ids: %+v", line)
		}
		// Snapshots are pre-modifier catalog prices.
		if line.SelectedMinPrice != 3000000 || line.SelectedMaxPrice != 7000000 {
			t.Fatalf("unexpected service line prices: %+v", line)
		}
		add := quote.AdditionalServices[0]
		if add.AdditionalServiceID != "add-1" || add.SelectedMinPrice != 1500000 || add.SelectedMaxPrice != 5000000 {
			t.Fatalf("unexpected additional line: %+v", add)
		}
	})

	t.Run("duplicate selections aggregate independently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		engine := NewPricingEngine(catalog)

		catalog.EXPECT().GetComplexityOption(gomock.Any(), "cx-1").Return(entities.ComplexityOption{
			ID: "cx-1", MinPrice: 1000000, MaxPrice: 2000000,
		}, nil).Times(2)

		quote, err := engine.Estimate(context.Background(),
			[]ServiceSelection{
				{ServiceID: "svc-1", ComplexityID: "cx-1"},
				{ServiceID: "svc-1", ComplexityID: "cx-1"},
			},
			nil, entities.TimelineStandard)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.EstimatedMin != 2000000 || quote.EstimatedMax != 4000000 {
			t.Fatalf("expected doubled totals, got [%d, %d]", quote.EstimatedMin, quote.EstimatedMax)
		}
		if len(quote.Services) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(quote.Services))
		}
	})

	t.Run("unknown complexity id aborts whole computation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		engine := NewPricingEngine(catalog)

		catalog.EXPECT().GetComplexityOption(gomock.Any(), "cx-1").Return(entities.ComplexityOption{
			ID: "cx-1", MinPrice: 1000000, MaxPrice: 2000000,
		}, nil)
		catalog.EXPECT().GetComplexityOption(gomock.Any(), "cx-missing").Return(entities.ComplexityOption{}, nil)

		_, err := engine.Estimate(context.Background(),
			[]ServiceSelection{
				{ServiceID: "svc-1", ComplexityID: "cx-1"},
				{ServiceID: "svc-2", ComplexityID: "cx-missing"},
			},
			nil, entities.TimelineStandard)
		if !errors.Is(err, ErrComplexityOptionNotFound) {
			t.Fatalf("expected ErrComplexityOptionNotFound, got %v", err)
		}
		if !strings.Contains(err.Error(), "cx-missing") {
			t.Fatalf("expected offending id in error, got %v", err)
		}
	})

	t.Run("unknown additional service id aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		engine := NewPricingEngine(catalog)

		catalog.EXPECT().GetComplexityOption(gomock.Any(), "cx-1").Return(entities.ComplexityOption{
			ID: "cx-1", MinPrice: 1000000, MaxPrice: 2000000,
		}, nil)
		catalog.EXPECT().GetAdditionalService(gomock.Any(), "add-missing").Return(entities.AdditionalService{}, nil)

		_, err := engine.Estimate(context.Background(),
			[]ServiceSelection{{ServiceID: "svc-1", ComplexityID: "cx-1"}},
			[]string{"add-missing"}, entities.TimelineStandard)
		if !errors.Is(err, ErrAdditionalServiceNotFound) {
			t.Fatalf("expected ErrAdditionalServiceNotFound, got %v", err)
		}
	})

	t.Run("catalog error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		engine := NewPricingEngine(catalog)

		catalog.EXPECT().GetComplexityOption(gomock.Any(), "cx-1").Return(entities.ComplexityOption{}, errors.New("db"))

		_, err := engine.Estimate(context.Background(),
			[]ServiceSelection{{ServiceID: "svc-1", ComplexityID: "cx-1"}},
			nil, entities.TimelineStandard)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("min never exceeds max", func(t *testing.T) {
		for _, timeline := range []entities.TimelineType{
			entities.TimelineRush, entities.TimelineStandard,
			entities.TimelineFlexible, entities.TimelineNoDeadline,
		} {
			ctrl := gomock.NewController(t)
			catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
			engine := NewPricingEngine(catalog)

			catalog.EXPECT().GetComplexityOption(gomock.Any(), "cx-1").Return(entities.ComplexityOption{
				ID: "cx-1", MinPrice: 1234567, MaxPrice: 7654321,
			}, nil)

			quote, err := engine.Estimate(context.Background(),
				[]ServiceSelection{{ServiceID: "svc-1", ComplexityID: "cx-1"}},
				nil, timeline)
			if err != nil {
				t.Fatalf("unexpected error for %s: %v", timeline, err)
			}
			if quote.EstimatedMin > quote.EstimatedMax {
				t.Fatalf("%s: min %d > max %d", timeline, quote.EstimatedMin, quote.EstimatedMax)
			}
			ctrl.Finish()
		}
	})
}
