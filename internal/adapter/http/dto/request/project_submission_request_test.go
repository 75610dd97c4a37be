package request

import (
	"testing"

	"illusphere_backend/internal/domain/entities"
)

func TestProjectSubmissionRequest_ResolveEmail(t *testing.T) {
	r := ProjectSubmissionRequest{ClientEmail: "  Ahmad@Example.COM  "}
	if got := r.ResolveEmail(); got != "ahmad@example.com" {
		t.Fatalf("expected normalized email, got %q", got)
	}
}

func TestProjectSubmissionRequest_ToSubmission(t *testing.T) {
	r := ProjectSubmissionRequest{
		ClientName:     "  Ahmad Rizki  ",
		ClientEmail:    "Ahmad@Example.com",
		ClientPhone:    "+6281234567890",
		CompanyName:    "PT Maju Jaya",
		ContactMethod:  "WHATSAPP",
		ContactTime:    "MORNING",
		ProjectName:    "Company profile website",
		Description:    "A marketing site for our manufacturing company in Surabaya.",
		ProjectType:    "REDESIGN",
		Timeline:       "RUSH",
		BudgetMin:      5000000,
		BudgetMax:      15000000,
		Notes:          "  prefer dark theme  ",
		SelectedServices: []SelectedServiceRequest{
			{ServiceID: "svc-1", ComplexityID: "cx-1"},
			{ServiceID: "svc-2", ComplexityID: "cx-2"},
		},
		AdditionalServices: []AdditionalServiceRequest{{ID: "add-1"}},
	}

	sub := r.ToSubmission()

	if sub.Client.FullName != "Ahmad Rizki" {
		t.Fatalf("expected trimmed name, got %q", sub.Client.FullName)
	}
	if sub.Client.Email != "ahmad@example.com" {
		t.Fatalf("expected normalized email, got %q", sub.Client.Email)
	}
	if sub.Client.ContactMethod != entities.ContactMethodWhatsApp {
		t.Fatalf("unexpected contact method %q", sub.Client.ContactMethod)
	}
	if sub.Client.ContactTime != entities.ContactTimeMorning {
		t.Fatalf("unexpected contact time %q", sub.Client.ContactTime)
	}
	if sub.ProjectType != entities.ProjectTypeRedesign || sub.Timeline != entities.TimelineRush {
		t.Fatalf("unexpected type/timeline: %q/%q", sub.ProjectType, sub.Timeline)
	}
	if sub.Notes != "prefer dark theme" {
		t.Fatalf("expected trimmed notes, got %q", sub.Notes)
	}
	if len(sub.SelectedServices) != 2 {
		t.Fatalf("expected 2 selections, got %d", len(sub.SelectedServices))
	}
	if sub.SelectedServices[0].ServiceID != "svc-1" || sub.SelectedServices[0].ComplexityID != "cx-1" {
		t.Fatalf("unexpected first selection: %+v", sub.SelectedServices[0])
	}
	if len(sub.AdditionalServiceIDs) != 1 || sub.AdditionalServiceIDs[0] != "add-1" {
		t.Fatalf("unexpected additional ids: %v", sub.AdditionalServiceIDs)
	}
}

func TestProjectSubmissionRequest_ToSubmission_OptionalEnumsPassThroughEmpty(t *testing.T) {
	r := ProjectSubmissionRequest{
		ClientEmail: "ahmad@example.com",
		SelectedServices: []SelectedServiceRequest{
			{ServiceID: "svc-1", ComplexityID: "cx-1"},
		},
	}

	sub := r.ToSubmission()

	if sub.Client.ContactMethod != "" || sub.Client.ContactTime != "" {
		t.Fatalf("expected empty contact enums, got %q/%q", sub.Client.ContactMethod, sub.Client.ContactTime)
	}
	if sub.ProjectType != "" || sub.Timeline != "" {
		t.Fatalf("expected empty type/timeline, got %q/%q", sub.ProjectType, sub.Timeline)
	}
}
