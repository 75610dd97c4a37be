package request

import (
	"strings"

	"illusphere_backend/internal/domain/entities"
	"illusphere_backend/internal/usecase"
)

type SelectedServiceRequest struct {
	ServiceID    string `json:"serviceId" binding:"required,uuid4"`
	ComplexityID string `json:"complexityId" binding:"required,uuid4"`
}

type AdditionalServiceRequest struct {
	ID string `json:"id" binding:"required,uuid4"`
}

// ProjectSubmissionRequest is the intake form payload. Shape and range
// checks live in the binding tags; referential checks (do the catalog ids
// exist) belong to the pricing engine, which re-validates them against the
// store regardless of what the form claimed.
type ProjectSubmissionRequest struct {
	ClientName     string `json:"clientName" binding:"required,min=2,max=100"`
	ClientEmail    string `json:"clientEmail" binding:"required,email"`
	ClientPhone    string `json:"clientPhone" binding:"required,e164"`
	CountryCode    string `json:"countryCode"`
	CompanyName    string `json:"companyName"`
	CompanyWebsite string `json:"companyWebsite" binding:"omitempty,url"`
	ContactMethod  string `json:"contactMethod" binding:"omitempty,oneof=EMAIL PHONE WHATSAPP"`
	ContactTime    string `json:"contactTime" binding:"omitempty,oneof=MORNING AFTERNOON EVENING FLEXIBLE"`
	ReferralSource string `json:"referralSource"`

	ProjectName string `json:"projectName" binding:"required,min=5"`
	Description string `json:"description" binding:"required,min=20"`
	ProjectType string `json:"projectType" binding:"omitempty,oneof=NEW REDESIGN MAINTENANCE"`
	Timeline    string `json:"timeline" binding:"omitempty,oneof=RUSH STANDARD FLEXIBLE NO_DEADLINE"`
	BudgetMin   int64  `json:"budgetMin" binding:"min=0"`
	BudgetMax   int64  `json:"budgetMax" binding:"gtefield=BudgetMin"`
	Notes       string `json:"notes"`

	SelectedServices   []SelectedServiceRequest   `json:"selectedServices" binding:"required,min=1,dive"`
	AdditionalServices []AdditionalServiceRequest `json:"additionalServices" binding:"omitempty,dive"`
}

// ResolveEmail normalizes the deduplication key before it reaches the core.
func (r ProjectSubmissionRequest) ResolveEmail() string {
	return strings.ToLower(strings.TrimSpace(r.ClientEmail))
}

// ToSubmission translates the payload into the domain command. Optional enum
// fields pass through empty; the use case applies the documented defaults.
func (r ProjectSubmissionRequest) ToSubmission() usecase.ProjectSubmission {
	selections := make([]usecase.ServiceSelection, 0, len(r.SelectedServices))
	for _, s := range r.SelectedServices {
		selections = append(selections, usecase.ServiceSelection{
			ServiceID:    s.ServiceID,
			ComplexityID: s.ComplexityID,
		})
	}

	additionalIDs := make([]string, 0, len(r.AdditionalServices))
	for _, a := range r.AdditionalServices {
		additionalIDs = append(additionalIDs, a.ID)
	}

	return usecase.ProjectSubmission{
		Client: usecase.ClientProfile{
			FullName:       strings.TrimSpace(r.ClientName),
			Email:          r.ResolveEmail(),
			Phone:          strings.TrimSpace(r.ClientPhone),
			CountryCode:    strings.TrimSpace(r.CountryCode),
			CompanyName:    strings.TrimSpace(r.CompanyName),
			CompanyWebsite: strings.TrimSpace(r.CompanyWebsite),
			ContactMethod:  entities.ContactMethod(r.ContactMethod),
			ContactTime:    entities.ContactTime(r.ContactTime),
			ReferralSource: strings.TrimSpace(r.ReferralSource),
		},
		ProjectName:          strings.TrimSpace(r.ProjectName),
		Description:          strings.TrimSpace(r.Description),
		ProjectType:          entities.ProjectType(r.ProjectType),
		Timeline:             entities.TimelineType(r.Timeline),
		BudgetMin:            r.BudgetMin,
		BudgetMax:            r.BudgetMax,
		Notes:                strings.TrimSpace(r.Notes),
		SelectedServices:     selections,
		AdditionalServiceIDs: additionalIDs,
	}
}
