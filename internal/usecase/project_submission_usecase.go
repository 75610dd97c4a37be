package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"illusphere_backend/internal/domain/entities"
	"illusphere_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNoServicesSelected = errors.New("no services selected")
	ErrInvalidClientEmail = errors.New("invalid client email")
	ErrInvalidReferenceID = errors.New("invalid reference id")
	ErrProjectNotFound    = errors.New("project not found")
	ErrReferenceExhausted = errors.New("could not allocate a unique reference id")
)

// maxReferenceAttempts bounds regeneration when a freshly drawn reference id
// collides with an existing submission.
const maxReferenceAttempts = 5

// ClientProfile carries the requester fields of a submission. Optional fields
// left empty are filled with the documented defaults, but only when the email
// is seen for the first time.
type ClientProfile struct {
	FullName       string
	Email          string
	Phone          string
	CountryCode    string
	CompanyName    string
	CompanyWebsite string
	ContactMethod  entities.ContactMethod
	ContactTime    entities.ContactTime
	ReferralSource string
}

// ProjectSubmission is the full intake payload after shape validation.
type ProjectSubmission struct {
	Client               ClientProfile
	ProjectName          string
	Description          string
	ProjectType          entities.ProjectType
	Timeline             entities.TimelineType
	BudgetMin            int64
	BudgetMax            int64
	Notes                string
	SelectedServices     []ServiceSelection
	AdditionalServiceIDs []string
}

// SubmissionResult is what the HTTP layer needs to answer the client.
type SubmissionResult struct {
	Project     entities.Project
	ReferenceID string
}

// IProjectSubmissionUseCase exposes the intake operations.
//
//   - POST /v1/projects/submit            => SubmitProject()
//   - GET  /v1/projects/{reference_id}    => GetByReferenceID()
type IProjectSubmissionUseCase interface {
	SubmitProject(ctx context.Context, sub ProjectSubmission) (SubmissionResult, error)
	GetByReferenceID(ctx context.Context, referenceID string) (entities.Project, error)
}

// ProjectSubmissionUseCase composes client resolution, pricing, reference id
// generation and the atomic submission write.
//
// Client resolution is deliberately "first submission wins": when the email
// already has a Client row, the freshly supplied profile fields are ignored
// and the stored profile stays untouched. Callers expecting profile-sync
// behavior will be surprised; that is the documented intake policy.
type ProjectSubmissionUseCase struct {
	clients  interfaces.IClientRepository
	projects interfaces.IProjectRepository
	pricing  *PricingEngine
}

var _ IProjectSubmissionUseCase = (*ProjectSubmissionUseCase)(nil)

func NewProjectSubmissionUseCase(
	clients interfaces.IClientRepository,
	projects interfaces.IProjectRepository,
	pricing *PricingEngine,
) *ProjectSubmissionUseCase {
	return &ProjectSubmissionUseCase{clients: clients, projects: projects, pricing: pricing}
}

func (u *ProjectSubmissionUseCase) SubmitProject(ctx context.Context, sub ProjectSubmission) (SubmissionResult, error) {
	email := strings.TrimSpace(sub.Client.Email)
	if email == "" {
		return SubmissionResult{}, ErrInvalidClientEmail
	}
	if len(sub.SelectedServices) == 0 {
		return SubmissionResult{}, ErrNoServicesSelected
	}

	projectType := sub.ProjectType
	if projectType == "" {
		projectType = entities.ProjectTypeNew
	}
	timeline := sub.Timeline
	if timeline == "" {
		timeline = entities.TimelineStandard
	}

	client, err := u.clients.GetByEmail(ctx, email)
	if err != nil {
		return SubmissionResult{}, err
	}

	var newClient *entities.Client
	if client.ID == "" {
		c := u.buildClient(sub.Client, email)
		newClient = &c
		client = c
		log.Printf("[submission][usecase] new client for email=%s", email)
	}

	quote, err := u.pricing.Estimate(ctx, sub.SelectedServices, sub.AdditionalServiceIDs, timeline)
	if err != nil {
		return SubmissionResult{}, err
	}

	now := time.Now().UTC()
	projectID := uuid.NewString()

	serviceRows := make([]entities.ProjectService, 0, len(quote.Services))
	for _, line := range quote.Services {
		serviceRows = append(serviceRows, entities.ProjectService{
			ID:                 uuid.NewString(),
			ProjectID:          projectID,
			ServiceID:          line.ServiceID,
			ComplexityOptionID: line.ComplexityOptionID,
			SelectedMinPrice:   line.SelectedMinPrice,
			SelectedMaxPrice:   line.SelectedMaxPrice,
		})
	}
	additionalRows := make([]entities.ProjectAdditionalService, 0, len(quote.AdditionalServices))
	for _, line := range quote.AdditionalServices {
		additionalRows = append(additionalRows, entities.ProjectAdditionalService{
			ID:                  uuid.NewString(),
			ProjectID:           projectID,
			AdditionalServiceID: line.AdditionalServiceID,
			SelectedMinPrice:    line.SelectedMinPrice,
			SelectedMaxPrice:    line.SelectedMaxPrice,
		})
	}

	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		referenceID := GenerateReferenceID()

		project := entities.Project{
			ID:               projectID,
			ReferenceID:      referenceID,
			ClientID:         client.ID,
			ProjectName:      sub.ProjectName,
			Description:      sub.Description,
			ProjectType:      projectType,
			Timeline:         timeline,
			TimelineModifier: quote.TimelineModifier,
			EstimatedMin:     quote.EstimatedMin,
			EstimatedMax:     quote.EstimatedMax,
			BudgetRangeMin:   sub.BudgetMin,
			BudgetRangeMax:   sub.BudgetMax,
			AdditionalNotes:  sub.Notes,
			Status:           entities.ProjectStatusPendingReview,
			CreatedAt:        now,
		}

		rec := interfaces.SubmissionRecord{
			NewClient:          newClient,
			Project:            project,
			Services:           serviceRows,
			AdditionalServices: additionalRows,
			Activity: entities.ProjectActivity{
				ID:          uuid.NewString(),
				ProjectID:   projectID,
				Type:        entities.ActivityProjectSubmitted,
				Action:      "Project submitted by client",
				Description: fmt.Sprintf("Reference: %s", referenceID),
				CreatedAt:   now,
			},
		}

		err = u.projects.CreateSubmission(ctx, rec)
		switch {
		case err == nil:
			log.Printf("[submission][usecase] submitted reference_id=%s project_id=%s estimated_min=%d estimated_max=%d",
				referenceID, projectID, project.EstimatedMin, project.EstimatedMax)
			return SubmissionResult{Project: project, ReferenceID: referenceID}, nil

		case errors.Is(err, interfaces.ErrReferenceIDTaken):
			log.Printf("[submission][usecase] reference id collision reference_id=%s attempt=%d", referenceID, attempt)
			continue

		case errors.Is(err, interfaces.ErrClientEmailTaken):
			// A concurrent first submission won the race on this email.
			// Adopt the stored client and retry without the client put.
			log.Printf("[submission][usecase] client race on email=%s; adopting existing row", email)
			existing, getErr := u.clients.GetByEmail(ctx, email)
			if getErr != nil {
				return SubmissionResult{}, getErr
			}
			if existing.ID == "" {
				return SubmissionResult{}, err
			}
			client = existing
			newClient = nil
			continue

		default:
			return SubmissionResult{}, err
		}
	}

	return SubmissionResult{}, ErrReferenceExhausted
}

func (u *ProjectSubmissionUseCase) GetByReferenceID(ctx context.Context, referenceID string) (entities.Project, error) {
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return entities.Project{}, ErrInvalidReferenceID
	}

	p, err := u.projects.GetByReferenceID(ctx, referenceID)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectSubmissionUseCase) buildClient(profile ClientProfile, email string) entities.Client {
	countryCode := profile.CountryCode
	if countryCode == "" {
		countryCode = entities.DefaultCountryCode
	}
	contactMethod := profile.ContactMethod
	if contactMethod == "" {
		contactMethod = entities.DefaultContactMethod
	}
	contactTime := profile.ContactTime
	if contactTime == "" {
		contactTime = entities.DefaultContactTime
	}

	return entities.Client{
		ID:             uuid.NewString(),
		Email:          email,
		FullName:       profile.FullName,
		Phone:          profile.Phone,
		CountryCode:    countryCode,
		CompanyName:    profile.CompanyName,
		CompanyWebsite: profile.CompanyWebsite,
		ContactMethod:  contactMethod,
		ContactTime:    contactTime,
		ReferralSource: profile.ReferralSource,
		CreatedAt:      time.Now().UTC(),
	}
}
