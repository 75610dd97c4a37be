package interfaces

import (
	"context"
	"errors"

	"illusphere_backend/internal/domain/entities"
)

// Conflict signals from the transactional submission write. The orchestrator
// reacts to each differently: a taken reference id means regenerate and retry,
// a taken email means another submission created the client first, so refetch
// it and retry without the client put.
var (
	ErrReferenceIDTaken = errors.New("reference id already taken")
	ErrClientEmailTaken = errors.New("client email already taken")
)

// SubmissionRecord is everything one submission persists atomically: the
// project row, its snapshot junction rows, the audit entry, and, on a first
// submission from this email, the new client row.
type SubmissionRecord struct {
	// NewClient is non-nil only when no client existed for the email at
	// resolve time. It is written with an attribute_not_exists condition so
	// a concurrent first submission surfaces as ErrClientEmailTaken instead
	// of a duplicate row.
	NewClient *entities.Client

	Project            entities.Project
	Services           []entities.ProjectService
	AdditionalServices []entities.ProjectAdditionalService
	Activity           entities.ProjectActivity
}

// IProjectRepository abstracts DynamoDB persistence for Project and its
// dependent rows.
//
// CreateSubmission must be all-or-nothing: either every row in the record is
// visible afterwards or none is, including the optional client row.

type IProjectRepository interface {
	CreateSubmission(ctx context.Context, rec SubmissionRecord) error
	GetByReferenceID(ctx context.Context, referenceID string) (entities.Project, error)
}
