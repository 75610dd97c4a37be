package entities

import "time"

// ProjectType tells whether the request is for something new or a rework.

type ProjectType string

const (
	ProjectTypeNew         ProjectType = "NEW"
	ProjectTypeRedesign    ProjectType = "REDESIGN"
	ProjectTypeMaintenance ProjectType = "MAINTENANCE"
)

// TimelineType is the requested delivery urgency. It drives the pricing
// modifier applied to both estimate bounds.

type TimelineType string

const (
	TimelineRush       TimelineType = "RUSH"
	TimelineStandard   TimelineType = "STANDARD"
	TimelineFlexible   TimelineType = "FLEXIBLE"
	TimelineNoDeadline TimelineType = "NO_DEADLINE"
)

// ProjectStatus is the review lifecycle. The intake workflow only ever
// writes PendingReview; later transitions belong to the admin side.

type ProjectStatus string

const (
	ProjectStatusPendingReview ProjectStatus = "PENDING_REVIEW"
	ProjectStatusInReview      ProjectStatus = "IN_REVIEW"
	ProjectStatusApproved      ProjectStatus = "APPROVED"
	ProjectStatusRejected      ProjectStatus = "REJECTED"
)

// Project is one intake submission: the computed estimate plus the client's
// own declared budget range. Created exactly once and never mutated here.
//
// Storage model (DynamoDB):
//   - PK: reference_id
//
// We purposely use the reference id as PK: the conditional put doubles as the
// uniqueness check for the generated reference, and status lookups by clients
// arrive keyed on it anyway. The uuid ID attribute links junction rows.

type Project struct {
	ID               string        `json:"id"`
	ReferenceID      string        `json:"reference_id"`
	ClientID         string        `json:"client_id"`
	ProjectName      string        `json:"project_name"`
	Description      string        `json:"description"`
	ProjectType      ProjectType   `json:"project_type"`
	Timeline         TimelineType  `json:"timeline"`
	TimelineModifier float64       `json:"timeline_modifier"`
	EstimatedMin     int64         `json:"estimated_min"`
	EstimatedMax     int64         `json:"estimated_max"`
	BudgetRangeMin   int64         `json:"budget_range_min"`
	BudgetRangeMax   int64         `json:"budget_range_max"`
	AdditionalNotes  string        `json:"additional_notes,omitempty"`
	Status           ProjectStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
}

// ProjectService is the junction row for one selected {service, complexity}
// pair. Selected prices are a snapshot taken at submission time and stay
// fixed when the catalog is repriced later.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI project_id-index (PK: project_id)

type ProjectService struct {
	ID                 string `json:"id"`
	ProjectID          string `json:"project_id"`
	ServiceID          string `json:"service_id"`
	ComplexityOptionID string `json:"complexity_option_id"`
	SelectedMinPrice   int64  `json:"selected_min_price"`
	SelectedMaxPrice   int64  `json:"selected_max_price"`
}

// ProjectAdditionalService is the snapshot junction row for one selected
// add-on.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI project_id-index (PK: project_id)

type ProjectAdditionalService struct {
	ID                  string `json:"id"`
	ProjectID           string `json:"project_id"`
	AdditionalServiceID string `json:"additional_service_id"`
	SelectedMinPrice    int64  `json:"selected_min_price"`
	SelectedMaxPrice    int64  `json:"selected_max_price"`
}

// ActivityType tags audit-trail entries.

type ActivityType string

const (
	ActivityProjectSubmitted ActivityType = "PROJECT_SUBMITTED"
)

// ProjectActivity is an append-only audit entry. Write-once per event.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI project_id-index (PK: project_id)

type ProjectActivity struct {
	ID          string       `json:"id"`
	ProjectID   string       `json:"project_id"`
	Type        ActivityType `json:"type"`
	Action      string       `json:"action"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
}
