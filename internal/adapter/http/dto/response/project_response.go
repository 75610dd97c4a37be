package response

import (
	"time"

	"illusphere_backend/internal/domain/entities"
)

// ProjectResponse is the status view a client gets when looking up a
// submission by its reference id. Internal fields (client id, budget range,
// free-text notes) stay out of it.
type ProjectResponse struct {
	ReferenceID      string    `json:"referenceId"`
	ProjectName      string    `json:"projectName"`
	ProjectType      string    `json:"projectType"`
	Timeline         string    `json:"timeline"`
	TimelineModifier float64   `json:"timelineModifier"`
	EstimatedMin     int64     `json:"estimatedMin"`
	EstimatedMax     int64     `json:"estimatedMax"`
	Status           string    `json:"status"`
	SubmittedAt      time.Time `json:"submittedAt"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ReferenceID:      p.ReferenceID,
		ProjectName:      p.ProjectName,
		ProjectType:      string(p.ProjectType),
		Timeline:         string(p.Timeline),
		TimelineModifier: p.TimelineModifier,
		EstimatedMin:     p.EstimatedMin,
		EstimatedMax:     p.EstimatedMax,
		Status:           string(p.Status),
		SubmittedAt:      p.CreatedAt,
	}
}
