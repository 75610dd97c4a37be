package response

import (
	"illusphere_backend/internal/usecase"
)

// SubmissionMessage is the confirmation shown to the client on a successful
// intake. Review turnaround is a product promise, not a computed value.
const SubmissionMessage = "Project request submitted successfully! We will review it within 24 hours."

type ProjectSubmissionResponse struct {
	ReferenceID  string `json:"referenceId"`
	ProjectID    string `json:"projectId"`
	EstimatedMin int64  `json:"estimatedMin"`
	EstimatedMax int64  `json:"estimatedMax"`
	Message      string `json:"message"`
}

func FromSubmissionResult(res usecase.SubmissionResult) ProjectSubmissionResponse {
	return ProjectSubmissionResponse{
		ReferenceID:  res.ReferenceID,
		ProjectID:    res.Project.ID,
		EstimatedMin: res.Project.EstimatedMin,
		EstimatedMax: res.Project.EstimatedMax,
		Message:      SubmissionMessage,
	}
}
