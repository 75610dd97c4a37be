package handlers

import (
	"errors"
	"net/http"

	request "illusphere_backend/internal/adapter/http/dto/request"
	response "illusphere_backend/internal/adapter/http/dto/response"
	"illusphere_backend/internal/usecase"
	"illusphere_backend/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSubmissionPayload = pkg.NewDomainErrorSimple("INVALID_SUBMISSION_INPUT", "Invalid project submission payload", http.StatusBadRequest)
)

// ProjectHandler handles HTTP requests for the project intake workflow.
type ProjectHandler struct {
	usecase usecase.IProjectSubmissionUseCase
}

func NewProjectHandler(uc usecase.IProjectSubmissionUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// SubmitProject accepts the intake form payload, runs the submission
// workflow, and answers with the reference id and computed estimate bounds.
func (h *ProjectHandler) SubmitProject(c *gin.Context) {
	var payload request.ProjectSubmissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubmissionPayload.HTTPStatus, errInvalidSubmissionPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.SubmitProject(c.Request.Context(), payload.ToSubmission())
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSubmissionResult(result))
}

// GetProjectByReference returns the status view of a submission.
func (h *ProjectHandler) GetProjectByReference(c *gin.Context) {
	project, err := h.usecase.GetByReferenceID(c.Request.Context(), c.Param("reference_id"))
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

func mapSubmissionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientEmail), errors.Is(err, usecase.ErrInvalidReferenceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoServicesSelected):
		return pkg.NewDomainErrorSimple("NO_SERVICES_SELECTED", "Select at least one service", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrComplexityOptionNotFound):
		return pkg.NewDomainError("COMPLEXITY_OPTION_NOT_FOUND", "Selected complexity option does not exist", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrAdditionalServiceNotFound):
		return pkg.NewDomainError("ADDITIONAL_SERVICE_NOT_FOUND", "Selected additional service does not exist", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReferenceExhausted):
		return pkg.NewDomainError("REFERENCE_ID_CONFLICT", "Could not allocate a submission reference, please retry", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
