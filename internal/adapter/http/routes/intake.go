package routes

import (
	"illusphere_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects           = "/projects"
	PathServices           = "/services"
	PathAdditionalServices = "/additional-services"
)

func addIntakeRoutes(
	rg *gin.RouterGroup,
	projectHandler *handlers.ProjectHandler,
	catalogHandler *handlers.CatalogHandler,
	submissionLimiter gin.HandlerFunc,
) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("/submit", submissionLimiter, projectHandler.SubmitProject)
		projects.GET("/:reference_id", projectHandler.GetProjectByReference)
	}

	rg.GET(PathServices, catalogHandler.ListServices)
	rg.GET(PathAdditionalServices, catalogHandler.ListAdditionalServices)
}
