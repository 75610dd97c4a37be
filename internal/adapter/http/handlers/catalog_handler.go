package handlers

import (
	"net/http"

	response "illusphere_backend/internal/adapter/http/dto/response"
	"illusphere_backend/internal/usecase"
	"illusphere_backend/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only catalog the intake form renders.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, response.FromServiceWithOptions(s))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) ListAdditionalServices(c *gin.Context) {
	additionals, err := h.usecase.ListAdditionalServices(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.AdditionalServiceResponse, 0, len(additionals))
	for _, a := range additionals {
		out = append(out, response.FromAdditionalService(a))
	}
	c.JSON(http.StatusOK, out)
}
