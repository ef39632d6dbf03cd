package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuslink/campuslink/internal/app/models/dto"
	"github.com/campuslink/campuslink/internal/app/services"
	"github.com/campuslink/campuslink/internal/middleware"
)

// CatalogController serves the static reference catalogs
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetUniversities retrieves the university list
// @Summary List universities
// @Description Retrieves the static university reference list
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.University} "Universities retrieved successfully"
// @Router /universities [get]
func (c *CatalogController) GetUniversities(ctx *gin.Context) {
	universities, err := c.catalogService.GetUniversities(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: universities, Timestamp: time.Now()})
}

// GetUniversity retrieves a university by ID
// @Summary Get university details
// @Description Retrieves a single university by its ID
// @Tags catalog
// @Produce json
// @Param id path string true "University ID"
// @Success 200 {object} dto.APIResponse{data=models.University} "University retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /universities/{id} [get]
func (c *CatalogController) GetUniversity(ctx *gin.Context) {
	university, err := c.catalogService.GetUniversity(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: university, Timestamp: time.Now()})
}

// GetServices retrieves the service directory
// @Summary List services
// @Description Retrieves the static service catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Service} "Services retrieved successfully"
// @Router /services [get]
func (c *CatalogController) GetServices(ctx *gin.Context) {
	catalog, err := c.catalogService.GetServices(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: catalog, Timestamp: time.Now()})
}

// GetProviders retrieves the providers of a service at a university
// @Summary List service providers
// @Description Retrieves providers for a university/service pair; an empty list is a valid answer
// @Tags catalog
// @Produce json
// @Param id path string true "University ID"
// @Param serviceId path string true "Service ID"
// @Success 200 {object} dto.APIResponse{data=[]models.ServiceProvider} "Providers retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "University or service not found"
// @Router /universities/{id}/services/{serviceId}/providers [get]
func (c *CatalogController) GetProviders(ctx *gin.Context) {
	providers, err := c.catalogService.GetProviders(ctx, ctx.Param("id"), ctx.Param("serviceId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: providers, Timestamp: time.Now()})
}
