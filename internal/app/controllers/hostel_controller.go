package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuslink/campuslink/internal/app/models"
	"github.com/campuslink/campuslink/internal/app/models/dto"
	"github.com/campuslink/campuslink/internal/app/services"
	"github.com/campuslink/campuslink/internal/middleware"
)

// HostelController handles hostel listing operations
type HostelController struct {
	hostelService services.HostelService
}

// NewHostelController creates a new HostelController
func NewHostelController(hostelService services.HostelService) *HostelController {
	return &HostelController{hostelService: hostelService}
}

// GetHostels retrieves all hostel listings
// @Summary List hostels
// @Description Retrieves hostel listings, optionally filtered by university or recommendation flag
// @Tags hostels
// @Produce json
// @Param universityId query string false "Filter by university ID"
// @Param recommended query bool false "Only recommended listings"
// @Success 200 {object} dto.APIResponse{data=[]models.Hostel} "Hostels retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /hostels [get]
func (c *HostelController) GetHostels(ctx *gin.Context) {
	filter := services.HostelFilter{UniversityID: ctx.Query("universityId")}
	if raw, ok := ctx.GetQuery("recommended"); ok {
		recommended := raw == "true" || raw == "1"
		filter.Recommended = &recommended
	}

	hostels, err := c.hostelService.GetHostels(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: hostels, Timestamp: time.Now()})
}

// GetHostel retrieves a hostel by ID
// @Summary Get hostel details
// @Description Retrieves a single hostel listing by its ID
// @Tags hostels
// @Produce json
// @Param id path string true "Hostel ID"
// @Success 200 {object} dto.APIResponse{data=models.Hostel} "Hostel retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Hostel not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /hostels/{id} [get]
func (c *HostelController) GetHostel(ctx *gin.Context) {
	hostel, err := c.hostelService.GetHostel(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: hostel, Timestamp: time.Now()})
}

// CreateHostel adds a new hostel listing
// @Summary Create a hostel
// @Description Adds a hostel listing; the id is assigned by the store
// @Tags hostels
// @Accept json
// @Produce json
// @Param request body models.Hostel true "Hostel information"
// @Success 201 {object} dto.APIResponse{data=models.Hostel} "Hostel created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /hostels [post]
func (c *HostelController) CreateHostel(ctx *gin.Context) {
	var hostel models.Hostel
	if err := ctx.ShouldBindJSON(&hostel); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid hostel data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	stored, err := c.hostelService.CreateHostel(ctx, hostel)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: stored, Timestamp: time.Now()})
}

// UpdateHostel applies a partial update to a hostel
// @Summary Update a hostel
// @Description Merges the provided fields into an existing hostel; unknown ids are ignored
// @Tags hostels
// @Accept json
// @Produce json
// @Param id path string true "Hostel ID"
// @Param request body models.HostelPatch true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Hostel updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /hostels/{id} [patch]
func (c *HostelController) UpdateHostel(ctx *gin.Context) {
	var patch models.HostelPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid hostel data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.hostelService.UpdateHostel(ctx, ctx.Param("id"), patch); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Hostel updated"}, Timestamp: time.Now()})
}

// ReplaceHostel stores a hostel under its own id
// @Summary Replace a hostel
// @Description Replaces the hostel with a matching id, inserting it when absent
// @Tags hostels
// @Accept json
// @Produce json
// @Param id path string true "Hostel ID"
// @Param request body models.Hostel true "Full hostel record"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Hostel replaced"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /hostels/{id} [put]
func (c *HostelController) ReplaceHostel(ctx *gin.Context) {
	var hostel models.Hostel
	if err := ctx.ShouldBindJSON(&hostel); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid hostel data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	hostel.ID = ctx.Param("id")

	if err := c.hostelService.ReplaceHostel(ctx, hostel); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Hostel replaced"}, Timestamp: time.Now()})
}

// DeleteHostel removes a hostel listing
// @Summary Delete a hostel
// @Description Removes the hostel with the given id; unknown ids are ignored
// @Tags hostels
// @Produce json
// @Param id path string true "Hostel ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Hostel deleted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /hostels/{id} [delete]
func (c *HostelController) DeleteHostel(ctx *gin.Context) {
	if err := c.hostelService.DeleteHostel(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Hostel deleted"}, Timestamp: time.Now()})
}
