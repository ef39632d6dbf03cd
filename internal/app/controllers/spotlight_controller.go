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

// SpotlightController handles student-spotlight operations
type SpotlightController struct {
	spotlightService services.SpotlightService
}

// NewSpotlightController creates a new SpotlightController
func NewSpotlightController(spotlightService services.SpotlightService) *SpotlightController {
	return &SpotlightController{spotlightService: spotlightService}
}

// GetNominees retrieves all spotlight nominees
// @Summary List nominees
// @Description Retrieves every spotlight nominee, most voted first
// @Tags spotlight
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.SpotlightNominee} "Nominees retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /spotlight [get]
func (c *SpotlightController) GetNominees(ctx *gin.Context) {
	nominees, err := c.spotlightService.GetNominees(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: nominees, Timestamp: time.Now()})
}

// GetNominee retrieves a nominee by ID
// @Summary Get nominee details
// @Description Retrieves a single spotlight nominee by its ID
// @Tags spotlight
// @Produce json
// @Param id path string true "Nominee ID"
// @Success 200 {object} dto.APIResponse{data=models.SpotlightNominee} "Nominee retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Nominee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /spotlight/{id} [get]
func (c *SpotlightController) GetNominee(ctx *gin.Context) {
	nominee, err := c.spotlightService.GetNominee(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: nominee, Timestamp: time.Now()})
}

// Nominate submits a new nomination
// @Summary Nominate a student
// @Description Builds a nominee from the multipart nomination form. The photo is optional.
// @Tags spotlight
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Student name"
// @Param major formData string true "Study major"
// @Param about formData string false "About the student"
// @Param activities formData string false "Comma-separated activities"
// @Param universityId formData string false "University ID"
// @Param gender formData string false "Gender"
// @Param image formData file false "Nominee photo"
// @Success 201 {object} dto.APIResponse{data=models.SpotlightNominee} "Nomination submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid nomination data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /spotlight/nominations [post]
func (c *SpotlightController) Nominate(ctx *gin.Context) {
	var req dto.NominationRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid nomination data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// The photo is optional; a missing file is not an error here.
	image, err := ctx.FormFile("image")
	if err != nil {
		image = nil
	}

	nominee, err := c.spotlightService.Nominate(ctx, req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: nominee, Timestamp: time.Now()})
}

// Vote records a vote for a nominee
// @Summary Vote for a nominee
// @Description Increments the nominee's vote count and returns the new total
// @Tags spotlight
// @Produce json
// @Param id path string true "Nominee ID"
// @Success 200 {object} dto.APIResponse{data=map[string]int} "Vote recorded"
// @Failure 404 {object} dto.ErrorResponse "Nominee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /spotlight/{id}/vote [post]
func (c *SpotlightController) Vote(ctx *gin.Context) {
	votes, err := c.spotlightService.Vote(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: gin.H{"votes": votes}, Timestamp: time.Now()})
}

// UpdateNominee applies a partial update to a nominee
// @Summary Update a nominee
// @Description Merges the provided fields into an existing nominee; unknown ids are ignored
// @Tags spotlight
// @Accept json
// @Produce json
// @Param id path string true "Nominee ID"
// @Param request body models.SpotlightNomineePatch true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Nominee updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /spotlight/{id} [patch]
func (c *SpotlightController) UpdateNominee(ctx *gin.Context) {
	var patch models.SpotlightNomineePatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid nominee data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.spotlightService.UpdateNominee(ctx, ctx.Param("id"), patch); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Nominee updated"}, Timestamp: time.Now()})
}

// DeleteNominee removes a nominee
// @Summary Delete a nominee
// @Description Removes the nominee with the given id; unknown ids are ignored
// @Tags spotlight
// @Produce json
// @Param id path string true "Nominee ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Nominee deleted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /spotlight/{id} [delete]
func (c *SpotlightController) DeleteNominee(ctx *gin.Context) {
	if err := c.spotlightService.DeleteNominee(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Nominee deleted"}, Timestamp: time.Now()})
}
