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

// RoommateController handles roommate directory operations
type RoommateController struct {
	roommateService services.RoommateService
}

// NewRoommateController creates a new RoommateController
func NewRoommateController(roommateService services.RoommateService) *RoommateController {
	return &RoommateController{roommateService: roommateService}
}

// GetProfiles retrieves all roommate profiles
// @Summary List roommate profiles
// @Description Retrieves roommate-matching profiles, optionally filtered by university or seeking gender
// @Tags roommates
// @Produce json
// @Param universityId query string false "Filter by university ID"
// @Param seekingGender query string false "Filter by seeking gender"
// @Success 200 {object} dto.APIResponse{data=[]models.RoommateProfile} "Profiles retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roommates [get]
func (c *RoommateController) GetProfiles(ctx *gin.Context) {
	filter := services.RoommateFilter{
		UniversityID:  ctx.Query("universityId"),
		SeekingGender: ctx.Query("seekingGender"),
	}

	profiles, err := c.roommateService.GetProfiles(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profiles, Timestamp: time.Now()})
}

// GetProfile retrieves a roommate profile by ID
// @Summary Get roommate profile
// @Description Retrieves a single roommate profile by its ID
// @Tags roommates
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} dto.APIResponse{data=models.RoommateProfile} "Profile retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roommates/{id} [get]
func (c *RoommateController) GetProfile(ctx *gin.Context) {
	profile, err := c.roommateService.GetProfile(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile, Timestamp: time.Now()})
}

// CreateProfile adds a roommate profile
// @Summary Create a roommate profile
// @Description Adds a roommate-matching profile; the id is assigned by the store
// @Tags roommates
// @Accept json
// @Produce json
// @Param request body models.RoommateProfile true "Profile information"
// @Success 201 {object} dto.APIResponse{data=models.RoommateProfile} "Profile created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roommates [post]
func (c *RoommateController) CreateProfile(ctx *gin.Context) {
	var profile models.RoommateProfile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	stored, err := c.roommateService.CreateProfile(ctx, profile)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: stored, Timestamp: time.Now()})
}

// UpdateProfile applies a partial update to a roommate profile
// @Summary Update a roommate profile
// @Description Merges the provided fields into an existing profile; unknown ids are ignored
// @Tags roommates
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body models.RoommateProfilePatch true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roommates/{id} [patch]
func (c *RoommateController) UpdateProfile(ctx *gin.Context) {
	var patch models.RoommateProfilePatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.roommateService.UpdateProfile(ctx, ctx.Param("id"), patch); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Profile updated"}, Timestamp: time.Now()})
}

// ReplaceProfile stores a roommate profile under its own id
// @Summary Replace a roommate profile
// @Description Replaces the profile with a matching id, inserting it when absent
// @Tags roommates
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body models.RoommateProfile true "Full profile record"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Profile replaced"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roommates/{id} [put]
func (c *RoommateController) ReplaceProfile(ctx *gin.Context) {
	var profile models.RoommateProfile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	profile.ID = ctx.Param("id")

	if err := c.roommateService.ReplaceProfile(ctx, profile); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Profile replaced"}, Timestamp: time.Now()})
}

// DeleteProfile removes a roommate profile
// @Summary Delete a roommate profile
// @Description Removes the profile with the given id; unknown ids are ignored
// @Tags roommates
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Profile deleted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roommates/{id} [delete]
func (c *RoommateController) DeleteProfile(ctx *gin.Context) {
	if err := c.roommateService.DeleteProfile(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Profile deleted"}, Timestamp: time.Now()})
}
