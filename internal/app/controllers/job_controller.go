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

// JobController handles job posting operations
type JobController struct {
	jobService services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService) *JobController {
	return &JobController{jobService: jobService}
}

// GetJobs retrieves all job postings
// @Summary List jobs
// @Description Retrieves every job posting
// @Tags jobs
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Job} "Jobs retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs [get]
func (c *JobController) GetJobs(ctx *gin.Context) {
	jobs, err := c.jobService.GetJobs(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: jobs, Timestamp: time.Now()})
}

// GetJob retrieves a job posting by ID
// @Summary Get job details
// @Description Retrieves a single job posting by its ID
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} dto.APIResponse{data=models.Job} "Job retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	job, err := c.jobService.GetJob(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: job, Timestamp: time.Now()})
}

// CreateJob adds a job posting
// @Summary Create a job posting
// @Description Adds a job posting; the id is assigned by the store
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body models.Job true "Job information"
// @Success 201 {object} dto.APIResponse{data=models.Job} "Job created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	var job models.Job
	if err := ctx.ShouldBindJSON(&job); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	stored, err := c.jobService.CreateJob(ctx, job)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: stored, Timestamp: time.Now()})
}

// UpdateJob applies a partial update to a job posting
// @Summary Update a job posting
// @Description Merges the provided fields into an existing job posting; unknown ids are ignored
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body models.JobPatch true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Job updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [patch]
func (c *JobController) UpdateJob(ctx *gin.Context) {
	var patch models.JobPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.jobService.UpdateJob(ctx, ctx.Param("id"), patch); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Job updated"}, Timestamp: time.Now()})
}

// ReplaceJob stores a job posting under its own id
// @Summary Replace a job posting
// @Description Replaces the job posting with a matching id, inserting it when absent
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body models.Job true "Full job record"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Job replaced"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [put]
func (c *JobController) ReplaceJob(ctx *gin.Context) {
	var job models.Job
	if err := ctx.ShouldBindJSON(&job); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	job.ID = ctx.Param("id")

	if err := c.jobService.ReplaceJob(ctx, job); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Job replaced"}, Timestamp: time.Now()})
}

// DeleteJob removes a job posting
// @Summary Delete a job posting
// @Description Removes the job posting with the given id; unknown ids are ignored
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Job deleted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
	if err := c.jobService.DeleteJob(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Job deleted"}, Timestamp: time.Now()})
}
