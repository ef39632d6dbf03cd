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

// EventController handles event listing operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// GetEvents retrieves all events
// @Summary List events
// @Description Retrieves every event listing
// @Tags events
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Event} "Events retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events [get]
func (c *EventController) GetEvents(ctx *gin.Context) {
	events, err := c.eventService.GetEvents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: events, Timestamp: time.Now()})
}

// GetEvent retrieves an event by ID
// @Summary Get event details
// @Description Retrieves a single event by its ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse{data=models.Event} "Event retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	event, err := c.eventService.GetEvent(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: event, Timestamp: time.Now()})
}

// CreateEvent adds an event
// @Summary Create an event
// @Description Adds an event listing; the id is assigned by the store
// @Tags events
// @Accept json
// @Produce json
// @Param request body models.Event true "Event information"
// @Success 201 {object} dto.APIResponse{data=models.Event} "Event created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var event models.Event
	if err := ctx.ShouldBindJSON(&event); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	stored, err := c.eventService.CreateEvent(ctx, event)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: stored, Timestamp: time.Now()})
}

// UpdateEvent applies a partial update to an event
// @Summary Update an event
// @Description Merges the provided fields into an existing event; unknown ids are ignored
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body models.EventPatch true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Event updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id} [patch]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	var patch models.EventPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.eventService.UpdateEvent(ctx, ctx.Param("id"), patch); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Event updated"}, Timestamp: time.Now()})
}

// ReplaceEvent stores an event under its own id
// @Summary Replace an event
// @Description Replaces the event with a matching id, inserting it when absent
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body models.Event true "Full event record"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Event replaced"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id} [put]
func (c *EventController) ReplaceEvent(ctx *gin.Context) {
	var event models.Event
	if err := ctx.ShouldBindJSON(&event); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	event.ID = ctx.Param("id")

	if err := c.eventService.ReplaceEvent(ctx, event); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Event replaced"}, Timestamp: time.Now()})
}

// DeleteEvent removes an event
// @Summary Delete an event
// @Description Removes the event with the given id; unknown ids are ignored
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Event deleted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	if err := c.eventService.DeleteEvent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Event deleted"}, Timestamp: time.Now()})
}
