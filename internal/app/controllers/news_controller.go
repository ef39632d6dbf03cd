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

// NewsController handles news feed operations
type NewsController struct {
	newsService services.NewsService
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService services.NewsService) *NewsController {
	return &NewsController{newsService: newsService}
}

// GetNews retrieves all news items
// @Summary List news
// @Description Retrieves news items newest first, optionally only featured ones
// @Tags news
// @Produce json
// @Param featured query bool false "Only featured items"
// @Success 200 {object} dto.APIResponse{data=[]models.NewsItem} "News retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news [get]
func (c *NewsController) GetNews(ctx *gin.Context) {
	var featured *bool
	if raw, ok := ctx.GetQuery("featured"); ok {
		value := raw == "true" || raw == "1"
		featured = &value
	}

	items, err := c.newsService.GetNews(ctx, featured)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: items, Timestamp: time.Now()})
}

// GetNewsItem retrieves a news item by ID
// @Summary Get news item
// @Description Retrieves a single news item by its ID
// @Tags news
// @Produce json
// @Param id path string true "News item ID"
// @Success 200 {object} dto.APIResponse{data=models.NewsItem} "News item retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "News item not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/{id} [get]
func (c *NewsController) GetNewsItem(ctx *gin.Context) {
	item, err := c.newsService.GetNewsItem(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: item, Timestamp: time.Now()})
}

// CreateNewsItem adds a news item
// @Summary Create a news item
// @Description Adds a news item; the id is assigned by the store
// @Tags news
// @Accept json
// @Produce json
// @Param request body models.NewsItem true "News item"
// @Success 201 {object} dto.APIResponse{data=models.NewsItem} "News item created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news [post]
func (c *NewsController) CreateNewsItem(ctx *gin.Context) {
	var item models.NewsItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid news data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	stored, err := c.newsService.CreateNewsItem(ctx, item)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: stored, Timestamp: time.Now()})
}

// UpdateNewsItem applies a partial update to a news item
// @Summary Update a news item
// @Description Merges the provided fields into an existing news item; unknown ids are ignored
// @Tags news
// @Accept json
// @Produce json
// @Param id path string true "News item ID"
// @Param request body models.NewsItemPatch true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "News item updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/{id} [patch]
func (c *NewsController) UpdateNewsItem(ctx *gin.Context) {
	var patch models.NewsItemPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid news data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.newsService.UpdateNewsItem(ctx, ctx.Param("id"), patch); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "News item updated"}, Timestamp: time.Now()})
}

// ReplaceNewsItem stores a news item under its own id
// @Summary Replace a news item
// @Description Replaces the news item with a matching id, inserting it when absent
// @Tags news
// @Accept json
// @Produce json
// @Param id path string true "News item ID"
// @Param request body models.NewsItem true "Full news record"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "News item replaced"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/{id} [put]
func (c *NewsController) ReplaceNewsItem(ctx *gin.Context) {
	var item models.NewsItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid news data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	item.ID = ctx.Param("id")

	if err := c.newsService.ReplaceNewsItem(ctx, item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "News item replaced"}, Timestamp: time.Now()})
}

// DeleteNewsItem removes a news item
// @Summary Delete a news item
// @Description Removes the news item with the given id; unknown ids are ignored
// @Tags news
// @Produce json
// @Param id path string true "News item ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "News item deleted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/{id} [delete]
func (c *NewsController) DeleteNewsItem(ctx *gin.Context) {
	if err := c.newsService.DeleteNewsItem(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "News item deleted"}, Timestamp: time.Now()})
}
