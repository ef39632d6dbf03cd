package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuslink/campuslink/internal/app/models/dto"
	"github.com/campuslink/campuslink/internal/middleware"
	"github.com/campuslink/campuslink/internal/pkg/imageutil"
	"github.com/campuslink/campuslink/internal/pkg/objectstore"
)

// UploadController handles direct image upload and deletion
type UploadController struct {
	uploads *objectstore.Service
}

// NewUploadController creates a new UploadController
func NewUploadController(uploads *objectstore.Service) *UploadController {
	return &UploadController{uploads: uploads}
}

// UploadImage stores a single image
// @Summary Upload an image
// @Description Validates, compresses and stores one image under the given category
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param category path string true "Upload category (hostels, events, news, ...)"
// @Param folder formData string false "Optional sub-folder inside the category"
// @Param file formData file true "Image file"
// @Success 201 {object} dto.APIResponse{data=dto.UploadResponse} "Image uploaded"
// @Failure 400 {object} dto.ErrorResponse "Invalid file"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Failure 502 {object} dto.ErrorResponse "Upload backend failed"
// @Router /uploads/{category} [post]
func (c *UploadController) UploadImage(ctx *gin.Context) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		fh = nil
	}

	url, err := c.uploads.UploadImage(ctx, fh, ctx.Param("category"), ctx.PostForm("folder"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.UploadResponse{URL: url}
	if fh != nil {
		resp.Size = fh.Size
		resp.SizeLabel = imageutil.FileSizeString(fh.Size)
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: resp, Timestamp: time.Now()})
}

// UploadImages stores several images in one request
// @Summary Upload multiple images
// @Description Uploads every file concurrently; one failure fails the whole request
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param category path string true "Upload category"
// @Param folder formData string false "Optional sub-folder inside the category"
// @Param files formData file true "Image files"
// @Success 201 {object} dto.APIResponse{data=[]string} "Images uploaded"
// @Failure 400 {object} dto.ErrorResponse "Invalid file in batch"
// @Failure 502 {object} dto.ErrorResponse "Upload backend failed"
// @Router /uploads/{category}/batch [post]
func (c *UploadController) UploadImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeFileMissing, "No files provided")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	urls, err := c.uploads.UploadImages(ctx, form.File["files"], ctx.Param("category"), ctx.PostForm("folder"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: urls, Timestamp: time.Now()})
}

// DeleteImage removes a stored image by its public URL
// @Summary Delete an image
// @Description Derives the object path from the public URL and removes it; the path must belong to the category
// @Tags uploads
// @Produce json
// @Param category path string true "Upload category"
// @Param url query string true "Public URL of the stored image"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Image deleted"
// @Failure 400 {object} dto.ErrorResponse "URL does not resolve to a valid object path"
// @Router /uploads/{category} [delete]
func (c *UploadController) DeleteImage(ctx *gin.Context) {
	url := ctx.Query("url")
	if url == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Missing url query parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.uploads.DeleteImage(ctx, url, ctx.Param("category")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Image deleted"}, Timestamp: time.Now()})
}
