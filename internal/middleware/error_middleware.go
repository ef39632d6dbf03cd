package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/campuslink/campuslink/internal/app/models/dto"
	"github.com/campuslink/campuslink/internal/pkg/apperrors"
	"github.com/campuslink/campuslink/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the standard response envelope.
// Every controller funnels its failures through here so status codes and
// error codes stay consistent across the API.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := ""
	if errors.As(err, &custom) {
		message = custom.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrHostelNotFound):
		notFound(c, "Hostel not found")
	case errors.Is(err, apperrors.ErrNewsItemNotFound):
		notFound(c, "News item not found")
	case errors.Is(err, apperrors.ErrEventNotFound):
		notFound(c, "Event not found")
	case errors.Is(err, apperrors.ErrJobNotFound):
		notFound(c, "Job not found")
	case errors.Is(err, apperrors.ErrRoommateProfileNotFound):
		notFound(c, "Roommate profile not found")
	case errors.Is(err, apperrors.ErrNomineeNotFound):
		notFound(c, "Nominee not found")
	case errors.Is(err, apperrors.ErrUniversityNotFound):
		notFound(c, "University not found")
	case errors.Is(err, apperrors.ErrServiceNotFound):
		notFound(c, "Service not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		notFound(c, "Resource not found")
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, orDefault(message, err.Error())),
		})
	case errors.Is(err, apperrors.ErrFileMissing):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeFileMissing, "No file provided"),
		})
	case errors.Is(err, apperrors.ErrFileNotImage):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeFileNotImage, "File is not an image"),
		})
	case errors.Is(err, apperrors.ErrFileTooLarge):
		c.JSON(413, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeFileTooLarge, orDefault(message, "File exceeds the upload size limit")),
		})
	case errors.Is(err, apperrors.ErrFileTypeUnsupported):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeFileUnsupported, "File type is not supported"),
		})
	case errors.Is(err, apperrors.ErrInvalidStoragePath):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Storage path does not match the requested category"),
		})
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, orDefault(message, "Bad request")),
		})
	case errors.Is(err, apperrors.ErrUploadFailed), errors.Is(err, apperrors.ErrPublicURLUnavailable):
		logger.Error().Err(err).Msg("Upload backend failure")
		c.JSON(502, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Upload backend failed"),
		})
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		logger.Error().Err(err).Msg("Persistence backend unavailable")
		c.JSON(503, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Storage backend unavailable"),
		})
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}

func notFound(c *gin.Context, message string) {
	c.JSON(404, dto.APIResponse{
		Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message),
	})
}

func orDefault(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
