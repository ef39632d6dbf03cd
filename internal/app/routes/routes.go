package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuslink/campuslink/internal/app/controllers"
	"github.com/campuslink/campuslink/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	hostelController *controllers.HostelController,
	newsController *controllers.NewsController,
	eventController *controllers.EventController,
	jobController *controllers.JobController,
	roommateController *controllers.RoommateController,
	spotlightController *controllers.SpotlightController,
	catalogController *controllers.CatalogController,
	uploadController *controllers.UploadController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Data:      dto.SuccessResponse{Message: "ok"},
			Timestamp: time.Now(),
		})
	})

	hostels := v1.Group("/hostels")
	{
		hostels.GET("", hostelController.GetHostels)
		hostels.GET("/:id", hostelController.GetHostel)
		hostels.POST("", hostelController.CreateHostel)
		hostels.PATCH("/:id", hostelController.UpdateHostel)
		hostels.PUT("/:id", hostelController.ReplaceHostel)
		hostels.DELETE("/:id", hostelController.DeleteHostel)
	}

	news := v1.Group("/news")
	{
		news.GET("", newsController.GetNews)
		news.GET("/:id", newsController.GetNewsItem)
		news.POST("", newsController.CreateNewsItem)
		news.PATCH("/:id", newsController.UpdateNewsItem)
		news.PUT("/:id", newsController.ReplaceNewsItem)
		news.DELETE("/:id", newsController.DeleteNewsItem)
	}

	events := v1.Group("/events")
	{
		events.GET("", eventController.GetEvents)
		events.GET("/:id", eventController.GetEvent)
		events.POST("", eventController.CreateEvent)
		events.PATCH("/:id", eventController.UpdateEvent)
		events.PUT("/:id", eventController.ReplaceEvent)
		events.DELETE("/:id", eventController.DeleteEvent)
	}

	jobs := v1.Group("/jobs")
	{
		jobs.GET("", jobController.GetJobs)
		jobs.GET("/:id", jobController.GetJob)
		jobs.POST("", jobController.CreateJob)
		jobs.PATCH("/:id", jobController.UpdateJob)
		jobs.PUT("/:id", jobController.ReplaceJob)
		jobs.DELETE("/:id", jobController.DeleteJob)
	}

	roommates := v1.Group("/roommates")
	{
		roommates.GET("", roommateController.GetProfiles)
		roommates.GET("/:id", roommateController.GetProfile)
		roommates.POST("", roommateController.CreateProfile)
		roommates.PATCH("/:id", roommateController.UpdateProfile)
		roommates.PUT("/:id", roommateController.ReplaceProfile)
		roommates.DELETE("/:id", roommateController.DeleteProfile)
	}

	spotlight := v1.Group("/spotlight")
	{
		spotlight.GET("", spotlightController.GetNominees)
		spotlight.GET("/:id", spotlightController.GetNominee)
		spotlight.POST("/nominations", spotlightController.Nominate)
		spotlight.POST("/:id/vote", spotlightController.Vote)
		spotlight.PATCH("/:id", spotlightController.UpdateNominee)
		spotlight.DELETE("/:id", spotlightController.DeleteNominee)
	}

	universities := v1.Group("/universities")
	{
		universities.GET("", catalogController.GetUniversities)
		universities.GET("/:id", catalogController.GetUniversity)
		universities.GET("/:id/services/:serviceId/providers", catalogController.GetProviders)
	}
	v1.GET("/services", catalogController.GetServices)

	uploads := v1.Group("/uploads")
	{
		uploads.POST("/:category", uploadController.UploadImage)
		uploads.POST("/:category/batch", uploadController.UploadImages)
		uploads.DELETE("/:category", uploadController.DeleteImage)
	}
}
