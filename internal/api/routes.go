package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"healthtrack-backend-go/internal/core"
	"healthtrack-backend-go/internal/db"
	"healthtrack-backend-go/internal/middleware"
)

// Services bundles the service layer handed to the router. Built once
// in main after the storage mode is decided.
type Services struct {
	Vitals  core.VitalService
	Reports core.ReportService
	Media   core.MediaService
	Family  core.FamilyService
	Users   core.UserService
	Goals   core.GoalService
	Export  core.ExportService
}

// SetupRoutes configures all application routes. Global middleware
// (logging, recovery, CORS) is applied to the engine in main before
// this is called.
func SetupRoutes(
	router *gin.Engine,
	authMW *middleware.AuthMiddleware,
	services Services,
	mode db.Mode,
	logger *zap.Logger,
) {
	vitalHandler := NewVitalHandler(services.Vitals)
	reportHandler := NewReportHandler(services.Reports)
	mediaHandler := NewMediaHandler(services.Media)
	familyHandler := NewFamilyHandler(services.Family)
	userHandler := NewUserHandler(services.Users, services.Goals, services.Export)

	apiV1 := router.Group("/api/v1", authMW.Resolve())
	{
		users := apiV1.Group("/users")
		{
			users.POST("/initialize", userHandler.Initialize)
			users.GET("/me", userHandler.GetProfile)
			users.PUT("/me", userHandler.UpdateProfile)
		}

		vitals := apiV1.Group("/vitals")
		{
			vitals.POST("", vitalHandler.RecordVital)
			vitals.GET("", vitalHandler.ListVitals)
			vitals.GET("/latest/:type", vitalHandler.LatestVital)
			vitals.GET("/stats/:type", vitalHandler.Statistics)
			vitals.DELETE("/:id", vitalHandler.DeleteVital)
		}

		reports := apiV1.Group("/reports")
		{
			reports.POST("", reportHandler.SaveReport)
			reports.GET("", reportHandler.ListReports)
			reports.DELETE("/:id", reportHandler.DeleteReport)
		}

		documents := apiV1.Group("/documents")
		{
			documents.POST("", mediaHandler.SaveDocument)
			documents.GET("", mediaHandler.ListDocuments)
			documents.DELETE("/:id", mediaHandler.DeleteDocument)
		}

		photos := apiV1.Group("/photos")
		{
			photos.POST("", mediaHandler.SavePhoto)
			photos.GET("", mediaHandler.ListPhotos)
			photos.DELETE("/:id", mediaHandler.DeletePhoto)
		}

		family := apiV1.Group("/family")
		{
			family.GET("", familyHandler.ListMembers)
			family.POST("/invitations", familyHandler.Invite)
		}

		goals := apiV1.Group("/goals")
		{
			goals.POST("", userHandler.SaveGoal)
			goals.GET("", userHandler.ListGoals)
		}

		apiV1.POST("/uploads", reportHandler.Upload)
		apiV1.GET("/export", userHandler.ExportAllData)
		apiV1.GET("/dashboard", vitalHandler.Dashboard)
	}

	// Public health check; reports which storage mode the process
	// settled on so demo deployments are easy to spot.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "mode": string(mode)})
	})

	logger.Info("API routes configured", zap.String("mode", string(mode)))
}
