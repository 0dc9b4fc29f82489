package routes

import (
	"github.com/acceslab/acceslab-go/internal/api/handlers"
	"github.com/acceslab/acceslab-go/internal/api/middleware"
	"github.com/acceslab/acceslab-go/internal/application"
	"github.com/acceslab/acceslab-go/internal/db"
	"github.com/acceslab/acceslab-go/internal/domain/catalog"
	"github.com/acceslab/acceslab-go/internal/repository"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	repos := repository.NewRepositories(db.DB)
	services := application.New(repos)
	h := handlers.New(services, r)
	authMiddleware := middleware.NewAuth(repos)

	r.POST("/login", h.User.Login)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.POST("/register", authMiddleware.Admin(), h.User.Register)

		auth.GET("/auth/me", h.User.Me)
		auth.PATCH("/auth/me", h.User.UpdateMe)
		auth.PUT("/auth/password", h.User.ChangePassword)

		users := auth.Group("/users")
		{
			users.GET("", authMiddleware.Admin(), h.User.List)
			users.GET("/:id", authMiddleware.SelfOrAdmin(), h.User.Get)
			users.PUT("/:id", authMiddleware.SelfOrAdmin(), h.User.Update)
			users.PUT("/:id/roles", authMiddleware.Admin(), h.User.ReplaceRoles)
			users.DELETE("/:id", authMiddleware.Admin(), h.User.Delete)
		}

		userPrograms := auth.Group("/user-programs", authMiddleware.Admin())
		{
			userPrograms.GET("", h.User.ListUserPrograms)
			userPrograms.POST("", h.User.AddUserProgram)
			userPrograms.DELETE("", h.User.RemoveUserProgram)
		}

		cat := auth.Group("/catalog", authMiddleware.Admin())
		{
			// one reference-table CRUD block per kind, kind fixed here
			kindRoutes := map[string]string{
				"roles":                catalog.KindRole,
				"identification-types": catalog.KindIdentificationType,
				"requester-types":      catalog.KindRequesterType,
				"faculties":            catalog.KindFaculty,
				"categories":           catalog.KindCategory,
				"service-types":        catalog.KindServiceType,
				"service-frequencies":  catalog.KindServiceFrequency,
				"statuses":             catalog.KindStatus,
			}
			for path, kind := range kindRoutes {
				grp := cat.Group("/" + path)
				grp.GET("", h.Catalog.ListKind(kind))
				grp.GET("/:id", h.Catalog.GetKind(kind))
				grp.POST("", h.Catalog.CreateKind(kind))
				grp.PUT("/:id", h.Catalog.UpdateKind(kind))
				grp.DELETE("/:id", h.Catalog.DeleteKind(kind))
			}

			programs := cat.Group("/programs")
			{
				programs.GET("", h.Catalog.ListPrograms)
				programs.GET("/:id", h.Catalog.GetProgram)
				programs.POST("", h.Catalog.CreateProgram)
				programs.PUT("/:id", h.Catalog.UpdateProgram)
				programs.DELETE("/:id", h.Catalog.DeleteProgram)
			}

			labs := cat.Group("/laboratories")
			{
				labs.GET("", h.Catalog.ListLaboratories)
				labs.GET("/:id", h.Catalog.GetLaboratory)
				labs.POST("", h.Catalog.CreateLaboratory)
				labs.PUT("/:id", h.Catalog.UpdateLaboratory)
				labs.DELETE("/:id", h.Catalog.DeleteLaboratory)
			}

			schedules := cat.Group("/schedules")
			{
				schedules.GET("", h.Catalog.ListSchedules)
				schedules.GET("/:id", h.Catalog.GetSchedule)
				schedules.POST("", h.Catalog.CreateSchedule)
				schedules.PUT("/:id", h.Catalog.UpdateSchedule)
				schedules.DELETE("/:id", h.Catalog.DeleteSchedule)
			}

			objects := cat.Group("/objects")
			{
				objects.GET("", h.Catalog.ListObjects)
				objects.GET("/:id", h.Catalog.GetObject)
				objects.POST("", h.Catalog.CreateObject)
				objects.PUT("/:id", h.Catalog.UpdateObject)
				objects.POST("/:id/image", h.Catalog.UploadObjectImage)
				objects.DELETE("/:id", h.Catalog.DeleteObject)
			}

			deliveries := cat.Group("/deliveries")
			{
				deliveries.GET("", h.Catalog.ListDeliveries)
				deliveries.POST("", h.Catalog.CreateDelivery)
				deliveries.DELETE("/:id", h.Catalog.DeleteDelivery)
			}

			returns := cat.Group("/returns")
			{
				returns.GET("", h.Catalog.ListReturns)
				returns.POST("", h.Catalog.CreateReturn)
				returns.DELETE("/:id", h.Catalog.DeleteReturn)
			}
		}

		requests := auth.Group("/requests")
		{
			requests.POST("", h.Request.Submit)
			requests.GET("", h.Request.List)
			requests.GET("/:id", h.Request.Get)
			requests.PATCH("/:id", authMiddleware.Admin(), h.Request.Update)
			requests.PATCH("/:id/status", authMiddleware.Admin(), h.Request.UpdateStatus)
			requests.DELETE("/:id", h.Request.Delete)
		}

		participants := auth.Group("/participants")
		{
			participants.GET("", h.Request.ListParticipants)
			participants.POST("", authMiddleware.Admin(), h.Request.AddParticipant)
			participants.DELETE("/:id", authMiddleware.Admin(), h.Request.RemoveParticipant)
		}

		reports := auth.Group("/reports", authMiddleware.Admin())
		{
			reports.GET("/kpis", h.Report.KPIs)
			reports.GET("/monthly-activity", h.Report.MonthlyActivity)
			reports.GET("/program-distribution", h.Report.ProgramDistribution)
			reports.GET("/top-objects", h.Report.TopObjects)
			reports.GET("/history", h.Report.History)
			reports.GET("/delivery-summary", h.Report.DeliverySummary)
			reports.POST("/export", h.Report.Export)
		}

		auth.GET("/audit/logs", authMiddleware.Admin(), h.Audit.List)
	}
}
