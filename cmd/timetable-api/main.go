package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/handler"
	"github.com/noah-isme/timetable-api/internal/middleware"
	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/internal/repository"
	"github.com/noah-isme/timetable-api/internal/service"
	"github.com/noah-isme/timetable-api/pkg/config"
	"github.com/noah-isme/timetable-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/timetable-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/timetable-api/pkg/middleware/requestid"

	"github.com/go-playground/validator/v10"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := validator.New()

	teachers := repository.NewTeacherRepository()
	classrooms := repository.NewClassroomRepository()
	catalog := repository.NewCatalogRepository()
	store := repository.NewScheduleStore(cfg.Schedule.Days, cfg.Schedule.Periods)

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	teacherSvc := service.NewTeacherService(teachers, store, validate, logr)
	classroomSvc := service.NewClassroomService(classrooms, catalog, store, validate, logr)
	scheduleSvc := service.NewScheduleService(teachers, classrooms, catalog, store, metricsSvc, validate, logr)
	availabilitySvc := service.NewAvailabilityService(teachers, classrooms, catalog, store, logr)
	autoAssignSvc := service.NewAutoAssignService(teachers, classrooms, catalog, store, metricsSvc, nil, logr)
	exportSvc := service.NewExportService(teachers, classrooms, catalog, store, availabilitySvc, metricsSvc, logr)

	if err := authSvc.Register(cfg.Admin.Email, cfg.Admin.Name, cfg.Admin.Password, models.RoleAdmin); err != nil {
		log.Fatalf("failed to register admin account: %v", err)
	}

	seedCatalog(catalog)
	if cfg.Schedule.SeedDemo {
		seedDemoData(teacherSvc, classroomSvc, logr)
	}

	authHandler := handler.NewAuthHandler(authSvc)
	teacherHandler := handler.NewTeacherHandler(teacherSvc, availabilitySvc)
	classroomHandler := handler.NewClassroomHandler(classroomSvc, scheduleSvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc, availabilitySvc, autoAssignSvc, exportSvc)
	exportHandler := handler.NewExportHandler(exportSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.JWT(authSvc))
	authed.GET("/auth/me", authHandler.Me)

	admin := middleware.RequireRoles(models.RoleAdmin)
	readers := middleware.RequireRoles(models.RoleAdmin, models.RoleViewer)

	teacherRoutes := authed.Group("/teachers")
	{
		teacherRoutes.GET("", readers, teacherHandler.List)
		teacherRoutes.POST("", admin, teacherHandler.Create)
		teacherRoutes.GET("/workload", readers, teacherHandler.Workload)
		teacherRoutes.GET("/:id", readers, teacherHandler.Get)
		teacherRoutes.DELETE("/:id", admin, teacherHandler.Delete)
		teacherRoutes.GET("/:id/timetable", readers, teacherHandler.Timetable)
		teacherRoutes.GET("/:id/subjects", readers, teacherHandler.Subjects)
	}

	classroomRoutes := authed.Group("/classrooms")
	{
		classroomRoutes.GET("", readers, classroomHandler.List)
		classroomRoutes.POST("", admin, classroomHandler.Create)
		classroomRoutes.GET("/:id", readers, classroomHandler.Get)
		classroomRoutes.DELETE("/:id", admin, classroomHandler.Delete)
		classroomRoutes.GET("/:id/schedule", readers, classroomHandler.Schedule)
		classroomRoutes.GET("/:id/stats", readers, classroomHandler.Stats)
	}

	authed.GET("/catalog", readers, classroomHandler.Catalog)
	authed.GET("/catalog/:grade", readers, classroomHandler.CatalogForGrade)

	scheduleRoutes := authed.Group("/schedule")
	{
		scheduleRoutes.PUT("", admin, scheduleHandler.Update)
		scheduleRoutes.DELETE("", admin, scheduleHandler.ClearAll)
		scheduleRoutes.DELETE("/cell", admin, scheduleHandler.ClearCell)
		scheduleRoutes.POST("/auto-assign", admin, scheduleHandler.AutoAssign)
		scheduleRoutes.GET("/availability", readers, scheduleHandler.Availability)
		scheduleRoutes.GET("/conflicts", readers, scheduleHandler.Conflicts)
	}

	exportRoutes := authed.Group("/export")
	{
		exportRoutes.GET("", readers, exportHandler.Document)
		exportRoutes.GET("/teachers/:id/timetable", readers, exportHandler.TeacherTimetable)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env,
		"days", cfg.Schedule.Days, "periods", cfg.Schedule.Periods)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
