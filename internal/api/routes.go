package api

import (
	"alcyxob/exercise-tracker/internal/service"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Static front-end locations, relative to the working directory.
const (
	StaticDir = "./public"
	IndexPage = "./views/index.html"
)

func SetupRoutes(
	router *gin.Engine,
	gatherer prometheus.Gatherer,
	userService service.UserService,
	adminService service.AdminService,
) {
	userHandler := NewUserHandler(userService)
	exerciseHandler := NewExerciseHandler(userService)
	adminHandler := NewAdminHandler(adminService)

	router.Use(RequestIDMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(cors.Default()) // Any origin

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	router.Static("/public", StaticDir)
	router.GET("/", func(c *gin.Context) {
		c.File(IndexPage)
	})

	usersGroup := router.Group("/api/users")
	{
		usersGroup.GET("", userHandler.ListUsers)
		usersGroup.POST("", userHandler.CreateUser)

		usersGroup.POST("/:_id/exercises", exerciseHandler.AddExercise)
		usersGroup.GET("/:_id/logs", exerciseHandler.GetLogs)

		// Bulk delete, gated by the delete code only.
		usersGroup.GET("/clearTheDecks/:deleteCode", adminHandler.ClearTheDecks)
	}
}
