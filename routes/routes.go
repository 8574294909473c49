// File: /routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"cars-api/controllers"
	"cars-api/metrics"
	"cars-api/middleware"
)

// Options configures NewEngine. Metrics and RateLimiter are optional.
type Options struct {
	CarService    controllers.CarService
	StorageDriver string
	Metrics       *metrics.Metrics
	RateLimiter   *middleware.RateLimiter
	Logger        zerolog.Logger
}

// NewEngine builds the application: recovery, logging, metrics, headers,
// rate limiting, the terminal error handler and JSON body checking, in that
// order, followed by the routes.
func NewEngine(opts Options) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.RequestLogger(opts.Logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
	}
	r.Use(middleware.SecurityHeaders())
	if opts.RateLimiter != nil {
		r.Use(middleware.RateLimit(opts.RateLimiter))
	}
	r.Use(middleware.ErrorHandler(opts.Logger))
	r.Use(middleware.JSONBody())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
			"storage": opts.StorageDriver,
		})
	})
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	SetupRoutes(r, controllers.NewCarController(opts.CarService, opts.Logger))
	return r
}

func SetupRoutes(r *gin.Engine, carController *controllers.CarController) {
	// API version 1
	v1 := r.Group("/api/v1")

	cars := v1.Group("/cars")
	{
		cars.GET("", carController.GetCars)
		cars.GET("/:id", carController.GetCar)
		cars.POST("", carController.CreateCar)
		cars.PUT("/:id", carController.UpdateCar)
		cars.DELETE("/:id", carController.DeleteCar)
	}
}
