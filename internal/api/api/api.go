package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/wb-go/wbf/ginext"

	"techfest/cmd/middleware"
	"techfest/internal/service"
)

type Routers struct {
	Service        service.Service
	AllowedOrigins []string
}

func NewRouters(r *Routers) *ginext.Engine {
	app := ginext.New("release")

	app.Use(middleware.LoggingMiddleware())
	app.Use(middleware.BodyLimit(middleware.MaxBodyBytes))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     r.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	registerGroup := app.Group("/api/register")
	registerGroup.POST("", r.Service.Register)
	registerGroup.GET("/all/:eventName", r.Service.ListByEvent)

	culturalGroup := app.Group("/api/cultural")
	culturalGroup.GET("/all", r.Service.CulturalAll)
	culturalGroup.GET("/:eventName", r.Service.CulturalByEvent)
	culturalGroup.POST("/register", r.Service.CulturalRegister)

	hackathonGroup := app.Group("/api/hackathon")
	hackathonGroup.GET("/all", r.Service.HackathonTeams)
	hackathonGroup.PUT("/score", r.Service.UpdateHackathonScore)

	app.GET("/", func(c *ginext.Context) {
		c.String(http.StatusOK, "Hello World!")
	})

	return app
}
