package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Session endpoints (reasoning-service credentials)
	app.router.POST("/session/login", app.handleSessionLogin)
	app.router.POST("/session/logout", app.handleSessionLogout)
	app.router.GET("/session", app.handleSessionState)

	// Advisory endpoint
	app.router.POST("/advisory", app.handleAdvisory)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
