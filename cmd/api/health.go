package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse is the liveness check body
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// handlePing godoc
// @Summary Liveness check
// @Description Confirms the advisory API is up. No weather, maps or reasoning provider is contacted.
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}
