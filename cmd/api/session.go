package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"outing-advisor/internal/session"
)

const sessionHeader = "X-Session-ID"

// SessionLoginRequest carries the reasoning-service credentials for one
// caller session
type SessionLoginRequest struct {
	APIKey string `json:"apiKey" binding:"required"`
}

// SessionResponse reports a session's ID and state
type SessionResponse struct {
	SessionID string `json:"sessionId"`
	State     string `json:"state"`
}

// ErrorResponse is the generic error body
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleSessionLogin godoc
// @Summary Log in a session
// @Description Validates reasoning-service credentials and binds them to a session. Reuses the session named by X-Session-ID, otherwise creates a new one.
// @Tags session
// @Accept json
// @Produce json
// @Param request body SessionLoginRequest true "Credentials"
// @Param X-Session-ID header string false "Existing session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /session/login [post]
func (app *App) handleSessionLogin(c *gin.Context) {
	var req SessionLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	id := c.GetHeader(sessionHeader)
	var sess *session.Session
	if id != "" {
		if existing, ok := app.sessions.Get(id); ok {
			sess = existing
		}
	}
	if sess == nil {
		id, sess = app.sessions.Create()
	}

	if err := sess.Login(session.Credentials{APIKey: req.APIKey}); err != nil {
		app.logger.Warn("session login rejected", "session", id, "error", err)
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{SessionID: id, State: string(sess.State())})
}

// handleSessionLogout godoc
// @Summary Log out a session
// @Description Clears the session's credentials
// @Tags session
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} ErrorResponse
// @Router /session/logout [post]
func (app *App) handleSessionLogout(c *gin.Context) {
	id := c.GetHeader(sessionHeader)
	sess, ok := app.sessions.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown session"})
		return
	}

	sess.Logout()
	c.JSON(http.StatusOK, SessionResponse{SessionID: id, State: string(sess.State())})
}

// handleSessionState godoc
// @Summary Query session state
// @Description Pure state query; unknown sessions report anonymous
// @Tags session
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} SessionResponse
// @Router /session [get]
func (app *App) handleSessionState(c *gin.Context) {
	id := c.GetHeader(sessionHeader)
	if sess, ok := app.sessions.Get(id); ok {
		c.JSON(http.StatusOK, SessionResponse{SessionID: id, State: string(sess.State())})
		return
	}
	c.JSON(http.StatusOK, SessionResponse{State: string(session.StateAnonymous)})
}
