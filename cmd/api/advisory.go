package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"outing-advisor/internal/advisor"
	"outing-advisor/internal/forecast"
	"outing-advisor/internal/pipeline"
	"outing-advisor/internal/providers/anthropic"
	"outing-advisor/internal/types"
)

// Engine selection values for AdvisoryRequest.Engine
const (
	engineRuleBased = "rule-based"
	engineDelegated = "delegated"
)

// AdvisoryRequest is the caller input for one advisory run
type AdvisoryRequest struct {
	OriginAddress      string `json:"originAddress" binding:"required" example:"Tokyo Station"`
	DestinationAddress string `json:"destinationAddress" binding:"required" example:"Yokohama Station"`
	Purpose            string `json:"purpose" binding:"required" example:"sightseeing"`
	AdditionalQuestion string `json:"additionalQuestion" example:"Is an umbrella worth bringing?"`
	// Engine selects the recommendation strategy: rule-based (default) or
	// delegated. Delegated requires an authenticated session.
	Engine string `json:"engine" binding:"omitempty,oneof=rule-based delegated"`
}

// handleAdvisory godoc
// @Summary Run the outing advisory pipeline
// @Description Resolves both addresses, fetches weather and traffic-aware travel data, reduces the forecast to a decision window, and produces a recommendation.
// @Tags advisory
// @Accept json
// @Produce json
// @Param request body AdvisoryRequest true "Advisory query"
// @Param X-Session-ID header string false "Authenticated session (required for the delegated engine)"
// @Success 200 {object} pipeline.Output
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /advisory [post]
func (app *App) handleAdvisory(c *gin.Context) {
	var req AdvisoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	engine, err := app.selectEngine(c, req.Engine)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return
	}

	p := pipeline.New(
		app.locationService,
		app.weatherService,
		app.travelService,
		app.timezoneService,
		engine,
		pipeline.Options{
			Mode:        pipeline.Mode(app.cfg.Pipeline.Mode),
			CallTimeout: app.cfg.CallTimeout(),
			Window: forecast.WindowOptions{
				ReferenceHour: app.cfg.Advisor.ReferenceHour,
				MaxDays:       app.cfg.Advisor.MaxDays,
				ExcludeToday:  app.cfg.Advisor.ExcludeToday,
			},
		},
		app.logger,
	)

	out, err := p.Run(c.Request.Context(), types.OutingQuery{
		OriginAddress:      req.OriginAddress,
		DestinationAddress: req.DestinationAddress,
		Purpose:            req.Purpose,
		AdditionalQuestion: req.AdditionalQuestion,
	})
	if err != nil {
		status := http.StatusInternalServerError
		var notFound *types.NotFoundError
		var routeNotFound *types.RouteNotFoundError
		var upstream *types.UpstreamError
		switch {
		case errors.As(err, &notFound), errors.As(err, &routeNotFound):
			status = http.StatusNotFound
		case errors.As(err, &upstream):
			status = http.StatusBadGateway
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// selectEngine builds the recommendation engine for this request. The
// delegated engine gets a reasoning client constructed from the session's
// credentials; clients are never shared across sessions.
func (app *App) selectEngine(c *gin.Context, name string) (advisor.Engine, error) {
	switch name {
	case engineDelegated:
		sess, ok := app.sessions.Get(c.GetHeader(sessionHeader))
		if !ok {
			return nil, errors.New("delegated engine requires a session, log in first")
		}
		creds, ok := sess.Credentials()
		if !ok {
			return nil, errors.New("session is not authenticated")
		}
		client := anthropic.NewClient(creds.APIKey, app.cfg.CallTimeout())
		return advisor.NewDelegatedEngine(client, app.cfg.Reasoning.Model, app.cfg.Reasoning.MaxTokens, app.logger), nil
	case engineRuleBased, "":
		return advisor.NewRuleBasedEngine(
			types.ConditionCode(app.cfg.Advisor.FavorableCodeMin),
			app.cfg.Advisor.FavorableKeywords,
			app.logger,
		), nil
	default:
		return nil, errors.New("unknown engine: " + name)
	}
}
