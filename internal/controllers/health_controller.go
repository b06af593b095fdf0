package controllers

import (
	"context"
	"net/http"

	"github.com/elbarryamine/atikia-plugin-server/internal/app"
	"github.com/elbarryamine/atikia-plugin-server/internal/dtos"
	"github.com/elbarryamine/atikia-plugin-server/internal/utils"
)

// HealthController checks DB connectivity.
type HealthController struct {
	app *app.App
}

func NewHealthController(app *app.App) *HealthController {
	return &HealthController{app}
}

// HealthCheckHandler => GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.app.DB.Ping(context.Background()); err != nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "Database unreachable", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}
