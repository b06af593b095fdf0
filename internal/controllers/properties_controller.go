package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/elbarryamine/atikia-plugin-server/internal/dtos"
	"github.com/elbarryamine/atikia-plugin-server/internal/middleware"
	"github.com/elbarryamine/atikia-plugin-server/internal/services"
	"github.com/elbarryamine/atikia-plugin-server/internal/utils"
)

type PropertiesController struct {
	ingestService *services.PropertyIngestService
}

func NewPropertiesController(ingestService *services.PropertyIngestService) *PropertiesController {
	return &PropertiesController{ingestService: ingestService}
}

// ----------------------------------------------------------------
// POST /properties/bulk
// ----------------------------------------------------------------
func (c *PropertiesController) BulkCreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, err := callerID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	var req dtos.BulkCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid JSON payload", err)
		return
	}

	items, ok := decodeSubmissionItems(req.Properties)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "properties must be an array")
		return
	}

	result := c.ingestService.IngestBulk(ctx, ownerID, items)
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// decodeSubmissionItems accepts only a JSON array under `properties`.
// `null`, objects, and scalars are all rejected. Elements stay raw so
// the orchestrator can fail one undecodable item without losing the
// rest of the batch.
func decodeSubmissionItems(raw json.RawMessage) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, false
	}
	return items, true
}

// callerID reads the authenticated user set by the API-key middleware.
func callerID(r *http.Request) (uuid.UUID, error) {
	ctxUserID := r.Context().Value(middleware.ContextKeyUserID)
	if ctxUserID == nil {
		return uuid.Nil, &utils.AppError{StatusCode: http.StatusUnauthorized, Message: "No userID in context"}
	}
	userID, err := uuid.Parse(ctxUserID.(string))
	if err != nil {
		return uuid.Nil, &utils.AppError{StatusCode: http.StatusUnauthorized, Message: "Invalid userID in context", Err: err}
	}
	return userID, nil
}
