package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stroytechnika/pumpdesk/internal/catalog"
	"github.com/stroytechnika/pumpdesk/internal/resource"
)

// handleModels serves both single-record lookup (?id=) and the filtered
// listing with catalog-wide stats.
func (h *httpHandler) handleModels(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		record, err := h.catalogService.Get(c.Request.Context(), id)
		if err != nil {
			h.respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, record)
		return
	}

	predicates := resource.Predicates{
		"category": c.Query("category"),
	}
	records, stats, err := h.catalogService.List(c.Request.Context(), predicates)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondList(c, records, stats)
}

func (h *httpHandler) handleCreateModel(c *gin.Context) {
	var payload catalog.Model
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c, "invalid_request")
		return
	}

	created, err := h.catalogService.Create(c.Request.Context(), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// handleReplaceModel keeps the catalog's PUT-as-full-replacement contract:
// the body must carry the complete record, omitted fields are reset.
func (h *httpHandler) handleReplaceModel(c *gin.Context) {
	var payload catalog.Model
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c, "invalid_request")
		return
	}
	if strings.TrimSpace(payload.ID) == "" {
		respondInvalidRequest(c, "missing_id")
		return
	}

	replaced, err := h.catalogService.Replace(c.Request.Context(), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, replaced)
}

type modelPatchPayload struct {
	ID    string          `json:"id"`
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value"`
	Index *int            `json:"index"`
}

const (
	patchOpSet        = "set"
	patchOpAddItem    = "add_item"
	patchOpRemoveItem = "remove_item"
)

// handlePatchModel applies one dotted-path mutation to a stored model, the
// wire form of the admin editor's draft updates.
func (h *httpHandler) handlePatchModel(c *gin.Context) {
	var payload modelPatchPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c, "invalid_request")
		return
	}
	if strings.TrimSpace(payload.ID) == "" {
		respondInvalidRequest(c, "missing_id")
		return
	}
	if strings.TrimSpace(payload.Path) == "" {
		respondInvalidRequest(c, "missing_path")
		return
	}

	operation := payload.Op
	if operation == "" {
		operation = patchOpSet
	}

	var updated catalog.Model
	var err error
	switch operation {
	case patchOpSet:
		var value any
		if len(payload.Value) > 0 {
			if decodeErr := json.Unmarshal(payload.Value, &value); decodeErr != nil {
				respondInvalidRequest(c, "invalid_value")
				return
			}
		}
		updated, err = h.catalogService.SetField(c.Request.Context(), payload.ID, payload.Path, value)
	case patchOpAddItem:
		updated, err = h.catalogService.AppendArrayItem(c.Request.Context(), payload.ID, payload.Path)
	case patchOpRemoveItem:
		if payload.Index == nil {
			respondInvalidRequest(c, "missing_index")
			return
		}
		updated, err = h.catalogService.RemoveArrayItem(c.Request.Context(), payload.ID, payload.Path, *payload.Index)
	default:
		respondInvalidRequest(c, "unknown_op")
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

func (h *httpHandler) handleDeleteModel(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		respondInvalidRequest(c, "missing_id")
		return
	}
	if _, err := h.catalogService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	respondDeleted(c)
}
