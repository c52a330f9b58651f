package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stroytechnika/pumpdesk/internal/leads"
	"github.com/stroytechnika/pumpdesk/internal/resource"
)

func (h *httpHandler) handleLeads(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		record, err := h.leadsService.Get(c.Request.Context(), id)
		if err != nil {
			h.respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, record)
		return
	}

	predicates := resource.Predicates{
		"status": c.Query("status"),
		"source": c.Query("source"),
	}
	records, stats, err := h.leadsService.List(c.Request.Context(), predicates)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondList(c, records, stats)
}

func (h *httpHandler) handleCreateLead(c *gin.Context) {
	var payload leads.Lead
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c, "invalid_request")
		return
	}

	created, err := h.leadsService.Create(c.Request.Context(), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

type leadUpdatePayload struct {
	ID string `json:"id"`
	leads.Update
}

// handleUpdateLead merges partial fields: unlike catalog models, a lead PUT
// only replaces what the body carries.
func (h *httpHandler) handleUpdateLead(c *gin.Context) {
	var payload leadUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c, "invalid_request")
		return
	}
	if strings.TrimSpace(payload.ID) == "" {
		respondInvalidRequest(c, "missing_id")
		return
	}

	updated, err := h.leadsService.Update(c.Request.Context(), payload.ID, payload.Update)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

func (h *httpHandler) handleDeleteLead(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		respondInvalidRequest(c, "missing_id")
		return
	}
	if _, err := h.leadsService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	respondDeleted(c)
}
