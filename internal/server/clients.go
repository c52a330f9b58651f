package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stroytechnika/pumpdesk/internal/clients"
	"github.com/stroytechnika/pumpdesk/internal/resource"
)

func (h *httpHandler) handleClients(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		record, err := h.clientsService.Get(c.Request.Context(), id)
		if err != nil {
			h.respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, record)
		return
	}

	predicates := resource.Predicates{
		"status": c.Query("status"),
		"type":   c.Query("type"),
		"city":   c.Query("city"),
	}
	records, stats, err := h.clientsService.List(c.Request.Context(), predicates)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondList(c, records, stats)
}

func (h *httpHandler) handleCreateClient(c *gin.Context) {
	var payload clients.Client
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c, "invalid_request")
		return
	}

	created, err := h.clientsService.Create(c.Request.Context(), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

type clientUpdatePayload struct {
	ID string `json:"id"`
	clients.Update
}

func (h *httpHandler) handleUpdateClient(c *gin.Context) {
	var payload clientUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c, "invalid_request")
		return
	}
	if strings.TrimSpace(payload.ID) == "" {
		respondInvalidRequest(c, "missing_id")
		return
	}

	updated, err := h.clientsService.Update(c.Request.Context(), payload.ID, payload.Update)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

func (h *httpHandler) handleDeleteClient(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		respondInvalidRequest(c, "missing_id")
		return
	}
	if _, err := h.clientsService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	respondDeleted(c)
}
