package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stroytechnika/pumpdesk/internal/pages"
	"github.com/stroytechnika/pumpdesk/internal/resource"
)

func (h *httpHandler) handlePages(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		record, err := h.pagesService.Get(c.Request.Context(), id)
		if err != nil {
			h.respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, record)
		return
	}

	predicates := resource.Predicates{
		"status": c.Query("status"),
	}
	records, stats, err := h.pagesService.List(c.Request.Context(), predicates)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondList(c, records, stats)
}

func (h *httpHandler) handleCreatePage(c *gin.Context) {
	var payload pages.Page
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c, "invalid_request")
		return
	}

	created, err := h.pagesService.Create(c.Request.Context(), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

type pageUpdatePayload struct {
	ID string `json:"id"`
	pages.Update
}

func (h *httpHandler) handleUpdatePage(c *gin.Context) {
	var payload pageUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c, "invalid_request")
		return
	}
	if strings.TrimSpace(payload.ID) == "" {
		respondInvalidRequest(c, "missing_id")
		return
	}

	updated, err := h.pagesService.Update(c.Request.Context(), payload.ID, payload.Update)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

func (h *httpHandler) handleDeletePage(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		respondInvalidRequest(c, "missing_id")
		return
	}
	if _, err := h.pagesService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	respondDeleted(c)
}
