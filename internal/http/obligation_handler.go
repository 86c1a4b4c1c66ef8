package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/contractflow/backend/internal/service"
)

type obligationRequest struct {
	ClauseRef   string  `json:"clauseRef" binding:"required"`
	Description string  `json:"description" binding:"required"`
	DueDate     *string `json:"dueDate"`
	Status      string  `json:"status"`
}

func (r obligationRequest) toInput(c *gin.Context) (service.ObligationInput, bool) {
	var dueDate *time.Time
	if r.DueDate != nil {
		parsed, err := parseDate(*r.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dueDate"})
			return service.ObligationInput{}, false
		}
		dueDate = &parsed
	}
	return service.ObligationInput{
		ClauseRef:   r.ClauseRef,
		Description: r.Description,
		DueDate:     dueDate,
		Status:      r.Status,
	}, true
}

func (h *Handler) createObligation(c *gin.Context) {
	contractID, ok := pathID(c)
	if !ok {
		return
	}
	var req obligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}
	obligation, err := h.obligations.Create(c.Request.Context(), contractID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, obligation)
}

func (h *Handler) listContractObligations(c *gin.Context) {
	contractID, ok := pathID(c)
	if !ok {
		return
	}
	obligations, err := h.obligations.ListForContract(c.Request.Context(), contractID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, obligations)
}

func (h *Handler) getObligation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	obligation, err := h.obligations.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, obligation)
}

func (h *Handler) updateObligation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req obligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}
	if err := h.obligations.Update(c.Request.Context(), id, input); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteObligation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.obligations.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
