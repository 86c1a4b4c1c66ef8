package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/contractflow/backend/internal/model"
	"github.com/contractflow/backend/internal/service"
)

type createDeliverableRequest struct {
	ExpectedDate string          `json:"expectedDate" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit" binding:"required"`
}

func (h *Handler) createDeliverable(c *gin.Context) {
	obligationID, ok := pathID(c)
	if !ok {
		return
	}
	var req createDeliverableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	expectedDate, err := parseDate(req.ExpectedDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expectedDate"})
		return
	}
	deliverable, err := h.deliverables.Create(c.Request.Context(), obligationID, service.CreateDeliverableInput{
		ExpectedDate: expectedDate,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, deliverable)
}

func (h *Handler) getDeliverable(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deliverable, err := h.deliverables.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, deliverable)
}

type markDeliveredRequest struct {
	DeliveredAt string `json:"deliveredAt" binding:"required"`
}

func (h *Handler) markDelivered(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req markDeliveredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	deliveredAt, err := parseDate(req.DeliveredAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deliveredAt"})
		return
	}
	if err := h.deliverables.MarkDelivered(c.Request.Context(), id, deliveredAt); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) uploadDeliverableEvidence(c *gin.Context) {
	h.uploadEvidence(c, model.EvidenceOwnerDeliverable)
}

func (h *Handler) listDeliverableEvidences(c *gin.Context) {
	h.listEvidences(c, model.EvidenceOwnerDeliverable)
}
