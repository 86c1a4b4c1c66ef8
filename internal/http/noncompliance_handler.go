package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/contractflow/backend/internal/service"
)

type nonComplianceRequest struct {
	Reason       string `json:"reason" binding:"required"`
	Severity     string `json:"severity" binding:"required"`
	RegisteredAt string `json:"registeredAt" binding:"required"`
}

func (r nonComplianceRequest) toInput(c *gin.Context) (service.NonComplianceInput, bool) {
	registeredAt, err := parseDate(r.RegisteredAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registeredAt"})
		return service.NonComplianceInput{}, false
	}
	return service.NonComplianceInput{
		Reason:       r.Reason,
		Severity:     r.Severity,
		RegisteredAt: registeredAt,
	}, true
}

func (h *Handler) registerNonCompliance(c *gin.Context) {
	obligationID, ok := pathID(c)
	if !ok {
		return
	}
	var req nonComplianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}
	nonCompliance, err := h.nonCompliances.Register(c.Request.Context(), obligationID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, nonCompliance)
}

func (h *Handler) listObligationNonCompliances(c *gin.Context) {
	obligationID, ok := pathID(c)
	if !ok {
		return
	}
	nonCompliances, err := h.nonCompliances.ListForObligation(c.Request.Context(), obligationID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonCompliances)
}

func (h *Handler) getNonCompliance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	nonCompliance, err := h.nonCompliances.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonCompliance)
}

func (h *Handler) updateNonCompliance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req nonComplianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}
	if err := h.nonCompliances.Update(c.Request.Context(), id, input); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteNonCompliance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.nonCompliances.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type penaltyRequest struct {
	Type       string           `json:"type" binding:"required"`
	LegalBasis *string          `json:"legalBasis"`
	Amount     *decimal.Decimal `json:"amount"`
}

func (h *Handler) applyPenalty(c *gin.Context) {
	nonComplianceID, ok := pathID(c)
	if !ok {
		return
	}
	var req penaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	penalty, err := h.nonCompliances.ApplyPenalty(c.Request.Context(), nonComplianceID, service.PenaltyInput{
		Type:       req.Type,
		LegalBasis: req.LegalBasis,
		Amount:     req.Amount,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, penalty)
}
