package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contractflow/backend/internal/service"
)

type createContractRequest struct {
	OfficialNumber        string          `json:"officialNumber" binding:"required"`
	AdministrativeProcess *string         `json:"administrativeProcess"`
	SupplierID            string          `json:"supplierId" binding:"required"`
	OrgUnitID             string          `json:"orgUnitId" binding:"required"`
	Type                  string          `json:"type" binding:"required"`
	Modality              string          `json:"modality" binding:"required"`
	TermStart             string          `json:"termStart" binding:"required"`
	TermEnd               string          `json:"termEnd" binding:"required"`
	TotalAmount           decimal.Decimal `json:"totalAmount"`
	Currency              string          `json:"currency"`
}

func (h *Handler) createContract(c *gin.Context) {
	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supplierId"})
		return
	}
	orgUnitID, err := uuid.Parse(req.OrgUnitID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid orgUnitId"})
		return
	}
	termStart, err := parseDate(req.TermStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid termStart"})
		return
	}
	termEnd, err := parseDate(req.TermEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid termEnd"})
		return
	}

	id, err := h.contracts.Create(c.Request.Context(), service.CreateContractInput{
		OfficialNumber:        req.OfficialNumber,
		AdministrativeProcess: req.AdministrativeProcess,
		SupplierID:            supplierID,
		OrgUnitID:             orgUnitID,
		Type:                  req.Type,
		Modality:              req.Modality,
		TermStart:             termStart,
		TermEnd:               termEnd,
		TotalAmount:           req.TotalAmount,
		Currency:              req.Currency,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) listContracts(c *gin.Context) {
	contracts, err := h.contracts.ListRecent(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

func (h *Handler) getContract(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	details, err := h.contracts.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

type updateContractStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) updateContractStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateContractStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.contracts.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteContract(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.contracts.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) contractSummaryPDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	result, err := h.contracts.SummaryPDF(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, result)
}

func (h *Handler) listContractDeliverables(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deliverables, err := h.deliverables.ListForContract(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, deliverables)
}
