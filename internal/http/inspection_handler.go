package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contractflow/backend/internal/model"
	"github.com/contractflow/backend/internal/service"
)

type inspectionRequest struct {
	Date      string  `json:"date" binding:"required"`
	Inspector string  `json:"inspector" binding:"required"`
	Notes     *string `json:"notes"`
}

func (r inspectionRequest) toInput(c *gin.Context) (service.InspectionInput, bool) {
	date, err := parseDate(r.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return service.InspectionInput{}, false
	}
	return service.InspectionInput{
		Date:      date,
		Inspector: r.Inspector,
		Notes:     r.Notes,
	}, true
}

func (h *Handler) createInspection(c *gin.Context) {
	deliverableID, ok := pathID(c)
	if !ok {
		return
	}
	var req inspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}
	inspection, err := h.inspections.Create(c.Request.Context(), deliverableID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inspection)
}

func (h *Handler) listDeliverableInspections(c *gin.Context) {
	deliverableID, ok := pathID(c)
	if !ok {
		return
	}
	inspections, err := h.inspections.ListForDeliverable(c.Request.Context(), deliverableID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, inspections)
}

func (h *Handler) getInspection(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	inspection, err := h.inspections.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, inspection)
}

func (h *Handler) updateInspection(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req inspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}
	if err := h.inspections.Update(c.Request.Context(), id, input); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteInspection(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.inspections.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) uploadInspectionEvidence(c *gin.Context) {
	h.uploadEvidence(c, model.EvidenceOwnerInspection)
}

func (h *Handler) listInspectionEvidences(c *gin.Context) {
	h.listEvidences(c, model.EvidenceOwnerInspection)
}
