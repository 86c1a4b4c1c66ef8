package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contractflow/backend/internal/service"
)

type orgUnitRequest struct {
	Name string  `json:"name" binding:"required"`
	Code *string `json:"code"`
}

func (h *Handler) createOrgUnit(c *gin.Context) {
	var req orgUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	orgUnit, err := h.orgUnits.Create(c.Request.Context(), service.OrgUnitInput{Name: req.Name, Code: req.Code})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orgUnit)
}

func (h *Handler) listOrgUnits(c *gin.Context) {
	orgUnits, err := h.orgUnits.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, orgUnits)
}

func (h *Handler) getOrgUnit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orgUnit, err := h.orgUnits.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, orgUnit)
}

func (h *Handler) updateOrgUnit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req orgUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.orgUnits.Update(c.Request.Context(), id, service.OrgUnitInput{Name: req.Name, Code: req.Code}); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteOrgUnit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.orgUnits.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
