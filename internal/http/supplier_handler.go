package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contractflow/backend/internal/service"
)

type supplierRequest struct {
	CorporateName string `json:"corporateName" binding:"required"`
	TaxID         string `json:"taxId" binding:"required"`
	Active        *bool  `json:"active"`
}

func (r supplierRequest) toInput() service.SupplierInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return service.SupplierInput{
		CorporateName: r.CorporateName,
		TaxID:         r.TaxID,
		Active:        active,
	}
}

func (h *Handler) createSupplier(c *gin.Context) {
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	supplier, err := h.suppliers.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

func (h *Handler) listSuppliers(c *gin.Context) {
	suppliers, err := h.suppliers.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (h *Handler) getSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	supplier, err := h.suppliers.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

func (h *Handler) updateSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.suppliers.Update(c.Request.Context(), id, req.toInput()); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.suppliers.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
