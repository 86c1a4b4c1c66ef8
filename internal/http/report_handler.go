package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) dueDeliverablesReport(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	rows, err := h.reports.DueDeliverables(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) dueDeliverablesExport(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	result, err := h.reports.DueDeliverablesWorkbook(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, result)
}

func (h *Handler) contractStatusReport(c *gin.Context) {
	rows, err := h.reports.ContractStatus(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) contractStatusExport(c *gin.Context) {
	result, err := h.reports.ContractStatusWorkbook(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, result)
}

func (h *Handler) deliveriesBySupplierReport(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	rows, err := h.reports.DeliveriesBySupplier(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) deliveriesBySupplierExport(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	result, err := h.reports.DeliveriesBySupplierWorkbook(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, result)
}

func (h *Handler) deliveriesByOrgUnitReport(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	rows, err := h.reports.DeliveriesByOrgUnit(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) deliveriesByOrgUnitExport(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	result, err := h.reports.DeliveriesByOrgUnitWorkbook(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, result)
}

func (h *Handler) penaltiesReport(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	rows, err := h.reports.Penalties(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) penaltiesExport(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	result, err := h.reports.PenaltiesWorkbook(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, result)
}

func (h *Handler) listAlerts(c *gin.Context) {
	alerts, err := h.alerts.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}
