package http

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/contractflow/backend/internal/service"
)

type Handler struct {
	contracts      *service.ContractService
	suppliers      *service.SupplierService
	orgUnits       *service.OrgUnitService
	obligations    *service.ObligationService
	deliverables   *service.DeliverableService
	inspections    *service.InspectionService
	evidences      *service.EvidenceService
	attachments    *service.AttachmentService
	nonCompliances *service.NonComplianceService
	reports        *service.ReportService
	alerts         *service.AlertService
	log            zerolog.Logger
}

func NewHandler(
	contracts *service.ContractService,
	suppliers *service.SupplierService,
	orgUnits *service.OrgUnitService,
	obligations *service.ObligationService,
	deliverables *service.DeliverableService,
	inspections *service.InspectionService,
	evidences *service.EvidenceService,
	attachments *service.AttachmentService,
	nonCompliances *service.NonComplianceService,
	reports *service.ReportService,
	alerts *service.AlertService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		contracts:      contracts,
		suppliers:      suppliers,
		orgUnits:       orgUnits,
		obligations:    obligations,
		deliverables:   deliverables,
		inspections:    inspections,
		evidences:      evidences,
		attachments:    attachments,
		nonCompliances: nonCompliances,
		reports:        reports,
		alerts:         alerts,
		log:            log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	api := router.Group("/api")
	if authMiddleware != nil {
		api.Use(authMiddleware)
	}

	api.POST("/contracts", h.createContract)
	api.GET("/contracts", h.listContracts)
	api.GET("/contracts/:id", h.getContract)
	api.PUT("/contracts/:id/status", h.updateContractStatus)
	api.DELETE("/contracts/:id", h.deleteContract)
	api.GET("/contracts/:id/summary/pdf", h.contractSummaryPDF)
	api.POST("/contracts/:id/obligations", h.createObligation)
	api.GET("/contracts/:id/obligations", h.listContractObligations)
	api.GET("/contracts/:id/deliverables", h.listContractDeliverables)
	api.POST("/contracts/:id/attachments", h.uploadAttachment)
	api.GET("/contracts/:id/attachments", h.listContractAttachments)

	api.GET("/obligations/:id", h.getObligation)
	api.PUT("/obligations/:id", h.updateObligation)
	api.DELETE("/obligations/:id", h.deleteObligation)
	api.POST("/obligations/:id/deliverables", h.createDeliverable)
	api.POST("/obligations/:id/noncompliances", h.registerNonCompliance)
	api.GET("/obligations/:id/noncompliances", h.listObligationNonCompliances)

	api.GET("/deliverables/:id", h.getDeliverable)
	api.PUT("/deliverables/:id/delivered", h.markDelivered)
	api.POST("/deliverables/:id/inspections", h.createInspection)
	api.GET("/deliverables/:id/inspections", h.listDeliverableInspections)
	api.POST("/deliverables/:id/evidences", h.uploadDeliverableEvidence)
	api.GET("/deliverables/:id/evidences", h.listDeliverableEvidences)

	api.GET("/inspections/:id", h.getInspection)
	api.PUT("/inspections/:id", h.updateInspection)
	api.DELETE("/inspections/:id", h.deleteInspection)
	api.POST("/inspections/:id/evidences", h.uploadInspectionEvidence)
	api.GET("/inspections/:id/evidences", h.listInspectionEvidences)

	api.GET("/evidences/:id", h.getEvidence)
	api.GET("/evidences/:id/download", h.downloadEvidence)
	api.DELETE("/evidences/:id", h.deleteEvidence)

	api.GET("/attachments/:id", h.getAttachment)
	api.GET("/attachments/:id/download", h.downloadAttachment)
	api.DELETE("/attachments/:id", h.deleteAttachment)

	api.GET("/noncompliances/:id", h.getNonCompliance)
	api.PUT("/noncompliances/:id", h.updateNonCompliance)
	api.DELETE("/noncompliances/:id", h.deleteNonCompliance)
	api.POST("/noncompliances/:id/penalties", h.applyPenalty)

	api.GET("/suppliers", h.listSuppliers)
	api.POST("/suppliers", h.createSupplier)
	api.GET("/suppliers/:id", h.getSupplier)
	api.PUT("/suppliers/:id", h.updateSupplier)
	api.DELETE("/suppliers/:id", h.deleteSupplier)

	api.GET("/orgunits", h.listOrgUnits)
	api.POST("/orgunits", h.createOrgUnit)
	api.GET("/orgunits/:id", h.getOrgUnit)
	api.PUT("/orgunits/:id", h.updateOrgUnit)
	api.DELETE("/orgunits/:id", h.deleteOrgUnit)

	api.GET("/reports/due-deliverables", h.dueDeliverablesReport)
	api.GET("/reports/due-deliverables/export", h.dueDeliverablesExport)
	api.GET("/reports/contract-status", h.contractStatusReport)
	api.GET("/reports/contract-status/export", h.contractStatusExport)
	api.GET("/reports/deliveries-by-supplier", h.deliveriesBySupplierReport)
	api.GET("/reports/deliveries-by-supplier/export", h.deliveriesBySupplierExport)
	api.GET("/reports/deliveries-by-orgunit", h.deliveriesByOrgUnitReport)
	api.GET("/reports/deliveries-by-orgunit/export", h.deliveriesByOrgUnitExport)
	api.GET("/reports/penalties", h.penaltiesReport)
	api.GET("/reports/penalties/export", h.penaltiesExport)

	api.GET("/alerts", h.listAlerts)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}

// dateRange reads the optional from/to query filters. A malformed value
// reports 400 and returns ok=false.
func dateRange(c *gin.Context) (from, to *time.Time, ok bool) {
	if raw := c.Query("from"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from"})
			return nil, nil, false
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to"})
			return nil, nil, false
		}
		to = &parsed
	}
	if from != nil && to != nil && from.After(*to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must not be after to"})
		return nil, nil, false
	}
	return from, to, true
}

// formUpload converts the request's multipart file into a service upload.
// The returned close function must be called after the service finishes.
func formUpload(c *gin.Context) (service.FileUpload, func(), bool) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return service.FileUpload{}, nil, false
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return service.FileUpload{}, nil, false
	}
	return service.FileUpload{
		Name:        header.Filename,
		ContentType: contentType(header),
		Size:        header.Size,
		Reader:      file,
	}, func() { file.Close() }, true
}

func contentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func (h *Handler) sendFile(c *gin.Context, result *service.FileResult) {
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, result.MimeType, result.Content)
}

func (h *Handler) streamStored(c *gin.Context, stored *service.StoredFile) {
	c.Header("Content-Disposition", "attachment; filename=\""+stored.FileName+"\"")
	c.Header("Content-Type", stored.MimeType)
	c.File(stored.Path)
}
