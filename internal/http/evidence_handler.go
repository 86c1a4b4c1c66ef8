package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contractflow/backend/internal/model"
)

func (h *Handler) uploadEvidence(c *gin.Context, kind model.EvidenceOwnerKind) {
	ownerID, ok := pathID(c)
	if !ok {
		return
	}
	upload, closeFile, ok := formUpload(c)
	if !ok {
		return
	}
	defer closeFile()

	var notes *string
	if value := c.PostForm("notes"); value != "" {
		notes = &value
	}

	evidence, err := h.evidences.Upload(c.Request.Context(), kind, ownerID, upload, notes)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, evidence)
}

func (h *Handler) listEvidences(c *gin.Context, kind model.EvidenceOwnerKind) {
	ownerID, ok := pathID(c)
	if !ok {
		return
	}
	evidences, err := h.evidences.ListForOwner(c.Request.Context(), kind, ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, evidences)
}

func (h *Handler) getEvidence(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	evidence, err := h.evidences.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, evidence)
}

func (h *Handler) downloadEvidence(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	stored, err := h.evidences.Download(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.streamStored(c, stored)
}

func (h *Handler) deleteEvidence(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.evidences.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
