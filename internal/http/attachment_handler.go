package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) uploadAttachment(c *gin.Context) {
	contractID, ok := pathID(c)
	if !ok {
		return
	}
	upload, closeFile, ok := formUpload(c)
	if !ok {
		return
	}
	defer closeFile()

	attachment, err := h.attachments.Upload(c.Request.Context(), contractID, upload)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

func (h *Handler) listContractAttachments(c *gin.Context) {
	contractID, ok := pathID(c)
	if !ok {
		return
	}
	attachments, err := h.attachments.ListForContract(c.Request.Context(), contractID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, attachments)
}

func (h *Handler) getAttachment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	attachment, err := h.attachments.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, attachment)
}

func (h *Handler) downloadAttachment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	stored, err := h.attachments.Download(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.streamStored(c, stored)
}

func (h *Handler) deleteAttachment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.attachments.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
