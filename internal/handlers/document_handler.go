package handlers

import (
	"errors"
	"net/http"

	"github.com/brandforge/demokit-backend/internal/models"
	"github.com/brandforge/demokit-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// DocumentHandler handles configuration-document-related HTTP requests
type DocumentHandler struct {
	documentService services.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentService services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

// modifiedBy identifies the mutation source from the request, defaulting to "api"
func modifiedBy(c *gin.Context) string {
	if tag := c.GetHeader("X-Modified-By"); tag != "" {
		return tag
	}
	return "api"
}

// GetDocument handles GET /document
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.documentService.GetDocument(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get document: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ReplaceDocument handles PUT /document
func (h *DocumentHandler) ReplaceDocument(c *gin.Context) {
	var doc models.ConfigDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.documentService.ReplaceDocument(c, &doc, modifiedBy(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// UpsertGuide handles PUT /document/guides/:id
func (h *DocumentHandler) UpsertGuide(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guide, err := h.documentService.UpsertGuide(c, c.Param("id"), patch, modifiedBy(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guide: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, guide)
}

// UpdateMessage handles PUT /document/messages/:id and POST /document/messages/:id
func (h *DocumentHandler) UpdateMessage(c *gin.Context) {
	var message models.Message
	if err := c.ShouldBindJSON(&message); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.documentService.UpdateMessage(c, c.Param("id"), message, modifiedBy(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found: " + err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// RenderMessage handles GET /document/messages/:id/html
func (h *DocumentHandler) RenderMessage(c *gin.Context) {
	html, err := h.documentService.RenderMessage(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found: " + err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render message: " + err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
