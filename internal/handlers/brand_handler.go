package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/brandforge/demokit-backend/internal/models"
	"github.com/brandforge/demokit-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// BrandHandler handles brand-related HTTP requests
type BrandHandler struct {
	brandService services.BrandService
}

// NewBrandHandler creates a new BrandHandler
func NewBrandHandler(brandService services.BrandService) *BrandHandler {
	return &BrandHandler{
		brandService: brandService,
	}
}

// ListBrands handles GET /brands
func (h *BrandHandler) ListBrands(c *gin.Context) {
	brands, err := h.brandService.ListBrands(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list brands: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"brands": brands,
		"total":  len(brands),
	})
}

// SyncBrand handles POST /brands/sync
func (h *BrandHandler) SyncBrand(c *gin.Context) {
	var request struct {
		BrandCode string             `json:"brandCode"`
		BrandName string             `json:"brandName"`
		Files     []models.BrandFile `json:"files"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	brandConfig, frontendConfig, err := h.brandService.SyncBrand(c, request.BrandCode, request.BrandName, request.Files)
	if err != nil {
		if errors.Is(err, services.ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync brand: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"brandConfig":    brandConfig,
		"frontendConfig": frontendConfig,
	})
}

// UploadBrandFile handles POST /brands/:brandCode/files
func (h *BrandHandler) UploadBrandFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required: " + err.Error()})
		return
	}
	fileType := c.PostForm("type")

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload: " + err.Error()})
		return
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload: " + err.Error()})
		return
	}

	object, err := h.brandService.UploadBrandFile(c, c.Param("brandCode"), fileType, fileHeader.Filename, content, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, services.ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, object)
}
