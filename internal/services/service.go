package services

import (
	"context"
	"errors"

	"github.com/brandforge/demokit-backend/internal/models"
)

// ErrNotFound is returned when a requested entity id is absent. Handlers
// surface it as a client error.
var ErrNotFound = errors.New("not found")

// ErrMissingField is returned when a required field is missing from a write
// request. The request is rejected before any store access.
var ErrMissingField = errors.New("missing required field")

// DocumentService defines the operations on the configuration document
type DocumentService interface {
	GetDocument(ctx context.Context) (*models.ConfigDocument, error)
	ReplaceDocument(ctx context.Context, doc *models.ConfigDocument, modifiedBy string) (*models.ConfigDocument, error)
	UpsertGuide(ctx context.Context, id string, patch map[string]interface{}, modifiedBy string) (*models.Guide, error)
	UpdateMessage(ctx context.Context, id string, message models.Message, modifiedBy string) (*models.ConfigDocument, error)
	RenderMessage(ctx context.Context, id string) (string, error)
}

// BrandService defines the operations on brand configuration bundles
type BrandService interface {
	ListBrands(ctx context.Context) ([]models.BrandSummary, error)
	SyncBrand(ctx context.Context, brandCode, brandName string, files []models.BrandFile) (*models.BrandConfig, *models.FrontendBrandConfig, error)
	UploadBrandFile(ctx context.Context, brandCode, fileType, filename string, content []byte, contentType string) (*models.StoredObject, error)
}
