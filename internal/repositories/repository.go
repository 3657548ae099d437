package repositories

import (
	"context"

	"github.com/brandforge/demokit-backend/internal/models"
)

// MainDocumentKey is the fixed store key of the demo toolkit configuration document
const MainDocumentKey = "demo-toolkit-config"

// BrandKey returns the store key mirroring one brand's configuration bundle
func BrandKey(brandCode string) string {
	return "brand:" + brandCode
}

// FrontendBrandKey returns the store key of a brand's frontend projection
func FrontendBrandKey(brandCode string) string {
	return "frontend:brand:" + brandCode
}

// DocumentRepository defines the interface for configuration document storage.
// Values are whole JSON documents addressed by key; every mutation is a full
// read, in-memory edit and full write. There is no compare-and-swap on write:
// concurrent writers race and the last write wins.
type DocumentRepository interface {
	// GetDocument returns the main document, or (nil, nil) when the store
	// holds no document yet.
	GetDocument(ctx context.Context) (*models.ConfigDocument, error)
	// SetDocument overwrites the main document in full.
	SetDocument(ctx context.Context, doc *models.ConfigDocument) error
	// GetBrand returns the mirrored brand bundle, or (nil, nil) when absent.
	GetBrand(ctx context.Context, brandCode string) (*models.BrandConfig, error)
	// SetBrand overwrites the mirrored brand bundle.
	SetBrand(ctx context.Context, brand *models.BrandConfig) error
	// GetFrontendBrand returns the frontend projection, or (nil, nil) when absent.
	GetFrontendBrand(ctx context.Context, brandCode string) (*models.FrontendBrandConfig, error)
	// SetFrontendBrand overwrites the frontend projection.
	SetFrontendBrand(ctx context.Context, brandCode string, cfg *models.FrontendBrandConfig) error
}

// ObjectRepository defines the interface for binary brand asset storage
type ObjectRepository interface {
	// Configured reports whether a backing object store is available. When
	// false, callers degrade to empty results instead of failing.
	Configured() bool
	// List enumerates objects whose path starts with the given prefix.
	List(ctx context.Context, prefix string) ([]models.StoredObject, error)
	// Fetch returns the raw content of the object at the given path.
	Fetch(ctx context.Context, path string) ([]byte, error)
	// Put stores content at the given path, overwriting any existing object.
	Put(ctx context.Context, path string, content []byte, contentType string) (*models.StoredObject, error)
}
