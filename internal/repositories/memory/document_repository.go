// Package memory provides in-memory implementations of the repository
// interfaces. They back the service tests and have no persistence.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/brandforge/demokit-backend/internal/models"
	"github.com/brandforge/demokit-backend/internal/repositories"
)

// DocumentRepository is an in-memory repositories.DocumentRepository. Values
// are deep-copied on the way in and out so callers cannot alias stored state.
type DocumentRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewDocumentRepository creates a new in-memory DocumentRepository
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{
		values: make(map[string][]byte),
	}
}

// GetDocument returns the main document, or (nil, nil) when absent
func (r *DocumentRepository) GetDocument(ctx context.Context) (*models.ConfigDocument, error) {
	var doc models.ConfigDocument
	ok, err := r.get(repositories.MainDocumentKey, &doc)
	if err != nil || !ok {
		return nil, err
	}
	return &doc, nil
}

// SetDocument overwrites the main document
func (r *DocumentRepository) SetDocument(ctx context.Context, doc *models.ConfigDocument) error {
	return r.set(repositories.MainDocumentKey, doc)
}

// GetBrand returns the mirrored brand bundle, or (nil, nil) when absent
func (r *DocumentRepository) GetBrand(ctx context.Context, brandCode string) (*models.BrandConfig, error) {
	var brand models.BrandConfig
	ok, err := r.get(repositories.BrandKey(brandCode), &brand)
	if err != nil || !ok {
		return nil, err
	}
	return &brand, nil
}

// SetBrand overwrites the mirrored brand bundle
func (r *DocumentRepository) SetBrand(ctx context.Context, brand *models.BrandConfig) error {
	return r.set(repositories.BrandKey(brand.BrandCode), brand)
}

// GetFrontendBrand returns the frontend projection, or (nil, nil) when absent
func (r *DocumentRepository) GetFrontendBrand(ctx context.Context, brandCode string) (*models.FrontendBrandConfig, error) {
	var cfg models.FrontendBrandConfig
	ok, err := r.get(repositories.FrontendBrandKey(brandCode), &cfg)
	if err != nil || !ok {
		return nil, err
	}
	return &cfg, nil
}

// SetFrontendBrand overwrites the frontend projection
func (r *DocumentRepository) SetFrontendBrand(ctx context.Context, brandCode string, cfg *models.FrontendBrandConfig) error {
	return r.set(repositories.FrontendBrandKey(brandCode), cfg)
}

func (r *DocumentRepository) get(key string, out interface{}) (bool, error) {
	r.mu.RLock()
	raw, ok := r.values[key]
	r.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *DocumentRepository) set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.values[key] = raw
	r.mu.Unlock()
	return nil
}
