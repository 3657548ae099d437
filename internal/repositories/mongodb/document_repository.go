package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brandforge/demokit-backend/internal/models"
	"github.com/brandforge/demokit-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DocumentRepository implements the repositories.DocumentRepository interface
// on top of a MongoDB collection used as a key-value table: one row per store
// key, the JSON value embedded under "value".
type DocumentRepository struct {
	collection *mongo.Collection
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *mongo.Database) repositories.DocumentRepository {
	return &DocumentRepository{
		collection: db.Collection("documents"),
	}
}

// GetDocument returns the main configuration document, or (nil, nil) when the
// store holds no document yet. No schema validation happens here; whatever is
// stored is decoded as-is.
func (r *DocumentRepository) GetDocument(ctx context.Context) (*models.ConfigDocument, error) {
	var row struct {
		Value models.ConfigDocument `bson:"value"`
	}
	err := r.collection.FindOne(ctx, bson.M{"_id": repositories.MainDocumentKey}).Decode(&row)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document %q: %w", repositories.MainDocumentKey, err)
	}
	return &row.Value, nil
}

// SetDocument overwrites the main configuration document in full
func (r *DocumentRepository) SetDocument(ctx context.Context, doc *models.ConfigDocument) error {
	return r.set(ctx, repositories.MainDocumentKey, doc)
}

// GetBrand returns the mirrored brand bundle, or (nil, nil) when absent
func (r *DocumentRepository) GetBrand(ctx context.Context, brandCode string) (*models.BrandConfig, error) {
	var row struct {
		Value models.BrandConfig `bson:"value"`
	}
	err := r.collection.FindOne(ctx, bson.M{"_id": repositories.BrandKey(brandCode)}).Decode(&row)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get brand %q: %w", brandCode, err)
	}
	return &row.Value, nil
}

// SetBrand overwrites the mirrored brand bundle
func (r *DocumentRepository) SetBrand(ctx context.Context, brand *models.BrandConfig) error {
	return r.set(ctx, repositories.BrandKey(brand.BrandCode), brand)
}

// GetFrontendBrand returns the frontend projection, or (nil, nil) when absent
func (r *DocumentRepository) GetFrontendBrand(ctx context.Context, brandCode string) (*models.FrontendBrandConfig, error) {
	var row struct {
		Value models.FrontendBrandConfig `bson:"value"`
	}
	err := r.collection.FindOne(ctx, bson.M{"_id": repositories.FrontendBrandKey(brandCode)}).Decode(&row)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get frontend brand %q: %w", brandCode, err)
	}
	return &row.Value, nil
}

// SetFrontendBrand overwrites the frontend projection
func (r *DocumentRepository) SetFrontendBrand(ctx context.Context, brandCode string, cfg *models.FrontendBrandConfig) error {
	return r.set(ctx, repositories.FrontendBrandKey(brandCode), cfg)
}

// set replaces the value stored under key, inserting the row if needed
func (r *DocumentRepository) set(ctx context.Context, key string, value interface{}) error {
	row := bson.M{
		"_id":       key,
		"value":     value,
		"updatedAt": time.Now().UTC(),
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": key}, row, opts)
	if err != nil {
		return fmt.Errorf("failed to set document %q: %w", key, err)
	}
	return nil
}
