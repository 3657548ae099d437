package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path"
	"regexp"
	"sort"
	"time"

	"github.com/brandforge/demokit-backend/internal/models"
	"github.com/brandforge/demokit-backend/internal/repositories"
)

// brandConfigFileRe matches per-brand config object names under the configs prefix
var brandConfigFileRe = regexp.MustCompile(`^config_(.+)\.json$`)

// brandFileDirs maps brand file types to their directory under the storage prefix
var brandFileDirs = map[string]string{
	models.BrandFileConfig: "configs",
	models.BrandFileLocale: "locales",
	models.BrandFileLogo:   "logos",
}

// BrandServiceImpl implements BrandService
type BrandServiceImpl struct {
	docRepo repositories.DocumentRepository
	objRepo repositories.ObjectRepository
	prefix  string
}

// NewBrandService creates a new BrandService
func NewBrandService(docRepo repositories.DocumentRepository, objRepo repositories.ObjectRepository, prefix string) BrandService {
	return &BrandServiceImpl{
		docRepo: docRepo,
		objRepo: objRepo,
		prefix:  prefix,
	}
}

// ListBrands discovers brands entirely from the object store: every
// config_{brandCode}.json under the configs prefix yields one summary, with
// the brand name read from the object's content. Objects that fail to fetch
// or parse are logged and skipped; a partial result is still a success. An
// unconfigured object store yields an empty list, not an error.
func (s *BrandServiceImpl) ListBrands(ctx context.Context) ([]models.BrandSummary, error) {
	if !s.objRepo.Configured() {
		return []models.BrandSummary{}, nil
	}

	listing, err := s.objRepo.List(ctx, s.prefix+"/configs/")
	if err != nil {
		return nil, fmt.Errorf("failed to list brand configs: %w", err)
	}

	brands := []models.BrandSummary{}
	for _, obj := range listing {
		match := brandConfigFileRe.FindStringSubmatch(path.Base(obj.Path))
		if match == nil {
			continue
		}
		brandCode := match[1]

		content, err := s.objRepo.Fetch(ctx, obj.Path)
		if err != nil {
			log.Printf("Warning: failed to fetch brand config %q, skipping: %v", obj.Path, err)
			continue
		}
		var parsed struct {
			Brand struct {
				Name string `json:"name"`
			} `json:"brand"`
		}
		if err := json.Unmarshal(content, &parsed); err != nil {
			log.Printf("Warning: failed to parse brand config %q, skipping: %v", obj.Path, err)
			continue
		}
		brandName := parsed.Brand.Name
		if brandName == "" {
			brandName = brandCode
		}

		brands = append(brands, models.BrandSummary{
			BrandCode: brandCode,
			BrandName: brandName,
			CreatedAt: obj.UploadedAt,
			UpdatedAt: obj.UploadedAt,
		})
	}

	sort.Slice(brands, func(i, j int) bool { return brands[i].BrandCode < brands[j].BrandCode })
	return brands, nil
}

// SyncBrand writes a brand bundle to its own store key, merges it into the
// main document's brands array (replace-by-code, best-effort) and stores the
// flattened frontend projection. A main document that cannot be read is
// skipped silently; the per-brand keys are still written.
func (s *BrandServiceImpl) SyncBrand(ctx context.Context, brandCode, brandName string, files []models.BrandFile) (*models.BrandConfig, *models.FrontendBrandConfig, error) {
	if brandCode == "" {
		return nil, nil, fmt.Errorf("brandCode: %w", ErrMissingField)
	}
	if brandName == "" {
		return nil, nil, fmt.Errorf("brandName: %w", ErrMissingField)
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("files: %w", ErrMissingField)
	}

	now := time.Now().UTC()
	brand := &models.BrandConfig{
		BrandCode: brandCode,
		BrandName: brandName,
		Files:     files,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing, err := s.docRepo.GetBrand(ctx, brandCode); err == nil && existing != nil {
		brand.CreatedAt = existing.CreatedAt
	}

	if err := s.docRepo.SetBrand(ctx, brand); err != nil {
		return nil, nil, err
	}

	s.mergeIntoMainDocument(ctx, brand)

	frontend := frontendProjection(brand, now)
	if err := s.docRepo.SetFrontendBrand(ctx, brandCode, frontend); err != nil {
		return nil, nil, err
	}

	return brand, frontend, nil
}

// mergeIntoMainDocument replaces the brand's entry in the main document's
// brands array by filtering out the old entry and appending the new one.
// An unreadable or missing main document is skipped, not an error.
func (s *BrandServiceImpl) mergeIntoMainDocument(ctx context.Context, brand *models.BrandConfig) {
	doc, err := s.docRepo.GetDocument(ctx)
	if err != nil {
		log.Printf("Warning: failed to read main document during brand sync for %q, skipping merge: %v", brand.BrandCode, err)
		return
	}
	if doc == nil {
		return
	}

	kept := doc.Brands[:0]
	for _, b := range doc.Brands {
		if b.BrandCode != brand.BrandCode {
			kept = append(kept, b)
		}
	}
	doc.Brands = append(kept, *brand)

	doc.Metadata.Touch("brand-sync")
	doc.Metadata.Source = models.SourceStore
	if err := s.docRepo.SetDocument(ctx, doc); err != nil {
		log.Printf("Warning: failed to update main document during brand sync for %q: %v", brand.BrandCode, err)
	}
}

// UploadBrandFile stores one brand asset file at its conventional path
func (s *BrandServiceImpl) UploadBrandFile(ctx context.Context, brandCode, fileType, filename string, content []byte, contentType string) (*models.StoredObject, error) {
	if brandCode == "" {
		return nil, fmt.Errorf("brandCode: %w", ErrMissingField)
	}
	if filename == "" {
		return nil, fmt.Errorf("filename: %w", ErrMissingField)
	}
	dir, ok := brandFileDirs[fileType]
	if !ok {
		return nil, fmt.Errorf("file type %q: %w", fileType, ErrMissingField)
	}
	return s.objRepo.Put(ctx, fmt.Sprintf("%s/%s/%s", s.prefix, dir, filename), content, contentType)
}

// frontendProjection flattens a brand bundle into the shape the frontend
// consumes: the first file of each type, or absent
func frontendProjection(brand *models.BrandConfig, now time.Time) *models.FrontendBrandConfig {
	frontend := &models.FrontendBrandConfig{
		BrandCode: brand.BrandCode,
		BrandName: brand.BrandName,
		IsActive:  true,
		UpdatedAt: now,
	}
	if f := brand.FileByType(models.BrandFileLogo); f != nil {
		frontend.LogoURL = f.URL
	}
	if f := brand.FileByType(models.BrandFileLocale); f != nil {
		frontend.LocaleURL = f.URL
	}
	if f := brand.FileByType(models.BrandFileConfig); f != nil {
		frontend.ConfigURL = f.URL
	}
	return frontend
}
