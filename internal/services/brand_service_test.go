package services_test

import (
	"context"
	"testing"

	"github.com/brandforge/demokit-backend/internal/models"
	"github.com/brandforge/demokit-backend/internal/repositories/memory"
	"github.com/brandforge/demokit-backend/internal/services"
	"github.com/stretchr/testify/require"
)

const storagePrefix = "brand-assets"

func TestSyncBrandRejectsMissingFields(t *testing.T) {
	t.Parallel()

	docRepo := memory.NewDocumentRepository()
	svc := services.NewBrandService(docRepo, memory.NewObjectRepository(true), storagePrefix)
	files := []models.BrandFile{{Filename: "l.png", URL: "/l.png", Type: models.BrandFileLogo, StoragePath: "brand-assets/logos/l.png"}}

	cases := []struct {
		name      string
		brandCode string
		brandName string
		files     []models.BrandFile
	}{
		{"no brandCode", "", "Acme", files},
		{"no brandName", "acme", "", files},
		{"no files", "acme", "Acme", nil},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := svc.SyncBrand(context.Background(), tc.brandCode, tc.brandName, tc.files)
			require.ErrorIs(t, err, services.ErrMissingField)
		})
	}

	// Nothing was written for the rejected requests.
	brand, err := docRepo.GetBrand(context.Background(), "acme")
	require.NoError(t, err)
	require.Nil(t, brand)
}

func TestSyncBrandWritesAllKeys(t *testing.T) {
	t.Parallel()

	docRepo := memory.NewDocumentRepository()
	require.NoError(t, docRepo.SetDocument(context.Background(), &models.ConfigDocument{
		Metadata: models.Metadata{Version: 1},
	}))
	svc := services.NewBrandService(docRepo, memory.NewObjectRepository(true), storagePrefix)

	files := []models.BrandFile{
		{Filename: "l.png", URL: "https://cdn.example.com/l.png", Type: models.BrandFileLogo, StoragePath: "brand-assets/logos/l.png"},
	}
	brand, frontend, err := svc.SyncBrand(context.Background(), "acme", "Acme", files)
	require.NoError(t, err)
	require.Equal(t, "acme", brand.BrandCode)

	// Frontend projection: first file of each type, absent otherwise.
	require.Equal(t, "https://cdn.example.com/l.png", frontend.LogoURL)
	require.Empty(t, frontend.LocaleURL)
	require.Empty(t, frontend.ConfigURL)
	require.True(t, frontend.IsActive)

	stored, err := docRepo.GetFrontendBrand(context.Background(), "acme")
	require.NoError(t, err)
	require.Equal(t, frontend.LogoURL, stored.LogoURL)

	doc, err := docRepo.GetDocument(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Brands, 1)
	require.Equal(t, "acme", doc.Brands[0].BrandCode)
	require.Equal(t, 2, doc.Metadata.Version)
}

func TestSyncBrandIdempotentOnBrandCode(t *testing.T) {
	t.Parallel()

	docRepo := memory.NewDocumentRepository()
	require.NoError(t, docRepo.SetDocument(context.Background(), &models.ConfigDocument{}))
	svc := services.NewBrandService(docRepo, memory.NewObjectRepository(true), storagePrefix)

	first := []models.BrandFile{{Filename: "old.png", URL: "/old.png", Type: models.BrandFileLogo, StoragePath: "p"}}
	second := []models.BrandFile{{Filename: "new.png", URL: "/new.png", Type: models.BrandFileLogo, StoragePath: "p"}}

	_, _, err := svc.SyncBrand(context.Background(), "acme", "Acme", first)
	require.NoError(t, err)
	brand, _, err := svc.SyncBrand(context.Background(), "acme", "Acme Inc", second)
	require.NoError(t, err)

	doc, err := docRepo.GetDocument(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Brands, 1)
	require.Equal(t, "Acme Inc", doc.Brands[0].BrandName)
	require.Equal(t, "new.png", doc.Brands[0].Files[0].Filename)

	// createdAt survives the re-sync, updatedAt moves.
	require.Equal(t, doc.Brands[0].CreatedAt, brand.CreatedAt)
	require.False(t, brand.UpdatedAt.Before(brand.CreatedAt))
}

func TestSyncBrandWithoutMainDocument(t *testing.T) {
	t.Parallel()

	// No main document in the store: the per-brand keys are still written
	// and the sync succeeds.
	docRepo := memory.NewDocumentRepository()
	svc := services.NewBrandService(docRepo, memory.NewObjectRepository(true), storagePrefix)

	files := []models.BrandFile{{Filename: "l.png", URL: "/l.png", Type: models.BrandFileLogo, StoragePath: "p"}}
	_, _, err := svc.SyncBrand(context.Background(), "acme", "Acme", files)
	require.NoError(t, err)

	brand, err := docRepo.GetBrand(context.Background(), "acme")
	require.NoError(t, err)
	require.NotNil(t, brand)

	doc, err := docRepo.GetDocument(context.Background())
	require.NoError(t, err)
	require.Nil(t, doc)
}

func TestListBrandsUnconfigured(t *testing.T) {
	t.Parallel()

	svc := services.NewBrandService(memory.NewDocumentRepository(), memory.NewObjectRepository(false), storagePrefix)

	brands, err := svc.ListBrands(context.Background())
	require.NoError(t, err)
	require.Empty(t, brands)
}

func TestListBrandsFromConfigObjects(t *testing.T) {
	t.Parallel()

	objRepo := memory.NewObjectRepository(true)
	ctx := context.Background()
	_, err := objRepo.Put(ctx, "brand-assets/configs/config_acme.json", []byte(`{"brand":{"name":"Acme Bikes"}}`), "application/json")
	require.NoError(t, err)
	// No brand.name: the brand code is the fallback name.
	_, err = objRepo.Put(ctx, "brand-assets/configs/config_velo.json", []byte(`{"theme":"dark"}`), "application/json")
	require.NoError(t, err)
	// Malformed JSON: logged and skipped, the listing still succeeds.
	_, err = objRepo.Put(ctx, "brand-assets/configs/config_broken.json", []byte(`{not json`), "application/json")
	require.NoError(t, err)
	// Not a config file: ignored.
	_, err = objRepo.Put(ctx, "brand-assets/configs/readme.txt", []byte("hi"), "text/plain")
	require.NoError(t, err)

	svc := services.NewBrandService(memory.NewDocumentRepository(), objRepo, storagePrefix)

	brands, err := svc.ListBrands(ctx)
	require.NoError(t, err)
	require.Len(t, brands, 2)
	require.Equal(t, "acme", brands[0].BrandCode)
	require.Equal(t, "Acme Bikes", brands[0].BrandName)
	require.Equal(t, "velo", brands[1].BrandCode)
	require.Equal(t, "velo", brands[1].BrandName)
	require.False(t, brands[0].CreatedAt.IsZero())
}

func TestUploadBrandFile(t *testing.T) {
	t.Parallel()

	objRepo := memory.NewObjectRepository(true)
	svc := services.NewBrandService(memory.NewDocumentRepository(), objRepo, storagePrefix)

	object, err := svc.UploadBrandFile(context.Background(), "acme", models.BrandFileLogo, "acme.png", []byte{1, 2, 3}, "image/png")
	require.NoError(t, err)
	require.Equal(t, "brand-assets/logos/acme.png", object.Path)
	require.Equal(t, int64(3), object.SizeBytes)

	_, err = svc.UploadBrandFile(context.Background(), "acme", "archive", "a.zip", nil, "application/zip")
	require.ErrorIs(t, err, services.ErrMissingField)
}
