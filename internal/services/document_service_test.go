package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/brandforge/demokit-backend/internal/models"
	"github.com/brandforge/demokit-backend/internal/repositories/memory"
	"github.com/brandforge/demokit-backend/internal/services"
	"github.com/stretchr/testify/require"
)

func seedDocument(t *testing.T, repo *memory.DocumentRepository) *models.ConfigDocument {
	t.Helper()
	doc := &models.ConfigDocument{
		Metadata: models.Metadata{Version: 3, ModifiedBy: "seed", Source: models.SourceStore},
		Messages: []models.Message{
			{ID: "m1", Title: "Launch", Content: "The **eBike** is here.", Channel: "Email"},
		},
		Guides: []models.Guide{
			{ID: "g1", Title: "Getting started", Type: "pdf", URL: "/assets/guides/start.pdf"},
		},
	}
	require.NoError(t, repo.SetDocument(context.Background(), doc))
	return doc
}

func writeBootstrap(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	raw := []byte(`{"metadata":{"version":1,"modifiedBy":"seed","source":"file"},"isDemo":true,"messages":[{"id":"m9","title":"Bootstrap","channel":"Email"}]}`)
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestGetDocumentFallsBackToBootstrap(t *testing.T) {
	t.Parallel()

	repo := memory.NewDocumentRepository()
	path := writeBootstrap(t)
	svc := services.NewDocumentService(repo, path, false)

	doc, err := svc.GetDocument(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.SourceFile, doc.Metadata.Source)
	require.Equal(t, "m9", doc.Messages[0].ID)

	// Auto-seed is off: the store must stay empty after the fallback read.
	stored, err := repo.GetDocument(context.Background())
	require.NoError(t, err)
	require.Nil(t, stored)
}

func TestGetDocumentAutoSeed(t *testing.T) {
	t.Parallel()

	repo := memory.NewDocumentRepository()
	path := writeBootstrap(t)
	svc := services.NewDocumentService(repo, path, true)

	_, err := svc.GetDocument(context.Background())
	require.NoError(t, err)

	stored, err := repo.GetDocument(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, "m9", stored.Messages[0].ID)
}

func TestUpsertGuideMergesAndPinsID(t *testing.T) {
	t.Parallel()

	repo := memory.NewDocumentRepository()
	seedDocument(t, repo)
	svc := services.NewDocumentService(repo, "unused.json", false)

	patch := map[string]interface{}{
		"title": "Getting started (updated)",
		"id":    "hijacked",
	}
	guide, err := svc.UpsertGuide(context.Background(), "g1", patch, "test")
	require.NoError(t, err)

	// Patch wins on conflicts but the id stays pinned; unpatched fields survive.
	require.Equal(t, "g1", guide.ID)
	require.Equal(t, "Getting started (updated)", guide.Title)
	require.Equal(t, "pdf", guide.Type)
	require.Equal(t, "/assets/guides/start.pdf", guide.URL)

	stored, err := repo.GetDocument(context.Background())
	require.NoError(t, err)
	require.Len(t, stored.Guides, 1)
	require.Equal(t, *guide, stored.Guides[0])
	require.Equal(t, 4, stored.Metadata.Version)
	require.Equal(t, "test", stored.Metadata.ModifiedBy)
}

func TestUpsertGuideAppendsWhenAbsent(t *testing.T) {
	t.Parallel()

	repo := memory.NewDocumentRepository()
	seedDocument(t, repo)
	svc := services.NewDocumentService(repo, "unused.json", false)

	guide, err := svc.UpsertGuide(context.Background(), "g2", map[string]interface{}{"title": "New guide"}, "test")
	require.NoError(t, err)
	require.Equal(t, "g2", guide.ID)
	require.Equal(t, "New guide", guide.Title)

	stored, err := repo.GetDocument(context.Background())
	require.NoError(t, err)
	require.Len(t, stored.Guides, 2)
	require.Equal(t, "g2", stored.Guides[1].ID)
}

func TestUpsertGuideStampsStoreSource(t *testing.T) {
	t.Parallel()

	// Cold store, document read from the bootstrap file (source "file"). The
	// mutation writes to the store, so the stored copy is stamped "store".
	repo := memory.NewDocumentRepository()
	path := writeBootstrap(t)
	svc := services.NewDocumentService(repo, path, false)

	_, err := svc.UpsertGuide(context.Background(), "g1", map[string]interface{}{"title": "New"}, "editor")
	require.NoError(t, err)

	stored, err := repo.GetDocument(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.SourceStore, stored.Metadata.Source)
	require.Equal(t, 2, stored.Metadata.Version)
}

func TestUpdateMessageReplacesExisting(t *testing.T) {
	t.Parallel()

	repo := memory.NewDocumentRepository()
	seedDocument(t, repo)
	svc := services.NewDocumentService(repo, "unused.json", false)

	replacement := models.Message{ID: "ignored", Title: "Launch v2", Content: "New copy.", Channel: "SMS"}
	doc, err := svc.UpdateMessage(context.Background(), "m1", replacement, "editor")
	require.NoError(t, err)

	require.Len(t, doc.Messages, 1)
	require.Equal(t, "m1", doc.Messages[0].ID)
	require.Equal(t, "Launch v2", doc.Messages[0].Title)
	require.Equal(t, "SMS", doc.Messages[0].Channel)
	require.Equal(t, 4, doc.Metadata.Version)
}

func TestUpdateMessageNotFoundLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	repo := memory.NewDocumentRepository()
	before := seedDocument(t, repo)
	svc := services.NewDocumentService(repo, "unused.json", false)

	_, err := svc.UpdateMessage(context.Background(), "missing", models.Message{Title: "x"}, "editor")
	require.ErrorIs(t, err, services.ErrNotFound)

	stored, err := repo.GetDocument(context.Background())
	require.NoError(t, err)
	require.Equal(t, before.Metadata.Version, stored.Metadata.Version)
	require.Equal(t, before.Messages, stored.Messages)
}

func TestUpdateMessageMissingDocument(t *testing.T) {
	t.Parallel()

	repo := memory.NewDocumentRepository()
	svc := services.NewDocumentService(repo, "unused.json", false)

	_, err := svc.UpdateMessage(context.Background(), "m1", models.Message{}, "editor")
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestRenderMessage(t *testing.T) {
	t.Parallel()

	repo := memory.NewDocumentRepository()
	seedDocument(t, repo)
	svc := services.NewDocumentService(repo, "unused.json", false)

	html, err := svc.RenderMessage(context.Background(), "m1")
	require.NoError(t, err)
	require.Contains(t, html, "<strong>eBike</strong>")

	_, err = svc.RenderMessage(context.Background(), "missing")
	require.ErrorIs(t, err, services.ErrNotFound)
}
