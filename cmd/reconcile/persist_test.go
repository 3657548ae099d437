package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/brandforge/demokit-backend/internal/models"
	"github.com/brandforge/demokit-backend/internal/repositories/memory"
	"github.com/stretchr/testify/require"
)

func readRawDocument(t *testing.T, path string) models.ConfigDocument {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc models.ConfigDocument
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func TestPersistDocumentWritesFileAndStore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	repo := memory.NewDocumentRepository()
	doc := &models.ConfigDocument{
		Metadata: models.Metadata{Version: 3, Source: models.SourceFile},
		Messages: []models.Message{{ID: "m1", Title: "Launch", Channel: "Email"}},
	}

	require.NoError(t, persistDocument(context.Background(), "reconcile:dedupe", doc, path, repo))

	// One version bump covers both destinations.
	onDisk := readRawDocument(t, path)
	require.Equal(t, 4, onDisk.Metadata.Version)
	require.Equal(t, "reconcile:dedupe", onDisk.Metadata.ModifiedBy)
	require.Equal(t, models.SourceFile, onDisk.Metadata.Source)

	stored, err := repo.GetDocument(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, 4, stored.Metadata.Version)
	require.Equal(t, models.SourceStore, stored.Metadata.Source)
	require.Equal(t, onDisk.Messages, stored.Messages)
}

func TestPersistDocumentFileOnly(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	doc := &models.ConfigDocument{Metadata: models.Metadata{Version: 1}}

	require.NoError(t, persistDocument(context.Background(), "reconcile:channels", doc, path, nil))

	onDisk := readRawDocument(t, path)
	require.Equal(t, 2, onDisk.Metadata.Version)
	require.Equal(t, models.SourceFile, onDisk.Metadata.Source)
}

func TestStoreWriteIsOnByDefault(t *testing.T) {
	flags := newRootCmd().PersistentFlags()

	noStore := flags.Lookup("no-store")
	require.NotNil(t, noStore)
	require.Equal(t, "false", noStore.DefValue)

	dryRun := flags.Lookup("dry-run")
	require.NotNil(t, dryRun)
	require.Equal(t, "false", dryRun.DefValue)
}
