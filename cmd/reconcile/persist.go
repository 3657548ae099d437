package main

import (
	"context"
	"log"

	"github.com/brandforge/demokit-backend/internal/bootstrap"
	"github.com/brandforge/demokit-backend/internal/models"
	"github.com/brandforge/demokit-backend/internal/repositories"
)

// persistDocument bumps the document version once and writes the result to
// the local file and, when a repository is given, to the document store. Each
// copy carries the source it was written to.
func persistDocument(ctx context.Context, tag string, doc *models.ConfigDocument, path string, repo repositories.DocumentRepository) error {
	doc.Metadata.Touch(tag)

	doc.Metadata.Source = models.SourceFile
	if err := bootstrap.Save(path, doc); err != nil {
		return err
	}
	log.Printf("Wrote %s (version %d)", path, doc.Metadata.Version)

	if repo == nil {
		return nil
	}
	doc.Metadata.Source = models.SourceStore
	if err := repo.SetDocument(ctx, doc); err != nil {
		return err
	}
	log.Printf("Wrote document to store (version %d)", doc.Metadata.Version)
	return nil
}
