package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/brandforge/demokit-backend/internal/bootstrap"
	"github.com/brandforge/demokit-backend/internal/models"
	"github.com/brandforge/demokit-backend/internal/repositories"
	"github.com/yuin/goldmark"
)

// DocumentServiceImpl implements DocumentService
type DocumentServiceImpl struct {
	docRepo       repositories.DocumentRepository
	bootstrapPath string
	autoSeed      bool
	markdown      goldmark.Markdown
}

// NewDocumentService creates a new DocumentService. When autoSeed is off (the
// default), a cold store is never written from the bootstrap file; first
// write stays with the reseed tool.
func NewDocumentService(docRepo repositories.DocumentRepository, bootstrapPath string, autoSeed bool) DocumentService {
	return &DocumentServiceImpl{
		docRepo:       docRepo,
		bootstrapPath: bootstrapPath,
		autoSeed:      autoSeed,
		markdown:      goldmark.New(),
	}
}

// GetDocument returns the configuration document from the store, falling back
// to the bundled bootstrap file when the store holds no document yet.
func (s *DocumentServiceImpl) GetDocument(ctx context.Context) (*models.ConfigDocument, error) {
	doc, err := s.docRepo.GetDocument(ctx)
	if err != nil {
		return nil, err
	}
	if doc != nil {
		return doc, nil
	}

	doc, err = bootstrap.Load(s.bootstrapPath)
	if err != nil {
		return nil, err
	}
	if s.autoSeed {
		if seedErr := s.docRepo.SetDocument(ctx, doc); seedErr != nil {
			log.Printf("Warning: failed to seed store from bootstrap document: %v", seedErr)
		}
	}
	return doc, nil
}

// ReplaceDocument overwrites the whole configuration document and returns the
// saved version
func (s *DocumentServiceImpl) ReplaceDocument(ctx context.Context, doc *models.ConfigDocument, modifiedBy string) (*models.ConfigDocument, error) {
	doc.Metadata.Touch(modifiedBy)
	doc.Metadata.Source = models.SourceStore
	if err := s.docRepo.SetDocument(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// UpsertGuide updates the guide with the given id, or appends a new one when
// absent. The patch is shallow-merged over the existing guide; patch fields
// win on conflict but the id is pinned regardless of what the patch says.
func (s *DocumentServiceImpl) UpsertGuide(ctx context.Context, id string, patch map[string]interface{}, modifiedBy string) (*models.Guide, error) {
	doc, err := s.GetDocument(ctx)
	if err != nil {
		return nil, err
	}

	existing := models.Guide{ID: id}
	if idx := indexByID(doc.Guides, id, func(g models.Guide) string { return g.ID }); idx >= 0 {
		existing = doc.Guides[idx]
	}
	merged, err := mergeGuide(existing, patch)
	if err != nil {
		return nil, err
	}

	var found bool
	doc.Guides, found = replaceByID(doc.Guides, id, func(g models.Guide) string { return g.ID }, merged)
	if !found {
		doc.Guides = append(doc.Guides, merged)
	}

	doc.Metadata.Touch(modifiedBy)
	doc.Metadata.Source = models.SourceStore
	if err := s.docRepo.SetDocument(ctx, doc); err != nil {
		return nil, err
	}
	return &merged, nil
}

// UpdateMessage replaces the message with the given id in full. Unlike
// guides, messages are never auto-created: a missing id or a missing document
// fails with ErrNotFound and the store is left untouched.
func (s *DocumentServiceImpl) UpdateMessage(ctx context.Context, id string, message models.Message, modifiedBy string) (*models.ConfigDocument, error) {
	doc, err := s.docRepo.GetDocument(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("document: %w", ErrNotFound)
	}

	message.ID = id
	var found bool
	doc.Messages, found = replaceByID(doc.Messages, id, func(m models.Message) string { return m.ID }, message)
	if !found {
		return nil, fmt.Errorf("message %q: %w", id, ErrNotFound)
	}

	doc.Metadata.Touch(modifiedBy)
	doc.Metadata.Source = models.SourceStore
	if err := s.docRepo.SetDocument(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// RenderMessage renders the markdown content of the message with the given id
// to HTML
func (s *DocumentServiceImpl) RenderMessage(ctx context.Context, id string) (string, error) {
	doc, err := s.GetDocument(ctx)
	if err != nil {
		return "", err
	}
	idx := indexByID(doc.Messages, id, func(m models.Message) string { return m.ID })
	if idx < 0 {
		return "", fmt.Errorf("message %q: %w", id, ErrNotFound)
	}

	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(doc.Messages[idx].Content), &buf); err != nil {
		return "", fmt.Errorf("failed to render message %q: %w", id, err)
	}
	return buf.String(), nil
}

// indexByID linear-scans a collection for the element with the given id
func indexByID[T any](items []T, id string, idOf func(T) string) int {
	for i := range items {
		if idOf(items[i]) == id {
			return i
		}
	}
	return -1
}

// replaceByID replaces the element with the given id in place, reporting
// whether it was found
func replaceByID[T any](items []T, id string, idOf func(T) string, repl T) ([]T, bool) {
	idx := indexByID(items, id, idOf)
	if idx < 0 {
		return items, false
	}
	items[idx] = repl
	return items, true
}

// mergeGuide shallow-merges a patch over an existing guide through its JSON
// representation, pinning the id
func mergeGuide(existing models.Guide, patch map[string]interface{}) (models.Guide, error) {
	raw, err := json.Marshal(existing)
	if err != nil {
		return models.Guide{}, err
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.Guide{}, err
	}
	for key, value := range patch {
		fields[key] = value
	}
	fields["id"] = existing.ID

	raw, err = json.Marshal(fields)
	if err != nil {
		return models.Guide{}, err
	}
	var merged models.Guide
	if err := json.Unmarshal(raw, &merged); err != nil {
		return models.Guide{}, fmt.Errorf("invalid guide patch: %w", err)
	}
	return merged, nil
}
