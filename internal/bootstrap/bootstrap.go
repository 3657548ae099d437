// Package bootstrap reads and writes the bundled static configuration
// document. It serves as a read-only fallback when the store holds no
// document, and as the local working copy for the reconcile tool.
package bootstrap

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/brandforge/demokit-backend/internal/models"
)

// Load reads the bootstrap configuration document from the given path
func Load(path string) (*models.ConfigDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bootstrap document %q: %w", path, err)
	}

	var doc models.ConfigDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse bootstrap document %q: %w", path, err)
	}
	doc.Metadata.Source = models.SourceFile
	return &doc, nil
}

// Save writes the configuration document back to the given path
func Save(path string, doc *models.ConfigDocument) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write bootstrap document %q: %w", path, err)
	}
	return nil
}
