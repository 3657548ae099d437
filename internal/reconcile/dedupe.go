// Package reconcile holds the offline batch transforms that correct the
// configuration document against external listings. Every transform is a
// pure, idempotent rewrite of the in-memory document; persisting the result
// is the caller's job.
package reconcile

import (
	"strings"

	"github.com/brandforge/demokit-backend/internal/models"
)

// assetKey returns the composite identity used for duplicate detection:
// the renamed asset file when present, otherwise the concatenation of the
// descriptive fields.
func assetKey(a models.Asset) string {
	if a.NewAssetName != "" {
		return a.NewAssetName
	}
	return strings.Join([]string{
		a.Title,
		a.Model,
		a.Type,
		a.Phase,
		a.Description,
		a.TextOverlay,
		a.Orientation,
		a.Dimensions,
	}, "|")
}

// DedupeAssets removes duplicate assets from the document, keeping the first
// occurrence of each composite key in original order. The dropped records are
// returned so the caller can report them.
func DedupeAssets(doc *models.ConfigDocument) []models.Asset {
	seen := make(map[string]bool, len(doc.Assets))
	kept := make([]models.Asset, 0, len(doc.Assets))
	var dropped []models.Asset

	for _, asset := range doc.Assets {
		key := assetKey(asset)
		if seen[key] {
			dropped = append(dropped, asset)
			continue
		}
		seen[key] = true
		kept = append(kept, asset)
	}

	doc.Assets = kept
	return dropped
}
