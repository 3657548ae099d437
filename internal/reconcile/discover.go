package reconcile

import (
	"path"
	"strings"

	"github.com/brandforge/demokit-backend/internal/models"
	"github.com/google/uuid"
)

// DiscoverReport summarizes an asset discovery pass
type DiscoverReport struct {
	// Added holds the assets synthesized for files missing from the document
	Added []models.Asset
	// Skipped lists files that did not follow the naming convention,
	// with the parse error text
	Skipped []string
}

// DiscoverAssets synthesizes an asset record for every listed file that does
// not appear in the document, using the conventional file name grammar. Files
// that fail to parse are reported and skipped; the pass never fails as a
// whole. The new assets are appended to the document in listing order.
func DiscoverAssets(doc *models.ConfigDocument, listing []models.StoredObject) DiscoverReport {
	known := make(map[string]bool, len(doc.Assets))
	for _, asset := range doc.Assets {
		if asset.NewAssetName != "" {
			known[asset.NewAssetName] = true
		}
		if asset.URL != "" {
			known[path.Base(asset.URL)] = true
		}
	}

	var report DiscoverReport
	for _, obj := range listing {
		name := path.Base(obj.Path)
		if known[name] {
			continue
		}
		info, err := ParseAssetFilename(name)
		if err != nil {
			report.Skipped = append(report.Skipped, err.Error())
			continue
		}

		asset := models.Asset{
			ID:               uuid.NewString(),
			Title:            info.Title,
			Phase:            info.Phase,
			Type:             info.Type,
			Model:            info.Model,
			Description:      info.Description,
			TextOverlay:      info.TextOverlay,
			Orientation:      info.Orientation,
			Dimensions:       info.Dimensions,
			FileExtension:    info.Extension,
			OriginalFileName: name,
			NewAssetName:     name,
			Thumbnail:        thumbnailFor(obj.URL, info.Type),
			URL:              obj.URL,
		}
		doc.Assets = append(doc.Assets, asset)
		known[name] = true
		report.Added = append(report.Added, asset)
	}
	return report
}

// thumbnailFor derives a thumbnail URL for a discovered asset. Static assets
// are their own thumbnail; videos get a sibling jpg next to the file.
func thumbnailFor(url, assetType string) string {
	if assetType != models.AssetTypeVideo {
		return url
	}
	return strings.TrimSuffix(url, path.Ext(url)) + ".jpg"
}
