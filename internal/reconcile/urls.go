package reconcile

import (
	"path"

	"github.com/brandforge/demokit-backend/internal/models"
)

// URLReport summarizes a URL reconciliation pass
type URLReport struct {
	// Updated is the number of asset URLs rewritten to match the listing
	Updated int
	// Orphans lists the ids of assets whose file has no match in the
	// listing. Orphans are reported, never removed.
	Orphans []string
}

// urlBase returns the file base name of a URL or path, without its extension
func urlBase(url string) string {
	name := path.Base(url)
	return name[:len(name)-len(path.Ext(name))]
}

// ReconcileURLs cross-references every asset URL against an external listing
// of actual files. An asset whose base file name appears in the listing under
// a different path or extension gets its URL rewritten to the listed file; an
// asset with no match at all is reported as orphaned.
func ReconcileURLs(doc *models.ConfigDocument, listing []models.StoredObject) URLReport {
	byBase := make(map[string]models.StoredObject, len(listing))
	for _, obj := range listing {
		base := urlBase(obj.Path)
		if _, ok := byBase[base]; !ok {
			byBase[base] = obj
		}
	}

	var report URLReport
	for i := range doc.Assets {
		asset := &doc.Assets[i]
		if asset.URL == "" {
			continue
		}
		obj, ok := byBase[urlBase(asset.URL)]
		if !ok {
			report.Orphans = append(report.Orphans, asset.ID)
			continue
		}
		if obj.URL != asset.URL {
			asset.URL = obj.URL
			report.Updated++
		}
	}
	return report
}

// RepairThumbnails rewrites the thumbnail of every video asset whose
// thumbnail lives in a different directory than its URL, keeping only the
// thumbnail's file name and moving it next to the video. Returns the number
// of thumbnails rewritten.
func RepairThumbnails(doc *models.ConfigDocument) int {
	repaired := 0
	for i := range doc.Assets {
		asset := &doc.Assets[i]
		if asset.Type != models.AssetTypeVideo || asset.Thumbnail == "" || asset.URL == "" {
			continue
		}
		urlDir := path.Dir(asset.URL)
		if path.Dir(asset.Thumbnail) == urlDir {
			continue
		}
		asset.Thumbnail = urlDir + "/" + path.Base(asset.Thumbnail)
		repaired++
	}
	return repaired
}
