package reconcile

import (
	"github.com/brandforge/demokit-backend/internal/models"
)

// ApplyRenames sets newAssetName on every asset whose originalFileName
// appears in the rename table. Returns the number of assets renamed.
func ApplyRenames(doc *models.ConfigDocument, renames map[string]string) int {
	renamed := 0
	for i := range doc.Assets {
		newName, ok := renames[doc.Assets[i].OriginalFileName]
		if !ok || doc.Assets[i].NewAssetName == newName {
			continue
		}
		doc.Assets[i].NewAssetName = newName
		renamed++
	}
	return renamed
}
