package reconcile

import (
	"github.com/brandforge/demokit-backend/internal/models"
)

// ModelAliases maps known alternate spellings of model category values to
// their canonical form.
var ModelAliases = map[string]string{
	"E-Bike": "eBike",
}

// NormalizeModelNames rewrites alternate model spellings to their canonical
// form across assets, messages and the model filter list. It returns the
// number of fields changed.
func NormalizeModelNames(doc *models.ConfigDocument, aliases map[string]string) int {
	changed := 0

	for i := range doc.Assets {
		if canonical, ok := aliases[doc.Assets[i].Model]; ok {
			doc.Assets[i].Model = canonical
			changed++
		}
	}
	for i := range doc.Messages {
		if canonical, ok := aliases[doc.Messages[i].Model]; ok {
			doc.Messages[i].Model = canonical
			changed++
		}
	}
	for i, model := range doc.FilterOptions.Models {
		if canonical, ok := aliases[model]; ok {
			doc.FilterOptions.Models[i] = canonical
			changed++
		}
	}

	return changed
}
