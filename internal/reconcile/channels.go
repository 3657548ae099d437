package reconcile

import (
	"sort"

	"github.com/brandforge/demokit-backend/internal/models"
)

// DeriveChannels recomputes filterOptions.channels from the distinct channel
// values of the document's messages: the synthetic "ALL" entry first, the
// remainder sorted lexicographically. It depends on nothing but the messages.
func DeriveChannels(doc *models.ConfigDocument) {
	seen := make(map[string]bool)
	var channels []string
	for _, msg := range doc.Messages {
		if msg.Channel == "" || msg.Channel == models.ChannelAll || seen[msg.Channel] {
			continue
		}
		seen[msg.Channel] = true
		channels = append(channels, msg.Channel)
	}
	sort.Strings(channels)

	doc.FilterOptions.Channels = append([]string{models.ChannelAll}, channels...)
}
