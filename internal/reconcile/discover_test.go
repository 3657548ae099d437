package reconcile_test

import (
	"testing"

	"github.com/brandforge/demokit-backend/internal/models"
	"github.com/brandforge/demokit-backend/internal/reconcile"
	"github.com/stretchr/testify/require"
)

func TestDiscoverAssets(t *testing.T) {
	t.Parallel()

	doc := &models.ConfigDocument{
		Assets: []models.Asset{
			{ID: "a1", NewAssetName: "phase1_static_eBike_city_text_square_1080x1080.jpg"},
		},
	}
	listing := []models.StoredObject{
		// Already in the document: skipped.
		{Path: "phase1_static_eBike_city_text_square_1080x1080.jpg", URL: "/assets/phase1_static_eBike_city_text_square_1080x1080.jpg"},
		// New conventional file: synthesized.
		{Path: "phase2_video_eBike_riding_no-text_landscape_1920x1080.mp4", URL: "/assets/phase2_video_eBike_riding_no-text_landscape_1920x1080.mp4"},
		// Unconventional name: reported, skipped.
		{Path: "DSC_0001.jpg", URL: "/assets/DSC_0001.jpg"},
	}

	report := reconcile.DiscoverAssets(doc, listing)

	require.Len(t, report.Added, 1)
	require.Len(t, report.Skipped, 1)
	require.Len(t, doc.Assets, 2)

	added := doc.Assets[1]
	require.NotEmpty(t, added.ID)
	require.Equal(t, "Riding", added.Title)
	require.Equal(t, "PHASE 2", added.Phase)
	require.Equal(t, "VIDEO", added.Type)
	require.Equal(t, "eBike", added.Model)
	require.Equal(t, "no-text", added.TextOverlay)
	require.Equal(t, "landscape", added.Orientation)
	require.Equal(t, "1920x1080", added.Dimensions)
	require.Equal(t, "mp4", added.FileExtension)
	require.Equal(t, "phase2_video_eBike_riding_no-text_landscape_1920x1080.mp4", added.NewAssetName)
	require.Equal(t, "/assets/phase2_video_eBike_riding_no-text_landscape_1920x1080.mp4", added.URL)
	require.Equal(t, "/assets/phase2_video_eBike_riding_no-text_landscape_1920x1080.jpg", added.Thumbnail)
}

func TestDiscoverAssetsIdempotent(t *testing.T) {
	t.Parallel()

	doc := &models.ConfigDocument{}
	listing := []models.StoredObject{
		{Path: "phase1_video_eBike_riding_no-text_landscape_1920x1080.mp4", URL: "/assets/phase1_video_eBike_riding_no-text_landscape_1920x1080.mp4"},
	}

	first := reconcile.DiscoverAssets(doc, listing)
	require.Len(t, first.Added, 1)

	second := reconcile.DiscoverAssets(doc, listing)
	require.Empty(t, second.Added)
	require.Len(t, doc.Assets, 1)
}
