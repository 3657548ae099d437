package reconcile

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/brandforge/demokit-backend/internal/models"
)

// Asset file names follow a fixed underscore-delimited grammar:
//
//	{phase}_{type}_{model}_{description}_{textOverlay}_{orientation}_{dimensions}.{ext}
//
// e.g. phase1_video_eBike_full-video_no-text_landscape_1920x1080.mp4
// ParseAssetFilename is the only place this grammar is interpreted.

// AssetFileInfo is the structured result of parsing a conventional asset file name
type AssetFileInfo struct {
	Phase       string
	Type        string
	Model       string
	Description string
	TextOverlay string
	Orientation string
	Dimensions  string
	Extension   string
	Title       string
}

var dimensionsRe = regexp.MustCompile(`^\d+x\d+$`)

// specialTitles overrides title-casing for description tokens whose hyphens
// are part of the phrase, not word separators.
var specialTitles = map[string]string{
	"full-video": "Full Video",
	"no-riding":  "No Riding",
	"riding":     "Riding",
}

// ParseAssetFilename parses a conventional asset file name into its fields.
// It returns an error for any name that does not follow the grammar; callers
// are expected to skip such files, never to panic.
func ParseAssetFilename(name string) (*AssetFileInfo, error) {
	base := path.Base(name)
	ext := path.Ext(base)
	if ext == "" {
		return nil, fmt.Errorf("file name %q has no extension", name)
	}
	stem := strings.TrimSuffix(base, ext)

	fields := strings.Split(stem, "_")
	if len(fields) != 7 {
		return nil, fmt.Errorf("file name %q has %d fields, want 7", name, len(fields))
	}

	phase, err := parsePhase(fields[0])
	if err != nil {
		return nil, fmt.Errorf("file name %q: %w", name, err)
	}
	assetType, err := parseAssetType(fields[1])
	if err != nil {
		return nil, fmt.Errorf("file name %q: %w", name, err)
	}

	overlay := strings.ToLower(fields[4])
	if overlay != models.OverlayText && overlay != models.OverlayNoText {
		return nil, fmt.Errorf("file name %q has invalid text overlay %q", name, fields[4])
	}

	orientation := strings.ToLower(fields[5])
	switch orientation {
	case models.OrientationLandscape, models.OrientationPortrait, models.OrientationSquare:
	default:
		return nil, fmt.Errorf("file name %q has invalid orientation %q", name, fields[5])
	}

	if !dimensionsRe.MatchString(fields[6]) {
		return nil, fmt.Errorf("file name %q has invalid dimensions %q", name, fields[6])
	}

	description := fields[3]
	return &AssetFileInfo{
		Phase:       phase,
		Type:        assetType,
		Model:       fields[2],
		Description: description,
		TextOverlay: overlay,
		Orientation: orientation,
		Dimensions:  fields[6],
		Extension:   strings.TrimPrefix(ext, "."),
		Title:       titleForDescription(description),
	}, nil
}

func parsePhase(token string) (string, error) {
	switch strings.ToLower(strings.ReplaceAll(token, "-", "")) {
	case "phase1":
		return models.PhaseOne, nil
	case "phase2":
		return models.PhaseTwo, nil
	}
	return "", fmt.Errorf("invalid phase %q", token)
}

func parseAssetType(token string) (string, error) {
	switch strings.ToLower(token) {
	case "static":
		return models.AssetTypeStatic, nil
	case "video":
		return models.AssetTypeVideo, nil
	}
	return "", fmt.Errorf("invalid asset type %q", token)
}

// titleForDescription derives the human-readable title from a description
// token: special-cased phrases first, otherwise hyphens become spaces and
// each word is capitalized.
func titleForDescription(description string) string {
	if title, ok := specialTitles[strings.ToLower(description)]; ok {
		return title
	}
	words := strings.Split(strings.ReplaceAll(description, "-", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
