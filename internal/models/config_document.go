package models

import (
	"time"
)

// Document source values for Metadata.Source
const (
	SourceFile  = "file"
	SourceStore = "store"
)

// Asset phase values
const (
	PhaseOne = "PHASE 1"
	PhaseTwo = "PHASE 2"
)

// Asset type values
const (
	AssetTypeStatic = "STATIC"
	AssetTypeVideo  = "VIDEO"
)

// Asset text overlay values
const (
	OverlayText   = "text"
	OverlayNoText = "no-text"
)

// Asset orientation values
const (
	OrientationLandscape = "landscape"
	OrientationPortrait  = "portrait"
	OrientationSquare    = "square"
)

// ChannelAll is the synthetic catch-all entry kept first in the channel filter
const ChannelAll = "ALL"

// ConfigDocument is the whole demo toolkit configuration document. It is
// stored as a single JSON value under a fixed key and always written back in
// full; there is no partial-update primitive.
type ConfigDocument struct {
	Metadata      Metadata        `bson:"metadata" json:"metadata"`
	IsDemo        bool            `bson:"isDemo" json:"isDemo"`
	DemoNotice    string          `bson:"demoNotice" json:"demoNotice"`
	Brand         *Brand          `bson:"brand,omitempty" json:"brand,omitempty"` // legacy single-tenant mode
	Assets        []Asset         `bson:"assets" json:"assets"`
	Messages      []Message       `bson:"messages" json:"messages"`
	Guides        []Guide         `bson:"guides" json:"guides"`
	JourneySteps  []JourneyStep   `bson:"journeySteps" json:"journeySteps"`
	FilterOptions FilterOptions   `bson:"filterOptions" json:"filterOptions"`
	Brands        []BrandConfig   `bson:"brands,omitempty" json:"brands,omitempty"`
}

// Metadata tracks write provenance for the configuration document
type Metadata struct {
	LastModified time.Time `bson:"lastModified" json:"lastModified"`
	ModifiedBy   string    `bson:"modifiedBy" json:"modifiedBy"`
	Version      int       `bson:"version" json:"version"`
	Source       string    `bson:"source" json:"source"` // file, store
}

// Touch records a successful mutation: the version is bumped by one and the
// modification stamp refreshed. Versions only ever go up; they are not used
// for optimistic concurrency (last writer wins). Source is left alone; the
// writer stamps it per destination.
func (m *Metadata) Touch(modifiedBy string) {
	m.Version++
	m.LastModified = time.Now().UTC()
	m.ModifiedBy = modifiedBy
}

// Brand holds optional single-brand presentation metadata
type Brand struct {
	Name    string `bson:"name" json:"name"`
	Logo    string `bson:"logo" json:"logo"`
	LogoAlt string `bson:"logoAlt" json:"logoAlt"`
}

// Asset represents one marketing asset (image or video)
type Asset struct {
	ID               string `bson:"id" json:"id"`
	Title            string `bson:"title" json:"title"`
	Phase            string `bson:"phase" json:"phase"` // PHASE 1, PHASE 2
	Type             string `bson:"type" json:"type"`   // STATIC, VIDEO
	Model            string `bson:"model" json:"model"`
	Description      string `bson:"description" json:"description"`
	TextOverlay      string `bson:"textOverlay" json:"textOverlay"` // text, no-text
	Orientation      string `bson:"orientation" json:"orientation"` // landscape, portrait, square
	Dimensions       string `bson:"dimensions" json:"dimensions"`
	FileExtension    string `bson:"fileExtension" json:"fileExtension"`
	OriginalFileName string `bson:"originalFileName" json:"originalFileName"`
	NewAssetName     string `bson:"newAssetName" json:"newAssetName"`
	Thumbnail        string `bson:"thumbnail" json:"thumbnail"`
	URL              string `bson:"url" json:"url"`
}

// Message represents one marketing message with markdown content
type Message struct {
	ID      string `bson:"id" json:"id"`
	Title   string `bson:"title" json:"title"`
	Content string `bson:"content" json:"content"` // markdown
	Channel string `bson:"channel" json:"channel"`
	Type    string `bson:"type" json:"type"`
	Model   string `bson:"model" json:"model"`
	Date    string `bson:"date" json:"date"`
}

// Guide represents one how-to guide entry
type Guide struct {
	ID        string `bson:"id" json:"id"`
	Title     string `bson:"title" json:"title"`
	Type      string `bson:"type" json:"type"`
	Model     string `bson:"model" json:"model"`
	Thumbnail string `bson:"thumbnail" json:"thumbnail"`
	URL       string `bson:"url" json:"url"`
	Content   string `bson:"content,omitempty" json:"content,omitempty"`
	IconName  string `bson:"iconName,omitempty" json:"iconName,omitempty"`
}

// JourneyStep represents one step of the customer journey strip
type JourneyStep struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon" json:"icon"`
}

// FilterOptions holds the allowed filter values the frontend renders. The
// sets are derived from the collections above, not authoritative.
type FilterOptions struct {
	Phases      []string `bson:"phases" json:"phases"`
	Types       []string `bson:"types" json:"types"`
	Models      []string `bson:"models" json:"models"`
	Channels    []string `bson:"channels" json:"channels"`
	ActionTypes []string `bson:"actionTypes" json:"actionTypes"`
}
