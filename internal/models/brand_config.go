package models

import (
	"time"
)

// Brand file type values
const (
	BrandFileLocale = "locale"
	BrandFileConfig = "config"
	BrandFileLogo   = "logo"
)

// BrandFile describes one uploaded file belonging to a brand bundle
type BrandFile struct {
	Filename    string `bson:"filename" json:"filename"`
	URL         string `bson:"url" json:"url"`
	Type        string `bson:"type" json:"type"` // locale, config, logo
	StoragePath string `bson:"storagePath" json:"storagePath"`
}

// BrandConfig represents a named tenant configuration bundle. It lives in the
// main document's brands array and is mirrored under its own store key.
type BrandConfig struct {
	BrandCode string      `bson:"brandCode" json:"brandCode"`
	BrandName string      `bson:"brandName" json:"brandName"`
	Files     []BrandFile `bson:"files" json:"files"`
	CreatedAt time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// FileByType returns the first file of the given type, or nil
func (b *BrandConfig) FileByType(fileType string) *BrandFile {
	for i := range b.Files {
		if b.Files[i].Type == fileType {
			return &b.Files[i]
		}
	}
	return nil
}

// FrontendBrandConfig is the flattened projection served to the frontend
// under its own store key. URLs are absent when the brand bundle has no file
// of the matching type.
type FrontendBrandConfig struct {
	BrandCode string    `bson:"brandCode" json:"brandCode"`
	BrandName string    `bson:"brandName" json:"brandName"`
	LogoURL   string    `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	LocaleURL string    `bson:"localeUrl,omitempty" json:"localeUrl,omitempty"`
	ConfigURL string    `bson:"configUrl,omitempty" json:"configUrl,omitempty"`
	IsActive  bool      `bson:"isActive" json:"isActive"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BrandSummary is one row of the brand listing derived from the object store
type BrandSummary struct {
	BrandCode string    `bson:"brandCode" json:"brandCode"`
	BrandName string    `bson:"brandName" json:"brandName"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
