package models

import (
	"time"
)

// StoredObject describes one binary object in the brand asset store
type StoredObject struct {
	Path       string    `bson:"path" json:"path"`
	URL        string    `bson:"url" json:"url"`
	SizeBytes  int64     `bson:"sizeBytes" json:"sizeBytes"`
	UploadedAt time.Time `bson:"uploadedAt" json:"uploadedAt"`
}
