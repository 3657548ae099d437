package mongodb

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/brandforge/demokit-backend/internal/models"
	"github.com/brandforge/demokit-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ObjectRepository implements the repositories.ObjectRepository interface on
// top of a GridFS bucket. Object paths are stored as GridFS filenames; public
// URLs are synthesized from the configured base URL.
type ObjectRepository struct {
	bucket        *gridfs.Bucket
	publicBaseURL string
}

// NewObjectRepository creates a new ObjectRepository. A nil bucket means the
// object store is not configured; listings then degrade to empty results.
func NewObjectRepository(bucket *gridfs.Bucket, publicBaseURL string) repositories.ObjectRepository {
	return &ObjectRepository{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Configured reports whether a backing bucket is available
func (r *ObjectRepository) Configured() bool {
	return r.bucket != nil
}

// List enumerates objects whose path starts with the given prefix
func (r *ObjectRepository) List(ctx context.Context, prefix string) ([]models.StoredObject, error) {
	if r.bucket == nil {
		return []models.StoredObject{}, nil
	}
	r.applyDeadline(ctx)

	filter := bson.M{"filename": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix)}}
	cursor, err := r.bucket.Find(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects under %q: %w", prefix, err)
	}
	defer cursor.Close(ctx)

	var objects []models.StoredObject
	for cursor.Next(ctx) {
		var file struct {
			Filename   string    `bson:"filename"`
			Length     int64     `bson:"length"`
			UploadDate time.Time `bson:"uploadDate"`
		}
		if err := cursor.Decode(&file); err != nil {
			return nil, err
		}
		objects = append(objects, models.StoredObject{
			Path:       file.Filename,
			URL:        r.objectURL(file.Filename),
			SizeBytes:  file.Length,
			UploadedAt: file.UploadDate,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	if objects == nil {
		objects = []models.StoredObject{}
	}
	return objects, nil
}

// Fetch returns the raw content of the object at the given path
func (r *ObjectRepository) Fetch(ctx context.Context, path string) ([]byte, error) {
	if r.bucket == nil {
		return nil, fmt.Errorf("object store is not configured")
	}
	r.applyDeadline(ctx)

	var buf bytes.Buffer
	if _, err := r.bucket.DownloadToStreamByName(path, &buf); err != nil {
		return nil, fmt.Errorf("failed to fetch object %q: %w", path, err)
	}
	return buf.Bytes(), nil
}

// Put stores content at the given path, overwriting any existing object with
// the same path
func (r *ObjectRepository) Put(ctx context.Context, path string, content []byte, contentType string) (*models.StoredObject, error) {
	if r.bucket == nil {
		return nil, fmt.Errorf("object store is not configured")
	}
	r.applyDeadline(ctx)

	// GridFS keeps every revision of a filename; drop prior revisions so the
	// path behaves like an overwriting object store.
	if err := r.deleteByName(ctx, path); err != nil {
		return nil, err
	}

	opts := options.GridFSUpload().SetMetadata(bson.M{"contentType": contentType})
	if _, err := r.bucket.UploadFromStream(path, bytes.NewReader(content), opts); err != nil {
		return nil, fmt.Errorf("failed to store object %q: %w", path, err)
	}
	return &models.StoredObject{
		Path:       path,
		URL:        r.objectURL(path),
		SizeBytes:  int64(len(content)),
		UploadedAt: time.Now().UTC(),
	}, nil
}

// deleteByName removes all stored revisions of the given filename
func (r *ObjectRepository) deleteByName(ctx context.Context, path string) error {
	cursor, err := r.bucket.Find(bson.M{"filename": path})
	if err != nil {
		return fmt.Errorf("failed to look up object %q: %w", path, err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var file struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&file); err != nil {
			return err
		}
		if err := r.bucket.Delete(file.ID); err != nil {
			return fmt.Errorf("failed to delete object %q: %w", path, err)
		}
	}
	return cursor.Err()
}

// objectURL builds the public URL for an object path
func (r *ObjectRepository) objectURL(path string) string {
	if r.publicBaseURL == "" {
		return "/" + path
	}
	return r.publicBaseURL + "/" + path
}

// applyDeadline forwards a context deadline to the bucket, which does not
// take contexts on its stream operations
func (r *ObjectRepository) applyDeadline(ctx context.Context) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = r.bucket.SetReadDeadline(deadline)
		_ = r.bucket.SetWriteDeadline(deadline)
	}
}
