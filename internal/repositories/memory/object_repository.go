package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/brandforge/demokit-backend/internal/models"
)

type memoryObject struct {
	content    []byte
	uploadedAt time.Time
}

// ObjectRepository is an in-memory repositories.ObjectRepository
type ObjectRepository struct {
	mu         sync.RWMutex
	configured bool
	objects    map[string]memoryObject
}

// NewObjectRepository creates a new in-memory ObjectRepository. Pass
// configured=false to simulate a deployment without a backing object store.
func NewObjectRepository(configured bool) *ObjectRepository {
	return &ObjectRepository{
		configured: configured,
		objects:    make(map[string]memoryObject),
	}
}

// Configured reports whether the simulated object store is available
func (r *ObjectRepository) Configured() bool {
	return r.configured
}

// List enumerates objects whose path starts with the given prefix, in path order
func (r *ObjectRepository) List(ctx context.Context, prefix string) ([]models.StoredObject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	objects := []models.StoredObject{}
	for path, obj := range r.objects {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		objects = append(objects, models.StoredObject{
			Path:       path,
			URL:        "memory://" + path,
			SizeBytes:  int64(len(obj.content)),
			UploadedAt: obj.uploadedAt,
		})
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Path < objects[j].Path })
	return objects, nil
}

// Fetch returns the raw content of the object at the given path
func (r *ObjectRepository) Fetch(ctx context.Context, path string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	obj, ok := r.objects[path]
	if !ok {
		return nil, fmt.Errorf("object %q not found", path)
	}
	content := make([]byte, len(obj.content))
	copy(content, obj.content)
	return content, nil
}

// Put stores content at the given path, overwriting any existing object
func (r *ObjectRepository) Put(ctx context.Context, path string, content []byte, contentType string) (*models.StoredObject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]byte, len(content))
	copy(stored, content)
	now := time.Now().UTC()
	r.objects[path] = memoryObject{content: stored, uploadedAt: now}
	return &models.StoredObject{
		Path:       path,
		URL:        "memory://" + path,
		SizeBytes:  int64(len(content)),
		UploadedAt: now,
	}, nil
}
