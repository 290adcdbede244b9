// internal/upload/fields.go
//
// Per-field manager registry with the wizard's stock field set.
//
// Field constraints follow the branding and template forms: up to five
// 2MB images for logos and marketing images, one video, one audio
// track, and up to five generic attachments.  Fields are fully
// independent; a failure or busy state in one never touches another.

package upload

import (
	"sync"
	"time"
)

// DefaultSettle is the visual "deleting…" delay before a removed file
// leaves the list.
const DefaultSettle = 1 * time.Second

const megabyte = 1 << 20

// Fields is a registry of named managers sharing one store.
type Fields struct {
	mu       sync.RWMutex
	managers map[string]*Manager
}

// StockFields builds the wizard's standard field set over store.
func StockFields(store Store, settle time.Duration) *Fields {
	f := &Fields{managers: make(map[string]*Manager)}

	f.add("logo", Constraints{
		Label:    "logo",
		Accept:   []string{"image/png", "image/jpeg", "image/webp", "image/svg+xml"},
		MaxSize:  2 * megabyte,
		MaxFiles: 5,
	}, store, settle)

	f.add("images", Constraints{
		Label:    "image",
		Accept:   []string{"image/"},
		MaxSize:  2 * megabyte,
		MaxFiles: 5,
	}, store, settle)

	f.add("video", Constraints{
		Label:    "video",
		Accept:   []string{"video/"},
		MaxFiles: 1,
		Replace:  true,
	}, store, settle)

	f.add("audio", Constraints{
		Label:    "audio",
		Accept:   []string{"audio/"},
		MaxFiles: 1,
		Replace:  true,
	}, store, settle)

	f.add("files", Constraints{
		Label:    "attachment",
		MaxFiles: 5,
	}, store, settle)

	return f
}

func (f *Fields) add(name string, cons Constraints, store Store, settle time.Duration) {
	f.managers[name] = NewManager(name, cons, store, settle)
}

// Get returns the manager for a field name, or nil.
func (f *Fields) Get(name string) *Manager {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.managers[name]
}
