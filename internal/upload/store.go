// internal/upload/store.go
//
// Object-store boundary and the local-disk implementation.
//
// The wizard treats uploads as promise-shaped: hand over bytes, get a
// stable reference URL back.  Production deployments put S3 or a CDN
// behind the Store interface; the disk store below is what single-node
// and development setups run.

package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore writes uploads beneath Dir and serves them under BaseURL.
type DiskStore struct {
	Dir     string // e.g., <root>/uploads
	BaseURL string // e.g., /uploads
}

// NewDiskStore ensures Dir exists and returns the store.
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload dir %s: %w", dir, err)
	}
	return &DiskStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Put stores data under a collision-free name and returns its URL.
func (d *DiskStore) Put(_ context.Context, name, _ string, data []byte) (string, error) {
	fn := uuid.NewString() + "-" + sanitize(name)
	path := filepath.Join(d.Dir, fn)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return d.BaseURL + "/" + fn, nil
}

// sanitize keeps the stored filename to a safe ASCII subset; everything
// else collapses to "-".  Mirrors the tenant slug rules.
func sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "file"
	}
	return out
}
