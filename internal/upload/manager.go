// internal/upload/manager.go
//
// Staged file uploads for one form field.
//
// Context
//   Branding and template forms stage files before the form itself is
//   submitted: the file goes to the object store immediately, and only
//   its resulting record (url, mime, name, size) rides along with the
//   eventual form payload.  Each field (logo, images, video, audio,
//   attachments) owns an independent Manager; nothing here is shared
//   across fields.
//
// Workflow
//   •  Stage validates the WHOLE batch against the field constraints
//      first.  Any violation returns human-readable messages and leaves
//      the staged list untouched.  A field refuses re-entrant staging
//      while an upload is in flight.
//   •  A staged record's lifecycle is a small state machine:
//      staged → deleting → removed.  Remove flips the record to
//      deleting and schedules the settling delay; when it fires, the
//      record leaves the list.  Removal resolves against the record's
//      identity, never a captured index, so concurrent removals cannot
//      disturb one another.
//
// Notes
//   •  Single-slot fields (video, audio) set Replace: a successful
//      staging swaps the previous record out instead of appending.
//   •  MIME types are sniffed from content, not trusted from the
//      client (gabriel-vasile/mimetype).

package upload

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/MS250871/my-saas-demo/internal/metrics"
)

// Record is one staged file as seen by form payloads.
type Record struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	MIME string `json:"mime"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Status pairs a record with its transient lifecycle flag.
type Status struct {
	Record
	Deleting bool `json:"deleting"`
}

// File is a candidate upload: display name plus raw content.
type File struct {
	Name    string
	Content []byte
}

// Constraints declares what a field accepts.  Zero values mean "no
// limit" except MaxFiles, which must be set.
type Constraints struct {
	Label    string   // user-facing field label for messages
	Accept   []string // exact MIME types, or prefixes ending in "/"
	MinSize  int64    // bytes
	MaxSize  int64    // bytes
	MaxFiles int
	Replace  bool // single-slot semantics: new upload replaces the old
}

// Store is the object-upload boundary.  It returns a stable reference
// URL for the stored content.
type Store interface {
	Put(ctx context.Context, name, mime string, data []byte) (url string, err error)
}

// ErrBusy is returned when Stage is called while an upload is running.
var ErrBusy = errors.New("upload: field is busy staging files")

// Record lifecycle states and events.
const (
	stateStaged   = "staged"
	stateDeleting = "deleting"
	stateRemoved  = "removed"

	eventDelete = "delete"
	eventSettle = "settle"
)

type slot struct {
	rec   Record
	life  *fsm.FSM
	timer *time.Timer
}

func newSlot(rec Record) *slot {
	return &slot{
		rec: rec,
		life: fsm.NewFSM(
			stateStaged,
			fsm.Events{
				{Name: eventDelete, Src: []string{stateStaged}, Dst: stateDeleting},
				{Name: eventSettle, Src: []string{stateDeleting}, Dst: stateRemoved},
			},
			fsm.Callbacks{},
		),
	}
}

// Manager owns the staged records of one field.
type Manager struct {
	field  string
	cons   Constraints
	store  Store
	settle time.Duration

	mu        sync.Mutex
	uploading bool
	slots     []*slot
}

// NewManager builds a Manager for field.  settle is the visual delay
// between Remove and the record leaving the list.
func NewManager(field string, cons Constraints, store Store, settle time.Duration) *Manager {
	if cons.Label == "" {
		cons.Label = field
	}
	return &Manager{field: field, cons: cons, store: store, settle: settle}
}

// Busy reports whether an upload batch is currently in flight.
func (m *Manager) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uploading
}

// Snapshot returns the field's records in insertion order, with the
// transient deleting flag per row.
func (m *Manager) Snapshot() []Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Status, 0, len(m.slots))
	for _, s := range m.slots {
		out = append(out, Status{Record: s.rec, Deleting: s.life.Current() == stateDeleting})
	}
	return out
}

// Stage validates and uploads a batch of candidate files.
//
// The three-way return mirrors the error taxonomy: validation failures
// come back as messages with no state change, store failures come back
// as err with everything already staged left intact, and success
// appends the new records in batch order.
func (m *Manager) Stage(ctx context.Context, files []File) ([]Record, []string, error) {
	if len(files) == 0 {
		return nil, nil, nil
	}

	m.mu.Lock()
	if m.uploading {
		m.mu.Unlock()
		return nil, nil, ErrBusy
	}
	if msgs := m.validateLocked(files); len(msgs) > 0 {
		m.mu.Unlock()
		metrics.UploadRejectedTotal.Inc()
		return nil, msgs, nil
	}
	m.uploading = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.uploading = false
		m.mu.Unlock()
	}()

	staged := make([]Record, 0, len(files))
	for _, f := range files {
		mime := mimetype.Detect(f.Content).String()
		url, err := m.store.Put(ctx, f.Name, mime, f.Content)
		if err != nil {
			// Field-local failure: keep what already staged, in this
			// batch and before it.
			zap.S().Warnw("upload staging failed",
				"field", m.field, "file", f.Name, "err", err)
			return staged, nil, fmt.Errorf("stage %s: %w", f.Name, err)
		}

		rec := Record{
			ID:   uuid.NewString(),
			URL:  url,
			MIME: mime,
			Name: f.Name,
			Size: int64(len(f.Content)),
		}

		m.mu.Lock()
		if m.cons.Replace {
			m.slots = m.slots[:0]
		}
		m.slots = append(m.slots, newSlot(rec))
		m.mu.Unlock()

		staged = append(staged, rec)
		metrics.UploadStagedTotal.Inc()
	}
	return staged, nil, nil
}

// Remove transitions the record with id to deleting and schedules its
// departure after the settling delay.  Unknown or already-deleting ids
// return an error; other rows are never touched.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.findLocked(id)
	if s == nil {
		return fmt.Errorf("upload: no staged file %q in field %s", id, m.field)
	}
	if err := s.life.Event(context.Background(), eventDelete); err != nil {
		return fmt.Errorf("upload: file %q is already being removed", id)
	}

	s.timer = time.AfterFunc(m.settle, func() { m.finishRemove(id) })
	return nil
}

// finishRemove completes a deletion after the settling delay.  Lookup
// is by identity, so index shifts from other removals are harmless.
func (m *Manager) finishRemove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, s := range m.slots {
		if s.rec.ID != id {
			continue
		}
		if err := s.life.Event(context.Background(), eventSettle); err != nil {
			return
		}
		m.slots = append(m.slots[:i], m.slots[i+1:]...)
		metrics.UploadRemovedTotal.Inc()
		return
	}
}

func (m *Manager) findLocked(id string) *slot {
	for _, s := range m.slots {
		if s.rec.ID == id {
			return s
		}
	}
	return nil
}

// validateLocked checks the whole batch against the constraints and
// returns every violation.  Caller holds m.mu.
func (m *Manager) validateLocked(files []File) []string {
	var msgs []string

	if m.cons.MaxFiles > 0 && !m.cons.Replace {
		if len(m.slots)+len(files) > m.cons.MaxFiles {
			msgs = append(msgs, fmt.Sprintf(
				"Up to %d %s files allowed.", m.cons.MaxFiles, m.cons.Label))
		}
	}
	if m.cons.Replace && len(files) > 1 {
		msgs = append(msgs, fmt.Sprintf(
			"Only one %s file allowed.", m.cons.Label))
	}

	for _, f := range files {
		size := int64(len(f.Content))
		if m.cons.MinSize > 0 && size < m.cons.MinSize {
			msgs = append(msgs, fmt.Sprintf(
				"%s is below the minimum size of %s.", f.Name, formatSize(m.cons.MinSize)))
		}
		if m.cons.MaxSize > 0 && size > m.cons.MaxSize {
			msgs = append(msgs, fmt.Sprintf(
				"Max size is %s per %s.", formatSize(m.cons.MaxSize), m.cons.Label))
		}
		if len(m.cons.Accept) > 0 && !accepted(m.cons.Accept, mimetype.Detect(f.Content)) {
			msgs = append(msgs, fmt.Sprintf(
				"Only %s files allowed.", m.cons.Label))
		}
	}
	return msgs
}

// accepted matches a sniffed MIME type against the accept list.  An
// entry ending in "/" matches as a prefix ("image/"), anything else
// must match exactly.
func accepted(accept []string, mt *mimetype.MIME) bool {
	for _, a := range accept {
		if a == "" {
			continue
		}
		if a[len(a)-1] == '/' {
			if len(mt.String()) >= len(a) && mt.String()[:len(a)] == a {
				return true
			}
			continue
		}
		if mt.Is(a) {
			return true
		}
	}
	return false
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%dMB", n>>20)
	case n >= 1<<10:
		return fmt.Sprintf("%dKB", n>>10)
	default:
		return fmt.Sprintf("%dB", n)
	}
}
