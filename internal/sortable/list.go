// internal/sortable/list.go
//
// Drag-reorderable item list for the template step.
//
// Context
//   The template form edits an ordered collection of sections: drag to
//   reorder, insert at any gap via hover-revealed "add" actions, edit
//   in place, delete, then submit the whole order as one snapshot.
//   Items carry opaque unique ids; position is never stored, it IS the
//   index.
//
// Notes
//   •  Move follows drag-and-drop semantics: the dragged item takes the
//      target item's index and everything between shifts by one.  A
//      drop on itself is a no-op.
//   •  Insertion mints a fresh id and derives content from the action
//      label, exactly once, at insert time.

package sortable

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Item is one row of the list.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Action is a caller-supplied "add" choice offered at every gap and in
// the empty state.
type Action struct {
	Label string `json:"label"`
}

// newItem mints the row an action inserts.
func (a Action) newItem() Item {
	return Item{
		ID:          uuid.NewString(),
		Name:        a.Label,
		Description: fmt.Sprintf("Added via %s.", a.Label),
	}
}

// EmptyState configures what an empty list offers instead of rows.
type EmptyState struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Kind        string   `json:"kind"` // "single" or "multi"
	Actions     []Action `json:"actions"`
}

// List is the editor state.  All methods are safe for concurrent use.
type List struct {
	mu    sync.Mutex
	items []Item
	empty EmptyState
}

// NewList builds a List from initial rows.  Duplicate ids are rejected.
func NewList(initial []Item, empty EmptyState) (*List, error) {
	seen := make(map[string]struct{}, len(initial))
	for _, it := range initial {
		if it.ID == "" {
			return nil, fmt.Errorf("sortable: item %q has no id", it.Name)
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("sortable: duplicate item id %q", it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	items := make([]Item, len(initial))
	copy(items, initial)
	return &List{items: items, empty: empty}, nil
}

// Len reports the current row count.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Snapshot returns the full ordered sequence as one atomic copy.  This
// is what Submit hands to the far side.
func (l *List) Snapshot() []Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Empty returns the empty-state configuration; meaningful to render
// only when Len() == 0.
func (l *List) Empty() EmptyState { return l.empty }

// Move drags activeID to occupy overID's index, shifting the rows in
// between.  Identity and content never change; unknown ids and
// self-drops are no-ops.
func (l *List) Move(activeID, overID string) {
	if activeID == overID {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	from, to := l.indexLocked(activeID), l.indexLocked(overID)
	if from < 0 || to < 0 || from == to {
		return
	}

	it := l.items[from]
	l.items = append(l.items[:from], l.items[from+1:]...)
	l.items = append(l.items[:to], append([]Item{it}, l.items[to:]...)...)
}

// InsertAfter activates action at the gap anchored by index anchor,
// placing the minted item immediately after it.  Anchor -1 inserts at
// the head (the empty state and the before-first gap both use it).
func (l *List) InsertAfter(anchor int, a Action) Item {
	it := a.newItem()

	l.mu.Lock()
	defer l.mu.Unlock()

	at := anchor + 1
	if at < 0 {
		at = 0
	}
	if at > len(l.items) {
		at = len(l.items)
	}
	l.items = append(l.items[:at], append([]Item{it}, l.items[at:]...)...)
	return it
}

// Update edits a row in place.  The actual editor lives elsewhere; the
// list only applies the result.  Returns false for unknown ids.
func (l *List) Update(id, name, description string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.indexLocked(id)
	if i < 0 {
		return false
	}
	l.items[i].Name = name
	l.items[i].Description = description
	return true
}

// Delete removes the row with id.  No confirmation at this layer.
func (l *List) Delete(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.indexLocked(id)
	if i < 0 {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true
}

func (l *List) indexLocked(id string) int {
	for i, it := range l.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
