// internal/sortable/hover.go
//
// Gap-affordance reveal logic.
//
// The "add" control between rows appears only after the pointer rests
// on a gap for a short sustained delay, so fast transit across the list
// does not flicker every separator.  Once the gap's insertion menu is
// open the affordance stays revealed even if the pointer leaves; it
// collapses when the menu closes.

package sortable

import (
	"sync"
	"time"
)

// DefaultHoverDelay matches the list's tuned reveal delay.
const DefaultHoverDelay = 180 * time.Millisecond

const noGap = -1

// HoverTracker models the reveal state for one list's gaps.  Gap i sits
// after row i; gap -1 precedes the first row.
type HoverTracker struct {
	delay time.Duration

	mu       sync.Mutex
	pending  int
	timer    *time.Timer
	revealed int
	menuOpen int
}

// NewHoverTracker builds a tracker with the given sustain delay.
func NewHoverTracker(delay time.Duration) *HoverTracker {
	if delay <= 0 {
		delay = DefaultHoverDelay
	}
	return &HoverTracker{delay: delay, pending: noGap, revealed: noGap, menuOpen: noGap}
}

// Enter starts the sustain timer for gap.  A previous pending gap is
// superseded.
func (h *HoverTracker) Enter(gap int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.timer != nil {
		h.timer.Stop()
	}
	h.pending = gap
	h.timer = time.AfterFunc(h.delay, func() { h.sustain(gap) })
}

func (h *HoverTracker) sustain(gap int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pending != gap {
		return // pointer moved on before the delay elapsed
	}
	h.pending = noGap
	h.revealed = gap
}

// Leave cancels any pending reveal and hides the affordance, unless
// that gap's menu is open.
func (h *HoverTracker) Leave() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.timer != nil {
		h.timer.Stop()
	}
	h.pending = noGap
	if h.menuOpen != noGap && h.menuOpen == h.revealed {
		return // pinned while the insertion menu is open
	}
	h.revealed = noGap
}

// OpenMenu pins gap's affordance open.  The gap is revealed immediately
// even if the sustain delay had not fired yet.
func (h *HoverTracker) OpenMenu(gap int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.menuOpen = gap
	h.revealed = gap
	h.pending = noGap
}

// CloseMenu unpins the menu; the affordance collapses unless the
// pointer is currently sustaining it again.
func (h *HoverTracker) CloseMenu() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.menuOpen == noGap {
		return
	}
	h.revealed = noGap
	h.menuOpen = noGap
}

// Revealed reports which gap, if any, shows its affordance.
func (h *HoverTracker) Revealed() (int, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.revealed, h.revealed != noGap
}
