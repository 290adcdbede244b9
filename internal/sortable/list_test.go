// internal/sortable/list_test.go

package sortable

import (
	"testing"
	"time"
)

func fourItems() []Item {
	return []Item{
		{ID: "i0", Name: "First Item", Description: "First description"},
		{ID: "i1", Name: "Second Item", Description: "Another description"},
		{ID: "i2", Name: "Third Item", Description: "More details here"},
		{ID: "i3", Name: "Fourth Item", Description: "Last one"},
	}
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestMove_DragToHead(t *testing.T) {
	l, err := NewList(fourItems(), EmptyState{})
	if err != nil {
		t.Fatal(err)
	}

	// Drag position 2 onto position 0.
	l.Move("i2", "i0")

	got := l.Snapshot()
	want := []string{"i2", "i0", "i1", "i3"}
	for i, id := range ids(got) {
		if id != want[i] {
			t.Fatalf("order = %v, want %v", ids(got), want)
		}
	}
	// Identity and content untouched.
	if got[0].Name != "Third Item" || got[0].Description != "More details here" {
		t.Fatalf("moved item mutated: %+v", got[0])
	}
}

func TestMove_NoopCases(t *testing.T) {
	l, _ := NewList(fourItems(), EmptyState{})

	l.Move("i1", "i1")      // self drop
	l.Move("ghost", "i0")   // unknown active
	l.Move("i0", "missing") // unknown target

	want := []string{"i0", "i1", "i2", "i3"}
	for i, id := range ids(l.Snapshot()) {
		if id != want[i] {
			t.Fatalf("order changed on a no-op: %v", ids(l.Snapshot()))
		}
	}
}

func TestInsertAfter_GapAnchors(t *testing.T) {
	l, _ := NewList(fourItems(), EmptyState{})

	mid := l.InsertAfter(1, Action{Label: "Add Activity"})
	head := l.InsertAfter(-1, Action{Label: "Add Resource"})

	got := l.Snapshot()
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	if got[0].ID != head.ID || got[3].ID != mid.ID {
		t.Fatalf("insert positions wrong: %v", ids(got))
	}
	if mid.Name != "Add Activity" || mid.Description != "Added via Add Activity." {
		t.Fatalf("minted content = %+v", mid)
	}
	if mid.ID == head.ID || mid.ID == "" {
		t.Fatal("minted ids must be fresh and unique")
	}
}

func TestDeleteAndUpdate_ByIdentity(t *testing.T) {
	l, _ := NewList(fourItems(), EmptyState{})

	if !l.Delete("i1") {
		t.Fatal("delete known id failed")
	}
	if l.Delete("i1") {
		t.Fatal("second delete of the same id must report false")
	}
	if !l.Update("i3", "Renamed", "New text") {
		t.Fatal("update known id failed")
	}

	got := l.Snapshot()
	if len(got) != 3 || got[2].Name != "Renamed" {
		t.Fatalf("snapshot = %+v", got)
	}
}

func TestSnapshot_ReflectsFullEditHistory(t *testing.T) {
	l, _ := NewList(fourItems(), EmptyState{})

	l.Delete("i0")
	added := l.InsertAfter(0, Action{Label: "Add Section"})
	l.Move("i3", "i1")

	got := ids(l.Snapshot())
	want := []string{"i3", "i1", added.ID, "i2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}

	// The snapshot is a copy; mutating it must not leak back.
	snap := l.Snapshot()
	snap[0].Name = "tampered"
	if l.Snapshot()[0].Name == "tampered" {
		t.Fatal("Snapshot leaked internal state")
	}
}

func TestNewList_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewList([]Item{{ID: "x"}, {ID: "x"}}, EmptyState{})
	if err == nil {
		t.Fatal("duplicate ids must be rejected")
	}
}

func TestHover_RevealAfterSustain(t *testing.T) {
	h := NewHoverTracker(20 * time.Millisecond)

	h.Enter(2)
	if _, ok := h.Revealed(); ok {
		t.Fatal("revealed before the sustain delay")
	}

	time.Sleep(60 * time.Millisecond)
	if gap, ok := h.Revealed(); !ok || gap != 2 {
		t.Fatalf("revealed = %d,%v, want gap 2", gap, ok)
	}

	h.Leave()
	if _, ok := h.Revealed(); ok {
		t.Fatal("still revealed after leave")
	}
}

func TestHover_FastTransitNeverReveals(t *testing.T) {
	h := NewHoverTracker(50 * time.Millisecond)

	h.Enter(0)
	h.Enter(1)
	h.Leave()

	time.Sleep(120 * time.Millisecond)
	if gap, ok := h.Revealed(); ok {
		t.Fatalf("gap %d revealed after fast transit", gap)
	}
}

func TestHover_MenuPinsAffordanceOpen(t *testing.T) {
	h := NewHoverTracker(10 * time.Millisecond)

	h.Enter(3)
	h.OpenMenu(3)
	h.Leave() // pointer wanders off while the menu is open

	if gap, ok := h.Revealed(); !ok || gap != 3 {
		t.Fatalf("revealed = %d,%v, want pinned gap 3", gap, ok)
	}

	h.CloseMenu()
	if _, ok := h.Revealed(); ok {
		t.Fatal("still revealed after the menu closed")
	}
}
