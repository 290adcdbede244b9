// internal/upload/manager_test.go
//
// Unit-tests for the staged upload manager.  The settling delay is kept
// tiny so lifecycle tests complete quickly; removal correctness is
// asserted by identity, matching the manager's own contract.

package upload

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

// memStore collects puts in memory; failAfter > 0 makes the n-th put fail.
type memStore struct {
	puts      int
	failAfter int
}

func (s *memStore) Put(_ context.Context, name, _ string, _ []byte) (string, error) {
	s.puts++
	if s.failAfter > 0 && s.puts >= s.failAfter {
		return "", errors.New("store unavailable")
	}
	return "/uploads/" + name, nil
}

// pngFile fabricates content that sniffs as image/png.
func pngFile(name string, size int) File {
	content := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, size)...)
	return File{Name: name, Content: content}
}

func imageManager(t *testing.T, settle time.Duration) *Manager {
	t.Helper()
	return NewManager("images", Constraints{
		Label:    "image",
		Accept:   []string{"image/"},
		MaxSize:  2 * megabyte,
		MaxFiles: 5,
	}, &memStore{}, settle)
}

func TestStage_AppendsInBatchOrder(t *testing.T) {
	m := imageManager(t, DefaultSettle)

	recs, msgs, err := m.Stage(context.Background(), []File{
		pngFile("a.png", 10), pngFile("b.png", 10),
	})
	if err != nil || len(msgs) != 0 {
		t.Fatalf("stage: err=%v msgs=%v", err, msgs)
	}
	if len(recs) != 2 {
		t.Fatalf("staged %d records, want 2", len(recs))
	}

	_, _, err = m.Stage(context.Background(), []File{pngFile("c.png", 10)})
	if err != nil {
		t.Fatalf("second batch: %v", err)
	}

	snap := m.Snapshot()
	var names []string
	for _, s := range snap {
		names = append(names, s.Name)
	}
	if got := strings.Join(names, ","); got != "a.png,b.png,c.png" {
		t.Fatalf("order = %s", got)
	}
}

func TestStage_OversizeFileRejectedWithoutMutation(t *testing.T) {
	m := imageManager(t, DefaultSettle)

	if _, _, err := m.Stage(context.Background(), []File{pngFile("ok.png", 10)}); err != nil {
		t.Fatal(err)
	}

	recs, msgs, err := m.Stage(context.Background(), []File{
		pngFile("huge.png", 3*megabyte),
	})
	if err != nil {
		t.Fatalf("validation failure must not be an error: %v", err)
	}
	if len(recs) != 0 || len(msgs) == 0 {
		t.Fatalf("recs=%v msgs=%v, want rejection messages only", recs, msgs)
	}
	if !strings.Contains(msgs[0], "Max size is 2MB") {
		t.Fatalf("unexpected message %q", msgs[0])
	}
	if n := len(m.Snapshot()); n != 1 {
		t.Fatalf("staged list length changed to %d on rejected batch", n)
	}
}

func TestStage_WrongTypeRejected(t *testing.T) {
	m := imageManager(t, DefaultSettle)

	_, msgs, err := m.Stage(context.Background(), []File{
		{Name: "notes.txt", Content: []byte("plain text, not an image")},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 || !strings.Contains(msgs[0], "Only image files allowed") {
		t.Fatalf("msgs = %v", msgs)
	}
}

func TestStage_CountLimitCoversLiveRecords(t *testing.T) {
	m := imageManager(t, DefaultSettle)

	var batch []File
	for i := 0; i < 4; i++ {
		batch = append(batch, pngFile(fmt.Sprintf("f%d.png", i), 10))
	}
	if _, _, err := m.Stage(context.Background(), batch); err != nil {
		t.Fatal(err)
	}

	_, msgs, err := m.Stage(context.Background(), []File{
		pngFile("g.png", 10), pngFile("h.png", 10),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) == 0 || !strings.Contains(msgs[0], "Up to 5") {
		t.Fatalf("msgs = %v, want the max-count message", msgs)
	}
}

func TestStage_StoreFailureKeepsEarlierRecords(t *testing.T) {
	st := &memStore{failAfter: 2}
	m := NewManager("images", Constraints{Label: "image", MaxFiles: 5}, st, DefaultSettle)

	recs, msgs, err := m.Stage(context.Background(), []File{
		pngFile("first.png", 10), pngFile("second.png", 10),
	})
	if err == nil {
		t.Fatal("want a staging error from the failing store")
	}
	if len(msgs) != 0 {
		t.Fatalf("msgs = %v, validation did not fail", msgs)
	}
	if len(recs) != 1 || recs[0].Name != "first.png" {
		t.Fatalf("recs = %v, the first file should remain staged", recs)
	}
	if n := len(m.Snapshot()); n != 1 {
		t.Fatalf("snapshot length = %d", n)
	}
}

func TestRemove_TwoOverlappingRemovalsBothComplete(t *testing.T) {
	m := imageManager(t, 30*time.Millisecond)

	recs, _, err := m.Stage(context.Background(), []File{
		pngFile("a.png", 10), pngFile("b.png", 10),
	})
	if err != nil {
		t.Fatal(err)
	}

	// Remove the first file, then the second before the first settling
	// delay elapses.  Both must eventually go; neither may be skipped
	// or removed twice.
	if err := m.Remove(recs[0].ID); err != nil {
		t.Fatal(err)
	}
	if err := m.Remove(recs[1].ID); err != nil {
		t.Fatal(err)
	}

	snap := m.Snapshot()
	if len(snap) != 2 || !snap[0].Deleting || !snap[1].Deleting {
		t.Fatalf("both rows should still be visible and flagged: %+v", snap)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(m.Snapshot()) == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("rows still present after settling: %+v", m.Snapshot())
}

func TestRemove_DoubleRemoveSameRecordFails(t *testing.T) {
	m := imageManager(t, 50*time.Millisecond)

	recs, _, err := m.Stage(context.Background(), []File{pngFile("a.png", 10)})
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Remove(recs[0].ID); err != nil {
		t.Fatal(err)
	}
	if err := m.Remove(recs[0].ID); err == nil {
		t.Fatal("second Remove on a deleting record must fail")
	}
}

// blockingStore parks every Put until released.
type blockingStore struct {
	enter   chan struct{}
	release chan struct{}
}

func (s *blockingStore) Put(_ context.Context, name, _ string, _ []byte) (string, error) {
	s.enter <- struct{}{}
	<-s.release
	return "/uploads/" + name, nil
}

func TestStage_BusyWhileUploading(t *testing.T) {
	st := &blockingStore{enter: make(chan struct{}), release: make(chan struct{})}
	m := NewManager("images", Constraints{Label: "image", MaxFiles: 5}, st, DefaultSettle)

	done := make(chan error, 1)
	go func() {
		_, _, err := m.Stage(context.Background(), []File{pngFile("slow.png", 10)})
		done <- err
	}()

	<-st.enter // first batch is now mid-upload
	if _, _, err := m.Stage(context.Background(), []File{pngFile("late.png", 10)}); !errors.Is(err, ErrBusy) {
		t.Fatalf("err = %v, want ErrBusy", err)
	}
	close(st.release)
	if err := <-done; err != nil {
		t.Fatalf("first batch: %v", err)
	}
}

func TestStage_SingleSlotReplaces(t *testing.T) {
	st := &memStore{}
	m := NewManager("video", Constraints{
		Label:    "video",
		MaxFiles: 1,
		Replace:  true,
	}, st, DefaultSettle)

	if _, _, err := m.Stage(context.Background(), []File{
		{Name: "old.mp4", Content: []byte("old-bytes")},
	}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := m.Stage(context.Background(), []File{
		{Name: "new.mp4", Content: []byte("new-bytes")},
	}); err != nil {
		t.Fatal(err)
	}

	snap := m.Snapshot()
	if len(snap) != 1 || snap[0].Name != "new.mp4" {
		t.Fatalf("snapshot = %+v, want only the replacement", snap)
	}

	_, msgs, _ := m.Stage(context.Background(), []File{
		{Name: "a.mp4", Content: []byte("x")}, {Name: "b.mp4", Content: []byte("y")},
	})
	if len(msgs) == 0 {
		t.Fatal("two files into a single-slot field must be rejected")
	}
}
