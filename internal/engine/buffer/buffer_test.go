package buffer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/dshills/patterns/internal/engine/history"
	"github.com/dshills/patterns/internal/event"
)

func checkState(t *testing.T, b *Buffer, identifier, content string) {
	t.Helper()
	id, c := b.State()
	if id != identifier || c != content {
		t.Errorf("state = (%q, %q), want (%q, %q)", id, c, identifier, content)
	}
}

func TestNewBuffer(t *testing.T) {
	b := NewBuffer("doc.txt")
	checkState(t, b, "doc.txt", "")
	if b.HistoryLen() != 0 {
		t.Errorf("HistoryLen() = %d, want 0", b.HistoryLen())
	}
	if b.Capacity() != history.DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", b.Capacity(), history.DefaultCapacity)
	}
}

func TestWithCapacity(t *testing.T) {
	tests := []struct {
		capacity int
		expected int
	}{
		{0, history.DefaultCapacity},
		{-1, history.DefaultCapacity},
		{2, 2},
		{10, 10},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("capacity=%d", tt.capacity), func(t *testing.T) {
			b := NewBuffer("doc.txt", WithCapacity(tt.capacity))
			if b.Capacity() != tt.expected {
				t.Errorf("Capacity() = %d, want %d", b.Capacity(), tt.expected)
			}
		})
	}
}

func TestAppend(t *testing.T) {
	b := NewBuffer("doc.txt")
	b.Append("hello")
	b.Append("")
	b.Append(" world")

	if b.Content() != "hello world" {
		t.Errorf("Content() = %q, want %q", b.Content(), "hello world")
	}
	if b.Len() != 11 {
		t.Errorf("Len() = %d, want 11", b.Len())
	}
}

func TestAppendDoesNotTouchHistory(t *testing.T) {
	b := NewBuffer("doc.txt")
	b.Append("A")
	b.Checkpoint()
	before := b.History()

	b.Append("B")
	b.Append("C")

	after := b.History()
	if len(after) != len(before) {
		t.Fatalf("HistoryLen changed from %d to %d", len(before), len(after))
	}
	if after[0].Content() != "A" {
		t.Errorf("stored checkpoint content = %q, want %q", after[0].Content(), "A")
	}
}

func TestCheckpointCapturesState(t *testing.T) {
	b := NewBuffer("doc.txt")
	b.Append("A\n")

	cp := b.Checkpoint()
	if cp.Identifier() != "doc.txt" || cp.Content() != "A\n" {
		t.Errorf("checkpoint = (%q, %q)", cp.Identifier(), cp.Content())
	}
	if b.HistoryLen() != 1 {
		t.Errorf("HistoryLen() = %d, want 1", b.HistoryLen())
	}
}

func TestCheckpointBounded(t *testing.T) {
	b := NewBuffer("doc.txt")
	for i := 1; i <= 9; i++ {
		b.Append(fmt.Sprintf("%d", i))
		b.Checkpoint()
		if b.HistoryLen() > 4 {
			t.Fatalf("HistoryLen() = %d after %d checkpoints", b.HistoryLen(), i)
		}
	}
}

func TestCheckpointEvictionOrder(t *testing.T) {
	b := NewBuffer("doc.txt")
	for i := 1; i <= 6; i++ {
		b.SetIdentifier(fmt.Sprintf("v%d", i))
		b.Append(fmt.Sprintf("%d", i))
		b.Checkpoint()
	}

	want := []struct{ id, content string }{
		{"v3", "123"},
		{"v4", "1234"},
		{"v5", "12345"},
		{"v6", "123456"},
	}
	got := b.History()
	if len(got) != len(want) {
		t.Fatalf("len(History()) = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Identifier() != w.id || got[i].Content() != w.content {
			t.Errorf("History()[%d] = (%q, %q), want (%q, %q)",
				i, got[i].Identifier(), got[i].Content(), w.id, w.content)
		}
	}
}

func TestRestoreIndexing(t *testing.T) {
	b := NewBuffer("doc.txt")
	for i := 1; i <= 4; i++ {
		b.SetIdentifier(fmt.Sprintf("C%d", i))
		b.Append(fmt.Sprintf("c%d;", i))
		b.Checkpoint()
	}

	tests := []struct {
		steps   int
		id      string
		content string
	}{
		{0, "C4", "c1;c2;c3;c4;"},
		{1, "C3", "c1;c2;c3;"},
		{3, "C1", "c1;"},
		{2, "C2", "c1;c2;"},
		{0, "C4", "c1;c2;c3;c4;"},
	}

	for _, tt := range tests {
		if err := b.Restore(tt.steps); err != nil {
			t.Fatalf("Restore(%d) failed: %v", tt.steps, err)
		}
		checkState(t, b, tt.id, tt.content)
	}

	err := b.Restore(4)
	if !errors.Is(err, ErrInvalidSteps) {
		t.Errorf("Restore(4) err = %v, want ErrInvalidSteps", err)
	}
}

func TestRestoreEmptyHistory(t *testing.T) {
	b := NewBuffer("doc.txt")
	b.Append("draft")

	err := b.Restore(0)
	var stepsErr *InvalidStepsError
	if !errors.As(err, &stepsErr) {
		t.Fatalf("err = %v, want *InvalidStepsError", err)
	}
	if stepsErr.Steps != 0 || stepsErr.Available != 0 {
		t.Errorf("unexpected error fields %+v", stepsErr)
	}
	checkState(t, b, "doc.txt", "draft")
}

func TestRestoreNegativeSteps(t *testing.T) {
	b := NewBuffer("doc.txt")
	b.Append("A")
	b.Checkpoint()
	b.Append("B")

	if err := b.Restore(-1); !errors.Is(err, ErrInvalidSteps) {
		t.Errorf("Restore(-1) err = %v, want ErrInvalidSteps", err)
	}
	checkState(t, b, "doc.txt", "AB")
}

func TestRestoreDoesNotMutateHistory(t *testing.T) {
	b := NewBuffer("doc.txt")
	for i := 0; i < 3; i++ {
		b.Append("x")
		b.Checkpoint()
	}
	before := b.History()

	for i := 0; i < 10; i++ {
		_ = b.Restore(i % 4)
	}

	after := b.History()
	if len(after) != len(before) {
		t.Fatalf("HistoryLen changed from %d to %d", len(before), len(after))
	}
	for i := range before {
		if before[i].ID() != after[i].ID() {
			t.Errorf("entry %d changed after restores", i)
		}
	}
}

func TestRestoreKeepsNewerCheckpoints(t *testing.T) {
	b := NewBuffer("doc.txt")
	b.Append("A")
	b.Checkpoint()
	b.Append("B")
	b.Checkpoint()

	if err := b.Restore(1); err != nil {
		t.Fatal(err)
	}
	checkState(t, b, "doc.txt", "A")

	if err := b.Restore(0); err != nil {
		t.Fatal(err)
	}
	checkState(t, b, "doc.txt", "AB")
}

func TestCheckpointsNewestFirst(t *testing.T) {
	b := NewBuffer("doc.txt", WithCapacity(3))
	for _, text := range []string{"A", "B", "C", "D"} {
		b.Append(text)
		b.Checkpoint()
	}

	it := b.Checkpoints()
	if it.Remaining() != 3 {
		t.Fatalf("Remaining() = %d, want 3", it.Remaining())
	}
	want := []string{"ABCD", "ABC", "AB"}
	for steps := 0; it.HasNext(); steps++ {
		cp, _ := it.Next()
		if cp.Content() != want[steps] {
			t.Errorf("item %d = %q, want %q", steps, cp.Content(), want[steps])
		}
		if err := b.Restore(steps); err != nil {
			t.Fatal(err)
		}
		checkState(t, b, "doc.txt", cp.Content())
	}
}

func TestAppendAfterRestore(t *testing.T) {
	b := NewBuffer("doc.txt")
	b.Append("A")
	b.Checkpoint()
	b.Append("B")

	if err := b.Restore(0); err != nil {
		t.Fatal(err)
	}
	b.Append("C")
	checkState(t, b, "doc.txt", "AC")

	if cp := b.History()[0]; cp.Content() != "A" {
		t.Errorf("checkpoint content changed to %q", cp.Content())
	}
}

// TestExampleScenario walks the documented doc.txt example step by step.
func TestExampleScenario(t *testing.T) {
	b := NewBuffer("doc.txt")

	b.Append("A\n")
	checkState(t, b, "doc.txt", "A\n")
	b.Checkpoint()

	b.Append("B\n")
	checkState(t, b, "doc.txt", "A\nB\n")
	b.Checkpoint()

	hist := b.History()
	if len(hist) != 2 || hist[0].Content() != "A\n" || hist[1].Content() != "A\nB\n" {
		t.Fatalf("unexpected history after two checkpoints")
	}

	b.Append("C\n")
	checkState(t, b, "doc.txt", "A\nB\nC\n")

	if err := b.Restore(0); err != nil {
		t.Fatalf("Restore(0) failed: %v", err)
	}
	checkState(t, b, "doc.txt", "A\nB\n")

	if err := b.Restore(1); err != nil {
		t.Fatalf("Restore(1) failed: %v", err)
	}
	checkState(t, b, "doc.txt", "A\n")

	err := b.Restore(2)
	if !errors.Is(err, ErrInvalidSteps) {
		t.Fatalf("Restore(2) err = %v, want ErrInvalidSteps", err)
	}
	checkState(t, b, "doc.txt", "A\n")
}

func TestConcurrentRestoreIsAtomic(t *testing.T) {
	b := NewBuffer("id-0")
	for i := 1; i <= 4; i++ {
		b.SetIdentifier(fmt.Sprintf("id-%d", i))
		b.Append("x")
		b.Checkpoint()
	}

	// Each checkpoint pairs id-N with N bytes of content
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				_ = b.Restore((g + i) % 4)
				id, content := b.State()
				if id != fmt.Sprintf("id-%d", len(content)) {
					t.Errorf("torn state (%q, %q)", id, content)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestConcurrentCheckpointBounded(t *testing.T) {
	b := NewBuffer("doc.txt")

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				b.Append("x")
				b.Checkpoint()
			}
		}()
	}
	wg.Wait()

	if b.HistoryLen() != 4 {
		t.Errorf("HistoryLen() = %d, want 4", b.HistoryLen())
	}
	if b.Len() != 800 {
		t.Errorf("Len() = %d, want 800", b.Len())
	}
}

func TestBufferNotifiesSubject(t *testing.T) {
	subject := event.NewSubject("doc.txt")
	var got []event.Event
	_, _ = subject.AttachFunc(func(ctx context.Context, e event.Event) error {
		got = append(got, e)
		return nil
	})

	b := NewBuffer("doc.txt", WithSubject(subject), WithCapacity(1))
	b.Append("A")
	b.Append("")
	b.Checkpoint()
	b.Checkpoint()
	_ = b.Restore(0)
	_ = b.Restore(3)

	wantTypes := []event.Type{
		event.TypeAppended,
		event.TypeCheckpointed,
		event.TypeCheckpointed,
		event.TypeRestored,
		event.TypeRestoreFailed,
	}
	if len(got) != len(wantTypes) {
		t.Fatalf("got %d events, want %d", len(got), len(wantTypes))
	}
	for i, want := range wantTypes {
		if got[i].Type != want {
			t.Errorf("event %d = %s, want %s", i, got[i].Type, want)
		}
	}

	second, _ := got[2].BufferChange()
	if !second.Evicted {
		t.Error("second checkpoint at capacity 1 should report eviction")
	}
	failed, _ := got[4].BufferChange()
	if failed.Steps != 3 || !errors.Is(failed.Err, ErrInvalidSteps) {
		t.Errorf("unexpected failure payload %+v", failed)
	}
}

func TestObserverCanReadBuffer(t *testing.T) {
	subject := event.NewSubject("doc.txt")
	var b *Buffer
	var seen string
	_, _ = subject.AttachFunc(func(ctx context.Context, e event.Event) error {
		seen = b.Content()
		return nil
	})

	b = NewBuffer("doc.txt", WithSubject(subject))
	b.Append("A")

	if seen != "A" {
		t.Errorf("observer saw %q, want %q", seen, "A")
	}
}

func TestObserverErrorDoesNotFailBuffer(t *testing.T) {
	subject := event.NewSubject("doc.txt")
	_, _ = subject.AttachFunc(func(ctx context.Context, e event.Event) error {
		return errors.New("observer down")
	})

	b := NewBuffer("doc.txt", WithSubject(subject))
	b.Append("A")
	b.Checkpoint()
	if err := b.Restore(0); err != nil {
		t.Errorf("Restore failed because of observer: %v", err)
	}
}
