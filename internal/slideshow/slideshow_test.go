package slideshow

import (
	"testing"
	"time"
)

func TestAdvance_WrapsAround(t *testing.T) {
	tk := New(time.Hour)
	defer tk.Stop()
	tk.SetImages(3)
	tk.Advance()
	tk.Advance()
	if got := tk.Index(); got != 2 {
		t.Fatalf("Index = %d, want 2", got)
	}
	if got := tk.Advance(); got != 0 {
		t.Fatalf("Advance from 2 of 3 = %d, want 0", got)
	}
}

func TestSetImages_States(t *testing.T) {
	tk := New(time.Hour)
	defer tk.Stop()

	if tk.State() != Idle {
		t.Fatalf("new ticker State = %v, want idle", tk.State())
	}
	tk.SetImages(1)
	if tk.State() != Idle {
		t.Fatalf("State with one image = %v, want idle", tk.State())
	}
	tk.SetImages(2)
	if tk.State() != Running {
		t.Fatalf("State with two images = %v, want running", tk.State())
	}
	tk.SetImages(0)
	if tk.State() != Idle {
		t.Fatalf("State with no images = %v, want idle", tk.State())
	}
}

func TestSetImages_ClampsIndex(t *testing.T) {
	tk := New(time.Hour)
	defer tk.Stop()
	tk.SetImages(4)
	tk.Advance()
	tk.Advance()
	tk.Advance()

	tk.SetImages(3)
	if got := tk.Index(); got != 0 {
		t.Fatalf("Index after shrink past cursor = %d, want 0", got)
	}

	tk.Advance()
	tk.SetImages(5)
	if got := tk.Index(); got != 1 {
		t.Fatalf("Index after grow = %d, want 1", got)
	}
}

func TestTicking_PublishesUpdates(t *testing.T) {
	tk := New(5 * time.Millisecond)
	defer tk.Stop()
	tk.SetImages(3)

	select {
	case idx := <-tk.Updates():
		if idx < 0 || idx > 2 {
			t.Fatalf("update index = %d, out of range", idx)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no tick within 2s")
	}
}

func TestShrinkToOne_StopsTicking(t *testing.T) {
	tk := New(5 * time.Millisecond)
	defer tk.Stop()
	tk.SetImages(2)

	select {
	case <-tk.Updates():
	case <-time.After(2 * time.Second):
		t.Fatalf("no tick within 2s")
	}

	tk.SetImages(1)
	// Drain any value published before the timer was cancelled.
	select {
	case <-tk.Updates():
	default:
	}
	select {
	case idx := <-tk.Updates():
		t.Fatalf("tick after shrinking to one image: %d", idx)
	case <-time.After(50 * time.Millisecond):
	}
	if tk.Index() != 0 {
		t.Fatalf("Index = %d, want 0", tk.Index())
	}
}

func TestStop_CancelsTimer(t *testing.T) {
	tk := New(5 * time.Millisecond)
	tk.SetImages(3)
	tk.Stop()
	if tk.State() != Idle {
		t.Fatalf("State after Stop = %v, want idle", tk.State())
	}
	select {
	case <-tk.Updates():
	default:
	}
	before := tk.Index()
	time.Sleep(30 * time.Millisecond)
	if tk.Index() != before {
		t.Fatalf("index moved after Stop")
	}
}

func TestUpdates_KeepsLatestOnly(t *testing.T) {
	tk := New(time.Hour)
	defer tk.Stop()
	tk.SetImages(5)
	tk.Advance()
	tk.Advance()
	tk.Advance()
	if got := <-tk.Updates(); got != 3 {
		t.Fatalf("Updates = %d, want latest 3", got)
	}
	select {
	case v := <-tk.Updates():
		t.Fatalf("unexpected backlog value %d", v)
	default:
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ index, n, want int }{
		{0, 3, 0},
		{2, 3, 2},
		{3, 3, 0},
		{-1, 3, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.index, tt.n); got != tt.want {
			t.Errorf("Clamp(%d, %d) = %d, want %d", tt.index, tt.n, got, tt.want)
		}
	}
}
