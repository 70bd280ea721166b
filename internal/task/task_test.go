package task

import (
	"errors"
	"testing"
)

func TestTask_Lifecycle(t *testing.T) {
	var tk Task[string]
	if tk.State() != Idle {
		t.Fatalf("zero State = %v, want idle", tk.State())
	}
	if _, ok := tk.Result(); ok {
		t.Fatalf("Result available before any run")
	}

	run, err := tk.Begin()
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if !tk.Pending() {
		t.Fatalf("Pending = false after Begin")
	}
	if _, err := tk.Begin(); !errors.Is(err, ErrBusy) {
		t.Fatalf("second Begin = %v, want ErrBusy", err)
	}

	if !tk.Complete(run, "done") {
		t.Fatalf("Complete returned false")
	}
	got, ok := tk.Result()
	if !ok || got != "done" || tk.State() != Completed {
		t.Fatalf("Result = %q, %v; State = %v", got, ok, tk.State())
	}
}

func TestTask_StaleCompleteIgnored(t *testing.T) {
	var tk Task[int]
	first, _ := tk.Begin()
	tk.Complete(first, 1)
	second, _ := tk.Begin()

	if tk.Complete(first, 99) {
		t.Fatalf("stale Complete accepted")
	}
	if !tk.Pending() {
		t.Fatalf("stale Complete changed state")
	}
	tk.Complete(second, 2)
	if got, _ := tk.Result(); got != 2 {
		t.Fatalf("Result = %d, want 2", got)
	}
}

func TestTask_Reset(t *testing.T) {
	var tk Task[int]
	run, _ := tk.Begin()
	tk.Reset()
	if !tk.Pending() {
		t.Fatalf("Reset cleared a pending task")
	}
	tk.Complete(run, 5)
	tk.Reset()
	if tk.State() != Idle {
		t.Fatalf("State after Reset = %v, want idle", tk.State())
	}
	if _, ok := tk.Result(); ok {
		t.Fatalf("Result survives Reset")
	}
}

func TestState_String(t *testing.T) {
	for s, want := range map[State]string{Idle: "idle", Pending: "pending", Completed: "completed"} {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", s, got, want)
		}
	}
}
