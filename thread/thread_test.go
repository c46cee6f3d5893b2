package thread

import (
	"runtime"
	"testing"
)

func TestCurrentIsStableWhileLocked(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	first := Current()
	if first == None {
		t.Fatalf("expected a thread identity, got none")
	}
	for i := 0; i < 100; i++ {
		runtime.Gosched()
		if id := Current(); id != first {
			t.Fatalf("identity changed while locked: %v -> %v", first, id)
		}
	}
}

func TestCurrentDiffersAcrossLockedThreads(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	mine := Current()
	other := make(chan ID)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		other <- Current()
	}()

	if theirs := <-other; theirs == mine {
		t.Fatalf("expected distinct identities, both were %v", mine)
	}
}

func TestString(t *testing.T) {
	if got := None.String(); got != "none" {
		t.Fatalf("expected %q, got %q", "none", got)
	}
	if got := ID(42).String(); got != "42" {
		t.Fatalf("expected %q, got %q", "42", got)
	}
}
