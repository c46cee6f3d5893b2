package glwindow

import (
	"errors"
	"fmt"

	"github.com/ignite-laboratories/glwindow/thread"
)

var (
	// ErrNotOnMainThread matches any *NotOnMainThreadError.
	ErrNotOnMainThread = errors.New("not called on the main thread")
	// ErrNotOnBoundThread matches any *NotOnBoundThreadError.
	ErrNotOnBoundThread = errors.New("not called on the thread the context is bound to")
	// ErrPlatformCreation matches any *CreationError.
	ErrPlatformCreation = errors.New("platform failed to create window")
	// ErrInvalidSize rejects non-positive window dimensions.
	ErrInvalidSize = errors.New("window size must be positive")
	// ErrInvalidWindow is returned for destroyed, moved-from or zero windows.
	ErrInvalidWindow = errors.New("window is not valid")
)

// NotOnMainThreadError reports a lifecycle operation attempted off the main thread.
type NotOnMainThreadError struct {
	Calling thread.ID
	Main    thread.ID
}

func (e *NotOnMainThreadError) Error() string {
	return fmt.Sprintf("%v: called on thread %v, main thread is %v", ErrNotOnMainThread, e.Calling, e.Main)
}

func (e *NotOnMainThreadError) Is(target error) bool {
	return target == ErrNotOnMainThread
}

// NotOnBoundThreadError reports an attempt to use a context that is bound on another thread.
type NotOnBoundThreadError struct {
	Calling thread.ID
	Bound   thread.ID
}

func (e *NotOnBoundThreadError) Error() string {
	return fmt.Sprintf("%v: called on thread %v, context is bound on thread %v", ErrNotOnBoundThread, e.Calling, e.Bound)
}

func (e *NotOnBoundThreadError) Is(target error) bool {
	return target == ErrNotOnBoundThread
}

// CreationError reports which stage of window construction the platform failed at.
// Stage is one of "window", "context", "bind" or "extensions".
type CreationError struct {
	Stage string
	Title string
	Err   error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("%v: %q failed at %s: %v", ErrPlatformCreation, e.Title, e.Stage, e.Err)
}

func (e *CreationError) Is(target error) bool {
	return target == ErrPlatformCreation
}

func (e *CreationError) Unwrap() error {
	return e.Err
}
