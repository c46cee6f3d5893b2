// Package thread identifies the operating system thread a goroutine is executing on.
//
// Identities are only stable for goroutines pinned with runtime.LockOSThread; an
// unpinned goroutine may migrate between threads at any scheduling point.
package thread

import "strconv"

// ID identifies an OS thread.
type ID uint64

// None is the identity of no thread.
const None ID = 0

// Current returns the identity of the calling OS thread.
func Current() ID {
	return current()
}

func (id ID) String() string {
	if id == None {
		return "none"
	}
	return strconv.FormatUint(uint64(id), 10)
}
