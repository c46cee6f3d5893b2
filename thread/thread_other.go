//go:build !linux && !windows

package thread

/*
#include <pthread.h>
#include <stdint.h>

static uint64_t glwindow_thread_self(void) {
	return (uint64_t)(uintptr_t)pthread_self();
}
*/
import "C"

func current() ID {
	return ID(C.glwindow_thread_self())
}
