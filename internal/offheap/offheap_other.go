//go:build !linux && !windows

package offheap

import "unsafe"

// Allocate falls back to a Go-heap allocation on platforms with no mmap or
// VirtualAlloc backend wired here. The backing slice is retained by the
// closure captured in the Region so it is not collected while the region is
// live; releasing it just drops that reference.
func Allocate(size int) (*Region, error) {
	if size <= 0 {
		return nil, tooSmall(size)
	}
	data := make([]byte, size)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(data)))
	r := &Region{address: addr, length: size}
	r.free = func() error {
		data = nil
		return nil
	}
	return r, nil
}
