//go:build windows

package offheap

import (
	"golang.org/x/sys/windows"
)

// Allocate reserves and commits size bytes via VirtualAlloc and returns a
// Region pinning it. The mapping is released via VirtualFree.
func Allocate(size int) (*Region, error) {
	if size <= 0 {
		return nil, tooSmall(size)
	}
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	r := &Region{address: addr, length: size}
	r.free = func() error { return windows.VirtualFree(addr, 0, windows.MEM_RELEASE) }
	return r, nil
}
