//go:build linux

package offheap

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Allocate maps size bytes of anonymous, private memory via mmap and
// returns a Region pinning it. The mapping is released via munmap.
func Allocate(size int) (*Region, error) {
	if size <= 0 {
		return nil, tooSmall(size)
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(data)))
	r := &Region{address: addr, length: size}
	r.free = func() error { return unix.Munmap(data) }
	return r, nil
}
