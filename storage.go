package membuf

import (
	"fmt"
	"unsafe"
)

// ForeignOwner pins the lifetime of an externally-allocated direct memory
// region. A Buffer built over off-heap memory retains a ForeignOwner for
// as long as it (or any slice descended from it) references that memory,
// and never frees memory it did not allocate itself; releasing the region
// is entirely the owner's responsibility. See internal/offheap for a
// concrete mmap-backed implementation.
type ForeignOwner interface {
	// Release relinquishes the native region. Called at most once, by
	// whichever holder (buffer or slice) is done with it last; this
	// package never calls Release automatically.
	Release() error
}

// ForeignByteBuffer is the minimal shape this package needs from a
// generic foreign byte-buffer type in order to wrap or hand back a view
// of it, standing in for java.nio.ByteBuffer's direct/heap duality.
type ForeignByteBuffer interface {
	// Direct reports whether the buffer is backed by native memory.
	Direct() bool
	// Address returns the absolute native address backing a direct
	// buffer. Only valid when Direct() is true.
	Address() uintptr
	// Bytes returns the backing byte slice for a non-direct buffer.
	// Only valid when Direct() is false.
	Bytes() []byte
	// Len reports the buffer's length in bytes.
	Len() int
	// ReadOnly reports whether the buffer rejects writes. A transfer that
	// targets a read-only buffer fails with ErrReadOnly rather than
	// silently succeeding or corrupting memory the caller doesn't own.
	ReadOnly() bool
}

// Buffer is a byte-addressable memory buffer over either an on-heap byte
// array or an off-heap native memory region. See package doc for the
// storage model; storage is a tagged variant (heap == nil means off-heap)
// rather than an interface hierarchy, since the two modes share every
// operation and differ only in how a byte index maps to an address.
type Buffer struct {
	heap        []byte // backing array in heap mode; nil in off-heap mode
	arrayOffset int    // base offset into heap, heap mode only

	address uintptr      // absolute base address, off-heap mode only
	owner   ForeignOwner // pins the off-heap region's lifetime; may be nil

	size int // logical length; addressable range is [0, size)

	readerIdx int
	writerIdx int

	closed bool // true once an off-heap owner has been explicitly released
}

// IsOffHeap reports whether the buffer is backed by native memory rather
// than a Go byte array.
func (b *Buffer) IsOffHeap() bool { return b.heap == nil }

// Size returns the buffer's logical length in bytes.
func (b *Buffer) Size() int { return b.size }

// ReaderIndex returns the current read cursor.
func (b *Buffer) ReaderIndex() int { return b.readerIdx }

// WriterIndex returns the current write cursor.
func (b *Buffer) WriterIndex() int { return b.writerIdx }

// Remaining returns the number of unread bytes ahead of the reader cursor.
func (b *Buffer) Remaining() int { return b.size - b.readerIdx }

// WritableBytes returns the number of bytes available ahead of the writer
// cursor before a sequential write would need to grow the buffer. Named to
// mirror the readableBytes()/writableBytes() naming pair this buffer model
// is derived from.
func (b *Buffer) WritableBytes() int { return b.size - b.writerIdx }

// GetArray returns the backing byte array in heap mode. It fails with
// IllegalStateError in off-heap mode.
func (b *Buffer) GetArray() ([]byte, error) {
	if b.heap == nil {
		return nil, illegalState("buffer does not represent heap memory")
	}
	return b.heap, nil
}

// GetAddress returns the absolute native address in off-heap mode. It
// fails with IllegalStateError in heap mode.
func (b *Buffer) GetAddress() (uintptr, error) {
	if b.heap != nil {
		return 0, illegalState("buffer does not represent off-heap memory")
	}
	return b.address, nil
}

// FromArray wraps a sub-range of an existing byte array in heap mode.
func FromArray(data []byte, offset, length int) (*Buffer, error) {
	if data == nil {
		return nil, invalidArgument("nil backing array")
	}
	if offset < 0 || length < 0 {
		return nil, invalidArgument("negative offset or length")
	}
	if offset+length > len(data) {
		return nil, invalidArgument("offset+length exceeds array length")
	}
	b := &Buffer{}
	b.initHeap(data, offset, length)
	return b, nil
}

// Wrap is a convenience constructor equivalent to FromArray(data, 0, len(data)).
func Wrap(data []byte) (*Buffer, error) {
	return FromArray(data, 0, len(data))
}

// AllocateHeap creates a fresh zeroed heap buffer of the given size.
func AllocateHeap(initialSize int) (*Buffer, error) {
	if initialSize < 0 {
		return nil, invalidArgument("negative size")
	}
	b := &Buffer{}
	b.initHeap(make([]byte, initialSize), 0, initialSize)
	return b, nil
}

// maxAddr bounds off-heap addresses so range arithmetic (address + up to a
// 32-bit length) cannot overflow uintptr: the base address must stay below
// MAX_ADDR - MAX_I32.
const maxAddr = ^uintptr(0)
const maxI32 = 1<<31 - 1

// FromNative wraps a raw native memory region. owner may be nil if the
// caller is responsible for the region's lifetime and guarantees it
// outlives the buffer; otherwise owner is retained and released only by an
// explicit Close.
func FromNative(address uintptr, size int, owner ForeignOwner) (*Buffer, error) {
	if address == 0 {
		return nil, invalidArgument("nil or zero native address")
	}
	if size < 0 {
		return nil, invalidArgument("negative size")
	}
	if address >= maxAddr-uintptr(maxI32) {
		return nil, invalidArgument("native address too close to address space limit")
	}
	b := &Buffer{
		address: address,
		owner:   owner,
		size:    size,
	}
	return b, nil
}

// FromForeignByteBuffer wraps a generic foreign byte buffer: off-heap if
// it is direct (pinning it as ForeignOwner when it implements that
// interface), heap mode over its backing array otherwise.
func FromForeignByteBuffer(bb ForeignByteBuffer) (*Buffer, error) {
	if bb == nil {
		return nil, invalidArgument("nil foreign byte buffer")
	}
	if bb.Direct() {
		var owner ForeignOwner
		if o, ok := bb.(ForeignOwner); ok {
			owner = o
		}
		return FromNative(bb.Address(), bb.Len(), owner)
	}
	data := bb.Bytes()
	return FromArray(data, 0, len(data))
}

// PointTo reinitializes an existing buffer in heap mode without
// reallocating the Buffer value itself, for streaming adapters that reuse
// one Buffer across many incoming byte slices.
func (b *Buffer) PointTo(data []byte, offset, length int) error {
	if data == nil {
		return invalidArgument("nil backing array")
	}
	if offset < 0 || length < 0 {
		return invalidArgument("negative offset or length")
	}
	if offset+length > len(data) {
		return invalidArgument("offset+length exceeds array length")
	}
	b.initHeap(data, offset, length)
	b.readerIdx = 0
	b.writerIdx = 0
	b.closed = false
	return nil
}

func (b *Buffer) initHeap(data []byte, offset, length int) {
	b.heap = data
	b.arrayOffset = offset
	b.size = length
	b.address = 0
	b.owner = nil
}

// ptrAt returns the address of byte idx within the buffer's addressable
// range, valid in both storage modes. It performs no bounds check; callers
// must have already validated idx via checkBounds or hold a caller-side
// precondition (unsafe_* surface).
func (b *Buffer) ptrAt(idx int) unsafe.Pointer {
	if b.heap == nil {
		return unsafe.Pointer(b.address + uintptr(idx))
	}
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(b.heap)), b.arrayOffset+idx)
}

// unsafeBytesAt views n bytes of off-heap memory starting at address as a
// Go byte slice, without copying. The caller must ensure [address,
// address+n) is valid for the lifetime of the returned slice.
func unsafeBytesAt(address uintptr, n int) []byte {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(address)), n)
}

// unsafeBytesAtBase views n bytes of b's storage (heap or off-heap) starting
// at byte index idx as a Go byte slice, without copying.
func unsafeBytesAtBase(b *Buffer, idx, n int) []byte {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(b.ptrAt(idx)), n)
}

// checkBounds implements the bounds check in subtraction form: formulated
// as index > size - need rather than index + need > size, so
// it cannot overflow for pathological inputs. Only consulted by checked
// accessors, and only when bounds checking is enabled.
func (b *Buffer) checkBounds(idx, need int) error {
	if idx < 0 || idx > b.size-need {
		return outOfBounds(idx, need, b.size)
	}
	return nil
}

// Close releases the off-heap owner, if any. Buffers without a
// ForeignOwner (heap-mode, or off-heap wrapping memory the caller owns)
// are no-ops. After Close, further copy operations against this buffer
// fail with IllegalStateError.
func (b *Buffer) Close() error {
	if b.closed || b.owner == nil {
		return nil
	}
	b.closed = true
	return b.owner.Release()
}

// String returns a debug representation: size, readerIndex, writerIndex,
// storage mode, base, limit, in that order.
func (b *Buffer) String() string {
	mode := "heap"
	base := uintptr(b.arrayOffset)
	if b.heap == nil {
		mode = "offheap"
		base = b.address
	}
	limit := base + uintptr(b.size)
	return fmt.Sprintf("Buffer{size=%d, readerIndex=%d, writerIndex=%d, mode=%s, base=%d, limit=%d}",
		b.size, b.readerIdx, b.writerIdx, mode, base, limit)
}
