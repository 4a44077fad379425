package membuf

import "fmt"

// This file implements bulk copy between buffers and foreign memory,
// slicing, comparison, and reference cloning, layered on the storage
// descriptor and primitive accessors from storage.go and primitives.go.

func (b *Buffer) rangeCheck(idx, length int) error {
	if b.closed {
		return illegalState("buffer is closed")
	}
	if idx < 0 || length < 0 || idx+length > b.size {
		return outOfBounds(idx, length, b.size)
	}
	return nil
}

// CopyTo copies length bytes starting at srcIdx in b to dst starting at
// dstIdx, checking the source range before the destination range.
func (b *Buffer) CopyTo(srcIdx int, dst *Buffer, dstIdx int, length int) error {
	if err := b.rangeCheck(srcIdx, length); err != nil {
		return err
	}
	if err := dst.rangeCheck(dstIdx, length); err != nil {
		return err
	}
	if length == 0 {
		return nil
	}
	if b.heap != nil && dst.heap != nil {
		copy(dst.heap[dst.arrayOffset+dstIdx:], b.heap[b.arrayOffset+srcIdx:b.arrayOffset+srcIdx+length])
		return nil
	}
	copy(unsafeBytesAtBase(dst, dstIdx, length), unsafeBytesAtBase(b, srcIdx, length))
	return nil
}

// CopyToForeign copies length bytes starting at srcIdx in b to the native
// memory region at dstAddress.
func (b *Buffer) CopyToForeign(srcIdx int, dstAddress uintptr, length int) error {
	if err := b.rangeCheck(srcIdx, length); err != nil {
		return err
	}
	if length == 0 {
		return nil
	}
	copy(unsafeBytesAt(dstAddress, length), unsafeBytesAtBase(b, srcIdx, length))
	return nil
}

// CopyFromForeign copies length bytes from the native memory region at
// srcAddress into b starting at dstIdx.
func (b *Buffer) CopyFromForeign(dstIdx int, srcAddress uintptr, length int) error {
	if err := b.rangeCheck(dstIdx, length); err != nil {
		return err
	}
	if length == 0 {
		return nil
	}
	copy(unsafeBytesAtBase(b, dstIdx, length), unsafeBytesAt(srcAddress, length))
	return nil
}

// CopyToForeignByteBuffer copies length bytes starting at srcIdx in b into
// dst starting at dstIdx. Unlike CopyToForeign, dst's own declared length is
// known, so this checks the destination side too: an out-of-range dstIdx or
// length fails with ErrBufferOverflow, and a dst that rejects writes fails
// with ErrReadOnly, rather than the raw pointer copy silently running past
// memory this package doesn't own.
func (b *Buffer) CopyToForeignByteBuffer(srcIdx int, dst ForeignByteBuffer, dstIdx, length int) error {
	if err := b.rangeCheck(srcIdx, length); err != nil {
		return err
	}
	if dstIdx < 0 || length < 0 || dstIdx+length > dst.Len() {
		return fmt.Errorf("membuf: dst has insufficient space for %d bytes at %d: %w", length, dstIdx, ErrBufferOverflow)
	}
	if dst.ReadOnly() {
		return fmt.Errorf("membuf: cannot write into read-only foreign target: %w", ErrReadOnly)
	}
	if length == 0 {
		return nil
	}
	if dst.Direct() {
		return b.CopyToForeign(srcIdx, dst.Address()+uintptr(dstIdx), length)
	}
	copy(dst.Bytes()[dstIdx:dstIdx+length], unsafeBytesAtBase(b, srcIdx, length))
	return nil
}

// CopyFromForeignByteBuffer copies length bytes starting at srcIdx in src
// into b starting at dstIdx. An out-of-range srcIdx or length against src's
// declared length fails with ErrBufferUnderflow rather than reading past
// memory this package doesn't own.
func (b *Buffer) CopyFromForeignByteBuffer(dstIdx int, src ForeignByteBuffer, srcIdx, length int) error {
	if err := b.rangeCheck(dstIdx, length); err != nil {
		return err
	}
	if srcIdx < 0 || length < 0 || srcIdx+length > src.Len() {
		return fmt.Errorf("membuf: src has insufficient data for %d bytes at %d: %w", length, srcIdx, ErrBufferUnderflow)
	}
	if length == 0 {
		return nil
	}
	if src.Direct() {
		return b.CopyFromForeign(dstIdx, src.Address()+uintptr(srcIdx), length)
	}
	copy(unsafeBytesAtBase(b, dstIdx, length), src.Bytes()[srcIdx:srcIdx+length])
	return nil
}

// Slice returns a new Buffer viewing [offset, offset+length) of b's
// addressable range. The slice shares the same backing storage: in heap
// mode it shares the array, in off-heap mode it shares the base address
// arithmetic and the ForeignOwner reference. Its own reader/writer cursors
// start at zero, independent of b's.
func (b *Buffer) Slice(offset, length int) (*Buffer, error) {
	if err := b.rangeCheck(offset, length); err != nil {
		return nil, err
	}
	s := &Buffer{size: length}
	if b.heap != nil {
		s.heap = b.heap
		s.arrayOffset = b.arrayOffset + offset
	} else {
		s.address = b.address + uintptr(offset)
		s.owner = b.owner
	}
	return s, nil
}

// CloneReference returns a new Buffer sharing b's backing storage in its
// entirety, with its own zeroed cursors. Closing a cloned reference
// releases the same ForeignOwner as the original in off-heap mode; callers
// that clone an off-heap buffer are responsible for calling Close on
// exactly one of the resulting references.
func (b *Buffer) CloneReference() *Buffer {
	clone := *b
	clone.readerIdx = 0
	clone.writerIdx = 0
	clone.closed = false
	return &clone
}

// concreteForeignByteBuffer adapts a Buffer's current storage into the
// minimal ForeignByteBuffer shape, for handing a view back to a caller that
// only understands that interface.
type concreteForeignByteBuffer struct {
	direct  bool
	address uintptr
	bytes   []byte
	length  int
}

func (f *concreteForeignByteBuffer) Direct() bool     { return f.direct }
func (f *concreteForeignByteBuffer) Address() uintptr { return f.address }
func (f *concreteForeignByteBuffer) Bytes() []byte    { return f.bytes }
func (f *concreteForeignByteBuffer) Len() int         { return f.length }

// ReadOnly is always false: a view handed back over this buffer's own
// storage is exactly as writable as the buffer itself.
func (f *concreteForeignByteBuffer) ReadOnly() bool { return false }

// SliceAsForeignByteBuffer exposes the sub-range [offset, offset+length) of
// b's addressable range as a ForeignByteBuffer, for handing back to a
// caller that only understands that interface rather than *Buffer directly.
func (b *Buffer) SliceAsForeignByteBuffer(offset, length int) (ForeignByteBuffer, error) {
	if err := b.rangeCheck(offset, length); err != nil {
		return nil, err
	}
	if b.heap == nil {
		return &concreteForeignByteBuffer{direct: true, address: b.address + uintptr(offset), length: length}, nil
	}
	base := b.arrayOffset + offset
	return &concreteForeignByteBuffer{
		bytes:  b.heap[base : base+length],
		length: length,
	}, nil
}

// Compare performs an unsigned lexicographic comparison of length bytes
// starting at off1 in b against length bytes starting at off2 in other,
// returning a negative number, zero, or a positive number the way
// bytes.Compare does. It compares 8 bytes at a time using a big-endian
// unsigned-integer trick, which turns a byte-by-byte loop into a handful of
// 64-bit comparisons for the common case of mostly-equal ranges, then falls
// back to a byte-by-byte tail comparison for a length not a multiple of 8.
func (b *Buffer) Compare(other *Buffer, off1, off2, length int) (int, error) {
	if err := b.rangeCheck(off1, length); err != nil {
		return 0, err
	}
	if err := other.rangeCheck(off2, length); err != nil {
		return 0, err
	}
	i := 0
	for ; i+8 <= length; i += 8 {
		bv := b.getInt64B(off1 + i)
		ov := other.getInt64B(off2 + i)
		if bv != ov {
			if uint64(bv) < uint64(ov) {
				return -1, nil
			}
			return 1, nil
		}
	}
	for ; i < length; i++ {
		bb, _ := b.GetUint8(off1 + i)
		ob, _ := other.GetUint8(off2 + i)
		if bb != ob {
			if bb < ob {
				return -1, nil
			}
			return 1, nil
		}
	}
	return 0, nil
}

// EqualTo reports whether the length-byte range starting at off1 in b is
// identical to the length-byte range starting at off2 in other.
func (b *Buffer) EqualTo(other *Buffer, off1, off2, length int) (bool, error) {
	cmp, err := b.Compare(other, off1, off2, length)
	if err != nil {
		return false, err
	}
	return cmp == 0, nil
}
