package membuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCopyToBetweenHeapBuffers(t *testing.T) {
	src, err := Wrap([]byte{1, 2, 3, 4, 5})
	require.NoError(t, err)
	dst, err := AllocateHeap(5)
	require.NoError(t, err)

	require.NoError(t, src.CopyTo(1, dst, 0, 3))
	arr, err := dst.GetArray()
	require.NoError(t, err)
	require.Equal(t, []byte{2, 3, 4, 0, 0}, arr)
}

func TestCopyToRejectsOutOfRange(t *testing.T) {
	src, err := Wrap([]byte{1, 2, 3})
	require.NoError(t, err)
	dst, err := AllocateHeap(2)
	require.NoError(t, err)

	require.Error(t, src.CopyTo(0, dst, 0, 3))
	require.Error(t, src.CopyTo(2, dst, 0, 5))
}

func TestCopyToRejectsClosedBuffer(t *testing.T) {
	owner := &fakeOwner{}
	src, err := FromNative(0x4000, 8, owner)
	require.NoError(t, err)
	require.NoError(t, src.Close())

	dst, err := AllocateHeap(8)
	require.NoError(t, err)
	err = src.CopyTo(0, dst, 0, 4)
	require.Error(t, err)
	var illegal *IllegalStateError
	require.ErrorAs(t, err, &illegal)
}

func TestSliceSharesHeapBacking(t *testing.T) {
	b, err := Wrap([]byte{1, 2, 3, 4, 5})
	require.NoError(t, err)
	s, err := b.Slice(1, 3)
	require.NoError(t, err)
	require.Equal(t, 3, s.Size())

	require.NoError(t, s.PutUint8(0, 99))
	arr, err := b.GetArray()
	require.NoError(t, err)
	require.Equal(t, byte(99), arr[1])
}

func TestSliceOffHeapSharesOwner(t *testing.T) {
	owner := &fakeOwner{}
	b, err := FromNative(0x5000, 16, owner)
	require.NoError(t, err)
	s, err := b.Slice(4, 8)
	require.NoError(t, err)
	require.Equal(t, uintptr(0x5004), s.address)
	require.Same(t, owner, s.owner.(*fakeOwner))
}

func TestCloneReferenceIndependentCursors(t *testing.T) {
	b, err := Wrap([]byte{1, 2, 3, 4})
	require.NoError(t, err)
	require.NoError(t, b.SetReaderIndex(2))

	c := b.CloneReference()
	require.Equal(t, 0, c.ReaderIndex())
	require.Equal(t, 2, b.ReaderIndex())

	require.NoError(t, c.PutUint8(0, 42))
	arr, err := b.GetArray()
	require.NoError(t, err)
	require.Equal(t, byte(42), arr[0])
}

func TestCompareAndEqualTo(t *testing.T) {
	a, err := Wrap([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	b, err := Wrap([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	cmp, err := a.Compare(b, 0, 0, a.Size())
	require.NoError(t, err)
	require.Equal(t, 0, cmp)
	eq, err := a.EqualTo(b, 0, 0, a.Size())
	require.NoError(t, err)
	require.True(t, eq)

	c, err := Wrap([]byte{1, 2, 3, 4, 5, 6, 7, 8, 10})
	require.NoError(t, err)
	cmp, err = a.Compare(c, 0, 0, a.Size())
	require.NoError(t, err)
	require.Negative(t, cmp)
	eq, err = a.EqualTo(c, 0, 0, a.Size())
	require.NoError(t, err)
	require.False(t, eq)

	// sub-range comparison: a and c differ only in their last byte, so
	// their first three bytes compare equal.
	cmp, err = a.Compare(c, 0, 0, 3)
	require.NoError(t, err)
	require.Equal(t, 0, cmp)

	_, err = a.Compare(b, 0, 0, a.Size()+1)
	require.Error(t, err)
}

func TestSliceAsForeignByteBuffer(t *testing.T) {
	b, err := Wrap([]byte{1, 2, 3})
	require.NoError(t, err)
	fb, err := b.SliceAsForeignByteBuffer(1, 2)
	require.NoError(t, err)
	require.False(t, fb.Direct())
	require.Equal(t, 2, fb.Len())
	require.Equal(t, []byte{2, 3}, fb.Bytes())

	off, err := FromNative(0x6000, 4, nil)
	require.NoError(t, err)
	fb2, err := off.SliceAsForeignByteBuffer(1, 2)
	require.NoError(t, err)
	require.True(t, fb2.Direct())
	require.Equal(t, uintptr(0x6001), fb2.Address())

	_, err = b.SliceAsForeignByteBuffer(0, 10)
	require.Error(t, err)
}

// fakeForeignByteBuffer lets tests exercise transfer paths against a
// non-direct ForeignByteBuffer implementation that isn't this package's own.
type fakeForeignByteBuffer struct {
	bytes    []byte
	readOnly bool
}

func (f *fakeForeignByteBuffer) Direct() bool     { return false }
func (f *fakeForeignByteBuffer) Address() uintptr { return 0 }
func (f *fakeForeignByteBuffer) Bytes() []byte    { return f.bytes }
func (f *fakeForeignByteBuffer) Len() int         { return len(f.bytes) }
func (f *fakeForeignByteBuffer) ReadOnly() bool   { return f.readOnly }

func TestCopyToForeignByteBufferSucceeds(t *testing.T) {
	b, err := Wrap([]byte{1, 2, 3, 4})
	require.NoError(t, err)
	dst := &fakeForeignByteBuffer{bytes: make([]byte, 4)}
	require.NoError(t, b.CopyToForeignByteBuffer(1, dst, 0, 2))
	require.Equal(t, []byte{2, 3, 0, 0}, dst.bytes)
}

func TestCopyToForeignByteBufferRejectsOverflow(t *testing.T) {
	b, err := Wrap([]byte{1, 2, 3, 4})
	require.NoError(t, err)
	dst := &fakeForeignByteBuffer{bytes: make([]byte, 2)}
	err = b.CopyToForeignByteBuffer(0, dst, 0, 4)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrBufferOverflow)
}

func TestCopyToForeignByteBufferRejectsReadOnly(t *testing.T) {
	b, err := Wrap([]byte{1, 2, 3, 4})
	require.NoError(t, err)
	dst := &fakeForeignByteBuffer{bytes: make([]byte, 4), readOnly: true}
	err = b.CopyToForeignByteBuffer(0, dst, 0, 4)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrReadOnly)
}

func TestCopyFromForeignByteBufferSucceeds(t *testing.T) {
	b, err := AllocateHeap(4)
	require.NoError(t, err)
	src := &fakeForeignByteBuffer{bytes: []byte{9, 8, 7, 6}}
	require.NoError(t, b.CopyFromForeignByteBuffer(0, src, 1, 2))
	arr, err := b.GetArray()
	require.NoError(t, err)
	require.Equal(t, []byte{8, 7, 0, 0}, arr)
}

func TestCopyFromForeignByteBufferRejectsUnderflow(t *testing.T) {
	b, err := AllocateHeap(4)
	require.NoError(t, err)
	src := &fakeForeignByteBuffer{bytes: []byte{9, 8}}
	err = b.CopyFromForeignByteBuffer(0, src, 0, 4)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrBufferUnderflow)
}
