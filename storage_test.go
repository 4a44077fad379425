package membuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndAccessors(t *testing.T) {
	b, err := Wrap([]byte{1, 2, 3, 4})
	require.NoError(t, err)
	require.False(t, b.IsOffHeap())
	require.Equal(t, 4, b.Size())
	require.Equal(t, 4, b.Remaining())
	require.Equal(t, 4, b.WritableBytes())

	arr, err := b.GetArray()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, arr)

	_, err = b.GetAddress()
	require.Error(t, err)
}

func TestFromArrayValidation(t *testing.T) {
	_, err := FromArray(nil, 0, 0)
	require.Error(t, err)

	_, err = FromArray([]byte{1, 2}, 0, -1)
	require.Error(t, err)

	_, err = FromArray([]byte{1, 2}, 1, 5)
	require.Error(t, err)

	b, err := FromArray([]byte{1, 2, 3}, 1, 2)
	require.NoError(t, err)
	require.Equal(t, 2, b.Size())
}

func TestAllocateHeap(t *testing.T) {
	b, err := AllocateHeap(16)
	require.NoError(t, err)
	require.Equal(t, 16, b.Size())
	arr, err := b.GetArray()
	require.NoError(t, err)
	require.Len(t, arr, 16)
}

func TestFromNativeValidation(t *testing.T) {
	_, err := FromNative(0, 8, nil)
	require.Error(t, err)

	_, err = FromNative(1, -1, nil)
	require.Error(t, err)

	b, err := FromNative(0x1000, 8, nil)
	require.NoError(t, err)
	require.True(t, b.IsOffHeap())
	addr, err := b.GetAddress()
	require.NoError(t, err)
	require.Equal(t, uintptr(0x1000), addr)

	_, err = b.GetArray()
	require.Error(t, err)
}

type fakeOwner struct{ released bool }

func (f *fakeOwner) Release() error {
	f.released = true
	return nil
}

func TestCloseReleasesOwner(t *testing.T) {
	owner := &fakeOwner{}
	b, err := FromNative(0x2000, 4, owner)
	require.NoError(t, err)

	require.NoError(t, b.Close())
	require.True(t, owner.released)

	owner.released = false
	require.NoError(t, b.Close())
	require.False(t, owner.released, "second Close must be a no-op")
}

func TestPointToReinitializes(t *testing.T) {
	b, err := AllocateHeap(4)
	require.NoError(t, err)
	require.NoError(t, b.SetReaderIndex(2))
	require.NoError(t, b.SetWriterIndex(3))

	require.NoError(t, b.PointTo([]byte{9, 9, 9, 9, 9}, 1, 3))
	require.Equal(t, 3, b.Size())
	require.Equal(t, 0, b.ReaderIndex())
	require.Equal(t, 0, b.WriterIndex())
}

func TestStringFormat(t *testing.T) {
	b, err := AllocateHeap(4)
	require.NoError(t, err)
	require.Contains(t, b.String(), "mode=heap")

	off, err := FromNative(0x3000, 4, nil)
	require.NoError(t, err)
	require.Contains(t, off.String(), "mode=offheap")
}
