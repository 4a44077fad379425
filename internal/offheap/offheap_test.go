package offheap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocateAndRelease(t *testing.T) {
	r, err := Allocate(4096)
	require.NoError(t, err)
	require.NotZero(t, r.Address())
	require.Equal(t, 4096, r.Len())

	require.NoError(t, r.Release())
	require.NoError(t, r.Release(), "second release must be a no-op")
}

func TestAllocateRejectsNonPositiveSize(t *testing.T) {
	_, err := Allocate(0)
	require.Error(t, err)
	_, err = Allocate(-1)
	require.Error(t, err)
}
