package membuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarUint32LengthBoundaries(t *testing.T) {
	cases := []struct {
		v    uint32
		want int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
		{2097151, 3},
		{2097152, 4},
		{268435455, 4},
		{268435456, 5},
		{4294967295, 5},
	}
	for _, c := range cases {
		b, err := AllocateHeap(0)
		require.NoError(t, err)
		n := b.WriteVarUint32(c.v)
		require.Equal(t, c.want, n, "value %d", c.v)

		got, err := b.ReadVarUint32()
		require.NoError(t, err)
		require.Equal(t, c.v, got)
	}
}

func TestVarInt32ZigZagRoundTripWithNegatives(t *testing.T) {
	values := []int32{0, -1, 1, -64, 63, -1073741824, 1073741823, -2147483648, 2147483647}
	for _, v := range values {
		b, err := AllocateHeap(0)
		require.NoError(t, err)
		b.WriteVarInt32(v)
		got, err := b.ReadVarInt32()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestVarUint64RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 1 << 35, ^uint64(0)}
	for _, v := range values {
		b, err := AllocateHeap(0)
		require.NoError(t, err)
		b.WriteVarUint64(v)
		got, err := b.ReadVarUint64()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestVarInt64ZigZagRoundTrip(t *testing.T) {
	values := []int64{0, -1, 1, -9223372036854775808, 9223372036854775807}
	for _, v := range values {
		b, err := AllocateHeap(0)
		require.NoError(t, err)
		b.WriteVarInt64(v)
		got, err := b.ReadVarInt64()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestAlignedVarintLeavesWriterIndexAligned(t *testing.T) {
	b, err := AllocateHeap(0)
	require.NoError(t, err)

	b.WriteInt8(1) // shift start to offset 1
	b.WriteVarUint32Aligned(5)
	require.Equal(t, 0, b.WriterIndex()%4)
}

func TestAlignedVarintMatchesWorkedExample(t *testing.T) {
	b, err := AllocateHeap(0)
	require.NoError(t, err)

	b.WriteInt8(1) // shift start to offset 1
	n := b.WriteVarUint32Aligned(5)
	require.Equal(t, 3, n)
	arr, err := b.GetArray()
	require.NoError(t, err)
	require.Equal(t, []byte{0x05, 0x00, 0x40}, arr[1:4])

	require.NoError(t, b.SetReaderIndex(1))
	got, err := b.ReadVarUint32Aligned()
	require.NoError(t, err)
	require.EqualValues(t, 5, got)
}

func TestAlignedVarintRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 5, 63, 64, 4095, 1 << 20, 4294967295}
	for _, v := range values {
		b, err := AllocateHeap(0)
		require.NoError(t, err)
		b.WriteVarUint32Aligned(v)
		require.Equal(t, 0, b.WriterIndex()%4)
		got, err := b.ReadVarUint32Aligned()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestAlignedVarintRejectsExcessPadding(t *testing.T) {
	b, err := AllocateHeap(0)
	require.NoError(t, err)
	// A well-formed field never carries more than 3 padding bytes; force a
	// 4th by writing one data byte (bit 7 clear, bit 6 clear: "more
	// padding") followed by four zero padding bytes with no terminator.
	b.WriteUint8(0x00)
	b.WriteUint8(0x00)
	b.WriteUint8(0x00)
	b.WriteUint8(0x00)
	b.WriteUint8(0x00)
	_, err = b.ReadVarUint32Aligned()
	require.Error(t, err)
	var invalidArg *InvalidArgumentError
	require.ErrorAs(t, err, &invalidArg)
}

func TestSliInt64BoundaryUsesFourByteForm(t *testing.T) {
	b, err := AllocateHeap(0)
	require.NoError(t, err)
	n := b.WriteSliInt64(1073741823)
	require.Equal(t, 4, n)
	got, err := b.ReadSliInt64()
	require.NoError(t, err)
	require.EqualValues(t, 1073741823, got)
}

func TestSliInt64BoundaryUsesNineByteForm(t *testing.T) {
	b, err := AllocateHeap(0)
	require.NoError(t, err)
	n := b.WriteSliInt64(1073741824)
	require.Equal(t, 9, n)
	got, err := b.ReadSliInt64()
	require.NoError(t, err)
	require.EqualValues(t, 1073741824, got)
}

func TestSliInt64NegativeBoundary(t *testing.T) {
	b, err := AllocateHeap(0)
	require.NoError(t, err)
	require.Equal(t, 4, b.WriteSliInt64(-1073741824))
	got, err := b.ReadSliInt64()
	require.NoError(t, err)
	require.EqualValues(t, -1073741824, got)

	b2, err := AllocateHeap(0)
	require.NoError(t, err)
	require.Equal(t, 9, b2.WriteSliInt64(-1073741825))
	got2, err := b2.ReadSliInt64()
	require.NoError(t, err)
	require.EqualValues(t, -1073741825, got2)
}

func TestPutIntEndiannessNeutralOnTheWire(t *testing.T) {
	b, err := AllocateHeap(4)
	require.NoError(t, err)
	require.NoError(t, b.PutInt32(0, 0x01020304))
	arr, err := b.GetArray()
	require.NoError(t, err)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, arr)
}
