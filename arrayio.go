package membuf

// This file implements the size-prefixed primitive array helpers: a
// varint payload byte length followed by the elements themselves, in both the
// plain and 4-byte-aligned size encodings. These sit directly on top of the
// streaming Write*/Read* family in stream.go and the varint codecs in
// varint.go.

// WriteBytesWithSizeEmbedded writes len(data) as a varint followed by data
// itself, and returns the total number of bytes written.
func (b *Buffer) WriteBytesWithSizeEmbedded(data []byte) int {
	n := b.WriteVarUint32(uint32(len(data)))
	b.WriteBytes(data)
	return n + len(data)
}

// ReadBytesWithSizeEmbedded reads a varint-prefixed byte slice written by
// WriteBytesWithSizeEmbedded.
func (b *Buffer) ReadBytesWithSizeEmbedded() ([]byte, error) {
	n, err := b.ReadVarUint32()
	if err != nil {
		return nil, err
	}
	return b.ReadBytes(int(n))
}

// WriteBytesWithAlignedSizeEmbedded is WriteBytesWithSizeEmbedded using the
// 4-byte-aligned varint for the size prefix, for callers that need the
// payload itself to start on an aligned offset.
func (b *Buffer) WriteBytesWithAlignedSizeEmbedded(data []byte) int {
	n := b.WriteVarUint32Aligned(uint32(len(data)))
	b.WriteBytes(data)
	return n + len(data)
}

func (b *Buffer) ReadBytesWithAlignedSizeEmbedded() ([]byte, error) {
	n, err := b.ReadVarUint32Aligned()
	if err != nil {
		return nil, err
	}
	return b.ReadBytes(int(n))
}

// WriteCharsWithSizeEmbedded writes len(vals)*2 (the byte length of the
// payload, not the element count) as a varint, followed by each element as
// a 2-byte little-endian code unit.
func (b *Buffer) WriteCharsWithSizeEmbedded(vals []uint16) {
	b.WriteVarUint32(uint32(len(vals) * 2))
	b.ensure(b.writerIdx + len(vals)*2)
	for _, v := range vals {
		b.UnsafePutUint16(b.writerIdx, v)
		b.writerIdx += 2
	}
}

func (b *Buffer) ReadCharsWithSizeEmbedded() ([]uint16, error) {
	numBytes, err := b.ReadVarUint32()
	if err != nil {
		return nil, err
	}
	if boundsCheckingEnabled {
		if err := b.checkBounds(b.readerIdx, int(numBytes)); err != nil {
			return nil, err
		}
	}
	out := make([]uint16, numBytes/2)
	for i := range out {
		out[i] = b.UnsafeGetUint16(b.readerIdx)
		b.readerIdx += 2
	}
	return out, nil
}

// WriteInt32sWithSizeEmbedded writes len(vals)*4 (the byte length of the
// payload, not the element count) as a varint, followed by each element as
// a 4-byte little-endian int32.
func (b *Buffer) WriteInt32sWithSizeEmbedded(vals []int32) {
	b.WriteVarUint32(uint32(len(vals) * 4))
	b.ensure(b.writerIdx + len(vals)*4)
	for _, v := range vals {
		b.UnsafePutInt32(b.writerIdx, v)
		b.writerIdx += 4
	}
}

func (b *Buffer) ReadInt32sWithSizeEmbedded() ([]int32, error) {
	numBytes, err := b.ReadVarUint32()
	if err != nil {
		return nil, err
	}
	if boundsCheckingEnabled {
		if err := b.checkBounds(b.readerIdx, int(numBytes)); err != nil {
			return nil, err
		}
	}
	out := make([]int32, numBytes/4)
	for i := range out {
		out[i] = b.UnsafeGetInt32(b.readerIdx)
		b.readerIdx += 4
	}
	return out, nil
}

// WriteInt64sWithSizeEmbedded writes len(vals)*8 (the byte length of the
// payload, not the element count) as a varint, followed by each element as
// an 8-byte little-endian int64.
func (b *Buffer) WriteInt64sWithSizeEmbedded(vals []int64) {
	b.WriteVarUint32(uint32(len(vals) * 8))
	b.ensure(b.writerIdx + len(vals)*8)
	for _, v := range vals {
		b.UnsafePutInt64(b.writerIdx, v)
		b.writerIdx += 8
	}
}

func (b *Buffer) ReadInt64sWithSizeEmbedded() ([]int64, error) {
	numBytes, err := b.ReadVarUint32()
	if err != nil {
		return nil, err
	}
	if boundsCheckingEnabled {
		if err := b.checkBounds(b.readerIdx, int(numBytes)); err != nil {
			return nil, err
		}
	}
	out := make([]int64, numBytes/8)
	for i := range out {
		out[i] = b.UnsafeGetInt64(b.readerIdx)
		b.readerIdx += 8
	}
	return out, nil
}

// WriteFloat32sWithSizeEmbedded writes len(vals)*4 (the byte length of the
// payload, not the element count) as a varint, followed by each element as
// a 4-byte little-endian IEEE 754 float32.
func (b *Buffer) WriteFloat32sWithSizeEmbedded(vals []float32) {
	b.WriteVarUint32(uint32(len(vals) * 4))
	b.ensure(b.writerIdx + len(vals)*4)
	for _, v := range vals {
		b.UnsafePutFloat32(b.writerIdx, v)
		b.writerIdx += 4
	}
}

func (b *Buffer) ReadFloat32sWithSizeEmbedded() ([]float32, error) {
	numBytes, err := b.ReadVarUint32()
	if err != nil {
		return nil, err
	}
	if boundsCheckingEnabled {
		if err := b.checkBounds(b.readerIdx, int(numBytes)); err != nil {
			return nil, err
		}
	}
	out := make([]float32, numBytes/4)
	for i := range out {
		out[i] = b.UnsafeGetFloat32(b.readerIdx)
		b.readerIdx += 4
	}
	return out, nil
}

// WriteFloat64sWithSizeEmbedded writes len(vals)*8 (the byte length of the
// payload, not the element count) as a varint, followed by each element as
// an 8-byte little-endian IEEE 754 float64.
func (b *Buffer) WriteFloat64sWithSizeEmbedded(vals []float64) {
	b.WriteVarUint32(uint32(len(vals) * 8))
	b.ensure(b.writerIdx + len(vals)*8)
	for _, v := range vals {
		b.UnsafePutFloat64(b.writerIdx, v)
		b.writerIdx += 8
	}
}

func (b *Buffer) ReadFloat64sWithSizeEmbedded() ([]float64, error) {
	numBytes, err := b.ReadVarUint32()
	if err != nil {
		return nil, err
	}
	if boundsCheckingEnabled {
		if err := b.checkBounds(b.readerIdx, int(numBytes)); err != nil {
			return nil, err
		}
	}
	out := make([]float64, numBytes/8)
	for i := range out {
		out[i] = b.UnsafeGetFloat64(b.readerIdx)
		b.readerIdx += 8
	}
	return out, nil
}
