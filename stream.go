package membuf

// This file implements the streaming cursor family: reader and writer
// indices that advance independently of random-access Get/Put calls, plus
// the auto-growing sequential Write* path built on ensure(length).

// SetReaderIndex moves the read cursor to an absolute position within
// [0, size].
func (b *Buffer) SetReaderIndex(idx int) error {
	if idx < 0 || idx > b.size {
		return outOfBounds(idx, 0, b.size)
	}
	b.readerIdx = idx
	return nil
}

// SetWriterIndex moves the write cursor to an absolute position within
// [0, size].
func (b *Buffer) SetWriterIndex(idx int) error {
	if idx < 0 || idx > b.size {
		return outOfBounds(idx, 0, b.size)
	}
	b.writerIdx = idx
	return nil
}

// IncreaseReaderIndex advances the read cursor by delta, failing if that
// would move it past the end of the buffer.
func (b *Buffer) IncreaseReaderIndex(delta int) error {
	next := b.readerIdx + delta
	if delta < 0 || next > b.size {
		return outOfBounds(b.readerIdx, delta, b.size)
	}
	b.readerIdx = next
	return nil
}

// UnsafeIncreaseReaderIndex advances the read cursor without validating the
// result stays within the buffer.
func (b *Buffer) UnsafeIncreaseReaderIndex(delta int) { b.readerIdx += delta }

// IncreaseWriterIndex advances the write cursor by delta, failing if that
// would move it past the end of the buffer. Unlike a sequential Write* call
// it never grows the buffer; callers that want auto-growth go through
// Write*.
func (b *Buffer) IncreaseWriterIndex(delta int) error {
	next := b.writerIdx + delta
	if delta < 0 || next > b.size {
		return outOfBounds(b.writerIdx, delta, b.size)
	}
	b.writerIdx = next
	return nil
}

// UnsafeIncreaseWriterIndex advances the write cursor without validating the
// result stays within the buffer.
func (b *Buffer) UnsafeIncreaseWriterIndex(delta int) { b.writerIdx += delta }

// ensure grows the buffer so that its size is at least length: the new
// array is allocated at 2*length and size becomes the full doubled length,
// not the originally requested length, so a run of small sequential writes
// amortizes reallocation the way append() growth does.
//
// Growth is one-way: an off-heap buffer that needs to grow is promoted to
// heap storage and never returns to off-heap, since there is no requested
// native reallocation primitive in this package. The buffer's own owner
// reference is dropped once its bytes have been copied out; the caller
// remains responsible for releasing the original native region through
// whatever reference it holds elsewhere.
func (b *Buffer) ensure(length int) {
	if length <= b.size {
		return
	}
	newCap := length * 2
	newData := make([]byte, newCap)
	if b.size > 0 {
		if b.heap != nil {
			copy(newData, b.heap[b.arrayOffset:b.arrayOffset+b.size])
		} else {
			src := unsafeBytesAt(b.address, b.size)
			copy(newData, src)
		}
	}
	b.owner = nil
	b.initHeap(newData, 0, newCap)
}

// WriteBool writes a single byte and advances the writer cursor, growing
// the buffer first if necessary.
func (b *Buffer) WriteBool(v bool) {
	b.ensure(b.writerIdx + 1)
	b.UnsafePutBool(b.writerIdx, v)
	b.writerIdx++
}

func (b *Buffer) ReadBool() (bool, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(b.readerIdx, 1); err != nil {
			return false, err
		}
	}
	v := b.UnsafeGetBool(b.readerIdx)
	b.readerIdx++
	return v, nil
}

func (b *Buffer) WriteInt8(v int8) {
	b.ensure(b.writerIdx + 1)
	b.UnsafePutInt8(b.writerIdx, v)
	b.writerIdx++
}

func (b *Buffer) ReadInt8() (int8, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(b.readerIdx, 1); err != nil {
			return 0, err
		}
	}
	v := b.UnsafeGetInt8(b.readerIdx)
	b.readerIdx++
	return v, nil
}

func (b *Buffer) WriteUint8(v uint8) {
	b.ensure(b.writerIdx + 1)
	b.UnsafePutUint8(b.writerIdx, v)
	b.writerIdx++
}

func (b *Buffer) ReadUint8() (uint8, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(b.readerIdx, 1); err != nil {
			return 0, err
		}
	}
	v := b.UnsafeGetUint8(b.readerIdx)
	b.readerIdx++
	return v, nil
}

func (b *Buffer) WriteInt16(v int16) {
	b.ensure(b.writerIdx + 2)
	b.UnsafePutInt16(b.writerIdx, v)
	b.writerIdx += 2
}

func (b *Buffer) ReadInt16() (int16, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(b.readerIdx, 2); err != nil {
			return 0, err
		}
	}
	v := b.UnsafeGetInt16(b.readerIdx)
	b.readerIdx += 2
	return v, nil
}

func (b *Buffer) WriteUint16(v uint16) {
	b.ensure(b.writerIdx + 2)
	b.UnsafePutUint16(b.writerIdx, v)
	b.writerIdx += 2
}

func (b *Buffer) ReadUint16() (uint16, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(b.readerIdx, 2); err != nil {
			return 0, err
		}
	}
	v := b.UnsafeGetUint16(b.readerIdx)
	b.readerIdx += 2
	return v, nil
}

func (b *Buffer) WriteChar(v rune) { b.WriteUint16(uint16(v)) }

func (b *Buffer) ReadChar() (rune, error) {
	v, err := b.ReadUint16()
	return rune(v), err
}

func (b *Buffer) WriteInt32(v int32) {
	b.ensure(b.writerIdx + 4)
	b.UnsafePutInt32(b.writerIdx, v)
	b.writerIdx += 4
}

func (b *Buffer) ReadInt32() (int32, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(b.readerIdx, 4); err != nil {
			return 0, err
		}
	}
	v := b.UnsafeGetInt32(b.readerIdx)
	b.readerIdx += 4
	return v, nil
}

func (b *Buffer) WriteUint32(v uint32) {
	b.ensure(b.writerIdx + 4)
	b.UnsafePutUint32(b.writerIdx, v)
	b.writerIdx += 4
}

func (b *Buffer) ReadUint32() (uint32, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(b.readerIdx, 4); err != nil {
			return 0, err
		}
	}
	v := b.UnsafeGetUint32(b.readerIdx)
	b.readerIdx += 4
	return v, nil
}

func (b *Buffer) WriteFloat32(v float32) {
	b.ensure(b.writerIdx + 4)
	b.UnsafePutFloat32(b.writerIdx, v)
	b.writerIdx += 4
}

func (b *Buffer) ReadFloat32() (float32, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(b.readerIdx, 4); err != nil {
			return 0, err
		}
	}
	v := b.UnsafeGetFloat32(b.readerIdx)
	b.readerIdx += 4
	return v, nil
}

func (b *Buffer) WriteInt64(v int64) {
	b.ensure(b.writerIdx + 8)
	b.UnsafePutInt64(b.writerIdx, v)
	b.writerIdx += 8
}

func (b *Buffer) ReadInt64() (int64, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(b.readerIdx, 8); err != nil {
			return 0, err
		}
	}
	v := b.UnsafeGetInt64(b.readerIdx)
	b.readerIdx += 8
	return v, nil
}

func (b *Buffer) WriteUint64(v uint64) {
	b.ensure(b.writerIdx + 8)
	b.UnsafePutUint64(b.writerIdx, v)
	b.writerIdx += 8
}

func (b *Buffer) ReadUint64() (uint64, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(b.readerIdx, 8); err != nil {
			return 0, err
		}
	}
	v := b.UnsafeGetUint64(b.readerIdx)
	b.readerIdx += 8
	return v, nil
}

func (b *Buffer) WriteFloat64(v float64) {
	b.ensure(b.writerIdx + 8)
	b.UnsafePutFloat64(b.writerIdx, v)
	b.writerIdx += 8
}

func (b *Buffer) ReadFloat64() (float64, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(b.readerIdx, 8); err != nil {
			return 0, err
		}
	}
	v := b.UnsafeGetFloat64(b.readerIdx)
	b.readerIdx += 8
	return v, nil
}

// WriteBytes appends the whole of data at the writer cursor, growing the
// buffer first if necessary.
func (b *Buffer) WriteBytes(data []byte) {
	if len(data) == 0 {
		return
	}
	b.ensure(b.writerIdx + len(data))
	if b.heap != nil {
		copy(b.heap[b.arrayOffset+b.writerIdx:], data)
	} else {
		copy(unsafeBytesAtBase(b, b.writerIdx, len(data)), data)
	}
	b.writerIdx += len(data)
}

// ReadBytes reads exactly n bytes from the reader cursor.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(b.readerIdx, n); err != nil {
			return nil, err
		}
	}
	out := make([]byte, n)
	if b.heap != nil {
		copy(out, b.heap[b.arrayOffset+b.readerIdx:b.arrayOffset+b.readerIdx+n])
	} else {
		copy(out, unsafeBytesAtBase(b, b.readerIdx, n))
	}
	b.readerIdx += n
	return out, nil
}
