package membuf

// This file implements the varint wire-format family used by the
// cross-language serialization protocol this buffer backs: a plain
// positive varint, its zig-zag signed counterpart, a 4-byte-aligned
// variant used where the wire format wants field boundaries to fall on
// 4-byte boundaries, a 64-bit var-long pair mirroring the 32-bit ones,
// and the small-long-as-int (SLI) encoding that favors a fixed 4-byte
// form for the common case of a long that actually fits in 31 bits.

const (
	maxVarint32Len = 5
	maxVarint64Len = 9
)

// WriteVarUint32 writes v as a 1-5 byte base-128 varint (7 data bits per
// byte, high bit set on every byte but the last) and returns the number of
// bytes written.
func (b *Buffer) WriteVarUint32(v uint32) int {
	b.ensure(b.writerIdx + maxVarint32Len)
	n := 0
	for v >= 0x80 {
		b.UnsafePutUint8(b.writerIdx+n, byte(v)|0x80)
		v >>= 7
		n++
	}
	b.UnsafePutUint8(b.writerIdx+n, byte(v))
	n++
	b.writerIdx += n
	return n
}

// ReadVarUint32 reads a positive varint written by WriteVarUint32.
func (b *Buffer) ReadVarUint32() (uint32, error) {
	var result uint32
	shift := uint(0)
	for i := 0; i < maxVarint32Len; i++ {
		v, err := b.ReadUint8()
		if err != nil {
			return 0, err
		}
		result |= uint32(v&0x7f) << shift
		if v&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
	return 0, invalidArgument("varint32 exceeds 5 bytes")
}

// WriteVarInt32 zig-zag encodes v and writes it as a positive varint, so
// small-magnitude negative values cost the same as small positive ones.
func (b *Buffer) WriteVarInt32(v int32) int {
	return int(b.WriteVarUint32(zigzag32(v)))
}

func (b *Buffer) ReadVarInt32() (int32, error) {
	v, err := b.ReadVarUint32()
	if err != nil {
		return 0, err
	}
	return unzigzag32(v), nil
}

func zigzag32(v int32) uint32   { return uint32((v << 1) ^ (v >> 31)) }
func unzigzag32(v uint32) int32 { return int32(v>>1) ^ -int32(v&1) }

// WriteVarUint64 writes v as a 1-9 byte varint: up to 8 base-128 groups (7
// data bits, high bit set as a continuation flag) followed, if all 8 were
// needed, by a 9th byte holding the remaining 8 bits outright with no
// continuation flag. 64 bits doesn't divide evenly into 7-bit groups (a
// plain base-128 encoding would need a 10th byte for the top bits of
// values >= 2^63), so the 9th group is special-cased to carry a full byte
// instead of 7 bits, capping the format at 9 bytes for the entire uint64
// range.
func (b *Buffer) WriteVarUint64(v uint64) int {
	b.ensure(b.writerIdx + maxVarint64Len)
	n := 0
	for n < maxVarint64Len-1 && v >= 0x80 {
		b.UnsafePutUint8(b.writerIdx+n, byte(v)|0x80)
		v >>= 7
		n++
	}
	b.UnsafePutUint8(b.writerIdx+n, byte(v))
	n++
	b.writerIdx += n
	return n
}

func (b *Buffer) ReadVarUint64() (uint64, error) {
	var result uint64
	shift := uint(0)
	for i := 0; i < maxVarint64Len-1; i++ {
		v, err := b.ReadUint8()
		if err != nil {
			return 0, err
		}
		if v&0x80 == 0 {
			result |= uint64(v) << shift
			return result, nil
		}
		result |= uint64(v&0x7f) << shift
		shift += 7
	}
	// 9th byte: the remaining bits stored outright, no continuation flag.
	v, err := b.ReadUint8()
	if err != nil {
		return 0, err
	}
	result |= uint64(v) << shift
	return result, nil
}

func (b *Buffer) WriteVarInt64(v int64) int {
	return int(b.WriteVarUint64(zigzag64(v)))
}

func (b *Buffer) ReadVarInt64() (int64, error) {
	v, err := b.ReadVarUint64()
	if err != nil {
		return 0, err
	}
	return unzigzag64(v), nil
}

func zigzag64(v int64) uint64   { return uint64((v << 1) ^ (v >> 63)) }
func unzigzag64(v uint64) int64 { return int64(v>>1) ^ -int64(v&1) }

// --- 4-byte-aligned varint ---
//
// Each byte carries 6 data bits in bits 0-5. Bit 7 means "another data
// group follows" exactly like the plain varint's continuation bit. Once a
// byte is emitted with bit 7 clear, no further data groups follow; that
// byte's bit 6 then distinguishes whether the field ends right there
// (1, terminator) or whether zero-value padding bytes follow to bring the
// writer index up to a 4-byte boundary (0, padding follows). Each padding
// byte repeats the same bit-6 convention: 0 means another padding byte
// follows, 1 marks the last byte of the field. A value needs at most 6
// data groups to cover the full uint32 range, and at most 3 padding bytes
// to reach alignment, giving the 1-9 byte range this codec occupies.
//
// Worked example: writing value 5 at writer index 1 emits three bytes at
// offsets 1-3: 0x05 (the lone data group, bit 7 clear since it's the only
// one, bit 6 clear because 2 padding bytes are needed), 0x00 (padding,
// more follows), 0x40 (padding, terminator) — leaving the writer index at
// 4.
const (
	alignedMoreDataBit   = 0x80
	alignedTerminatorBit = 0x40
	alignedDataMask      = 0x3f
)

func alignedGroups(v uint32) []byte {
	groups := make([]byte, 0, 6)
	for {
		groups = append(groups, byte(v&alignedDataMask))
		v >>= 6
		if v == 0 {
			break
		}
	}
	return groups
}

// WriteVarUint32Aligned writes v as a 4-byte-aligned varint: it always
// leaves the writer index at a multiple of 4 once the field is complete.
func (b *Buffer) WriteVarUint32Aligned(v uint32) int {
	start := b.writerIdx
	groups := alignedGroups(v)
	natLen := len(groups)
	pad := (4 - (start+natLen)%4) % 4
	total := natLen + pad
	b.ensure(start + total)
	for i, g := range groups {
		byteVal := g
		switch {
		case i != natLen-1:
			byteVal |= alignedMoreDataBit
		case pad == 0:
			byteVal |= alignedTerminatorBit
		}
		b.UnsafePutUint8(b.writerIdx, byteVal)
		b.writerIdx++
	}
	for i := 0; i < pad; i++ {
		var byteVal byte
		if i == pad-1 {
			byteVal = alignedTerminatorBit
		}
		b.UnsafePutUint8(b.writerIdx, byteVal)
		b.writerIdx++
	}
	return total
}

// ReadVarUint32Aligned reads a value written by WriteVarUint32Aligned. It
// rejects a malformed encoding that runs past 3 padding bytes without a
// terminator, and past 9 bytes overall.
func (b *Buffer) ReadVarUint32Aligned() (uint32, error) {
	var result uint32
	shift := uint(0)
	dataDone := false
	padCount := 0
	for i := 0; i < maxVarint64Len; i++ {
		v, err := b.ReadUint8()
		if err != nil {
			return 0, err
		}
		if !dataDone {
			result |= uint32(v&alignedDataMask) << shift
			shift += 6
			if v&alignedMoreDataBit != 0 {
				continue
			}
			dataDone = true
			if v&alignedTerminatorBit != 0 {
				return result, nil
			}
			continue
		}
		padCount++
		if padCount > 3 {
			return 0, invalidArgument("aligned varint32 padding exceeds 3 bytes")
		}
		if v&alignedTerminatorBit != 0 {
			return result, nil
		}
	}
	return 0, invalidArgument("aligned varint32 exceeds 9 bytes")
}

// --- SLI: small-long-as-int ---
//
// Most longs seen in practice fit in 31 bits. WriteSliInt64 exploits that:
// values in [sliMin, sliMax] are shifted left one bit (the vacated low bit
// is always zero) and written as a plain 4-byte little-endian int32.
// Values outside that range are written as a 1-byte marker whose low bit is
// set, followed by the full 8-byte int64. Because the small form's leading
// byte always has its low bit clear (the shift guarantees it) and the big
// form's marker byte always has its low bit set, a reader can tell the two
// forms apart by inspecting a single bit before deciding how many more
// bytes to consume.
const (
	sliMax int64 = 1<<30 - 1
	sliMin int64 = -(1 << 30)
)

func (b *Buffer) WriteSliInt64(v int64) int {
	if v >= sliMin && v <= sliMax {
		b.WriteInt32(int32(v) << 1)
		return 4
	}
	b.WriteUint8(1)
	b.WriteInt64(v)
	return 9
}

func (b *Buffer) ReadSliInt64() (int64, error) {
	tag, err := b.GetUint8(b.readerIdx)
	if err != nil {
		return 0, err
	}
	if tag&1 == 0 {
		v, err := b.ReadInt32()
		if err != nil {
			return 0, err
		}
		return int64(v >> 1), nil
	}
	if _, err := b.ReadUint8(); err != nil {
		return 0, err
	}
	return b.ReadInt64()
}
