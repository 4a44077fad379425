package membuf

import (
	"math"
)

// This file implements the random-access primitive family: for each of
// {bool, i8, i16, u16/char, i32, i64, f32, f64} there are
// four variants (checked/unchecked x LE-on-wire/native). Checked variants
// call checkBounds and are gated by boundsCheckingEnabled; unsafe variants
// never consult it and corrupt memory if their precondition (index within
// range) is violated by the caller. Every access goes through ptrAt and a
// raw pointer load/store rather than Go slice indexing, so the unsafe
// surface really is unchecked end to end, not merely "checked once more by
// the runtime" underneath.

// --- bool / int8 / uint8: single byte, no endianness concerns ---

func (b *Buffer) GetBool(idx int) (bool, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 1); err != nil {
			return false, err
		}
	}
	return b.UnsafeGetBool(idx), nil
}

func (b *Buffer) UnsafeGetBool(idx int) bool {
	return *(*byte)(b.ptrAt(idx)) != 0
}

func (b *Buffer) PutBool(idx int, v bool) error {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 1); err != nil {
			return err
		}
	}
	b.UnsafePutBool(idx, v)
	return nil
}

func (b *Buffer) UnsafePutBool(idx int, v bool) {
	var raw byte
	if v {
		raw = 1
	}
	*(*byte)(b.ptrAt(idx)) = raw
}

func (b *Buffer) GetInt8(idx int) (int8, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 1); err != nil {
			return 0, err
		}
	}
	return b.UnsafeGetInt8(idx), nil
}

func (b *Buffer) UnsafeGetInt8(idx int) int8 { return *(*int8)(b.ptrAt(idx)) }

func (b *Buffer) PutInt8(idx int, v int8) error {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 1); err != nil {
			return err
		}
	}
	b.UnsafePutInt8(idx, v)
	return nil
}

func (b *Buffer) UnsafePutInt8(idx int, v int8) { *(*int8)(b.ptrAt(idx)) = v }

func (b *Buffer) GetUint8(idx int) (uint8, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 1); err != nil {
			return 0, err
		}
	}
	return b.UnsafeGetUint8(idx), nil
}

func (b *Buffer) UnsafeGetUint8(idx int) uint8 { return *(*uint8)(b.ptrAt(idx)) }

func (b *Buffer) PutUint8(idx int, v uint8) error {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 1); err != nil {
			return err
		}
	}
	b.UnsafePutUint8(idx, v)
	return nil
}

func (b *Buffer) UnsafePutUint8(idx int, v uint8) { *(*uint8)(b.ptrAt(idx)) = v }

// --- int16 / uint16 (char) ---

func (b *Buffer) GetInt16(idx int) (int16, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 2); err != nil {
			return 0, err
		}
	}
	return b.UnsafeGetInt16(idx), nil
}

func (b *Buffer) UnsafeGetInt16(idx int) int16 {
	return int16(ontoLE16(*(*uint16)(b.ptrAt(idx))))
}

func (b *Buffer) GetInt16Native(idx int) (int16, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 2); err != nil {
			return 0, err
		}
	}
	return b.UnsafeGetInt16Native(idx), nil
}

func (b *Buffer) UnsafeGetInt16Native(idx int) int16 { return *(*int16)(b.ptrAt(idx)) }

func (b *Buffer) PutInt16(idx int, v int16) error {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 2); err != nil {
			return err
		}
	}
	b.UnsafePutInt16(idx, v)
	return nil
}

func (b *Buffer) UnsafePutInt16(idx int, v int16) {
	*(*uint16)(b.ptrAt(idx)) = ontoLE16(uint16(v))
}

func (b *Buffer) PutInt16Native(idx int, v int16) error {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 2); err != nil {
			return err
		}
	}
	b.UnsafePutInt16Native(idx, v)
	return nil
}

func (b *Buffer) UnsafePutInt16Native(idx int, v int16) { *(*int16)(b.ptrAt(idx)) = v }

func (b *Buffer) GetUint16(idx int) (uint16, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 2); err != nil {
			return 0, err
		}
	}
	return b.UnsafeGetUint16(idx), nil
}

func (b *Buffer) UnsafeGetUint16(idx int) uint16 { return ontoLE16(*(*uint16)(b.ptrAt(idx))) }

func (b *Buffer) GetUint16Native(idx int) (uint16, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 2); err != nil {
			return 0, err
		}
	}
	return b.UnsafeGetUint16Native(idx), nil
}

func (b *Buffer) UnsafeGetUint16Native(idx int) uint16 { return *(*uint16)(b.ptrAt(idx)) }

func (b *Buffer) PutUint16(idx int, v uint16) error {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 2); err != nil {
			return err
		}
	}
	b.UnsafePutUint16(idx, v)
	return nil
}

func (b *Buffer) UnsafePutUint16(idx int, v uint16) { *(*uint16)(b.ptrAt(idx)) = ontoLE16(v) }

func (b *Buffer) PutUint16Native(idx int, v uint16) error {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 2); err != nil {
			return err
		}
	}
	b.UnsafePutUint16Native(idx, v)
	return nil
}

func (b *Buffer) UnsafePutUint16Native(idx int, v uint16) { *(*uint16)(b.ptrAt(idx)) = v }

// GetChar/PutChar alias the uint16 accessors: a "char" on the wire is a
// 2-byte unsigned code unit, matching the original's char == UTF-16 code
// unit rather than introducing a distinct Go type.
func (b *Buffer) GetChar(idx int) (rune, error) {
	v, err := b.GetUint16(idx)
	return rune(v), err
}

func (b *Buffer) PutChar(idx int, v rune) error { return b.PutUint16(idx, uint16(v)) }

// --- int32 / uint32 / float32 ---

func (b *Buffer) GetInt32(idx int) (int32, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 4); err != nil {
			return 0, err
		}
	}
	return b.UnsafeGetInt32(idx), nil
}

func (b *Buffer) UnsafeGetInt32(idx int) int32 {
	return int32(ontoLE32(*(*uint32)(b.ptrAt(idx))))
}

func (b *Buffer) GetInt32Native(idx int) (int32, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 4); err != nil {
			return 0, err
		}
	}
	return b.UnsafeGetInt32Native(idx), nil
}

func (b *Buffer) UnsafeGetInt32Native(idx int) int32 { return *(*int32)(b.ptrAt(idx)) }

func (b *Buffer) PutInt32(idx int, v int32) error {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 4); err != nil {
			return err
		}
	}
	b.UnsafePutInt32(idx, v)
	return nil
}

func (b *Buffer) UnsafePutInt32(idx int, v int32) {
	*(*uint32)(b.ptrAt(idx)) = ontoLE32(uint32(v))
}

func (b *Buffer) PutInt32Native(idx int, v int32) error {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 4); err != nil {
			return err
		}
	}
	b.UnsafePutInt32Native(idx, v)
	return nil
}

func (b *Buffer) UnsafePutInt32Native(idx int, v int32) { *(*int32)(b.ptrAt(idx)) = v }

func (b *Buffer) GetUint32(idx int) (uint32, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 4); err != nil {
			return 0, err
		}
	}
	return b.UnsafeGetUint32(idx), nil
}

func (b *Buffer) UnsafeGetUint32(idx int) uint32 { return ontoLE32(*(*uint32)(b.ptrAt(idx))) }

func (b *Buffer) GetUint32Native(idx int) (uint32, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 4); err != nil {
			return 0, err
		}
	}
	return b.UnsafeGetUint32Native(idx), nil
}

func (b *Buffer) UnsafeGetUint32Native(idx int) uint32 { return *(*uint32)(b.ptrAt(idx)) }

func (b *Buffer) PutUint32(idx int, v uint32) error {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 4); err != nil {
			return err
		}
	}
	b.UnsafePutUint32(idx, v)
	return nil
}

func (b *Buffer) UnsafePutUint32(idx int, v uint32) { *(*uint32)(b.ptrAt(idx)) = ontoLE32(v) }

func (b *Buffer) PutUint32Native(idx int, v uint32) error {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 4); err != nil {
			return err
		}
	}
	b.UnsafePutUint32Native(idx, v)
	return nil
}

func (b *Buffer) UnsafePutUint32Native(idx int, v uint32) { *(*uint32)(b.ptrAt(idx)) = v }

// GetFloat32/PutFloat32 serialize the raw IEEE 754 bit pattern, never
// canonicalizing NaN payloads.
func (b *Buffer) GetFloat32(idx int) (float32, error) {
	bits32, err := b.GetUint32(idx)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits32), nil
}

func (b *Buffer) UnsafeGetFloat32(idx int) float32 {
	return math.Float32frombits(b.UnsafeGetUint32(idx))
}

func (b *Buffer) GetFloat32Native(idx int) (float32, error) {
	bits32, err := b.GetUint32Native(idx)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits32), nil
}

func (b *Buffer) UnsafeGetFloat32Native(idx int) float32 {
	return math.Float32frombits(b.UnsafeGetUint32Native(idx))
}

func (b *Buffer) PutFloat32(idx int, v float32) error {
	return b.PutUint32(idx, math.Float32bits(v))
}

func (b *Buffer) UnsafePutFloat32(idx int, v float32) {
	b.UnsafePutUint32(idx, math.Float32bits(v))
}

func (b *Buffer) PutFloat32Native(idx int, v float32) error {
	return b.PutUint32Native(idx, math.Float32bits(v))
}

func (b *Buffer) UnsafePutFloat32Native(idx int, v float32) {
	b.UnsafePutUint32Native(idx, math.Float32bits(v))
}

// --- int64 / uint64 / float64 ---

func (b *Buffer) GetInt64(idx int) (int64, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 8); err != nil {
			return 0, err
		}
	}
	return b.UnsafeGetInt64(idx), nil
}

func (b *Buffer) UnsafeGetInt64(idx int) int64 {
	return int64(ontoLE64(*(*uint64)(b.ptrAt(idx))))
}

func (b *Buffer) GetInt64Native(idx int) (int64, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 8); err != nil {
			return 0, err
		}
	}
	return b.UnsafeGetInt64Native(idx), nil
}

func (b *Buffer) UnsafeGetInt64Native(idx int) int64 { return *(*int64)(b.ptrAt(idx)) }

func (b *Buffer) PutInt64(idx int, v int64) error {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 8); err != nil {
			return err
		}
	}
	b.UnsafePutInt64(idx, v)
	return nil
}

func (b *Buffer) UnsafePutInt64(idx int, v int64) {
	*(*uint64)(b.ptrAt(idx)) = ontoLE64(uint64(v))
}

func (b *Buffer) PutInt64Native(idx int, v int64) error {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 8); err != nil {
			return err
		}
	}
	b.UnsafePutInt64Native(idx, v)
	return nil
}

func (b *Buffer) UnsafePutInt64Native(idx int, v int64) { *(*int64)(b.ptrAt(idx)) = v }

func (b *Buffer) GetUint64(idx int) (uint64, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 8); err != nil {
			return 0, err
		}
	}
	return b.UnsafeGetUint64(idx), nil
}

func (b *Buffer) UnsafeGetUint64(idx int) uint64 { return ontoLE64(*(*uint64)(b.ptrAt(idx))) }

func (b *Buffer) GetUint64Native(idx int) (uint64, error) {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 8); err != nil {
			return 0, err
		}
	}
	return b.UnsafeGetUint64Native(idx), nil
}

func (b *Buffer) UnsafeGetUint64Native(idx int) uint64 { return *(*uint64)(b.ptrAt(idx)) }

func (b *Buffer) PutUint64(idx int, v uint64) error {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 8); err != nil {
			return err
		}
	}
	b.UnsafePutUint64(idx, v)
	return nil
}

func (b *Buffer) UnsafePutUint64(idx int, v uint64) { *(*uint64)(b.ptrAt(idx)) = ontoLE64(v) }

func (b *Buffer) PutUint64Native(idx int, v uint64) error {
	if boundsCheckingEnabled {
		if err := b.checkBounds(idx, 8); err != nil {
			return err
		}
	}
	b.UnsafePutUint64Native(idx, v)
	return nil
}

func (b *Buffer) UnsafePutUint64Native(idx int, v uint64) { *(*uint64)(b.ptrAt(idx)) = v }

func (b *Buffer) GetFloat64(idx int) (float64, error) {
	bits64, err := b.GetUint64(idx)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits64), nil
}

func (b *Buffer) UnsafeGetFloat64(idx int) float64 {
	return math.Float64frombits(b.UnsafeGetUint64(idx))
}

func (b *Buffer) GetFloat64Native(idx int) (float64, error) {
	bits64, err := b.GetUint64Native(idx)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits64), nil
}

func (b *Buffer) UnsafeGetFloat64Native(idx int) float64 {
	return math.Float64frombits(b.UnsafeGetUint64Native(idx))
}

func (b *Buffer) PutFloat64(idx int, v float64) error {
	return b.PutUint64(idx, math.Float64bits(v))
}

func (b *Buffer) UnsafePutFloat64(idx int, v float64) {
	b.UnsafePutUint64(idx, math.Float64bits(v))
}

func (b *Buffer) PutFloat64Native(idx int, v float64) error {
	return b.PutUint64Native(idx, math.Float64bits(v))
}

func (b *Buffer) UnsafePutFloat64Native(idx int, v float64) {
	b.UnsafePutUint64Native(idx, math.Float64bits(v))
}

// --- big-endian forms, used internally by Compare ---

func (b *Buffer) getInt64B(idx int) int64 {
	return int64(swap64OnLE(*(*uint64)(b.ptrAt(idx))))
}

// swap64OnLE returns the big-endian interpretation of a native-order load:
// on a little-endian host the bytes must be reversed to read them
// big-endian; on a big-endian host they already are.
func swap64OnLE(v uint64) uint64 {
	if hostLittleEndian {
		return swap64(v)
	}
	return v
}
