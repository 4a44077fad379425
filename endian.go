package membuf

import (
	"math/bits"
	"unsafe"
)

// hostLittleEndian is determined once at package init, mirroring the
// teacher's preference for bare package-level state (see the sizeClasses
// table pattern in the bufferpool examples) over a config/flags dependency
// for a single boolean. Every LE-named accessor consults it so the branch
// is taken once per call and trivially predicted; *_native accessors never
// consult it at all.
var hostLittleEndian bool

func init() {
	var x uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&x))
	hostLittleEndian = b[0] == 1
}

// HostLittleEndian reports the host's native byte order, probed once at
// package initialization.
func HostLittleEndian() bool { return hostLittleEndian }

// boundsCheckingEnabled gates every checked accessor. It is process-wide
// and, like hostLittleEndian, never mutated after package init except via
// SetBoundsChecking for tests that want to exercise the unchecked code
// path deterministically.
var boundsCheckingEnabled = true

// BoundsCheckingEnabled reports whether checked accessors currently
// validate their index/length arguments.
func BoundsCheckingEnabled() bool { return boundsCheckingEnabled }

// SetBoundsChecking toggles the process-wide bounds-checking flag. In a
// systems rewrite this would be a build-time constant so the unchecked
// path compiles to nothing when disabled; Go has no equivalent of a
// compile-time boolean branch elimination guarantee, so this is a runtime
// toggle instead, documented as such.
func SetBoundsChecking(enabled bool) { boundsCheckingEnabled = enabled }

func swap16(v uint16) uint16 { return bits.ReverseBytes16(v) }
func swap32(v uint32) uint32 { return bits.ReverseBytes32(v) }
func swap64(v uint64) uint64 { return bits.ReverseBytes64(v) }

// ontoLE16/32/64 each apply an involutive swap: converting
// between native and little-endian representations of a 16/32/64-bit word
// is symmetric, so one helper serves both directions.
func ontoLE16(v uint16) uint16 {
	if hostLittleEndian {
		return v
	}
	return swap16(v)
}

func ontoLE32(v uint32) uint32 {
	if hostLittleEndian {
		return v
	}
	return swap32(v)
}

func ontoLE64(v uint64) uint64 {
	if hostLittleEndian {
		return v
	}
	return swap64(v)
}
