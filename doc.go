// Package membuf implements the byte-addressable memory buffer that forms
// the I/O substrate of a cross-language serialization runtime.
//
// A Buffer unifies on-heap (managed byte array) and off-heap (native
// memory) storage behind one value type. It exposes random-access
// primitive reads/writes at explicit byte indices, sequential streaming
// reads/writes with independent reader/writer cursors, bulk copy between
// buffers and foreign byte regions, and the varint family used by the wire
// format: positive varint, zig-zag varint, 4-byte-aligned varint, positive
// var-long, zig-zag var-long, and SLI (small-long-as-int) long.
//
// A Buffer is single-owner and not safe for concurrent use. Pooling and
// recycling are left to callers; this package only manages the storage
// descriptor, cursors, and growth policy of one buffer instance.
package membuf
