package membuf

import "testing"

func BenchmarkWriteVarUint32(b *testing.B) {
	buf, _ := AllocateHeap(0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.SetWriterIndex(0)
		buf.WriteVarUint32(uint32(i % 1000000))
	}
}

func BenchmarkWriteVarUint32Aligned(b *testing.B) {
	buf, _ := AllocateHeap(0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.SetWriterIndex(0)
		buf.WriteVarUint32Aligned(uint32(i % 1000000))
	}
}

func BenchmarkEnsureGrowth(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf, _ := AllocateHeap(8)
		buf.ensure(4096)
	}
}

func BenchmarkPutGetInt64(b *testing.B) {
	buf, _ := AllocateHeap(8)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.UnsafePutInt64(0, int64(i))
		_ = buf.UnsafeGetInt64(0)
	}
}
