// Command membufdemo drives a tight varint encode/decode loop under a heap
// profiler, the way the fractus struct-encoder benchmarked itself: same
// pprof-over-HTTP plus WriteHeapProfile harness, pointed at membuf instead.
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/membuf"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	b, err := membuf.AllocateHeap(0)
	if err != nil {
		log.Fatal(err)
	}
	for i := 0; i < 100000; i++ {
		if err := b.SetWriterIndex(0); err != nil {
			log.Fatal(err)
		}
		if err := b.SetReaderIndex(0); err != nil {
			log.Fatal(err)
		}
		b.WriteVarUint32(uint32(i))
		b.WriteVarUint32Aligned(uint32(i * 7))
		b.WriteSliInt64(int64(i) * 1000000)
		if _, err := b.ReadVarUint32(); err != nil {
			log.Fatal(err)
		}
		if _, err := b.ReadVarUint32Aligned(); err != nil {
			log.Fatal(err)
		}
		if _, err := b.ReadSliInt64(); err != nil {
			log.Fatal(err)
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(2 * time.Second)
}
