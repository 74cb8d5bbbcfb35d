package mem

import "testing"

func BenchmarkFixedBuffer_AllocBytes(b *testing.B) {
	f := NewFixedBuffer(make([]byte, 1<<20))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.AllocBytes(64, 8); err != nil {
			f.Reset()
		}
	}
}

func BenchmarkArena_OverFixedBuffer(b *testing.B) {
	buf := make([]byte, 1<<20)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := NewFixedBuffer(buf)
		a := NewArena(f)
		for j := 0; j < 64; j++ {
			if _, err := a.AllocBytes(128, 8); err != nil {
				b.Fatal(err)
			}
		}
		a.Release()
	}
}

func BenchmarkPageAllocator_AllocFree(b *testing.B) {
	var pa PageAllocator
	size := PageSize()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := pa.AllocBytes(size, 8)
		if err != nil {
			b.Fatal(err)
		}
		pa.FreeBytes(p, size, 8)
	}
}

func BenchmarkMakeSlice_Typed(b *testing.B) {
	f := NewFixedBuffer(make([]byte, 1<<20))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := MakeSlice[uint64](f, 32)
		if err != nil {
			f.Reset()
			continue
		}
		_ = s
	}
}
