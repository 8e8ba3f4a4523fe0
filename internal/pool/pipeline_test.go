package pool

import (
	"bytes"
	"testing"
)

func TestContiguousSourcePull(t *testing.T) {
	src := NewContiguousSource([]byte{1, 2, 3, 4, 5})
	dst := make([]byte, 3)
	n := src.Pull(2, dst)
	if n != 3 || !bytes.Equal(dst, []byte{3, 4, 5}) {
		t.Fatalf("Pull(2, ...) = %d, %v", n, dst)
	}
	if n := src.Pull(5, dst); n != 0 {
		t.Fatalf("Pull at end = %d, want 0", n)
	}
}

func TestMuxSourcePrependsByteWithoutDoubleCopy(t *testing.T) {
	inner := NewContiguousSource([]byte{0xAA, 0xBB, 0xCC})
	m := newMuxSource(0x11, inner)
	if m.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", m.Size())
	}
	full := make([]byte, 4)
	n := m.Pull(0, full)
	if n != 4 || !bytes.Equal(full, []byte{0x11, 0xAA, 0xBB, 0xCC}) {
		t.Fatalf("Pull(0, ...) = %d, %v", n, full)
	}
	tail := make([]byte, 2)
	n = m.Pull(2, tail)
	if n != 2 || !bytes.Equal(tail, []byte{0xBB, 0xCC}) {
		t.Fatalf("Pull(2, ...) = %d, %v", n, tail)
	}
}

func TestPipelineOrdersPoolsAndPrefixesMuxOnce(t *testing.T) {
	p := NewPipeline(0x11)
	a := p.Register(NewContiguousSource([]byte{1, 2, 3}))
	_ = p.Register(NewContiguousSource([]byte{9, 9}))

	var sent []byte
	for {
		chunk, ok := p.Next()
		if !ok {
			break
		}
		sent = append(sent, chunk...)
		p.Complete(true, len(chunk))
	}

	// total bytes sent = sum(pool size + 1 mux byte per pool)
	want := []byte{0x11, 1, 2, 3, 0x11, 9, 9}
	if !bytes.Equal(sent, want) {
		t.Fatalf("sent = %v, want %v", sent, want)
	}
	if !a.Uploaded || !p.pools[1].Uploaded {
		t.Fatalf("expected both pools marked uploaded")
	}
	if !p.Done() {
		t.Fatalf("expected pipeline done")
	}
}

func TestPipelineRetriesChunkOnFailure(t *testing.T) {
	p := NewPipeline(0x11)
	p.Register(NewContiguousSource([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9}))

	chunk1, ok := p.Next()
	if !ok {
		t.Fatalf("expected a chunk")
	}
	p.Complete(false, len(chunk1))

	chunk2, ok := p.Next()
	if !ok {
		t.Fatalf("expected a chunk on retry")
	}
	if !bytes.Equal(chunk1, chunk2) {
		t.Fatalf("retry chunk = %v, want same as failed chunk %v", chunk2, chunk1)
	}
}

func TestPagedSourceSeesZeroBasedOffsetsUnawareOfMux(t *testing.T) {
	var seenOffsets []uint32
	provider := func(offset uint32, dst []byte) int {
		seenOffsets = append(seenOffsets, offset)
		for i := range dst {
			dst[i] = byte(offset) + byte(i)
		}
		return len(dst)
	}
	paged := NewPagedSource(10, provider)
	p := NewPipeline(0x11)
	p.Register(paged)

	for {
		chunk, ok := p.Next()
		if !ok {
			break
		}
		p.Complete(true, len(chunk))
	}

	for i, off := range seenOffsets {
		if off != uint32(i)*ChunkSize {
			t.Fatalf("paged source saw non-ascending 0-based offsets: %v", seenOffsets)
		}
	}
}

func TestResetAllRewindsEveryPool(t *testing.T) {
	p := NewPipeline(0x11)
	p.Register(NewContiguousSource([]byte{1, 2, 3}))
	for {
		_, ok := p.Next()
		if !ok {
			break
		}
		p.Complete(true, ChunkSize+1)
	}
	if !p.Done() {
		t.Fatalf("expected done before reset")
	}
	p.ResetAll()
	if p.Done() {
		t.Fatalf("expected not done after ResetAll")
	}
}
