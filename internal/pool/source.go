// Package pool implements the object-pool upload pipeline: the tagged
// Source variants an application can register a pool with (a full buffer
// already in memory, a growable byte slice still being composed, or a
// paged callback that produces chunks on demand) and the Pipeline that
// walks registered pools in order and feeds the outbound codec one chunk
// at a time, grounded on spec.md §4.2.
package pool

// Source abstracts "the bytes of one object pool" behind a pull interface
// so the upload pipeline never needs a full copy of a pool to send it.
type Source interface {
	// Size returns the pool's total byte length, not counting the
	// multiplexor byte the pipeline prepends to the first transferred
	// chunk.
	Size() uint32

	// Pull copies up to len(dst) bytes starting at offset into dst and
	// returns the number of bytes written. offset is always within
	// [0, Size()). Implementations may return fewer bytes than len(dst)
	// only at the tail of the pool.
	Pull(offset uint32, dst []byte) int
}

// ContiguousSource wraps a single in-memory buffer, the common case for an
// application that built its whole pool up front.
type ContiguousSource struct {
	data []byte
}

// NewContiguousSource wraps data without copying it; callers must not
// mutate data after registering it with a Pipeline.
func NewContiguousSource(data []byte) *ContiguousSource {
	return &ContiguousSource{data: data}
}

func (s *ContiguousSource) Size() uint32 { return uint32(len(s.data)) }

func (s *ContiguousSource) Pull(offset uint32, dst []byte) int {
	if offset >= s.Size() {
		return 0
	}
	return copy(dst, s.data[offset:])
}

// DynamicSource wraps a buffer that may still be growing when registered —
// e.g. a pool streamed in from disk by the application in the background.
// Size() reflects the buffer's length at call time, so the pipeline must
// re-check it rather than caching it across ticks.
type DynamicSource struct {
	data *[]byte
}

// NewDynamicSource wraps a pointer to a slice the caller continues to
// append to. The pipeline only ever reads through the pointer.
func NewDynamicSource(data *[]byte) *DynamicSource {
	return &DynamicSource{data: data}
}

func (s *DynamicSource) Size() uint32 { return uint32(len(*s.data)) }

func (s *DynamicSource) Pull(offset uint32, dst []byte) int {
	d := *s.data
	if offset >= uint32(len(d)) {
		return 0
	}
	return copy(dst, d[offset:])
}

// ChunkProviderFunc supplies the bytes for [offset, offset+len(dst)) of a
// paged pool on demand. It must behave as a pure function of offset: the
// pipeline may call it multiple times for the same offset on retry.
type ChunkProviderFunc func(offset uint32, dst []byte) int

// PagedSource wraps an application callback for pools too large, or too
// awkward, to hold fully in memory at once (spec.md §4.2's "paged
// callback" variant). totalSize must be exact: the pipeline trusts it to
// know when the upload is complete.
type PagedSource struct {
	totalSize uint32
	provide   ChunkProviderFunc
}

// NewPagedSource registers a callback-backed pool of the given total size.
func NewPagedSource(totalSize uint32, provide ChunkProviderFunc) *PagedSource {
	return &PagedSource{totalSize: totalSize, provide: provide}
}

func (s *PagedSource) Size() uint32 { return s.totalSize }

func (s *PagedSource) Pull(offset uint32, dst []byte) int {
	if offset >= s.totalSize {
		return 0
	}
	max := s.totalSize - offset
	if uint32(len(dst)) > max {
		dst = dst[:max]
	}
	return s.provide(offset, dst)
}

// muxSource decorates an inner Source so that pulling from the combined
// address space transparently prepends one multiplexor byte at offset 0
// without ever materializing a second copy of the pool: offset 0 yields
// the mux byte alone, and every later offset is forwarded to inner at
// offset-1. The paged callback (and every other Source) stays unaware the
// prefix byte exists and keeps seeing its own 0-based address space.
type muxSource struct {
	mux   byte
	inner Source
}

func newMuxSource(mux byte, inner Source) *muxSource {
	return &muxSource{mux: mux, inner: inner}
}

func (m *muxSource) Size() uint32 { return m.inner.Size() + 1 }

func (m *muxSource) Pull(offset uint32, dst []byte) int {
	if len(dst) == 0 {
		return 0
	}
	if offset == 0 {
		dst[0] = m.mux
		n := 1
		if len(dst) > 1 {
			n += m.inner.Pull(0, dst[1:])
		}
		return n
	}
	return m.inner.Pull(offset-1, dst)
}
