package pool

// ChunkSize is the number of pool bytes (excluding the multiplexor byte)
// requested per pull, sized to match the seven data bytes a single-frame
// object-pool-transfer message can carry after its multiplexor byte; the
// transport's BAM/ETP segmentation is free to batch many chunks into one
// multi-frame delivery, but the pipeline always pulls in this unit so a
// paged Source sees a stable, predictable request size.
const ChunkSize = 7

// Descriptor tracks one registered pool through the upload pipeline:
// its backing Source, and whether it has completed upload to the VT.
type Descriptor struct {
	Source   Source
	Uploaded bool

	offset uint32
	mux    *muxSource
}

// Pipeline walks a set of registered pool Descriptors in registration
// order, skipping any already Uploaded, and feeds the outbound codec one
// chunk at a time via Next. It owns no transport state — the caller
// (the root client) is responsible for actually sending what Next
// returns and reporting the outcome through Complete.
type Pipeline struct {
	mux    byte
	pools  []*Descriptor
	cur    int // index into pools of the pool currently being sent, or -1
	failed bool
}

// NewPipeline creates a pipeline that prepends muxByte (the object-pool
// transfer function code) to the first chunk of each pool's transfer.
func NewPipeline(muxByte byte) *Pipeline {
	return &Pipeline{mux: muxByte, cur: -1}
}

// Register adds a pool to the upload sequence. Pools upload in the order
// they were registered.
func (p *Pipeline) Register(src Source) *Descriptor {
	d := &Descriptor{Source: src, mux: newMuxSource(p.mux, src)}
	p.pools = append(p.pools, d)
	return d
}

// ResetAll marks every registered pool as not-yet-uploaded and rewinds the
// pipeline to its start — used on a status-loss reconnect, which must
// redo the entire bring-up sequence including a full pool re-upload.
func (p *Pipeline) ResetAll() {
	for _, d := range p.pools {
		d.Uploaded = false
		d.offset = 0
	}
	p.cur = -1
	p.failed = false
}

// Pools reports how many pools are currently registered — used to gate
// ReadyForObjectPool, whose advance to SendGetMemory requires at least one
// (spec.md §4.1.4: the requested memory size is the sum of declared pool
// sizes, meaningless with none registered).
func (p *Pipeline) Pools() int {
	return len(p.pools)
}

// Done reports whether every registered pool has completed upload.
func (p *Pipeline) Done() bool {
	for _, d := range p.pools {
		if !d.Uploaded {
			return false
		}
	}
	return true
}

// Failed reports whether a registered pool's Source failed to produce the
// bytes it advertised via Size — a callback-backed pool returning no bytes
// for an offset it claims is still within range. Per spec.md §4.2 this is
// terminal for the connection.
func (p *Pipeline) Failed() bool {
	return p.failed
}

// advance finds the next not-yet-uploaded pool in registration order,
// returning its index or -1 if none remain.
func (p *Pipeline) advance() int {
	for i, d := range p.pools {
		if !d.Uploaded {
			return i
		}
	}
	return -1
}

// Next returns the next chunk of pool-transfer payload to send: the bytes
// (already including the leading multiplexor byte when this is the very
// first chunk of a pool), and ok=false once every pool has finished or a
// Source has failed — callers must check Failed() to distinguish the two.
func (p *Pipeline) Next() (chunk []byte, ok bool) {
	if p.cur < 0 || p.pools[p.cur].Uploaded {
		p.cur = p.advance()
		if p.cur < 0 {
			return nil, false
		}
	}
	d := p.pools[p.cur]
	remaining := d.mux.Size() - d.offset
	if remaining == 0 {
		d.Uploaded = true
		return p.Next()
	}
	n := ChunkSize // chunk carries at most ChunkSize payload bytes plus, on offset 0, the mux byte
	if d.offset == 0 {
		n++
	}
	if uint32(n) > remaining {
		n = int(remaining)
	}
	buf := make([]byte, n)
	got := d.mux.Pull(d.offset, buf)
	if got == 0 {
		// remaining > 0 but the source produced nothing: a callback-backed
		// pool reporting failure (spec.md §4.2).
		p.failed = true
		return nil, false
	}
	d.offset += uint32(got)
	return buf[:got], true
}

// Complete reports the outcome of sending the chunk most recently
// returned by Next for the currently active pool. On failure, the
// pipeline rewinds that pool's offset so the same bytes are resent rather
// than skipped, per spec.md's "end of object pool" retry discipline.
func (p *Pipeline) Complete(success bool, sentLen int) {
	if p.cur < 0 || p.cur >= len(p.pools) {
		return
	}
	d := p.pools[p.cur]
	if !success {
		d.offset -= uint32(sentLen)
		return
	}
	if d.offset >= d.mux.Size() {
		d.Uploaded = true
	}
}
