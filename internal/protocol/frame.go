package protocol

// FrameSize is the fixed payload length of every VT command/response frame.
const FrameSize = 8

// FrameBuilder assembles an 8-byte command frame. The buffer starts fully
// filled with ReservedFill so any byte the caller never touches conforms to
// the "reserved bytes are 0xFF" wire rule, then byte 0 is set to the
// function code. Put* calls advance an internal cursor starting at offset 1.
type FrameBuilder struct {
	buf    [FrameSize]byte
	cursor int
}

// NewFrame starts a frame for the given function code.
func NewFrame(fn Function) *FrameBuilder {
	fb := &FrameBuilder{cursor: 1}
	for i := range fb.buf {
		fb.buf[i] = ReservedFill
	}
	fb.buf[0] = byte(fn)
	return fb
}

// PutU8 writes one byte at the cursor and advances it.
func (fb *FrameBuilder) PutU8(v uint8) *FrameBuilder {
	fb.buf[fb.cursor] = v
	fb.cursor++
	return fb
}

// PutU16 writes a little-endian uint16 at the cursor and advances it by 2.
func (fb *FrameBuilder) PutU16(v uint16) *FrameBuilder {
	fb.buf[fb.cursor] = byte(v)
	fb.buf[fb.cursor+1] = byte(v >> 8)
	fb.cursor += 2
	return fb
}

// PutI16 writes a little-endian int16 at the cursor and advances it by 2.
func (fb *FrameBuilder) PutI16(v int16) *FrameBuilder {
	return fb.PutU16(uint16(v))
}

// PutU32 writes a little-endian uint32 at the cursor and advances it by 4.
func (fb *FrameBuilder) PutU32(v uint32) *FrameBuilder {
	fb.buf[fb.cursor] = byte(v)
	fb.buf[fb.cursor+1] = byte(v >> 8)
	fb.buf[fb.cursor+2] = byte(v >> 16)
	fb.buf[fb.cursor+3] = byte(v >> 24)
	fb.cursor += 4
	return fb
}

// Skip advances the cursor n bytes, leaving ReservedFill in place — used
// when a frame's layout has an explicit reserved gap before its next field.
func (fb *FrameBuilder) Skip(n int) *FrameBuilder {
	fb.cursor += n
	return fb
}

// At writes a byte at an explicit offset without disturbing the cursor,
// for frames whose fields are defined by absolute position rather than
// sequential packing (e.g. the graphics-context sub-command family, where
// byte 3 is always the sub-command id regardless of which fields follow).
func (fb *FrameBuilder) At(offset int, v uint8) *FrameBuilder {
	fb.buf[offset] = v
	return fb
}

// Bytes returns the finished 8-byte frame.
func (fb *FrameBuilder) Bytes() [FrameSize]byte {
	return fb.buf
}

// Slice returns the finished frame as a freshly allocated []byte, for
// callers (transport.Frame) that want a slice rather than an array.
func (fb *FrameBuilder) Slice() []byte {
	out := make([]byte, FrameSize)
	copy(out, fb.buf[:])
	return out
}

// GetU16 decodes a little-endian uint16 at offset from an inbound frame.
func GetU16(data []byte, offset int) uint16 {
	return uint16(data[offset]) | uint16(data[offset+1])<<8
}

// GetU32 decodes a little-endian uint32 at offset from an inbound frame.
func GetU32(data []byte, offset int) uint32 {
	return uint32(data[offset]) | uint32(data[offset+1])<<8 |
		uint32(data[offset+2])<<16 | uint32(data[offset+3])<<24
}
