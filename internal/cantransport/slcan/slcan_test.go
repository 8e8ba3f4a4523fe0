package slcan

import (
	"testing"

	"github.com/agrielectronics/isovt/internal/transport"
)

func TestEncodeDecodeSLCANRoundTrip(t *testing.T) {
	f := transport.Frame{
		PGN:           0xE700,
		SourceAddress: 0x26,
		Data:          []byte{0x11, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, 0x00},
	}
	line, err := encodeSLCAN(f)
	if err != nil {
		t.Fatalf("encodeSLCAN: %v", err)
	}

	got, srcAddr, ok := decodeSLCAN(line)
	if !ok {
		t.Fatalf("decodeSLCAN failed to parse %q", line)
	}
	if srcAddr != f.SourceAddress {
		t.Fatalf("srcAddr = %x, want %x", srcAddr, f.SourceAddress)
	}
	if got.PGN != f.PGN {
		t.Fatalf("PGN = %x, want %x", got.PGN, f.PGN)
	}
	if len(got.Data) != len(f.Data) {
		t.Fatalf("Data length = %d, want %d", len(got.Data), len(f.Data))
	}
	for i := range f.Data {
		if got.Data[i] != f.Data[i] {
			t.Fatalf("Data[%d] = %x, want %x", i, got.Data[i], f.Data[i])
		}
	}
}

func TestEncodeSLCANRejectsOversizeFrame(t *testing.T) {
	f := transport.Frame{Data: make([]byte, 9)}
	if _, err := encodeSLCAN(f); err == nil {
		t.Fatalf("expected error for 9-byte frame")
	}
}

func TestDecodeSLCANRejectsMalformedLine(t *testing.T) {
	if _, _, ok := decodeSLCAN("garbage\r"); ok {
		t.Fatalf("expected decode failure for malformed line")
	}
}
