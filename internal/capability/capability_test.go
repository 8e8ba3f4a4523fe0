package capability

import "testing"

func TestDecodeGetNumberOfSoftkeysResponse(t *testing.T) {
	data := []byte{0xC2, 8, 8, 0xFF, 6, 2, 0xFF, 0xFF}
	x, y, virt, phys := DecodeGetNumberOfSoftkeysResponse(data)
	if x != 8 || y != 8 || virt != 6 || phys != 2 {
		t.Fatalf("got %d %d %d %d", x, y, virt, phys)
	}
}

func TestDecodeGetTextFontDataResponse(t *testing.T) {
	data := []byte{0xC3, 0xFF, 0xFF, 0xFF, 0xFF, 0x3F, 0x03, 0x01}
	small, large, style := DecodeGetTextFontDataResponse(data)
	if small != 0x3F || large != 0x03 || style != 0x01 {
		t.Fatalf("small=%d large=%d style=%d", small, large, style)
	}
}

func TestDecodeGetHardwareResponse(t *testing.T) {
	data := []byte{0xC7, 0xFF, 0x05, 1, 0x20, 0x03, 0xE0, 0x01}
	mode, features, xPixels, yPixels := DecodeGetHardwareResponse(data)
	if mode != 1 || features != 0x05 {
		t.Fatalf("mode=%d features=%d", mode, features)
	}
	if xPixels != 800 || yPixels != 480 {
		t.Fatalf("xPixels=%d yPixels=%d", xPixels, yPixels)
	}
}

func TestApplyGetMemoryResponse(t *testing.T) {
	var s Snapshot
	s.ApplyGetMemoryResponse([]byte{0xC0, 0xFF, 0xFF, 0, 0xFF, 0xFF, 0xFF, 0xFF})
	if !s.MemoryAvailable {
		t.Fatalf("expected MemoryAvailable true")
	}
}

func TestApplyGetMemoryResponseInsufficient(t *testing.T) {
	var s Snapshot
	s.ApplyGetMemoryResponse([]byte{0xC0, 0xFF, 0xFF, 1, 0xFF, 0xFF, 0xFF, 0xFF})
	if s.MemoryAvailable {
		t.Fatalf("expected MemoryAvailable false when byte 3 signals insufficient memory")
	}
}
