// Package capability holds the VT client's negotiated capability snapshot
// and live status, plus the decoders for the four capability-query
// response layouts described in spec.md §6 (Get Memory, Get Number of
// Softkeys, Get Text Font Data, Get Hardware).
package capability

import "github.com/agrielectronics/isovt/internal/protocol"

// Snapshot holds everything learned about the connected VT server during
// bring-up. All fields are zero-valued until the corresponding bring-up
// response has been processed.
type Snapshot struct {
	Version protocol.VTVersion

	BootTimeSeconds uint8 // from the VT status message, informational only

	// Get Memory response.
	MemoryAvailable bool

	// Get Number of Softkeys response.
	SoftKeyXAxisPixels    uint8
	SoftKeyYAxisPixels    uint8
	NumberVirtualSoftKeys uint8
	NumberPhysicalSoftKeys uint8

	// Get Text Font Data response.
	SmallFontSizesBitfield uint8
	LargeFontSizesBitfield uint8
	FontStyleBitfield      uint8

	// Get Hardware response.
	GraphicMode        protocol.GraphicMode
	HardwareXPixels    uint16
	HardwareYPixels    uint16
	HardwareFeatures   uint8 // bitfield: touchscreen w/ pointing, pointing w/o touch, multiple frequency audio, etc.
}

// LiveStatus holds the fields refreshed by every inbound VT status message
// (function code 0xFE), per spec.md §4.5.
type LiveStatus struct {
	ActiveWorkingSetMasterAddress uint8
	ActiveDataMaskObjectID        uint16
	ActiveSoftKeyMaskObjectID     uint16
	BusyCodesBitfield             uint16
	CurrentCommandFunctionCode    uint8
	LastReceiptUnixNano           int64
}

// DecodeGetMemoryResponse reads byte 3 of a Get Memory response: 0 means
// the VT reports it has enough memory for the requested pool size, 1
// means insufficient memory.
func DecodeGetMemoryResponse(data []byte) (available bool) {
	return data[3] == 0
}

// DecodeGetNumberOfSoftkeysResponse reads the Get Number of Softkeys
// response layout: byte 1 X axis pixels per key, byte 2 Y axis pixels per
// key, byte 3 reserved, byte 4 virtual softkeys, byte 5 physical softkeys.
func DecodeGetNumberOfSoftkeysResponse(data []byte) (xPixels, yPixels, virtual, physical uint8) {
	return data[1], data[2], data[4], data[5]
}

// DecodeGetTextFontDataResponse reads the Get Text Font Data response:
// byte 5 small-font-sizes bitfield, byte 6 large-font-sizes bitfield,
// byte 7 font-style bitfield.
func DecodeGetTextFontDataResponse(data []byte) (small, large, style uint8) {
	return data[5], data[6], data[7]
}

// DecodeGetHardwareResponse reads the Get Hardware response: byte 2
// hardware features bitfield, byte 3 graphic mode, bytes 4-5 X pixels
// (little-endian), bytes 6-7 Y pixels (little-endian).
func DecodeGetHardwareResponse(data []byte) (mode protocol.GraphicMode, features uint8, xPixels, yPixels uint16) {
	features = data[2]
	mode = protocol.GraphicMode(data[3])
	xPixels = protocol.GetU16(data, 4)
	yPixels = protocol.GetU16(data, 6)
	return
}

// ApplyGetMemoryResponse updates s from a decoded Get Memory response.
func (s *Snapshot) ApplyGetMemoryResponse(data []byte) {
	s.MemoryAvailable = DecodeGetMemoryResponse(data)
}

// ApplyGetNumberOfSoftkeysResponse updates s from a decoded response.
func (s *Snapshot) ApplyGetNumberOfSoftkeysResponse(data []byte) {
	s.SoftKeyXAxisPixels, s.SoftKeyYAxisPixels, s.NumberVirtualSoftKeys, s.NumberPhysicalSoftKeys = DecodeGetNumberOfSoftkeysResponse(data)
}

// ApplyGetTextFontDataResponse updates s from a decoded response.
func (s *Snapshot) ApplyGetTextFontDataResponse(data []byte) {
	s.SmallFontSizesBitfield, s.LargeFontSizesBitfield, s.FontStyleBitfield = DecodeGetTextFontDataResponse(data)
}

// ApplyGetHardwareResponse updates s from a decoded response.
func (s *Snapshot) ApplyGetHardwareResponse(data []byte) {
	s.GraphicMode, s.HardwareFeatures, s.HardwareXPixels, s.HardwareYPixels = DecodeGetHardwareResponse(data)
}
