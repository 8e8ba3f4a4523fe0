package isovt

import (
	"github.com/agrielectronics/isovt/internal/protocol"
	"github.com/agrielectronics/isovt/internal/state"
)

// Version management and the three extra bring-up-adjacent capability
// queries, supplemented from original_source/isobus's
// isobus_virtual_terminal_client.hpp — present in the wire taxonomy but
// not described by the mandatory bring-up sequence.

// versionLabel pads or truncates a version label to n bytes, matching
// the original header's fixed-width label fields (7 bytes for the short
// form, 32 bytes for the extended form).
func versionLabel(label string, n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = ' '
	}
	copy(buf, label)
	return buf
}

// SendStoreVersion implements the 0xD0 Store Version command: stores the
// currently uploaded object pool on the VT's non-volatile memory under a
// 7-byte label.
func (c *Client) SendStoreVersion(label string) bool {
	if !c.guardConnected("SendStoreVersion") {
		return false
	}
	data := append([]byte{byte(protocol.FuncStoreVersion)}, versionLabel(label, 7)...)
	return c.sendRaw(data)
}

// SendLoadVersion implements the 0xD1 Load Version command: loads a
// previously stored object pool version, replacing bring-up's in-memory
// upload. The VT echoes function code 0xD1 back as its response, so the
// client enters WaitForLoadVersionResponse to correlate it; a failed load
// (per handleBringUpResponse) falls back to re-uploading the registered
// pools from memory.
func (c *Client) SendLoadVersion(label string) bool {
	if !c.guardConnected("SendLoadVersion") {
		return false
	}
	data := append([]byte{byte(protocol.FuncLoadVersion)}, versionLabel(label, 7)...)
	if !c.sendRaw(data) {
		return false
	}
	c.setState(state.WaitForLoadVersionResponse)
	return true
}

// SendDeleteVersion implements the 0xD2 Delete Version command. The VT
// echoes function code 0xD2 back as its response, correlated against
// WaitForDeleteVersionResponse.
func (c *Client) SendDeleteVersion(label string) bool {
	if !c.guardConnected("SendDeleteVersion") {
		return false
	}
	data := append([]byte{byte(protocol.FuncDeleteVersion)}, versionLabel(label, 7)...)
	if !c.sendRaw(data) {
		return false
	}
	c.setState(state.WaitForDeleteVersionResponse)
	return true
}

// SendExtendedStoreVersion implements the 0xD4 Extended Store Version
// command, the 32-byte-label counterpart to SendStoreVersion.
func (c *Client) SendExtendedStoreVersion(label string) bool {
	if !c.guardConnected("SendExtendedStoreVersion") {
		return false
	}
	data := append([]byte{byte(protocol.FuncExtendedStoreVersion)}, versionLabel(label, 32)...)
	return c.sendRaw(data)
}

// SendExtendedLoadVersion implements the 0xD5 Extended Load Version command.
func (c *Client) SendExtendedLoadVersion(label string) bool {
	if !c.guardConnected("SendExtendedLoadVersion") {
		return false
	}
	data := append([]byte{byte(protocol.FuncExtendedLoadVersion)}, versionLabel(label, 32)...)
	return c.sendRaw(data)
}

// SendExtendedDeleteVersion implements the 0xD6 Extended Delete Version command.
func (c *Client) SendExtendedDeleteVersion(label string) bool {
	if !c.guardConnected("SendExtendedDeleteVersion") {
		return false
	}
	data := append([]byte{byte(protocol.FuncExtendedDeleteVersion)}, versionLabel(label, 32)...)
	return c.sendRaw(data)
}

// SendGetVersions implements the 0xDF Get Versions command, requesting
// the list of object-pool version labels stored on the VT.
func (c *Client) SendGetVersions() bool {
	if !c.guardConnected("SendGetVersions") {
		return false
	}
	return c.sendGetVersionsRequest()
}

// SendGetSupportedWidechars implements the 0xC1 Get Supported Wide Chars
// command, an optional post-Connected capability query.
func (c *Client) SendGetSupportedWidechars(codePlane uint8, firstWideChar, lastWideChar uint16) bool {
	if !c.guardConnected("SendGetSupportedWidechars") {
		return false
	}
	fb := protocol.NewFrame(protocol.FuncGetSupportedWidechars).PutU8(codePlane).PutU16(firstWideChar).PutU16(lastWideChar)
	return c.send(fb)
}

// SendGetWindowMaskData implements the 0xC4 Get Window Mask Data command.
func (c *Client) SendGetWindowMaskData() bool {
	if !c.guardConnected("SendGetWindowMaskData") {
		return false
	}
	return c.send(protocol.NewFrame(protocol.FuncGetWindowMaskData))
}

// SendGetSupportedObjects implements the 0xC5 Get Supported Objects command.
func (c *Client) SendGetSupportedObjects() bool {
	if !c.guardConnected("SendGetSupportedObjects") {
		return false
	}
	return c.send(protocol.NewFrame(protocol.FuncGetSupportedObjects))
}
