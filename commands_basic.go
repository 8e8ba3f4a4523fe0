package isovt

import (
	"github.com/agrielectronics/isovt/internal/protocol"
	"github.com/agrielectronics/isovt/internal/state"
)

// guardConnected reports whether the client is Connected, logging a
// diagnostic and returning false otherwise — every command below except
// the bring-up messages themselves requires Connected per spec.md §4.3.
func (c *Client) guardConnected(command string) bool {
	c.mu.Lock()
	cur := c.state
	c.mu.Unlock()
	if cur != state.Connected {
		c.logf("%s: rejected, not Connected (state=%s)", command, cur)
		return false
	}
	return true
}

// SendHideShowObject implements the 0xA0 Hide/Show Object command.
func (c *Client) SendHideShowObject(objectID uint16, show bool) bool {
	if !c.guardConnected("SendHideShowObject") {
		return false
	}
	hideShow := uint8(0)
	if show {
		hideShow = 1
	}
	fb := protocol.NewFrame(protocol.FuncHideShowObject).PutU16(objectID).PutU8(hideShow)
	return c.send(fb)
}

// SendEnableDisableObject implements the 0xA1 Enable/Disable Object command.
func (c *Client) SendEnableDisableObject(objectID uint16, enable bool) bool {
	if !c.guardConnected("SendEnableDisableObject") {
		return false
	}
	enableDisable := uint8(0)
	if enable {
		enableDisable = 1
	}
	fb := protocol.NewFrame(protocol.FuncEnableDisableObject).PutU16(objectID).PutU8(enableDisable)
	return c.send(fb)
}

// SelectInputObjectOption selects the 0xA2 Select Input Object mode.
type SelectInputObjectOption uint8

const (
	SelectInputObjectActivate  SelectInputObjectOption = 0
	SelectInputObjectDeactivate SelectInputObjectOption = 1
)

// SendSelectInputObject implements the 0xA2 Select Input Object command.
func (c *Client) SendSelectInputObject(objectID uint16, opt SelectInputObjectOption) bool {
	if !c.guardConnected("SendSelectInputObject") {
		return false
	}
	fb := protocol.NewFrame(protocol.FuncSelectInputObject).PutU16(objectID).PutU8(uint8(opt))
	return c.send(fb)
}

// SendESC implements the 0x92 ESC command, cancelling the currently open
// input object if any.
func (c *Client) SendESC() bool {
	if !c.guardConnected("SendESC") {
		return false
	}
	return c.send(protocol.NewFrame(protocol.FuncESCCommand))
}

// SendControlAudioSignal implements the 0xA3 Control Audio Signal command.
func (c *Client) SendControlAudioSignal(activations uint8, frequencyHz uint16, durationMs uint16, offTimeMs uint16) bool {
	if !c.guardConnected("SendControlAudioSignal") {
		return false
	}
	fb := protocol.NewFrame(protocol.FuncControlAudioSignal).
		PutU8(activations).PutU16(frequencyHz).PutU16(durationMs).PutU16(offTimeMs)
	return c.send(fb)
}

// SendSetAudioVolume implements the 0xA4 Set Audio Volume command.
func (c *Client) SendSetAudioVolume(volumePercent uint8) bool {
	if !c.guardConnected("SendSetAudioVolume") {
		return false
	}
	return c.send(protocol.NewFrame(protocol.FuncSetAudioVolume).PutU8(volumePercent))
}

// SendChangeChildLocation implements the 0xA5 Change Child Location command.
func (c *Client) SendChangeChildLocation(parentObjectID, objectID uint16, xRelative, yRelative int8) bool {
	if !c.guardConnected("SendChangeChildLocation") {
		return false
	}
	fb := protocol.NewFrame(protocol.FuncChangeChildLocation).
		PutU16(parentObjectID).PutU16(objectID).PutU8(uint8(xRelative)).PutU8(uint8(yRelative))
	return c.send(fb)
}

// SendChangeChildPosition implements the 0xB4 Change Child Position
// command. Its payload (parent + object + both 16-bit coordinates) is 8
// bytes, one more than a single 8-byte frame leaves after its function
// code, so this goes through sendRaw like the other wide graphics
// commands.
func (c *Client) SendChangeChildPosition(parentObjectID, objectID uint16, xPosition, yPosition int16) bool {
	if !c.guardConnected("SendChangeChildPosition") {
		return false
	}
	data := make([]byte, 9)
	data[0] = byte(protocol.FuncChangeChildPosition)
	data[1] = byte(parentObjectID)
	data[2] = byte(parentObjectID >> 8)
	data[3] = byte(objectID)
	data[4] = byte(objectID >> 8)
	data[5] = byte(uint16(xPosition))
	data[6] = byte(uint16(xPosition) >> 8)
	data[7] = byte(uint16(yPosition))
	data[8] = byte(uint16(yPosition) >> 8)
	return c.sendRaw(data)
}

// SendChangeSize implements the 0xA6 Change Size command.
func (c *Client) SendChangeSize(objectID uint16, newWidth, newHeight uint16) bool {
	if !c.guardConnected("SendChangeSize") {
		return false
	}
	fb := protocol.NewFrame(protocol.FuncChangeSize).PutU16(objectID).PutU16(newWidth).PutU16(newHeight)
	return c.send(fb)
}

// SendChangeBackgroundColour implements the 0xA7 Change Background Colour command.
func (c *Client) SendChangeBackgroundColour(objectID uint16, colour uint8) bool {
	if !c.guardConnected("SendChangeBackgroundColour") {
		return false
	}
	return c.send(protocol.NewFrame(protocol.FuncChangeBackgroundColour).PutU16(objectID).PutU8(colour))
}

// SendChangeNumericValue implements the 0xA8 Change Numeric Value command,
// the primary way an application pushes a sensor or computed value into a
// VT-rendered output field.
func (c *Client) SendChangeNumericValue(objectID uint16, value uint32) bool {
	if !c.guardConnected("SendChangeNumericValue") {
		return false
	}
	fb := protocol.NewFrame(protocol.FuncChangeNumericValue).PutU16(objectID).Skip(1).PutU32(value)
	return c.send(fb)
}

// SendChangeStringValue implements the 0xB3 Change String Value command.
// The payload is the object ID, the 16-bit length, and the whole string;
// strings longer than the 3 bytes a single frame can carry after that
// header are the transport's segmentation concern (BAM), not this
// client's — the NetworkStack segments sendRaw's payload.
func (c *Client) SendChangeStringValue(objectID uint16, value string) bool {
	if !c.guardConnected("SendChangeStringValue") {
		return false
	}
	data := make([]byte, 5+len(value))
	data[0] = byte(protocol.FuncChangeStringValue)
	data[1] = byte(objectID)
	data[2] = byte(objectID >> 8)
	data[3] = byte(len(value))
	data[4] = byte(len(value) >> 8)
	copy(data[5:], value)
	return c.sendRaw(data)
}

// SendChangeEndPoint implements the 0xA9 Change Endpoint command.
func (c *Client) SendChangeEndPoint(objectID uint16, width, height uint16, lineDirection uint8) bool {
	if !c.guardConnected("SendChangeEndPoint") {
		return false
	}
	fb := protocol.NewFrame(protocol.FuncChangeEndPoint).PutU16(objectID).PutU16(width).PutU16(height).PutU8(lineDirection)
	return c.send(fb)
}

// SendChangeActiveMask implements the 0xAD Change Active Mask command.
func (c *Client) SendChangeActiveMask(workingSetObjectID, newActiveMaskObjectID uint16) bool {
	if !c.guardConnected("SendChangeActiveMask") {
		return false
	}
	return c.send(protocol.NewFrame(protocol.FuncChangeActiveMask).PutU16(workingSetObjectID).PutU16(newActiveMaskObjectID))
}

// SendChangeSoftKeyMask implements the 0xAE Change Soft Key Mask command.
func (c *Client) SendChangeSoftKeyMask(maskType uint8, dataOrAlarmMaskObjectID, newSoftKeyMaskObjectID uint16) bool {
	if !c.guardConnected("SendChangeSoftKeyMask") {
		return false
	}
	fb := protocol.NewFrame(protocol.FuncChangeSoftKeyMask).PutU8(maskType).PutU16(dataOrAlarmMaskObjectID).PutU16(newSoftKeyMaskObjectID)
	return c.send(fb)
}

// SendChangeAttribute implements the 0xAF Change Attribute command.
func (c *Client) SendChangeAttribute(objectID uint16, attributeID uint8, value uint32) bool {
	if !c.guardConnected("SendChangeAttribute") {
		return false
	}
	fb := protocol.NewFrame(protocol.FuncChangeAttribute).PutU16(objectID).PutU8(attributeID).PutU32(value)
	return c.send(fb)
}

// SendChangePriority implements the 0xB0 Change Priority command.
func (c *Client) SendChangePriority(alarmMaskObjectID uint16, priority uint8) bool {
	if !c.guardConnected("SendChangePriority") {
		return false
	}
	return c.send(protocol.NewFrame(protocol.FuncChangePriority).PutU16(alarmMaskObjectID).PutU8(priority))
}

// SendChangeListItem implements the 0xB1 Change List Item command.
func (c *Client) SendChangeListItem(listObjectID uint16, listIndex uint8, newObjectID uint16) bool {
	if !c.guardConnected("SendChangeListItem") {
		return false
	}
	fb := protocol.NewFrame(protocol.FuncChangeListItem).PutU16(listObjectID).PutU8(listIndex).PutU16(newObjectID)
	return c.send(fb)
}

// SendDeleteObjectPool implements the 0xB2 Delete Object Pool command,
// an explicit pool teardown usable once Connected without disconnecting
// (supplemented from original_source/isobus — not part of spec.md's
// mandatory bring-up sequence).
func (c *Client) SendDeleteObjectPool() bool {
	if !c.guardConnected("SendDeleteObjectPool") {
		return false
	}
	return c.send(protocol.NewFrame(protocol.FuncDeleteObjectPool))
}

// SendChangeObjectLabel implements the 0xB5 Change Object Label command.
func (c *Client) SendChangeObjectLabel(objectID, labelStringObjectID uint16, fontType uint8, graphicRepresentationObjectID uint16) bool {
	if !c.guardConnected("SendChangeObjectLabel") {
		return false
	}
	fb := protocol.NewFrame(protocol.FuncChangeObjectLabel).
		PutU16(objectID).PutU16(labelStringObjectID).PutU8(fontType).PutU16(graphicRepresentationObjectID)
	return c.send(fb)
}

// SendChangePolygonPoint implements the 0xB6 Change Polygon Point
// command. Its payload (object + point index + two 16-bit coordinates)
// is 7 bytes, filling a single 8-byte frame exactly; the frame is built
// by hand and sent through sendRaw.
func (c *Client) SendChangePolygonPoint(objectID uint16, pointIndex uint8, xValue, yValue int16) bool {
	if !c.guardConnected("SendChangePolygonPoint") {
		return false
	}
	data := make([]byte, 8)
	data[0] = byte(protocol.FuncChangePolygonPoint)
	data[1] = byte(objectID)
	data[2] = byte(objectID >> 8)
	data[3] = pointIndex
	data[4] = byte(uint16(xValue))
	data[5] = byte(uint16(xValue) >> 8)
	data[6] = byte(uint16(yValue))
	data[7] = byte(uint16(yValue) >> 8)
	return c.sendRaw(data)
}

// SendChangePolygonScale implements the 0xB7 Change Polygon Scale command.
func (c *Client) SendChangePolygonScale(objectID uint16, widthScale, heightScale uint16) bool {
	if !c.guardConnected("SendChangePolygonScale") {
		return false
	}
	fb := protocol.NewFrame(protocol.FuncChangePolygonScale).PutU16(objectID).PutU16(widthScale).PutU16(heightScale)
	return c.send(fb)
}

// SendSelectColourMap implements the 0xBA Select Colour Map command.
func (c *Client) SendSelectColourMap(objectID uint16) bool {
	if !c.guardConnected("SendSelectColourMap") {
		return false
	}
	return c.send(protocol.NewFrame(protocol.FuncSelectColourMap).PutU16(objectID))
}

// SendIdentifyVT implements the 0xBB Identify VT command, telling the VT
// server to visually identify itself (used when more than one VT is on
// the bus).
func (c *Client) SendIdentifyVT() bool {
	if !c.guardConnected("SendIdentifyVT") {
		return false
	}
	return c.send(protocol.NewFrame(protocol.FuncIdentifyVT))
}

// SendExecuteMacro implements the 0xBE Execute Macro command.
func (c *Client) SendExecuteMacro(objectID uint16) bool {
	if !c.guardConnected("SendExecuteMacro") {
		return false
	}
	return c.send(protocol.NewFrame(protocol.FuncExecuteMacro).PutU16(objectID))
}

// SendExecuteExtendedMacro implements the 0xBC Execute Extended Macro command.
func (c *Client) SendExecuteExtendedMacro(objectID uint32) bool {
	if !c.guardConnected("SendExecuteExtendedMacro") {
		return false
	}
	return c.send(protocol.NewFrame(protocol.FuncExecuteExtendedMacro).PutU32(objectID))
}

// LockState selects Lock or Unlock for SendLockUnlockMask.
type LockState uint8

const (
	Unlock LockState = 0
	Lock   LockState = 1
)

// SendLockUnlockMask implements the 0xBD Lock/Unlock Mask command.
func (c *Client) SendLockUnlockMask(lock LockState, objectID uint16, timeoutMs uint16) bool {
	if !c.guardConnected("SendLockUnlockMask") {
		return false
	}
	fb := protocol.NewFrame(protocol.FuncLockUnlockMask).PutU8(uint8(lock)).PutU16(objectID).PutU16(timeoutMs)
	return c.send(fb)
}

// SendGetAttributeValue implements the 0xB9 Get Attribute Value command.
func (c *Client) SendGetAttributeValue(objectID uint16, attributeID uint8) bool {
	if !c.guardConnected("SendGetAttributeValue") {
		return false
	}
	return c.send(protocol.NewFrame(protocol.FuncGetAttributeValue).PutU16(objectID).PutU8(attributeID))
}
