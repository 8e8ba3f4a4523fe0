package isovt

import "github.com/agrielectronics/isovt/internal/protocol"

// SendChangeFontAttributes implements the 0xAA Change Font Attributes command.
func (c *Client) SendChangeFontAttributes(objectID uint16, colour, fontSize, fontType, fontStyleBitfield uint8) bool {
	if !c.guardConnected("SendChangeFontAttributes") {
		return false
	}
	fb := protocol.NewFrame(protocol.FuncChangeFontAttributes).
		PutU16(objectID).PutU8(colour).PutU8(fontSize).PutU8(fontType).PutU8(fontStyleBitfield)
	return c.send(fb)
}

// SendChangeLineAttributes implements the 0xAB Change Line Attributes command.
func (c *Client) SendChangeLineAttributes(objectID uint16, colour uint8, width uint8, lineArtBitmask uint16) bool {
	if !c.guardConnected("SendChangeLineAttributes") {
		return false
	}
	fb := protocol.NewFrame(protocol.FuncChangeLineAttributes).
		PutU16(objectID).PutU8(colour).PutU8(width).PutU16(lineArtBitmask)
	return c.send(fb)
}

// SendChangeFillAttributes implements the 0xAC Change Fill Attributes command.
func (c *Client) SendChangeFillAttributes(objectID uint16, fillType, fillColour uint8, fillPatternObjectID uint16) bool {
	if !c.guardConnected("SendChangeFillAttributes") {
		return false
	}
	fb := protocol.NewFrame(protocol.FuncChangeFillAttributes).
		PutU16(objectID).PutU8(fillType).PutU8(fillColour).PutU16(fillPatternObjectID)
	return c.send(fb)
}

// graphicsContext issues a 0xB8 message for the given viewport object and
// sub-command, followed by however many payload bytes the sub-command
// needs — shared by every SendSetGraphicsCursor..
// SendCopyViewportToPictureGraphic helper below (21 sub-commands per
// original_source/isobus) except SendDrawText, which builds its own
// variable-length frame. Several sub-commands (e.g. Pan and Zoom
// Viewport) need more payload than the 4 bytes a single 8-byte frame
// leaves after its header, so this always goes through sendRaw rather
// than the fixed-size FrameBuilder; the transport's segmentation handles
// anything longer than one physical CAN frame. Sub-commands short enough
// to fit one frame are padded out to protocol.FrameSize with
// protocol.ReservedFill, per the frame layout rule's "unused tail bytes
// are 0xFF" requirement.
func (c *Client) graphicsContext(viewportObjectID uint16, sub protocol.GraphicsSubCommand, payload ...uint8) bool {
	size := 4 + len(payload)
	if size < protocol.FrameSize {
		size = protocol.FrameSize
	}
	data := make([]byte, size)
	for i := range data {
		data[i] = protocol.ReservedFill
	}
	data[0] = byte(protocol.FuncGraphicsContext)
	data[1] = byte(viewportObjectID)
	data[2] = byte(viewportObjectID >> 8)
	data[3] = byte(sub)
	copy(data[4:], payload)
	return c.sendRaw(data)
}

func (c *Client) SendSetGraphicsCursor(viewportObjectID uint16, x, y int16) bool {
	if !c.guardConnected("SendSetGraphicsCursor") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCSetGraphicsCursor, uint8(x), uint8(x>>8), uint8(y), uint8(y>>8))
}

func (c *Client) SendMoveGraphicsCursor(viewportObjectID uint16, dx, dy int16) bool {
	if !c.guardConnected("SendMoveGraphicsCursor") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCMoveGraphicsCursor, uint8(dx), uint8(dx>>8), uint8(dy), uint8(dy>>8))
}

func (c *Client) SendSetForegroundColour(viewportObjectID uint16, colour uint8) bool {
	if !c.guardConnected("SendSetForegroundColour") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCSetForegroundColour, colour)
}

func (c *Client) SendSetBackgroundColour(viewportObjectID uint16, colour uint8) bool {
	if !c.guardConnected("SendSetBackgroundColour") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCSetBackgroundColour, colour)
}

func (c *Client) SendSetLineAttributesObjectID(viewportObjectID, lineAttributesObjectID uint16) bool {
	if !c.guardConnected("SendSetLineAttributesObjectID") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCSetLineAttributesObjectID, uint8(lineAttributesObjectID), uint8(lineAttributesObjectID>>8))
}

func (c *Client) SendSetFillAttributesObjectID(viewportObjectID, fillAttributesObjectID uint16) bool {
	if !c.guardConnected("SendSetFillAttributesObjectID") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCSetFillAttributesObjectID, uint8(fillAttributesObjectID), uint8(fillAttributesObjectID>>8))
}

func (c *Client) SendSetFontAttributesObjectID(viewportObjectID, fontAttributesObjectID uint16) bool {
	if !c.guardConnected("SendSetFontAttributesObjectID") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCSetFontAttributesObjectID, uint8(fontAttributesObjectID), uint8(fontAttributesObjectID>>8))
}

func (c *Client) SendEraseRectangle(viewportObjectID uint16, width, height int16) bool {
	if !c.guardConnected("SendEraseRectangle") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCEraseRectangle, uint8(width), uint8(width>>8), uint8(height), uint8(height>>8))
}

func (c *Client) SendDrawPoint(viewportObjectID uint16) bool {
	if !c.guardConnected("SendDrawPoint") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCDrawPoint)
}

func (c *Client) SendDrawLine(viewportObjectID uint16, width, height int16) bool {
	if !c.guardConnected("SendDrawLine") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCDrawLine, uint8(width), uint8(width>>8), uint8(height), uint8(height>>8))
}

func (c *Client) SendDrawRectangle(viewportObjectID uint16, width, height int16) bool {
	if !c.guardConnected("SendDrawRectangle") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCDrawRectangle, uint8(width), uint8(width>>8), uint8(height), uint8(height>>8))
}

func (c *Client) SendDrawClosedEllipse(viewportObjectID uint16, width, height int16) bool {
	if !c.guardConnected("SendDrawClosedEllipse") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCDrawClosedEllipse, uint8(width), uint8(width>>8), uint8(height), uint8(height>>8))
}

func (c *Client) SendDrawPolygon(viewportObjectID, polygonObjectID uint16) bool {
	if !c.guardConnected("SendDrawPolygon") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCDrawPolygon, uint8(polygonObjectID), uint8(polygonObjectID>>8))
}

func (c *Client) SendDrawText(viewportObjectID uint16, transparent bool, text string) bool {
	if !c.guardConnected("SendDrawText") {
		return false
	}
	transparentByte := uint8(0)
	if transparent {
		transparentByte = 1
	}
	data := make([]byte, 5+len(text))
	data[0] = byte(protocol.FuncGraphicsContext)
	data[1] = byte(viewportObjectID)
	data[2] = byte(viewportObjectID >> 8)
	data[3] = byte(protocol.GCDrawText)
	data[4] = transparentByte
	copy(data[5:], text)
	return c.sendRaw(data)
}

func (c *Client) SendPanViewport(viewportObjectID uint16, dx, dy int16) bool {
	if !c.guardConnected("SendPanViewport") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCPanViewport, uint8(dx), uint8(dx>>8), uint8(dy), uint8(dy>>8))
}

func (c *Client) SendZoomViewport(viewportObjectID uint16, zoom int8) bool {
	if !c.guardConnected("SendZoomViewport") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCZoomViewport, uint8(zoom))
}

func (c *Client) SendPanAndZoomViewport(viewportObjectID uint16, dx, dy int16, zoom int8) bool {
	if !c.guardConnected("SendPanAndZoomViewport") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCPanAndZoomViewport, uint8(dx), uint8(dx>>8), uint8(dy), uint8(dy>>8), uint8(zoom))
}

func (c *Client) SendChangeViewportSize(viewportObjectID, newWidth, newHeight uint16) bool {
	if !c.guardConnected("SendChangeViewportSize") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCChangeViewportSize, uint8(newWidth), uint8(newWidth>>8), uint8(newHeight), uint8(newHeight>>8))
}

func (c *Client) SendDrawVTObject(viewportObjectID, drawnObjectID uint16) bool {
	if !c.guardConnected("SendDrawVTObject") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCDrawVTObject, uint8(drawnObjectID), uint8(drawnObjectID>>8))
}

func (c *Client) SendCopyCanvasToPictureGraphic(viewportObjectID, pictureGraphicObjectID uint16) bool {
	if !c.guardConnected("SendCopyCanvasToPictureGraphic") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCCopyCanvasToPictureGraphic, uint8(pictureGraphicObjectID), uint8(pictureGraphicObjectID>>8))
}

func (c *Client) SendCopyViewportToPictureGraphic(viewportObjectID, pictureGraphicObjectID uint16) bool {
	if !c.guardConnected("SendCopyViewportToPictureGraphic") {
		return false
	}
	return c.graphicsContext(viewportObjectID, protocol.GCCopyViewportToPictureGraphic, uint8(pictureGraphicObjectID), uint8(pictureGraphicObjectID>>8))
}
