// Package protocol holds the ISO 11783-6 wire constants shared by the
// outbound command codec and the inbound message dispatcher: the function
// multiplexor taxonomy, the two parameter group numbers, and the sentinel
// values used across every command frame.
package protocol

// Parameter group numbers used by the VT client.
const (
	PGNVTToECU uint32 = 0xE600 // inbound: VT server -> working set
	PGNECUToVT uint32 = 0xE700 // outbound: working set -> VT server
)

// NullObjectID is the reserved object ID meaning "no referent".
const NullObjectID uint16 = 0xFFFF

// ReservedFill is the byte value every undocumented tail byte of a command
// frame must carry, per ISO 11783-6 conformance tests (never 0x00).
const ReservedFill byte = 0xFF

// Function is the multiplexor byte occupying byte 0 of every VT frame.
type Function uint8

// Inbound (VT server -> working set) function codes.
const (
	FuncSoftKeyActivation             Function = 0x00
	FuncButtonActivation              Function = 0x01
	FuncPointingEvent                 Function = 0x02
	FuncVTSelectInputObject           Function = 0x03
	FuncVTESC                         Function = 0x04
	FuncVTChangeNumericValue          Function = 0x05
	FuncVTChangeActiveMask            Function = 0x06
	FuncVTChangeSoftKeyMask           Function = 0x07
	FuncVTChangeStringValue           Function = 0x08
	FuncVTOnUserLayoutHideShow        Function = 0x09
	FuncVTControlAudioSignalTerm      Function = 0x0A
	FuncGetVersionsResponse           Function = 0xE0
	FuncUnsupportedVTFunction         Function = 0xFD
	FuncVTStatus                      Function = 0xFE
)

// Outbound (working set -> VT server) function codes.
const (
	FuncObjectPoolTransfer      Function = 0x11
	FuncEndOfObjectPool         Function = 0x12
	FuncSelectActiveWorkingSet  Function = 0x90
	FuncESCCommand              Function = 0x92
	FuncHideShowObject          Function = 0xA0
	FuncEnableDisableObject     Function = 0xA1
	FuncSelectInputObject       Function = 0xA2
	FuncControlAudioSignal      Function = 0xA3
	FuncSetAudioVolume          Function = 0xA4
	FuncChangeChildLocation     Function = 0xA5
	FuncChangeSize              Function = 0xA6
	FuncChangeBackgroundColour  Function = 0xA7
	FuncChangeNumericValue      Function = 0xA8
	FuncChangeEndPoint          Function = 0xA9
	FuncChangeFontAttributes    Function = 0xAA
	FuncChangeLineAttributes    Function = 0xAB
	FuncChangeFillAttributes    Function = 0xAC
	FuncChangeActiveMask        Function = 0xAD
	FuncChangeSoftKeyMask       Function = 0xAE
	FuncChangeAttribute         Function = 0xAF
	FuncChangePriority          Function = 0xB0
	FuncChangeListItem          Function = 0xB1
	FuncDeleteObjectPool        Function = 0xB2
	FuncChangeStringValue       Function = 0xB3
	FuncChangeChildPosition     Function = 0xB4
	FuncChangeObjectLabel       Function = 0xB5
	FuncChangePolygonPoint      Function = 0xB6
	FuncChangePolygonScale      Function = 0xB7
	FuncGraphicsContext         Function = 0xB8
	FuncGetAttributeValue       Function = 0xB9
	FuncSelectColourMap         Function = 0xBA
	FuncIdentifyVT              Function = 0xBB
	FuncExecuteExtendedMacro    Function = 0xBC
	FuncLockUnlockMask          Function = 0xBD
	FuncExecuteMacro            Function = 0xBE
	FuncGetMemory               Function = 0xC0
	FuncGetSupportedWidechars   Function = 0xC1
	FuncGetNumberOfSoftKeys     Function = 0xC2
	FuncGetTextFontData         Function = 0xC3
	FuncGetWindowMaskData       Function = 0xC4
	FuncGetSupportedObjects     Function = 0xC5
	FuncGetHardware             Function = 0xC7
	FuncStoreVersion            Function = 0xD0
	FuncLoadVersion             Function = 0xD1
	FuncDeleteVersion           Function = 0xD2
	FuncExtendedGetVersions     Function = 0xD3
	FuncExtendedStoreVersion    Function = 0xD4
	FuncExtendedLoadVersion     Function = 0xD5
	FuncExtendedDeleteVersion   Function = 0xD6
	FuncGetVersions             Function = 0xDF
)

// FuncWorkingSetMaintenance is the multiplexor of the 1 Hz maintenance
// heartbeat (see commands_bringup.go). The working set master claim sent
// during bring-up uses FuncSelectActiveWorkingSet instead.
const (
	FuncWorkingSetMaintenance Function = 0xFF
)

// GraphicsSubCommand selects the operation carried by a 0xB8 frame in byte 3.
type GraphicsSubCommand uint8

const (
	GCSetGraphicsCursor              GraphicsSubCommand = 0x00
	GCMoveGraphicsCursor             GraphicsSubCommand = 0x01
	GCSetForegroundColour            GraphicsSubCommand = 0x02
	GCSetBackgroundColour            GraphicsSubCommand = 0x03
	GCSetLineAttributesObjectID      GraphicsSubCommand = 0x04
	GCSetFillAttributesObjectID      GraphicsSubCommand = 0x05
	GCSetFontAttributesObjectID      GraphicsSubCommand = 0x06
	GCEraseRectangle                 GraphicsSubCommand = 0x07
	GCDrawPoint                      GraphicsSubCommand = 0x08
	GCDrawLine                       GraphicsSubCommand = 0x09
	GCDrawRectangle                  GraphicsSubCommand = 0x0A
	GCDrawClosedEllipse              GraphicsSubCommand = 0x0B
	GCDrawPolygon                    GraphicsSubCommand = 0x0C
	GCDrawText                       GraphicsSubCommand = 0x0D
	GCPanViewport                    GraphicsSubCommand = 0x0E
	GCZoomViewport                   GraphicsSubCommand = 0x0F
	GCPanAndZoomViewport             GraphicsSubCommand = 0x10
	GCChangeViewportSize             GraphicsSubCommand = 0x11
	GCDrawVTObject                   GraphicsSubCommand = 0x12
	GCCopyCanvasToPictureGraphic     GraphicsSubCommand = 0x13
	GCCopyViewportToPictureGraphic   GraphicsSubCommand = 0x14
)

// MacroEvent enumerates the events a Macro object can be attached to.
// Carried from original_source/isobus for application code that composes
// object pools referencing macros by event; the wire protocol never sends
// a MacroEvent directly.
type MacroEvent uint8

const (
	MacroOnActivate             MacroEvent = 1
	MacroOnDeactivate           MacroEvent = 2
	MacroOnShow                 MacroEvent = 3
	MacroOnHide                 MacroEvent = 4
	MacroOnEnable               MacroEvent = 5
	MacroOnDisable              MacroEvent = 6
	MacroOnChangeActiveMask     MacroEvent = 7
	MacroOnChangeSoftKeyMask    MacroEvent = 8
	MacroOnChangeAttribute      MacroEvent = 9
	MacroOnChangeBackgroundColor MacroEvent = 10
	MacroOnChangeFontAttributes MacroEvent = 11
	MacroOnChangeLineAttributes MacroEvent = 12
	MacroOnChangeFillAttributes MacroEvent = 13
	MacroOnChangeChildLocation  MacroEvent = 14
	MacroOnChangeSize           MacroEvent = 15
	MacroOnChangeValue          MacroEvent = 16
	MacroOnChangePriority       MacroEvent = 17
	MacroOnChangeEndPoint       MacroEvent = 18
	MacroOnInputFieldSelection  MacroEvent = 19
	MacroOnInputFieldDeselection MacroEvent = 20
	MacroOnESC                  MacroEvent = 21
	MacroOnEntryOfValue         MacroEvent = 22
	MacroOnEntryOfNewValue      MacroEvent = 23
	MacroOnKeyPress             MacroEvent = 24
	MacroOnKeyRelease           MacroEvent = 25
	MacroOnChangeChildPosition  MacroEvent = 26
	MacroOnPointingEventPress   MacroEvent = 27
	MacroOnPointingEventRelease MacroEvent = 28
	MacroUseExtendedReference   MacroEvent = 255
)

// VTVersion enumerates the VT protocol versions a client or server may
// report support for.
type VTVersion uint8

const (
	Version2OrOlder VTVersion = iota
	Version3
	Version4
	Version5
	Version6
	VersionReservedOrUnknown
)

// ActivationCode is shared across softkey, button, and pointing events.
type ActivationCode uint8

const (
	ActivationReleased ActivationCode = 0
	ActivationPressed  ActivationCode = 1
	ActivationHeld     ActivationCode = 2
	ActivationAborted  ActivationCode = 3
)

// GraphicMode enumerates the VT server's supported graphics depth.
type GraphicMode uint8

const (
	GraphicModeMonochrome         GraphicMode = 0
	GraphicModeSixteenColour      GraphicMode = 1
	GraphicModeTwoFiftySixColour  GraphicMode = 2
)
