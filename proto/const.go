// Package proto implements the wire-format types and codecs of the X11
// core protocol: requests, replies, events, errors, the connection
// handshake, and the value-list encodings shared across several request
// kinds. It has no knowledge of sockets or goroutines; see package client
// for the concurrent engine built on top of it.
package proto

// Opcode identifies a core X11 request.
type Opcode uint8

// Core request opcodes, X11 protocol §Requests.
const (
	OpCreateWindow           Opcode = 1
	OpChangeWindowAttributes Opcode = 2
	OpGetWindowAttributes    Opcode = 3
	OpDestroyWindow          Opcode = 4
	OpDestroySubwindows      Opcode = 5
	OpChangeSaveSet          Opcode = 6
	OpReparentWindow         Opcode = 7
	OpMapWindow              Opcode = 8
	OpMapSubwindows          Opcode = 9
	OpUnmapWindow            Opcode = 10
	OpUnmapSubwindows        Opcode = 11
	OpConfigureWindow        Opcode = 12
	OpCirculateWindow        Opcode = 13
	OpGetGeometry            Opcode = 14
	OpQueryTree              Opcode = 15
	OpInternAtom             Opcode = 16
	OpGetAtomName            Opcode = 17
	OpChangeProperty         Opcode = 18
	OpDeleteProperty         Opcode = 19
	OpGetProperty            Opcode = 20
	OpListProperties         Opcode = 21
	OpSetSelectionOwner      Opcode = 22
	OpGetSelectionOwner      Opcode = 23
	OpConvertSelection       Opcode = 24
	OpSendEvent              Opcode = 25
	OpGrabPointer            Opcode = 26
	OpUngrabPointer          Opcode = 27
	OpGrabButton             Opcode = 28
	OpUngrabButton           Opcode = 29
	OpChangeActivePointerGrab Opcode = 30
	OpGrabKeyboard           Opcode = 31
	OpUngrabKeyboard         Opcode = 32
	OpGrabKey                Opcode = 33
	OpUngrabKey              Opcode = 34
	OpAllowEvents            Opcode = 35
	OpGrabServer             Opcode = 36
	OpUngrabServer           Opcode = 37
	OpQueryPointer           Opcode = 38
	OpGetMotionEvents        Opcode = 39
	OpTranslateCoordinates   Opcode = 40
	OpWarpPointer            Opcode = 41
	OpSetInputFocus          Opcode = 42
	OpGetInputFocus          Opcode = 43
	OpQueryKeymap            Opcode = 44
	OpOpenFont               Opcode = 45
	OpCloseFont              Opcode = 46
	OpQueryFont              Opcode = 47
	OpQueryTextExtents       Opcode = 48
	OpListFonts              Opcode = 49
	OpListFontsWithInfo      Opcode = 50
	OpSetFontPath            Opcode = 51
	OpGetFontPath            Opcode = 52
	OpCreatePixmap           Opcode = 53
	OpFreePixmap             Opcode = 54
	OpCreateGC               Opcode = 55
	OpChangeGC               Opcode = 56
	OpCopyGC                 Opcode = 57
	OpSetDashes              Opcode = 58
	OpSetClipRectangles      Opcode = 59
	OpFreeGC                 Opcode = 60
	OpClearArea              Opcode = 61
	OpCopyArea               Opcode = 62
	OpCopyPlane              Opcode = 63
	OpPolyPoint              Opcode = 64
	OpPolyLine               Opcode = 65
	OpPolySegment            Opcode = 66
	OpPolyRectangle          Opcode = 67
	OpPolyArc                Opcode = 68
	OpFillPoly               Opcode = 69
	OpPolyFillRectangle      Opcode = 70
	OpPolyFillArc            Opcode = 71
	OpPutImage               Opcode = 72
	OpGetImage               Opcode = 73
	OpPolyText8              Opcode = 74
	OpPolyText16             Opcode = 75
	OpImageText8             Opcode = 76
	OpImageText16            Opcode = 77
	OpCreateColormap         Opcode = 78
	OpFreeColormap           Opcode = 79
	OpCopyColormapAndFree    Opcode = 80
	OpInstallColormap        Opcode = 81
	OpUninstallColormap      Opcode = 82
	OpListInstalledColormaps Opcode = 83
	OpAllocColor             Opcode = 84
	OpAllocNamedColor        Opcode = 85
	OpAllocColorCells        Opcode = 86
	OpAllocColorPlanes       Opcode = 87
	OpFreeColors             Opcode = 88
	OpStoreColors            Opcode = 89
	OpStoreNamedColor        Opcode = 90
	OpQueryColors            Opcode = 91
	OpLookupColor            Opcode = 92
	OpCreateCursor           Opcode = 93
	OpCreateGlyphCursor      Opcode = 94
	OpFreeCursor             Opcode = 95
	OpRecolorCursor          Opcode = 96
	OpQueryBestSize          Opcode = 97
	OpQueryExtension         Opcode = 98
	OpListExtensions         Opcode = 99
	OpChangeKeyboardMapping  Opcode = 100
	OpGetKeyboardMapping     Opcode = 101
	OpChangeKeyboardControl  Opcode = 102
	OpGetKeyboardControl     Opcode = 103
	OpBell                   Opcode = 104
	OpChangePointerControl   Opcode = 105
	OpGetPointerControl      Opcode = 106
	OpSetScreenSaver         Opcode = 107
	OpGetScreenSaver         Opcode = 108
	OpChangeHosts            Opcode = 109
	OpListHosts              Opcode = 110
	OpSetAccessControl       Opcode = 111
	OpSetCloseDownMode       Opcode = 112
	OpKillClient             Opcode = 113
	OpRotateProperties       Opcode = 114
	OpForceScreenSaver       Opcode = 115
	OpSetPointerMapping      Opcode = 116
	OpGetPointerMapping      Opcode = 117
	OpSetModifierMapping     Opcode = 118
	OpGetModifierMapping     Opcode = 119
	OpNoOperation            Opcode = 127

	// OpBigRequestsEnable is the BIG-REQUESTS extension's sole minor
	// opcode; the extension's major opcode is assigned dynamically by
	// QueryExtension and is not a compile-time constant.
	OpBigRequestsEnable Opcode = 0
)

// Event opcodes, X11 protocol §Events. Bit 7 (0x80) marks a synthetic
// event delivered via SendEvent; it is masked off before dispatch.
const (
	EvKeyPress         = 2
	EvKeyRelease       = 3
	EvButtonPress      = 4
	EvButtonRelease    = 5
	EvMotionNotify     = 6
	EvEnterNotify      = 7
	EvLeaveNotify      = 8
	EvFocusIn          = 9
	EvFocusOut         = 10
	EvKeymapNotify     = 11
	EvExpose           = 12
	EvGraphicsExposure = 13
	EvNoExposure       = 14
	EvVisibilityNotify = 15
	EvCreateNotify     = 16
	EvDestroyNotify    = 17
	EvUnmapNotify      = 18
	EvMapNotify        = 19
	EvMapRequest       = 20
	EvReparentNotify   = 21
	EvConfigureNotify  = 22
	EvConfigureRequest = 23
	EvGravityNotify    = 24
	EvResizeRequest    = 25
	EvCirculateNotify  = 26
	EvCirculateRequest = 27
	EvPropertyNotify   = 28
	EvSelectionClear   = 29
	EvSelectionRequest = 30
	EvSelectionNotify  = 31
	EvColormapNotify   = 32
	EvClientMessage    = 33
	EvMappingNotify    = 34
	EvGenericEvent     = 35

	sendEventMask = 0x80
)

// Error codes, X11 protocol §Errors.
const (
	ErrRequest        = 1
	ErrValue          = 2
	ErrWindow         = 3
	ErrPixmap         = 4
	ErrAtom           = 5
	ErrCursor         = 6
	ErrFont           = 7
	ErrMatch          = 8
	ErrDrawable       = 9
	ErrAccess         = 10
	ErrAlloc          = 11
	ErrColormap       = 12
	ErrGContext       = 13
	ErrIDChoice       = 14
	ErrName           = 15
	ErrLength         = 16
	ErrImplementation = 17
)

// WindowValue bits: the 32-bit value-mask used by CreateWindow and
// ChangeWindowAttributes. 15 tags; CWSibling and CWStackMode belong only
// to ConfigureWindowValue, never here.
const (
	CWBackPixmap       uint32 = 1 << 0
	CWBackPixel        uint32 = 1 << 1
	CWBorderPixmap     uint32 = 1 << 2
	CWBorderPixel      uint32 = 1 << 3
	CWBitGravity       uint32 = 1 << 4
	CWWinGravity       uint32 = 1 << 5
	CWBackingStore     uint32 = 1 << 6
	CWBackingPlanes    uint32 = 1 << 7
	CWBackingPixel     uint32 = 1 << 8
	CWOverrideRedirect uint32 = 1 << 9
	CWSaveUnder        uint32 = 1 << 10
	CWEventMask        uint32 = 1 << 11
	CWDontPropagate    uint32 = 1 << 12
	CWColormap         uint32 = 1 << 13
	CWCursor           uint32 = 1 << 14
)

// ConfigureWindowValue bits: the independent 16-bit mask used by
// ConfigureWindow.
const (
	CWX           uint16 = 1 << 0
	CWY           uint16 = 1 << 1
	CWWidth       uint16 = 1 << 2
	CWHeight      uint16 = 1 << 3
	CWBorderWidth uint16 = 1 << 4
	CWSibling     uint16 = 1 << 5
	CWStackMode   uint16 = 1 << 6
)

// GraphicsContextValue bits: the 32-bit mask used by CreateGC/ChangeGC. 23 tags.
const (
	GCFunction          uint32 = 1 << 0
	GCPlaneMask         uint32 = 1 << 1
	GCForeground        uint32 = 1 << 2
	GCBackground        uint32 = 1 << 3
	GCLineWidth         uint32 = 1 << 4
	GCLineStyle         uint32 = 1 << 5
	GCCapStyle          uint32 = 1 << 6
	GCJoinStyle         uint32 = 1 << 7
	GCFillStyle         uint32 = 1 << 8
	GCFillRule          uint32 = 1 << 9
	GCTile              uint32 = 1 << 10
	GCStipple           uint32 = 1 << 11
	GCTileStippleXOrigin uint32 = 1 << 12
	GCTileStippleYOrigin uint32 = 1 << 13
	GCFont              uint32 = 1 << 14
	GCSubwindowMode     uint32 = 1 << 15
	GCGraphicsExposures uint32 = 1 << 16
	GCClipXOrigin       uint32 = 1 << 17
	GCClipYOrigin       uint32 = 1 << 18
	GCClipMask          uint32 = 1 << 19
	GCDashOffset        uint32 = 1 << 20
	GCDashList          uint32 = 1 << 21
	GCArcMode           uint32 = 1 << 22
)

// KeyboardControlValue bits: the 16-bit mask used by ChangeKeyboardControl.
// 8 tags; every value cell is still 4-byte padded on the wire.
const (
	KBKeyClickPercent uint16 = 1 << 0
	KBBellPercent     uint16 = 1 << 1
	KBBellPitch       uint16 = 1 << 2
	KBBellDuration    uint16 = 1 << 3
	KBLed             uint16 = 1 << 4
	KBLedMode         uint16 = 1 << 5
	KBKey             uint16 = 1 << 6
	KBAutoRepeatMode  uint16 = 1 << 7
)

// Window classes for CreateWindow.
const (
	ClassCopyFromParent uint16 = 0
	ClassInputOutput    uint16 = 1
	ClassInputOnly      uint16 = 2
)

// Byte-order wire values in the connection setup.
const (
	OrderLSBFirst byte = 0x6c // 'l'
	OrderMSBFirst byte = 0x42 // 'B'
)

// Connection setup status codes.
const (
	SetupFailed       byte = 0
	SetupSuccess      byte = 1
	SetupAuthenticate byte = 2
)

// PropMode values for ChangeProperty.
const (
	PropModeReplace uint8 = 0
	PropModePrepend uint8 = 1
	PropModeAppend  uint8 = 2
)

// BigRequestsExtensionName is the extension name QueryExtension expects
// for negotiating a larger maximum request length.
const BigRequestsExtensionName = "BIG-REQUESTS"
