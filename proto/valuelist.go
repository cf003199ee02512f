package proto

import "sort"

// WindowValue holds the optional attributes of CreateWindow and
// ChangeWindowAttributes, keyed by the CW* bits. Only fields whose bit is
// set in the mask returned by Encode are emitted.
type WindowValue struct {
	BackPixmap       *uint32
	BackPixel        *uint32
	BorderPixmap     *uint32
	BorderPixel      *uint32
	BitGravity       *uint32
	WinGravity       *uint32
	BackingStore     *uint32
	BackingPlanes    *uint32
	BackingPixel     *uint32
	OverrideRedirect *bool
	SaveUnder        *bool
	EventMask        *uint32
	DontPropagate    *uint32
	Colormap         *uint32
	Cursor           *uint32
}

type valueCell struct {
	bit uint32
	val uint32
}

// boolToCell encodes a bool as the wire's 4-byte 0/1 cell.
func boolToCell(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Encode returns the bitmask and the value cells in ascending-bit order,
// as the wire format requires: the mask is emitted first, then one 4-byte
// cell per set bit, low bit to high bit. The cells are ordered with
// sort.Slice; a value list never holds more than 23 items
// (GraphicsContextValue, the largest).
func (v WindowValue) Encode() (mask uint32, cells []uint32) {
	var items []valueCell
	add := func(bit uint32, val uint32) { items = append(items, valueCell{bit, val}) }
	if v.BackPixmap != nil {
		add(CWBackPixmap, *v.BackPixmap)
	}
	if v.BackPixel != nil {
		add(CWBackPixel, *v.BackPixel)
	}
	if v.BorderPixmap != nil {
		add(CWBorderPixmap, *v.BorderPixmap)
	}
	if v.BorderPixel != nil {
		add(CWBorderPixel, *v.BorderPixel)
	}
	if v.BitGravity != nil {
		add(CWBitGravity, *v.BitGravity)
	}
	if v.WinGravity != nil {
		add(CWWinGravity, *v.WinGravity)
	}
	if v.BackingStore != nil {
		add(CWBackingStore, *v.BackingStore)
	}
	if v.BackingPlanes != nil {
		add(CWBackingPlanes, *v.BackingPlanes)
	}
	if v.BackingPixel != nil {
		add(CWBackingPixel, *v.BackingPixel)
	}
	if v.OverrideRedirect != nil {
		add(CWOverrideRedirect, boolToCell(*v.OverrideRedirect))
	}
	if v.SaveUnder != nil {
		add(CWSaveUnder, boolToCell(*v.SaveUnder))
	}
	if v.EventMask != nil {
		add(CWEventMask, *v.EventMask)
	}
	if v.DontPropagate != nil {
		add(CWDontPropagate, *v.DontPropagate)
	}
	if v.Colormap != nil {
		add(CWColormap, *v.Colormap)
	}
	if v.Cursor != nil {
		add(CWCursor, *v.Cursor)
	}
	return encodeCells(items)
}

func encodeCells(items []valueCell) (uint32, []uint32) {
	sort.Slice(items, func(i, j int) bool { return items[i].bit < items[j].bit })
	var mask uint32
	cells := make([]uint32, 0, len(items))
	for _, it := range items {
		mask |= it.bit
		cells = append(cells, it.val)
	}
	return mask, cells
}

// GraphicsContextValue holds the optional attributes of CreateGC and
// ChangeGC, keyed by the GC* bits. 23 tags.
type GraphicsContextValue struct {
	Function            *uint32
	PlaneMask            *uint32
	Foreground           *uint32
	Background           *uint32
	LineWidth            *uint32
	LineStyle            *uint32
	CapStyle             *uint32
	JoinStyle            *uint32
	FillStyle            *uint32
	FillRule             *uint32
	Tile                 *uint32
	Stipple              *uint32
	TileStippleXOrigin   *int32
	TileStippleYOrigin   *int32
	Font                 *uint32
	SubwindowMode        *uint32
	GraphicsExposures    *bool
	ClipXOrigin          *int32
	ClipYOrigin          *int32
	ClipMask             *uint32
	DashOffset           *uint32
	DashList             *uint32
	ArcMode              *uint32
}

func (v GraphicsContextValue) Encode() (mask uint32, cells []uint32) {
	var items []valueCell
	add := func(bit uint32, val uint32) { items = append(items, valueCell{bit, val}) }
	if v.Function != nil {
		add(GCFunction, *v.Function)
	}
	if v.PlaneMask != nil {
		add(GCPlaneMask, *v.PlaneMask)
	}
	if v.Foreground != nil {
		add(GCForeground, *v.Foreground)
	}
	if v.Background != nil {
		add(GCBackground, *v.Background)
	}
	if v.LineWidth != nil {
		add(GCLineWidth, *v.LineWidth)
	}
	if v.LineStyle != nil {
		add(GCLineStyle, *v.LineStyle)
	}
	if v.CapStyle != nil {
		add(GCCapStyle, *v.CapStyle)
	}
	if v.JoinStyle != nil {
		add(GCJoinStyle, *v.JoinStyle)
	}
	if v.FillStyle != nil {
		add(GCFillStyle, *v.FillStyle)
	}
	if v.FillRule != nil {
		add(GCFillRule, *v.FillRule)
	}
	if v.Tile != nil {
		add(GCTile, *v.Tile)
	}
	if v.Stipple != nil {
		add(GCStipple, *v.Stipple)
	}
	if v.TileStippleXOrigin != nil {
		add(GCTileStippleXOrigin, uint32(*v.TileStippleXOrigin))
	}
	if v.TileStippleYOrigin != nil {
		add(GCTileStippleYOrigin, uint32(*v.TileStippleYOrigin))
	}
	if v.Font != nil {
		add(GCFont, *v.Font)
	}
	if v.SubwindowMode != nil {
		add(GCSubwindowMode, *v.SubwindowMode)
	}
	if v.GraphicsExposures != nil {
		add(GCGraphicsExposures, boolToCell(*v.GraphicsExposures))
	}
	if v.ClipXOrigin != nil {
		add(GCClipXOrigin, uint32(*v.ClipXOrigin))
	}
	if v.ClipYOrigin != nil {
		add(GCClipYOrigin, uint32(*v.ClipYOrigin))
	}
	if v.ClipMask != nil {
		add(GCClipMask, *v.ClipMask)
	}
	if v.DashOffset != nil {
		add(GCDashOffset, *v.DashOffset)
	}
	if v.DashList != nil {
		add(GCDashList, *v.DashList)
	}
	if v.ArcMode != nil {
		add(GCArcMode, *v.ArcMode)
	}
	return encodeCells(items)
}

// ConfigureWindowValue holds ConfigureWindow's independent 16-bit mask.
type ConfigureWindowValue struct {
	X, Y                 *int32
	Width, Height        *uint32
	BorderWidth          *uint32
	Sibling              *uint32
	StackMode            *uint32
}

func (v ConfigureWindowValue) Encode() (mask uint16, cells []uint32) {
	type cw struct {
		bit uint16
		val uint32
	}
	var items []cw
	if v.X != nil {
		items = append(items, cw{CWX, uint32(*v.X)})
	}
	if v.Y != nil {
		items = append(items, cw{CWY, uint32(*v.Y)})
	}
	if v.Width != nil {
		items = append(items, cw{CWWidth, *v.Width})
	}
	if v.Height != nil {
		items = append(items, cw{CWHeight, *v.Height})
	}
	if v.BorderWidth != nil {
		items = append(items, cw{CWBorderWidth, *v.BorderWidth})
	}
	if v.Sibling != nil {
		items = append(items, cw{CWSibling, *v.Sibling})
	}
	if v.StackMode != nil {
		items = append(items, cw{CWStackMode, *v.StackMode})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].bit < items[j].bit })
	for _, it := range items {
		mask |= it.bit
		cells = append(cells, it.val)
	}
	return mask, cells
}

// KeyboardControlValue holds ChangeKeyboardControl's 8-tag, 16-bit mask.
// Every cell is still a 4-byte value on the wire, matching every other
// value list even though the mask itself is half the width.
type KeyboardControlValue struct {
	KeyClickPercent *int32
	BellPercent     *int32
	BellPitch       *int32
	BellDuration    *int32
	Led             *uint32
	LedMode         *uint32
	Key             *uint32
	AutoRepeatMode  *uint32
}

func (v KeyboardControlValue) Encode() (mask uint16, cells []uint32) {
	type kb struct {
		bit uint16
		val uint32
	}
	var items []kb
	if v.KeyClickPercent != nil {
		items = append(items, kb{KBKeyClickPercent, uint32(*v.KeyClickPercent)})
	}
	if v.BellPercent != nil {
		items = append(items, kb{KBBellPercent, uint32(*v.BellPercent)})
	}
	if v.BellPitch != nil {
		items = append(items, kb{KBBellPitch, uint32(*v.BellPitch)})
	}
	if v.BellDuration != nil {
		items = append(items, kb{KBBellDuration, uint32(*v.BellDuration)})
	}
	if v.Led != nil {
		items = append(items, kb{KBLed, *v.Led})
	}
	if v.LedMode != nil {
		items = append(items, kb{KBLedMode, *v.LedMode})
	}
	if v.Key != nil {
		items = append(items, kb{KBKey, *v.Key})
	}
	if v.AutoRepeatMode != nil {
		items = append(items, kb{KBAutoRepeatMode, *v.AutoRepeatMode})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].bit < items[j].bit })
	for _, it := range items {
		mask |= it.bit
		cells = append(cells, it.val)
	}
	return mask, cells
}
