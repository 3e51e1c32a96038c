package command

// Page mode: output is buffered into a print area and emitted when
// FormFeed is sent.

// EnterPageMode switches from standard mode to page mode.
//
// ESC/POS: `ESC L` (0x1B 0x4C)
type EnterPageMode struct{}

// Encode implements Command.
func (EnterPageMode) Encode() []byte { return []byte{ESC, 'L'} }

// ExitPageMode discards the page buffer and returns to standard mode.
//
// ESC/POS: `ESC S` (0x1B 0x53)
type ExitPageMode struct{}

// Encode implements Command.
func (ExitPageMode) Encode() []byte { return []byte{ESC, 'S'} }

// PrintDirection is the print direction inside the page area.
type PrintDirection byte

const (
	// LeftToRight starts at the upper-left corner.
	LeftToRight PrintDirection = 0
	// BottomToTop starts at the lower-left corner.
	BottomToTop PrintDirection = 1
	// RightToLeft starts at the lower-right corner.
	RightToLeft PrintDirection = 2
	// TopToBottom starts at the upper-right corner.
	TopToBottom PrintDirection = 3
)

// SetPrintDirection sets the page-mode print direction.
//
// ESC/POS: `ESC T n` (0x1B 0x54 n)
type SetPrintDirection PrintDirection

// Encode implements Command.
func (s SetPrintDirection) Encode() []byte { return []byte{ESC, 'T', byte(s)} }

// PrintArea is the page-mode print area in motion units.
type PrintArea struct {
	X      uint16
	Y      uint16
	Width  uint16
	Height uint16
}

// PrintArea80mm is the default print area for 80mm paper.
func PrintArea80mm() PrintArea { return PrintArea{Width: 512, Height: 1662} }

// PrintArea58mm is the default print area for 58mm paper.
func PrintArea58mm() PrintArea { return PrintArea{Width: 360, Height: 1662} }

// SetPrintArea defines the page-mode print area boundaries.
//
// ESC/POS: `ESC W xL xH yL yH dxL dxH dyL dyH`
type SetPrintArea PrintArea

// Encode implements Command.
func (s SetPrintArea) Encode() []byte {
	xl, xh := lowHigh(s.X)
	yl, yh := lowHigh(s.Y)
	wl, wh := lowHigh(s.Width)
	hl, hh := lowHigh(s.Height)
	return []byte{ESC, 'W', xl, xh, yl, yh, wl, wh, hl, hh}
}

// SetHorizontalPosition sets the absolute horizontal position relative
// to the left edge of the print area, in motion units.
//
// ESC/POS: `ESC $ nL nH` (0x1B 0x24 nL nH)
type SetHorizontalPosition uint16

// Encode implements Command.
func (s SetHorizontalPosition) Encode() []byte {
	nl, nh := lowHigh(uint16(s))
	return []byte{ESC, '$', nl, nh}
}

// SetVerticalPosition sets the absolute vertical position in page mode.
//
// ESC/POS: `GS $ nL nH` (0x1D 0x24 nL nH)
type SetVerticalPosition uint16

// Encode implements Command.
func (s SetVerticalPosition) Encode() []byte {
	nl, nh := lowHigh(uint16(s))
	return []byte{GS, '$', nl, nh}
}
