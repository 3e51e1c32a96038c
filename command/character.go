package command

// Character formatting: emphasis, underline, size, font, rotation, etc.
// All of these must be sent BEFORE the text they affect.

// SetEmphasized turns emphasized (bold) mode on or off.
//
// ESC/POS: `ESC E n` (0x1B 0x45 n)
type SetEmphasized bool

// Encode implements Command.
func (s SetEmphasized) Encode() []byte { return []byte{ESC, 'E', boolByte(bool(s))} }

// UnderlineThickness is the underline weight in dots.
type UnderlineThickness byte

const (
	// UnderlineOff disables underlining.
	UnderlineOff UnderlineThickness = 0
	// UnderlineOneDot is a 1-dot thick underline.
	UnderlineOneDot UnderlineThickness = 1
	// UnderlineTwoDot is a 2-dot thick underline.
	UnderlineTwoDot UnderlineThickness = 2
)

// SetUnderline turns underline mode on or off.
//
// ESC/POS: `ESC - n` (0x1B 0x2D n)
type SetUnderline UnderlineThickness

// Encode implements Command.
func (s SetUnderline) Encode() []byte { return []byte{ESC, '-', byte(s)} }

// SetDoubleStrike turns double-strike mode on or off.
// Characters are printed twice for darker output.
//
// ESC/POS: `ESC G n` (0x1B 0x47 n)
type SetDoubleStrike bool

// Encode implements Command.
func (s SetDoubleStrike) Encode() []byte { return []byte{ESC, 'G', boolByte(bool(s))} }

// Font is a built-in character font.
type Font byte

const (
	// FontA is 12×24 dots.
	FontA Font = 0
	// FontB is 9×17 dots.
	FontB Font = 1
)

// SelectFont selects the character font.
//
// ESC/POS: `ESC M n` (0x1B 0x4D n)
type SelectFont Font

// Encode implements Command.
func (s SelectFont) Encode() []byte { return []byte{ESC, 'M', byte(s)} }

// ScaleFactor is a character scale of 1x..8x, encoded as 0..7.
type ScaleFactor byte

const (
	Scale1x ScaleFactor = iota
	Scale2x
	Scale3x
	Scale4x
	Scale5x
	Scale6x
	Scale7x
	Scale8x
)

// CharacterSize scales width and height independently.
type CharacterSize struct {
	Width  ScaleFactor
	Height ScaleFactor
}

// StandardSize is 1×1.
func StandardSize() CharacterSize { return CharacterSize{Scale1x, Scale1x} }

// DoubleSize is 2×2.
func DoubleSize() CharacterSize { return CharacterSize{Scale2x, Scale2x} }

// DoubleWidth is 2×1.
func DoubleWidth() CharacterSize { return CharacterSize{Scale2x, Scale1x} }

// DoubleHeight is 1×2.
func DoubleHeight() CharacterSize { return CharacterSize{Scale1x, Scale2x} }

// SetCharacterSize sets width and height scaling.
//
// ESC/POS: `GS ! n` (0x1D 0x21 n)
// Bits 4-6 carry the width scale, bits 0-2 the height scale.
type SetCharacterSize CharacterSize

// Encode implements Command.
func (s SetCharacterSize) Encode() []byte {
	n := byte(s.Width)<<4 | byte(s.Height)
	return []byte{GS, '!', n}
}

// Justification is the horizontal text alignment.
type Justification byte

const (
	// JustifyLeft is the power-on default.
	JustifyLeft Justification = 0
	// JustifyCenter centers each line.
	JustifyCenter Justification = 1
	// JustifyRight right-aligns each line.
	JustifyRight Justification = 2
)

// SetJustification sets text alignment. Only effective at the
// beginning of a line.
//
// ESC/POS: `ESC a n` (0x1B 0x61 n)
type SetJustification Justification

// Encode implements Command.
func (s SetJustification) Encode() []byte { return []byte{ESC, 'a', byte(s)} }

// SetUpsideDown turns 180°-rotated printing on or off.
// Only effective at the beginning of a line.
//
// ESC/POS: `ESC { n` (0x1B 0x7B n)
type SetUpsideDown bool

// Encode implements Command.
func (s SetUpsideDown) Encode() []byte { return []byte{ESC, '{', boolByte(bool(s))} }

// RotationMode selects 90° clockwise character rotation.
type RotationMode byte

const (
	// RotationOff disables rotation.
	RotationOff RotationMode = 0
	// RotationClockwise90 rotates characters 90° clockwise.
	RotationClockwise90 RotationMode = 1
)

// SetRotation turns 90° clockwise rotation on or off.
//
// ESC/POS: `ESC V n` (0x1B 0x56 n)
type SetRotation RotationMode

// Encode implements Command.
func (s SetRotation) Encode() []byte { return []byte{ESC, 'V', byte(s)} }

// SetReverse turns white/black reverse printing on or off.
//
// ESC/POS: `GS B n` (0x1D 0x42 n)
type SetReverse bool

// Encode implements Command.
func (s SetReverse) Encode() []byte { return []byte{GS, 'B', boolByte(bool(s))} }

// SetSmoothing turns edge smoothing for enlarged characters on or off.
//
// ESC/POS: `GS b n` (0x1D 0x62 n)
type SetSmoothing bool

// Encode implements Command.
func (s SetSmoothing) Encode() []byte { return []byte{GS, 'b', boolByte(bool(s))} }

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
