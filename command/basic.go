package command

// Basic single-byte controls and raw text passthrough.

// LineFeed prints the line buffer and feeds one line (LF).
type LineFeed struct{}

// Encode implements Command.
func (LineFeed) Encode() []byte { return []byte{LF} }

// FormFeed prints and ejects the page buffer in page mode (FF).
type FormFeed struct{}

// Encode implements Command.
func (FormFeed) Encode() []byte { return []byte{FF} }

// CarriageReturn behaves per the printer's CR configuration (CR).
type CarriageReturn struct{}

// Encode implements Command.
func (CarriageReturn) Encode() []byte { return []byte{CR} }

// HorizontalTab moves the print position to the next tab stop (HT).
type HorizontalTab struct{}

// Encode implements Command.
func (HorizontalTab) Encode() []byte { return []byte{HT} }

// Cancel deletes all print data in the current page-mode area (CAN).
type Cancel struct{}

// Encode implements Command.
func (Cancel) Encode() []byte { return []byte{CAN} }

// Text sends literal text bytes with no translation.
//
// The caller is responsible for keeping control bytes that are
// meaningful to the device out of the string.
type Text string

// Encode implements Command.
func (t Text) Encode() []byte { return []byte(t) }

// Initialize resets the printer to its power-on defaults.
//
// ESC/POS: `ESC @` (0x1B 0x40)
type Initialize struct{}

// Encode implements Command.
func (Initialize) Encode() []byte { return []byte{ESC, '@'} }
