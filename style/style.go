// Package style 提供样式文本树：以树的方式描述带格式的小票文本，
// 并渲染为带最小格式切换指令的 ESC/POS 字节流。
package style

// Underline is the underline level of a style set.
type Underline int

const (
	// UnderlineNone disables underlining.
	UnderlineNone Underline = iota
	// UnderlineSingle is a 1-dot underline.
	UnderlineSingle
	// UnderlineDouble is a 2-dot underline.
	UnderlineDouble
)

// StyleSet is an immutable set of character attributes. The zero value
// has every attribute off. Builders return modified copies, so a
// StyleSet can be shared freely.
type StyleSet struct {
	Bold         bool
	DoubleStrike bool
	Reverse      bool
	UpsideDown   bool
	Rotated      bool
	Underline    Underline
}

// WithBold returns a copy with bold set to v.
func (s StyleSet) WithBold(v bool) StyleSet {
	s.Bold = v
	return s
}

// WithDoubleStrike returns a copy with double-strike set to v.
func (s StyleSet) WithDoubleStrike(v bool) StyleSet {
	s.DoubleStrike = v
	return s
}

// WithReverse returns a copy with white/black reverse set to v.
func (s StyleSet) WithReverse(v bool) StyleSet {
	s.Reverse = v
	return s
}

// WithUpsideDown returns a copy with upside-down printing set to v.
func (s StyleSet) WithUpsideDown(v bool) StyleSet {
	s.UpsideDown = v
	return s
}

// WithRotated returns a copy with 90° rotation set to v.
func (s StyleSet) WithRotated(v bool) StyleSet {
	s.Rotated = v
	return s
}

// WithUnderline returns a copy with the underline level set to u.
func (s StyleSet) WithUnderline(u Underline) StyleSet {
	s.Underline = u
	return s
}

// Effective folds a scope stack (outermost first) into the effective
// style at the innermost scope. Boolean attributes combine with OR, so
// an inner scope can add attributes but never remove one; the underline
// level is the strongest requested anywhere on the stack. Only popping
// a scope can reduce an attribute.
func Effective(stack []StyleSet) StyleSet {
	var eff StyleSet
	for _, s := range stack {
		eff.Bold = eff.Bold || s.Bold
		eff.DoubleStrike = eff.DoubleStrike || s.DoubleStrike
		eff.Reverse = eff.Reverse || s.Reverse
		eff.UpsideDown = eff.UpsideDown || s.UpsideDown
		eff.Rotated = eff.Rotated || s.Rotated
		if s.Underline > eff.Underline {
			eff.Underline = s.Underline
		}
	}
	return eff
}
