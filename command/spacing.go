package command

// 行距与打印位置相关指令。

// SetDefaultLineSpacing 恢复默认行距（约 1/6 英寸）。
//
// ESC/POS: `ESC 2` (0x1B 0x32)
type SetDefaultLineSpacing struct{}

// Encode implements Command.
func (SetDefaultLineSpacing) Encode() []byte { return []byte{ESC, '2'} }

// SetLineSpacing 以纵向运动单位设置行距。
//
// ESC/POS: `ESC 3 n` (0x1B 0x33 n)
type SetLineSpacing byte

// Encode implements Command.
func (s SetLineSpacing) Encode() []byte { return []byte{ESC, '3', byte(s)} }

// SetRightSpacing 设置字符右侧间距。
//
// ESC/POS: `ESC SP n` (0x1B 0x20 n)
type SetRightSpacing byte

// Encode implements Command.
func (s SetRightSpacing) Encode() []byte { return []byte{ESC, ' ', byte(s)} }

// SetHorizontalTabs 设置水平制表位（升序，最多 32 个），空列表表示清除。
//
// ESC/POS: `ESC D n1...nk NUL` (0x1B 0x44 ... 0x00)
type SetHorizontalTabs []byte

// ClearHorizontalTabs 清除全部制表位。
func ClearHorizontalTabs() SetHorizontalTabs { return SetHorizontalTabs{} }

// Encode implements Command.
func (s SetHorizontalTabs) Encode() []byte {
	out := make([]byte, 0, len(s)+3)
	out = append(out, ESC, 'D')
	out = append(out, s...)
	return append(out, 0x00)
}

// SetAbsolutePosition 设置绝对打印位置。
//
// ESC/POS: `ESC $ nL nH` (0x1B 0x24 nL nH)
type SetAbsolutePosition uint16

// Encode implements Command.
func (s SetAbsolutePosition) Encode() []byte {
	nl, nh := lowHigh(uint16(s))
	return []byte{ESC, '$', nl, nh}
}

// SetRelativePosition 设置相对打印位置，负值向左移动（按补码编码）。
//
// ESC/POS: `ESC \ nL nH` (0x1B 0x5C nL nH)
type SetRelativePosition int16

// Encode implements Command.
func (s SetRelativePosition) Encode() []byte {
	nl, nh := lowHigh(uint16(s))
	return []byte{ESC, '\\', nl, nh}
}

// SetLeftMargin 设置左边距。
//
// ESC/POS: `GS L nL nH` (0x1D 0x4C nL nH)
type SetLeftMargin uint16

// Encode implements Command.
func (s SetLeftMargin) Encode() []byte {
	nl, nh := lowHigh(uint16(s))
	return []byte{GS, 'L', nl, nh}
}

// SetPrintingWidth 设置打印区域宽度。
//
// ESC/POS: `GS W nL nH` (0x1D 0x57 nL nH)
type SetPrintingWidth uint16

// Encode implements Command.
func (s SetPrintingWidth) Encode() []byte {
	nl, nh := lowHigh(uint16(s))
	return []byte{GS, 'W', nl, nh}
}
