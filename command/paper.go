package command

// Paper feeding and cutting.

// CutMode 选择切纸方式。
type CutMode byte

const (
	// CutFull 全切。
	CutFull CutMode = 0
	// CutPartial 半切（留一点连接）。
	CutPartial CutMode = 1
	// CutFeedAndFull 先走纸再全切。
	CutFeedAndFull CutMode = 65
	// CutFeedAndPartial 先走纸再半切。
	CutFeedAndPartial CutMode = 66
)

// CutPaper 切纸指令。
//
// ESC/POS: `GS V m [n]` (0x1D 0x56 m [n])
// 带走纸的两种模式附带 n（走纸单位数），其余模式无参数。
type CutPaper struct {
	Mode CutMode
	// Feed 走纸单位数，仅 CutFeedAndFull/CutFeedAndPartial 使用。
	Feed byte
}

// FullCut 立即全切。
func FullCut() CutPaper { return CutPaper{Mode: CutFull} }

// PartialCut 立即半切。
func PartialCut() CutPaper { return CutPaper{Mode: CutPartial} }

// FeedAndFullCut 走纸 n 个单位后全切。
func FeedAndFullCut(n byte) CutPaper { return CutPaper{Mode: CutFeedAndFull, Feed: n} }

// FeedAndPartialCut 走纸 n 个单位后半切。
func FeedAndPartialCut(n byte) CutPaper { return CutPaper{Mode: CutFeedAndPartial, Feed: n} }

// Encode implements Command.
func (c CutPaper) Encode() []byte {
	if c.Mode == CutFeedAndFull || c.Mode == CutFeedAndPartial {
		return []byte{GS, 'V', byte(c.Mode), c.Feed}
	}
	return []byte{GS, 'V', byte(c.Mode)}
}

// FeedLines 打印缓冲区内容并走纸 n 行。
//
// ESC/POS: `ESC d n` (0x1B 0x64 n)
type FeedLines byte

// Encode implements Command.
func (f FeedLines) Encode() []byte { return []byte{ESC, 'd', byte(f)} }

// FeedUnits 打印缓冲区内容并走纸 n 个纵向运动单位。
//
// ESC/POS: `ESC J n` (0x1B 0x4A n)
type FeedUnits byte

// Encode implements Command.
func (f FeedUnits) Encode() []byte { return []byte{ESC, 'J', byte(f)} }
