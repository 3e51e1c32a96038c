package command

import "fmt"

// 一维条码指令。条码参数（高度、宽度、HRI）必须在 PrintBarcode 之前发送。

// SetBarcodeHeight 设置条码高度（点数），0 会被钳制为 1。出厂默认 162。
//
// ESC/POS: `GS h n` (0x1D 0x68 n)
type SetBarcodeHeight byte

// DefaultBarcodeHeight 是打印机的出厂默认高度。
const DefaultBarcodeHeight SetBarcodeHeight = 162

// Encode implements Command.
func (s SetBarcodeHeight) Encode() []byte {
	n := byte(s)
	if n < 1 {
		n = 1
	}
	return []byte{GS, 'h', n}
}

// BarcodeWidth 是条码模块宽度。
type BarcodeWidth byte

const (
	// BarcodeThin 最细（0.282mm）。
	BarcodeThin BarcodeWidth = 2
	// BarcodeNormal 默认宽度（0.423mm）。
	BarcodeNormal BarcodeWidth = 3
	// BarcodeMedium 中等宽度（0.564mm）。
	BarcodeMedium BarcodeWidth = 4
	// BarcodeWide 较宽（0.706mm）。
	BarcodeWide BarcodeWidth = 5
	// BarcodeExtraWide 最宽（0.847mm）。
	BarcodeExtraWide BarcodeWidth = 6
)

// SetBarcodeWidth 设置条码模块宽度。
//
// ESC/POS: `GS w n` (0x1D 0x77 n)
type SetBarcodeWidth BarcodeWidth

// Encode implements Command.
func (s SetBarcodeWidth) Encode() []byte { return []byte{GS, 'w', byte(s)} }

// HriPosition 是 HRI（人眼可读字符）的打印位置。
type HriPosition byte

const (
	// HriNone 不打印 HRI。
	HriNone HriPosition = 0
	// HriAbove 在条码上方打印。
	HriAbove HriPosition = 1
	// HriBelow 在条码下方打印。
	HriBelow HriPosition = 2
	// HriBoth 上下均打印。
	HriBoth HriPosition = 3
)

// SetHriPosition 设置 HRI 字符位置。
//
// ESC/POS: `GS H n` (0x1D 0x48 n)
type SetHriPosition HriPosition

// Encode implements Command.
func (s SetHriPosition) Encode() []byte { return []byte{GS, 'H', byte(s)} }

// SetHriFont 设置 HRI 字体（FontA/FontB）。
//
// ESC/POS: `GS f n` (0x1D 0x66 n)
type SetHriFont Font

// Encode implements Command.
func (s SetHriFont) Encode() []byte { return []byte{GS, 'f', byte(s)} }

// BarcodeSystem 是条码符号体系（GS k 的 m 取值，功能 B 区间）。
type BarcodeSystem byte

const (
	// UpcA 北美零售，11-12 位数字。
	UpcA BarcodeSystem = 65
	// UpcE 压缩版 UPC-A，11-12 位数字。
	UpcE BarcodeSystem = 66
	// Jan13 即 EAN-13，12-13 位数字。
	Jan13 BarcodeSystem = 67
	// Jan8 即 EAN-8，7-8 位数字。
	Jan8 BarcodeSystem = 68
	// Code39 字母数字，变长。
	Code39 BarcodeSystem = 69
	// Itf 交叉二五码，仅数字且长度必须为偶数。
	Itf BarcodeSystem = 70
	// Codabar 数字加部分符号，医疗/图书领域常用。
	Codabar BarcodeSystem = 71
	// Code93 全 ASCII，高密度。
	Code93 BarcodeSystem = 72
	// Code128 全 ASCII，极高密度。
	Code128 BarcodeSystem = 73
)

// BarcodeError 描述条码数据校验失败的原因。
type BarcodeError struct {
	// System 符号体系名称。
	System string
	// Reason 具体原因描述。
	Reason string
}

func (e *BarcodeError) Error() string {
	return fmt.Sprintf("%s 条码数据无效: %s", e.System, e.Reason)
}

// PrintBarcode 打印一维条码。通过 NewBarcode 构造以获得数据校验。
//
// ESC/POS: `GS k m n d1...dn` (0x1D 0x6B m n ...)
type PrintBarcode struct {
	System BarcodeSystem
	Data   []byte
}

// NewBarcode 校验数据后构造条码指令。
func NewBarcode(system BarcodeSystem, data []byte) (PrintBarcode, error) {
	if err := validateBarcode(system, data); err != nil {
		return PrintBarcode{}, err
	}
	return PrintBarcode{System: system, Data: data}, nil
}

// Encode implements Command.
func (p PrintBarcode) Encode() []byte {
	out := make([]byte, 0, len(p.Data)+4)
	out = append(out, GS, 'k', byte(p.System), byte(len(p.Data)))
	return append(out, p.Data...)
}

func validateBarcode(system BarcodeSystem, data []byte) error {
	var (
		minLen, maxLen int
		name           string
	)
	switch system {
	case UpcA:
		minLen, maxLen, name = 11, 12, "UPC-A"
	case UpcE:
		minLen, maxLen, name = 11, 12, "UPC-E"
	case Jan13:
		minLen, maxLen, name = 12, 13, "JAN-13"
	case Jan8:
		minLen, maxLen, name = 7, 8, "JAN-8"
	case Code39:
		minLen, maxLen, name = 1, 255, "CODE39"
	case Itf:
		minLen, maxLen, name = 2, 255, "ITF"
	case Codabar:
		minLen, maxLen, name = 1, 255, "CODABAR"
	case Code93:
		minLen, maxLen, name = 1, 255, "CODE93"
	case Code128:
		minLen, maxLen, name = 2, 255, "CODE128"
	default:
		return &BarcodeError{System: "unknown", Reason: fmt.Sprintf("未知符号体系 %d", system)}
	}

	if len(data) < minLen || len(data) > maxLen {
		return &BarcodeError{
			System: name,
			Reason: fmt.Sprintf("长度 %d 超出范围 %d-%d", len(data), minLen, maxLen),
		}
	}

	// ITF 要求偶数位
	if system == Itf && len(data)%2 != 0 {
		return &BarcodeError{System: name, Reason: fmt.Sprintf("长度 %d 不是偶数", len(data))}
	}

	for i, b := range data {
		if !validBarcodeByte(system, b) {
			return &BarcodeError{
				System: name,
				Reason: fmt.Sprintf("第 %d 个字符 %q 不合法", i, b),
			}
		}
	}
	return nil
}

func validBarcodeByte(system BarcodeSystem, b byte) bool {
	digit := b >= '0' && b <= '9'
	switch system {
	case UpcA, UpcE, Jan13, Jan8, Itf:
		return digit
	case Code39:
		if digit || (b >= 'A' && b <= 'Z') {
			return true
		}
		switch b {
		case ' ', '$', '%', '*', '+', '-', '.', '/':
			return true
		}
		return false
	case Codabar:
		if digit || (b >= 'A' && b <= 'D') {
			return true
		}
		switch b {
		case '$', '+', '-', '.', '/', ':':
			return true
		}
		return false
	default: // Code93, Code128
		return b <= 127
	}
}
