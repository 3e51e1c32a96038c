package command

import (
	"errors"
	"fmt"
)

// 二维码指令（QR Code 与 PDF417），均为 GS ( k 复合指令序列。

// QrModel is the QR Code model.
type QrModel byte

const (
	// QrModel1 is the original QR Code.
	QrModel1 QrModel = 49
	// QrModel2 is the enhanced QR Code (recommended).
	QrModel2 QrModel = 50
)

// QrErrorCorrection is the QR Code error correction level.
type QrErrorCorrection byte

const (
	// QrEcL recovers approximately 7%.
	QrEcL QrErrorCorrection = 48
	// QrEcM recovers approximately 15%.
	QrEcM QrErrorCorrection = 49
	// QrEcQ recovers approximately 25%.
	QrEcQ QrErrorCorrection = 50
	// QrEcH recovers approximately 30%.
	QrEcH QrErrorCorrection = 51
)

// QR 数据上限，由符号规范决定。
const qrMaxDataLen = 7089

// ErrQrEmptyData QR 数据为空。
var ErrQrEmptyData = errors.New("QR 码数据不能为空")

// QrDataTooLongError QR 数据超长。
type QrDataTooLongError int

func (e QrDataTooLongError) Error() string {
	return fmt.Sprintf("QR 码数据过长: %d 字节（上限 %d）", int(e), qrMaxDataLen)
}

// PrintQrCode prints a QR Code. It is a compound command covering
// model selection, module size, error correction, data storage and
// the final print request (GS ( k functions 165/167/169/180/181).
type PrintQrCode struct {
	Model           QrModel
	ModuleSize      byte // 1-8 dots per module
	ErrorCorrection QrErrorCorrection
	Data            []byte
}

// NewQrCode validates data and builds a QR command with defaults
// (Model 2, module size 3, level L).
func NewQrCode(data []byte) (PrintQrCode, error) {
	if len(data) == 0 {
		return PrintQrCode{}, ErrQrEmptyData
	}
	if len(data) > qrMaxDataLen {
		return PrintQrCode{}, QrDataTooLongError(len(data))
	}
	return PrintQrCode{
		Model:           QrModel2,
		ModuleSize:      3,
		ErrorCorrection: QrEcL,
		Data:            data,
	}, nil
}

// WithModel sets the QR model.
func (p PrintQrCode) WithModel(m QrModel) PrintQrCode {
	p.Model = m
	return p
}

// WithModuleSize sets dots per module (1-8, clamped).
func (p PrintQrCode) WithModuleSize(n byte) PrintQrCode {
	if n < 1 {
		n = 1
	}
	if n > 8 {
		n = 8
	}
	p.ModuleSize = n
	return p
}

// WithErrorCorrection sets the error correction level.
func (p PrintQrCode) WithErrorCorrection(ec QrErrorCorrection) PrintQrCode {
	p.ErrorCorrection = ec
	return p
}

// Encode implements Command.
func (p PrintQrCode) Encode() []byte {
	out := make([]byte, 0, 64+len(p.Data))

	// Function 165: select model
	out = append(out, GS, '(', 'k', 4, 0, 49, 65, byte(p.Model), 0)

	// Function 167: module size
	out = append(out, GS, '(', 'k', 3, 0, 49, 67, p.ModuleSize)

	// Function 169: error correction
	out = append(out, GS, '(', 'k', 3, 0, 49, 69, byte(p.ErrorCorrection))

	// Function 180: store data
	pl, ph := lowHigh(uint16(len(p.Data) + 3))
	out = append(out, GS, '(', 'k', pl, ph, 49, 80, 48)
	out = append(out, p.Data...)

	// Function 181: print symbol
	return append(out, GS, '(', 'k', 3, 0, 49, 81, 48)
}

// Pdf417Error PDF417 参数越界。
type Pdf417Error struct {
	Param string
	Value byte
	Min   byte
	Max   byte
}

func (e *Pdf417Error) Error() string {
	return fmt.Sprintf("PDF417 %s 取值 %d 超出范围 %d-%d", e.Param, e.Value, e.Min, e.Max)
}

// Pdf417Columns is the column count; 0 means automatic.
type Pdf417Columns byte

// Pdf417ManualColumns validates a manual column count (1-30).
func Pdf417ManualColumns(n byte) (Pdf417Columns, error) {
	if n < 1 || n > 30 {
		return 0, &Pdf417Error{Param: "列数", Value: n, Min: 1, Max: 30}
	}
	return Pdf417Columns(n), nil
}

// Pdf417Rows is the row count; 0 means automatic.
type Pdf417Rows byte

// Pdf417ManualRows validates a manual row count (3-90).
func Pdf417ManualRows(n byte) (Pdf417Rows, error) {
	if n < 3 || n > 90 {
		return 0, &Pdf417Error{Param: "行数", Value: n, Min: 3, Max: 90}
	}
	return Pdf417Rows(n), nil
}

// PrintPdf417 prints a PDF417 barcode (GS ( k functions 65-69/80/81).
type PrintPdf417 struct {
	Columns         Pdf417Columns
	Rows            Pdf417Rows
	ModuleWidth     byte // 2-8 dots
	ModuleHeight    byte // 2-8 dots
	ErrorCorrection byte // 48-56, i.e. level 0-8
	Data            []byte
}

// NewPdf417 builds a PDF417 command with defaults (auto layout,
// module 3×3, error correction level 1).
func NewPdf417(data []byte) PrintPdf417 {
	return PrintPdf417{
		ModuleWidth:     3,
		ModuleHeight:    3,
		ErrorCorrection: 49,
		Data:            data,
	}
}

// Encode implements Command.
func (p PrintPdf417) Encode() []byte {
	out := make([]byte, 0, 64+len(p.Data))

	// Function 65: columns
	out = append(out, GS, '(', 'k', 3, 0, 48, 65, byte(p.Columns))

	// Function 66: rows
	out = append(out, GS, '(', 'k', 3, 0, 48, 66, byte(p.Rows))

	// Function 67: module width
	out = append(out, GS, '(', 'k', 3, 0, 48, 67, p.ModuleWidth)

	// Function 68: module height
	out = append(out, GS, '(', 'k', 3, 0, 48, 68, p.ModuleHeight)

	// Function 69: error correction
	out = append(out, GS, '(', 'k', 4, 0, 48, 69, 48, p.ErrorCorrection)

	// Function 80: store data
	pl, ph := lowHigh(uint16(len(p.Data) + 3))
	out = append(out, GS, '(', 'k', pl, ph, 48, 80, 48)
	out = append(out, p.Data...)

	// Function 81: print symbol
	return append(out, GS, '(', 'k', 3, 0, 48, 81, 48)
}
