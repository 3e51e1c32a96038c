package command

import "errors"

// 状态查询指令。这些指令需要读取打印机的应答字节。

// StatusType 是 DLE EOT 的实时状态类别。
type StatusType byte

const (
	// StatusPrinter 打印机状态（在线、钱箱、走纸键）。
	StatusPrinter StatusType = 1
	// StatusOffline 离线原因（上盖、走纸、错误）。
	StatusOffline StatusType = 2
	// StatusError 错误状态（可恢复、切刀、不可恢复）。
	StatusError StatusType = 3
	// StatusPaperRoll 纸卷传感器状态。
	StatusPaperRoll StatusType = 4
)

// ErrEmptyStatus 打印机返回了空应答。
var ErrEmptyStatus = errors.New("打印机状态应答为空")

// TransmitStatus 实时状态查询，打印过程中也可发送。
//
// ESC/POS: `DLE EOT n` (0x10 0x04 n)
type TransmitStatus StatusType

// Encode implements Command.
func (t TransmitStatus) Encode() []byte { return []byte{DLE, EOT, byte(t)} }

// PrinterStatus 打印机基本状态。
type PrinterStatus struct {
	// DrawerOpen 钱箱接口第 3 脚电平。
	DrawerOpen bool
	// Online 打印机在线。
	Online bool
	// FeedButtonPressed 走纸键被按下。
	FeedButtonPressed bool
	// PaperPresent 纸张未用尽。
	PaperPresent bool
}

// OfflineStatus 离线原因。
type OfflineStatus struct {
	CoverOpen        bool
	PaperFeeding     bool
	RecoverableError bool
	CutterError      bool
}

// ErrorStatus 错误状态。
type ErrorStatus struct {
	RecoverableError   bool
	CutterError        bool
	UnrecoverableError bool
}

// PaperRollStatus 纸卷传感器状态。
type PaperRollStatus struct {
	PaperNearEnd bool
	PaperEnd     bool
}

// StatusResponse 汇总 TransmitStatus 的应答，按查询类别恰有一个
// 字段非空（与 dsl.Section 的变体风格一致）。
type StatusResponse struct {
	Printer   *PrinterStatus
	Offline   *OfflineStatus
	Error     *ErrorStatus
	PaperRoll *PaperRollStatus
}

// ParseResponse implements QueryCommand.
func (t TransmitStatus) ParseResponse(resp []byte) (StatusResponse, error) {
	if len(resp) == 0 {
		return StatusResponse{}, ErrEmptyStatus
	}
	b := resp[0]

	switch StatusType(t) {
	case StatusPrinter:
		return StatusResponse{Printer: &PrinterStatus{
			DrawerOpen:        b&0x04 != 0,
			Online:            b&0x08 == 0,
			FeedButtonPressed: b&0x20 != 0,
			PaperPresent:      b&0x60 != 0x60,
		}}, nil
	case StatusOffline:
		return StatusResponse{Offline: &OfflineStatus{
			CoverOpen:        b&0x04 != 0,
			PaperFeeding:     b&0x08 != 0,
			RecoverableError: b&0x20 != 0,
			CutterError:      b&0x40 != 0,
		}}, nil
	case StatusError:
		return StatusResponse{Error: &ErrorStatus{
			RecoverableError:   b&0x04 != 0,
			CutterError:        b&0x08 != 0,
			UnrecoverableError: b&0x20 != 0,
		}}, nil
	default:
		return StatusResponse{PaperRoll: &PaperRollStatus{
			PaperNearEnd: b&0x0C != 0,
			PaperEnd:     b&0x60 != 0,
		}}, nil
	}
}

// AsbFlags 选择 ASB（自动状态回传）上报的状态类别。
type AsbFlags struct {
	Drawer        bool
	OnlineOffline bool
	Error         bool
	PaperRoll     bool
}

// AllAsbFlags 启用全部类别。
func AllAsbFlags() AsbFlags {
	return AsbFlags{Drawer: true, OnlineOffline: true, Error: true, PaperRoll: true}
}

func (f AsbFlags) toByte() byte {
	var n byte
	if f.Drawer {
		n |= 0x01
	}
	if f.OnlineOffline {
		n |= 0x02
	}
	if f.Error {
		n |= 0x04
	}
	if f.PaperRoll {
		n |= 0x08
	}
	return n
}

// EnableAsb 开启/关闭自动状态回传；状态变化时打印机会主动上报。
//
// ESC/POS: `GS a n` (0x1D 0x61 n)
type EnableAsb AsbFlags

// Encode implements Command.
func (e EnableAsb) Encode() []byte { return []byte{GS, 'a', AsbFlags(e).toByte()} }
