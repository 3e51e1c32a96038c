package command

import (
	"errors"
	"testing"
)

func TestStatusParse(t *testing.T) {
	// 空应答
	if _, err := TransmitStatus(StatusPrinter).ParseResponse(nil); !errors.Is(err, ErrEmptyStatus) {
		t.Fatalf("空应答应返回 ErrEmptyStatus，得到 %v", err)
	}

	// 在线、钱箱关闭
	resp, err := TransmitStatus(StatusPrinter).ParseResponse([]byte{0x00})
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if resp.Printer == nil {
		t.Fatal("应答变体不是 Printer")
	}
	if resp.Printer.DrawerOpen || !resp.Printer.Online {
		t.Fatalf("状态位解析错误: %+v", resp.Printer)
	}

	// 钱箱打开、离线
	resp, _ = TransmitStatus(StatusPrinter).ParseResponse([]byte{0x0C})
	if !resp.Printer.DrawerOpen || resp.Printer.Online {
		t.Fatalf("状态位解析错误: %+v", resp.Printer)
	}

	// 离线原因
	resp, _ = TransmitStatus(StatusOffline).ParseResponse([]byte{0x44})
	if resp.Offline == nil || !resp.Offline.CoverOpen || !resp.Offline.CutterError {
		t.Fatalf("离线状态解析错误: %+v", resp.Offline)
	}

	// 纸卷状态
	resp, _ = TransmitStatus(StatusPaperRoll).ParseResponse([]byte{0x60})
	if resp.PaperRoll == nil || !resp.PaperRoll.PaperEnd {
		t.Fatalf("纸卷状态解析错误: %+v", resp.PaperRoll)
	}
}

func TestAsbFlagByte(t *testing.T) {
	if got := (AsbFlags{}).toByte(); got != 0 {
		t.Fatalf("空标志应为 0，得到 %#x", got)
	}
	if got := AllAsbFlags().toByte(); got != 0x0F {
		t.Fatalf("全标志应为 0x0F，得到 %#x", got)
	}
	f := AsbFlags{Drawer: true, Error: true}
	if got := f.toByte(); got != 0x05 {
		t.Fatalf("组合标志应为 0x05，得到 %#x", got)
	}
}
