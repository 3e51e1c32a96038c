package printer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ByLCY/vellum/command"
	"github.com/ByLCY/vellum/page"
	"github.com/ByLCY/vellum/style"
)

// capture 执行 fn 并返回写入打印机的全部字节。
func capture(t *testing.T, fn func(p *Printer) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	p := New(&buf)
	if err := fn(p); err != nil {
		t.Fatalf("打印操作失败: %v", err)
	}
	if err := p.Flush(); err != nil {
		t.Fatalf("刷新失败: %v", err)
	}
	return buf.Bytes()
}

func TestSendCommand(t *testing.T) {
	got := capture(t, func(p *Printer) error {
		return p.Send(command.Initialize{})
	})
	if !bytes.Equal(got, []byte{0x1B, '@'}) {
		t.Fatalf("输出 % X，期望 ESC @", got)
	}
}

func TestSendRaw(t *testing.T) {
	got := capture(t, func(p *Printer) error {
		return p.SendRaw([]byte{0x1B, '@'})
	})
	if !bytes.Equal(got, []byte{0x1B, '@'}) {
		t.Fatalf("输出 % X 不符", got)
	}
}

func TestPrintStyledText(t *testing.T) {
	got := capture(t, func(p *Printer) error {
		return p.Print(style.Text("Hello").Bold())
	})
	want := []byte{0x1B, 'E', 1, 'H', 'e', 'l', 'l', 'o', 0x1B, 'E', 0}
	if !bytes.Equal(got, want) {
		t.Fatalf("输出 % X，期望 % X", got, want)
	}
}

func TestPrintlnAppendsLF(t *testing.T) {
	got := capture(t, func(p *Printer) error {
		return p.PrintText("Hello")
	})
	if !bytes.Equal(got, []byte("Hello\x0A")) {
		t.Fatalf("输出 % X 不符", got)
	}
}

func TestPrintPage(t *testing.T) {
	got := capture(t, func(p *Printer) error {
		return p.PrintPage(page.NewBuilder().Text("Test"))
	})
	if got[0] != 0x1B || got[1] != 'L' {
		t.Fatalf("页模式应以 ESC L 开头: % X", got)
	}
	if got[len(got)-1] != 0x0C {
		t.Fatalf("页模式应以 FF 结尾: % X", got)
	}
}

// 对照完整小票的逐字节输出。
func TestCompleteReceipt(t *testing.T) {
	got := capture(t, func(p *Printer) error {
		if err := p.Initialize(); err != nil {
			return err
		}
		if err := p.Println(style.Text("RECEIPT").Bold()); err != nil {
			return err
		}
		if err := p.PrintText("Item 1    $10.00"); err != nil {
			return err
		}
		if err := p.Println(style.Text("Total").Bold().Append(style.Text(" $10.00").Bold())); err != nil {
			return err
		}
		if err := p.Send(command.FeedLines(3)); err != nil {
			return err
		}
		return p.Send(command.PartialCut())
	})

	var want []byte
	want = append(want, 0x1B, '@')
	want = append(want, 0x1B, 'E', 1)
	want = append(want, "RECEIPT"...)
	want = append(want, 0x1B, 'E', 0, 0x0A)
	want = append(want, "Item 1    $10.00"...)
	want = append(want, 0x0A)
	want = append(want, 0x1B, 'E', 1)
	want = append(want, "Total"...)
	want = append(want, 0x1B, 'E', 0)
	want = append(want, 0x1B, 'E', 1)
	want = append(want, " $10.00"...)
	want = append(want, 0x1B, 'E', 0, 0x0A)
	want = append(want, 0x1B, 'd', 3)
	want = append(want, 0x1D, 'V', 1)

	if !bytes.Equal(got, want) {
		t.Fatalf("小票输出不符\n得到 % X\n期望 % X", got, want)
	}
}

func TestQueryWithoutReader(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)
	if _, err := p.Query(command.TransmitStatus(command.StatusPrinter)); !errors.Is(err, ErrNoReader) {
		t.Fatalf("期望 ErrNoReader，得到 %v", err)
	}
}

func TestQueryParsesResponse(t *testing.T) {
	var buf bytes.Buffer
	reader := bytes.NewReader([]byte{0x00})
	p := NewWithReader(&buf, reader)

	resp, err := p.Query(command.TransmitStatus(command.StatusPrinter))
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if resp.Printer == nil || !resp.Printer.Online {
		t.Fatalf("应答解析错误: %+v", resp)
	}
	// 查询指令本身已被写出
	if !bytes.Equal(buf.Bytes(), []byte{0x10, 0x04, 1}) {
		t.Fatalf("查询写出 % X，期望 DLE EOT 1", buf.Bytes())
	}
}

func TestQueryEmptyResponse(t *testing.T) {
	var buf bytes.Buffer
	p := NewWithReader(&buf, bytes.NewReader(nil))
	if _, err := p.Query(command.TransmitStatus(command.StatusPrinter)); !errors.Is(err, ErrNoResponse) {
		t.Fatalf("期望 ErrNoResponse，得到 %v", err)
	}
}
