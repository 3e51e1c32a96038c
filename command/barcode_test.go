package command

import (
	"bytes"
	"errors"
	"testing"
)

func TestBarcodeValidation(t *testing.T) {
	// 合法的 UPC-A
	if _, err := NewBarcode(UpcA, []byte("12345678901")); err != nil {
		t.Fatalf("合法 UPC-A 被拒绝: %v", err)
	}

	// 含字母的 UPC-A 应被拒绝
	if _, err := NewBarcode(UpcA, []byte("1234567890A")); err == nil {
		t.Fatal("含字母的 UPC-A 未被拒绝")
	}

	// 长度越界
	if _, err := NewBarcode(Jan8, []byte("12")); err == nil {
		t.Fatal("过短的 JAN-8 未被拒绝")
	}

	// ITF 的奇数长度
	_, err := NewBarcode(Itf, []byte("123"))
	var be *BarcodeError
	if !errors.As(err, &be) {
		t.Fatalf("期望 BarcodeError，得到 %v", err)
	}
	if be.System != "ITF" {
		t.Fatalf("错误归属体系 %q，期望 ITF", be.System)
	}

	// CODE39 支持大写与符号
	if _, err := NewBarcode(Code39, []byte("AB-12./")); err != nil {
		t.Fatalf("合法 CODE39 被拒绝: %v", err)
	}
}

func TestBarcodeEncoding(t *testing.T) {
	cmd, err := NewBarcode(Code128, []byte("{A123"))
	if err != nil {
		t.Fatalf("构造失败: %v", err)
	}
	got := cmd.Encode()
	want := []byte{0x1D, 'k', 73, 5, '{', 'A', '1', '2', '3'}
	if !bytes.Equal(got, want) {
		t.Fatalf("编码 % X，期望 % X", got, want)
	}
}

func TestQrCodeValidation(t *testing.T) {
	if _, err := NewQrCode(nil); !errors.Is(err, ErrQrEmptyData) {
		t.Fatalf("空数据应返回 ErrQrEmptyData，得到 %v", err)
	}

	if _, err := NewQrCode(bytes.Repeat([]byte{'a'}, 7090)); err == nil {
		t.Fatal("超长数据未被拒绝")
	}

	qr, err := NewQrCode([]byte("test"))
	if err != nil {
		t.Fatalf("构造失败: %v", err)
	}
	if qr.Model != QrModel2 || qr.ModuleSize != 3 || qr.ErrorCorrection != QrEcL {
		t.Fatalf("默认参数不符: %+v", qr)
	}
}

// QR 码完整字节序列，与打印机手册逐字节对照。
func TestQrCodeEncoding(t *testing.T) {
	qr, err := NewQrCode([]byte("Hello"))
	if err != nil {
		t.Fatalf("构造失败: %v", err)
	}
	got := qr.Encode()
	want := []byte{
		0x1D, '(', 'k', 0x04, 0x00, '1', 'A', '2', 0x00, // 选择 Model 2
		0x1D, '(', 'k', 0x03, 0x00, '1', 'C', 0x03, // 模块大小 3
		0x1D, '(', 'k', 0x03, 0x00, '1', 'E', '0', // 纠错等级 L
		0x1D, '(', 'k', 0x08, 0x00, '1', 'P', '0', 'H', 'e', 'l', 'l', 'o', // 存入数据
		0x1D, '(', 'k', 0x03, 0x00, '1', 'Q', '0', // 打印
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("QR 编码 % X，期望 % X", got, want)
	}
}

func TestPdf417Validation(t *testing.T) {
	if _, err := Pdf417ManualColumns(0); err == nil {
		t.Fatal("列数 0 未被拒绝")
	}
	if _, err := Pdf417ManualColumns(31); err == nil {
		t.Fatal("列数 31 未被拒绝")
	}
	if c, err := Pdf417ManualColumns(15); err != nil || c != 15 {
		t.Fatalf("列数 15 校验失败: %v", err)
	}
	if _, err := Pdf417ManualRows(2); err == nil {
		t.Fatal("行数 2 未被拒绝")
	}
	if r, err := Pdf417ManualRows(90); err != nil || r != 90 {
		t.Fatalf("行数 90 校验失败: %v", err)
	}
}

func TestPdf417Encoding(t *testing.T) {
	pdf := NewPdf417([]byte("Hello"))
	got := pdf.Encode()
	if !bytes.Contains(got, []byte("Hello")) {
		t.Fatal("编码结果缺少数据段")
	}
	// 以列数设置开头
	if !bytes.Equal(got[:8], []byte{0x1D, '(', 'k', 3, 0, 48, 65, 0}) {
		t.Fatalf("PDF417 头 % X 不符", got[:8])
	}
}
