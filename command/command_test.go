package command

import (
	"bytes"
	"testing"
)

// 校验各指令的字节布局与打印机手册一致。

func TestEncodeBytes(t *testing.T) {
	cases := []struct {
		name string
		cmd  Command
		want []byte
	}{
		{"initialize", Initialize{}, []byte{0x1B, '@'}},
		{"line feed", LineFeed{}, []byte{0x0A}},
		{"form feed", FormFeed{}, []byte{0x0C}},
		{"horizontal tab", HorizontalTab{}, []byte{0x09}},
		{"text passthrough", Text("Hi"), []byte{'H', 'i'}},

		{"emphasized on", SetEmphasized(true), []byte{0x1B, 'E', 1}},
		{"emphasized off", SetEmphasized(false), []byte{0x1B, 'E', 0}},
		{"underline one dot", SetUnderline(UnderlineOneDot), []byte{0x1B, '-', 1}},
		{"underline two dot", SetUnderline(UnderlineTwoDot), []byte{0x1B, '-', 2}},
		{"double strike on", SetDoubleStrike(true), []byte{0x1B, 'G', 1}},
		{"font B", SelectFont(FontB), []byte{0x1B, 'M', 1}},
		{"justify center", SetJustification(JustifyCenter), []byte{0x1B, 'a', 1}},
		{"upside down on", SetUpsideDown(true), []byte{0x1B, '{', 1}},
		{"rotation on", SetRotation(RotationClockwise90), []byte{0x1B, 'V', 1}},
		{"reverse on", SetReverse(true), []byte{0x1D, 'B', 1}},
		{"smoothing on", SetSmoothing(true), []byte{0x1D, 'b', 1}},

		{"size standard", SetCharacterSize(StandardSize()), []byte{0x1D, '!', 0x00}},
		{"size double", SetCharacterSize(DoubleSize()), []byte{0x1D, '!', 0x11}},
		{"size max", SetCharacterSize(CharacterSize{Scale8x, Scale8x}), []byte{0x1D, '!', 0x77}},

		{"cut full", FullCut(), []byte{0x1D, 'V', 0}},
		{"cut partial", PartialCut(), []byte{0x1D, 'V', 1}},
		{"feed and partial cut", FeedAndPartialCut(5), []byte{0x1D, 'V', 66, 5}},
		{"feed lines", FeedLines(3), []byte{0x1B, 'd', 3}},

		{"default line spacing", SetDefaultLineSpacing{}, []byte{0x1B, '2'}},
		{"line spacing", SetLineSpacing(60), []byte{0x1B, '3', 60}},
		{"right spacing", SetRightSpacing(5), []byte{0x1B, ' ', 5}},
		{"tabs", SetHorizontalTabs{8, 16, 24}, []byte{0x1B, 'D', 8, 16, 24, 0}},
		{"tabs clear", ClearHorizontalTabs(), []byte{0x1B, 'D', 0}},
		{"absolute position", SetAbsolutePosition(256), []byte{0x1B, '$', 0, 1}},
		{"relative position negative", SetRelativePosition(-100), []byte{0x1B, '\\', 0x9C, 0xFF}},
		{"left margin", SetLeftMargin(50), []byte{0x1D, 'L', 50, 0}},
		{"printing width", SetPrintingWidth(512), []byte{0x1D, 'W', 0, 2}},

		{"codepage cp437", SelectCodePage(CP437USAStandardEurope), []byte{0x1B, 't', 0}},
		{"codepage win1251", SelectCodePage(Windows1251Cyrillic), []byte{0x1B, 't', 28}},
		{"charset germany", SelectCharacterSet(CharsetGermany), []byte{0x1B, 'R', 2}},

		{"barcode height", SetBarcodeHeight(100), []byte{0x1D, 'h', 100}},
		{"barcode height clamps to 1", SetBarcodeHeight(0), []byte{0x1D, 'h', 1}},
		{"barcode width wide", SetBarcodeWidth(BarcodeWide), []byte{0x1D, 'w', 5}},
		{"hri below", SetHriPosition(HriBelow), []byte{0x1D, 'H', 2}},

		{"enter page mode", EnterPageMode{}, []byte{0x1B, 'L'}},
		{"exit page mode", ExitPageMode{}, []byte{0x1B, 'S'}},
		{"print direction", SetPrintDirection(BottomToTop), []byte{0x1B, 'T', 1}},
		{"vertical position", SetVerticalPosition(256), []byte{0x1D, '$', 0, 1}},
		{"horizontal position", SetHorizontalPosition(256), []byte{0x1B, '$', 0, 1}},

		{"macro toggle", ToggleMacroDefinition{}, []byte{0x1D, ':'}},
		{"macro once", RunMacroOnce(), []byte{0x1D, '^', 1, 0, 0}},
		{"macro repeat", RepeatMacro(5, 10), []byte{0x1D, '^', 5, 10, 0}},
		{"macro clamps times", ExecuteMacro{}, []byte{0x1D, '^', 1, 0, 0}},

		{"transmit status", TransmitStatus(StatusPrinter), []byte{0x10, 0x04, 1}},
		{"enable asb all", EnableAsb(AllAsbFlags()), []byte{0x1D, 'a', 0x0F}},
	}

	for _, tc := range cases {
		if got := tc.cmd.Encode(); !bytes.Equal(got, tc.want) {
			t.Errorf("%s: 编码结果 % X，期望 % X", tc.name, got, tc.want)
		}
	}
}

func TestPrintAreaEncoding(t *testing.T) {
	cmd := SetPrintArea(PrintArea{X: 0, Y: 0, Width: 512, Height: 400})
	got := cmd.Encode()
	want := []byte{0x1B, 'W', 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x90, 0x01}
	if !bytes.Equal(got, want) {
		t.Fatalf("打印区域编码 % X，期望 % X", got, want)
	}
}

func TestRasterImageHeader(t *testing.T) {
	cmd := NewRasterImage(64, 100, bytes.Repeat([]byte{0xFF}, 6400))
	got := cmd.Encode()
	want := []byte{0x1D, 'v', '0', 0, 64, 0, 100, 0}
	if !bytes.Equal(got[:8], want) {
		t.Fatalf("光栅头 % X，期望 % X", got[:8], want)
	}
	if len(got) != 8+6400 {
		t.Fatalf("总长度 %d，期望 %d", len(got), 8+6400)
	}
}

func TestBitImageModeHeader(t *testing.T) {
	cmd := SelectBitImageMode{Mode: DoubleDensity24, Width: 100, Data: bytes.Repeat([]byte{0xFF}, 100)}
	got := cmd.Encode()
	if !bytes.Equal(got[:5], []byte{0x1B, '*', 33, 100, 0}) {
		t.Fatalf("位图头 % X 不符", got[:5])
	}
}
