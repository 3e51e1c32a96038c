// Package receipt 把解析后的票据 DSL 编译为 ESC/POS 字节流。
// 语句按出现顺序处理：line 经样式树渲染，其余命令直接编码为设备指令。
package receipt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ByLCY/vellum/binding"
	"github.com/ByLCY/vellum/command"
	"github.com/ByLCY/vellum/dsl"
	"github.com/ByLCY/vellum/style"
)

// BuildOptions 控制编译行为。
type BuildOptions struct {
	// SkipInitialize 置位后不在票据开头输出 ESC @。
	SkipInitialize bool
}

// Meta 汇总 meta 块中的元信息。
type Meta struct {
	Title string
	Width int
	Props map[string]string
}

// DefaultReceiptWidth 80mm 纸 Font A 下的每行字符数。
const DefaultReceiptWidth = 42

// Build 根据 DSL AST 与绑定数据生成完整的票据字节流。
func Build(doc *dsl.Document, data any, opts BuildOptions) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("文档为空")
	}

	var out []byte
	if !opts.SkipInitialize {
		out = append(out, command.Initialize{}.Encode()...)
	}

	for _, stmt := range doc.Statements {
		switch {
		case stmt.Meta != nil:
			// 元信息不产生输出
		case stmt.Line != nil:
			node := buildSpanNode(stmt.Line.Span, data)
			out = append(out, node.RenderLine()...)
		case stmt.Command != nil:
			encoded, err := encodeCommand(stmt.Command, data)
			if err != nil {
				return nil, err
			}
			out = append(out, encoded...)
		}
	}
	return out, nil
}

// CollectMeta 提取文档的元信息，未声明时使用默认纸宽。
func CollectMeta(doc *dsl.Document) Meta {
	meta := Meta{
		Width: DefaultReceiptWidth,
		Props: map[string]string{},
	}
	if doc == nil {
		return meta
	}
	for _, stmt := range doc.Statements {
		if stmt.Meta == nil || stmt.Meta.Block == nil {
			continue
		}
		for _, entry := range stmt.Meta.Block.Entries {
			key := strings.ToLower(entry.Key)
			meta.Props[key] = entry.Value.Text()
			switch key {
			case "title":
				meta.Title = entry.Value.Text()
			case "width":
				meta.Width = entry.Value.Int(meta.Width)
			}
		}
	}
	return meta
}

// buildSpanNode 把 DSL span 转换为样式树，文本段先做数据插值。
func buildSpanNode(span *dsl.Span, data any) *style.Node {
	if span == nil {
		return style.Group(style.StyleSet{})
	}
	children := make([]*style.Node, 0, len(span.Items))
	for _, item := range span.Items {
		switch {
		case item.Text != nil:
			children = append(children, style.Text(binding.Interpolate(string(*item.Text), data)))
		case item.Span != nil:
			children = append(children, buildSpanNode(item.Span, data))
		}
	}
	return style.Group(spanStyle(span.Styles), children...)
}

func spanStyle(names []string) style.StyleSet {
	var st style.StyleSet
	for _, name := range names {
		switch name {
		case "bold":
			st = st.WithBold(true)
		case "underline":
			if st.Underline < style.UnderlineSingle {
				st = st.WithUnderline(style.UnderlineSingle)
			}
		case "underline2":
			st = st.WithUnderline(style.UnderlineDouble)
		case "doublestrike":
			st = st.WithDoubleStrike(true)
		case "reverse":
			st = st.WithReverse(true)
		case "upsidedown":
			st = st.WithUpsideDown(true)
		case "rotated":
			st = st.WithRotated(true)
		}
	}
	return st
}

// encodeCommand 把单条设备指令编码为字节。不认识的命令视为错误。
func encodeCommand(cmd *dsl.Command, data any) ([]byte, error) {
	switch cmd.Name {
	case "align":
		return encodeAlign(cmd)
	case "feed":
		return encodeFeed(cmd)
	case "cut":
		return encodeCut(cmd)
	case "font":
		return encodeFont(cmd)
	case "textsize":
		return encodeTextSize(cmd)
	case "codepage":
		return encodeCodePage(cmd)
	case "barcode":
		return encodeBarcode(cmd, data)
	case "qrcode":
		return encodeQrCode(cmd, data)
	case "pdf417":
		return encodePdf417(cmd, data)
	default:
		return nil, fmt.Errorf("第 %d 行：不支持的命令 %s", cmd.Pos.Line, cmd.Name)
	}
}

func encodeAlign(cmd *dsl.Command) ([]byte, error) {
	if len(cmd.Args) != 1 {
		return nil, fmt.Errorf("align 需要一个参数（left/center/right）")
	}
	switch cmd.Args[0].Value {
	case "left":
		return command.SetJustification(command.JustifyLeft).Encode(), nil
	case "center":
		return command.SetJustification(command.JustifyCenter).Encode(), nil
	case "right":
		return command.SetJustification(command.JustifyRight).Encode(), nil
	default:
		return nil, fmt.Errorf("align 不支持 %s", cmd.Args[0].Value)
	}
}

func encodeFeed(cmd *dsl.Command) ([]byte, error) {
	if len(cmd.Args) != 1 {
		return nil, fmt.Errorf("feed 需要一个行数参数")
	}
	n, err := strconv.Atoi(cmd.Args[0].Value)
	if err != nil || n < 0 || n > 255 {
		return nil, fmt.Errorf("feed 行数 %s 无效", cmd.Args[0].Value)
	}
	return command.FeedLines(n).Encode(), nil
}

func encodeCut(cmd *dsl.Command) ([]byte, error) {
	mode := "full"
	if len(cmd.Args) > 0 {
		mode = cmd.Args[0].Value
	}
	feed := cmd.Block.Get("feed").Int(0)
	if feed < 0 || feed > 255 {
		return nil, fmt.Errorf("cut feed %d 无效", feed)
	}
	switch mode {
	case "full":
		if feed > 0 {
			return command.FeedAndFullCut(byte(feed)).Encode(), nil
		}
		return command.FullCut().Encode(), nil
	case "partial":
		if feed > 0 {
			return command.FeedAndPartialCut(byte(feed)).Encode(), nil
		}
		return command.PartialCut().Encode(), nil
	default:
		return nil, fmt.Errorf("cut 不支持 %s", mode)
	}
}

func encodeFont(cmd *dsl.Command) ([]byte, error) {
	if len(cmd.Args) != 1 {
		return nil, fmt.Errorf("font 需要一个参数（a/b）")
	}
	switch strings.ToLower(cmd.Args[0].Value) {
	case "a":
		return command.SelectFont(command.FontA).Encode(), nil
	case "b":
		return command.SelectFont(command.FontB).Encode(), nil
	default:
		return nil, fmt.Errorf("font 不支持 %s", cmd.Args[0].Value)
	}
}

func encodeTextSize(cmd *dsl.Command) ([]byte, error) {
	if len(cmd.Args) != 2 {
		return nil, fmt.Errorf("textsize 需要宽高两个倍率参数")
	}
	w, errW := strconv.Atoi(cmd.Args[0].Value)
	h, errH := strconv.Atoi(cmd.Args[1].Value)
	if errW != nil || errH != nil || w < 1 || w > 8 || h < 1 || h > 8 {
		return nil, fmt.Errorf("textsize 倍率须在 1-8 之间")
	}
	size := command.CharacterSize{
		Width:  command.ScaleFactor(w - 1),
		Height: command.ScaleFactor(h - 1),
	}
	return command.SetCharacterSize(size).Encode(), nil
}

var codePageNames = map[string]command.CodePage{
	"cp437":       command.CP437USAStandardEurope,
	"katakana":    command.Katakana,
	"cp850":       command.CP850Multilingual,
	"cp860":       command.CP860Portuguese,
	"cp863":       command.CP863CanadianFrench,
	"cp865":       command.CP865Nordic,
	"windows1252": command.Windows1252LatinI,
	"cp866":       command.CP866Cyrillic2,
	"cp852":       command.CP852Latin2,
	"cp858":       command.CP858Euro,
	"windows1251": command.Windows1251Cyrillic,
	"windows1253": command.Windows1253Greek,
	"windows1254": command.Windows1254Turkish,
	"windows1255": command.Windows1255HebrewNew,
	"windows1256": command.Windows1256Arabic,
}

func encodeCodePage(cmd *dsl.Command) ([]byte, error) {
	if len(cmd.Args) != 1 {
		return nil, fmt.Errorf("codepage 需要一个参数")
	}
	raw := cmd.Args[0].Value
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 0 || n > 255 {
			return nil, fmt.Errorf("codepage 编号 %d 无效", n)
		}
		return command.SelectCodePage(n).Encode(), nil
	}
	page, ok := codePageNames[strings.ToLower(raw)]
	if !ok {
		return nil, fmt.Errorf("codepage 不支持 %s", raw)
	}
	return command.SelectCodePage(page).Encode(), nil
}

var barcodeSystems = map[string]command.BarcodeSystem{
	"upca":    command.UpcA,
	"upce":    command.UpcE,
	"ean13":   command.Jan13,
	"jan13":   command.Jan13,
	"ean8":    command.Jan8,
	"jan8":    command.Jan8,
	"code39":  command.Code39,
	"itf":     command.Itf,
	"codabar": command.Codabar,
	"code93":  command.Code93,
	"code128": command.Code128,
}

func encodeBarcode(cmd *dsl.Command, data any) ([]byte, error) {
	if len(cmd.Args) != 2 {
		return nil, fmt.Errorf("barcode 需要符号体系与数据两个参数")
	}
	system, ok := barcodeSystems[strings.ToLower(cmd.Args[0].Value)]
	if !ok {
		return nil, fmt.Errorf("barcode 不支持符号体系 %s", cmd.Args[0].Value)
	}
	content := binding.Interpolate(cmd.Args[1].Value, data)

	var out []byte
	if h := cmd.Block.Get("height").Int(0); h > 0 {
		if h > 255 {
			return nil, fmt.Errorf("barcode 高度 %d 无效", h)
		}
		out = append(out, command.SetBarcodeHeight(h).Encode()...)
	}
	if w := cmd.Block.Get("width").Int(0); w > 0 {
		if w < 2 || w > 6 {
			return nil, fmt.Errorf("barcode 模块宽度须在 2-6 之间")
		}
		out = append(out, command.SetBarcodeWidth(w).Encode()...)
	}
	if hri := cmd.Block.Get("hri"); hri != nil {
		pos, err := hriPosition(hri.Text())
		if err != nil {
			return nil, err
		}
		out = append(out, command.SetHriPosition(pos).Encode()...)
	}

	barcode, err := command.NewBarcode(system, []byte(content))
	if err != nil {
		return nil, err
	}
	return append(out, barcode.Encode()...), nil
}

func hriPosition(v string) (command.HriPosition, error) {
	switch strings.ToLower(v) {
	case "none":
		return command.HriNone, nil
	case "above":
		return command.HriAbove, nil
	case "below":
		return command.HriBelow, nil
	case "both":
		return command.HriBoth, nil
	default:
		return 0, fmt.Errorf("hri 位置 %s 无效", v)
	}
}

func encodeQrCode(cmd *dsl.Command, data any) ([]byte, error) {
	if len(cmd.Args) != 1 {
		return nil, fmt.Errorf("qrcode 需要一个数据参数")
	}
	content := binding.Interpolate(cmd.Args[0].Value, data)

	qr, err := command.NewQrCode([]byte(content))
	if err != nil {
		return nil, err
	}
	if size := cmd.Block.Get("size").Int(0); size > 0 {
		qr = qr.WithModuleSize(byte(size))
	}
	if model := cmd.Block.Get("model").Int(0); model > 0 {
		switch model {
		case 1:
			qr = qr.WithModel(command.QrModel1)
		case 2:
			qr = qr.WithModel(command.QrModel2)
		default:
			return nil, fmt.Errorf("qrcode model %d 无效", model)
		}
	}
	if ec := cmd.Block.Get("ec"); ec != nil {
		level, err := qrErrorCorrection(ec.Text())
		if err != nil {
			return nil, err
		}
		qr = qr.WithErrorCorrection(level)
	}
	return qr.Encode(), nil
}

func qrErrorCorrection(v string) (command.QrErrorCorrection, error) {
	switch strings.ToUpper(v) {
	case "L":
		return command.QrEcL, nil
	case "M":
		return command.QrEcM, nil
	case "Q":
		return command.QrEcQ, nil
	case "H":
		return command.QrEcH, nil
	default:
		return 0, fmt.Errorf("qrcode 纠错等级 %s 无效", v)
	}
}

func encodePdf417(cmd *dsl.Command, data any) ([]byte, error) {
	if len(cmd.Args) != 1 {
		return nil, fmt.Errorf("pdf417 需要一个数据参数")
	}
	content := binding.Interpolate(cmd.Args[0].Value, data)

	p := command.NewPdf417([]byte(content))
	if cols := cmd.Block.Get("columns").Int(0); cols > 0 {
		c, err := command.Pdf417ManualColumns(byte(cols))
		if err != nil {
			return nil, err
		}
		p.Columns = c
	}
	if rows := cmd.Block.Get("rows").Int(0); rows > 0 {
		r, err := command.Pdf417ManualRows(byte(rows))
		if err != nil {
			return nil, err
		}
		p.Rows = r
	}
	return p.Encode(), nil
}
