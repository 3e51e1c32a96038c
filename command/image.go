package command

// 位图打印指令。

// BitImageMode 是 ESC * 的密度模式。
type BitImageMode byte

const (
	// SingleDensity8 8 点单密度（纵 60dpi / 横 90dpi）。
	SingleDensity8 BitImageMode = 0
	// DoubleDensity8 8 点双密度（纵 60dpi / 横 180dpi）。
	DoubleDensity8 BitImageMode = 1
	// SingleDensity24 24 点单密度（纵 180dpi / 横 90dpi）。
	SingleDensity24 BitImageMode = 32
	// DoubleDensity24 24 点双密度（纵横均 180dpi）。
	DoubleDensity24 BitImageMode = 33
)

// SelectBitImageMode 选择位图模式并打印一条图像带。
//
// ESC/POS: `ESC * m nL nH d1...dk`
type SelectBitImageMode struct {
	Mode BitImageMode
	// Width 每列的数据字节数。
	Width uint16
	Data  []byte
}

// Encode implements Command.
func (s SelectBitImageMode) Encode() []byte {
	nl, nh := lowHigh(s.Width)
	out := make([]byte, 0, len(s.Data)+5)
	out = append(out, ESC, '*', byte(s.Mode), nl, nh)
	return append(out, s.Data...)
}

// RasterImageMode 是光栅位图的缩放模式。
type RasterImageMode byte

const (
	// RasterNormal 原始大小（180dpi）。
	RasterNormal RasterImageMode = 0
	// RasterDoubleWidth 横向放大一倍。
	RasterDoubleWidth RasterImageMode = 1
	// RasterDoubleHeight 纵向放大一倍。
	RasterDoubleHeight RasterImageMode = 2
	// RasterQuadruple 纵横各放大一倍。
	RasterQuadruple RasterImageMode = 3
)

// PrintRasterImage 打印光栅位图，每字节 8 个像素、高位在前。
//
// ESC/POS: `GS v 0 m xL xH yL yH d1...dk`
type PrintRasterImage struct {
	Mode RasterImageMode
	// WidthBytes 横向字节数（8 像素/字节）。
	WidthBytes uint16
	// HeightDots 纵向点数。
	HeightDots uint16
	Data       []byte
}

// NewRasterImage 以原始大小构造光栅位图指令。
func NewRasterImage(widthBytes, heightDots uint16, data []byte) PrintRasterImage {
	return PrintRasterImage{
		Mode:       RasterNormal,
		WidthBytes: widthBytes,
		HeightDots: heightDots,
		Data:       data,
	}
}

// WithMode 设置缩放模式。
func (p PrintRasterImage) WithMode(m RasterImageMode) PrintRasterImage {
	p.Mode = m
	return p
}

// Encode implements Command.
func (p PrintRasterImage) Encode() []byte {
	xl, xh := lowHigh(p.WidthBytes)
	yl, yh := lowHigh(p.HeightDots)
	out := make([]byte, 0, len(p.Data)+8)
	out = append(out, GS, 'v', '0', byte(p.Mode), xl, xh, yl, yh)
	return append(out, p.Data...)
}

// DefineDownloadedImage 定义下载位图（宽 1-255 字节，高 1-48 字节）。
//
// ESC/POS: `GS * x y d1...dk`
type DefineDownloadedImage struct {
	WidthBytes  byte
	HeightBytes byte
	Data        []byte
}

// Encode implements Command.
func (d DefineDownloadedImage) Encode() []byte {
	out := make([]byte, 0, len(d.Data)+4)
	out = append(out, GS, '*', d.WidthBytes, d.HeightBytes)
	return append(out, d.Data...)
}

// DownloadedImageMode 是下载位图的打印缩放。
type DownloadedImageMode byte

const (
	DownloadedNormal       DownloadedImageMode = 0
	DownloadedDoubleWidth  DownloadedImageMode = 1
	DownloadedDoubleHeight DownloadedImageMode = 2
	DownloadedQuadruple    DownloadedImageMode = 3
)

// PrintDownloadedImage 打印已定义的下载位图。
//
// ESC/POS: `GS / m`
type PrintDownloadedImage DownloadedImageMode

// Encode implements Command.
func (p PrintDownloadedImage) Encode() []byte { return []byte{GS, '/', byte(p)} }
