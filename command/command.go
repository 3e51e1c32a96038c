// Package command 定义 ESC/POS 指令及其字节编码。
// 每条指令实现 Command 接口，Encode 返回可直接写入打印机的字节序列。
package command

// ESC/POS 控制字节。
const (
	// ESC 转义字符，大多数指令以其开头。
	ESC byte = 0x1B
	// GS 组分隔符，GS 系列指令的前缀。
	GS byte = 0x1D
	// FS 文件分隔符，FS 系列指令的前缀。
	FS byte = 0x1C
	// DLE 数据链路转义，实时指令的前缀。
	DLE byte = 0x10
	// EOT 传输结束，用于实时状态查询。
	EOT byte = 0x04
	// LF 换行。
	LF byte = 0x0A
	// FF 换页（页模式下触发打印）。
	FF byte = 0x0C
	// CR 回车。
	CR byte = 0x0D
	// HT 水平制表。
	HT byte = 0x09
	// CAN 取消页模式缓冲区内容。
	CAN byte = 0x18
)

// Command 是一条可发送给打印机的指令。
type Command interface {
	// Encode 将指令编码为字节序列。
	Encode() []byte
}

// QueryCommand 是一条期待打印机应答的指令。
type QueryCommand interface {
	Command

	// ParseResponse 解析打印机返回的应答字节。
	ParseResponse(resp []byte) (StatusResponse, error)
}

// lowHigh 将 16 位数值拆为小端的 nL、nH 两个字节。
func lowHigh(v uint16) (byte, byte) {
	return byte(v & 0xFF), byte(v >> 8)
}
