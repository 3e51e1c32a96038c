// Package page 以构建器方式拼装页模式文档：所有内容先缓存在打印区
// 域内，随 FF 一次性输出。
package page

import (
	"github.com/ByLCY/vellum/command"
	"github.com/ByLCY/vellum/style"
)

// Builder 按调用顺序累积页模式内容。零值即可使用；所有方法返回
// 自身以便链式调用。Build 才会真正拼出字节序列。
type Builder struct {
	body []byte
}

// NewBuilder 构造空的页模式构建器。
func NewBuilder() *Builder {
	return &Builder{}
}

// Area 设置打印区域（ESC W）。
func (b *Builder) Area(area command.PrintArea) *Builder {
	return b.Raw(command.SetPrintArea(area))
}

// Direction 设置打印方向（ESC T）。
func (b *Builder) Direction(d command.PrintDirection) *Builder {
	return b.Raw(command.SetPrintDirection(d))
}

// HorizontalPosition 设置横向绝对位置（ESC $）。
func (b *Builder) HorizontalPosition(n uint16) *Builder {
	return b.Raw(command.SetHorizontalPosition(n))
}

// VerticalPosition 设置纵向绝对位置（GS $）。
func (b *Builder) VerticalPosition(n uint16) *Builder {
	return b.Raw(command.SetVerticalPosition(n))
}

// Text 追加一段纯文本。
func (b *Builder) Text(s string) *Builder {
	b.body = append(b.body, s...)
	return b
}

// TextLine 渲染一个样式文本树并追加换行。
func (b *Builder) TextLine(node *style.Node) *Builder {
	b.body = append(b.body, node.RenderLine()...)
	return b
}

// Raw 追加任意指令。
func (b *Builder) Raw(cmd command.Command) *Builder {
	b.body = append(b.body, cmd.Encode()...)
	return b
}

// Build 生成完整的页模式字节序列：ESC L、正文、FF。
func (b *Builder) Build() []byte {
	out := make([]byte, 0, len(b.body)+3)
	out = append(out, command.ESC, 'L')
	out = append(out, b.body...)
	return append(out, command.FF)
}

// BuildAndExit 在 Build 的基础上追加 ESC S，打印后回到标准模式。
func (b *Builder) BuildAndExit() []byte {
	return append(b.Build(), command.ESC, 'S')
}
