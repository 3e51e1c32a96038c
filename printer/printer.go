// Package printer 提供面向 io.Writer 的打印机封装：带缓冲地发送指
// 令与样式文本，并在配置了读取端时支持状态查询。
package printer

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/ByLCY/vellum/command"
	"github.com/ByLCY/vellum/page"
	"github.com/ByLCY/vellum/style"
)

// ErrNoReader 未配置读取端却调用了查询。
var ErrNoReader = errors.New("printer: 未配置读取端，无法双向通信")

// ErrNoResponse 打印机没有返回任何应答。
var ErrNoResponse = errors.New("printer: 打印机无应答")

// Printer 包装一个带缓冲的写入端与可选的读取端。写入方法不会自动
// 刷新缓冲，调用方需在适当时机调用 Flush。Printer 本身不做并发保护。
type Printer struct {
	w   *bufio.Writer
	r   io.Reader
	log zerolog.Logger
}

// New 构造只写的打印机（无法执行状态查询）。
func New(w io.Writer) *Printer {
	return &Printer{w: bufio.NewWriter(w), log: zerolog.Nop()}
}

// NewWithReader 构造可读写的打印机，Query 方法可用。
func NewWithReader(w io.Writer, r io.Reader) *Printer {
	return &Printer{w: bufio.NewWriter(w), r: r, log: zerolog.Nop()}
}

// WithLogger 设置调试日志记录器，记录每次写入的字节数。
func (p *Printer) WithLogger(log zerolog.Logger) *Printer {
	p.log = log
	return p
}

// Send 发送一条指令。
func (p *Printer) Send(cmd command.Command) error {
	return p.SendRaw(cmd.Encode())
}

// SendRaw 发送原始字节。
func (p *Printer) SendRaw(data []byte) error {
	if _, err := p.w.Write(data); err != nil {
		return fmt.Errorf("printer: 写入失败: %w", err)
	}
	p.log.Trace().Int("bytes", len(data)).Hex("data", data).Msg("write")
	return nil
}

// Print 渲染并发送样式文本，不追加换行。
func (p *Printer) Print(node *style.Node) error {
	return p.SendRaw(node.Render())
}

// Println 渲染并发送样式文本，末尾追加换行。
func (p *Printer) Println(node *style.Node) error {
	return p.SendRaw(node.RenderLine())
}

// PrintText 发送一行纯文本并换行。
func (p *Printer) PrintText(s string) error {
	return p.Println(style.Text(s))
}

// PrintPage 发送一个页模式文档。
func (p *Printer) PrintPage(b *page.Builder) error {
	return p.SendRaw(b.Build())
}

// PrintPageAndExit 发送页模式文档并回到标准模式。
func (p *Printer) PrintPageAndExit(b *page.Builder) error {
	return p.SendRaw(b.BuildAndExit())
}

// Initialize 将打印机恢复到上电默认状态（ESC @）。
func (p *Printer) Initialize() error {
	return p.Send(command.Initialize{})
}

// Flush 将缓冲内容全部写出。
func (p *Printer) Flush() error {
	if err := p.w.Flush(); err != nil {
		return fmt.Errorf("printer: 刷新缓冲失败: %w", err)
	}
	return nil
}

// Query 发送查询指令并解析应答。发送前会刷新写缓冲。
func (p *Printer) Query(q command.QueryCommand) (command.StatusResponse, error) {
	if p.r == nil {
		return command.StatusResponse{}, ErrNoReader
	}

	if err := p.Send(q); err != nil {
		return command.StatusResponse{}, err
	}
	if err := p.Flush(); err != nil {
		return command.StatusResponse{}, err
	}

	buf := make([]byte, 64)
	n, err := p.r.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return command.StatusResponse{}, fmt.Errorf("printer: 读取应答失败: %w", err)
	}
	if n == 0 {
		return command.StatusResponse{}, ErrNoResponse
	}
	p.log.Trace().Int("bytes", n).Hex("data", buf[:n]).Msg("read")

	return q.ParseResponse(buf[:n])
}
