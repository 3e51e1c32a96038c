// Package transport 提供与打印机的底层连接。目前实现 USB 批量传输，
// 打开后返回 io.ReadWriteCloser，可直接交给 printer.NewWithReader。
package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/gousb"
)

// Bixolon SRP-350plus 的默认 USB 标识。
const (
	// BixolonVendorID 厂商 ID。
	BixolonVendorID = 0x1504
	// SRP350PlusProductID 产品 ID。
	SRP350PlusProductID = 0x0006
)

// DefaultTimeout 单次读写的默认超时。
const DefaultTimeout = 5 * time.Second

// ErrDeviceNotFound 未找到匹配的 USB 设备。
var ErrDeviceNotFound = errors.New("transport: 未找到 USB 打印机")

// ErrNoWriteEndpoint 设备没有批量写端点。
var ErrNoWriteEndpoint = errors.New("transport: 设备缺少批量 OUT 端点")

// ErrNoReadEndpoint 设备没有批量读端点。
var ErrNoReadEndpoint = errors.New("transport: 设备缺少批量 IN 端点")

// USBPrinter 是一台已打开的 USB 打印机，实现 io.ReadWriteCloser。
// 非并发安全；读端点可能不存在，此时 Read 返回 ErrNoReadEndpoint。
type USBPrinter struct {
	ctx     *gousb.Context
	dev     *gousb.Device
	release func()
	out     *gousb.OutEndpoint
	in      *gousb.InEndpoint
	timeout time.Duration
}

// OpenUSB 按厂商/产品 ID 打开 USB 打印机并认领其默认接口。
func OpenUSB(vendorID, productID uint16) (*USBPrinter, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(vendorID), gousb.ID(productID))
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("transport: 打开设备失败: %w", err)
	}
	if dev == nil {
		ctx.Close()
		return nil, ErrDeviceNotFound
	}

	// 内核的 usblp 驱动可能已占用接口，先自动解绑。
	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("transport: 解绑内核驱动失败: %w", err)
	}

	intf, release, err := dev.DefaultInterface()
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("transport: 认领接口失败: %w", err)
	}

	p := &USBPrinter{
		ctx:     ctx,
		dev:     dev,
		release: release,
		timeout: DefaultTimeout,
	}

	// 在接口描述里找批量端点；IN 端点可选（票据打印机常见只写）。
	for _, ep := range intf.Setting.Endpoints {
		if ep.TransferType != gousb.TransferTypeBulk {
			continue
		}
		switch ep.Direction {
		case gousb.EndpointDirectionOut:
			if p.out == nil {
				out, err := intf.OutEndpoint(ep.Number)
				if err != nil {
					p.Close()
					return nil, fmt.Errorf("transport: 打开 OUT 端点失败: %w", err)
				}
				p.out = out
			}
		case gousb.EndpointDirectionIn:
			if p.in == nil {
				in, err := intf.InEndpoint(ep.Number)
				if err != nil {
					p.Close()
					return nil, fmt.Errorf("transport: 打开 IN 端点失败: %w", err)
				}
				p.in = in
			}
		}
	}

	if p.out == nil {
		p.Close()
		return nil, ErrNoWriteEndpoint
	}
	return p, nil
}

// OpenBixolon 以默认标识打开 SRP-350plus。
func OpenBixolon() (*USBPrinter, error) {
	return OpenUSB(BixolonVendorID, SRP350PlusProductID)
}

// SetTimeout 调整单次读写的超时时间。
func (p *USBPrinter) SetTimeout(d time.Duration) {
	p.timeout = d
}

// Write implements io.Writer.
func (p *USBPrinter) Write(data []byte) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	return p.out.WriteContext(ctx, data)
}

// Read implements io.Reader.
func (p *USBPrinter) Read(buf []byte) (int, error) {
	if p.in == nil {
		return 0, ErrNoReadEndpoint
	}
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	return p.in.ReadContext(ctx, buf)
}

// Close 释放接口、设备与 USB 上下文。
func (p *USBPrinter) Close() error {
	if p.release != nil {
		p.release()
		p.release = nil
	}
	var err error
	if p.dev != nil {
		err = p.dev.Close()
		p.dev = nil
	}
	if p.ctx != nil {
		if cerr := p.ctx.Close(); err == nil {
			err = cerr
		}
		p.ctx = nil
	}
	return err
}
