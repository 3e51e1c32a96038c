package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/ByLCY/vellum/dsl"
	"github.com/ByLCY/vellum/printer"
	"github.com/ByLCY/vellum/receipt"
	"github.com/ByLCY/vellum/transport"
)

func main() {
	input := flag.String("in", "examples/demo.receipt", "票据 DSL 文件路径")
	output := flag.String("out", "", "字节流输出文件路径（与 -usb 二选一）")
	useUSB := flag.Bool("usb", false, "直接写入 USB 打印机")
	vendor := flag.String("vendor", "0x1504", "USB 厂商 ID")
	product := flag.String("product", "0x0006", "USB 产品 ID")
	dataJSON := flag.String("data", "", "绑定到 DSL 的 JSON 数据")
	noInit := flag.Bool("no-init", false, "不在票据开头输出初始化指令")
	verbose := flag.Bool("v", false, "输出发送字节的跟踪日志")
	flag.Parse()

	var inputData any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &inputData); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}

	if err := run(*input, *output, *useUSB, *vendor, *product, inputData, *noInit, *verbose); err != nil {
		log.Fatalf("生成票据失败: %v", err)
	}
}

// run 串联解析、编译与输出。
func run(inputPath, outputPath string, useUSB bool, vendor, product string, data any, noInit, verbose bool) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("无法打开 DSL 文件 %s: %w", inputPath, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(file)
	if err != nil {
		return fmt.Errorf("解析 DSL 失败: %w", err)
	}

	payload, err := receipt.Build(doc, data, receipt.BuildOptions{SkipInitialize: noInit})
	if err != nil {
		return fmt.Errorf("编译票据失败: %w", err)
	}

	if useUSB {
		return printUSB(payload, vendor, product, verbose)
	}
	if outputPath == "" {
		return fmt.Errorf("需要 -out 输出文件或 -usb")
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, payload, 0o644); err != nil {
		return fmt.Errorf("写入输出文件失败: %w", err)
	}
	fmt.Printf("已生成票据字节流：%s（%d 字节）\n", outputPath, len(payload))
	return nil
}

func printUSB(payload []byte, vendor, product string, verbose bool) error {
	vid, err := parseID(vendor)
	if err != nil {
		return fmt.Errorf("厂商 ID %s 无效: %w", vendor, err)
	}
	pid, err := parseID(product)
	if err != nil {
		return fmt.Errorf("产品 ID %s 无效: %w", product, err)
	}

	dev, err := transport.OpenUSB(vid, pid)
	if err != nil {
		return err
	}
	defer dev.Close()

	p := printer.NewWithReader(dev, dev)
	if verbose {
		p = p.WithLogger(zerolog.New(os.Stderr).Level(zerolog.TraceLevel))
	}
	if err := p.SendRaw(payload); err != nil {
		return fmt.Errorf("发送数据失败: %w", err)
	}
	if err := p.Flush(); err != nil {
		return fmt.Errorf("刷新缓冲失败: %w", err)
	}
	fmt.Printf("已发送 %d 字节到打印机\n", len(payload))
	return nil
}

func parseID(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
