package command

// 宏录制与执行指令。宏缓冲区最多 2048 字节。

// ToggleMacroDefinition 切换宏定义模式：第一次发送开始录制，第二次结束。
//
// ESC/POS: `GS :` (0x1D 0x3A)
type ToggleMacroDefinition struct{}

// Encode implements Command.
func (ToggleMacroDefinition) Encode() []byte { return []byte{GS, ':'} }

// MacroExecutionMode 是宏的执行方式。
type MacroExecutionMode byte

const (
	// MacroContinuous 连续执行。
	MacroContinuous MacroExecutionMode = 0
	// MacroWaitForButton 每次执行前等待走纸键。
	MacroWaitForButton MacroExecutionMode = 1
)

// ExecuteMacro 执行已定义的宏。Times 为 0 时按 1 处理。
//
// ESC/POS: `GS ^ r t m` (0x1D 0x5E r t m)
type ExecuteMacro struct {
	// Times 执行次数（1-255）。
	Times byte
	// Wait100ms 两次执行之间的等待，单位 100ms。
	Wait100ms byte
	Mode      MacroExecutionMode
}

// RunMacroOnce 执行一次、不等待。
func RunMacroOnce() ExecuteMacro { return ExecuteMacro{Times: 1} }

// RepeatMacro 重复执行并按 100ms 为单位设置间隔。
func RepeatMacro(times, wait100ms byte) ExecuteMacro {
	return ExecuteMacro{Times: times, Wait100ms: wait100ms}
}

// WithMode 设置执行方式。
func (e ExecuteMacro) WithMode(m MacroExecutionMode) ExecuteMacro {
	e.Mode = m
	return e
}

// Encode implements Command.
func (e ExecuteMacro) Encode() []byte {
	times := e.Times
	if times < 1 {
		times = 1
	}
	return []byte{GS, '^', times, e.Wait100ms, byte(e.Mode)}
}
