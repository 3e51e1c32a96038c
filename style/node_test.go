package style

import (
	"bytes"
	"testing"
)

// 统计子序列出现次数，用于断言某条指令恰好出现 n 次。
func countSub(t *testing.T, data, sub []byte) int {
	t.Helper()
	count := 0
	for i := 0; i+len(sub) <= len(data); i++ {
		if bytes.Equal(data[i:i+len(sub)], sub) {
			count++
		}
	}
	return count
}

func TestPlainTextRendersVerbatim(t *testing.T) {
	got := Text("Hello").Render()
	if !bytes.Equal(got, []byte("Hello")) {
		t.Fatalf("裸文本渲染 % X，期望 %q", got, "Hello")
	}
}

func TestBoldWrapsText(t *testing.T) {
	got := Text("Hello").Bold().Render()
	want := []byte{0x1B, 'E', 1, 'H', 'e', 'l', 'l', 'o', 0x1B, 'E', 0}
	if !bytes.Equal(got, want) {
		t.Fatalf("渲染 % X，期望 % X", got, want)
	}
}

func TestRenderLineAppendsLF(t *testing.T) {
	got := Text("Hello").RenderLine()
	if !bytes.Equal(got, append([]byte("Hello"), 0x0A)) {
		t.Fatalf("RenderLine 输出 % X 不符", got)
	}
}

// 兄弟隔离：a 的指令与文本严格先于 b 的，且互不交错。
func TestSiblingStylesIsolated(t *testing.T) {
	got := Text("A").Bold().Append(Text("B").Underlined()).Render()
	want := []byte{
		0x1B, 'E', 1, 'A', 0x1B, 'E', 0,
		0x1B, '-', 1, 'B', 0x1B, '-', 0,
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("渲染 % X，期望 % X", got, want)
	}
	if n := countSub(t, got, []byte{0x1B, '-', 1}); n != 1 {
		t.Fatalf("下划线开启出现 %d 次，期望 1", n)
	}
	if n := countSub(t, got, []byte{0x1B, '-', 0}); n != 1 {
		t.Fatalf("下划线关闭出现 %d 次，期望 1", n)
	}
}

// 外层样式保持：内层作用域未提及的属性只在外层边界各切换一次。
func TestOuterStylePreservedAcrossInnerScope(t *testing.T) {
	tree := Group(StyleSet{}.WithUnderline(UnderlineSingle),
		Text("A"),
		Text("B").Bold(),
		Text("C"),
	)
	got := tree.Render()
	want := []byte{
		0x1B, '-', 1, // 下划线开
		'A',
		0x1B, 'E', 1, 'B', 0x1B, 'E', 0, // 粗体只包住 B
		'C',
		0x1B, '-', 0, // 下划线关
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("渲染 % X，期望 % X", got, want)
	}
}

// 最小切换：粗体套粗体时内层不再产生任何粗体指令。
func TestNestedSameAttributeEmitsNothing(t *testing.T) {
	tree := Text("x").Bold().Bold()
	got := tree.Render()
	if n := countSub(t, got, []byte{0x1B, 'E', 1}); n != 1 {
		t.Fatalf("粗体开启出现 %d 次，期望 1", n)
	}
	if n := countSub(t, got, []byte{0x1B, 'E', 0}); n != 1 {
		t.Fatalf("粗体关闭出现 %d 次，期望 1", n)
	}
}

func TestNestedStylesBothApply(t *testing.T) {
	got := Text("test").Underlined().Bold().Render()
	if countSub(t, got, []byte{0x1B, 'E', 1}) != 1 ||
		countSub(t, got, []byte{0x1B, '-', 1}) != 1 {
		t.Fatalf("嵌套样式未全部生效: % X", got)
	}
	// 结束时全部关闭
	if countSub(t, got, []byte{0x1B, 'E', 0}) != 1 ||
		countSub(t, got, []byte{0x1B, '-', 0}) != 1 {
		t.Fatalf("嵌套样式未全部关闭: % X", got)
	}
}

// Append 永远引入中性包装，不把任何一方的样式并入新分组。
func TestAppendNeutralWrapper(t *testing.T) {
	a := Text("a").Bold()
	b := Text("b")
	joined := a.Append(b)

	if !joined.group || joined.style != (StyleSet{}) {
		t.Fatalf("Append 结果应为零样式分组: %+v", joined)
	}
	if len(joined.children) != 2 || joined.children[0] != a || joined.children[1] != b {
		t.Fatal("Append 应保留两个子节点的原引用")
	}
}

// 空分组仍然产生成对的进入/退出切换，这是已接受的未优化行为。
func TestEmptyGroupEmitsEnterExitPair(t *testing.T) {
	got := Group(StyleSet{}.WithBold(true)).Render()
	want := []byte{0x1B, 'E', 1, 0x1B, 'E', 0}
	if !bytes.Equal(got, want) {
		t.Fatalf("空分组渲染 % X，期望 % X", got, want)
	}
}

// 基线回环：被开启的属性在输出结束前一定被关闭。
func TestRenderEndsAtBaseline(t *testing.T) {
	tree := Group(StyleSet{Bold: true, Reverse: true, Underline: UnderlineDouble},
		Text("deep"),
		Text("er").Rotated(),
	)
	got := tree.Render()

	pairs := [][2][]byte{
		{{0x1B, 'E', 1}, {0x1B, 'E', 0}},
		{{0x1D, 'B', 1}, {0x1D, 'B', 0}},
		{{0x1B, 'V', 1}, {0x1B, 'V', 0}},
	}
	for _, p := range pairs {
		on := countSub(t, got, p[0])
		off := countSub(t, got, p[1])
		if on != off {
			t.Fatalf("指令 % X 开 %d 次、关 %d 次，不平衡", p[0], on, off)
		}
	}
	// 下划线：开一次（2 点）、关一次
	if countSub(t, got, []byte{0x1B, '-', 2}) != 1 || countSub(t, got, []byte{0x1B, '-', 0}) != 1 {
		t.Fatalf("下划线开关不成对: % X", got)
	}
}

// 同一棵树渲染两次输出逐字节一致。
func TestRenderDeterministic(t *testing.T) {
	tree := Text("A").Bold().Append(Text("B").Underlined().Append(Text("C").Reversed()))
	first := tree.Render()
	second := tree.Render()
	if !bytes.Equal(first, second) {
		t.Fatal("同一棵树两次渲染输出不一致")
	}
}

func TestRenderLineWithoutStyleHasNoCommands(t *testing.T) {
	got := Text("Hello").RenderLine()
	for _, b := range got[:len(got)-1] {
		if b < 0x20 {
			t.Fatalf("无样式输出不应包含控制字节: % X", got)
		}
	}
	if got[len(got)-1] != 0x0A {
		t.Fatalf("行尾应为 LF: % X", got)
	}
}

func TestDoubleUnderlineScenario(t *testing.T) {
	got := Text("x").DoubleUnderlined().Render()
	want := []byte{0x1B, '-', 2, 'x', 0x1B, '-', 0}
	if !bytes.Equal(got, want) {
		t.Fatalf("渲染 % X，期望 % X", got, want)
	}
}

// 嵌套下划线层级：外层 Single、内层 Double，退出内层时回到 Single。
func TestUnderlineLevelRestoredOnPop(t *testing.T) {
	tree := Group(StyleSet{}.WithUnderline(UnderlineSingle),
		Text("a"),
		Group(StyleSet{}.WithUnderline(UnderlineDouble), Text("b")),
		Text("c"),
	)
	got := tree.Render()
	want := []byte{
		0x1B, '-', 1, 'a',
		0x1B, '-', 2, 'b',
		0x1B, '-', 1, 'c',
		0x1B, '-', 0,
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("渲染 % X，期望 % X", got, want)
	}
}
