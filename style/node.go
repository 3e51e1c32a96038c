package style

import "github.com/ByLCY/vellum/command"

// Node 是样式文本树中的一个节点：要么是一段原样输出的文本叶子，
// 要么是一个为全部子节点附加样式作用域的分组。树一经构建不可变，
// 渲染不会修改任何节点，因此同一棵树可以并发、重复渲染。
type Node struct {
	text     string
	style    StyleSet
	children []*Node
	group    bool
}

// Text 构造文本叶子，内容按字节原样输出、不做任何转义。
// 调用方需保证其中不含对打印机有意义的控制字节。
func Text(s string) *Node {
	return &Node{text: s}
}

// Group 构造一个样式作用域，style 作用于全部子节点。
func Group(style StyleSet, children ...*Node) *Node {
	return &Node{group: true, style: style, children: children}
}

// WithStyle 用新的样式作用域包裹本节点，返回新节点。
func (n *Node) WithStyle(style StyleSet) *Node {
	return &Node{group: true, style: style, children: []*Node{n}}
}

// Bold 包裹粗体作用域。
func (n *Node) Bold() *Node {
	return n.WithStyle(StyleSet{}.WithBold(true))
}

// Underlined 包裹单线下划线作用域。
func (n *Node) Underlined() *Node {
	return n.WithStyle(StyleSet{}.WithUnderline(UnderlineSingle))
}

// DoubleUnderlined 包裹双线下划线作用域。
func (n *Node) DoubleUnderlined() *Node {
	return n.WithStyle(StyleSet{}.WithUnderline(UnderlineDouble))
}

// Reversed 包裹黑白反显作用域。
func (n *Node) Reversed() *Node {
	return n.WithStyle(StyleSet{}.WithReverse(true))
}

// DoubleStrike 包裹双重打印作用域。
func (n *Node) DoubleStrike() *Node {
	return n.WithStyle(StyleSet{}.WithDoubleStrike(true))
}

// UpsideDown 包裹倒置打印作用域。
func (n *Node) UpsideDown() *Node {
	return n.WithStyle(StyleSet{}.WithUpsideDown(true))
}

// Rotated 包裹 90° 旋转作用域。
func (n *Node) Rotated() *Node {
	return n.WithStyle(StyleSet{}.WithRotated(true))
}

// Append 将 other 作为兄弟节点拼接到本节点之后。
//
// 始终引入一个零样式的中性包装分组，绝不合并双方样式——这是防止
// 兄弟节点之间样式互相泄漏的关键约定：零样式分组对 Effective
// 没有任何贡献，只改变分组结构，不改变有效样式。
func (n *Node) Append(other *Node) *Node {
	return &Node{group: true, children: []*Node{n, other}}
}

// Render 深度优先遍历整棵树，把文本字节与样式切换指令按序拼接
// 为一段可直接发送的字节流。进入分组时压栈并计算新的有效样式，
// 离开时弹栈回退；末尾兜底切换回基线样式，保证即便渲染一个裸
// 叶子节点，输出也是自包含的。
func (n *Node) Render() []byte {
	stack := []StyleSet{{}}
	current := StyleSet{}

	out := n.render(nil, &stack, &current)

	// 兜底回到基线；正常情况下 current 已是基线，这里不产生字节。
	return appendCommands(out, Transition(current, StyleSet{}))
}

// RenderLine 与 Render 相同，并在末尾追加一个换行字节。
func (n *Node) RenderLine() []byte {
	return append(n.Render(), command.LF)
}

func (n *Node) render(out []byte, stack *[]StyleSet, current *StyleSet) []byte {
	if !n.group {
		return append(out, n.text...)
	}

	*stack = append(*stack, n.style)
	entered := Effective(*stack)
	out = appendCommands(out, Transition(*current, entered))
	*current = entered

	for _, child := range n.children {
		out = child.render(out, stack, current)
	}

	*stack = (*stack)[:len(*stack)-1]
	left := Effective(*stack)
	out = appendCommands(out, Transition(*current, left))
	*current = left

	return out
}

func appendCommands(out []byte, cmds []command.Command) []byte {
	for _, cmd := range cmds {
		out = append(out, cmd.Encode()...)
	}
	return out
}
