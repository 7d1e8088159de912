package letter

import (
	"strings"
	"unicode"
)

type nodeKind uint8

const (
	nodeText nodeKind = iota
	nodeVar
	nodeIf
)

type node struct {
	raw      string
	name     Field
	children []*node
	kind     nodeKind
}

// parse pairs conditional tags with a stack. Conditionals on unknown fields,
// stray closing tags and unclosed opening tags degrade to literal text.
func parse(tokens []token) []*node {
	root := &node{}
	stack := []*node{root}

	top := func() *node { return stack[len(stack)-1] }

	for _, tok := range tokens {
		switch tok.kind {
		case tokenText:
			top().append(&node{kind: nodeText, raw: tok.raw})
		case tokenVar:
			top().append(&node{kind: nodeVar, raw: tok.raw, name: tok.name})
		case tokenIf:
			if !tok.name.Known() {
				top().append(&node{kind: nodeText, raw: tok.raw})
				continue
			}
			n := &node{kind: nodeIf, raw: tok.raw, name: tok.name}
			top().append(n)
			stack = append(stack, n)
		case tokenEndIf:
			if len(stack) == 1 {
				top().append(&node{kind: nodeText, raw: tok.raw})
				continue
			}
			closed := top()
			stack = stack[:len(stack)-1]
			closed.trimBody()
		}
	}

	// Unclosed conditionals: splice the opening tag back in as text followed
	// by whatever was collected as its body.
	for len(stack) > 1 {
		open := top()
		stack = stack[:len(stack)-1]
		parent := top()
		parent.children = parent.children[:len(parent.children)-1]
		parent.append(&node{kind: nodeText, raw: open.raw})
		parent.children = append(parent.children, open.children...)
	}

	return root.children
}

func (n *node) append(child *node) {
	n.children = append(n.children, child)
}

// trimBody strips template whitespace around a conditional's content, so
// "{{#if reason}}\n{{reason}}\n{{/if}}" yields just the reason.
func (n *node) trimBody() {
	if len(n.children) == 0 {
		return
	}
	if first := n.children[0]; first.kind == nodeText {
		first.raw = strings.TrimLeftFunc(first.raw, unicode.IsSpace)
	}
	if last := n.children[len(n.children)-1]; last.kind == nodeText {
		last.raw = strings.TrimRightFunc(last.raw, unicode.IsSpace)
	}
}
