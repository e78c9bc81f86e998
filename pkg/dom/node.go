// Package dom is a small element tree that screens are built into. It plays the
// role of the browser DOM: nodes carry tags, classes, accessibility attributes
// and click handlers, and a host (terminal or HTML export) walks them.
package dom

import (
	"slices"
	"strings"
)

// Layout hints how a host arranges a node's children.
type Layout int

const (
	// Block stacks children vertically.
	Block Layout = iota
	// Row places children side by side.
	Row
)

// Node is one element (or a bare text run when tag is empty).
type Node struct {
	tag      string
	id       string
	classes  []string
	attrs    map[string]string
	text     string
	layout   Layout
	onClick  func()
	children []*Node
	parent   *Node
}

// New creates an element with the given tag and classes.
func New(tag string, classes ...string) *Node {
	n := &Node{tag: tag}
	for _, c := range classes {
		n.AddClass(c)
	}
	return n
}

// TextNode creates a bare text run.
func TextNode(text string) *Node {
	return &Node{text: text}
}

func (n *Node) Tag() string { return n.tag }
func (n *Node) ID() string { return n.id }
func (n *Node) Text() string { return n.text }
func (n *Node) Layout() Layout { return n.layout }
func (n *Node) Parent() *Node { return n.parent }
func (n *Node) IsText() bool { return n.tag == "" }
func (n *Node) Classes() []string { return slices.Clone(n.classes) }
func (n *Node) Children() []*Node { return slices.Clone(n.children) }
func (n *Node) HasHandler() bool { return n.onClick != nil }
func (n *Node) ChildCount() int { return len(n.children) }

// SetID sets the element id.
func (n *Node) SetID(id string) *Node {
	n.id = id
	return n
}

// SetText sets the node's own text (not its descendants').
func (n *Node) SetText(text string) *Node {
	n.text = text
	return n
}

// SetLayout sets the layout hint.
func (n *Node) SetLayout(l Layout) *Node {
	n.layout = l
	return n
}

// AddClass appends c unless already present or empty.
func (n *Node) AddClass(c string) *Node {
	c = strings.TrimSpace(c)
	if c != "" && !slices.Contains(n.classes, c) {
		n.classes = append(n.classes, c)
	}
	return n
}

// HasClass reports whether the node carries class c.
func (n *Node) HasClass(c string) bool {
	return slices.Contains(n.classes, c)
}

// SetAttr sets an attribute such as aria-label or role.
func (n *Node) SetAttr(key, value string) *Node {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
	return n
}

// Attr returns the attribute value and whether it is set.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// AttrKeys returns attribute names in sorted order.
func (n *Node) AttrKeys() []string {
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// OnClick installs the click handler.
func (n *Node) OnClick(fn func()) *Node {
	n.onClick = fn
	return n
}

// Click runs the handler. It returns false when the node has none, which is
// the case for the purely visual buttons.
func (n *Node) Click() bool {
	if n == nil || n.onClick == nil {
		return false
	}
	n.onClick()
	return true
}

// Clickable reports whether a host should offer the node for activation.
func (n *Node) Clickable() bool {
	return n.HasHandler() || n.tag == "button" || n.tag == "a"
}

// AppendChild adds children in order and returns n for chaining.
func (n *Node) AppendChild(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.parent != nil {
			c.parent.removeChild(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Append is AppendChild for a bare text run.
func (n *Node) Append(text string) *Node {
	return n.AppendChild(TextNode(text))
}

// RemoveChildren detaches every child.
func (n *Node) RemoveChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

func (n *Node) removeChild(c *Node) {
	for i, child := range n.children {
		if child == c {
			n.children = slices.Delete(n.children, i, i+1)
			return
		}
	}
}

// Walk visits n and its descendants depth-first in document order. Returning
// false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// FindByID returns the first node in the subtree with the given id.
func (n *Node) FindByID(id string) *Node {
	var found *Node
	n.Walk(func(x *Node) bool {
		if found != nil {
			return false
		}
		if x.id == id {
			found = x
			return false
		}
		return true
	})
	return found
}

// QueryClass returns every node in the subtree carrying class c.
func (n *Node) QueryClass(c string) []*Node {
	var out []*Node
	n.Walk(func(x *Node) bool {
		if x.HasClass(c) {
			out = append(out, x)
		}
		return true
	})
	return out
}

// QueryTag returns every node in the subtree with the given tag.
func (n *Node) QueryTag(tag string) []*Node {
	var out []*Node
	n.Walk(func(x *Node) bool {
		if x.tag == tag {
			out = append(out, x)
		}
		return true
	})
	return out
}

// Clickables lists activatable nodes in document order.
func (n *Node) Clickables() []*Node {
	var out []*Node
	n.Walk(func(x *Node) bool {
		if x.Clickable() {
			out = append(out, x)
		}
		return true
	})
	return out
}

// TextContent joins the text of every node in the subtree with single spaces.
func (n *Node) TextContent() string {
	var parts []string
	n.Walk(func(x *Node) bool {
		if t := strings.TrimSpace(x.text); t != "" {
			parts = append(parts, t)
		}
		return true
	})
	return strings.Join(parts, " ")
}
