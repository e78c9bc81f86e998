package dom

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML writes n and its subtree as HTML markup.
func RenderHTML(w io.Writer, n *Node) error {
	return html.Render(w, toHTML(n))
}

// HTML is RenderHTML into a string.
func HTML(n *Node) (string, error) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toHTML(n *Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.text}
	}

	out := &html.Node{
		Type:     html.ElementNode,
		Data:     n.tag,
		DataAtom: atom.Lookup([]byte(n.tag)),
	}
	if n.id != "" {
		out.Attr = append(out.Attr, html.Attribute{Key: "id", Val: n.id})
	}
	if len(n.classes) > 0 {
		out.Attr = append(out.Attr, html.Attribute{Key: "class", Val: strings.Join(n.classes, " ")})
	}
	for _, k := range n.AttrKeys() {
		out.Attr = append(out.Attr, html.Attribute{Key: k, Val: n.attrs[k]})
	}

	if n.text != "" {
		out.AppendChild(&html.Node{Type: html.TextNode, Data: n.text})
	}
	for _, c := range n.children {
		out.AppendChild(toHTML(c))
	}
	return out
}
