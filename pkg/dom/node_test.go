package dom

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRemoveChildren(t *testing.T) {
	root := New("div").SetID("app")
	a := New("p").SetText("a")
	b := New("p").SetText("b")
	root.AppendChild(a, nil, b)

	require.Equal(t, 2, root.ChildCount())
	assert.Same(t, root, a.Parent())

	root.RemoveChildren()
	assert.Equal(t, 0, root.ChildCount())
	assert.Nil(t, a.Parent())
}

func TestAppendChildReparents(t *testing.T) {
	first := New("div")
	second := New("div")
	child := New("span")

	first.AppendChild(child)
	second.AppendChild(child)

	assert.Equal(t, 0, first.ChildCount())
	assert.Equal(t, 1, second.ChildCount())
	assert.Same(t, second, child.Parent())
}

func TestQueries(t *testing.T) {
	clicked := 0
	root := New("div").SetID("app").AppendChild(
		New("h1").SetText("Title"),
		New("button", "btn").SetID("go").OnClick(func() { clicked++ }),
		New("div", "card").AppendChild(
			New("button", "btn", "inert"),
			New("a").SetAttr("href", "#").Append("link"),
		),
	)

	assert.Same(t, root, root.FindByID("app"))
	require.NotNil(t, root.FindByID("go"))
	assert.Nil(t, root.FindByID("missing"))
	assert.Len(t, root.QueryClass("btn"), 2)
	assert.Len(t, root.QueryTag("button"), 2)

	clickables := root.Clickables()
	require.Len(t, clickables, 3)
	assert.Equal(t, "go", clickables[0].ID())
	assert.True(t, clickables[0].HasHandler())
	assert.False(t, clickables[1].HasHandler(), "buttons are clickable without a handler")

	assert.True(t, clickables[0].Click())
	assert.False(t, clickables[1].Click(), "visual-only button has no handler")
	assert.Equal(t, 1, clicked)

	var nilNode *Node
	assert.False(t, nilNode.Click())
}

func TestClassesAndAttrs(t *testing.T) {
	n := New("nav", "bottom-nav", "bottom-nav", "").SetAttr("role", "navigation").SetAttr("aria-label", "x")
	assert.Equal(t, []string{"bottom-nav"}, n.Classes())
	assert.True(t, n.HasClass("bottom-nav"))
	assert.Equal(t, []string{"aria-label", "role"}, n.AttrKeys())

	v, ok := n.Attr("role")
	assert.True(t, ok)
	assert.Equal(t, "navigation", v)
	_, ok = n.Attr("aria-current")
	assert.False(t, ok)
}

func TestTextContent(t *testing.T) {
	n := New("p").AppendChild(New("strong").SetText("Checklist Incompleto:"), TextNode("  Complete  "))
	assert.Equal(t, "Checklist Incompleto: Complete", n.TextContent())
}

func TestDocumentLookup(t *testing.T) {
	doc := NewDocument(New("div").SetID("app").AppendChild(New("span").SetID("inner")))
	assert.NotNil(t, doc.GetElementByID("app"))
	assert.NotNil(t, doc.GetElementByID("inner"))
	assert.Nil(t, doc.GetElementByID("nope"))

	replacement := New("div").SetID("app")
	doc.Mount(replacement)
	assert.Same(t, replacement, doc.GetElementByID("app"))
	assert.Nil(t, doc.GetElementByID("inner"))

	var empty *Document
	assert.Nil(t, empty.GetElementByID("app"))
}

func TestHTMLExport(t *testing.T) {
	root := New("div").SetID("app").AppendChild(
		New("nav", "bottom-nav").SetAttr("role", "navigation").AppendChild(
			New("button", "nav-item", "active").SetAttr("aria-current", "page").Append("Discover"),
			New("button", "nav-item").SetAttr("aria-current", "false").Append("Profile"),
		),
		New("p").SetText("<script>"),
		New("input").SetAttr("type", "email"),
	)

	out, err := HTML(root)
	require.NoError(t, err)
	assert.Contains(t, out, "&lt;script&gt;")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("#app nav.bottom-nav[role=navigation]").Length())
	assert.Equal(t, "Discover", strings.TrimSpace(doc.Find(`button[aria-current="page"]`).Text()))
	assert.Equal(t, 2, doc.Find("button.nav-item").Length())
	assert.Equal(t, 1, doc.Find(`input[type="email"]`).Length())
}
