package tui

import (
	"fmt"
	"strconv"
	"strings"

	"Conexoes/pkg/dom"
	"Conexoes/pkg/screens"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// icons maps Material Symbols names to terminal glyphs.
var icons = map[string]string{
	"favorite":               "♥",
	"groups":                 "⚇",
	"chat_bubble":            "✉",
	"person":                 "☺",
	"close":                  "✕",
	"star":                   "★",
	"location_on":            "⌖",
	"calendar_today":         "▦",
	"schedule":               "◷",
	"arrow_forward":          "→",
	"warning":                "⚠",
	"settings":               "⚙",
	"shield":                 "⛨",
	"verified_user":          "✔",
	"cable":                  "⌇",
	"local_bar":              "♆",
	"school":                 "✎",
	"celebration":            "✦",
	"more_vert":              "⋮",
	"sentiment_satisfied":    "☻",
	"lightbulb":              "✧",
	"send":                   "➤",
	"videocam":               "▶",
	"checklist":              "☑",
	"lock":                   "⚿",
	"radio_button_unchecked": "○",
}

// Glyph returns the terminal glyph for an icon name, or the name in brackets.
func Glyph(name string) string {
	if g, ok := icons[name]; ok {
		return g
	}
	return "[" + name + "]"
}

// Painter turns an element tree into styled terminal text.
type Painter struct {
	st    Styles
	focus *dom.Node
}

// NewPainter creates a painter with the given styles.
func NewPainter(st Styles) *Painter {
	return &Painter{st: st}
}

// Paint renders n to fit width columns. focus, when non-nil, is highlighted.
func (p *Painter) Paint(n *dom.Node, width int, focus *dom.Node) string {
	if n == nil {
		return ""
	}
	if width < 10 {
		width = 10
	}
	p.focus = focus
	return p.paint(n, width)
}

func (p *Painter) paint(n *dom.Node, width int) string {
	if n.IsText() {
		return p.st.Text.Render(wrap(n.Text(), width))
	}
	if n.HasClass(screens.IconClass) {
		return p.st.Icon.Render(Glyph(n.Text()))
	}

	switch n.Tag() {
	case "h1":
		return p.st.Title.Render(wrap(n.TextContent(), width))
	case "h2":
		return p.st.Heading.Render(wrap(n.TextContent(), width))
	case "h3", "h4":
		return p.withStyle(n, width, p.st.Subhead)
	case "input":
		return p.input(n, width)
	case "hr":
		return p.st.Divider.Render(strings.Repeat("─", width))
	case "progress":
		return p.progress(n, width)
	case "li":
		return p.st.Text.Render(wrap("• "+n.TextContent(), width))
	case "strong":
		return p.st.Strong.Render(n.Text())
	case "button", "a":
		return p.button(n, width)
	case "nav":
		return p.nav(n, width)
	}

	switch {
	case n.HasClass("chip"):
		switch {
		case n.HasClass("chip-accent"):
			return p.st.ChipAccent.Render(n.Text())
		case n.HasClass("chip-danger"):
			return p.st.ChipDanger.Render(n.Text())
		}
		return p.st.Chip.Render(n.Text())
	case n.HasClass("message-bubble"):
		return p.bubble(n, width)
	case n.HasClass("progress-step"):
		if n.HasClass("active") {
			return p.st.StepOn.Render(n.Text())
		}
		return p.st.Step.Render(n.Text())
	case n.HasClass("check-circle"):
		return p.st.Muted.Render("○")
	case n.HasClass("online-indicator"):
		return p.st.Online.Render("●")
	case n.HasClass("avatar"), n.HasClass("profile-avatar"):
		return lipgloss.JoinHorizontal(lipgloss.Center, p.st.Avatar.Render(n.Text()), " ", p.children(n, width))
	case n.HasClass("discover-card-image"):
		return p.st.Muted.Render(strings.Repeat("░", width))
	case n.HasClass("timestamp"):
		return p.st.Timestamp.Render(n.Text())
	case n.HasClass("muted"), n.HasClass("encryption-note"):
		return p.withStyle(n, width, p.st.Muted)
	case n.HasClass("danger"):
		return p.withStyle(n, width, p.st.Danger)
	case n.HasClass("alert-box"):
		return p.boxed(n, width, p.st.Alert)
	case n.HasClass("card"), n.HasClass("event-card"), n.HasClass("discover-card"),
		n.HasClass("category-card"), n.HasClass("stat-item"):
		return p.boxed(n, width, p.st.Card)
	}

	return p.content(n, width)
}

// content renders the node's own text followed by its children.
func (p *Painter) content(n *dom.Node, width int) string {
	var parts []string
	if t := strings.TrimSpace(n.Text()); t != "" {
		parts = append(parts, p.st.Text.Render(wrap(t, width)))
	}
	if kids := p.children(n, width); kids != "" {
		parts = append(parts, kids)
	}
	if n.Layout() == dom.Row && len(parts) > 1 {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts[0], " ", parts[1])
	}
	return strings.Join(parts, "\n")
}

func (p *Painter) withStyle(n *dom.Node, width int, st lipgloss.Style) string {
	if n.ChildCount() == 0 {
		return st.Render(wrap(n.Text(), width))
	}
	return st.Render(p.content(n, width))
}

func (p *Painter) children(n *dom.Node, width int) string {
	kids := n.Children()
	if len(kids) == 0 {
		return ""
	}
	if n.Layout() == dom.Row {
		return p.flow(kids, width)
	}
	parts := make([]string, 0, len(kids))
	for _, c := range kids {
		if s := p.paint(c, width); s != "" {
			parts = append(parts, s)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// flow lays children side by side and wraps onto a new line when the next
// piece would overflow width.
func (p *Painter) flow(kids []*dom.Node, width int) string {
	var (
		lines   []string
		current []string
		used    int
	)
	flush := func() {
		if len(current) > 0 {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, current...))
		}
		current, used = nil, 0
	}

	for _, c := range kids {
		piece := p.paint(c, width)
		if piece == "" {
			continue
		}
		w := lipgloss.Width(piece)
		gap := 0
		if len(current) > 0 {
			gap = 1
		}
		if len(current) > 0 && used+gap+w > width {
			flush()
			gap = 0
		}
		if gap > 0 {
			current = append(current, " ")
		}
		current = append(current, piece)
		used += gap + w
	}
	flush()
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (p *Painter) boxed(n *dom.Node, width int, st lipgloss.Style) string {
	inner := width - st.GetHorizontalFrameSize()
	if inner < 4 {
		inner = 4
	}
	body := p.content(n, inner)
	if n.Parent() != nil && n.Parent().Layout() == dom.Row {
		return st.Render(body)
	}
	return st.Width(inner).Render(body)
}

func (p *Painter) button(n *dom.Node, width int) string {
	label := Label(n)
	if n == p.focus {
		return p.st.ButtonFocused.Render(truncateText(label, width))
	}
	if n.Tag() == "a" {
		return p.st.Link.Render(truncateText(label, width))
	}
	return p.st.Button.Render(truncateText(label, width))
}

func (p *Painter) nav(n *dom.Node, width int) string {
	items := n.Children()
	if len(items) == 0 {
		return ""
	}
	cell := width / len(items)
	parts := make([]string, 0, len(items))
	for _, item := range items {
		var label string
		for _, c := range item.Children() {
			if c.HasClass(screens.IconClass) {
				label = Glyph(c.Text()) + " " + label
			} else {
				label += c.TextContent()
			}
		}
		st := p.st.NavItem
		if current, _ := item.Attr("aria-current"); current == "page" {
			st = p.st.NavActive
		}
		if item == p.focus {
			st = p.st.ButtonFocused
		}
		parts = append(parts, lipgloss.PlaceHorizontal(cell, lipgloss.Center, st.Render(label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (p *Painter) input(n *dom.Node, width int) string {
	placeholder, _ := n.Attr("placeholder")
	inner := width - p.st.Input.GetHorizontalFrameSize()
	if inner < 4 {
		inner = 4
	}
	if n.Parent() != nil && n.Parent().Layout() == dom.Row {
		inner = inner / 2
	}
	return p.st.Input.Width(inner).Render(truncateText(placeholder, inner))
}

func (p *Painter) progress(n *dom.Node, width int) string {
	rawValue, _ := n.Attr("value")
	rawLimit, _ := n.Attr("max")
	v, _ := strconv.Atoi(rawValue)
	m, _ := strconv.Atoi(rawLimit)

	barWidth := width / 4
	if barWidth < 5 {
		barWidth = 5
	}
	return p.st.BarFull.Render(strings.Repeat("█", filled(v, m, barWidth))) +
		p.st.BarEmpty.Render(strings.Repeat("░", barWidth-filled(v, m, barWidth)))
}

func (p *Painter) bubble(n *dom.Node, width int) string {
	maxW := chatBubbleMaxWidth(width)
	st := p.st.Received
	align := lipgloss.Left
	if n.HasClass("sent") {
		st = p.st.Sent
		align = lipgloss.Right
	}
	body := wrap(n.Text(), maxW-st.GetHorizontalFrameSize())
	for _, c := range n.Children() {
		body += "\n" + p.paint(c, maxW)
	}
	return lipgloss.PlaceHorizontal(width, align, st.Render(body))
}

// filled returns how many of cells a value/limit ratio covers, clamped.
func filled(value, limit, cells int) int {
	if limit <= 0 || value <= 0 {
		return 0
	}
	if value >= limit {
		return cells
	}
	return value * cells / limit
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

// Label is the visible text of a button: icon glyphs followed by text, plus
// the aria label for icon-only discover actions.
func Label(n *dom.Node) string {
	var parts []string
	for _, c := range n.Children() {
		if c.HasClass(screens.IconClass) {
			parts = append(parts, Glyph(c.Text()))
		} else if t := c.TextContent(); t != "" {
			parts = append(parts, t)
		}
	}
	label := strings.Join(parts, " ")
	if label == "" {
		label = n.TextContent()
	}
	if aria, ok := n.Attr("aria-label"); ok && n.HasClass("discover-btn") {
		label += " " + aria
	}
	return label
}

// Describe is a one-line summary of a clickable node for the status bar.
func Describe(n *dom.Node) string {
	if n == nil {
		return ""
	}
	if aria, ok := n.Attr("aria-label"); ok {
		return aria
	}
	var parts []string
	for _, c := range n.Children() {
		if !c.HasClass(screens.IconClass) {
			if t := c.TextContent(); t != "" {
				parts = append(parts, t)
			}
		}
	}
	if len(parts) > 0 {
		return truncateText(strings.Join(parts, " "), 40)
	}
	return fmt.Sprintf("<%s>", n.Tag())
}
