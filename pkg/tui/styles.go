package tui

import "github.com/charmbracelet/lipgloss"

// Palette is a set of theme colors.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Success   lipgloss.Color
	Danger    lipgloss.Color
	Muted     lipgloss.Color

	BgBase lipgloss.Color
	BgDark lipgloss.Color

	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	Border        lipgloss.Color
}

// Theme colors - "Wine & Slate" palette
var DarkPalette = Palette{
	Primary:   lipgloss.Color("#E11D48"), // Rose 600
	Secondary: lipgloss.Color("#A855F7"), // Purple 500
	Accent:    lipgloss.Color("#F59E0B"), // Amber 500
	Success:   lipgloss.Color("#10B981"), // Emerald 500
	Danger:    lipgloss.Color("#EF4444"), // Red 500
	Muted:     lipgloss.Color("#64748B"), // Slate 500

	BgBase: lipgloss.Color("#0F172A"), // Slate 900
	BgDark: lipgloss.Color("#1E293B"), // Slate 800

	TextPrimary:   lipgloss.Color("#F8FAFC"), // Slate 50
	TextSecondary: lipgloss.Color("#94A3B8"), // Slate 400
	Border:        lipgloss.Color("#334155"), // Slate 700
}

var LightPalette = Palette{
	Primary:   lipgloss.Color("#BE123C"),
	Secondary: lipgloss.Color("#7E22CE"),
	Accent:    lipgloss.Color("#B45309"),
	Success:   lipgloss.Color("#047857"),
	Danger:    lipgloss.Color("#B91C1C"),
	Muted:     lipgloss.Color("#64748B"),

	BgBase: lipgloss.Color("#F8FAFC"),
	BgDark: lipgloss.Color("#E2E8F0"),

	TextPrimary:   lipgloss.Color("#0F172A"),
	TextSecondary: lipgloss.Color("#475569"),
	Border:        lipgloss.Color("#CBD5E1"),
}

// PaletteFor returns the palette for a config theme name.
func PaletteFor(theme string) Palette {
	if theme == "light" {
		return LightPalette
	}
	return DarkPalette
}

// Styles holds every style the painter and the frame use.
type Styles struct {
	Title     lipgloss.Style
	Heading   lipgloss.Style
	Subhead   lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Strong    lipgloss.Style
	Icon      lipgloss.Style
	Danger    lipgloss.Style
	Timestamp lipgloss.Style
	Online    lipgloss.Style

	Chip       lipgloss.Style
	ChipAccent lipgloss.Style
	ChipDanger lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Link          lipgloss.Style

	Card      lipgloss.Style
	Alert     lipgloss.Style
	Input     lipgloss.Style
	Avatar    lipgloss.Style
	Sent      lipgloss.Style
	Received  lipgloss.Style
	Step      lipgloss.Style
	StepOn    lipgloss.Style
	BarFull   lipgloss.Style
	BarEmpty  lipgloss.Style
	Divider   lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style

	// Frame
	Header    lipgloss.Style
	StatusBar lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles builds the style set for p.
func NewStyles(p Palette) Styles {
	badge := lipgloss.NewStyle().Padding(0, 1).MarginRight(1)
	bubble := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())

	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(p.Primary).MarginBottom(1),
		Heading:   lipgloss.NewStyle().Bold(true).Foreground(p.TextPrimary),
		Subhead:   lipgloss.NewStyle().Bold(true).Foreground(p.Secondary),
		Text:      lipgloss.NewStyle().Foreground(p.TextPrimary),
		Muted:     lipgloss.NewStyle().Foreground(p.TextSecondary),
		Strong:    lipgloss.NewStyle().Bold(true).Foreground(p.Danger),
		Icon:      lipgloss.NewStyle().Foreground(p.Secondary),
		Danger:    lipgloss.NewStyle().Foreground(p.Danger).Bold(true),
		Timestamp: lipgloss.NewStyle().Foreground(p.Muted).Faint(true),
		Online:    lipgloss.NewStyle().Foreground(p.Success),

		Chip:       badge.Copy().Background(p.BgDark).Foreground(p.TextPrimary),
		ChipAccent: badge.Copy().Background(p.Success).Foreground(p.BgBase).Bold(true),
		ChipDanger: badge.Copy().Background(p.Danger).Foreground(p.TextPrimary),

		Button: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(p.TextPrimary).
			Background(p.Primary).
			Bold(true),
		ButtonFocused: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(p.BgBase).
			Background(p.Accent).
			Bold(true).
			Underline(true),
		Link: lipgloss.NewStyle().Foreground(p.Secondary).Underline(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Alert: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Danger).
			Padding(0, 1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Muted).
			Foreground(p.Muted).
			Padding(0, 1),
		Avatar: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.TextPrimary).
			Background(p.Secondary).
			Padding(0, 2),
		Sent:     bubble.Copy().BorderForeground(p.Primary),
		Received: bubble.Copy().BorderForeground(p.Border),
		Step:     lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
		StepOn:   lipgloss.NewStyle().Foreground(p.BgBase).Background(p.Primary).Bold(true).Padding(0, 1),
		BarFull:  lipgloss.NewStyle().Foreground(p.Primary),
		BarEmpty: lipgloss.NewStyle().Foreground(p.Border),
		Divider:  lipgloss.NewStyle().Foreground(p.Border),
		NavItem:  lipgloss.NewStyle().Foreground(p.TextSecondary).Padding(0, 1),
		NavActive: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.TextPrimary).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(p.TextSecondary).
			Background(p.BgDark).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(p.Muted),
	}
}
