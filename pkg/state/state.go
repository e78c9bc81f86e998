// Package state holds the UI state record and the store that owns it.
package state

import "strings"

// Screen identifies one of the mutually exclusive top-level views.
type Screen string

const (
	ScreenDiscover  Screen = "discover"
	ScreenCommunity Screen = "community"
	ScreenMessages  Screen = "messages"
	ScreenProfile   Screen = "profile"
	ScreenMatching  Screen = "matching" // alias of discover
	ScreenChat      Screen = "chat"     // alias of messages
)

// DefaultScreen is where unknown identifiers and the onboarding button land.
const DefaultScreen = ScreenDiscover

// Screens lists every known identifier.
var Screens = []Screen{
	ScreenDiscover,
	ScreenCommunity,
	ScreenMessages,
	ScreenProfile,
	ScreenMatching,
	ScreenChat,
}

// Known reports whether s is one of the identifiers in Screens.
func (s Screen) Known() bool {
	switch s {
	case ScreenDiscover, ScreenCommunity, ScreenMessages, ScreenProfile, ScreenMatching, ScreenChat:
		return true
	}
	return false
}

// Canonical folds aliases onto the screen that renders them and maps unknown
// identifiers to DefaultScreen.
func (s Screen) Canonical() Screen {
	switch s {
	case ScreenDiscover, ScreenMatching:
		return ScreenDiscover
	case ScreenMessages, ScreenChat:
		return ScreenMessages
	case ScreenCommunity, ScreenProfile:
		return s
	default:
		return DefaultScreen
	}
}

func (s Screen) String() string { return string(s) }

// ParseScreen never fails: unknown input yields DefaultScreen.
func ParseScreen(raw string) Screen {
	s := Screen(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Known() {
		return DefaultScreen
	}
	return s
}

// View is the secondary selector used by the messages screen.
type View string

const (
	ViewMain      View = "main"
	ViewChecklist View = "checklist"
)

func (v View) String() string { return string(v) }

// Toggled flips between the conversation and the checklist.
func (v View) Toggled() View {
	if v == ViewChecklist {
		return ViewMain
	}
	return ViewChecklist
}

// ParseView maps anything other than "checklist" to ViewMain.
func ParseView(raw string) View {
	if View(strings.ToLower(strings.TrimSpace(raw))) == ViewChecklist {
		return ViewChecklist
	}
	return ViewMain
}

// UIState describes what the renderer should show.
type UIState struct {
	Authenticated bool
	Screen        Screen
	View          View
}

// Initial is the state at process start.
func Initial() UIState {
	return UIState{
		Authenticated: false,
		Screen:        ScreenProfile,
		View:          ViewMain,
	}
}

// Patch is a partial UIState. Nil fields keep the current value.
type Patch struct {
	Authenticated *bool
	Screen        *Screen
	View          *View
}

// Apply returns s with every non-nil field of p copied over it.
func (p Patch) Apply(s UIState) UIState {
	if p.Authenticated != nil {
		s.Authenticated = *p.Authenticated
	}
	if p.Screen != nil {
		s.Screen = *p.Screen
	}
	if p.View != nil {
		s.View = *p.View
	}
	return s
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Authenticated == nil && p.Screen == nil && p.View == nil
}

// SignIn is the patch sent by the onboarding button.
func SignIn() Patch {
	auth := true
	screen := DefaultScreen
	return Patch{Authenticated: &auth, Screen: &screen}
}

// Navigate jumps to screen and resets the secondary view.
func Navigate(screen Screen) Patch {
	view := ViewMain
	return Patch{Screen: &screen, View: &view}
}

// ShowView selects the messages sub-view.
func ShowView(v View) Patch {
	return Patch{View: &v}
}
