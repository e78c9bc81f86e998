package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseScreen(t *testing.T) {
	tests := []struct {
		raw  string
		want Screen
	}{
		{"discover", ScreenDiscover},
		{"community", ScreenCommunity},
		{"messages", ScreenMessages},
		{"profile", ScreenProfile},
		{"matching", ScreenMatching},
		{"chat", ScreenChat},
		{"  Profile ", ScreenProfile},
		{"settings", DefaultScreen},
		{"", DefaultScreen},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseScreen(tt.raw))
		})
	}
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, ScreenDiscover, ScreenMatching.Canonical())
	assert.Equal(t, ScreenMessages, ScreenChat.Canonical())
	assert.Equal(t, ScreenProfile, ScreenProfile.Canonical())
	assert.Equal(t, DefaultScreen, Screen("bogus").Canonical())
	for _, s := range Screens {
		assert.True(t, s.Known(), s)
	}
	assert.False(t, Screen("bogus").Known())
}

func TestViewToggleIsAnInvolution(t *testing.T) {
	for _, v := range []View{ViewMain, ViewChecklist} {
		assert.Equal(t, v, v.Toggled().Toggled())
		assert.NotEqual(t, v, v.Toggled())
	}
	assert.Equal(t, ViewMain, ParseView("video-check"))
	assert.Equal(t, ViewChecklist, ParseView("Checklist"))
}

func TestPatchApply(t *testing.T) {
	base := Initial()

	tests := []struct {
		name  string
		patch Patch
		want  UIState
	}{
		{"empty keeps everything", Patch{}, base},
		{"sign in", SignIn(), UIState{Authenticated: true, Screen: ScreenDiscover, View: ViewMain}},
		{"navigate resets view", Navigate(ScreenCommunity), UIState{Screen: ScreenCommunity, View: ViewMain}},
		{"show view only", ShowView(ViewChecklist), UIState{Screen: ScreenProfile, View: ViewChecklist}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.patch.Apply(base)); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
	assert.True(t, Patch{}.Empty())
	assert.False(t, SignIn().Empty())
}
