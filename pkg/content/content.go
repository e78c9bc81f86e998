// Package content exposes the prototype's mock data. The data is embedded at
// build time and never changes while the program runs.
package content

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var raw []byte

// Onboarding is the copy shown before sign-in.
type Onboarding struct {
	Title            string `yaml:"title"`
	Lead             string `yaml:"lead"`
	EmailPlaceholder string `yaml:"email_placeholder"`
	Button           string `yaml:"button"`
}

// Stats are the counters under the profile header.
type Stats struct {
	Matches       int `yaml:"matches"`
	Conversations int `yaml:"conversations"`
	Photos        int `yaml:"photos"`
}

// Setting is one row of the profile settings card.
type Setting struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
}

// Profile is the signed-in user.
type Profile struct {
	Name          string    `yaml:"name"`
	Age           int       `yaml:"age"`
	Location      string    `yaml:"location"`
	AvatarInitial string    `yaml:"avatar_initial"`
	Tags          []string  `yaml:"tags"`
	Stats         Stats     `yaml:"stats"`
	About         string    `yaml:"about"`
	MemberSince   string    `yaml:"member_since"`
	Interests     []string  `yaml:"interests"`
	HardLimits    []string  `yaml:"hard_limits"`
	Settings      []Setting `yaml:"settings"`
}

// Candidate is the card on the discover screen.
type Candidate struct {
	Name     string   `yaml:"name"`
	Age      int      `yaml:"age"`
	Headline string   `yaml:"headline"`
	Chips    []string `yaml:"chips"`
}

// Category is a tile in the community grid.
type Category struct {
	Icon   string `yaml:"icon"`
	Name   string `yaml:"name"`
	Events int    `yaml:"events"`
}

// Event is an upcoming community event.
type Event struct {
	Title       string `yaml:"title"`
	Category    string `yaml:"category"`
	Date        string `yaml:"date"`
	Time        string `yaml:"time"`
	Location    string `yaml:"location"`
	Description string `yaml:"description"`
	Attendees   int    `yaml:"attendees"`
	Capacity    int    `yaml:"capacity"`
}

// Community is the community screen's data.
type Community struct {
	Title      string     `yaml:"title"`
	Lead       string     `yaml:"lead"`
	Categories []Category `yaml:"categories"`
	Events     []Event    `yaml:"events"`
	Guidelines []string   `yaml:"guidelines"`
}

// Sender tells who wrote a chat message.
type Sender string

const (
	SenderMe      Sender = "me"
	SenderPartner Sender = "partner"
)

// Message is one chat bubble.
type Message struct {
	Sender Sender `yaml:"sender"`
	Text   string `yaml:"text"`
	Time   string `yaml:"time"`
}

// Partner is the other side of the conversation.
type Partner struct {
	Name          string `yaml:"name"`
	Status        string `yaml:"status"`
	AvatarInitial string `yaml:"avatar_initial"`
}

// Conversation is the single chat thread.
type Conversation struct {
	Partner          Partner   `yaml:"partner"`
	Messages         []Message `yaml:"messages"`
	InputPlaceholder string    `yaml:"input_placeholder"`
	EncryptionNote   string    `yaml:"encryption_note"`
}

// Checklist is the safety checklist sub-view.
type Checklist struct {
	Title       string   `yaml:"title"`
	Phases      []string `yaml:"phases"`
	ActivePhase int      `yaml:"active_phase"`
	Items       []string `yaml:"items"`
	AlertTitle  string   `yaml:"alert_title"`
	Alert       string   `yaml:"alert"`
}

// Catalog is the whole content document.
type Catalog struct {
	Onboarding   Onboarding   `yaml:"onboarding"`
	Profile      Profile      `yaml:"profile"`
	Discover     Candidate    `yaml:"discover"`
	Community    Community    `yaml:"community"`
	Conversation Conversation `yaml:"conversation"`
	Checklist    Checklist    `yaml:"checklist"`
}

var (
	loadOnce sync.Once
	catalog  Catalog
	loadErr  error
)

// Parse decodes a content document.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("invalid content document: %w", err)
	}
	return c, nil
}

// Load returns a copy of the embedded catalog.
func Load() (Catalog, error) {
	loadOnce.Do(func() {
		catalog, loadErr = Parse(raw)
	})
	if loadErr != nil {
		return Catalog{}, loadErr
	}
	return catalog.clone(), nil
}

// MustLoad is Load for callers that treat a broken embed as a build defect.
func MustLoad() Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func (c Catalog) clone() Catalog {
	out := c
	out.Profile.Tags = slices.Clone(c.Profile.Tags)
	out.Profile.Interests = slices.Clone(c.Profile.Interests)
	out.Profile.HardLimits = slices.Clone(c.Profile.HardLimits)
	out.Profile.Settings = slices.Clone(c.Profile.Settings)
	out.Discover.Chips = slices.Clone(c.Discover.Chips)
	out.Community.Categories = slices.Clone(c.Community.Categories)
	out.Community.Events = slices.Clone(c.Community.Events)
	out.Community.Guidelines = slices.Clone(c.Community.Guidelines)
	out.Conversation.Messages = slices.Clone(c.Conversation.Messages)
	out.Checklist.Phases = slices.Clone(c.Checklist.Phases)
	out.Checklist.Items = slices.Clone(c.Checklist.Items)
	return out
}
