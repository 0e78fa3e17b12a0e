/*
Package profile assembles player profile views.

A Resolver turns a route identity (or the signed-in player) into a View:
header data, the ability radar, club memberships, recommendations, and
skills/strategies. Display content lives in a Catalog keyed by player ID,
with a default set for players without curated content.
*/
package profile

import "snookerhub/internal/app/directory"

// Ability is one axis of the radar chart (name plus a 0-100 rating).
type Ability struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

// Skill is a named proficiency with a social endorsement counter.
type Skill struct {
	Name         string `json:"name"`
	Level        string `json:"level"`
	Endorsements int    `json:"endorsements"`
}

// Strategy is a titled piece of match-play advice shown on the profile.
type Strategy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Club describes a club membership.
type Club struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Members  int    `json:"members"`
	Role     string `json:"role"`
}

// Recommendation is an authored endorsement of the player with a like counter.
type Recommendation struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
	Likes  int    `json:"likes"`
}

// Display groups the presentational content attached to one profile.
type Display struct {
	Abilities       []Ability        `json:"abilities"`
	Skills          []Skill          `json:"skills"`
	Strategies      []Strategy       `json:"strategies"`
	Clubs           []Club           `json:"clubs"`
	Recommendations []Recommendation `json:"recommendations"`
}

// State names the phases of profile resolution.
type State string

const (
	StateLoading State = "loading"
	StateError   State = "error"
	StateReady   State = "ready"
)

// View is the fully resolved profile as handed to the rendering layer.
type View struct {
	State State  `json:"state"`
	Err   string `json:"error,omitempty"`

	User *directory.User `json:"user,omitempty"`

	// IsOwnProfile reports whether the viewer is looking at themselves.
	IsOwnProfile bool `json:"isOwnProfile"`

	// IsConnected reports whether the viewer's connection set contains the
	// viewed player. Always false on one's own profile.
	IsConnected bool `json:"isConnected"`

	Display Display `json:"display"`
}
