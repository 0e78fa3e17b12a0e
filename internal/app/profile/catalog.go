package profile

import (
	"errors"
	"sync"
)

// Catalog errors.
var (
	// ErrSkillNotFound indicates that the endorsed skill is not on the profile.
	ErrSkillNotFound = errors.New("skill not found")

	// ErrRecommendationNotFound indicates that the liked recommendation does not exist.
	ErrRecommendationNotFound = errors.New("recommendation not found")
)

// Catalog holds display content per player ID. Players without curated
// content get a copy of the default set on first access, so endorsements and
// likes still accumulate per player.
//
// The content is deliberately not part of the User entity: it is keyed
// lookup data owned by the display layer, matching how the client treats it.
type Catalog struct {
	mu      sync.Mutex
	entries map[string]*Display
}

// NewCatalog creates a Catalog with the given initial per-player content.
// Seed may be nil.
func NewCatalog(seed map[string]*Display) *Catalog {
	entries := make(map[string]*Display, len(seed))
	for id, d := range seed {
		entries[id] = d
	}
	return &Catalog{entries: entries}
}

// entry returns the live display record for userID, materializing a copy of
// the default set when none exists. Caller must hold c.mu.
func (c *Catalog) entry(userID string) *Display {
	if d, ok := c.entries[userID]; ok {
		return d
	}

	d := defaultDisplay()
	c.entries[userID] = d
	return d
}

// For returns a copy of the display content for userID.
func (c *Catalog) For(userID string) Display {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := c.entry(userID)
	return Display{
		Abilities:       append([]Ability(nil), d.Abilities...),
		Skills:          append([]Skill(nil), d.Skills...),
		Strategies:      append([]Strategy(nil), d.Strategies...),
		Clubs:           append([]Club(nil), d.Clubs...),
		Recommendations: append([]Recommendation(nil), d.Recommendations...),
	}
}

// EndorseSkill increments the endorsement counter of the named skill on the
// player's profile and returns the new count.
func (c *Catalog) EndorseSkill(userID, skillName string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := c.entry(userID)
	for i := range d.Skills {
		if d.Skills[i].Name == skillName {
			d.Skills[i].Endorsements++
			return d.Skills[i].Endorsements, nil
		}
	}

	return 0, ErrSkillNotFound
}

// LikeRecommendation increments the like counter of the identified
// recommendation and returns the new count.
func (c *Catalog) LikeRecommendation(userID, recommendationID string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := c.entry(userID)
	for i := range d.Recommendations {
		if d.Recommendations[i].ID == recommendationID {
			d.Recommendations[i].Likes++
			return d.Recommendations[i].Likes, nil
		}
	}

	return 0, ErrRecommendationNotFound
}

// defaultDisplay returns the content shown for players without curated
// entries. Each call returns a fresh copy so per-player counters stay
// independent.
func defaultDisplay() *Display {
	return &Display{
		Abilities: []Ability{
			{Name: "Potting", Rating: 70},
			{Name: "Safety", Rating: 65},
			{Name: "Break Building", Rating: 60},
			{Name: "Positioning", Rating: 68},
			{Name: "Temperament", Rating: 72},
		},
		Skills: []Skill{
			{Name: "Long Potting", Level: "Intermediate", Endorsements: 12},
			{Name: "Rest Play", Level: "Intermediate", Endorsements: 7},
			{Name: "Screw Shots", Level: "Advanced", Endorsements: 19},
		},
		Strategies: []Strategy{
			{Title: "Play the percentages", Description: "Take the high-value pot only when the return safety is covered."},
			{Title: "Control the baulk", Description: "Keep the cue ball behind the baulk line when the reds are unfavourable."},
		},
		Clubs: []Club{
			{ID: "club-crucible", Name: "Crucible Social", Location: "Sheffield, UK", Members: 184, Role: "Member"},
		},
		Recommendations: []Recommendation{
			{ID: "rec-1", Author: "League secretary", Text: "Reliable match player, always on time.", Rating: 5, Likes: 3},
		},
	}
}
