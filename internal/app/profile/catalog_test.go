package profile

import (
	"errors"
	"testing"
)

func TestCatalogDefaultsArePerPlayer(t *testing.T) {
	c := NewCatalog(nil)

	before := c.For("a").Skills[0].Endorsements

	count, err := c.EndorseSkill("a", c.For("a").Skills[0].Name)
	if err != nil {
		t.Fatalf("EndorseSkill() failed: %v", err)
	}
	if count != before+1 {
		t.Fatalf("expected %d endorsements, got %d", before+1, count)
	}

	// Player b's copy of the defaults is untouched.
	if got := c.For("b").Skills[0].Endorsements; got != before {
		t.Fatalf("expected independent counters, got %d", got)
	}
}

func TestCatalogSeedOverridesDefaults(t *testing.T) {
	seed := map[string]*Display{
		"2": {
			Skills: []Skill{{Name: "Safety Exchanges", Level: "Advanced", Endorsements: 40}},
			Recommendations: []Recommendation{
				{ID: "rec-sarah-1", Author: "Marcus Chen", Text: "Toughest opponent in the league.", Rating: 5, Likes: 10},
			},
		},
	}
	c := NewCatalog(seed)

	d := c.For("2")
	if len(d.Skills) != 1 || d.Skills[0].Name != "Safety Exchanges" {
		t.Fatalf("expected seeded skills, got %+v", d.Skills)
	}

	likes, err := c.LikeRecommendation("2", "rec-sarah-1")
	if err != nil {
		t.Fatalf("LikeRecommendation() failed: %v", err)
	}
	if likes != 11 {
		t.Fatalf("expected 11 likes, got %d", likes)
	}
}

func TestCatalogMisses(t *testing.T) {
	c := NewCatalog(nil)

	if _, err := c.EndorseSkill("a", "Trick Shots"); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}

	if _, err := c.LikeRecommendation("a", "rec-missing"); !errors.Is(err, ErrRecommendationNotFound) {
		t.Fatalf("expected ErrRecommendationNotFound, got %v", err)
	}
}

func TestCatalogForReturnsCopies(t *testing.T) {
	c := NewCatalog(nil)

	d := c.For("a")
	d.Skills[0].Endorsements = 9999

	if got := c.For("a").Skills[0].Endorsements; got == 9999 {
		t.Fatal("caller mutation leaked into catalog state")
	}
}
