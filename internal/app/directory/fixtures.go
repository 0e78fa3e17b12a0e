package directory

import "time"

// FixtureUsers returns the static player records used by the in-memory
// directory in development and tests. IDs are stable; test scenarios rely on
// them.
func FixtureUsers() []*User {
	joined := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)

	return []*User{
		{
			ID:       "1",
			Name:     "Marcus Chen",
			Username: "marcus_147",
			Email:    "marcus@example.com",
			Avatar:   "avatars/default.png",
			Bio:      "Left-handed break builder. Always up for a best-of-five.",
			Location: "Manchester, UK",
			Stats: Stats{
				WinRate:        68.4,
				HighestBreak:   112,
				AverageBreak:   34.2,
				PotSuccessRate: 81.0,
				GamesPlayed:    230,
				TotalPoints:    18430,
				SkillLevel:     "Advanced",
			},
			Connections:  []string{"2", "3"},
			LastActiveAt: joined.AddDate(0, 5, 2),
			CreatedAt:    joined,
		},
		{
			ID:       "2",
			Name:     "Sarah Johnson",
			Username: "sarah_j",
			Email:    "sarah@example.com",
			Avatar:   "avatars/default.png",
			Bio:      "Club champion two years running. Safety play is underrated.",
			Location: "Sheffield, UK",
			Stats: Stats{
				WinRate:        74.1,
				HighestBreak:   98,
				AverageBreak:   29.8,
				PotSuccessRate: 85.5,
				GamesPlayed:    312,
				TotalPoints:    22110,
				SkillLevel:     "Advanced",
			},
			Connections:  []string{"1"},
			LastActiveAt: joined.AddDate(0, 6, 18),
			CreatedAt:    joined.AddDate(0, -2, 0),
		},
		{
			ID:       "3",
			Name:     "Dev Patel",
			Username: "dev_cueman",
			Email:    "dev@example.com",
			Avatar:   "avatars/default.png",
			Bio:      "Weekend player, working on my long potting.",
			Location: "Leicester, UK",
			Stats: Stats{
				WinRate:        41.0,
				HighestBreak:   45,
				AverageBreak:   14.6,
				PotSuccessRate: 62.3,
				GamesPlayed:    88,
				TotalPoints:    4010,
				SkillLevel:     "Intermediate",
			},
			Connections:  []string{"1"},
			LastActiveAt: joined.AddDate(0, 4, 9),
			CreatedAt:    joined.AddDate(0, 1, 0),
		},
	}
}
