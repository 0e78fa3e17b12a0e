/*
Package directory defines the player directory: the User record and the
UserDirectory capability used for lookups during authentication and profile
resolution.

It ships an in-memory implementation backed by fixture data and a
Postgres-backed implementation for production, selected by the composition
root.
*/
package directory

import "time"

// Stats holds the aggregate performance figures shown on a player profile.
type Stats struct {
	// WinRate is the fraction of matches won, in percent (0-100).
	WinRate float64 `json:"winRate"`

	// HighestBreak is the player's best single-visit score.
	HighestBreak int `json:"highestBreak"`

	// AverageBreak is the mean break across recorded matches.
	AverageBreak float64 `json:"averageBreak"`

	// PotSuccessRate is the fraction of attempted pots made, in percent (0-100).
	PotSuccessRate float64 `json:"potSuccessRate"`

	// GamesPlayed counts all recorded matches.
	GamesPlayed int `json:"gamesPlayed"`

	// TotalPoints is the cumulative score across all matches.
	TotalPoints int `json:"totalPoints"`

	// SkillLevel is a coarse self-reported tier (e.g., "Beginner", "Advanced", "Professional").
	SkillLevel string `json:"skillLevel"`
}

// User represents a player's identity and profile record.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`

	// PasswordHash holds the bcrypt hash of the account password.
	// Fixture records may leave it empty, in which case the password
	// is not verified at login.
	PasswordHash string `json:"-"`

	// Avatar is a reference to the player's avatar image: either a storage
	// object key or an absolute URL.
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
	Location string `json:"location"`

	Stats Stats `json:"stats"`

	// Connections holds the IDs of players this player is connected with.
	Connections []string `json:"connections"`

	// IsOnline and LastActiveAt carry presence/activity metadata.
	IsOnline     bool      `json:"isOnline"`
	LastActiveAt time.Time `json:"lastActiveAt"`

	CreatedAt time.Time `json:"createdAt"`
}

// IsConnectedTo reports whether other is a member of the player's connection set.
func (u *User) IsConnectedTo(other string) bool {
	for _, id := range u.Connections {
		if id == other {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the user record so callers can mutate it
// without aliasing directory-owned state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	copied := *u
	copied.Connections = append([]string(nil), u.Connections...)
	return &copied
}

// Update describes a partial profile change. Nil fields are left untouched.
type Update struct {
	Name     *string `json:"name,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Location *string `json:"location,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// Apply merges the non-nil fields of the update into the user record.
func (p Update) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
}
