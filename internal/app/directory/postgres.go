package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, username, email, password_hash, avatar, bio, location,
	win_rate, highest_break, average_break, pot_success_rate, games_played,
	total_points, skill_level, last_active_at, created_at`

// PostgresDirectory is the production UserDirectory backed by PostgreSQL.
type PostgresDirectory struct {
	pool *pgxpool.Pool
}

// NewPostgresDirectory wraps the given connection pool as a UserDirectory.
func NewPostgresDirectory(pool *pgxpool.Pool) *PostgresDirectory {
	return &PostgresDirectory{pool: pool}
}

// scanUser reads one user row plus its connection set.
func (d *PostgresDirectory) scanUser(ctx context.Context, row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Name, &u.Username, &u.Email, &u.PasswordHash, &u.Avatar,
		&u.Bio, &u.Location,
		&u.Stats.WinRate, &u.Stats.HighestBreak, &u.Stats.AverageBreak,
		&u.Stats.PotSuccessRate, &u.Stats.GamesPlayed, &u.Stats.TotalPoints,
		&u.Stats.SkillLevel,
		&u.LastActiveAt, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}

	rows, err := d.pool.Query(ctx, `SELECT other_id FROM connections WHERE user_id = $1`, u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query connections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan connection row: %w", err)
		}
		u.Connections = append(u.Connections, id)
	}

	return &u, rows.Err()
}

// FindByID returns the user with the given ID, or ErrNotFound.
func (d *PostgresDirectory) FindByID(ctx context.Context, id string) (*User, error) {
	row := d.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return d.scanUser(ctx, row)
}

// FindByEmail returns the user with the given email, or ErrNotFound.
func (d *PostgresDirectory) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := d.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	return d.scanUser(ctx, row)
}

// FindByUsername returns the user with the given username, or ErrNotFound.
func (d *PostgresDirectory) FindByUsername(ctx context.Context, username string) (*User, error) {
	row := d.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return d.scanUser(ctx, row)
}

// FindByCredentials returns the user matching both email and username, or ErrNotFound.
func (d *PostgresDirectory) FindByCredentials(ctx context.Context, email, username string) (*User, error) {
	row := d.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1) AND username = $2`,
		email, username)
	return d.scanUser(ctx, row)
}

// Create inserts a new user record, enforcing email and username uniqueness.
func (d *PostgresDirectory) Create(ctx context.Context, u *User) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO users (
			id, name, username, email, password_hash, avatar, bio, location,
			win_rate, highest_break, average_break, pot_success_rate,
			games_played, total_points, skill_level, last_active_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		u.ID, u.Name, u.Username, u.Email, u.PasswordHash, u.Avatar, u.Bio, u.Location,
		u.Stats.WinRate, u.Stats.HighestBreak, u.Stats.AverageBreak, u.Stats.PotSuccessRate,
		u.Stats.GamesPlayed, u.Stats.TotalPoints, u.Stats.SkillLevel,
		u.LastActiveAt, u.CreatedAt,
	)

	if constraint, ok := isUniqueViolation(err); ok {
		if strings.Contains(constraint, "email") {
			return ErrEmailExists
		}
		return ErrUsernameExists
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// Update replaces the stored profile fields for u.ID.
func (d *PostgresDirectory) Update(ctx context.Context, u *User) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE users SET
			name = $2, username = $3, email = $4, password_hash = $5,
			avatar = $6, bio = $7, location = $8,
			win_rate = $9, highest_break = $10, average_break = $11,
			pot_success_rate = $12, games_played = $13, total_points = $14,
			skill_level = $15, last_active_at = $16
		WHERE id = $1`,
		u.ID, u.Name, u.Username, u.Email, u.PasswordHash,
		u.Avatar, u.Bio, u.Location,
		u.Stats.WinRate, u.Stats.HighestBreak, u.Stats.AverageBreak,
		u.Stats.PotSuccessRate, u.Stats.GamesPlayed, u.Stats.TotalPoints,
		u.Stats.SkillLevel, u.LastActiveAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Connect adds otherID to the connection set of userID.
func (d *PostgresDirectory) Connect(ctx context.Context, userID, otherID string) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO connections (user_id, other_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		userID, otherID,
	)
	if isForeignKeyViolation(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to insert connection: %w", err)
	}
	return nil
}

// Disconnect removes otherID from the connection set of userID.
func (d *PostgresDirectory) Disconnect(ctx context.Context, userID, otherID string) error {
	_, err := d.pool.Exec(ctx, `
		DELETE FROM connections WHERE user_id = $1 AND other_id = $2`,
		userID, otherID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete connection: %w", err)
	}
	return nil
}
