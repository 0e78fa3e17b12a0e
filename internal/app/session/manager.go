package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"snookerhub/internal/app/directory"
	"snookerhub/internal/pkg/auth/jwt"
	"snookerhub/internal/pkg/logx"
	"snookerhub/internal/pkg/randx"
)

// User-facing messages surfaced through the session error field.
const (
	msgInvalidCredentials = "Invalid credentials"
	msgEmailInUse         = "Email already in use"
	msgUsernameTaken      = "Username already taken"
	msgLoginFailed        = "Login failed. Please try again."
	msgSignupFailed       = "Signup failed. Please try again."
	msgUpdateFailed       = "Failed to update profile"
	msgAvatarFailed       = "Failed to update avatar"
)

// SignupParams carries the fields of a new account request.
// Username and Location are optional.
type SignupParams struct {
	Name     string
	Email    string
	Password string
	Username string
	Location string
}

// Manager is the single source of truth for "who is logged in".
// It owns one mutable Session, resolves accounts through a UserDirectory,
// and persists a snapshot through a Repository after every mutation.
//
// All methods are safe for concurrent use; a mutex serializes mutations the
// way the event loop did in the original client.
type Manager struct {
	mu      sync.Mutex
	session Session

	dir    directory.UserDirectory
	repo   Repository
	secret string
	logger zerolog.Logger
}

// NewManager creates a session Manager over the given directory and
// repository. The secret signs identity tokens.
func NewManager(dir directory.UserDirectory, repo Repository, secret string) *Manager {
	return &Manager{
		dir:    dir,
		repo:   repo,
		secret: secret,
		logger: logx.Logger().With().Str("component", "SessionManager").Logger(),
	}
}

// Session returns a copy of the current session state. The embedded user
// record is cloned, so callers cannot mutate manager-owned state.
func (m *Manager) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session
	s.User = s.User.Clone()
	return s
}

// CheckAuth rehydrates the session from the persisted snapshot.
// A stored token is re-validated and its player record re-resolved against
// the directory; any failure converges to a cleared, unauthenticated session.
// CheckAuth never returns an error to the caller.
func (m *Manager) CheckAuth(ctx context.Context) {
	m.mu.Lock()
	m.session.IsLoading = true
	m.mu.Unlock()

	snap, err := m.repo.Load(ctx)
	if err != nil {
		m.logger.Warn().Err(err).Msg("Failed to load persisted session, clearing auth state.")
		m.reset(ctx)
		return
	}

	if snap == nil || snap.Token == "" {
		m.reset(ctx)
		return
	}

	payload, err := jwt.ParseToken(snap.Token, m.secret)
	if err != nil {
		m.logger.Warn().Err(err).Msg("Persisted token failed validation, clearing auth state.")
		m.reset(ctx)
		return
	}

	user, err := m.dir.FindByID(ctx, payload.ID)
	if err != nil {
		m.logger.Warn().Err(err).Str("user_id", payload.ID).Msg("Persisted token no longer resolves, clearing auth state.")
		m.reset(ctx)
		return
	}

	m.mu.Lock()
	m.session = Session{
		User:            user,
		Token:           snap.Token,
		IsAuthenticated: true,
	}
	m.mu.Unlock()
}

// Login resolves a player by email and username and, on success, issues an
// identity token, persists it, and marks the session authenticated.
// A failed login leaves an unauthenticated session with the error field set;
// it is not returned as an error, mirroring how the UI layer consumes it.
//
// The password is verified only when the directory record carries a
// credential hash. Fixture accounts carry none and accept any password.
func (m *Manager) Login(ctx context.Context, email, password, username string) {
	m.begin()

	user, err := m.dir.FindByCredentials(ctx, email, username)
	if errors.Is(err, directory.ErrNotFound) {
		m.failUnauthenticated(msgInvalidCredentials)
		return
	}
	if err != nil {
		m.logger.Error().Err(err).Msg("Directory lookup failed during login.")
		m.failUnauthenticated(msgLoginFailed)
		return
	}

	if user.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			m.failUnauthenticated(msgInvalidCredentials)
			return
		}
	}

	token, err := jwt.GenerateToken(&jwt.Payload{
		ID:       user.ID,
		Username: user.Username,
		Avatar:   user.Avatar,
	}, m.secret, jwt.SessionExpiration)
	if err != nil {
		m.logger.Error().Err(err).Msg("Token generation failed during login.")
		m.failUnauthenticated(msgLoginFailed)
		return
	}

	user.IsOnline = true
	user.LastActiveAt = time.Now()

	m.mu.Lock()
	m.session = Session{
		User:            user,
		Token:           token,
		IsAuthenticated: true,
	}
	snap := Snapshot{User: user, Token: token, IsAuthenticated: true}
	m.mu.Unlock()

	if err := m.repo.Save(ctx, snap); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to persist session after login.")
	}
}

// Signup registers a new account. It fails on an email or username conflict
// and does not authenticate the caller; a subsequent Login is required.
// Failures are recorded in the session error field AND returned, so the
// initiating view can branch on them.
func (m *Manager) Signup(ctx context.Context, params SignupParams) error {
	m.begin()

	if _, err := m.dir.FindByEmail(ctx, params.Email); err == nil {
		return m.failSignup(msgEmailInUse, directory.ErrEmailExists)
	} else if !errors.Is(err, directory.ErrNotFound) {
		m.logger.Error().Err(err).Msg("Directory lookup failed during signup.")
		return m.failSignup(msgSignupFailed, err)
	}

	if params.Username != "" {
		if _, err := m.dir.FindByUsername(ctx, params.Username); err == nil {
			return m.failSignup(msgUsernameTaken, directory.ErrUsernameExists)
		} else if !errors.Is(err, directory.ErrNotFound) {
			m.logger.Error().Err(err).Msg("Directory lookup failed during signup.")
			return m.failSignup(msgSignupFailed, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return m.failSignup(msgSignupFailed, err)
	}

	now := time.Now()
	user := &directory.User{
		ID:           randx.UserID(),
		Name:         params.Name,
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: string(hash),
		Avatar:       "avatars/default.png",
		Bio:          "New to SnookerHub.",
		Location:     params.Location,
		Stats:        directory.Stats{SkillLevel: "Beginner"},
		LastActiveAt: now,
		CreatedAt:    now,
	}

	if err := m.dir.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, directory.ErrEmailExists):
			return m.failSignup(msgEmailInUse, err)
		case errors.Is(err, directory.ErrUsernameExists):
			return m.failSignup(msgUsernameTaken, err)
		default:
			m.logger.Error().Err(err).Msg("Failed to create account.")
			return m.failSignup(msgSignupFailed, err)
		}
	}

	m.mu.Lock()
	m.session.IsLoading = false
	m.mu.Unlock()

	return nil
}

// Logout clears the persisted token and the in-memory session
// unconditionally. A failing repository never leaves the client in an
// authenticated-looking state.
func (m *Manager) Logout(ctx context.Context) {
	m.reset(ctx)
}

// UpdateProfile merges a partial field set into the current player record
// and persists the result. Without an authenticated user it is a no-op: the
// session user stays nil and no error is raised.
func (m *Manager) UpdateProfile(ctx context.Context, upd directory.Update) {
	m.mu.Lock()
	if m.session.User == nil {
		m.mu.Unlock()
		return
	}
	updated := m.session.User.Clone()
	m.mu.Unlock()

	upd.Apply(updated)

	if err := m.dir.Update(ctx, updated); err != nil {
		m.logger.Error().Err(err).Str("user_id", updated.ID).Msg("Failed to update profile.")
		m.setError(msgUpdateFailed)
		return
	}

	m.mu.Lock()
	m.session.User = updated
	m.session.Error = ""
	snap := Snapshot{User: updated, Token: m.session.Token, IsAuthenticated: m.session.IsAuthenticated}
	m.mu.Unlock()

	if err := m.repo.Save(ctx, snap); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to persist session after profile update.")
	}
}

// UploadAvatar sets the avatar reference of the current player (a storage
// object key or URL) and persists it. Without an authenticated user it is a
// no-op.
func (m *Manager) UploadAvatar(ctx context.Context, ref string) {
	m.UpdateProfileAvatar(ctx, ref)
}

// UpdateProfileAvatar applies the avatar reference through the regular
// profile-update path.
func (m *Manager) UpdateProfileAvatar(ctx context.Context, ref string) {
	m.mu.Lock()
	hasUser := m.session.User != nil
	m.mu.Unlock()

	if !hasUser {
		return
	}

	m.UpdateProfile(ctx, directory.Update{Avatar: &ref})

	m.mu.Lock()
	if m.session.Error == msgUpdateFailed {
		m.session.Error = msgAvatarFailed
	}
	m.mu.Unlock()
}

// ClearError resets the error field. No other session field is touched.
func (m *Manager) ClearError() {
	m.mu.Lock()
	m.session.Error = ""
	m.mu.Unlock()
}

// begin marks the start of an asynchronous operation.
func (m *Manager) begin() {
	m.mu.Lock()
	m.session.IsLoading = true
	m.session.Error = ""
	m.mu.Unlock()
}

// setError records a user-facing failure message and clears the loading flag.
func (m *Manager) setError(msg string) {
	m.mu.Lock()
	m.session.Error = msg
	m.session.IsLoading = false
	m.mu.Unlock()
}

// failUnauthenticated records a failure and leaves the session cleared.
func (m *Manager) failUnauthenticated(msg string) {
	m.mu.Lock()
	m.session = Session{Error: msg}
	m.mu.Unlock()
}

// failSignup records a signup failure without touching user or token state,
// and returns the underlying error for the caller to branch on.
func (m *Manager) failSignup(msg string, err error) error {
	m.mu.Lock()
	m.session.Error = msg
	m.session.IsLoading = false
	m.mu.Unlock()
	return err
}

// reset clears persisted and in-memory session state. Repository failures
// are logged and otherwise ignored.
func (m *Manager) reset(ctx context.Context) {
	if err := m.repo.Clear(ctx); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to clear persisted session.")
	}

	m.mu.Lock()
	m.session = Session{}
	m.mu.Unlock()
}
