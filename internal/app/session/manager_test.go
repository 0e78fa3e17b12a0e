package session

import (
	"context"
	"testing"

	"snookerhub/internal/app/directory"
	"snookerhub/internal/pkg/auth/jwt"
)

const testSecret = "test_secret_key"

func newTestManager(t *testing.T) (*Manager, *MemoryRepoProbe, directory.UserDirectory) {
	t.Helper()

	dir := directory.NewMemoryDirectory(directory.FixtureUsers())
	repo, err := NewFileRepository(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileRepository() failed: %v", err)
	}

	probe := &MemoryRepoProbe{Repository: repo}
	return NewManager(dir, probe, testSecret), probe, dir
}

// MemoryRepoProbe wraps a Repository and records whether a snapshot is stored.
type MemoryRepoProbe struct {
	Repository
}

func (p *MemoryRepoProbe) HasSnapshot(t *testing.T) bool {
	t.Helper()

	snap, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return snap != nil
}

func TestLoginSuccess(t *testing.T) {
	mgr, probe, _ := newTestManager(t)
	ctx := context.Background()

	mgr.Login(ctx, "sarah@example.com", "x", "sarah_j")

	sess := mgr.Session()
	if !sess.IsAuthenticated {
		t.Fatalf("expected authenticated session, got error %q", sess.Error)
	}
	if sess.User == nil || sess.User.ID != "2" {
		t.Fatalf("expected user id 2, got %+v", sess.User)
	}
	if sess.Token == "" {
		t.Fatal("expected a non-empty token")
	}
	if sess.Error != "" {
		t.Fatalf("expected no error, got %q", sess.Error)
	}
	if !probe.HasSnapshot(t) {
		t.Fatal("expected session snapshot to be persisted after login")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		username string
	}{
		{"unknown email", "nobody@example.com", "sarah_j"},
		{"wrong username", "sarah@example.com", "marcus_147"},
		{"both wrong", "nobody@example.com", "nobody"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mgr.Login(ctx, tc.email, "pw", tc.username)

			sess := mgr.Session()
			if sess.IsAuthenticated {
				t.Fatal("expected unauthenticated session")
			}
			if sess.User != nil {
				t.Fatalf("expected nil user, got %+v", sess.User)
			}
			if sess.Error != "Invalid credentials" {
				t.Fatalf("expected error %q, got %q", "Invalid credentials", sess.Error)
			}
		})
	}
}

func TestLoginVerifiesPasswordWhenHashPresent(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	ctx := context.Background()

	err := mgr.Signup(ctx, SignupParams{
		Name:     "New Player",
		Email:    "new@example.com",
		Password: "secret99",
		Username: "new_player",
	})
	if err != nil {
		t.Fatalf("Signup() failed: %v", err)
	}

	mgr.Login(ctx, "new@example.com", "wrong", "new_player")
	if sess := mgr.Session(); sess.IsAuthenticated || sess.Error != "Invalid credentials" {
		t.Fatalf("expected credential rejection, got %+v", sess)
	}

	mgr.Login(ctx, "new@example.com", "secret99", "new_player")
	if sess := mgr.Session(); !sess.IsAuthenticated {
		t.Fatalf("expected login to succeed with correct password, got error %q", sess.Error)
	}
}

func TestSignupDoesNotAuthenticate(t *testing.T) {
	mgr, probe, dir := newTestManager(t)
	ctx := context.Background()

	err := mgr.Signup(ctx, SignupParams{
		Name:     "New Player",
		Email:    "new@example.com",
		Password: "pw12345",
	})
	if err != nil {
		t.Fatalf("Signup() failed: %v", err)
	}

	sess := mgr.Session()
	if sess.IsLoading {
		t.Fatal("expected loading flag to clear after signup")
	}
	if sess.User != nil || sess.IsAuthenticated || sess.Token != "" {
		t.Fatalf("signup must not authenticate, got %+v", sess)
	}
	if probe.HasSnapshot(t) {
		t.Fatal("signup must not persist a session snapshot")
	}

	created, err := dir.FindByEmail(ctx, "new@example.com")
	if err != nil {
		t.Fatalf("expected account to exist after signup: %v", err)
	}
	if created.Stats.GamesPlayed != 0 || created.Stats.TotalPoints != 0 {
		t.Fatalf("expected zeroed statistics, got %+v", created.Stats)
	}
	if created.Stats.SkillLevel != "Beginner" {
		t.Fatalf("expected Beginner skill level, got %q", created.Stats.SkillLevel)
	}
}

func TestSignupEmailConflict(t *testing.T) {
	mgr, _, dir := newTestManager(t)
	ctx := context.Background()

	err := mgr.Signup(ctx, SignupParams{
		Name:     "Imposter",
		Email:    "sarah@example.com",
		Password: "pw12345",
		Username: "imposter",
	})
	if err == nil {
		t.Fatal("expected signup to fail on duplicate email")
	}

	if sess := mgr.Session(); sess.Error != "Email already in use" {
		t.Fatalf("expected error %q, got %q", "Email already in use", sess.Error)
	}

	// The directory must be unchanged.
	if _, err := dir.FindByUsername(ctx, "imposter"); err == nil {
		t.Fatal("conflicting signup must not create an account")
	}
}

func TestSignupUsernameConflict(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	ctx := context.Background()

	err := mgr.Signup(ctx, SignupParams{
		Name:     "Imposter",
		Email:    "unused@example.com",
		Password: "pw12345",
		Username: "sarah_j",
	})
	if err == nil {
		t.Fatal("expected signup to fail on duplicate username")
	}

	if sess := mgr.Session(); sess.Error != "Username already taken" {
		t.Fatalf("expected error %q, got %q", "Username already taken", sess.Error)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	mgr, probe, _ := newTestManager(t)
	ctx := context.Background()

	mgr.Login(ctx, "sarah@example.com", "x", "sarah_j")
	if !mgr.Session().IsAuthenticated {
		t.Fatal("login precondition failed")
	}

	mgr.Logout(ctx)

	sess := mgr.Session()
	if sess.User != nil || sess.Token != "" || sess.IsAuthenticated {
		t.Fatalf("expected fully cleared session, got %+v", sess)
	}
	if probe.HasSnapshot(t) {
		t.Fatal("expected persisted snapshot to be removed on logout")
	}
}

func TestLogoutWithoutLogin(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	// Must not panic or error regardless of prior state.
	mgr.Logout(context.Background())

	if sess := mgr.Session(); sess.IsAuthenticated {
		t.Fatal("expected unauthenticated session")
	}
}

func TestUpdateProfileMergesPartial(t *testing.T) {
	mgr, _, dir := newTestManager(t)
	ctx := context.Background()

	mgr.Login(ctx, "sarah@example.com", "x", "sarah_j")
	before := mgr.Session().User

	bio := "Rewritten bio."
	location := "York, UK"
	mgr.UpdateProfile(ctx, directory.Update{Bio: &bio, Location: &location})

	after := mgr.Session().User
	if after.Bio != bio || after.Location != location {
		t.Fatalf("expected updated fields, got bio=%q location=%q", after.Bio, after.Location)
	}
	if after.Name != before.Name || after.Email != before.Email || after.Username != before.Username {
		t.Fatal("fields outside the partial must be untouched")
	}

	// The directory record is updated too.
	stored, err := dir.FindByID(ctx, "2")
	if err != nil {
		t.Fatalf("FindByID() failed: %v", err)
	}
	if stored.Bio != bio {
		t.Fatalf("expected directory record to carry new bio, got %q", stored.Bio)
	}
}

func TestUpdateProfileUnauthenticatedIsNoop(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	bio := "should not apply"
	mgr.UpdateProfile(context.Background(), directory.Update{Bio: &bio})

	if sess := mgr.Session(); sess.User != nil {
		t.Fatalf("expected nil user, got %+v", sess.User)
	}
}

func TestUploadAvatar(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	ctx := context.Background()

	mgr.Login(ctx, "sarah@example.com", "x", "sarah_j")
	mgr.UploadAvatar(ctx, "avatars/new-photo.png")

	if got := mgr.Session().User.Avatar; got != "avatars/new-photo.png" {
		t.Fatalf("expected avatar reference to be set, got %q", got)
	}

	// Without a user it is a no-op.
	mgr.Logout(ctx)
	mgr.UploadAvatar(ctx, "avatars/other.png")
	if sess := mgr.Session(); sess.User != nil || sess.Error != "" {
		t.Fatalf("expected silent no-op, got %+v", sess)
	}
}

func TestCheckAuthRoundTrip(t *testing.T) {
	dir := directory.NewMemoryDirectory(directory.FixtureUsers())
	repo, err := NewFileRepository(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileRepository() failed: %v", err)
	}
	ctx := context.Background()

	first := NewManager(dir, repo, testSecret)
	first.Login(ctx, "sarah@example.com", "x", "sarah_j")
	if !first.Session().IsAuthenticated {
		t.Fatal("login precondition failed")
	}

	// A fresh manager over the same repository stands in for a process restart.
	second := NewManager(dir, repo, testSecret)
	second.CheckAuth(ctx)

	sess := second.Session()
	if !sess.IsAuthenticated {
		t.Fatal("expected rehydrated session to be authenticated")
	}
	if sess.User == nil || sess.User.ID != "2" {
		t.Fatalf("expected rehydrated user id 2, got %+v", sess.User)
	}
}

func TestCheckAuthWithoutSnapshot(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	mgr.CheckAuth(context.Background())

	if sess := mgr.Session(); sess.IsAuthenticated || sess.IsLoading {
		t.Fatalf("expected cleared session, got %+v", sess)
	}
}

func TestCheckAuthClearsWhenUserGone(t *testing.T) {
	mgr, probe, _ := newTestManager(t)
	ctx := context.Background()

	// A token for an account the directory no longer knows.
	token, err := jwt.GenerateToken(&jwt.Payload{ID: "999"}, testSecret, jwt.SessionExpiration)
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}
	if err := probe.Save(ctx, Snapshot{Token: token, IsAuthenticated: true}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	mgr.CheckAuth(ctx)

	if sess := mgr.Session(); sess.IsAuthenticated || sess.User != nil {
		t.Fatalf("expected cleared session, got %+v", sess)
	}
	if probe.HasSnapshot(t) {
		t.Fatal("expected stale snapshot to be removed")
	}
}

func TestCheckAuthRejectsForgedToken(t *testing.T) {
	mgr, probe, _ := newTestManager(t)
	ctx := context.Background()

	token, err := jwt.GenerateToken(&jwt.Payload{ID: "2"}, "some_other_secret", jwt.SessionExpiration)
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}
	if err := probe.Save(ctx, Snapshot{Token: token, IsAuthenticated: true}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	mgr.CheckAuth(ctx)

	if sess := mgr.Session(); sess.IsAuthenticated {
		t.Fatal("expected forged token to be rejected")
	}
}

func TestClearError(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	ctx := context.Background()

	mgr.Login(ctx, "nobody@example.com", "pw", "nobody")
	if mgr.Session().Error == "" {
		t.Fatal("expected an error to be recorded")
	}

	mgr.ClearError()
	if got := mgr.Session().Error; got != "" {
		t.Fatalf("expected cleared error, got %q", got)
	}
}
