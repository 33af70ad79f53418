package orchestrators

import (
	"context"
	"errors"
	"testing"

	"greenvours/internal/application/accessors"
	"greenvours/internal/domain/account"
)

func authDeps(t *testing.T) AuthDeps {
	t.Helper()
	store := openTestStore(t)
	return AuthDeps{
		Users:      accessors.Users(store),
		Admins:     accessors.Admins(store),
		Now:        fixedNow,
		GenerateID: sequentialIDs(),
	}
}

func TestSignupThenLogin(t *testing.T) {
	deps := authDeps(t)
	ctx := context.Background()

	result, err := ExecuteSignup(ctx, SignupInput{
		Email:       "visitor@example.com",
		Password:    "trailhead8",
		DisplayName: "Visitor",
	}, deps)
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if result.UID == "" || result.Email != "visitor@example.com" {
		t.Fatalf("unexpected signup result: %+v", result)
	}

	login, err := ExecuteLogin(ctx, LoginInput{Email: "visitor@example.com", Password: "trailhead8"}, deps)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.UID != result.UID {
		t.Fatalf("expected uid %q, got %q", result.UID, login.UID)
	}
	if login.IsAdmin {
		t.Fatal("fresh account must not be admin")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	deps := authDeps(t)
	ctx := context.Background()

	input := SignupInput{Email: "visitor@example.com", Password: "trailhead8"}
	if _, err := ExecuteSignup(ctx, input, deps); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := ExecuteSignup(ctx, input, deps); !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestSignupRejectsShortPassword(t *testing.T) {
	deps := authDeps(t)
	_, err := ExecuteSignup(context.Background(), SignupInput{
		Email:    "visitor@example.com",
		Password: "short",
	}, deps)
	if !errors.Is(err, account.ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	deps := authDeps(t)
	ctx := context.Background()

	if _, err := ExecuteSignup(ctx, SignupInput{Email: "visitor@example.com", Password: "trailhead8"}, deps); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, err := ExecuteLogin(ctx, LoginInput{Email: "visitor@example.com", Password: "wrong-pass"}, deps); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := ExecuteLogin(ctx, LoginInput{Email: "nobody@example.com", Password: "trailhead8"}, deps); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestLoginReportsAdmin(t *testing.T) {
	deps := authDeps(t)
	ctx := context.Background()

	result, err := ExecuteSignup(ctx, SignupInput{Email: "admin@example.com", Password: "trailhead8"}, deps)
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if err := deps.Admins.Grant(ctx, result.UID, result.Email); err != nil {
		t.Fatalf("grant: %v", err)
	}

	login, err := ExecuteLogin(ctx, LoginInput{Email: "admin@example.com", Password: "trailhead8"}, deps)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !login.IsAdmin {
		t.Fatal("expected admin flag after grant")
	}
}

func TestGoogleSignInCreatesAccountOnce(t *testing.T) {
	deps := authDeps(t)
	ctx := context.Background()

	input := GoogleSignInInput{Subject: "g-123", Email: "visitor@example.com", Name: "Visitor"}
	first, err := ExecuteGoogleSignIn(ctx, input, deps)
	if err != nil {
		t.Fatalf("google sign-in: %v", err)
	}
	if first.UID != "g-123" {
		t.Fatalf("expected google subject as uid, got %q", first.UID)
	}

	second, err := ExecuteGoogleSignIn(ctx, input, deps)
	if err != nil {
		t.Fatalf("second google sign-in: %v", err)
	}
	if second.UID != first.UID {
		t.Fatalf("expected same uid on repeat sign-in, got %q", second.UID)
	}

	all, err := deps.Users.List(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one account, got %d", len(all))
	}
	if all[0].Provider != account.ProviderGoogle {
		t.Fatalf("expected google provider, got %q", all[0].Provider)
	}
}

func TestGoogleAccountCannotPasswordLogin(t *testing.T) {
	deps := authDeps(t)
	ctx := context.Background()

	if _, err := ExecuteGoogleSignIn(ctx, GoogleSignInInput{Subject: "g-123", Email: "visitor@example.com"}, deps); err != nil {
		t.Fatalf("google sign-in: %v", err)
	}
	if _, err := ExecuteLogin(ctx, LoginInput{Email: "visitor@example.com", Password: "anything8"}, deps); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for google account, got %v", err)
	}
}

func TestSeedAdmin(t *testing.T) {
	deps := authDeps(t)
	ctx := context.Background()

	if err := ExecuteSeedAdmin(ctx, deps, "admin@greenvours.org", "changeme-now"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	login, err := ExecuteLogin(ctx, LoginInput{Email: "admin@greenvours.org", Password: "changeme-now"}, deps)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !login.IsAdmin {
		t.Fatal("seeded account must be admin")
	}

	// Re-seeding must not create a second account.
	if err := ExecuteSeedAdmin(ctx, deps, "admin@greenvours.org", "changeme-now"); err != nil {
		t.Fatalf("repeat seed: %v", err)
	}
	all, _ := deps.Users.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected one account after repeat seed, got %d", len(all))
	}

	// Empty credentials skip silently.
	if err := ExecuteSeedAdmin(ctx, deps, "", ""); err != nil {
		t.Fatalf("empty seed should be a no-op, got %v", err)
	}
}
