package app

import (
	"errors"
	"testing"
	"time"

	"encheres-api/internal/pkg/jwtutil"
	"encheres-api/internal/pkg/passhash"
)

func newTestAuthService() (*AuthService, *fakeUserStore) {
	users := newFakeUserStore()
	svc := NewAuthService(users, passhash.New(4), jwtutil.NewIssuer("test-secret", time.Hour))
	return svc, users
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService()
	reg, err := svc.Register(RegisterInput{Username: "alice", Email: "Alice@Test.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if reg.Token == "" {
		t.Fatal("expected a token on registration")
	}
	if reg.User.Email != "alice@test.com" {
		t.Fatalf("email not normalized: %q", reg.User.Email)
	}

	login, err := svc.Login(LoginInput{Email: "alice@test.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Fatalf("login returned a different user: %d vs %d", login.User.ID, reg.User.ID)
	}
}

func TestRegister_Duplicates(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService()
	if _, err := svc.Register(RegisterInput{Username: "bob", Email: "bob@test.com", Password: "password123"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := svc.Register(RegisterInput{Username: "bob", Email: "other@test.com", Password: "password123"})
	if !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got: %v", err)
	}

	_, err = svc.Register(RegisterInput{Username: "bobby", Email: "bob@test.com", Password: "password123"})
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got: %v", err)
	}
}

func TestRegister_InvalidInput(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService()
	cases := []RegisterInput{
		{Username: "", Email: "a@test.com", Password: "password123"},
		{Username: "carol", Email: "not-an-email", Password: "password123"},
		{Username: "carol", Email: "carol@test.com", Password: "short"},
	}
	for i, input := range cases {
		if _, err := svc.Register(input); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("case %d: expected ErrInvalidInput, got: %v", i, err)
		}
	}
}

// Wrong password and unknown email must be indistinguishable, so a
// response cannot reveal whether an account exists.
func TestLogin_NoUserExistenceLeak(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService()
	if _, err := svc.Register(RegisterInput{Username: "dave", Email: "dave@test.com", Password: "password123"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, wrongPassword := svc.Login(LoginInput{Email: "dave@test.com", Password: "not-the-password"})
	_, unknownEmail := svc.Login(LoginInput{Email: "nobody@test.com", Password: "password123"})

	if !errors.Is(wrongPassword, ErrInvalidCredential) {
		t.Fatalf("wrong password: expected ErrInvalidCredential, got: %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, ErrInvalidCredential) {
		t.Fatalf("unknown email: expected ErrInvalidCredential, got: %v", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("error messages differ: %q vs %q", wrongPassword.Error(), unknownEmail.Error())
	}
}

func TestLogin_TokenCarriesIdentity(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	issuer := jwtutil.NewIssuer("test-secret", time.Hour)
	svc := NewAuthService(users, passhash.New(4), issuer)

	reg, err := svc.Register(RegisterInput{Username: "eve", Email: "eve@test.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	claims, err := issuer.Verify(reg.Token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != reg.User.ID || claims.Username != "eve" || claims.Email != "eve@test.com" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}
