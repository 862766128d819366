package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/yourorg/pitchpoint/internal/domain"
	"github.com/yourorg/pitchpoint/internal/security/auth"
)

type memUserRepo struct {
	byUsername map[string]*domain.User
	byEmail    map[string]*domain.User
	seq        int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byUsername: map[string]*domain.User{}, byEmail: map[string]*domain.User{}}
}

func (m *memUserRepo) Create(_ context.Context, u *domain.User) error {
	m.seq++
	u.ID = fmt.Sprintf("u-%d", m.seq)
	u.CreatedAt = time.Now()
	m.byUsername[u.Username] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := m.byUsername[username]; ok {
		return u, nil
	}
	return nil, &domain.NotFoundError{Resource: "user"}
}

func (m *memUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	_, byU := m.byUsername[username]
	_, byE := m.byEmail[email]
	return byU || byE, nil
}

func newTestAuthService(repo domain.UserRepository) *AuthService {
	tm := auth.NewTokenManager("test-secret", "pitchpoint")
	// Minimum cost keeps the bcrypt work factor out of test runtime
	return NewAuthService(repo, tm, 4, nil)
}

func TestSignupAndLogin(t *testing.T) {
	repo := newMemUserRepo()
	s := newTestAuthService(repo)

	if err := s.Signup(context.Background(), "alice", "alice@example.com", "Password123"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	// Stored hash must not be the plaintext password
	u := repo.byUsername["alice"]
	if u.PasswordHash == "Password123" || u.PasswordHash == "" {
		t.Fatalf("password must be stored as a hash")
	}

	lr, err := s.Login(context.Background(), "alice", "Password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if lr.ID != u.ID || lr.Username != "alice" {
		t.Fatalf("unexpected login identity: %+v", lr)
	}
	if lr.Token == "" {
		t.Fatalf("expected token on login")
	}
}

func TestSignupDuplicate(t *testing.T) {
	repo := newMemUserRepo()
	s := newTestAuthService(repo)

	if err := s.Signup(context.Background(), "bob", "bob@example.com", "Password123"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	err := s.Signup(context.Background(), "bob", "other@example.com", "Password123")
	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict on duplicate username, got %v", err)
	}

	err = s.Signup(context.Background(), "bob2", "bob@example.com", "Password123")
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict on duplicate email, got %v", err)
	}
}

func TestSignupMissingFields(t *testing.T) {
	repo := newMemUserRepo()
	s := newTestAuthService(repo)

	err := s.Signup(context.Background(), "", "x@example.com", "pass")
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "username" {
		t.Fatalf("expected missing username error, got %v", err)
	}

	err = s.Signup(context.Background(), "x", "x@example.com", "")
	if !errors.As(err, &verr) || verr.Field != "password" {
		t.Fatalf("expected missing password error, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMemUserRepo()
	s := newTestAuthService(repo)

	if err := s.Signup(context.Background(), "carol", "carol@example.com", "Password123"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, err := s.Login(context.Background(), "carol", "Wrong")
	var authErr *domain.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected auth error on wrong password, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	repo := newMemUserRepo()
	s := newTestAuthService(repo)

	_, err := s.Login(context.Background(), "nobody", "whatever")
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
