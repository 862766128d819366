package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/yourorg/pitchpoint/internal/domain"
	"github.com/yourorg/pitchpoint/internal/security/auth"
	"github.com/yourorg/pitchpoint/internal/service"
)

// TestHealthEndpoint verifies health check endpoint
func TestHealthEndpoint(t *testing.T) {
	server := NewTestServer(t)
	defer server.Close()

	resp, err := http.Get(server.URL() + "/healthz")
	if err != nil {
		t.Fatalf("Health check failed: %v", err)
	}
	defer resp.Body.Close()

	AssertStatusCode(t, resp, http.StatusOK)

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "ok" {
		t.Errorf("Expected 'ok', got '%s'", string(body))
	}
}

// TestReadinessEndpoint verifies readiness check endpoint
func TestReadinessEndpoint(t *testing.T) {
	server := NewTestServer(t)
	defer server.Close()

	resp, err := http.Get(server.URL() + "/readyz")
	if err != nil {
		t.Fatalf("Readiness check failed: %v", err)
	}
	defer resp.Body.Close()

	AssertStatusCode(t, resp, http.StatusOK)

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "ready" {
		t.Errorf("Expected 'ready', got '%s'", string(body))
	}
}

// TestMetricsEndpoint verifies Prometheus metrics endpoint
func TestMetricsEndpoint(t *testing.T) {
	server := NewTestServer(t)
	defer server.Close()

	resp, err := http.Get(server.URL() + "/metrics")
	if err != nil {
		t.Fatalf("Metrics endpoint failed: %v", err)
	}
	defer resp.Body.Close()

	AssertStatusCode(t, resp, http.StatusOK)
	AssertContentType(t, resp, "text/plain")

	body, _ := io.ReadAll(resp.Body)
	metrics := string(body)

	if len(metrics) < 1 {
		t.Errorf("Expected metrics data, got empty response")
	}
}

type memUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func (m *memUserRepo) Create(_ context.Context, u *domain.User) error {
	m.seq++
	u.ID = fmt.Sprintf("u-%d", m.seq)
	u.CreatedAt = time.Now()
	m.users[u.Username] = u
	return nil
}

func (m *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, &domain.NotFoundError{Resource: "user"}
}

func (m *memUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	if _, ok := m.users[username]; ok {
		return true, nil
	}
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// TestAuthFlow verifies signup and login over real HTTP
func TestAuthFlow(t *testing.T) {
	server := NewTestServer(t)
	defer server.Close()

	tm := auth.NewTokenManager("test-secret", "pitchpoint")
	authService := service.NewAuthService(&memUserRepo{users: map[string]*domain.User{}}, tm, 4, server.Logger)
	server.AddAuthHandler(authService)

	creds := `{"username":"admin","email":"admin@example.com","password":"Password123"}`
	resp, err := http.Post(server.URL()+"/signup", "application/json", strings.NewReader(creds))
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	defer resp.Body.Close()
	AssertStatusCode(t, resp, http.StatusOK)

	resp, err = http.Post(server.URL()+"/login", "application/json",
		strings.NewReader(`{"username":"admin","password":"Password123"}`))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	defer resp.Body.Close()
	AssertStatusCode(t, resp, http.StatusOK)

	var login struct {
		Success  bool   `json:"success"`
		Username string `json:"username"`
		Token    string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		t.Fatalf("Decode login response: %v", err)
	}
	if !login.Success || login.Username != "admin" || login.Token == "" {
		t.Errorf("Unexpected login response: %+v", login)
	}
}

// TestPitchFlow verifies the full submit/review flow against a live stack
func TestPitchFlow(t *testing.T) {
	t.Skip("Integration test requires Postgres and Redis - use docker-compose up")
}

// TestReservationEmail verifies reservation confirmation delivery
func TestReservationEmail(t *testing.T) {
	t.Skip("Integration test requires an SMTP provider - use docker-compose up")
}
