package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/yourorg/pitchpoint/internal/domain"
	"github.com/yourorg/pitchpoint/internal/security/auth"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles signup and login against the Users collection
type AuthService struct {
	userRepo     domain.UserRepository
	tokenManager *auth.TokenManager
	bcryptCost   int
	logger       *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo domain.UserRepository, tokenManager *auth.TokenManager, bcryptCost int, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	if bcryptCost <= 0 {
		bcryptCost = 10
	}

	return &AuthService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		bcryptCost:   bcryptCost,
		logger:       logger,
	}
}

// LoginResult carries the authenticated identity. The password hash is
// never part of any result.
type LoginResult struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Signup creates a new user account with a salted bcrypt hash.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) error {
	if username == "" {
		return domain.NewMissingFieldError("username")
	}
	if email == "" {
		return domain.NewMissingFieldError("email")
	}
	if password == "" {
		return domain.NewMissingFieldError("password")
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return err
	}
	if exists {
		return &domain.ConflictError{Resource: "user", Field: "username or email"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", slog.String("error", err.Error()))
		return err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user signed up",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return nil
}

// Login verifies credentials and returns the identity plus a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" {
		return nil, domain.NewMissingFieldError("username")
	}
	if password == "" {
		return nil, domain.NewMissingFieldError("password")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			s.logger.Info("login attempt for unknown user", slog.String("username", username))
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("login failed with wrong password", slog.String("username", username))
		return nil, &domain.AuthError{Reason: "invalid credentials"}
	}

	token, err := s.tokenManager.GenerateToken(user.ID, user.Username, 24*time.Hour)
	if err != nil {
		s.logger.Error("failed to sign token",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("user logged in",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return &LoginResult{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	}, nil
}
