package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-copilot/internal/domain/entities"
	"github.com/johnquangdev/meeting-copilot/internal/domain/repositories"
	ucErrors "github.com/johnquangdev/meeting-copilot/internal/usecase/errors"
	"github.com/johnquangdev/meeting-copilot/pkg/jwt"
)

// SessionService resolves bearer tokens into principals
type SessionService struct {
	userRepo   repositories.UserRepository
	jwtManager *jwt.Manager
	logger     *zap.Logger
}

// NewSessionService creates a new session service
func NewSessionService(userRepo repositories.UserRepository, jwtManager *jwt.Manager, logger *zap.Logger) *SessionService {
	return &SessionService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// IssuedToken is a freshly signed access token
type IssuedToken struct {
	User        *entities.User `json:"user"`
	AccessToken string         `json:"access_token"`
	ExpiresIn   int64          `json:"expires_in"`
}

// ValidateSession validates an access token and returns the principal it identifies
func (s *SessionService) ValidateSession(ctx context.Context, token string) (*entities.Principal, error) {
	if s.userRepo == nil {
		return nil, fmt.Errorf("database not initialized: cannot validate session without DB")
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ucErrors.ErrUnauthorized
	}

	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ucErrors.ErrTokenExpired
		}
		return nil, ucErrors.ErrTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, ucErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !user.IsActive {
		if s.logger != nil {
			s.logger.Warn("🚫 Inactive user presented a valid token", zap.String("user_id", user.ID.String()))
		}
		return nil, ucErrors.ErrUserNotActive
	}

	return user.Principal(), nil
}

// IssueToken signs an access token for email, creating the user on first use.
// It backs the operator "token" command and must not be exposed over HTTP.
func (s *SessionService) IssueToken(ctx context.Context, email, name string) (*IssuedToken, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ucErrors.NewValidationError("email", "is required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, entities.ErrUserNotFound):
		if name = strings.TrimSpace(name); name == "" {
			name = strings.SplitN(email, "@", 2)[0]
		}
		user = entities.NewUser(email, name)
		if err := user.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ucErrors.ErrInvalidInput, err)
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		if s.logger != nil {
			s.logger.Info("👤 Created user", zap.String("user_id", user.ID.String()), zap.String("email", email))
		}
	case err != nil:
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !user.IsActive {
		return nil, ucErrors.ErrUserNotActive
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &IssuedToken{
		User:        user,
		AccessToken: accessToken,
		ExpiresIn:   int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}
