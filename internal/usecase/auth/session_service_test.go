package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/johnquangdev/meeting-copilot/internal/domain/entities"
	ucErrors "github.com/johnquangdev/meeting-copilot/internal/usecase/errors"
	"github.com/johnquangdev/meeting-copilot/pkg/jwt"
)

type memoryUsers struct {
	byID map[uuid.UUID]*entities.User
	err  error
}

func newMemoryUsers(users ...*entities.User) *memoryUsers {
	m := &memoryUsers{byID: map[uuid.UUID]*entities.User{}}
	for _, u := range users {
		m.byID[u.ID] = u
	}
	return m
}

func (m *memoryUsers) Create(_ context.Context, user *entities.User) error {
	m.byID[user.ID] = user
	return nil
}

func (m *memoryUsers) FindByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, entities.ErrUserNotFound
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

const testSecret = "test-secret"

func newTestService(t *testing.T, users *memoryUsers) (*SessionService, *jwt.Manager) {
	t.Helper()
	manager := jwt.NewManager(testSecret, time.Minute, "meeting-copilot")
	return NewSessionService(users, manager, zaptest.NewLogger(t)), manager
}

func TestValidateSession_Success(t *testing.T) {
	user := entities.NewUser("ana@example.com", "Ana")
	svc, manager := newTestService(t, newMemoryUsers(user))

	token, err := manager.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)

	principal, err := svc.ValidateSession(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.ID)
	assert.Equal(t, "Ana", principal.Name)
	assert.Equal(t, entities.RoleUser, principal.Role)
}

func TestValidateSession_Failures(t *testing.T) {
	active := entities.NewUser("ana@example.com", "Ana")
	inactive := entities.NewUser("bo@example.com", "Bo")
	inactive.IsActive = false

	svc, manager := newTestService(t, newMemoryUsers(active, inactive))

	sign := func(id uuid.UUID) string {
		token, err := manager.GenerateAccessToken(id, "x@example.com", "user")
		require.NoError(t, err)
		return token
	}
	expired, err := jwt.NewManager(testSecret, -time.Minute, "meeting-copilot").
		GenerateAccessToken(active.ID, active.Email, "user")
	require.NoError(t, err)
	foreign, err := jwt.NewManager("other-secret", time.Minute, "meeting-copilot").
		GenerateAccessToken(active.ID, active.Email, "user")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "empty", token: "  ", want: ucErrors.ErrUnauthorized},
		{name: "garbage", token: "not-a-jwt", want: ucErrors.ErrTokenInvalid},
		{name: "wrong secret", token: foreign, want: ucErrors.ErrTokenInvalid},
		{name: "expired", token: expired, want: ucErrors.ErrTokenExpired},
		{name: "unknown user", token: sign(uuid.New()), want: ucErrors.ErrUserNotFound},
		{name: "inactive user", token: sign(inactive.ID), want: ucErrors.ErrUserNotActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, err := svc.ValidateSession(context.Background(), tt.token)
			assert.Nil(t, principal)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateSession_StoreFailureIsNotAuthError(t *testing.T) {
	user := entities.NewUser("ana@example.com", "Ana")
	users := newMemoryUsers(user)
	svc, manager := newTestService(t, users)

	token, err := manager.GenerateAccessToken(user.ID, user.Email, "user")
	require.NoError(t, err)

	users.err = errors.New("connection reset")
	_, err = svc.ValidateSession(context.Background(), token)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ucErrors.ErrUserNotFound)
	assert.NotErrorIs(t, err, ucErrors.ErrTokenInvalid)
}

func TestIssueToken(t *testing.T) {
	users := newMemoryUsers()
	svc, _ := newTestService(t, users)
	ctx := context.Background()

	issued, err := svc.IssueToken(ctx, " Ana@Example.com ", "")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", issued.User.Email)
	assert.Equal(t, "ana", issued.User.Name)
	assert.Equal(t, int64(60), issued.ExpiresIn)
	assert.Len(t, users.byID, 1)

	principal, err := svc.ValidateSession(ctx, issued.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, issued.User.ID, principal.ID)

	again, err := svc.IssueToken(ctx, "ana@example.com", "Ana")
	require.NoError(t, err)
	assert.Equal(t, issued.User.ID, again.User.ID)
	assert.Len(t, users.byID, 1)

	_, err = svc.IssueToken(ctx, "", "Nobody")
	assert.ErrorIs(t, err, ucErrors.ErrInvalidRequest)
}
