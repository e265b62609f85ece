package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telvana/tsr-tracker/modules/core/domain/aggregates/user"
	"github.com/telvana/tsr-tracker/modules/core/domain/entities/session"
	"github.com/telvana/tsr-tracker/modules/core/services"
)

type userRepoMock struct {
	users map[string]user.User
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range m.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := m.users[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *userRepoMock) Create(ctx context.Context, u user.User) (user.User, error) {
	if m.users == nil {
		m.users = map[string]user.User{}
	}
	m.users[u.Email()] = u
	return u, nil
}

type sessionRepoMock struct {
	sessions map[string]*session.Session
}

func (m *sessionRepoMock) GetByToken(ctx context.Context, token string) (*session.Session, error) {
	sess, ok := m.sessions[token]
	if !ok {
		return nil, session.ErrNotFound
	}
	return sess, nil
}

func (m *sessionRepoMock) Create(ctx context.Context, sess *session.Session) error {
	if m.sessions == nil {
		m.sessions = map[string]*session.Session{}
	}
	m.sessions[sess.Token] = sess
	return nil
}

func (m *sessionRepoMock) Delete(ctx context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

type busStub struct{}

func (busStub) Publish(args ...interface{})     {}
func (busStub) Subscribe(handler interface{})   {}
func (busStub) Unsubscribe(handler interface{}) {}
func (busStub) Clear()                          {}
func (busStub) SubscribersCount() int           { return 0 }

func newAuthService(t *testing.T) (*services.AuthService, *sessionRepoMock) {
	t.Helper()
	hash, err := user.HashPassword("s3cret")
	require.NoError(t, err)
	userRepo := &userRepoMock{
		users: map[string]user.User{
			"engineer@example.com": user.Hydrate(
				uuid.New(),
				"engineer@example.com",
				"Test Engineer",
				hash,
				time.Now(),
				time.Now(),
			),
		},
	}
	sessionRepo := &sessionRepoMock{}
	return services.NewAuthService(
		services.NewUserService(userRepo, busStub{}),
		services.NewSessionService(sessionRepo),
	), sessionRepo
}

func TestAuthenticate(t *testing.T) {
	auth, sessions := newAuthService(t)

	u, sess, err := auth.Authenticate(context.Background(), "engineer@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "engineer@example.com", u.Email())
	require.NotNil(t, sess)
	assert.NotEmpty(t, sess.Token)
	assert.Contains(t, sessions.sessions, sess.Token)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	auth, _ := newAuthService(t)

	_, _, err := auth.Authenticate(context.Background(), "engineer@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	auth, _ := newAuthService(t)

	_, _, err := auth.Authenticate(context.Background(), "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthorize(t *testing.T) {
	auth, sessions := newAuthService(t)

	_, sess, err := auth.Authenticate(context.Background(), "engineer@example.com", "s3cret")
	require.NoError(t, err)

	resolved, err := auth.Authorize(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.Token, resolved.Token)

	sessions.sessions[sess.Token].ExpiresAt = time.Now().Add(-time.Minute)
	_, err = auth.Authorize(context.Background(), sess.Token)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestLogout(t *testing.T) {
	auth, sessions := newAuthService(t)

	_, sess, err := auth.Authenticate(context.Background(), "engineer@example.com", "s3cret")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(context.Background(), sess.Token))
	assert.NotContains(t, sessions.sessions, sess.Token)
}
