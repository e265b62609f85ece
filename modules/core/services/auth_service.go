package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/telvana/tsr-tracker/modules/core/domain/aggregates/user"
	"github.com/telvana/tsr-tracker/modules/core/domain/entities/session"
	"github.com/telvana/tsr-tracker/pkg/composables"
	"github.com/telvana/tsr-tracker/pkg/configuration"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	usersService   *UserService
	sessionService *SessionService
}

func NewAuthService(usersService *UserService, sessionService *SessionService) *AuthService {
	return &AuthService{
		usersService:   usersService,
		sessionService: sessionService,
	}
}

// Authenticate verifies email+password and issues a session.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (user.User, *session.Session, error) {
	u, err := s.usersService.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, nil, ErrInvalidCredentials
		}
		return user.User{}, nil, err
	}
	if !u.CheckPassword(password) {
		return user.User{}, nil, ErrInvalidCredentials
	}

	sess, err := s.authenticate(ctx, u)
	if err != nil {
		return user.User{}, nil, err
	}
	return u, sess, nil
}

// CookieAuthenticate authenticates and wraps the session token in the sid
// cookie the Authorize middleware reads back.
func (s *AuthService) CookieAuthenticate(ctx context.Context, email, password string) (*http.Cookie, error) {
	_, sess, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	conf := configuration.Use()
	domain := ""
	if conf.GoAppEnvironment == configuration.Production {
		domain = conf.Domain
	}
	return &http.Cookie{
		Name:     conf.SidCookieKey,
		Value:    sess.Token,
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   conf.GoAppEnvironment == configuration.Production,
		Domain:   domain,
		Path:     "/",
	}, nil
}

// Authorize resolves a session token to a live session.
func (s *AuthService) Authorize(ctx context.Context, token string) (*session.Session, error) {
	sess, err := s.sessionService.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess.IsExpired() {
		return nil, session.ErrNotFound
	}
	return sess, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessionService.Delete(ctx, token)
}

func (s *AuthService) newSessionToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func (s *AuthService) authenticate(ctx context.Context, u user.User) (*session.Session, error) {
	ip, ok := composables.UseIP(ctx)
	if !ok {
		ip = "0.0.0.0"
	}
	userAgent, ok := composables.UseUserAgent(ctx)
	if !ok {
		userAgent = "Unknown"
	}

	token, err := s.newSessionToken()
	if err != nil {
		return nil, err
	}

	return s.sessionService.Create(ctx, &session.CreateDTO{
		Token:     token,
		UserID:    u.ID(),
		IP:        ip,
		UserAgent: userAgent,
		ExpiresAt: time.Now().Add(configuration.Use().SessionDuration),
	})
}
