package session_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/telvana/tsr-tracker/modules/core/domain/entities/session"
)

func TestIsExpired(t *testing.T) {
	s := &session.Session{
		Token:     "token",
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	assert.False(t, s.IsExpired())

	s.ExpiresAt = time.Now().Add(-time.Minute)
	assert.True(t, s.IsExpired())
}

func TestCreateDTO_ToEntity(t *testing.T) {
	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)
	dto := &session.CreateDTO{
		Token:     "token",
		UserID:    userID,
		IP:        "127.0.0.1",
		UserAgent: "test-agent",
		ExpiresAt: expiresAt,
	}
	s := dto.ToEntity()
	assert.Equal(t, "token", s.Token)
	assert.Equal(t, userID, s.UserID)
	assert.Equal(t, "127.0.0.1", s.IP)
	assert.Equal(t, "test-agent", s.UserAgent)
	assert.Equal(t, expiresAt, s.ExpiresAt)
}
