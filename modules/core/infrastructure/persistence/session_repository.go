package persistence

import (
	"context"
	"errors"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/telvana/tsr-tracker/modules/core/domain/entities/session"
	"github.com/telvana/tsr-tracker/modules/core/infrastructure/persistence/models"
	"github.com/telvana/tsr-tracker/pkg/composables"
)

type SessionRepository struct{}

func NewSessionRepository() session.Repository {
	return &SessionRepository{}
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*session.Session, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	var row models.Session
	err = tx.QueryRow(ctx, `
		SELECT token, user_id, ip, user_agent, expires_at, created_at
		FROM sessions
		WHERE token = $1
	`, token).Scan(
		&row.Token,
		&row.UserID,
		&row.IP,
		&row.UserAgent,
		&row.ExpiresAt,
		&row.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, session.ErrNotFound
		}
		return nil, gerrors.Wrap(err, "get session")
	}
	return toDomainSession(&row)
}

func (r *SessionRepository) Create(ctx context.Context, sess *session.Session) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO sessions (token, user_id, ip, user_agent, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		sess.Token,
		sess.UserID,
		sess.IP,
		sess.UserAgent,
		sess.ExpiresAt,
		sess.CreatedAt,
	)
	if err != nil {
		return gerrors.Wrap(err, "create session")
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return gerrors.Wrap(err, "delete session")
	}
	return nil
}
