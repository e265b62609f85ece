package persistence

import (
	"context"
	"errors"
	"strings"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/telvana/tsr-tracker/modules/core/domain/aggregates/user"
	"github.com/telvana/tsr-tracker/modules/core/infrastructure/persistence/models"
	"github.com/telvana/tsr-tracker/pkg/composables"
)

const (
	selectUserQuery = `
		SELECT id, email, display_name, password_hash, created_at, updated_at
		FROM users
	`
	insertUserQuery = `
		INSERT INTO users (email, display_name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, email, display_name, password_hash, created_at, updated_at
	`
)

type UserRepository struct{}

func NewUserRepository() user.Repository {
	return &UserRepository{}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return r.getOne(ctx, selectUserQuery+" WHERE id = $1", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getOne(ctx, selectUserQuery+" WHERE email = $1", strings.ToLower(strings.TrimSpace(email)))
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return user.User{}, err
	}

	var row models.User
	err = tx.QueryRow(ctx, insertUserQuery,
		u.Email(),
		u.DisplayName(),
		u.PasswordHash(),
	).Scan(
		&row.ID,
		&row.Email,
		&row.DisplayName,
		&row.PasswordHash,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailTaken
		}
		return user.User{}, gerrors.Wrap(err, "create user")
	}
	return toDomainUser(&row)
}

func (r *UserRepository) getOne(ctx context.Context, query string, args ...any) (user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return user.User{}, err
	}

	var row models.User
	err = tx.QueryRow(ctx, query, args...).Scan(
		&row.ID,
		&row.Email,
		&row.DisplayName,
		&row.PasswordHash,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, gerrors.Wrap(err, "get user")
	}
	return toDomainUser(&row)
}
