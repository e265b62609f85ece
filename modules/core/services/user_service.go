package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/telvana/tsr-tracker/modules/core/domain/aggregates/user"
	"github.com/telvana/tsr-tracker/pkg/eventbus"
)

type UserService struct {
	repo      user.Repository
	publisher eventbus.EventBus
}

func NewUserService(repo user.Repository, publisher eventbus.EventBus) *UserService {
	return &UserService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *UserService) Create(ctx context.Context, email, displayName, password string) (user.User, error) {
	hash, err := user.HashPassword(password)
	if err != nil {
		return user.User{}, err
	}
	created, err := s.repo.Create(ctx, user.New(email, displayName, hash))
	if err != nil {
		return user.User{}, err
	}
	s.publisher.Publish(created)
	return created, nil
}
