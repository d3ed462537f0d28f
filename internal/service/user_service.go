package service

import (
	"context"
	"time"

	"github.com/dom/adboard/internal/domain"
	"github.com/dom/adboard/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
}

func NewUserService(userRepo repository.UserRepository, hasher PasswordHasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

type CreateUserInput struct {
	Login    string
	Password string
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Login:        input.Login,
		PasswordHash: hashed,
		CreatedAt:    time.Now(),
	}

	// Duplicate logins surface from the repo as domain.ErrLoginTaken
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UserPatch carries the allow-listed patchable fields; nil means "leave as is".
type UserPatch struct {
	Login    *string
	Password *string
}

func (s *UserService) Update(ctx context.Context, id uint, patch UserPatch) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Login != nil {
		user.Login = *patch.Login
	}
	if patch.Password != nil {
		hashed, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
