package repository

import (
	"context"

	"github.com/dom/adboard/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type AdRepository interface {
	Create(ctx context.Context, ad *domain.Ad) error
	GetByID(ctx context.Context, id uint) (*domain.Ad, error)
	Update(ctx context.Context, ad *domain.Ad) error
	Delete(ctx context.Context, id uint) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.UserSession) error
	GetByUserID(ctx context.Context, userID uint) (*domain.UserSession, error)
	DeleteByUserID(ctx context.Context, userID uint) error
}

type Repositories struct {
	User    UserRepository
	Ad      AdRepository
	Session SessionRepository
}
