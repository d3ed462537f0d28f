package service

import (
	"github.com/dom/adboard/internal/config"
	"github.com/dom/adboard/internal/repository"
)

type Services struct {
	Auth *AuthService
	User *UserService
	Ad   *AdService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	hasher := NewBcryptHasher(cfg.BcryptCost)
	return &Services{
		Auth: NewAuthService(repos.User, repos.Session, hasher, cfg),
		User: NewUserService(repos.User, hasher),
		Ad:   NewAdService(repos.Ad),
	}
}
