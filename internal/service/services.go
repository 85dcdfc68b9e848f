package service

import (
	"github.com/farhan7479/taskflow/internal/config"
	"github.com/farhan7479/taskflow/internal/repository"
)

type Services struct {
	Token *TokenService
	Auth  *AuthService
	Task  *TaskService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	tokens := NewTokenService(cfg)
	return &Services{
		Token: tokens,
		Auth:  NewAuthService(repos.User, tokens),
		Task:  NewTaskService(repos.Task),
	}
}
