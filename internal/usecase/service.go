package usecase

import (
	"store-rating/internal/data/repository"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	Store StoreService
	Admin AdminService
	Owner OwnerService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	tokens := utils.NewTokenManager(config.JWT)

	return &Service{
		Auth:  NewAuthService(repo, tokens, log),
		Store: NewStoreService(repo, log),
		Admin: NewAdminService(repo, log),
		Owner: NewOwnerService(repo, log),
	}
}
