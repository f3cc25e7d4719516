package wire

import (
	"store-rating/internal/adaptor"
	"store-rating/internal/data/repository"
	"store-rating/pkg/middleware"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	tokens *utils.TokenManager,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// Any authenticated role
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, repo.User, log))

		r.Get("/api/auth/profile", authHandler.Profile)
		r.Put("/api/auth/password", authHandler.UpdatePassword)
	})
}
