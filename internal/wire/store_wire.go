package wire

import (
	"store-rating/internal/adaptor"
	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/pkg/middleware"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStore(
	r chi.Router,
	storeHandler *adaptor.StoreHandler,
	repo *repository.Repository,
	tokens *utils.TokenManager,
	log *zap.Logger,
) {
	r.Route("/api/stores", func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, repo.User, log))

		// Browsing and rating belongs to normal users; admins may do both
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(log, entity.RoleNormalUser, entity.RoleAdmin))

			r.Get("/", storeHandler.ListStores)
			r.Post("/ratings", storeHandler.SubmitRating)
			r.Get("/ratings", storeHandler.RatingHistory)
		})

		// Store creation is for owners and admins
		r.With(middleware.RequireRole(log, entity.RoleStoreOwner, entity.RoleAdmin)).
			Post("/", storeHandler.CreateStore)
	})
}
