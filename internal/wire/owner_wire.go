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

func wireOwner(
	r chi.Router,
	ownerHandler *adaptor.OwnerHandler,
	repo *repository.Repository,
	tokens *utils.TokenManager,
	log *zap.Logger,
) {
	r.Route("/api/store-owner", func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleStoreOwner))

		r.Get("/dashboard", ownerHandler.Dashboard)
		r.Get("/stores/{storeId}/ratings", ownerHandler.StoreRatings)
		r.Get("/raters", ownerHandler.Raters)
	})
}
