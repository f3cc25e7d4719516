package adaptor

import (
	"errors"
	"net/http"
	"strconv"

	"store-rating/internal/data/repository"
	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	Store *StoreHandler
	Admin *AdminHandler
	Owner *OwnerHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, log),
		Store: NewStoreHandler(service.Store, log),
		Admin: NewAdminHandler(service.Admin, log),
		Owner: NewOwnerHandler(service.Owner, log),
	}
}

// respondServiceError maps service errors onto the HTTP taxonomy. Anything
// outside the known classes is logged and collapsed to a generic 500 so no
// internal detail leaks.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Any("errors", validationErr.Fields))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrDuplicate):
		log.Warn(operation+" failed - duplicate", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// searchParams pulls the list-endpoint query parameters; values are
// validated downstream against per-endpoint allowlists.
func searchParams(r *http.Request) repository.SearchParams {
	query := r.URL.Query()
	return repository.SearchParams{
		SearchTerm: query.Get("searchTerm"),
		FilterBy:   query.Get("filterBy"),
		SortBy:     query.Get("sortBy"),
		SortOrder:  query.Get("sortOrder"),
	}
}

func parseID(value string) (int64, bool) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
