package adaptor

import (
	"encoding/json"
	"net/http"

	"store-rating/internal/dto/request"
	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type StoreHandler struct {
	service usecase.StoreService
	log     *zap.Logger
}

func NewStoreHandler(service usecase.StoreService, log *zap.Logger) *StoreHandler {
	return &StoreHandler{
		service: service,
		log:     log.With(zap.String("handler", "store")),
	}
}

// ListStores handles GET /api/stores (Normal User or Admin)
func (h *StoreHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	stores, err := h.service.ListForUser(r.Context(), user.ID, searchParams(r))
	if err != nil {
		respondServiceError(w, h.log, err, "list stores")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]any{"stores": stores})
}

// SubmitRating handles POST /api/stores/ratings (Normal User or Admin)
func (h *StoreHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SubmitRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.service.SubmitRating(r.Context(), user.ID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "submit rating")
		return
	}

	if created {
		utils.ResponseCreated(w, "Rating submitted successfully", nil)
		return
	}
	utils.ResponseSuccess(w, "Rating updated successfully", nil)
}

// RatingHistory handles GET /api/stores/ratings (Normal User or Admin)
func (h *StoreHandler) RatingHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	ratings, err := h.service.RatingHistory(r.Context(), user.ID)
	if err != nil {
		respondServiceError(w, h.log, err, "get rating history")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]any{"ratings": ratings})
}

// CreateStore handles POST /api/stores (Store Owner or Admin)
func (h *StoreHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req request.OwnerCreateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	store, err := h.service.CreateStore(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create store")
		return
	}

	utils.ResponseCreated(w, "Store created successfully", map[string]any{"store": store})
}
