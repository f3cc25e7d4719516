package adaptor

import (
	"net/http"

	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OwnerHandler struct {
	service usecase.OwnerService
	log     *zap.Logger
}

func NewOwnerHandler(service usecase.OwnerService, log *zap.Logger) *OwnerHandler {
	return &OwnerHandler{
		service: service,
		log:     log.With(zap.String("handler", "owner")),
	}
}

// Dashboard handles GET /api/store-owner/dashboard
func (h *OwnerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	dashboard, err := h.service.Dashboard(r.Context(), user.ID)
	if err != nil {
		respondServiceError(w, h.log, err, "get owner dashboard")
		return
	}

	utils.ResponseSuccess(w, "success", dashboard)
}

// StoreRatings handles GET /api/store-owner/stores/{storeId}/ratings
func (h *OwnerHandler) StoreRatings(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	storeID, ok := parseID(chi.URLParam(r, "storeId"))
	if !ok {
		utils.ResponseBadRequest(w, "A valid storeId must be provided", nil)
		return
	}

	detail, err := h.service.StoreRatings(r.Context(), user.ID, storeID)
	if err != nil {
		respondServiceError(w, h.log, err, "get store ratings")
		return
	}

	utils.ResponseSuccess(w, "success", detail)
}

// Raters handles GET /api/store-owner/raters
func (h *OwnerHandler) Raters(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	raters, err := h.service.Raters(r.Context(), user.ID, searchParams(r))
	if err != nil {
		respondServiceError(w, h.log, err, "get raters")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]any{"users": raters})
}
