package adaptor

import (
	"encoding/json"
	"net/http"

	"store-rating/internal/dto/request"
	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// DashboardStats handles GET /api/admin/dashboard/stats
func (h *AdminHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.DashboardStats(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "get dashboard stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context(), searchParams(r))
	if err != nil {
		respondServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]any{"users": users})
}

// GetUser handles GET /api/admin/users/{id}
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "A valid user ID must be provided", nil)
		return
	}

	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]any{"user": user})
}

// CreateUser handles POST /api/admin/users
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create user")
		return
	}

	utils.ResponseCreated(w, "User added successfully", map[string]any{"user": user})
}

// ListStores handles GET /api/admin/stores
func (h *AdminHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.service.ListStores(r.Context(), searchParams(r))
	if err != nil {
		respondServiceError(w, h.log, err, "list stores")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]any{"stores": stores})
}

// GetStore handles GET /api/admin/stores/{id}
func (h *AdminHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "A valid store ID must be provided", nil)
		return
	}

	store, err := h.service.GetStore(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.log, err, "get store")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]any{"store": store})
}

// CreateStore handles POST /api/admin/stores
func (h *AdminHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	store, err := h.service.CreateStore(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create store")
		return
	}

	utils.ResponseCreated(w, "Store added successfully", map[string]any{"store": store})
}
