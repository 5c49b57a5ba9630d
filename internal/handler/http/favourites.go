package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meshram0823/UrbanCart/internal/domain"
	"github.com/meshram0823/UrbanCart/internal/service"
	"github.com/meshram0823/UrbanCart/pkg/httputil"
	"github.com/meshram0823/UrbanCart/pkg/validator"
)

// FavouritesHandler handles HTTP requests for favourites endpoints. Every
// route requires the X-User-ID header, enforced by UserIDFromHeader in the
// router. All mutations return the full post-transition list so the client
// can replace its state wholesale.
type FavouritesHandler struct {
	service *service.FavouritesService
	logger  *slog.Logger
}

// NewFavouritesHandler creates a new favourites HTTP handler.
func NewFavouritesHandler(svc *service.FavouritesService, logger *slog.Logger) *FavouritesHandler {
	return &FavouritesHandler{
		service: svc,
		logger:  logger,
	}
}

// AddFavouriteRequest is the JSON request body for adding a favourite.
type AddFavouriteRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// ReplaceFavouritesRequest is the JSON request body for replacing the
// selection wholesale.
type ReplaceFavouritesRequest struct {
	Products []domain.Product `json:"products"`
}

// Get handles GET /favourites.
func (h *FavouritesHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	list, err := h.service.Get(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, list)
}

// Add handles POST /favourites.
func (h *FavouritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var req AddFavouriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorBody{Error: "productId is required"})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorBody{Error: "productId is required"})
		return
	}

	productID, ok := httputil.ParseObjectID(w, req.ProductID)
	if !ok {
		return
	}

	list, err := h.service.Add(r.Context(), userID, productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, list)
}

// Remove handles DELETE /favourites/{productId}.
func (h *FavouritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	productID, ok := httputil.ParseObjectID(w, chi.URLParam(r, "productId"))
	if !ok {
		return
	}

	list, err := h.service.Remove(r.Context(), userID, productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, list)
}

// Replace handles PUT /favourites.
func (h *FavouritesHandler) Replace(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var req ReplaceFavouritesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorBody{Error: "invalid request body"})
		return
	}

	list, err := h.service.Replace(r.Context(), userID, req.Products)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, list)
}
