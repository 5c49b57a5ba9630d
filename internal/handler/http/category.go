package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/meshram0823/UrbanCart/internal/service"
	"github.com/meshram0823/UrbanCart/pkg/httputil"
	"github.com/meshram0823/UrbanCart/pkg/validator"
)

// CategoryHandler handles HTTP requests for category endpoints.
type CategoryHandler struct {
	service *service.CategoryService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new category HTTP handler.
func NewCategoryHandler(svc *service.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: svc,
		logger:  logger,
	}
}

// CategoryRequest is the JSON request body for creating a category.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorBody{Error: "Category name is required"})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorBody{Error: "Category name is required"})
		return
	}

	category, err := h.service.CreateCategory(r.Context(), req.Name)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, category)
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, categories)
}
