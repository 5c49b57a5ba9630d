package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/meshram0823/UrbanCart/internal/service"
	"github.com/meshram0823/UrbanCart/pkg/httputil"
	"github.com/meshram0823/UrbanCart/pkg/validator"
)

// ProductHandler handles HTTP requests for product endpoints.
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(svc *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// ProductRequest is the JSON request body for creating or updating a
// product. Every field is required; the validator's required tag rejects
// zero values, so a zero price or quantity fails exactly like a missing
// field.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Brand       string  `json:"brand" validate:"required"`
	Price       float64 `json:"price" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Quantity    int     `json:"quantity" validate:"required"`
}

// ReviewRequest is the JSON request body for adding a review.
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// FilterRequest is the JSON request body for the filter endpoint. Checked
// carries category IDs; Radio carries a [min, max] price pair, anything
// other than exactly two values is ignored.
type FilterRequest struct {
	Checked []string  `json:"checked"`
	Radio   []float64 `json:"radio"`
}

func (r *ProductRequest) toInput() *service.ProductInput {
	return &service.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Brand:       r.Brand,
		Price:       r.Price,
		Category:    r.Category,
		Quantity:    r.Quantity,
	}
}

// decodeProductRequest decodes and validates the shared create/update body.
// Any missing or zero field collapses to the single storefront message.
func decodeProductRequest(w http.ResponseWriter, r *http.Request) (*ProductRequest, bool) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorBody{Error: "All fields are required"})
		return nil, false
	}

	if err := validator.Validate(req); err != nil {
		var valErr *validator.ValidationError
		if errors.As(err, &valErr) {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorBody{Error: "All fields are required"})
			return nil, false
		}
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorBody{Error: err.Error()})
		return nil, false
	}

	return &req, true
}

// --- Handlers ---

// Create handles POST /products. The storefront treats the created product
// as a plain read, so the success status is 200, not 201.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeProductRequest(w, r)
	if !ok {
		return
	}

	product, err := h.service.CreateProduct(r.Context(), req.toInput())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, product)
}

// Update handles PUT /products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseObjectID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	req, ok := decodeProductRequest(w, r)
	if !ok {
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, req.toInput())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseObjectID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.MessageBody{Message: "Product removed"})
}

// Get handles GET /products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseObjectID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, product)
}

// List handles GET /products?keyword=
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListProducts(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, page)
}

// ListAll handles GET /products/all.
func (h *ProductHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListAll(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, products)
}

// ListTop handles GET /products/top.
func (h *ProductHandler) ListTop(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListTop(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, products)
}

// ListNew handles GET /products/new.
func (h *ProductHandler) ListNew(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListNew(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, products)
}

// Filter handles POST /products/filter.
func (h *ProductHandler) Filter(w http.ResponseWriter, r *http.Request) {
	var req FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorBody{Error: "invalid request body"})
		return
	}

	products, err := h.service.FilterProducts(r.Context(), req.Checked, req.Radio)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, products)
}

// AddReview handles POST /products/{id}/reviews. The caller's identity
// arrives in the X-User-ID and X-User-Name headers, injected by the gateway
// after JWT validation.
func (h *ProductHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseObjectID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	userID, err := primitive.ObjectIDFromHex(r.Header.Get("X-User-ID"))
	if err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorBody{Error: "Invalid user ID"})
		return
	}

	// The review snapshots the reviewer's display name, so the gateway must
	// supply one.
	userName := r.Header.Get("X-User-Name")
	if userName == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorBody{Error: "X-User-Name header is required"})
		return
	}

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorBody{Error: "Rating and comment are required"})
		return
	}

	input := &service.ReviewInput{
		UserID:   userID,
		UserName: userName,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := h.service.AddReview(r.Context(), id, input); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.MessageBody{Message: "Review added"})
}
