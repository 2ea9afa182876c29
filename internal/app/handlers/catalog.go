package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/linemk/siya-shop/internal/domain/models"
	"github.com/linemk/siya-shop/internal/domain/view"
	"github.com/linemk/siya-shop/internal/service"
	"github.com/linemk/siya-shop/internal/storage"
)

// ProductsHandler handles GET /api/products with an optional
// ?category= filter.
func ProductsHandler(log *slog.Logger, catalogService service.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ProductsHandler"
		logger := log.With(slog.String("op", op))

		category := r.URL.Query().Get("category")
		if category != "" && category != models.CategoryEarrings && category != models.CategoryNameplates {
			logger.Error("unknown category", slog.String("category", category))
			http.Error(w, "unknown category", http.StatusBadRequest)
			return
		}

		products, err := catalogService.List(r.Context(), category)
		if err != nil {
			logger.Error("failed to list products", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if products == nil {
			products = []*models.Product{}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}

// ProductResponse pairs a product with the view that should render it,
// so the client opens the customizer for nameplates.
type ProductResponse struct {
	Product *models.Product `json:"product"`
	View    view.View       `json:"view"`
}

// ProductHandler handles GET /api/products/{id}.
func ProductHandler(log *slog.Logger, catalogService service.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ProductHandler"
		logger := log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			logger.Error("invalid product id", slog.Any("error", err))
			http.Error(w, "invalid product id", http.StatusBadRequest)
			return
		}

		product, err := catalogService.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrProductNotFound) {
				http.Error(w, "product not found", http.StatusNotFound)
				return
			}
			logger.Error("failed to get product", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		productView := view.ForProduct(product)
		if err := productView.Validate(); err != nil {
			logger.Error("invalid view for product", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		resp := ProductResponse{Product: product, View: productView}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}
