package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/linemk/siya-shop/internal/service"
	"github.com/linemk/siya-shop/internal/storage"
)

// AddToCartRequest adds a product to the cart. The selected option is
// free-form on purpose: the customizer submits "Custom: <name>" values
// that are not part of the declared variant list.
type AddToCartRequest struct {
	ProductID      int64  `json:"productId" validate:"required,gt=0"`
	Quantity       int    `json:"quantity" validate:"required,gt=0"`
	SelectedOption string `json:"selectedOption"`
}

// UpdateCartItemRequest sets the quantity of one (product, option) line.
// Zero and negative quantities remove the line, so no gt=0 here.
type UpdateCartItemRequest struct {
	Quantity       int    `json:"quantity"`
	SelectedOption string `json:"selectedOption"`
}

// CartHandler handles GET /api/cart.
func CartHandler(log *slog.Logger, cartService service.CartService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.CartHandler"
		logger := log.With(slog.String("op", op))

		cart := cartService.View(r.Context())
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cart); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}

// AddToCartHandler handles POST /api/cart/items.
func AddToCartHandler(log *slog.Logger, cartService service.CartService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.AddToCartHandler"
		logger := log.With(slog.String("op", op))

		var req AddToCartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			logger.Error("invalid request: validation error", slog.Any("error", err))
			http.Error(w, "validation error", http.StatusBadRequest)
			return
		}

		if err := cartService.Add(r.Context(), req.ProductID, req.Quantity, req.SelectedOption); err != nil {
			if errors.Is(err, storage.ErrProductNotFound) {
				http.Error(w, "product not found", http.StatusNotFound)
				return
			}
			logger.Error("failed to add item", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		writeCart(w, logger, cartService.View(r.Context()))
	}
}

// UpdateCartItemHandler handles PATCH /api/cart/items/{productID}.
func UpdateCartItemHandler(log *slog.Logger, cartService service.CartService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.UpdateCartItemHandler"
		logger := log.With(slog.String("op", op))

		productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
		if err != nil {
			logger.Error("invalid product id", slog.Any("error", err))
			http.Error(w, "invalid product id", http.StatusBadRequest)
			return
		}

		var req UpdateCartItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		// A non-matching line is a defined no-op, not an error.
		cartService.UpdateQuantity(r.Context(), productID, req.SelectedOption, req.Quantity)
		writeCart(w, logger, cartService.View(r.Context()))
	}
}

// RemoveCartItemHandler handles DELETE /api/cart/items/{productID}.
// Every variant line of the product is removed.
func RemoveCartItemHandler(log *slog.Logger, cartService service.CartService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.RemoveCartItemHandler"
		logger := log.With(slog.String("op", op))

		productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
		if err != nil {
			logger.Error("invalid product id", slog.Any("error", err))
			http.Error(w, "invalid product id", http.StatusBadRequest)
			return
		}

		cartService.Remove(r.Context(), productID)
		writeCart(w, logger, cartService.View(r.Context()))
	}
}

// ClearCartHandler handles DELETE /api/cart.
func ClearCartHandler(log *slog.Logger, cartService service.CartService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ClearCartHandler"
		logger := log.With(slog.String("op", op))

		cartService.Clear(r.Context())
		writeCart(w, logger, cartService.View(r.Context()))
	}
}

func writeCart(w http.ResponseWriter, logger *slog.Logger, cart service.CartView) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cart); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
