package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/linemk/siya-shop/internal/domain/view"
	"github.com/linemk/siya-shop/internal/service"
)

// CheckoutRequest collects the shipping/contact/payment fields the form
// submits. They are validated and then ignored: no real payment happens,
// the fields only gate the commit protocol.
type CheckoutRequest struct {
	FullName   string `json:"fullName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	CardNumber string `json:"cardNumber" validate:"required"`
}

// CheckoutResponse confirms the order. Confirmation is shown regardless
// of whether an order was recorded; guests simply leave no record.
type CheckoutResponse struct {
	Message       string    `json:"message"`
	OrderRecorded bool      `json:"orderRecorded"`
	OrderID       string    `json:"orderId,omitempty"`
	View          view.View `json:"view"`
}

// CheckoutHandler handles POST /api/checkout.
func CheckoutHandler(log *slog.Logger, checkoutService service.CheckoutService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.CheckoutHandler"
		logger := log.With(slog.String("op", op))

		var req CheckoutRequest
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

		result := checkoutService.Checkout(r.Context())

		resp := CheckoutResponse{
			Message:       "order confirmed",
			OrderRecorded: result.OrderRecorded,
			View:          view.Of(view.Home),
		}
		if result.Order != nil {
			resp.OrderID = result.Order.ID
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}
