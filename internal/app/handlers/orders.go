package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/linemk/siya-shop/internal/jwt-new/jwtmiddleware"
	"github.com/linemk/siya-shop/internal/service"
)

// OrdersHandler handles GET /api/orders (behind the JWT middleware).
// The history returned is the one partitioned under the token's email.
func OrdersHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.OrdersHandler"
		logger := log.With(slog.String("op", op))

		email, ok := jwtmiddleware.FromContext(r.Context())
		if !ok {
			logger.Error("email not found in context")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orders := orderService.OrdersFor(r.Context(), email)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(orders); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}
