package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/linemk/siya-shop/internal/domain/models"
	"github.com/linemk/siya-shop/internal/storage"
)

// CheckoutResult reports the outcome of the commit protocol. The
// confirmation is shown either way; OrderRecorded is false for guests.
type CheckoutResult struct {
	OrderRecorded bool
	Order         *models.Order
}

type CheckoutService interface {
	Checkout(ctx context.Context) CheckoutResult
}

type checkoutService struct {
	log         *slog.Logger
	cartRepo    storage.CartStorage
	sessionRepo storage.SessionStorage
}

func NewCheckoutService(log *slog.Logger, cartRepo storage.CartStorage, sessionRepo storage.SessionStorage) CheckoutService {
	return &checkoutService{
		log:         log,
		cartRepo:    cartRepo,
		sessionRepo: sessionRepo,
	}
}

// Checkout runs the order-commit protocol. The ordering is load-bearing:
// the snapshot is taken and archived before the cart is cleared, and the
// clear is unconditional so a guest's cart never leaks stale lines into
// the next visit. There is no rollback past the clear.
func (s *checkoutService) Checkout(ctx context.Context) CheckoutResult {
	const op = "service.CheckoutService.Checkout"
	logger := s.log.With(slog.String("op", op))

	snapshot := s.cartRepo.Items()

	result := CheckoutResult{}
	if user, ok := s.sessionRepo.Current(); ok {
		order := models.Order{
			ID:        uuid.New().String(),
			Email:     user.Email,
			Lines:     snapshot,
			Total:     models.OrderTotal(snapshot),
			CreatedAt: time.Now(),
		}
		if s.sessionRepo.AddOrder(order) {
			result.OrderRecorded = true
			result.Order = &order
			logger.Info("order recorded",
				slog.String("orderID", order.ID),
				slog.Int("lines", len(order.Lines)),
				slog.Int("total", order.Total),
			)
		}
	} else {
		logger.Info("guest checkout, no order recorded", slog.Int("lines", len(snapshot)))
	}

	s.cartRepo.Clear()
	return result
}
