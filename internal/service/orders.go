package service

import (
	"context"
	"log/slog"

	"github.com/linemk/siya-shop/internal/domain/models"
	"github.com/linemk/siya-shop/internal/storage"
)

type OrderService interface {
	// OrdersFor returns the order history for an email, oldest first.
	OrdersFor(ctx context.Context, email string) []models.Order
}

type orderService struct {
	log         *slog.Logger
	sessionRepo storage.SessionStorage
}

func NewOrderService(log *slog.Logger, sessionRepo storage.SessionStorage) OrderService {
	return &orderService{log: log, sessionRepo: sessionRepo}
}

func (s *orderService) OrdersFor(ctx context.Context, email string) []models.Order {
	const op = "service.OrderService.OrdersFor"
	orders := s.sessionRepo.OrdersFor(email)
	s.log.With(slog.String("op", op)).Info("order history read",
		slog.String("email", email),
		slog.Int("count", len(orders)),
	)
	return orders
}
