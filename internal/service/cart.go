package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linemk/siya-shop/internal/domain/models"
	"github.com/linemk/siya-shop/internal/storage"
)

// CartView is the cart as the API reports it: lines in insertion order
// plus the derived totals.
type CartView struct {
	Items      []models.CartLine `json:"items"`
	TotalItems int               `json:"totalItems"`
	Subtotal   int               `json:"subtotal"`
}

type CartService interface {
	// Add resolves the product in the catalog and adds it to the cart.
	// The selected option is taken as given: besides declared variant
	// values the customizer submits free-form "Custom: <name>" options.
	Add(ctx context.Context, productID int64, quantity int, selectedOption string) error
	UpdateQuantity(ctx context.Context, productID int64, selectedOption string, newQuantity int)
	Remove(ctx context.Context, productID int64)
	Clear(ctx context.Context)
	View(ctx context.Context) CartView
}

type cartService struct {
	log         *slog.Logger
	catalogRepo storage.CatalogStorage
	cartRepo    storage.CartStorage
}

func NewCartService(log *slog.Logger, catalogRepo storage.CatalogStorage, cartRepo storage.CartStorage) CartService {
	return &cartService{
		log:         log,
		catalogRepo: catalogRepo,
		cartRepo:    cartRepo,
	}
}

func (s *cartService) Add(ctx context.Context, productID int64, quantity int, selectedOption string) error {
	const op = "service.CartService.Add"
	logger := s.log.With(slog.String("op", op), slog.Int64("productID", productID))

	product, err := s.catalogRepo.GetProductByID(ctx, productID)
	if err != nil {
		logger.Error("failed to get product", slog.Any("error", err))
		return fmt.Errorf("%s: failed to get product: %w", op, err)
	}

	s.cartRepo.AddItem(product, quantity, selectedOption)
	logger.Info("item added to cart",
		slog.Int("quantity", quantity),
		slog.String("selectedOption", selectedOption),
	)
	return nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, productID int64, selectedOption string, newQuantity int) {
	const op = "service.CartService.UpdateQuantity"
	s.cartRepo.UpdateQuantity(productID, selectedOption, newQuantity)
	s.log.With(slog.String("op", op)).Info("cart quantity updated",
		slog.Int64("productID", productID),
		slog.Int("newQuantity", newQuantity),
	)
}

func (s *cartService) Remove(ctx context.Context, productID int64) {
	const op = "service.CartService.Remove"
	s.cartRepo.RemoveItem(productID)
	s.log.With(slog.String("op", op)).Info("item removed from cart", slog.Int64("productID", productID))
}

func (s *cartService) Clear(ctx context.Context) {
	const op = "service.CartService.Clear"
	s.cartRepo.Clear()
	s.log.With(slog.String("op", op)).Info("cart cleared")
}

func (s *cartService) View(ctx context.Context) CartView {
	items := s.cartRepo.Items()
	return CartView{
		Items:      items,
		TotalItems: s.cartRepo.TotalItems(),
		Subtotal:   models.OrderTotal(items),
	}
}
