package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linemk/siya-shop/internal/domain/models"
	"github.com/linemk/siya-shop/internal/storage"
)

type CatalogService interface {
	List(ctx context.Context, category string) ([]*models.Product, error)
	Get(ctx context.Context, id int64) (*models.Product, error)
}

type catalogService struct {
	log         *slog.Logger
	catalogRepo storage.CatalogStorage
}

func NewCatalogService(log *slog.Logger, catalogRepo storage.CatalogStorage) CatalogService {
	return &catalogService{log: log, catalogRepo: catalogRepo}
}

// List returns the catalog, optionally filtered by category. The empty
// category means everything.
func (s *catalogService) List(ctx context.Context, category string) ([]*models.Product, error) {
	const op = "service.CatalogService.List"
	logger := s.log.With(slog.String("op", op))

	var (
		products []*models.Product
		err      error
	)
	if category == "" {
		products, err = s.catalogRepo.ListProducts(ctx)
	} else {
		products, err = s.catalogRepo.ListProductsByCategory(ctx, category)
	}
	if err != nil {
		logger.Error("failed to list products", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to list products: %w", op, err)
	}
	return products, nil
}

func (s *catalogService) Get(ctx context.Context, id int64) (*models.Product, error) {
	const op = "service.CatalogService.Get"
	product, err := s.catalogRepo.GetProductByID(ctx, id)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to get product",
			slog.Int64("productID", id), slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to get product: %w", op, err)
	}
	return product, nil
}
