package services

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"

	"github.com/minsu-dev/brandsite-backend/internal/models"
	"github.com/minsu-dev/brandsite-backend/internal/repositories"
)

// Compile-time check to ensure ProductServiceImpl implements ProductService.
var _ ProductService = (*ProductServiceImpl)(nil)

// ProductServiceImpl handles shop catalog business logic.
type ProductServiceImpl struct {
	productRepo repositories.ProductRepository
}

// NewProductService creates a new ProductServiceImpl.
func NewProductService(productRepo repositories.ProductRepository) *ProductServiceImpl {
	return &ProductServiceImpl{productRepo: productRepo}
}

// ListProducts fetches the whole catalog and applies category filter
// and ordering in memory. The repository already returns newest first,
// which covers models.SortNewest.
func (s *ProductServiceImpl) ListProducts(ctx context.Context, category string, sortBy models.ProductSort) ([]*models.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		slog.Error("Failed to fetch products", "error", err)
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	filtered := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}

	switch sortBy {
	case models.SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case models.SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	}
	return filtered, nil
}

func (s *ProductServiceImpl) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *ProductServiceImpl) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.productRepo.Create(ctx, product); err != nil {
		slog.Error("Failed to create product", "error", err)
		return fmt.Errorf("failed to create product: %w", err)
	}
	slog.Info("Product created", "productId", product.ID, "name", product.Name)
	return nil
}

// UpdateProduct replaces the stored product, carrying CreatedAt over
// from the stored record.
func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, product *models.Product) error {
	existing, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		return fmt.Errorf("product not found: %w", err)
	}
	product.CreatedAt = existing.CreatedAt
	return s.productRepo.Update(ctx, product)
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	return s.productRepo.Delete(ctx, id)
}
