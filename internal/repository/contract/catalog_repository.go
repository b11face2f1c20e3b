package contract

import (
	"context"

	"catalog-chat-be/internal/entity"
)

// CatalogRepository covers the sample data store. The seeder is its only
// writer; the query executor reads the tables directly.
type CatalogRepository interface {
	UpsertCategory(ctx context.Context, category *entity.Category) error
	UpsertBrand(ctx context.Context, brand *entity.Brand) error
	UpsertProduct(ctx context.Context, product *entity.Product) error
	FindBrandBySlug(ctx context.Context, slug string) (*entity.Brand, error)
	FindCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)
	CountProducts(ctx context.Context) (int64, error)
	ClearAll(ctx context.Context) error
}
