package seed

import (
	"context"
	"fmt"

	"catalog-chat-be/internal/entity"
	"catalog-chat-be/internal/repository/unitofwork"
)

// Summary reports how many rows each seeded table holds afterwards.
type Summary struct {
	Categories int
	Brands     int
	Products   int
}

// Run loads the sample catalog in a single transaction. Upserts key on
// slug/sku, so running it twice leaves the tables unchanged. With clear set
// the catalog is wiped first.
func Run(ctx context.Context, uowFactory unitofwork.RepositoryFactory, clear bool) (*Summary, error) {
	uow := uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.CatalogRepository()

	if clear {
		if err := repo.ClearAll(ctx); err != nil {
			return nil, fmt.Errorf("clear catalog: %w", err)
		}
	}

	categoryIds := make(map[string]uint, len(categories))
	for _, c := range categories {
		cat := entity.Category{
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
			IsActive:    true,
		}
		if err := repo.UpsertCategory(ctx, &cat); err != nil {
			return nil, fmt.Errorf("seed category %q: %w", c.Name, err)
		}
		categoryIds[c.Name] = cat.Id
	}

	brandIds := make(map[string]uint, len(brands))
	for _, b := range brands {
		brand := entity.Brand{
			Name:     b.Name,
			Slug:     b.Slug,
			Website:  b.Website,
			IsActive: true,
		}
		if err := repo.UpsertBrand(ctx, &brand); err != nil {
			return nil, fmt.Errorf("seed brand %q: %w", b.Name, err)
		}
		brandIds[b.Name] = brand.Id
	}

	for _, p := range products {
		brandId, ok := brandIds[p.Brand]
		if !ok {
			return nil, fmt.Errorf("product %q references unknown brand %q", p.Name, p.Brand)
		}
		categoryId, ok := categoryIds[p.Category]
		if !ok {
			return nil, fmt.Errorf("product %q references unknown category %q", p.Name, p.Category)
		}

		product := entity.Product{
			Name:        p.Name,
			BrandId:     brandId,
			CategoryId:  categoryId,
			Price:       p.Price,
			Stock:       p.Stock,
			Rating:      p.Rating,
			Tags:        p.Tags,
			Description: p.Description,
			Sku:         p.Sku,
			IsActive:    true,
		}
		if err := repo.UpsertProduct(ctx, &product); err != nil {
			return nil, fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}

	productCount, err := repo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &Summary{
		Categories: len(categories),
		Brands:     len(brands),
		Products:   int(productCount),
	}, nil
}
