package implementation

import (
	"context"
	"errors"

	"catalog-chat-be/internal/entity"
	"catalog-chat-be/internal/mapper"
	"catalog-chat-be/internal/model"
	"catalog-chat-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CatalogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewCatalogRepository(db *gorm.DB) contract.CatalogRepository {
	return &CatalogRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *CatalogRepositoryImpl) UpsertCategory(ctx context.Context, category *entity.Category) error {
	m := r.mapper.CategoryToModel(category)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).
		Create(m).Error
	if err != nil {
		return err
	}

	// Re-read so the caller sees the id even when the row already existed.
	var existing model.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", category.Slug).First(&existing).Error; err != nil {
		return err
	}
	*category = *r.mapper.CategoryToEntity(&existing)
	return nil
}

func (r *CatalogRepositoryImpl) UpsertBrand(ctx context.Context, brand *entity.Brand) error {
	m := r.mapper.BrandToModel(brand)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).
		Create(m).Error
	if err != nil {
		return err
	}

	var existing model.Brand
	if err := r.db.WithContext(ctx).Where("slug = ?", brand.Slug).First(&existing).Error; err != nil {
		return err
	}
	*brand = *r.mapper.BrandToEntity(&existing)
	return nil
}

func (r *CatalogRepositoryImpl) UpsertProduct(ctx context.Context, product *entity.Product) error {
	m := r.mapper.ProductToModel(product)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "sku"}},
			DoNothing: true,
		}).
		Create(m).Error
	if err != nil {
		return err
	}

	var existing model.Product
	if err := r.db.WithContext(ctx).Where("sku = ?", product.Sku).First(&existing).Error; err != nil {
		return err
	}
	*product = *r.mapper.ProductToEntity(&existing)
	return nil
}

func (r *CatalogRepositoryImpl) FindBrandBySlug(ctx context.Context, slug string) (*entity.Brand, error) {
	var m model.Brand
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.BrandToEntity(&m), nil
}

func (r *CatalogRepositoryImpl) FindCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var m model.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CategoryToEntity(&m), nil
}

func (r *CatalogRepositoryImpl) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ClearAll hard-deletes the whole catalog, products first to respect the
// brand/category foreign keys.
func (r *CatalogRepositoryImpl) ClearAll(ctx context.Context) error {
	db := r.db.WithContext(ctx)
	if err := db.Unscoped().Where("1 = 1").Delete(&model.Product{}).Error; err != nil {
		return err
	}
	if err := db.Unscoped().Where("1 = 1").Delete(&model.Brand{}).Error; err != nil {
		return err
	}
	return db.Unscoped().Where("1 = 1").Delete(&model.Category{}).Error
}
