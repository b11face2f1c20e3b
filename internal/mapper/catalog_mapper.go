package mapper

import (
	"encoding/json"
	"time"

	"catalog-chat-be/internal/entity"
	"catalog-chat-be/internal/model"

	"gorm.io/datatypes"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) CategoryToEntity(c *model.Category) *entity.Category {
	if c == nil {
		return nil
	}
	return &entity.Category{
		Id:          c.Id,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IsActive:    c.IsActive,
	}
}

func (m *CatalogMapper) CategoryToModel(c *entity.Category) *model.Category {
	if c == nil {
		return nil
	}
	return &model.Category{
		Id:          c.Id,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IsActive:    c.IsActive,
	}
}

func (m *CatalogMapper) BrandToEntity(b *model.Brand) *entity.Brand {
	if b == nil {
		return nil
	}
	return &entity.Brand{
		Id:          b.Id,
		Name:        b.Name,
		Slug:        b.Slug,
		Description: b.Description,
		Website:     b.Website,
		IsActive:    b.IsActive,
	}
}

func (m *CatalogMapper) BrandToModel(b *entity.Brand) *model.Brand {
	if b == nil {
		return nil
	}
	return &model.Brand{
		Id:          b.Id,
		Name:        b.Name,
		Slug:        b.Slug,
		Description: b.Description,
		Website:     b.Website,
		IsActive:    b.IsActive,
	}
}

func (m *CatalogMapper) ProductToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	var tags []string
	if len(p.Tags) > 0 {
		// Tags are stored as a JSON array; a decode failure leaves them empty.
		_ = json.Unmarshal(p.Tags, &tags)
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Product{
		Id:          p.Id,
		Name:        p.Name,
		BrandId:     p.BrandId,
		CategoryId:  p.CategoryId,
		Price:       p.Price,
		Stock:       p.Stock,
		Rating:      p.Rating,
		Tags:        tags,
		Description: p.Description,
		Sku:         p.Sku,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *CatalogMapper) ProductToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}

	tags := datatypes.JSON("[]")
	if len(p.Tags) > 0 {
		if raw, err := json.Marshal(p.Tags); err == nil {
			tags = datatypes.JSON(raw)
		}
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Product{
		Id:          p.Id,
		Name:        p.Name,
		BrandId:     p.BrandId,
		CategoryId:  p.CategoryId,
		Price:       p.Price,
		Stock:       p.Stock,
		Rating:      p.Rating,
		Tags:        tags,
		Description: p.Description,
		Sku:         p.Sku,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}
