package entity

import "time"

// Catalog entities are the sample data generated queries run against. They
// have no relationship to the chat entities.

type Category struct {
	Id          uint
	Name        string
	Slug        string
	Description string
	IsActive    bool
}

type Brand struct {
	Id          uint
	Name        string
	Slug        string
	Description string
	Website     string
	IsActive    bool
}

type Product struct {
	Id          uint
	Name        string
	BrandId     uint
	CategoryId  uint
	Price       float64
	Stock       int
	Rating      float64
	Tags        []string
	Description string
	Sku         string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
