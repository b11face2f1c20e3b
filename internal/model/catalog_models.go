package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category struct {
	Id          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Slug        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"default:true"`
}

func (Category) TableName() string {
	return "categories"
}

type Brand struct {
	Id          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Slug        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	Website     string `gorm:"type:varchar(200)"`
	IsActive    bool   `gorm:"default:true"`
}

func (Brand) TableName() string {
	return "brands"
}

type Product struct {
	Id          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"type:varchar(200);not null;index"`
	BrandId     uint           `gorm:"not null;index"`
	Brand       Brand          `gorm:"foreignKey:BrandId"`
	CategoryId  uint           `gorm:"not null;index"`
	Category    Category       `gorm:"foreignKey:CategoryId"`
	Price       float64        `gorm:"type:numeric(10,2);not null;index"`
	Stock       int            `gorm:"default:0"`
	Rating      float64        `gorm:"default:0;index"`
	Tags        datatypes.JSON `gorm:"type:json"`
	Description string         `gorm:"type:text"`
	Sku         string         `gorm:"type:varchar(100);uniqueIndex"`
	IsActive    bool           `gorm:"default:true"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Product) TableName() string {
	return "products"
}
