package models

import "gorm.io/gorm"

// Product categories shown by the storefront.
const (
	CategoryMen   = "men"
	CategoryWomen = "women"
	CategoryKids  = "kids"
)

// Product represents a product in the store catalog.
type Product struct {
	ID          string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string   `json:"name" validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Category    string   `json:"category" gorm:"index" validate:"required,oneof=men women kids"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Images      []string `json:"images" gorm:"serializer:json" validate:"required,min=1,dive,url"`
	Sizes       []string `json:"sizes" gorm:"serializer:json" validate:"required,min=1"`
	Stock       int      `json:"stock" validate:"gte=0"`
	gorm.Model  // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// HasSize reports whether the product is offered in the given size label.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
