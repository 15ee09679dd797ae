package models

import "gorm.io/gorm"

type Sweet struct {
	gorm.Model
	Name        string  `json:"name" gorm:"uniqueIndex"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description,omitempty"`
}

type CreateSweetData struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required,oneof=chocolate candy gummy hard-candy lollipop other"`
	Price       float64 `json:"price" binding:"gte=0"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	Description string  `json:"description"`
}

// UpdateSweetData uses pointers so absent fields are left untouched.
type UpdateSweetData struct {
	Name        *string  `json:"name" binding:"omitempty,min=1"`
	Category    *string  `json:"category" binding:"omitempty,oneof=chocolate candy gummy hard-candy lollipop other"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity" binding:"omitempty,gte=0"`
	Description *string  `json:"description"`
}

type QuantityData struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}
