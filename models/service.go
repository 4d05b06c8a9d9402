package models

import (
	"gorm.io/gorm"
)

type ServiceCategory struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Active      bool   `json:"active" gorm:"default:true"`
}

type Service struct {
	gorm.Model
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	CategoryID  uint            `json:"category_id"`
	Category    ServiceCategory `json:"category" gorm:"foreignKey:CategoryID"`
	Active      bool            `json:"active" gorm:"default:true"`
}
