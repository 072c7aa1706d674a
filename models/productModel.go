package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string         `json:"name" binding:"required"`
	Brand       string         `json:"brand" binding:"required"`
	Description string         `json:"description" binding:"required"`
	Price       Money          `json:"price" binding:"required"`
	Category    string         `json:"category" binding:"required"`
	Images      datatypes.JSON `json:"images"`
	Stock       int            `json:"stock"`
	Vegan       bool           `json:"vegan"`
	CrueltyFree bool           `json:"crueltyFree"`
	Bestseller  bool           `json:"bestseller"`
}
