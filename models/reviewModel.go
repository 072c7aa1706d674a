package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	ProductID int    `json:"productId" gorm:"uniqueIndex:idx_product_reviewer"`
	UserID    int    `json:"userId" gorm:"uniqueIndex:idx_product_reviewer"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
