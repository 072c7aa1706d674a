package models

import "gorm.io/gorm"

type WishlistItem struct {
	gorm.Model
	UserID    int     `json:"userId" gorm:"uniqueIndex:idx_user_product"`
	ProductID int     `json:"productId" gorm:"uniqueIndex:idx_user_product"`
	Product   Product `json:"product" gorm:"foreignKey:ProductID"`
}
