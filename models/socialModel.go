package models

import "gorm.io/gorm"

// SocialPost is an admin-curated media entry shown on the storefront feed.
type SocialPost struct {
	gorm.Model
	Platform string `json:"platform" binding:"required"`
	MediaURL string `json:"mediaUrl" binding:"required"`
	Caption  string `json:"caption"`
}
