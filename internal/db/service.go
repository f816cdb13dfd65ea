package db

import "gorm.io/gorm"

// Service represents a construction service offered by the company.
type Service struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string
	Content     string `gorm:"type:text"`
	Category    string `gorm:"size:50"`
	IsFeatured  bool   `gorm:"default:false"`
	Icon        string `gorm:"size:50"`
}
