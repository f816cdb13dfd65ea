package db

import (
	"time"

	"gorm.io/gorm"
)

// BlogPost 定义博客文章模型。
// PublishedAt 为空表示草稿，前台列表不展示。
type BlogPost struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Content     string `gorm:"type:text"`
	Excerpt     string
	Tags        StringList `gorm:"type:text"`
	Image       string     `gorm:"size:255"`
	Author      string     `gorm:"size:120"`
	PublishedAt *time.Time
}

// IsPublished 返回文章是否已发布
func (p BlogPost) IsPublished() bool {
	return p.PublishedAt != nil
}

// TableName 返回自定义表名，保持与原库命名一致
func (BlogPost) TableName() string {
	return "blog_posts"
}
