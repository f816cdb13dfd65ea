package db

import "gorm.io/gorm"

// 预定义的项目分类，仅用于表单下拉，存储层不做约束
const (
	ProjectCategoryResidential = "residential"
	ProjectCategoryCommercial  = "commercial"
	ProjectCategoryRenovation  = "renovation"
	ProjectCategoryIndustrial  = "industrial"
)

// ProjectCategories 返回表单可选的分类列表
func ProjectCategories() []string {
	return []string{
		ProjectCategoryResidential,
		ProjectCategoryCommercial,
		ProjectCategoryRenovation,
		ProjectCategoryIndustrial,
	}
}

// Project 定义工程案例（作品集）模型
type Project struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string
	Content     string `gorm:"type:text"`
	Category    string `gorm:"size:50"`
	Client      string `gorm:"size:120"`
	Year        string `gorm:"size:10"`
	Location    string `gorm:"size:120"`
	Images      StringList `gorm:"type:text"`
	IsFeatured  bool       `gorm:"default:false"`
}
