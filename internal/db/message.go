package db

import "time"

// Message 保存前台联系表单提交的留言。
// 仅由公开表单创建，后台只能切换已读状态，不走软删除。
type Message struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"size:120;not null"`
	Email     string `gorm:"size:255;not null"`
	Phone     string `gorm:"size:50"`
	Subject   string `gorm:"size:255"`
	Message   string `gorm:"type:text;not null"`
	IsRead    bool   `gorm:"default:false"`
	CreatedAt time.Time
}
