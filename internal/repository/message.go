package repository

import (
	"gorm.io/gorm"

	"github.com/bestconstruction/internal/db"
)

// MessageRepository 封装联系留言相关的数据库操作。
// 留言仅由前台表单创建，后台只能切换已读状态，因此没有更新和删除接口。
type MessageRepository struct {
	db *gorm.DB
}

// MessageInput represents a contact form submission.
type MessageInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// NewMessageRepository creates a MessageRepository instance.
func NewMessageRepository(gdb *gorm.DB) *MessageRepository {
	return &MessageRepository{db: gdb}
}

// List returns messages newest first, optionally filtered by read state.
func (r *MessageRepository) List(isRead *bool) ([]db.Message, error) {
	query := r.db.Model(&db.Message{}).Order("created_at desc")
	if isRead != nil {
		query = query.Where("is_read = ?", *isRead)
	}

	var messages []db.Message
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// Submit stores a new contact message. Required-field checks happen at
// the form binding layer; the repository persists what it is given.
func (r *MessageRepository) Submit(input MessageInput) (*db.Message, error) {
	message := db.Message{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := r.db.Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// MarkRead flips the read flag on a message. Store failures propagate to
// the caller; a missing row reports ErrNotFound.
func (r *MessageRepository) MarkRead(id uint, isRead bool) (*db.Message, error) {
	result := r.db.Model(&db.Message{}).Where("id = ?", id).Update("is_read", isRead)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var message db.Message
	if err := r.db.First(&message, id).Error; err != nil {
		return nil, translateLookupError(err)
	}
	return &message, nil
}

// CountUnread reports how many messages are still unread.
func (r *MessageRepository) CountUnread() (int64, error) {
	var count int64
	if err := r.db.Model(&db.Message{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
