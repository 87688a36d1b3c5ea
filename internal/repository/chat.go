package repository

import (
	"github.com/devmatch/devmatch-go/internal/domain/chat"
	"gorm.io/gorm"
)

type ChatRepo interface {
	Create(m *chat.ChatMessage) error
	ListByRequestID(requestID string) ([]chat.ChatMessage, error)
	MarkThreadRead(requestID string, readerID uint) error
	WithTx(tx *gorm.DB) ChatRepo
}

type DBChatRepo struct {
	db *gorm.DB
}

func NewChatRepo(db *gorm.DB) *DBChatRepo {
	return &DBChatRepo{
		db: db,
	}
}

func (r *DBChatRepo) Create(m *chat.ChatMessage) error {
	return r.db.Create(m).Error
}

func (r *DBChatRepo) ListByRequestID(requestID string) ([]chat.ChatMessage, error) {
	var msgs []chat.ChatMessage
	err := r.db.Where("help_request_id = ?", requestID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *DBChatRepo) MarkThreadRead(requestID string, readerID uint) error {
	return r.db.Model(&chat.ChatMessage{}).
		Where("help_request_id = ? AND receiver_id = ? AND is_read = ?", requestID, readerID, false).
		Update("is_read", true).Error
}

func (r *DBChatRepo) WithTx(tx *gorm.DB) ChatRepo {
	if tx == nil {
		return r
	}
	return &DBChatRepo{db: tx}
}
