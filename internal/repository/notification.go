package repository

import (
	"github.com/devmatch/devmatch-go/internal/domain/notification"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	Create(n *notification.Notification) error
	ListByUserID(userID uint) ([]notification.Notification, error)
	MarkRead(id string, userID uint) (int64, error)
	MarkAllRead(userID uint) error
	CountUnread(userID uint) (int64, error)
	WithTx(tx *gorm.DB) NotificationRepo
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *DBNotificationRepo {
	return &DBNotificationRepo{
		db: db,
	}
}

func (r *DBNotificationRepo) Create(n *notification.Notification) error {
	return r.db.Create(n).Error
}

func (r *DBNotificationRepo) ListByUserID(userID uint) ([]notification.Notification, error) {
	var notifications []notification.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *DBNotificationRepo) MarkRead(id string, userID uint) (int64, error) {
	res := r.db.Model(&notification.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *DBNotificationRepo) MarkAllRead(userID uint) error {
	return r.db.Model(&notification.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func (r *DBNotificationRepo) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&notification.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *DBNotificationRepo) WithTx(tx *gorm.DB) NotificationRepo {
	if tx == nil {
		return r
	}
	return &DBNotificationRepo{db: tx}
}
