package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"shopmart_dev_v1_202609/internal/model"
)

// ==================== NotificationRepository 通知发件箱仓库 ====================

// NotificationRepository 通知发件箱仓库接口
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	ListPending(ctx context.Context, limit int) ([]model.Notification, error)
	MarkSent(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, sendErr string) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository 创建通知仓库
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create 入队一条待发通知
func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// ListPending 拉取待发通知
func (r *notificationRepository) ListPending(ctx context.Context, limit int) ([]model.Notification, error) {
	var list []model.Notification
	q := r.db.WithContext(ctx).
		Where("status = ?", model.NotificationStatusPending).
		Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&list).Error
	return list, err
}

// MarkSent 标记发送成功
func (r *notificationRepository) MarkSent(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":   model.NotificationStatusSent,
			"sent_at":  &now,
			"attempts": gorm.Expr("attempts + 1"),
		}).Error
}

// MarkFailed 标记发送失败并记录原因
// 失败只落在本行上，目录数据不受影响
func (r *notificationRepository) MarkFailed(ctx context.Context, id int64, sendErr string) error {
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     model.NotificationStatusFailed,
			"last_error": sendErr,
			"attempts":   gorm.Expr("attempts + 1"),
		}).Error
}
