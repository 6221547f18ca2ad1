package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"shopmart_dev_v1_202609/internal/model"
	"shopmart_dev_v1_202609/internal/repository"
	"shopmart_dev_v1_202609/pkg/sms"
)

// ==================== NotifyService 通知调度 ====================

// NotifyService 降价通知调度
// 写发件箱与实际发送解耦：入队在请求线程内瞬时完成，
// 真正的短信投递由后台任务批量驱动，超时可控
type NotifyService struct {
	notifRepo repository.NotificationRepository
	sender    sms.Sender
}

// NewNotifyService 创建通知调度
func NewNotifyService(notifRepo repository.NotificationRepository, sender sms.Sender) *NotifyService {
	return &NotifyService{notifRepo: notifRepo, sender: sender}
}

// NotifyPriceDrop 入队一条降价通知（实现 Notifier 契约）
func (s *NotifyService) NotifyPriceDrop(ctx context.Context, itemName, shopName string, oldPrice, newPrice int64, phone string) error {
	n := &model.Notification{
		Reference: uuid.NewString(),
		ItemName:  itemName,
		ShopName:  shopName,
		OldPrice:  oldPrice,
		NewPrice:  newPrice,
		Phone:     phone,
		Status:    model.NotificationStatusPending,
	}
	return s.notifRepo.Create(ctx, n)
}

// DispatchPending 投递待发通知
// 失败的行标记 failed 并记录原因，不向上传播
func (s *NotifyService) DispatchPending(ctx context.Context, limit int) (sent, failed int, err error) {
	pending, err := s.notifRepo.ListPending(ctx, limit)
	if err != nil {
		return 0, 0, err
	}

	for _, n := range pending {
		body := fmt.Sprintf("The price of %s is reduced from %d to %d at %s",
			n.ItemName, n.OldPrice, n.NewPrice, n.ShopName)

		if sendErr := s.sender.Send(ctx, n.Phone, body); sendErr != nil {
			log.Printf("[SMS] 发送失败 ref=%s: %v", n.Reference, sendErr)
			if markErr := s.notifRepo.MarkFailed(ctx, n.ID, sendErr.Error()); markErr != nil {
				log.Printf("[SMS] 状态更新失败 ref=%s: %v", n.Reference, markErr)
			}
			failed++
			continue
		}

		if markErr := s.notifRepo.MarkSent(ctx, n.ID); markErr != nil {
			log.Printf("[SMS] 状态更新失败 ref=%s: %v", n.Reference, markErr)
		}
		sent++
	}

	return sent, failed, nil
}
