package service

import (
	"context"
	"errors"
	"log"

	"shopmart_dev_v1_202609/internal/forms"
	"shopmart_dev_v1_202609/internal/model"
	"shopmart_dev_v1_202609/internal/repository"
)

// ==================== 错误定义 ====================

var (
	ErrInvalidItemRow   = errors.New("商品名称必填，数量至少为 1，价格必填")
	ErrFormShapeChanged = errors.New("提交的商品数量与店铺当前商品不一致，请刷新后重试")
)

// ==================== Notifier 通知契约 ====================

// Notifier 降价通知契约
// 发送是尽力而为：失败只记日志，绝不回滚已提交的目录变更
type Notifier interface {
	NotifyPriceDrop(ctx context.Context, itemName, shopName string, oldPrice, newPrice int64, phone string) error
}

// ==================== ItemService 商品服务 ====================

// ItemService 商品服务
type ItemService struct {
	itemRepo repository.ItemRepository
	shopRepo repository.ShopRepository
	notifier Notifier
}

// NewItemService 创建商品服务
func NewItemService(itemRepo repository.ItemRepository, shopRepo repository.ShopRepository, notifier Notifier) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		shopRepo: shopRepo,
		notifier: notifier,
	}
}

// ==================== 批量录入 ====================

// CreateItems 批量建商品
// 任意一行非法则整批拒绝，单事务写入，保证不出现残缺目录
func (s *ItemService) CreateItems(ctx context.Context, shopID int64, rows []forms.ItemRow) ([]model.Item, error) {
	items := make([]model.Item, 0, len(rows))
	for _, row := range rows {
		if row.Name == "" || row.Quantity < 1 || row.Price < 0 {
			return nil, ErrInvalidItemRow
		}
		items = append(items, model.Item{
			Name:     row.Name,
			Quantity: row.Quantity,
			Price:    row.Price,
			ShopID:   shopID,
		})
	}

	if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// ==================== 目录查询 ====================

// ListByShop 店铺内商品（录入顺序）
func (s *ItemService) ListByShop(ctx context.Context, shopID int64) ([]model.Item, error) {
	return s.itemRepo.ListByShop(ctx, shopID)
}

// AdminCatalog 汇总某管理员全部店铺与商品
func (s *ItemService) AdminCatalog(ctx context.Context, adminID int64) ([]model.Shop, []model.Item, error) {
	shops, err := s.shopRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]int64, 0, len(shops))
	for _, shop := range shops {
		ids = append(ids, shop.ID)
	}

	items, err := s.itemRepo.ListByShops(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	return shops, items, nil
}

// ==================== 批量更新 ====================

// UpdateItems 批量覆盖店铺商品并触发降价通知
// 提交行数必须与店铺当前商品数一致（渲染与提交共用同一权威 N），
// 降价判定以事务内读到的旧价为准，不信任客户端回显。
// 返回本次发生降价的变更集
func (s *ItemService) UpdateItems(ctx context.Context, shop *model.Shop, rows []forms.ItemRow, notifyPhone string) ([]repository.ItemChange, error) {
	items, err := s.itemRepo.ListByShop(ctx, shop.ID)
	if err != nil {
		return nil, err
	}
	if len(rows) != len(items) {
		return nil, ErrFormShapeChanged
	}

	updates := make([]repository.ItemUpdate, 0, len(rows))
	for i, row := range rows {
		if row.Name == "" || row.Quantity < 1 || row.Price < 0 {
			return nil, ErrInvalidItemRow
		}
		updates = append(updates, repository.ItemUpdate{
			ItemID:   items[i].ID,
			Name:     row.Name,
			Quantity: row.Quantity,
			Price:    row.Price,
		})
	}

	changes, err := s.itemRepo.UpdateBatch(ctx, updates)
	if err != nil {
		return nil, err
	}

	// 目录事务已提交，这之后的任何通知失败都与持久化结果无关
	drops := make([]repository.ItemChange, 0)
	for _, ch := range changes {
		if !ch.PriceDropped {
			continue
		}
		drops = append(drops, ch)
		if s.notifier == nil {
			continue
		}
		if err := s.notifier.NotifyPriceDrop(ctx, ch.Item.Name, shop.Name, ch.OldPrice, ch.NewPrice, notifyPhone); err != nil {
			log.Printf("[SMS] 降价通知入队失败 item=%s shop=%s: %v", ch.Item.Name, shop.Name, err)
		}
	}

	return drops, nil
}
