package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shopmart_dev_v1_202609/internal/model"
)

// ==================== ItemRepository 商品仓库 ====================

// ItemUpdate 单个商品的覆盖写入参数
type ItemUpdate struct {
	ItemID   int64
	Name     string
	Quantity int
	Price    int64
}

// ItemChange 覆盖写入后的变更结果
// OldPrice 取自更新事务内的最新读取，不信任客户端回显
type ItemChange struct {
	Item         model.Item
	OldPrice     int64
	NewPrice     int64
	PriceDropped bool
}

// ItemRepository 商品仓库接口
type ItemRepository interface {
	// CreateBatch 批量建商品，单事务整体成功或整体失败
	CreateBatch(ctx context.Context, items []model.Item) error
	GetByID(ctx context.Context, id int64) (*model.Item, error)
	ListByShop(ctx context.Context, shopID int64) ([]model.Item, error)
	ListByShops(ctx context.Context, shopIDs []int64) ([]model.Item, error)
	// UpdateBatch 批量覆盖更新，单事务，最后写入者胜出
	UpdateBatch(ctx context.Context, updates []ItemUpdate) ([]ItemChange, error)
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository 创建商品仓库
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// CreateBatch 批量建商品
func (r *itemRepository) CreateBatch(ctx context.Context, items []model.Item) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	})
}

// GetByID 根据 ID 获取商品
func (r *itemRepository) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByShop 获取店铺内全部商品
// 按 id 升序，即录入顺序
func (r *itemRepository) ListByShop(ctx context.Context, shopID int64) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// ListByShops 获取多个店铺的全部商品（汇总管理员目录用）
func (r *itemRepository) ListByShops(ctx context.Context, shopIDs []int64) ([]model.Item, error) {
	if len(shopIDs) == 0 {
		return nil, nil
	}
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("shop_id IN ?", shopIDs).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// UpdateBatch 批量覆盖更新
// 旧价在事务内重新读取，降价判定 = 新价严格小于库中旧价
func (r *itemRepository) UpdateBatch(ctx context.Context, updates []ItemUpdate) ([]ItemChange, error) {
	changes := make([]ItemChange, 0, len(updates))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			var item model.Item
			if err := tx.First(&item, u.ItemID).Error; err != nil {
				return fmt.Errorf("item %d: %w", u.ItemID, err)
			}

			oldPrice := item.Price
			item.Name = u.Name
			item.Quantity = u.Quantity
			item.Price = u.Price

			if err := tx.Save(&item).Error; err != nil {
				return fmt.Errorf("item %d: %w", u.ItemID, err)
			}

			changes = append(changes, ItemChange{
				Item:         item,
				OldPrice:     oldPrice,
				NewPrice:     u.Price,
				PriceDropped: u.Price < oldPrice,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return changes, nil
}
