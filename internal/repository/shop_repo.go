package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shopmart_dev_v1_202609/internal/model"
)

// ==================== ShopRepository 店铺仓库 ====================

// ShopRepository 店铺仓库接口
type ShopRepository interface {
	Create(ctx context.Context, shop *model.Shop) error
	GetByID(ctx context.Context, id int64) (*model.Shop, error)
	ListByAdmin(ctx context.Context, adminID int64) ([]model.Shop, error)
	ListAll(ctx context.Context) ([]model.Shop, error)
}

type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository 创建店铺仓库
func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepository{db: db}
}

// Create 创建店铺
func (r *shopRepository) Create(ctx context.Context, shop *model.Shop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

// GetByID 根据 ID 获取店铺
// 不存在返回 nil，由调用方决定是否按 404 处理
func (r *shopRepository) GetByID(ctx context.Context, id int64) (*model.Shop, error) {
	var shop model.Shop
	err := r.db.WithContext(ctx).First(&shop, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// ListByAdmin 获取某管理员名下全部店铺
func (r *shopRepository) ListByAdmin(ctx context.Context, adminID int64) ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Find(&shops).Error
	return shops, err
}

// ListAll 获取全部店铺（公开浏览）
func (r *shopRepository) ListAll(ctx context.Context) ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.WithContext(ctx).Find(&shops).Error
	return shops, err
}
