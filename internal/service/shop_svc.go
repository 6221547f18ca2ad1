package service

import (
	"context"
	"errors"

	"shopmart_dev_v1_202609/internal/model"
	"shopmart_dev_v1_202609/internal/repository"
)

// ==================== 错误定义 ====================

var (
	ErrShopFieldsRequired = errors.New("店铺名称和地址均为必填")
	ErrShopNotFound       = errors.New("店铺不存在")
)

// ==================== ShopService 店铺服务 ====================

// ShopService 店铺服务
type ShopService struct {
	shopRepo repository.ShopRepository
}

// NewShopService 创建店铺服务
func NewShopService(shopRepo repository.ShopRepository) *ShopService {
	return &ShopService{shopRepo: shopRepo}
}

// CreateShop 创建店铺并绑定到创建它的管理员
func (s *ShopService) CreateShop(ctx context.Context, adminID int64, name, address string) (*model.Shop, error) {
	if name == "" || address == "" {
		return nil, ErrShopFieldsRequired
	}

	shop := &model.Shop{
		Name:    name,
		Address: address,
		AdminID: adminID,
	}
	if err := s.shopRepo.Create(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// GetShop 按 ID 取店铺
// 不存在返回 ErrShopNotFound，调用方按 404 终止请求
func (s *ShopService) GetShop(ctx context.Context, id int64) (*model.Shop, error) {
	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}
	return shop, nil
}

// ListByAdmin 某管理员名下的全部店铺
func (s *ShopService) ListByAdmin(ctx context.Context, adminID int64) ([]model.Shop, error) {
	return s.shopRepo.ListByAdmin(ctx, adminID)
}

// ListAll 全部店铺（公开浏览）
func (s *ShopService) ListAll(ctx context.Context) ([]model.Shop, error) {
	return s.shopRepo.ListAll(ctx)
}
