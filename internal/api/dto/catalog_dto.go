package dto

import (
	"time"

	"shopmart_dev_v1_202609/internal/model"
)

// ==================== 目录视图 ====================

// ShopView 店铺视图
type ShopView struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	AdminID int64  `json:"admin_id"`
}

// ItemView 商品视图
type ItemView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     int64     `json:"price"`
	ShopID    int64     `json:"shop_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FromShop 模型转视图
func FromShop(s *model.Shop) ShopView {
	return ShopView{ID: s.ID, Name: s.Name, Address: s.Address, AdminID: s.AdminID}
}

// FromShops 批量转换
func FromShops(shops []model.Shop) []ShopView {
	views := make([]ShopView, 0, len(shops))
	for i := range shops {
		views = append(views, FromShop(&shops[i]))
	}
	return views
}

// FromItem 模型转视图
func FromItem(it *model.Item) ItemView {
	return ItemView{
		ID:        it.ID,
		Name:      it.Name,
		Quantity:  it.Quantity,
		Price:     it.Price,
		ShopID:    it.ShopID,
		CreatedAt: it.CreatedAt,
	}
}

// FromItems 批量转换
func FromItems(items []model.Item) []ItemView {
	views := make([]ItemView, 0, len(items))
	for i := range items {
		views = append(views, FromItem(&items[i]))
	}
	return views
}
