package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shopmart_dev_v1_202609/internal/model"
	"shopmart_dev_v1_202609/internal/repository"
)

func setupShopTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Shop{}, &model.Item{}); err != nil {
		t.Fatalf("迁移测试表失败: %v", err)
	}
	return db
}

func TestShopService_CreateShop(t *testing.T) {
	db := setupShopTestDB(t)
	svc := NewShopService(repository.NewShopRepository(db))

	shop, err := svc.CreateShop(context.Background(), 7, "Fruit Stand", "1 Main St")
	if err != nil {
		t.Fatalf("创建店铺失败: %v", err)
	}
	if shop.ID == 0 {
		t.Error("创建后未回填 ID")
	}
	if shop.AdminID != 7 {
		t.Errorf("AdminID = %d, want 7", shop.AdminID)
	}
}

func TestShopService_CreateShopMissingFields(t *testing.T) {
	db := setupShopTestDB(t)
	svc := NewShopService(repository.NewShopRepository(db))
	ctx := context.Background()

	if _, err := svc.CreateShop(ctx, 1, "", "1 Main St"); !errors.Is(err, ErrShopFieldsRequired) {
		t.Errorf("空名称: err = %v, want ErrShopFieldsRequired", err)
	}
	if _, err := svc.CreateShop(ctx, 1, "Fruit Stand", ""); !errors.Is(err, ErrShopFieldsRequired) {
		t.Errorf("空地址: err = %v, want ErrShopFieldsRequired", err)
	}

	var count int64
	db.Model(&model.Shop{}).Count(&count)
	if count != 0 {
		t.Errorf("非法创建写入了 %d 行", count)
	}
}

func TestShopService_GetShopNotFound(t *testing.T) {
	db := setupShopTestDB(t)
	svc := NewShopService(repository.NewShopRepository(db))

	if _, err := svc.GetShop(context.Background(), 9999); !errors.Is(err, ErrShopNotFound) {
		t.Errorf("err = %v, want ErrShopNotFound", err)
	}
}

func TestShopService_ListByAdmin(t *testing.T) {
	db := setupShopTestDB(t)
	svc := NewShopService(repository.NewShopRepository(db))
	ctx := context.Background()

	if _, err := svc.CreateShop(ctx, 1, "A", "addr"); err != nil {
		t.Fatalf("创建店铺失败: %v", err)
	}
	if _, err := svc.CreateShop(ctx, 2, "B", "addr"); err != nil {
		t.Fatalf("创建店铺失败: %v", err)
	}

	shops, err := svc.ListByAdmin(ctx, 1)
	if err != nil {
		t.Fatalf("查询店铺失败: %v", err)
	}
	if len(shops) != 1 || shops[0].Name != "A" {
		t.Errorf("shops = %+v, want 仅 A", shops)
	}

	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("查询全部店铺失败: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("全部店铺数 = %d, want 2", len(all))
	}
}
