package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shopmart_dev_v1_202609/internal/model"
	"shopmart_dev_v1_202609/internal/repository"
)

// setupAccountTestDB 创建账号测试数据库
func setupAccountTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Admin{}, &model.User{}); err != nil {
		t.Fatalf("迁移测试表失败: %v", err)
	}
	return db
}

func newAccountService(db *gorm.DB) *AccountService {
	return NewAccountService(
		repository.NewAdminRepository(db),
		repository.NewUserRepository(db),
	)
}

func validRegisterInput() *RegisterInput {
	return &RegisterInput{
		Email:    "admin@example.com",
		Password: "secret123",
		Name:     "Boss",
		Phone:    "1234567890",
	}
}

// ==================== 注册 ====================

func TestAccountService_RegisterSuccess(t *testing.T) {
	db := setupAccountTestDB(t)
	svc := newAccountService(db)
	ctx := context.Background()

	if _, err := svc.Register(ctx, model.RoleAdmin, validRegisterInput()); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	var admin model.Admin
	if err := db.Where("email = ?", "admin@example.com").First(&admin).Error; err != nil {
		t.Fatalf("查询注册结果失败: %v", err)
	}
	if admin.Password == "secret123" {
		t.Error("密码以明文入库")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("secret123")); err != nil {
		t.Errorf("密码哈希无法校验: %v", err)
	}
	if admin.Phone != "1234567890" {
		t.Errorf("Phone = %s, want 1234567890", admin.Phone)
	}
}

func TestAccountService_RegisterInvalidPhone(t *testing.T) {
	db := setupAccountTestDB(t)
	svc := newAccountService(db)
	ctx := context.Background()

	cases := []string{
		"123456789",   // 9 位
		"12345678901", // 11 位
		"12345abcde",  // 含字母
	}
	for _, phone := range cases {
		in := validRegisterInput()
		in.Phone = phone
		if _, err := svc.Register(ctx, model.RoleAdmin, in); !errors.Is(err, ErrInvalidPhone) {
			t.Errorf("phone %q: err = %v, want ErrInvalidPhone", phone, err)
		}
	}

	var count int64
	db.Model(&model.Admin{}).Count(&count)
	if count != 0 {
		t.Errorf("非法注册写入了 %d 行", count)
	}
}

func TestAccountService_RegisterMissingFields(t *testing.T) {
	db := setupAccountTestDB(t)
	svc := newAccountService(db)

	in := validRegisterInput()
	in.Name = ""
	if _, err := svc.Register(context.Background(), model.RoleUser, in); !errors.Is(err, ErrFieldsRequired) {
		t.Errorf("err = %v, want ErrFieldsRequired", err)
	}
}

func TestAccountService_RegisterDuplicateEmail(t *testing.T) {
	db := setupAccountTestDB(t)
	svc := newAccountService(db)
	ctx := context.Background()

	if _, err := svc.Register(ctx, model.RoleAdmin, validRegisterInput()); err != nil {
		t.Fatalf("首次注册失败: %v", err)
	}

	dup := validRegisterInput()
	dup.Name = "Impostor"
	if _, err := svc.Register(ctx, model.RoleAdmin, dup); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}

	// 原账号不受影响
	var admin model.Admin
	db.Where("email = ?", "admin@example.com").First(&admin)
	if admin.Name != "Boss" {
		t.Errorf("原账号被覆盖: Name = %s", admin.Name)
	}
	var count int64
	db.Model(&model.Admin{}).Count(&count)
	if count != 1 {
		t.Errorf("账号数 = %d, want 1", count)
	}
}

func TestAccountService_RolesAreSeparate(t *testing.T) {
	db := setupAccountTestDB(t)
	svc := newAccountService(db)
	ctx := context.Background()

	// 同一邮箱在两种身份下各自注册互不冲突
	if _, err := svc.Register(ctx, model.RoleAdmin, validRegisterInput()); err != nil {
		t.Fatalf("管理员注册失败: %v", err)
	}
	if _, err := svc.Register(ctx, model.RoleUser, validRegisterInput()); err != nil {
		t.Fatalf("用户注册失败: %v", err)
	}
}

// ==================== 登录 ====================

func TestAccountService_Authenticate(t *testing.T) {
	db := setupAccountTestDB(t)
	svc := newAccountService(db)
	ctx := context.Background()

	if _, err := svc.Register(ctx, model.RoleAdmin, validRegisterInput()); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	actor, err := svc.Authenticate(ctx, model.RoleAdmin, "admin@example.com", "secret123")
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if actor.Role != model.RoleAdmin {
		t.Errorf("Role = %s, want admin", actor.Role)
	}
	if actor.Name != "Boss" {
		t.Errorf("Name = %s, want Boss", actor.Name)
	}
}

func TestAccountService_AuthenticateBadPassword(t *testing.T) {
	db := setupAccountTestDB(t)
	svc := newAccountService(db)
	ctx := context.Background()

	if _, err := svc.Register(ctx, model.RoleAdmin, validRegisterInput()); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	if _, err := svc.Authenticate(ctx, model.RoleAdmin, "admin@example.com", "wrong"); !errors.Is(err, ErrBadPassword) {
		t.Errorf("err = %v, want ErrBadPassword", err)
	}
}

func TestAccountService_AuthenticateUnknownEmail(t *testing.T) {
	db := setupAccountTestDB(t)
	svc := newAccountService(db)

	if _, err := svc.Authenticate(context.Background(), model.RoleUser, "nobody@example.com", "x"); !errors.Is(err, ErrNoSuchAccount) {
		t.Errorf("err = %v, want ErrNoSuchAccount", err)
	}
}
