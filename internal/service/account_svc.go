package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"shopmart_dev_v1_202609/internal/model"
	"shopmart_dev_v1_202609/internal/repository"
)

// ==================== 错误定义 ====================

var (
	ErrFieldsRequired = errors.New("邮箱、密码、姓名、手机号均为必填")
	ErrInvalidPhone   = errors.New("手机号必须为 10 位数字")
	ErrEmailTaken     = errors.New("该邮箱已注册")
	ErrNoSuchAccount  = errors.New("该邮箱不存在，请重试")
	ErrBadPassword    = errors.New("密码错误，请重试")
	ErrUnknownRole    = errors.New("未知账户类型")
)

// ==================== AccountService 账户服务 ====================

// Actor 认证通过后的当前操作者
type Actor struct {
	ID    int64
	Email string
	Name  string
	Phone string
	Role  string
}

// RegisterInput 注册输入
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// AccountService 账户服务
// Admin 与 User 两类主体同构但分表，以 role 选表
type AccountService struct {
	adminRepo repository.AdminRepository
	userRepo  repository.UserRepository
}

// NewAccountService 创建账户服务
func NewAccountService(adminRepo repository.AdminRepository, userRepo repository.UserRepository) *AccountService {
	return &AccountService{adminRepo: adminRepo, userRepo: userRepo}
}

// ==================== 注册 ====================

// Register 注册账户
// 手机号校验在业务边界完成，不合法直接拒绝，不产生半行数据
func (s *AccountService) Register(ctx context.Context, role string, in *RegisterInput) (*Actor, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" || in.Phone == "" {
		return nil, ErrFieldsRequired
	}
	if !isTenDigitPhone(in.Phone) {
		return nil, ErrInvalidPhone
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	switch role {
	case model.RoleAdmin:
		exists, err := s.adminRepo.ExistsByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailTaken
		}
		admin := &model.Admin{
			Email:    in.Email,
			Password: string(hashed),
			Name:     in.Name,
			Phone:    in.Phone,
			Role:     model.RoleAdmin,
		}
		if err := s.adminRepo.Create(ctx, admin); err != nil {
			return nil, err
		}
		return adminActor(admin), nil

	case model.RoleUser:
		exists, err := s.userRepo.ExistsByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailTaken
		}
		user := &model.User{
			Email:    in.Email,
			Password: string(hashed),
			Name:     in.Name,
			Phone:    in.Phone,
			Role:     model.RoleUser,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		return userActor(user), nil
	}

	return nil, ErrUnknownRole
}

// ==================== 认证 ====================

// Authenticate 认证账户
// 邮箱唯一，最多一条匹配；不区分返回"账号不存在"与"密码错误"两类失败
func (s *AccountService) Authenticate(ctx context.Context, role, email, password string) (*Actor, error) {
	switch role {
	case model.RoleAdmin:
		admin, err := s.adminRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if admin == nil {
			return nil, ErrNoSuchAccount
		}
		if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
			return nil, ErrBadPassword
		}
		return adminActor(admin), nil

	case model.RoleUser:
		user, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrNoSuchAccount
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
			return nil, ErrBadPassword
		}
		return userActor(user), nil
	}

	return nil, ErrUnknownRole
}

// GetAdmin 按 ID 取管理员
func (s *AccountService) GetAdmin(ctx context.Context, id int64) (*model.Admin, error) {
	return s.adminRepo.GetByID(ctx, id)
}

// ==================== 辅助 ====================

func adminActor(a *model.Admin) *Actor {
	return &Actor{ID: a.ID, Email: a.Email, Name: a.Name, Phone: a.Phone, Role: model.RoleAdmin}
}

func userActor(u *model.User) *Actor {
	return &Actor{ID: u.ID, Email: u.Email, Name: u.Name, Phone: u.Phone, Role: model.RoleUser}
}

// isTenDigitPhone 注册手机号约束：恰好 10 位数字
func isTenDigitPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
