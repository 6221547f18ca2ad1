package model

// 账户角色常量
// Admin 和 User 是两套独立的登录主体，分表存储，不共享 ID 空间
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Admin 店铺管理员账户
// 只有 Admin 能开店和维护商品目录
type Admin struct {
	BaseModel
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt 哈希，绝不存明文
	Name     string `gorm:"size:100;not null" json:"name"`
	Phone    string `gorm:"size:20;not null" json:"phone"` // 注册时校验必须为 10 位数字
	Role     string `gorm:"size:20;default:'admin'" json:"role"`

	// 名下店铺 (Has Many)
	Shops []Shop `gorm:"foreignKey:AdminID" json:"shops,omitempty"`
}

// User 普通购物用户账户
// 与 Admin 同构但分表，互相独立，无店铺归属关系
type User struct {
	BaseModel
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Phone    string `gorm:"size:20;not null" json:"phone"`
	Role     string `gorm:"size:20;default:'user'" json:"role"`
}

func (Admin) TableName() string {
	return "admins"
}

func (User) TableName() string {
	return "users"
}
