package dto

// RegisterRequest 注册请求
// 必填校验与手机号规则都在业务边界完成，失败走 flash 重渲染而不是硬 400
type RegisterRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
	Name     string `form:"name" json:"name"`
	Phone    string `form:"phone" json:"phone"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// ShopRequest 建店请求
type ShopRequest struct {
	Name    string `form:"name" json:"name"`
	Address string `form:"address" json:"address"`
}
