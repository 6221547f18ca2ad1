package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopmart_dev_v1_202609/internal/api/dto"
	"shopmart_dev_v1_202609/internal/middleware"
	"shopmart_dev_v1_202609/internal/model"
	"shopmart_dev_v1_202609/internal/service"
)

// ==================== AuthController 注册与登录 ====================

// AuthController 注册与登录控制器
// Admin 和 User 各有独立的注册/登录路由，但流程同构
type AuthController struct {
	accountService *service.AccountService
}

// NewAuthController 创建认证控制器
func NewAuthController(accountService *service.AccountService) *AuthController {
	return &AuthController{accountService: accountService}
}

// ==================== 注册 ====================

// RegisterAdminPage 管理员注册页
// @Summary 管理员注册页
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /regadmin [get]
func (a *AuthController) RegisterAdminPage(c *gin.Context) {
	renderRegisterPage(c, "regadmin")
}

// RegisterUserPage 用户注册页
func (a *AuthController) RegisterUserPage(c *gin.Context) {
	renderRegisterPage(c, "reguser")
}

// RegisterAdmin 管理员注册提交
// @Summary 管理员注册
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Param email formData string true "邮箱"
// @Param password formData string true "密码"
// @Param name formData string true "姓名"
// @Param phone formData string true "10 位手机号"
// @Success 303
// @Router /regadmin [post]
func (a *AuthController) RegisterAdmin(c *gin.Context) {
	a.register(c, model.RoleAdmin, "/regadmin")
}

// RegisterUser 用户注册提交
func (a *AuthController) RegisterUser(c *gin.Context) {
	a.register(c, model.RoleUser, "/reguser")
}

// register 共用注册流程
// 校验失败不落任何数据，flash 提示后回到注册页重填；成功去登录
func (a *AuthController) register(c *gin.Context, role, backPath string) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.SetFlash(c, "参数错误: "+err.Error())
		c.Redirect(http.StatusSeeOther, backPath)
		return
	}

	_, err := a.accountService.Register(c.Request.Context(), role, &service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFieldsRequired),
			errors.Is(err, service.ErrInvalidPhone),
			errors.Is(err, service.ErrEmailTaken):
			middleware.SetFlash(c, err.Error())
			c.Redirect(http.StatusSeeOther, backPath)
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": err.Error(),
			})
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

// ==================== 登录 ====================

// LoginAdminPage 管理员登录页
// @Summary 管理员登录页
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /logadmin [get]
func (a *AuthController) LoginAdminPage(c *gin.Context) {
	renderLoginPage(c, "logadmin")
}

// LoginUserPage 用户登录页
func (a *AuthController) LoginUserPage(c *gin.Context) {
	renderLoginPage(c, "loguser")
}

// LoginAdmin 管理员登录提交
// @Summary 管理员登录
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Param email formData string true "邮箱"
// @Param password formData string true "密码"
// @Success 303
// @Router /logadmin [post]
func (a *AuthController) LoginAdmin(c *gin.Context) {
	a.login(c, model.RoleAdmin, "/logadmin", "/home_admin")
}

// LoginUser 用户登录提交
// 普通用户登录后直接进店铺浏览
func (a *AuthController) LoginUser(c *gin.Context) {
	a.login(c, model.RoleUser, "/loguser", "/all_shops")
}

// login 共用登录流程
// 账号不存在和密码错误都只 flash 回登录页，不建会话
func (a *AuthController) login(c *gin.Context, role, backPath, landing string) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.SetFlash(c, "参数错误: "+err.Error())
		c.Redirect(http.StatusSeeOther, backPath)
		return
	}

	actor, err := a.accountService.Authenticate(c.Request.Context(), role, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSuchAccount), errors.Is(err, service.ErrBadPassword):
			middleware.SetFlash(c, err.Error())
			c.Redirect(http.StatusSeeOther, backPath)
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": err.Error(),
			})
		}
		return
	}

	token, err := middleware.GenerateSessionToken(actor.ID, actor.Name, actor.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": err.Error(),
		})
		return
	}

	middleware.SetSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, landing)
}

// ==================== 登出 ====================

// Logout 登出并回首页
// @Summary 登出
// @Tags Auth
// @Success 302
// @Router /logout [get]
func (a *AuthController) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

// ==================== 渲染辅助 ====================

func renderRegisterPage(c *gin.Context, page string) {
	c.JSON(http.StatusOK, gin.H{
		"code":   0,
		"page":   page,
		"flash":  middleware.TakeFlash(c),
		"fields": []string{"email", "password", "name", "phone"},
	})
}

func renderLoginPage(c *gin.Context, page string) {
	c.JSON(http.StatusOK, gin.H{
		"code":   0,
		"page":   page,
		"flash":  middleware.TakeFlash(c),
		"fields": []string{"email", "password"},
	})
}
