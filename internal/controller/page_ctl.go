package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopmart_dev_v1_202609/internal/middleware"
)

// ==================== PageController 静态页面 ====================

// PageController 无业务逻辑的入口页面
type PageController struct{}

// NewPageController 创建页面控制器
func NewPageController() *PageController {
	return &PageController{}
}

// Home 首页
// @Summary 首页
// @Tags Page
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (p *PageController) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code": 0,
		"page": "index",
	})
}

// Register 注册入口页（选择身份）
// @Summary 注册入口
// @Tags Page
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /register [get]
func (p *PageController) Register(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":  0,
		"page":  "register",
		"flash": middleware.TakeFlash(c),
	})
}

// Login 登录入口页（选择身份）
// @Summary 登录入口
// @Tags Page
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /login [get]
func (p *PageController) Login(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":  0,
		"page":  "login",
		"flash": middleware.TakeFlash(c),
	})
}

// HomeAdmin 管理员登录后的落地页
// @Summary 管理员落地页
// @Tags Page
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /home_admin [get]
func (p *PageController) HomeAdmin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":  0,
		"page":  "home_admin",
		"admin": middleware.GetActorName(c),
	})
}

// About 关于页
func (p *PageController) About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "page": "about"})
}

// Contact 联系页
func (p *PageController) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "page": "contact"})
}
