package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopmart_dev_v1_202609/internal/api/dto"
	"shopmart_dev_v1_202609/internal/middleware"
	"shopmart_dev_v1_202609/internal/service"
)

// ==================== ShopController 店铺控制器 ====================

// ShopController 店铺控制器
type ShopController struct {
	shopService *service.ShopService
}

// NewShopController 创建店铺控制器
func NewShopController(shopService *service.ShopService) *ShopController {
	return &ShopController{shopService: shopService}
}

// AddShopPage 建店页
// @Summary 建店页
// @Tags Shop
// @Produce json
// @Security SessionCookie
// @Success 200 {object} map[string]interface{}
// @Router /add-shop [get]
func (s *ShopController) AddShopPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":   0,
		"page":   "add-shop",
		"flash":  middleware.TakeFlash(c),
		"fields": []string{"name", "address"},
	})
}

// AddShop 建店提交
// 成功后直接进入该店的商品数量选择步骤
// @Summary 创建店铺
// @Tags Shop
// @Accept x-www-form-urlencoded
// @Security SessionCookie
// @Param name formData string true "店铺名"
// @Param address formData string true "地址"
// @Success 303
// @Router /add-shop [post]
func (s *ShopController) AddShop(c *gin.Context) {
	var req dto.ShopRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.SetFlash(c, "参数错误: "+err.Error())
		c.Redirect(http.StatusSeeOther, "/add-shop")
		return
	}

	shop, err := s.shopService.CreateShop(c.Request.Context(), middleware.GetActorID(c), req.Name, req.Address)
	if err != nil {
		if errors.Is(err, service.ErrShopFieldsRequired) {
			middleware.SetFlash(c, err.Error())
			c.Redirect(http.StatusSeeOther, "/add-shop")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": err.Error(),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/create_items/%d", shop.ID))
}

// AllShops 公开店铺列表
// @Summary 全部店铺
// @Tags Shop
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /all_shops [get]
func (s *ShopController) AllShops(c *gin.Context) {
	shops, err := s.shopService.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": dto.FromShops(shops),
	})
}
