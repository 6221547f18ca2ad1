package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopmart_dev_v1_202609/internal/api/dto"
	"shopmart_dev_v1_202609/internal/forms"
	"shopmart_dev_v1_202609/internal/middleware"
	"shopmart_dev_v1_202609/internal/model"
	"shopmart_dev_v1_202609/internal/service"
)

// ==================== ItemController 商品目录流程 ====================

// ItemController 商品目录控制器
// 承载 选数量 -> 批量录入 -> 查看 -> 批量更新 的完整流程
type ItemController struct {
	shopService    *service.ShopService
	itemService    *service.ItemService
	accountService *service.AccountService
}

// NewItemController 创建商品控制器
func NewItemController(shopService *service.ShopService, itemService *service.ItemService, accountService *service.AccountService) *ItemController {
	return &ItemController{
		shopService:    shopService,
		itemService:    itemService,
		accountService: accountService,
	}
}

// ==================== 第一步：选商品数量 ====================

// CreateItemsPage 数量选择页
// @Summary 商品数量选择页
// @Tags Item
// @Produce json
// @Security SessionCookie
// @Param shop_id path int true "店铺 ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /create_items/{shop_id} [get]
func (i *ItemController) CreateItemsPage(c *gin.Context) {
	shop, ok := i.loadShop(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 0,
		"page": "create_items",
		"shop": dto.FromShop(shop),
		"form": forms.ItemCountForm(),
	})
}

// CreateItems 数量选择提交
// 只做表单校验并跳转到录入步骤，不落库
// @Summary 提交商品数量
// @Tags Item
// @Accept x-www-form-urlencoded
// @Security SessionCookie
// @Param shop_id path int true "店铺 ID"
// @Param number_of_items formData int true "商品数量"
// @Success 303
// @Failure 400 {object} map[string]interface{}
// @Router /create_items/{shop_id} [post]
func (i *ItemController) CreateItems(c *gin.Context) {
	shop, ok := i.loadShop(c)
	if !ok {
		return
	}

	form := forms.ItemCountForm()
	if !form.Bind(c.PostForm) {
		renderFormErrors(c, "create_items", form)
		return
	}

	n := form.Int("number_of_items")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/fill_items/%d/%d", shop.ID, n))
}

// ==================== 第二步：批量录入 ====================

// FillItemsPage 批量录入页
// N 以路径参数为权威来源，渲染与提交由同一来源推导，保证模式一致
// @Summary 批量录入页
// @Tags Item
// @Produce json
// @Security SessionCookie
// @Param shop_id path int true "店铺 ID"
// @Param num_items path int true "商品数量"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /fill_items/{shop_id}/{num_items} [get]
func (i *ItemController) FillItemsPage(c *gin.Context) {
	shop, ok := i.loadShop(c)
	if !ok {
		return
	}
	n, ok := parseNumItems(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":      0,
		"page":      "fill_items",
		"shop":      dto.FromShop(shop),
		"num_items": n,
		"form":      forms.FillItemsForm(n),
	})
}

// FillItems 批量录入提交
// 任意一行校验失败整批拒绝并带值重渲染；成功单事务写入后跳转查看页
// @Summary 批量创建商品
// @Tags Item
// @Accept x-www-form-urlencoded
// @Security SessionCookie
// @Param shop_id path int true "店铺 ID"
// @Param num_items path int true "商品数量"
// @Success 303
// @Failure 400 {object} map[string]interface{}
// @Router /fill_items/{shop_id}/{num_items} [post]
func (i *ItemController) FillItems(c *gin.Context) {
	shop, ok := i.loadShop(c)
	if !ok {
		return
	}
	n, ok := parseNumItems(c)
	if !ok {
		return
	}

	form := forms.FillItemsForm(n)
	if !form.Bind(c.PostForm) {
		renderFormErrors(c, "fill_items", form)
		return
	}

	if _, err := i.itemService.CreateItems(c.Request.Context(), shop.ID, form.ItemRows(n)); err != nil {
		if errors.Is(err, service.ErrInvalidItemRow) {
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": err.Error(),
				"form":    form,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": err.Error(),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/view_items")
}

// ==================== 查看 ====================

// ViewItems 管理员的全部店铺与商品
// @Summary 管理员目录总览
// @Tags Item
// @Produce json
// @Security SessionCookie
// @Success 200 {object} map[string]interface{}
// @Router /view_items [get]
func (i *ItemController) ViewItems(c *gin.Context) {
	shops, items, err := i.itemService.AdminCatalog(c.Request.Context(), middleware.GetActorID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":  0,
		"page":  "view_items",
		"shops": dto.FromShops(shops),
		"items": dto.FromItems(items),
	})
}

// AllItems 公开浏览某店铺的商品
// @Summary 店铺商品列表
// @Tags Item
// @Produce json
// @Param shop_id path int true "店铺 ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /all_items/{shop_id} [get]
func (i *ItemController) AllItems(c *gin.Context) {
	shop, ok := i.loadShop(c)
	if !ok {
		return
	}

	shops, err := i.shopService.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": err.Error(),
		})
		return
	}

	items, err := i.itemService.ListByShop(c.Request.Context(), shop.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":          0,
		"page":          "all_items",
		"shops":         dto.FromShops(shops),
		"selected_shop": dto.FromShop(shop),
		"items":         dto.FromItems(items),
	})
}

// ==================== 批量更新 ====================

// UpdatePage 选择要改价的店铺
// @Summary 改价店铺选择页
// @Tags Item
// @Produce json
// @Security SessionCookie
// @Success 200 {object} map[string]interface{}
// @Router /update_page/ [get]
func (i *ItemController) UpdatePage(c *gin.Context) {
	shops, err := i.shopService.ListByAdmin(c.Request.Context(), middleware.GetActorID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":  0,
		"page":  "update_page",
		"shops": dto.FromShops(shops),
	})
}

// UpdateItemsPage 批量更新页
// N 从店铺当前商品列表长度推导，current 值与隐藏 original_price 一并回填
// @Summary 批量更新页
// @Tags Item
// @Produce json
// @Security SessionCookie
// @Param shop_id path int true "店铺 ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /update_items/{shop_id} [get]
func (i *ItemController) UpdateItemsPage(c *gin.Context) {
	shop, ok := i.loadShop(c)
	if !ok {
		return
	}

	items, err := i.itemService.ListByShop(c.Request.Context(), shop.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 0,
		"page": "update_items",
		"shop": dto.FromShop(shop),
		"form": forms.UpdateItemsForm(items),
	})
}

// UpdateItems 批量更新提交
// 单事务覆盖写入，事务提交后对每个降价商品触发一条通知
// @Summary 批量更新商品
// @Tags Item
// @Accept x-www-form-urlencoded
// @Security SessionCookie
// @Param shop_id path int true "店铺 ID"
// @Success 303
// @Failure 400 {object} map[string]interface{}
// @Router /update_items/{shop_id} [post]
func (i *ItemController) UpdateItems(c *gin.Context) {
	shop, ok := i.loadShop(c)
	if !ok {
		return
	}

	// 提交侧同样以当前商品列表为权威来源推导 N
	items, err := i.itemService.ListByShop(c.Request.Context(), shop.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": err.Error(),
		})
		return
	}

	form := forms.UpdateItemsForm(items)
	if !form.Bind(c.PostForm) {
		renderFormErrors(c, "update_items", form)
		return
	}

	// 降价短信发给店主注册手机号
	notifyPhone := ""
	if admin, err := i.accountService.GetAdmin(c.Request.Context(), shop.AdminID); err == nil && admin != nil {
		notifyPhone = admin.Phone
	}

	_, err = i.itemService.UpdateItems(c.Request.Context(), shop, form.ItemRows(len(items)), notifyPhone)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidItemRow), errors.Is(err, service.ErrFormShapeChanged):
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": err.Error(),
				"form":    form,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": err.Error(),
			})
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/view_items")
}

// ==================== 辅助 ====================

// loadShop 解析路径里的 shop_id 并取店铺
// 参数非法或店铺不存在一律 404 终止请求
func (i *ItemController) loadShop(c *gin.Context) (*model.Shop, bool) {
	id, err := strconv.ParseInt(c.Param("shop_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "店铺不存在",
		})
		return nil, false
	}

	shop, err := i.shopService.GetShop(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "店铺不存在",
			})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": err.Error(),
		})
		return nil, false
	}
	return shop, true
}

// parseNumItems 解析路径里的 num_items，必须为正整数
func parseNumItems(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("num_items"))
	if err != nil || n < 1 {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "无效的商品数量",
		})
		return 0, false
	}
	return n, true
}

// renderFormErrors 带字段级错误与已填值重渲染表单
func renderFormErrors(c *gin.Context, page string, form *forms.Form) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":    400,
		"message": "表单校验失败",
		"page":    page,
		"form":    form,
	})
}
