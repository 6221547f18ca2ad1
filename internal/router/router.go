package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "shopmart_dev_v1_202609/docs"
	"shopmart_dev_v1_202609/internal/controller"
	"shopmart_dev_v1_202609/internal/middleware"
	"shopmart_dev_v1_202609/internal/model"
)

// Controllers 控制器集合
type Controllers struct {
	Page *controller.PageController
	Auth *controller.AuthController
	Shop *controller.ShopController
	Item *controller.ItemController
}

// SetupRouter 注册所有路由
// 路径保持与原站一致；受保护路由未登录统一 302 回 /login
func SetupRouter(ctl *Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Swagger 文档
	// 访问 http://localhost:8080/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ---- 公开页面 ----
	r.GET("/", ctl.Page.Home)
	r.GET("/about", ctl.Page.About)
	r.GET("/contact", ctl.Page.Contact)
	r.GET("/register", ctl.Page.Register)
	r.GET("/login", ctl.Page.Login)

	// ---- 注册 / 登录 ----
	r.GET("/regadmin", ctl.Auth.RegisterAdminPage)
	r.POST("/regadmin", ctl.Auth.RegisterAdmin)
	r.GET("/reguser", ctl.Auth.RegisterUserPage)
	r.POST("/reguser", ctl.Auth.RegisterUser)
	r.GET("/logadmin", ctl.Auth.LoginAdminPage)
	r.POST("/logadmin", ctl.Auth.LoginAdmin)
	r.GET("/loguser", ctl.Auth.LoginUserPage)
	r.POST("/loguser", ctl.Auth.LoginUser)
	r.GET("/logout", ctl.Auth.Logout)

	// ---- 公开浏览 ----
	r.GET("/all_shops", ctl.Shop.AllShops)
	r.GET("/all_items/:shop_id", ctl.Item.AllItems)

	// ---- 登录可见 ----
	authed := r.Group("/")
	authed.Use(middleware.SessionAuth())
	{
		authed.GET("/home_admin", ctl.Page.HomeAdmin)
	}

	// ---- 管理员专属：目录维护全流程 ----
	admin := r.Group("/")
	admin.Use(middleware.SessionAuth(), middleware.RequireRole(model.RoleAdmin))
	{
		admin.GET("/add-shop", ctl.Shop.AddShopPage)
		admin.POST("/add-shop", ctl.Shop.AddShop)

		admin.GET("/create_items/:shop_id", ctl.Item.CreateItemsPage)
		admin.POST("/create_items/:shop_id", ctl.Item.CreateItems)

		admin.GET("/fill_items/:shop_id/:num_items", ctl.Item.FillItemsPage)
		admin.POST("/fill_items/:shop_id/:num_items", ctl.Item.FillItems)

		admin.GET("/view_items", ctl.Item.ViewItems)

		admin.GET("/update_page/", ctl.Item.UpdatePage)
		admin.POST("/update_page/", ctl.Item.UpdatePage)

		admin.GET("/update_items/:shop_id", ctl.Item.UpdateItemsPage)
		admin.POST("/update_items/:shop_id", ctl.Item.UpdateItems)
	}

	return r
}
