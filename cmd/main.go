package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"shopmart_dev_v1_202609/internal/controller"
	"shopmart_dev_v1_202609/internal/middleware"
	"shopmart_dev_v1_202609/internal/model"
	"shopmart_dev_v1_202609/internal/repository"
	"shopmart_dev_v1_202609/internal/router"
	"shopmart_dev_v1_202609/internal/service"
	"shopmart_dev_v1_202609/internal/task"
	"shopmart_dev_v1_202609/pkg/database"
	"shopmart_dev_v1_202609/pkg/sms"
)

// @title ShopMart API
// @version 1.0
// @description 多租户零售库存服务：管理员开店建目录，用户浏览，降价触发短信通知
// @BasePath /
func main() {
	// 0. 加载 .env（不存在则直接用进程环境变量）
	_ = godotenv.Load()

	// 1. 初始化数据库
	db := initDatabase()

	// 2. 会话配置
	initSession()

	// 3. 初始化依赖
	deps := initDependencies(db)

	// 4. 启动定时任务
	notifyTask := initTasks(deps)

	// 5. 初始化路由
	r := router.SetupRouter(deps.Controllers)

	// 6. 启动服务（阻塞到收到退出信号）
	startServer(r)

	// 7. 停掉后台任务
	notifyTask.Stop()
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
// 全部依赖在这里显式组装并逐层注入，不使用进程级可变全局量
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	Admin        repository.AdminRepository
	User         repository.UserRepository
	Shop         repository.ShopRepository
	Item         repository.ItemRepository
	Notification repository.NotificationRepository
}

// Services 服务集合
type Services struct {
	Account *service.AccountService
	Shop    *service.ShopService
	Item    *service.ItemService
	Notify  *service.NotifyService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	return database.InitDB(
		getEnv("DATABASE_DSN", ""),
		getEnv("SQLITE_PATH", "shopmart.db"),
		// Account
		&model.Admin{}, &model.User{},
		// Catalog
		&model.Shop{}, &model.Item{},
		// Outbox
		&model.Notification{},
	)
}

// initSession 会话配置
func initSession() {
	cfg := middleware.DefaultSessionConfig()
	if secret := getEnv("SESSION_SECRET", ""); secret != "" {
		cfg.SecretKey = secret
	}
	if hours, err := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "")); err == nil && hours > 0 {
		cfg.TTL = time.Duration(hours) * time.Hour
	}
	middleware.SetSessionConfig(cfg)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		Admin:        repository.NewAdminRepository(db),
		User:         repository.NewUserRepository(db),
		Shop:         repository.NewShopRepository(db),
		Item:         repository.NewItemRepository(db),
		Notification: repository.NewNotificationRepository(db),
	}

	// -------- 短信通道 --------
	sender := initSmsSender()

	// -------- 业务服务 --------
	services := &Services{}
	services.Account = service.NewAccountService(repos.Admin, repos.User)
	services.Shop = service.NewShopService(repos.Shop)
	services.Notify = service.NewNotifyService(repos.Notification, sender)
	services.Item = service.NewItemService(repos.Item, repos.Shop, services.Notify)

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Page: controller.NewPageController(),
		Auth: controller.NewAuthController(services.Account),
		Shop: controller.NewShopController(services.Shop),
		Item: controller.NewItemController(services.Shop, services.Item, services.Account),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// initSmsSender 初始化短信发送器
// 凭证缺失或显式关闭时退化为日志输出，不影响主流程
func initSmsSender() sms.Sender {
	if getEnv("SMS_DISABLED", "") == "true" {
		log.Println("[SMS] 短信发送已禁用，使用日志输出")
		return sms.LogSender{}
	}

	sid := getEnv("TWILIO_ACCOUNT_SID", "")
	token := getEnv("TWILIO_AUTH_TOKEN", "")
	from := getEnv("TWILIO_FROM_NUMBER", "")
	if sid == "" || token == "" || from == "" {
		log.Println("[SMS] 警告: Twilio 凭证未配置，短信退化为日志输出")
		return sms.LogSender{}
	}

	return sms.NewTwilioSender(sms.TwilioConfig{
		AccountSID: sid,
		AuthToken:  token,
		FromNumber: from,
	})
}

// initTasks 启动定时任务
func initTasks(deps *Dependencies) *task.NotifyTask {
	notifyTask := task.NewNotifyTask(deps.Services.Notify)
	notifyTask.Start()
	log.Println("定时任务已启动")
	return notifyTask
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(handler http.Handler) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// getEnv 读取环境变量，空则取默认值
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
