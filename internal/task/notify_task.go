package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"shopmart_dev_v1_202609/internal/service"
)

// ==================== NotifyTask 通知投递任务 ====================

// NotifyTask 周期性投递发件箱里的降价通知
// 投递与请求线程完全解耦：目录事务先提交，短信随后批量发出，
// 任何发送失败都不会传染到已落库的数据
type NotifyTask struct {
	NotifyService *service.NotifyService
	Cron          *cron.Cron

	batchSize  int
	runTimeout time.Duration
}

// NewNotifyTask 创建通知投递任务
func NewNotifyTask(notifyService *service.NotifyService) *NotifyTask {
	return &NotifyTask{
		NotifyService: notifyService,
		Cron:          cron.New(cron.WithSeconds()), // 秒级调度
		batchSize:     100,
		runTimeout:    time.Minute,
	}
}

// Start 启动定时任务
func (t *NotifyTask) Start() {
	// 服务启动先清一次积压
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), t.runTimeout)
		defer cancel()
		t.dispatchJob(ctx)
	}()

	// 每 30 秒扫一轮发件箱
	_, err := t.Cron.AddFunc("*/30 * * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), t.runTimeout)
		defer cancel()
		t.dispatchJob(ctx)
	})
	if err != nil {
		log.Fatalf("[Task] 无法启动通知投递任务: %v", err)
	}

	t.Cron.Start()
	log.Println("[Task] 降价通知投递任务已启动 (每30秒一轮)")
}

// Stop 停止任务
func (t *NotifyTask) Stop() {
	t.Cron.Stop()
}

// dispatchJob 单轮投递
func (t *NotifyTask) dispatchJob(ctx context.Context) {
	sent, failed, err := t.NotifyService.DispatchPending(ctx, t.batchSize)
	if err != nil {
		log.Printf("[Task] 发件箱读取失败: %v", err)
		return
	}
	if sent > 0 || failed > 0 {
		log.Printf("[Task] 通知投递完成 sent=%d failed=%d", sent, failed)
	}
}
