package sms

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// ==================== Sender 契约 ====================

// Sender 短信发送契约
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

// ==================== Twilio 实现 ====================

// TwilioConfig Twilio 凭证
// 全部来自环境变量，生产部署绝不写死
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// TwilioSender 通过 Twilio Messages API 发送短信
type TwilioSender struct {
	client *resty.Client
	cfg    TwilioConfig
}

// NewTwilioSender 创建 Twilio 发送器
func NewTwilioSender(cfg TwilioConfig) *TwilioSender {
	client := resty.New().
		SetBaseURL("https://api.twilio.com").
		SetTimeout(10 * time.Second). // 短信投递不能拖住调度循环
		SetBasicAuth(cfg.AccountSID, cfg.AuthToken)

	return &TwilioSender{client: client, cfg: cfg}
}

// Send 发送一条短信
func (t *TwilioSender) Send(ctx context.Context, to, body string) error {
	resp, err := t.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"To":   to,
			"From": t.cfg.FromNumber,
			"Body": body,
		}).
		Post(fmt.Sprintf("/2010-04-01/Accounts/%s/Messages.json", t.cfg.AccountSID))
	if err != nil {
		return fmt.Errorf("twilio request failed: %w", err)
	}

	// Twilio 成功返回 201
	if resp.StatusCode() >= 300 {
		return fmt.Errorf("twilio rejected message: status %d, body %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// ==================== 本地实现 ====================

// LogSender 只打日志不真发，开发环境与 SMS_DISABLED=true 时使用
type LogSender struct{}

// Send 打印将要发送的内容
func (LogSender) Send(_ context.Context, to, body string) error {
	log.Printf("[SMS] (disabled) to=%s body=%q", to, body)
	return nil
}
