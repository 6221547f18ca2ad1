package model

import "time"

// 通知发送状态常量
const (
	NotificationStatusPending = "pending" // 待发送
	NotificationStatusSent    = "sent"    // 已发送
	NotificationStatusFailed  = "failed"  // 发送失败
)

// Notification 降价通知发件箱
// 商品目录的更新事务提交后才入队，短信发送失败只标记本行，
// 永远不回滚已提交的目录数据
type Notification struct {
	BaseModel
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"` // uuid，对账用

	ItemName string `gorm:"size:100;not null" json:"item_name"`
	ShopName string `gorm:"size:100;not null" json:"shop_name"`
	OldPrice int64  `gorm:"not null" json:"old_price"`
	NewPrice int64  `gorm:"not null" json:"new_price"`
	Phone    string `gorm:"size:20;not null" json:"phone"` // 收件人手机号

	Status    string     `gorm:"size:20;index;default:'pending'" json:"status"`
	Attempts  int        `gorm:"default:0" json:"attempts"`
	LastError string     `gorm:"type:text" json:"last_error,omitempty"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
