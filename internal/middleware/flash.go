package middleware

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

// ==================== Flash 消息 ====================

// 一次性提示消息，随重定向写入短时 Cookie，下一次页面渲染时取出即焚。
// 用于注册/登录失败后的回显提示

const flashCookieName = "flash"

// SetFlash 写入 Flash 消息
func SetFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookieName, url.QueryEscape(message), 60, "/", "", false, true)
}

// TakeFlash 取出并清除 Flash 消息
func TakeFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashCookieName)
	if err != nil || raw == "" {
		return ""
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}
