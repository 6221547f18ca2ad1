package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ==================== 会话配置 ====================

// SessionConfig 会话配置
type SessionConfig struct {
	SecretKey  string        // 签名密钥
	TTL        time.Duration // 会话有效期
	Issuer     string        // 签发者
	CookieName string        // 会话 Cookie 名
	LoginPath  string        // 未登录时的统一跳转入口
}

// DefaultSessionConfig 默认配置
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		SecretKey:  "shopmart-secret-key-change-in-production",
		TTL:        24 * time.Hour,
		Issuer:     "shopmart",
		CookieName: "session",
		LoginPath:  "/login",
	}
}

// 全局配置
var sessionConfig = DefaultSessionConfig()

// SetSessionConfig 设置会话配置
func SetSessionConfig(cfg *SessionConfig) {
	sessionConfig = cfg
}

// GetSessionConfig 获取会话配置
func GetSessionConfig() *SessionConfig {
	return sessionConfig
}

// ==================== Claims 定义 ====================

// SessionClaims 会话声明
// ActorID + Role 唯一确定当前操作者（Admin 或 User 两类主体分表，ID 空间独立）
type SessionClaims struct {
	ActorID int64  `json:"actor_id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// ==================== Token 生成与解析 ====================

// GenerateSessionToken 生成会话 Token
func GenerateSessionToken(actorID int64, name, role string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		ActorID: actorID,
		Name:    name,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionConfig.Issuer,
			Subject:   "session",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionConfig.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(sessionConfig.SecretKey))
}

// ParseSessionToken 解析会话 Token
func ParseSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(sessionConfig.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// ==================== Cookie 读写 ====================

// SetSessionCookie 登录成功后写入会话 Cookie
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionConfig.CookieName, token,
		int(sessionConfig.TTL.Seconds()), "/", "", false, true)
}

// ClearSessionCookie 登出时清除会话 Cookie
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionConfig.CookieName, "", -1, "/", "", false, true)
}

// ==================== Gin 中间件 ====================

// Context Keys
const (
	ContextKeyActorID = "actor_id"
	ContextKeyName    = "actor_name"
	ContextKeyRole    = "actor_role"
)

// SessionAuth 会话认证中间件
// 受保护路由的统一恢复路径是跳转登录入口，而不是抛错
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(sessionConfig.CookieName)
		if err != nil || tokenString == "" {
			c.Redirect(http.StatusFound, sessionConfig.LoginPath)
			c.Abort()
			return
		}

		claims, err := ParseSessionToken(tokenString)
		if err != nil || claims.Subject != "session" {
			ClearSessionCookie(c)
			c.Redirect(http.StatusFound, sessionConfig.LoginPath)
			c.Abort()
			return
		}

		c.Set(ContextKeyActorID, claims.ActorID)
		c.Set(ContextKeyName, claims.Name)
		c.Set(ContextKeyRole, claims.Role)

		c.Next()
	}
}

// RequireRole 角色校验中间件
// 角色不符与未登录同等处理：回登录入口重新选择身份
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetActorRole(c)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.Redirect(http.StatusFound, sessionConfig.LoginPath)
		c.Abort()
	}
}

// ==================== 辅助函数 ====================

// GetActorID 从 Context 获取当前操作者 ID
func GetActorID(c *gin.Context) int64 {
	if id, exists := c.Get(ContextKeyActorID); exists {
		return id.(int64)
	}
	return 0
}

// GetActorName 从 Context 获取当前操作者名称
func GetActorName(c *gin.Context) string {
	if name, exists := c.Get(ContextKeyName); exists {
		return name.(string)
	}
	return ""
}

// GetActorRole 从 Context 获取当前操作者角色
func GetActorRole(c *gin.Context) string {
	if role, exists := c.Get(ContextKeyRole); exists {
		return role.(string)
	}
	return ""
}
