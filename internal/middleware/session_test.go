package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== Token 生成与解析 ====================

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken(42, "Boss", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseSessionToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.ActorID)
	assert.Equal(t, "Boss", claims.Name)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "session", claims.Subject)
}

func TestParseSessionTokenRejectsGarbage(t *testing.T) {
	_, err := ParseSessionToken("not-a-token")
	assert.Error(t, err)
}

func TestParseSessionTokenRejectsWrongKey(t *testing.T) {
	old := GetSessionConfig()
	defer SetSessionConfig(old)

	SetSessionConfig(&SessionConfig{
		SecretKey:  "key-a",
		TTL:        old.TTL,
		Issuer:     old.Issuer,
		CookieName: old.CookieName,
		LoginPath:  old.LoginPath,
	})
	token, err := GenerateSessionToken(1, "Boss", "admin")
	assert.NoError(t, err)

	// 换密钥后旧 Token 全部失效
	SetSessionConfig(&SessionConfig{
		SecretKey:  "key-b",
		TTL:        old.TTL,
		Issuer:     old.Issuer,
		CookieName: old.CookieName,
		LoginPath:  old.LoginPath,
	})
	_, err = ParseSessionToken(token)
	assert.Error(t, err)
}

// ==================== 认证中间件 ====================

func authTestRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", SessionAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"actor_id": GetActorID(c)})
	})
	r.GET("/admin-only", SessionAuth(), RequireRole("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": GetActorRole(c)})
	})
	return r
}

func TestSessionAuthNoCookieRedirects(t *testing.T) {
	r := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestSessionAuthBadTokenRedirects(t *testing.T) {
	r := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "tampered"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestSessionAuthValidToken(t *testing.T) {
	r := authTestRouter()

	token, err := GenerateSessionToken(7, "Boss", "admin")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"actor_id":7`)
}

func TestRequireRoleBlocksOtherRoles(t *testing.T) {
	r := authTestRouter()

	token, err := GenerateSessionToken(7, "Visitor", "user")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

// ==================== Flash 消息 ====================

func TestFlashRoundTrip(t *testing.T) {
	r := gin.New()
	r.GET("/set", func(c *gin.Context) {
		SetFlash(c, "手机号必须为 10 位数字")
		c.Status(http.StatusOK)
	})
	r.GET("/take", func(c *gin.Context) {
		c.String(http.StatusOK, TakeFlash(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))

	var flash *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "flash" {
			flash = ck
		}
	}
	assert.NotNil(t, flash)

	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/take", nil)
	req.AddCookie(flash)
	r.ServeHTTP(w2, req)

	assert.Equal(t, "手机号必须为 10 位数字", w2.Body.String())

	// 取出后 Cookie 被清除
	cleared := false
	for _, ck := range w2.Result().Cookies() {
		if ck.Name == "flash" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}
