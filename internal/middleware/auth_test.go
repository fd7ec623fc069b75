package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geronimocrm/internal/authz"
)

func signTestToken(t *testing.T, claims Claims) string {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JWTKey)
	require.NoError(t, err)
	return signed
}

func newGuardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware())
	r.Use(ReadOnlyGuard())
	r.GET("/ping", func(c *gin.Context) {
		uid, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": uid})
	})
	r.POST("/ping", func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.POST("/admin-only", RequireRoles(authz.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.POST("/management-only", RequireElevated(), func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doReq(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validClaims(role string) Claims {
	return Claims{
		UserID:   7,
		Username: "kwame",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestAuthMiddleware(t *testing.T) {
	r := newGuardedRouter()

	t.Run("login stays public", func(t *testing.T) {
		w := doReq(r, http.MethodPost, "/login", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		w := doReq(r, http.MethodGet, "/ping", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doReq(r, http.MethodGet, "/ping", "not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := validClaims("Admin")
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
		w := doReq(r, http.MethodGet, "/ping", signTestToken(t, claims))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token reaches the handler with identity set", func(t *testing.T) {
		w := doReq(r, http.MethodGet, "/ping", signTestToken(t, validClaims("Sales Rep")))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":7`)
	})
}

func TestRoleGuards(t *testing.T) {
	r := newGuardedRouter()

	t.Run("viewer may read", func(t *testing.T) {
		w := doReq(r, http.MethodGet, "/ping", signTestToken(t, validClaims(authz.RoleViewer)))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("viewer may not write", func(t *testing.T) {
		w := doReq(r, http.MethodPost, "/ping", signTestToken(t, validClaims(authz.RoleViewer)))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("sales rep blocked from admin routes", func(t *testing.T) {
		w := doReq(r, http.MethodPost, "/admin-only", signTestToken(t, validClaims(authz.RoleSalesRep)))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		w := doReq(r, http.MethodPost, "/admin-only", signTestToken(t, validClaims(authz.RoleAdmin)))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("marketing manager counts as management", func(t *testing.T) {
		w := doReq(r, http.MethodPost, "/management-only", signTestToken(t, validClaims(authz.RoleMarketingManager)))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("sales rep is not management", func(t *testing.T) {
		w := doReq(r, http.MethodPost, "/management-only", signTestToken(t, validClaims(authz.RoleSalesRep)))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
