package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func adminTestRouter(claims jwt.MapClaims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin/stats", func(ctx *gin.Context) {
		if claims != nil {
			ctx.Set("user", claims)
		}
		ctx.Next()
	}, RequireAdmin(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRequireAdminAllowsAdminRole(t *testing.T) {
	router := adminTestRouter(jwt.MapClaims{"user_id": float64(1), "role": "admin"})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireAdminRejectsUserRole(t *testing.T) {
	router := adminTestRouter(jwt.MapClaims{"user_id": float64(1), "role": "user"})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireAdminRejectsMissingClaims(t *testing.T) {
	router := adminTestRouter(nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthClaimHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Set("user", jwt.MapClaims{
		"user_id": float64(42),
		"email":   "buyer@example.com",
		"role":    "admin",
	})

	id, ok := AuthUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	email, ok := AuthUserEmail(ctx)
	assert.True(t, ok)
	assert.Equal(t, "buyer@example.com", email)

	assert.True(t, IsAdmin(ctx))
}

func TestAuthClaimHelpersWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := AuthUserID(ctx)
	assert.False(t, ok)
	assert.False(t, IsAdmin(ctx))
}
