package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func signupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/signup", Signup)
	return router
}

func signupRequest(email string) *http.Request {
	body := `{"fullname":"Mina Park","email":"` + email + `","password":"glowglow1"}`
	return httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
}

func TestSignupDuplicateEmailReturnsBadRequest(t *testing.T) {
	newTestDB(t)
	router := signupRouter()

	first := httptest.NewRecorder()
	router.ServeHTTP(first, signupRequest("mina@example.com"))
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

	second := httptest.NewRecorder()
	router.ServeHTTP(second, signupRequest("mina@example.com"))
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Contains(t, second.Body.String(), msgUserAlreadyExists)
}

func TestSignupConcurrentDuplicateReturnsBadRequest(t *testing.T) {
	db := newTestDB(t)
	router := signupRouter()

	// A competing signup lands after the existence check but before the
	// insert; the unique index must surface as the same 400, not a 500.
	require.NoError(t, db.Callback().Create().Before("gorm:create").
		Register("competing_signup", func(tx *gorm.DB) {
			if tx.Statement.Table != "users" {
				return
			}
			tx.Session(&gorm.Session{NewDB: true}).Exec(
				"INSERT INTO users (fullname, email, password, role) VALUES (?, ?, ?, ?)",
				"Mina Park", "mina@example.com", "x", "user")
		}))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, signupRequest("mina@example.com"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code, recorder.Body.String())
	assert.Contains(t, recorder.Body.String(), msgUserAlreadyExists)
}
