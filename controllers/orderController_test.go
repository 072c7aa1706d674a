package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/seoulglow/seoulglow-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func orderStatusRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PATCH("/admin/order/:orderId", UpdateOrderStatus)
	return router
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	router := orderStatusRouter()

	for _, status := range []string{"REFUNDED", "pending", "Completed", ""} {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/admin/order/1",
			strings.NewReader(`{"status":"`+status+`"}`))
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code, "status %q", status)
		assert.Contains(t, recorder.Body.String(), "Invalid order status")
	}
}

func TestUpdateOrderStatusRejectsBadBody(t *testing.T) {
	router := orderStatusRouter()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/admin/order/1", strings.NewReader(`{`))
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateOrderStatusPersistsTransition(t *testing.T) {
	db := newTestDB(t)
	order := models.Order{UserID: 1, Status: models.OrderStatusPending, PaymentSessionID: "cs_patch_ok"}
	require.NoError(t, db.Create(&order).Error)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/admin/order/%d", order.ID),
		strings.NewReader(`{"status":"PROCESSING"}`))
	orderStatusRouter().ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var refreshed models.Order
	require.NoError(t, db.First(&refreshed, order.ID).Error)
	assert.Equal(t, models.OrderStatusProcessing, refreshed.Status)
}

func TestUpdateOrderStatusConflictsWithConcurrentChange(t *testing.T) {
	db := newTestDB(t)
	order := models.Order{UserID: 1, Status: models.OrderStatusPending, PaymentSessionID: "cs_patch_race"}
	require.NoError(t, db.Create(&order).Error)

	// Slip a competing cancellation in between the handler's read and its
	// write; the guarded update must then match zero rows.
	require.NoError(t, db.Callback().Update().Before("gorm:update").
		Register("competing_cancellation", func(tx *gorm.DB) {
			tx.Session(&gorm.Session{NewDB: true}).Exec(
				"UPDATE orders SET status = ? WHERE id = ?", models.OrderStatusCancelled, order.ID)
		}))

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/admin/order/%d", order.ID),
		strings.NewReader(`{"status":"PROCESSING"}`))
	orderStatusRouter().ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusConflict, recorder.Code, recorder.Body.String())

	var refreshed models.Order
	require.NoError(t, db.First(&refreshed, order.ID).Error)
	assert.Equal(t, models.OrderStatusCancelled, refreshed.Status,
		"the competing write must win, not be silently overwritten")
}
