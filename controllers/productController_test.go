package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/seoulglow/seoulglow-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productAdminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/admin/product", CreateProduct)
	return router
}

func TestCreateProductInvalidatesBestsellerCache(t *testing.T) {
	db := newTestDB(t)
	cache := newTestCache(t)

	// A stale listing from before the new arrival.
	require.NoError(t, cache.Set("products:bestsellers", `[]`))

	body := `{
		"name": "Rice Water Cleanser",
		"brand": "Glow Lab",
		"description": "Low-pH foaming cleanser",
		"price": 14.50,
		"category": "cleansers",
		"stock": 20,
		"bestseller": true
	}`

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/product", strings.NewReader(body))
	productAdminRouter().ServeHTTP(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	assert.False(t, cache.Exists("products:bestsellers"),
		"a newly created bestseller must evict the cached listing")
}
