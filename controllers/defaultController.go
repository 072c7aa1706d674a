package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the SeoulGlow API ✨. K-beauty, delivered.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- POST "/auth/verify-email/:activationToken" - Activate user account
- POST "/auth/forgot-password" - Request password reset
- POST "/auth/reset-password/:resetToken" - Reset user password

PRODUCT
- GET "/product" - Browse the catalog (category, brand, search, vegan, crueltyFree, bestseller filters)
- GET "/product/:id" - Get product by ID
- GET "/product/bestsellers" - Get bestsellers
- GET "/product/:id/reviews" - Get product reviews
- POST "/product/:id/reviews" - Review a product (auth)

CHECKOUT
- POST "/checkout/session" - Create a hosted checkout session (auth)
- POST "/webhook/payment" - Payment processor webhook (signed)

ORDER
- GET "/user/:userId/orders" - Get orders for a user (auth)
- GET "/order/:orderId" - Get order by ID (auth)

WISHLIST
- GET "/wishlist" - Get your wishlist (auth)
- POST "/wishlist" - Add to wishlist (auth)
- DELETE "/wishlist/:productId" - Remove from wishlist (auth)

SOCIAL
- GET "/social" - Storefront social feed

ADMIN (auth + admin role)
- POST "/admin/product", PUT/DELETE "/admin/product/:id", POST "/admin/product-images"
- GET "/admin/order", PATCH/DELETE "/admin/order/:orderId", GET "/admin/orders/undelivered"
- POST/PUT/DELETE "/admin/social"
- POST "/admin/email/test", GET "/admin/stats"`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
