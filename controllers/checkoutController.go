package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/seoulglow/seoulglow-api/middlewares"
	"github.com/seoulglow/seoulglow-api/models"
	"github.com/seoulglow/seoulglow-api/utils"
)

// metadataValueLimit is the processor's cap on a single metadata value.
const metadataValueLimit = 500

type CheckoutItem struct {
	ProductID int          `json:"productId" binding:"required"`
	Name      string       `json:"name" binding:"required"`
	Image     string       `json:"image"`
	Price     models.Money `json:"price"`
	Quantity  int          `json:"quantity" binding:"required,min=1"`
}

type CheckoutRequest struct {
	Items           []CheckoutItem  `json:"items"`
	ShippingAddress json.RawMessage `json:"shippingAddress"`
}

// itemSummary is the compact per-item record stashed in session metadata:
// product id, quantity, amount in minor units.
type itemSummary struct {
	P int   `json:"p"`
	Q int   `json:"q"`
	A int64 `json:"a"`
}

// BuildSessionMetadata serializes the cart and shipping address into the
// processor's string-keyed metadata bag. The processor rejects structured
// values and caps each value's size, so items are compacted and oversized
// carts are refused here rather than truncated.
func BuildSessionMetadata(userID int, items []CheckoutItem, shippingAddress json.RawMessage) (map[string]string, error) {
	summaries := make([]itemSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, itemSummary{
			P: item.ProductID,
			Q: item.Quantity,
			A: item.Price.MinorUnits(),
		})
	}

	encodedItems, err := json.Marshal(summaries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart items: %w", err)
	}
	if len(encodedItems) > metadataValueLimit {
		return nil, fmt.Errorf("cart of %d items exceeds metadata limit", len(items))
	}

	metadata := map[string]string{
		"user_id": fmt.Sprintf("%d", userID),
		"items":   string(encodedItems),
	}

	if len(shippingAddress) > 0 {
		compact, err := compactJSON(shippingAddress)
		if err != nil {
			return nil, fmt.Errorf("invalid shipping address: %w", err)
		}
		if len(compact) > metadataValueLimit {
			return nil, fmt.Errorf("shipping address exceeds metadata limit")
		}
		metadata["shipping_address"] = compact
	}

	return metadata, nil
}

func compactJSON(raw json.RawMessage) (string, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", err
	}
	out, err := json.Marshal(v)
	return string(out), err
}

// CreateCheckoutSession builds a hosted checkout session for the caller's
// cart and returns the session id plus the processor's redirect URL.
func CreateCheckoutSession(ctx *gin.Context) {
	userID, ok := middlewares.AuthUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}
	email, _ := middlewares.AuthUserEmail(ctx)

	var req CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.Items) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "No items in cart")
		return
	}

	for _, item := range req.Items {
		if item.Price.Sign() <= 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid item price")
			return
		}
	}

	metadata, err := BuildSessionMetadata(userID, req.Items, req.ShippingAddress)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	lineItems := make([]map[string]any, 0, len(req.Items))
	for _, item := range req.Items {
		lineItems = append(lineItems, map[string]any{
			"name":        item.Name,
			"image":       utils.ResolveImageRef(item.Image),
			"unit_amount": item.Price.MinorUnits(),
			"quantity":    item.Quantity,
		})
	}

	secretKey := os.Getenv("PAYMENT_SECRET_KEY")
	apiBase := os.Getenv("PAYMENT_API_BASE")
	if secretKey == "" || apiBase == "" {
		log.Println("Payment processor credentials are not set")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Missing payment configuration")
		return
	}

	sessionReq := map[string]any{
		"client_reference_id": uuid.NewString(),
		"customer_email":      email,
		"currency":            "usd",
		"line_items":          lineItems,
		"metadata":            metadata,
		"success_url":         os.Getenv("FRONTEND_URL") + "/checkout/success",
		"cancel_url":          os.Getenv("FRONTEND_URL") + "/cart",
	}

	resp, err := resty.New().SetTimeout(30 * time.Second).
		R().
		SetHeaders(map[string]string{
			"Authorization": "Bearer " + secretKey,
			"Accept":        "application/json",
			"Content-Type":  "application/json",
		}).
		SetBody(sessionReq).
		Post(apiBase + "/v1/checkout/sessions")

	if err != nil || resp.StatusCode() != 200 {
		log.Printf("Checkout session error: %v, response: %s", err, resp.Body())
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create checkout session")
		return
	}

	var sessionResp struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.Unmarshal(resp.Body(), &sessionResp); err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Invalid response from payment processor")
		return
	}
	if sessionResp.ID == "" || sessionResp.URL == "" {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Incomplete response from payment processor")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"id":  sessionResp.ID,
		"url": sessionResp.URL,
	})
}
