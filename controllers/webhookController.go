package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/seoulglow/seoulglow-api/initializers"
	"github.com/seoulglow/seoulglow-api/models"
	"github.com/seoulglow/seoulglow-api/utils"
	"gorm.io/gorm"
)

// SignatureHeader carries the processor's webhook signature.
const SignatureHeader = "X-Payment-Signature"

var errDuplicateEvent = errors.New("event already processed")

type paymentEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID            string            `json:"id"`
			CustomerEmail string            `json:"customer_email"`
			AmountTotal   int64             `json:"amount_total"`
			Metadata      map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// HandlePaymentWebhook is the processor's callback. Nothing in the payload
// is trusted until the signature check passes.
func HandlePaymentWebhook(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read request body"})
		return
	}

	secret := os.Getenv("PAYMENT_WEBHOOK_SECRET")
	signature := ctx.GetHeader(SignatureHeader)
	if err := utils.VerifyWebhookSignature(body, signature, secret, time.Now()); err != nil {
		log.Printf("Webhook signature rejected: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	var event paymentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event payload"})
		return
	}

	switch event.Type {
	case "checkout.session.completed", "payment_intent.succeeded":
		order, err := fulfillCheckoutSession(event)
		if errors.Is(err, errDuplicateEvent) {
			// Redelivery: acknowledge so the processor stops retrying.
			ctx.JSON(http.StatusOK, gin.H{"received": true, "duplicate": true})
			return
		}
		if err != nil {
			log.Printf("Failed to fulfill session %s: %v", event.Data.Object.ID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process event"})
			return
		}
		sendOrderConfirmationEmail(order)
		ctx.JSON(http.StatusOK, gin.H{"received": true, "orderId": order.ID})
	default:
		// checkout.session.created and anything else we do not act on.
		ctx.JSON(http.StatusOK, gin.H{"received": true})
	}
}

// fulfillCheckoutSession creates the order, its items, the idempotency
// record, and the stock decrements in a single transaction. Any failure
// rolls the whole event back.
func fulfillCheckoutSession(event paymentEvent) (*models.Order, error) {
	session := event.Data.Object
	if session.ID == "" {
		return nil, fmt.Errorf("event %s carries no session id", event.ID)
	}

	eventID := event.ID
	if eventID == "" {
		// Some processors omit ids on resends; fall back to the session so
		// the unique index still guards against double fulfillment.
		eventID = "session-" + session.ID
	}

	items, err := parseMetadataItems(session.Metadata["items"])
	if err != nil {
		return nil, fmt.Errorf("bad items metadata: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("session %s has no items in metadata", session.ID)
	}

	// Reconcile the processor's charged total against the cart summary;
	// the order is still created from what the buyer actually paid for.
	if session.AmountTotal > 0 {
		if computed := models.ItemsTotal(items).MinorUnits(); computed != session.AmountTotal {
			log.Printf("Session %s amount mismatch: processor charged %d, items sum to %d",
				session.ID, session.AmountTotal, computed)
		}
	}

	userID, _ := strconv.Atoi(session.Metadata["user_id"])

	var order models.Order
	txErr := initializers.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.WebhookEvent
		if err := tx.Where("event_id = ?", eventID).First(&existing).Error; err == nil {
			return errDuplicateEvent
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		record := models.WebhookEvent{
			EventID:     eventID,
			EventType:   event.Type,
			ProcessedAt: time.Now(),
		}
		if err := tx.Create(&record).Error; err != nil {
			// A concurrent delivery won the unique index race.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errDuplicateEvent
			}
			return err
		}

		order = models.Order{
			UserID:           userID,
			Email:            session.CustomerEmail,
			Status:           models.OrderStatusPending,
			TotalAmount:      models.ItemsTotal(items),
			ShippingAddress:  session.Metadata["shipping_address"],
			PaymentSessionID: session.ID,
		}
		if err := tx.Create(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errDuplicateEvent
			}
			return err
		}

		for i := range items {
			items[i].OrderID = int(order.ID)

			// Snapshot the current name for the order history; the price
			// stays the one the buyer actually paid.
			var product models.Product
			if err := tx.Select("name").First(&product, items[i].ProductID).Error; err == nil {
				items[i].Name = product.Name
			}

			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
			if err := decrementStock(tx, items[i].ProductID, items[i].Quantity); err != nil {
				return err
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	order.OrderItems = items
	return &order, nil
}

// parseMetadataItems expands the compact item summaries the checkout
// handler stashed in session metadata back into order items.
func parseMetadataItems(encoded string) ([]models.OrderItem, error) {
	if encoded == "" {
		return nil, nil
	}

	var summaries []itemSummary
	if err := json.Unmarshal([]byte(encoded), &summaries); err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(summaries))
	for _, s := range summaries {
		if s.Q <= 0 || s.A < 0 {
			return nil, fmt.Errorf("invalid item summary for product %d", s.P)
		}

		items = append(items, models.OrderItem{
			ProductID: s.P,
			Price:     models.MoneyFromMinorUnits(s.A),
			Quantity:  s.Q,
		})
	}
	return items, nil
}

// decrementStock applies a guarded decrement. A paid order is never failed
// for stock: if the decrement would go negative the stock is clamped to
// zero and the oversell is logged for the back office.
func decrementStock(tx *gorm.DB, productID, quantity int) error {
	result := tx.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		log.Printf("Oversell on product %d: ordered %d beyond stock, clamping to zero", productID, quantity)
		return tx.Model(&models.Product{}).
			Where("id = ?", productID).
			Update("stock", 0).Error
	}
	return nil
}

func sendOrderConfirmationEmail(order *models.Order) {
	if order.Email == "" {
		return
	}

	emailData := utils.EmailData{
		Name:    order.Email,
		Message: "Thank you for your order! We are getting it ready for shipment.",
		OrderID: order.ID,
		Total:   order.TotalAmount.StringFixed(2),
		LogoURL: os.Getenv("FRONTEND_URL") + "/images/logo.png",
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	enqueueMail(order.Email, "Your SeoulGlow Order Confirmation", emailData, templatePath)
}
