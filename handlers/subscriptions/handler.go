package subscriptions

import (
	"errors"
	"net/http"
	"time"

	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/models"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/payments"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Handler orchestrates the subscription lifecycle: pending pair creation,
// client-driven payment polling and activation.
type Handler struct {
	DB      *gorm.DB
	Gateway payments.Gateway
	// DedupePending makes Create return the latest pending pair instead of
	// inserting a duplicate one.
	DedupePending bool
}

func NewHandler(db *gorm.DB, gateway payments.Gateway, dedupePending bool) *Handler {
	return &Handler{DB: db, Gateway: gateway, DedupePending: dedupePending}
}

type createInput struct {
	PlanType models.PlanType `json:"planType" binding:"required"`
}

type checkPaymentResult struct {
	Status    models.PaymentStatus `json:"status"`
	Activated bool                 `json:"activated"`
}

// Create starts a subscription purchase
// @Summary Create a subscription with a PIX charge
// @Description Create a pending subscription and its pending PIX payment for the chosen plan
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param plan body createInput true "Plan type: 1_month, 3_months or 6_months"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "subscriptionId, payment"
// @Failure 400 {object} map[string]string "error: Invalid plan type"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /subscriptions [post]
func (h *Handler) Create(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input createInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	plan, err := models.PlanFor(input.PlanType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var payer models.User
	if err := h.DB.First(&payer, "id = ?", userID).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "User not found in Create subscription")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if h.DedupePending {
		if sub, payment, ok := h.latestPendingPair(payer.ID); ok {
			utils.LogInfo("Returning existing pending subscription instead of creating a duplicate")
			c.JSON(http.StatusCreated, gin.H{
				"subscriptionId": sub.ID,
				"payment":        payment,
			})
			return
		}
	}

	subscription := models.Subscription{
		UserID:   payer.ID,
		PlanType: plan.Type,
		Status:   models.SubscriptionPending,
		Amount:   plan.AmountCents,
	}
	if err := h.DB.Create(&subscription).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating the subscription in Create")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the subscription"})
		return
	}
	if subscription.ID == "" {
		utils.LogErrorWithUser(userID, nil, "Subscription insert returned no id in Create")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the subscription"})
		return
	}

	charge, err := h.Gateway.CreatePixPayment(c.Request.Context(), payments.CreatePixPaymentInput{
		AmountCents: plan.AmountCents,
		Description: "Assinatura Lia Vasconcelos - " + plan.DisplayName,
		PayerEmail:  payer.Email,
		PayerName:   payer.Name,
	})
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating the PIX charge in Create")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the PIX charge"})
		return
	}

	payment := models.Payment{
		SubscriptionID:   subscription.ID,
		UserID:           payer.ID,
		Amount:           subscription.Amount,
		PaymentMethod:    "pix",
		PixCode:          charge.PixCode,
		PixQrCode:        charge.PixQrCode,
		GatewayPaymentID: charge.ExternalID,
		Status:           models.PaymentPending,
	}
	if err := h.DB.Create(&payment).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating the payment in Create")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the payment"})
		return
	}

	utils.LogSuccessWithUser(userID, "Subscription and PIX payment created in Create")
	c.JSON(http.StatusCreated, gin.H{
		"subscriptionId": subscription.ID,
		"payment":        payment,
	})
}

func (h *Handler) latestPendingPair(userID string) (*models.Subscription, *models.Payment, bool) {
	var subscription models.Subscription
	err := h.DB.Where("user_id = ? AND status = ?", userID, models.SubscriptionPending).
		Order("created_at DESC").
		First(&subscription).Error
	if err != nil {
		return nil, nil, false
	}

	var payment models.Payment
	err = h.DB.Where("subscription_id = ? AND status = ?", subscription.ID, models.PaymentPending).
		First(&payment).Error
	if err != nil {
		return nil, nil, false
	}

	return &subscription, &payment, true
}

// CheckPayment polls the payment status and activates the subscription
// @Summary Check the PIX payment of a subscription
// @Description Poll the settlement status; the first approved check activates the subscription with its validity window. Safe to call repeatedly.
// @Tags subscriptions
// @Produce json
// @Param subscriptionId path string true "Subscription ID"
// @Security BearerAuth
// @Success 200 {object} checkPaymentResult
// @Failure 400 {object} map[string]string "error: Invalid subscription ID"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Subscription not found"
// @Router /subscriptions/{subscriptionId}/check [post]
func (h *Handler) CheckPayment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	subscriptionID := c.Param("subscriptionId")
	if _, err := uuid.Parse(subscriptionID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription ID"})
		return
	}

	// Ownership check: looking up someone else's subscription reads as not
	// found, so callers cannot probe other users' payment status.
	var subscription models.Subscription
	err := h.DB.First(&subscription, "id = ? AND user_id = ?", subscriptionID, userID).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}

	var payment models.Payment
	err = h.DB.First(&payment, "subscription_id = ?", subscription.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, checkPaymentResult{Status: models.PaymentPending})
			return
		}
		utils.LogErrorWithUser(userID, err, "Error loading the payment in CheckPayment")
		c.JSON(http.StatusOK, checkPaymentResult{Status: models.PaymentPending})
		return
	}

	// A settled payment is reported as-is; only the pending->paid
	// transition is driven here, so repeat polls never recompute dates.
	if payment.Status != models.PaymentPending {
		c.JSON(http.StatusOK, checkPaymentResult{Status: payment.Status})
		return
	}

	gatewayStatus, err := h.Gateway.PaymentStatus(c.Request.Context(), payment.GatewayPaymentID)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error checking the gateway status in CheckPayment")
		c.JSON(http.StatusOK, checkPaymentResult{Status: models.PaymentPending})
		return
	}
	if gatewayStatus != payments.StatusApproved {
		c.JSON(http.StatusOK, checkPaymentResult{Status: models.PaymentPending})
		return
	}

	if err := h.activate(&subscription, &payment); err != nil {
		// Activation failures are non-fatal: the client keeps polling.
		utils.LogErrorWithUser(userID, err, "Error activating the subscription in CheckPayment")
		c.JSON(http.StatusOK, checkPaymentResult{Status: models.PaymentPending})
		return
	}

	utils.LogSuccessWithUser(userID, "Subscription activated in CheckPayment")
	c.JSON(http.StatusOK, checkPaymentResult{Status: models.PaymentPaid, Activated: true})
}

// activate marks the payment paid and stamps the subscription's validity
// window, atomically.
func (h *Handler) activate(subscription *models.Subscription, payment *models.Payment) error {
	plan, err := models.PlanFor(subscription.PlanType)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	endDate := plan.PeriodEnd(now)

	return h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(payment).Updates(map[string]interface{}{
			"status":  models.PaymentPaid,
			"paid_at": now,
		}).Error; err != nil {
			return err
		}

		return tx.Model(subscription).Updates(map[string]interface{}{
			"status":     models.SubscriptionActive,
			"start_date": now,
			"end_date":   endDate,
		}).Error
	})
}

// GetActive returns the caller's active subscription
// @Summary Get the active subscription
// @Description Return the caller's subscription with status active and an end date in the future, or null
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "subscription: the active subscription or null"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /subscriptions/active [get]
func (h *Handler) GetActive(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	subscription, err := ActiveForUser(h.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Having no subscription is not an error.
			c.JSON(http.StatusOK, gin.H{"subscription": nil})
			return
		}
		utils.LogErrorWithUser(userID, err, "Error loading the active subscription in GetActive")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading the active subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": subscription})
}

// GetHistory returns the caller's subscriptions, newest first
// @Summary Get the subscription history
// @Description Return every subscription of the caller ordered by creation date descending
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Subscription
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /subscriptions/history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var subscriptions []models.Subscription
	if err := h.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&subscriptions).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error loading the subscription history in GetHistory")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading the subscription history"})
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

// ActiveForUser loads the user's active subscription. Staleness is
// observed at read time: a lapsed row keeps status active in storage but is
// filtered out by the end date predicate.
func ActiveForUser(db *gorm.DB, userID interface{}) (*models.Subscription, error) {
	var subscription models.Subscription
	err := db.Where("user_id = ? AND status = ? AND end_date > ?", userID, models.SubscriptionActive, time.Now().UTC()).
		First(&subscription).Error
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}
