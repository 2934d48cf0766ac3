package handlers

import (
	"errors"
	"log"
	response "mp_checkout/internal/adapter/http/dto/response"
	"mp_checkout/internal/domain/entities"
	"mp_checkout/internal/usecase"
	"mp_checkout/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// CheckoutHandler serves the checkout pages and relays payment submissions
// to the payment use case.

type CheckoutHandler struct {
	usecase   usecase.IProcessPaymentUseCase
	publicKey string
}

func NewCheckoutHandler(uc usecase.IProcessPaymentUseCase, publicKey string) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, publicKey: publicKey}
}

// Index renders the landing page.
func (h *CheckoutHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// Checkout renders the card form parameterized with the public key.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	c.HTML(http.StatusOK, "checkout.html", gin.H{"PublicKey": h.publicKey})
}

func (h *CheckoutHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ProcessPayment godoc
// @Summary      Process a card payment
// @Description  Forwards the checkout form to Mercado Pago and relays the result.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      entities.CheckoutSubmission  true  "Checkout form"
// @Success      201      {object}  response.ProcessPaymentResponse
// @Failure      400      {object}  response.PaymentErrorResponse
// @Router       /process_payment [post]
func (h *CheckoutHandler) ProcessPayment(c *gin.Context) {
	var sub entities.CheckoutSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] process start payment_method_id=%s", sub.PaymentMethodID)

	result, err := h.usecase.ProcessPayment(c.Request.Context(), sub)
	if err != nil {
		log.Printf("[payment][handler] process failed err=%v", err)
		if isInternalPaymentFault(err) {
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		normalized := usecase.NormalizeError(err)
		log.Printf("[payment][handler] payment rejected status=%d message=%q", normalized.Status, normalized.Message)
		c.JSON(normalized.Status, response.FromNormalizedError(normalized))
		return
	}
	log.Printf("[payment][handler] process success payment_id=%d status=%s", result.ID, result.Status)

	c.JSON(http.StatusCreated, response.FromPaymentResult(result))
}

// isInternalPaymentFault reports failures that happen before the gateway is
// reached; they are not payment errors and are not normalized.
func isInternalPaymentFault(err error) bool {
	return errors.Is(err, usecase.ErrMissingPayer) ||
		errors.Is(err, usecase.ErrMissingPayerIdentification) ||
		errors.Is(err, usecase.ErrPaymentGatewayNotConfigured)
}
