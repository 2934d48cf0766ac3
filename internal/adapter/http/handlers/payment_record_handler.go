package handlers

import (
	"errors"
	"log"
	response "mp_checkout/internal/adapter/http/dto/response"
	"mp_checkout/internal/domain/entities"
	"mp_checkout/internal/usecase"
	"mp_checkout/pkg"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// PaymentRecordHandler exposes the recorded payments.

type PaymentRecordHandler struct {
	usecase usecase.IPaymentRecordUseCase
}

func NewPaymentRecordHandler(uc usecase.IPaymentRecordUseCase) *PaymentRecordHandler {
	return &PaymentRecordHandler{usecase: uc}
}

// GetPaymentByPaymentID returns the latest record for a gateway payment id.
// @Summary      Get recorded payment
// @Tags         payments
// @Produce      json
// @Param        payment_id  path      int  true  "Mercado Pago payment id"
// @Success      200         {object}  response.PaymentRecordResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /payments/{payment_id} [get]
func (h *PaymentRecordHandler) GetPaymentByPaymentID(c *gin.Context) {
	rawID := c.Param("payment_id")
	log.Printf("[payment][handler] get-by-payment-id start payment_id=%s", rawID)

	paymentID, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		err = usecase.ErrInvalidPaymentID
	}

	var rec entities.PaymentRecord
	if err == nil {
		rec, err = h.usecase.GetLatestByPaymentID(c.Request.Context(), paymentID)
	}
	if err != nil {
		log.Printf("[payment][handler] get-by-payment-id failed payment_id=%s err=%v", rawID, err)
		appErr := mapPaymentRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] get-by-payment-id success payment_id=%d record_id=%s status=%s", paymentID, rec.ID, rec.Status)
	c.JSON(http.StatusOK, response.FromPaymentRecord(rec))
}

// GetPaymentRecord returns one record by its own id.
// @Summary      Get payment record
// @Tags         payments
// @Produce      json
// @Param        record_id  path      string  true  "Payment record id"
// @Success      200        {object}  response.PaymentRecordResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /payment_records/{record_id} [get]
func (h *PaymentRecordHandler) GetPaymentRecord(c *gin.Context) {
	id := c.Param("record_id")
	log.Printf("[payment][handler] get-record start record_id=%s", id)

	rec, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] get-record failed record_id=%s err=%v", id, err)
		appErr := mapPaymentRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecord(rec))
}

func mapPaymentRecordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidPaymentRecordID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentRecordNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentRecordsDisabled):
		return pkg.NewDomainErrorSimple("PAYMENT_RECORDS_DISABLED", "Payment recording is not enabled", http.StatusNotImplemented)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
