package routes

import (
	"mp_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPaymentByPaymentID = "/payments/:payment_id"
	PathPaymentRecord      = "/payment_records/:record_id"
)

func addPaymentRecordRoutes(router *gin.Engine, recordHandler *handlers.PaymentRecordHandler) {
	router.GET(PathPaymentByPaymentID, recordHandler.GetPaymentByPaymentID)
	router.GET(PathPaymentRecord, recordHandler.GetPaymentRecord)
}
