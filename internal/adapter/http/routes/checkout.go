package routes

import (
	"mp_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathIndex          = "/"
	PathCheckout       = "/checkout"
	PathProcessPayment = "/process_payment"
	PathHealth         = "/health"
)

func addCheckoutRoutes(router *gin.Engine, checkoutHandler *handlers.CheckoutHandler) {
	router.GET(PathIndex, checkoutHandler.Index)
	router.GET(PathCheckout, checkoutHandler.Checkout)
	router.POST(PathProcessPayment, checkoutHandler.ProcessPayment)
	router.GET(PathHealth, checkoutHandler.Health)
}
