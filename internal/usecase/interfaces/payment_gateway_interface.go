package interfaces

import (
	"context"
	"mp_checkout/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// CreatePayment either returns the provider result or an error. Provider-side
// rejections are reported as *entities.GatewayError so callers can read the
// cause list and status.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, req entities.GatewayPaymentRequest) (entities.GatewayPaymentResult, error)
}
