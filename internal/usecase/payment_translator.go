package usecase

import (
	"errors"
	"math"
	"mp_checkout/internal/domain/entities"
)

var (
	ErrMissingPayer               = errors.New("missing payer")
	ErrMissingPayerIdentification = errors.New("missing payer.identification")
)

// BuildGatewayRequest maps a checkout submission into the Mercado Pago payment
// request shape.
//
// Amount and installments are coerced, not validated: malformed values become
// NaN (amount) or 0 (installments) and are left for the gateway to reject.
func BuildGatewayRequest(sub entities.CheckoutSubmission) (entities.GatewayPaymentRequest, error) {
	if sub.Payer == nil {
		return entities.GatewayPaymentRequest{}, ErrMissingPayer
	}
	if sub.Payer.Identification == nil {
		return entities.GatewayPaymentRequest{}, ErrMissingPayerIdentification
	}

	return entities.GatewayPaymentRequest{
		TransactionAmount: sub.TransactionAmount.Number(),
		Token:             sub.Token,
		Description:       sub.Description,
		Installments:      toInstallments(sub.Installments.Number()),
		PaymentMethodID:   sub.PaymentMethodID,
		IssuerID:          sub.IssuerID.String(),
		Payer: entities.GatewayPayer{
			Email: sub.Payer.Email,
			Identification: entities.GatewayIdentification{
				Type:   sub.Payer.Identification.DocType,
				Number: sub.Payer.Identification.DocNumber,
			},
		},
	}, nil
}

func toInstallments(n float64) int {
	if math.IsNaN(n) || math.IsInf(n, 0) || math.Abs(n) > math.MaxInt32 {
		return 0
	}
	return int(n)
}
