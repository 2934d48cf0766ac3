package entities

import "fmt"

// GatewayPaymentRequest is the payment request in the shape the Mercado Pago
// payments API expects. It is derived 1:1 from a CheckoutSubmission.
type GatewayPaymentRequest struct {
	TransactionAmount float64      `json:"transaction_amount"`
	Token             string       `json:"token"`
	Description       string       `json:"description"`
	Installments      int          `json:"installments"`
	PaymentMethodID   string       `json:"payment_method_id"`
	IssuerID          string       `json:"issuer_id,omitempty"`
	Payer             GatewayPayer `json:"payer"`
}

type GatewayPayer struct {
	Email          string                `json:"email"`
	Identification GatewayIdentification `json:"identification"`
}

type GatewayIdentification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// GatewayPaymentResult is what the gateway reports for a created payment.
// Status is one of approved, rejected, in_process, pending...
type GatewayPaymentResult struct {
	ID           int64  `json:"id"`
	Status       string `json:"status"`
	StatusDetail string `json:"status_detail"`
}

// GatewayCause is one sub-error reported by the gateway.
type GatewayCause struct {
	Code        any    `json:"code,omitempty"`
	Description string `json:"description"`
}

// GatewayError is a failure reported by the payment gateway.
//
// Cause is nil when the gateway response carried no cause field at all, and
// empty (non-nil) when it carried an empty list.
type GatewayError struct {
	Message string         `json:"message"`
	Status  int            `json:"status"`
	Cause   []GatewayCause `json:"cause"`
}

func (e *GatewayError) Error() string {
	if len(e.Cause) > 0 && e.Cause[0].Description != "" {
		return fmt.Sprintf("payment gateway error status=%d cause=%q", e.Status, e.Cause[0].Description)
	}
	if e.Message != "" {
		return fmt.Sprintf("payment gateway error status=%d message=%q", e.Status, e.Message)
	}
	return fmt.Sprintf("payment gateway error status=%d", e.Status)
}
