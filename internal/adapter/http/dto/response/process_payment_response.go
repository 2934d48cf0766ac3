package response

import (
	"mp_checkout/internal/domain/entities"
	"mp_checkout/internal/usecase"
)

type ProcessPaymentResponse struct {
	Detail string `json:"detail"`
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

type PaymentErrorResponse struct {
	ErrorMessage string `json:"error_message"`
}

func FromPaymentResult(r entities.GatewayPaymentResult) ProcessPaymentResponse {
	return ProcessPaymentResponse{
		Detail: r.StatusDetail,
		Status: r.Status,
		ID:     r.ID,
	}
}

func FromNormalizedError(e usecase.NormalizedError) PaymentErrorResponse {
	return PaymentErrorResponse{ErrorMessage: e.Message}
}
