package response

import (
	"mp_checkout/internal/domain/entities"
	"time"
)

type PaymentRecordResponse struct {
	ID                string    `json:"id"`
	PaymentID         int64     `json:"payment_id"`
	Status            string    `json:"status"`
	Detail            string    `json:"detail"`
	TransactionAmount float64   `json:"transaction_amount"`
	Installments      int       `json:"installments"`
	PaymentMethodID   string    `json:"payment_method_id"`
	PayerEmail        string    `json:"payer_email"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromPaymentRecord(r entities.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		ID:                r.ID,
		PaymentID:         r.PaymentID,
		Status:            r.Status,
		Detail:            r.StatusDetail,
		TransactionAmount: r.TransactionAmount,
		Installments:      r.Installments,
		PaymentMethodID:   r.PaymentMethodID,
		PayerEmail:        r.PayerEmail,
		CreatedAt:         r.CreatedAt,
	}
}
