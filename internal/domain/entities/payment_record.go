package entities

import "time"

// PaymentRecord is an audit row for a payment the gateway accepted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_id-index): payment_id
type PaymentRecord struct {
	ID                string    `json:"id"`
	PaymentID         int64     `json:"payment_id"`
	Status            string    `json:"status"`
	StatusDetail      string    `json:"status_detail"`
	TransactionAmount float64   `json:"transaction_amount"`
	Installments      int       `json:"installments"`
	PaymentMethodID   string    `json:"payment_method_id"`
	PayerEmail        string    `json:"payer_email"`
	CreatedAt         time.Time `json:"created_at"`
}
