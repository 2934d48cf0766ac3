package interfaces

import (
	"context"
	"mp_checkout/internal/domain/entities"
)

// IPaymentRecordRepository abstracts DynamoDB persistence for PaymentRecord.

type IPaymentRecordRepository interface {
	Create(ctx context.Context, r entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
	ListByPaymentID(ctx context.Context, paymentID int64) ([]entities.PaymentRecord, error)
}
