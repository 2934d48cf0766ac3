package usecase

import (
	"context"
	"errors"
	"mp_checkout/internal/domain/entities"
	"mp_checkout/internal/usecase/interfaces"
	"strings"
)

var (
	ErrPaymentRecordsDisabled = errors.New("payment records disabled")
	ErrPaymentRecordNotFound  = errors.New("payment record not found")
	ErrInvalidPaymentID       = errors.New("invalid payment_id")
	ErrInvalidPaymentRecordID = errors.New("invalid payment record id")
)

// IPaymentRecordUseCase reads back the payments recorded after gateway success.

type IPaymentRecordUseCase interface {
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
	GetLatestByPaymentID(ctx context.Context, paymentID int64) (entities.PaymentRecord, error)
}

type PaymentRecordUseCase struct {
	repo interfaces.IPaymentRecordRepository
}

var _ IPaymentRecordUseCase = (*PaymentRecordUseCase)(nil)

// NewPaymentRecordUseCase accepts a nil repo when recording is disabled;
// every read then fails with ErrPaymentRecordsDisabled.
func NewPaymentRecordUseCase(repo interfaces.IPaymentRecordRepository) *PaymentRecordUseCase {
	return &PaymentRecordUseCase{repo: repo}
}

func (u *PaymentRecordUseCase) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	if u.repo == nil {
		return entities.PaymentRecord{}, ErrPaymentRecordsDisabled
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentRecord{}, ErrInvalidPaymentRecordID
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if rec.ID == "" {
		return entities.PaymentRecord{}, ErrPaymentRecordNotFound
	}
	return rec, nil
}

// GetLatestByPaymentID returns the most recent record for a gateway payment id.
func (u *PaymentRecordUseCase) GetLatestByPaymentID(ctx context.Context, paymentID int64) (entities.PaymentRecord, error) {
	if u.repo == nil {
		return entities.PaymentRecord{}, ErrPaymentRecordsDisabled
	}
	if paymentID <= 0 {
		return entities.PaymentRecord{}, ErrInvalidPaymentID
	}

	records, err := u.repo.ListByPaymentID(ctx, paymentID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(records) == 0 {
		return entities.PaymentRecord{}, ErrPaymentRecordNotFound
	}

	latest := records[0]
	for _, r := range records[1:] {
		if r.CreatedAt.After(latest.CreatedAt) {
			latest = r
		}
	}
	return latest, nil
}
