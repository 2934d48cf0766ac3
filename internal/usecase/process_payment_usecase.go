package usecase

import (
	"context"
	"errors"
	"log"
	"mp_checkout/internal/domain/entities"
	"mp_checkout/internal/usecase/interfaces"
	"time"

	"github.com/google/uuid"
)

var ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")

// IProcessPaymentUseCase submits a checkout to the payment gateway.

type IProcessPaymentUseCase interface {
	ProcessPayment(ctx context.Context, sub entities.CheckoutSubmission) (entities.GatewayPaymentResult, error)
}

type ProcessPaymentUseCase struct {
	gateway interfaces.IPaymentGateway
	records interfaces.IPaymentRecordRepository
}

var _ IProcessPaymentUseCase = (*ProcessPaymentUseCase)(nil)

// NewProcessPaymentUseCase wires the use case. records may be nil, in which
// case accepted payments are not persisted.
func NewProcessPaymentUseCase(gateway interfaces.IPaymentGateway, records interfaces.IPaymentRecordRepository) *ProcessPaymentUseCase {
	return &ProcessPaymentUseCase{gateway: gateway, records: records}
}

func (u *ProcessPaymentUseCase) ProcessPayment(ctx context.Context, sub entities.CheckoutSubmission) (entities.GatewayPaymentResult, error) {
	log.Printf("[payment][usecase] process start payment_method_id=%s", sub.PaymentMethodID)
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured")
		return entities.GatewayPaymentResult{}, ErrPaymentGatewayNotConfigured
	}

	req, err := BuildGatewayRequest(sub)
	if err != nil {
		log.Printf("[payment][usecase] build gateway request failed err=%v", err)
		return entities.GatewayPaymentResult{}, err
	}

	result, err := u.gateway.CreatePayment(ctx, req)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed payment_method_id=%s err=%v", req.PaymentMethodID, err)
		return entities.GatewayPaymentResult{}, err
	}
	log.Printf("[payment][usecase] payment gateway success payment_id=%d status=%s status_detail=%s", result.ID, result.Status, result.StatusDetail)

	u.record(ctx, req, result)
	return result, nil
}

// record persists the accepted payment. Failures are logged only: the payment
// already exists at the gateway and the caller must still get its result.
func (u *ProcessPaymentUseCase) record(ctx context.Context, req entities.GatewayPaymentRequest, result entities.GatewayPaymentResult) {
	if u.records == nil {
		return
	}

	rec := entities.PaymentRecord{
		ID:                uuid.NewString(),
		PaymentID:         result.ID,
		Status:            result.Status,
		StatusDetail:      result.StatusDetail,
		TransactionAmount: req.TransactionAmount,
		Installments:      req.Installments,
		PaymentMethodID:   req.PaymentMethodID,
		PayerEmail:        req.Payer.Email,
		CreatedAt:         time.Now().UTC(),
	}
	if _, err := u.records.Create(ctx, rec); err != nil {
		log.Printf("[payment][usecase] payment record create failed payment_id=%d err=%v", result.ID, err)
		return
	}
	log.Printf("[payment][usecase] payment recorded record_id=%s payment_id=%d", rec.ID, result.ID)
}
