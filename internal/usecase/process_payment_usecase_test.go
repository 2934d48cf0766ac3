package usecase

import (
	"context"
	"errors"
	"testing"

	"mp_checkout/internal/domain/entities"
	mock_interfaces "mp_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const validSubmission = `{
	"transactionAmount":"100",
	"token":"tok",
	"description":"Product",
	"installments":"1",
	"paymentMethodId":"master",
	"issuerId":"24",
	"payer":{"email":"buyer@test.com","identification":{"docType":"CPF","docNumber":"19119119100"}}
}`

func TestProcessPaymentUseCase_Validations(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewProcessPaymentUseCase(nil, nil)
		_, err := uc.ProcessPayment(context.Background(), decodeSubmission(t, validSubmission))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("missing payer never reaches gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewProcessPaymentUseCase(gateway, nil)

		_, err := uc.ProcessPayment(context.Background(), decodeSubmission(t, `{"transactionAmount":"1"}`))
		if !errors.Is(err, ErrMissingPayer) {
			t.Fatalf("expected ErrMissingPayer, got %v", err)
		}
	})
}

func TestProcessPaymentUseCase_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewProcessPaymentUseCase(gateway, nil)

	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.GatewayPaymentRequest) (entities.GatewayPaymentResult, error) {
			if req.TransactionAmount != 100 || req.Installments != 1 {
				t.Fatalf("numeric fields not coerced: %+v", req)
			}
			if req.Payer.Identification.Type != "CPF" || req.Payer.Identification.Number != "19119119100" {
				t.Fatalf("identification not mapped: %+v", req.Payer.Identification)
			}
			return entities.GatewayPaymentResult{ID: 123, Status: "approved", StatusDetail: "accredited"}, nil
		},
	)

	res, err := uc.ProcessPayment(context.Background(), decodeSubmission(t, validSubmission))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID != 123 || res.Status != "approved" || res.StatusDetail != "accredited" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestProcessPaymentUseCase_GatewayError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	records := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
	uc := NewProcessPaymentUseCase(gateway, records)

	gwErr := &entities.GatewayError{Status: 402, Cause: []entities.GatewayCause{{Description: "card declined"}}}
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.GatewayPaymentResult{}, gwErr)

	_, err := uc.ProcessPayment(context.Background(), decodeSubmission(t, validSubmission))
	var got *entities.GatewayError
	if !errors.As(err, &got) || got != gwErr {
		t.Fatalf("expected gateway error to be returned as-is, got %v", err)
	}
}

func TestProcessPaymentUseCase_Records(t *testing.T) {
	t.Run("records accepted payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		records := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewProcessPaymentUseCase(gateway, records)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.GatewayPaymentResult{ID: 9, Status: "in_process", StatusDetail: "pending_contingency"}, nil)
		records.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PaymentRecord{})).DoAndReturn(
			func(_ context.Context, r entities.PaymentRecord) (entities.PaymentRecord, error) {
				if r.ID == "" || r.CreatedAt.IsZero() {
					t.Fatalf("record id and date must be set: %+v", r)
				}
				if r.PaymentID != 9 || r.Status != "in_process" || r.StatusDetail != "pending_contingency" {
					t.Fatalf("unexpected record: %+v", r)
				}
				if r.TransactionAmount != 100 || r.PaymentMethodID != "master" || r.PayerEmail != "buyer@test.com" {
					t.Fatalf("request fields not copied: %+v", r)
				}
				return r, nil
			},
		)

		res, err := uc.ProcessPayment(context.Background(), decodeSubmission(t, validSubmission))
		if err != nil || res.ID != 9 {
			t.Fatalf("unexpected result=%+v err=%v", res, err)
		}
	})

	t.Run("record failure does not fail payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		records := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewProcessPaymentUseCase(gateway, records)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.GatewayPaymentResult{ID: 10, Status: "approved"}, nil)
		records.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentRecord{}, errors.New("ddb down"))

		res, err := uc.ProcessPayment(context.Background(), decodeSubmission(t, validSubmission))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 10 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
