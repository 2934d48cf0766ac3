package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mp_checkout/internal/domain/entities"
	mock_interfaces "mp_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentRecordUseCase_Disabled(t *testing.T) {
	uc := NewPaymentRecordUseCase(nil)

	if _, err := uc.GetByID(context.Background(), "rec-1"); !errors.Is(err, ErrPaymentRecordsDisabled) {
		t.Fatalf("expected ErrPaymentRecordsDisabled, got %v", err)
	}
	if _, err := uc.GetLatestByPaymentID(context.Background(), 1); !errors.Is(err, ErrPaymentRecordsDisabled) {
		t.Fatalf("expected ErrPaymentRecordsDisabled, got %v", err)
	}
}

func TestPaymentRecordUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPaymentRecordUseCase(mock_interfaces.NewMockIPaymentRecordRepository(ctrl))

		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidPaymentRecordID) {
			t.Fatalf("expected ErrInvalidPaymentRecordID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewPaymentRecordUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.PaymentRecord{}, nil)

		if _, err := uc.GetByID(context.Background(), " rec-1 "); !errors.Is(err, ErrPaymentRecordNotFound) {
			t.Fatalf("expected ErrPaymentRecordNotFound, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewPaymentRecordUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.PaymentRecord{}, errors.New("db"))

		if _, err := uc.GetByID(context.Background(), "rec-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewPaymentRecordUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.PaymentRecord{ID: "rec-1", PaymentID: 123}, nil)

		rec, err := uc.GetByID(context.Background(), "rec-1")
		if err != nil || rec.PaymentID != 123 {
			t.Fatalf("unexpected record=%+v err=%v", rec, err)
		}
	})
}

func TestPaymentRecordUseCase_GetLatestByPaymentID(t *testing.T) {
	t.Run("invalid payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPaymentRecordUseCase(mock_interfaces.NewMockIPaymentRecordRepository(ctrl))

		if _, err := uc.GetLatestByPaymentID(context.Background(), 0); !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("no records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewPaymentRecordUseCase(repo)

		repo.EXPECT().ListByPaymentID(gomock.Any(), int64(123)).Return([]entities.PaymentRecord{}, nil)

		if _, err := uc.GetLatestByPaymentID(context.Background(), 123); !errors.Is(err, ErrPaymentRecordNotFound) {
			t.Fatalf("expected ErrPaymentRecordNotFound, got %v", err)
		}
	})

	t.Run("returns latest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewPaymentRecordUseCase(repo)

		old := entities.PaymentRecord{ID: "old", PaymentID: 123, Status: "in_process", CreatedAt: time.Now().Add(-time.Hour)}
		latest := entities.PaymentRecord{ID: "latest", PaymentID: 123, Status: "approved", CreatedAt: time.Now()}
		repo.EXPECT().ListByPaymentID(gomock.Any(), int64(123)).Return([]entities.PaymentRecord{latest, old}, nil)

		rec, err := uc.GetLatestByPaymentID(context.Background(), 123)
		if err != nil || rec.ID != "latest" {
			t.Fatalf("expected latest record, got %+v err=%v", rec, err)
		}
	})
}
