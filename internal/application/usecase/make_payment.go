package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/loanbridge/origination-service/internal/application/dto"
	"github.com/loanbridge/origination-service/internal/domain/port"
)

// MakePaymentUseCase applies a payment to an active loan.
type MakePaymentUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
}

func NewMakePaymentUseCase(loanRepo port.LoanRepository, publisher port.EventPublisher) *MakePaymentUseCase {
	return &MakePaymentUseCase{loanRepo: loanRepo, publisher: publisher}
}

// Execute reduces the loan's outstanding balance by the payment amount and
// publishes the resulting events.
func (uc *MakePaymentUseCase) Execute(ctx context.Context, req dto.MakePaymentRequest) (dto.PaymentResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("find loan: %w", err)
	}

	loan, err = loan.MakePayment(req.Amount, time.Now().UTC())
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("make payment: %w", err)
	}

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("save loan: %w", err)
	}
	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.PaymentResponse{
		LoanID:             loan.ID(),
		AmountPaid:         req.Amount,
		OutstandingBalance: loan.OutstandingBalance(),
		LoanStatus:         loan.Status().String(),
	}, nil
}
