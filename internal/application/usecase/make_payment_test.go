package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanbridge/origination-service/internal/application/dto"
	"github.com/loanbridge/origination-service/internal/domain/model"
	"github.com/loanbridge/origination-service/internal/domain/valueobject"
)

func activeLoan(t *testing.T) model.Loan {
	t.Helper()
	loan, err := model.NewLoan("app-1", "borrower-1", model.LoanTerms{
		Principal:         decimal.NewFromInt(12_000),
		AnnualRatePercent: decimal.Zero,
		TermMonths:        12,
	}, time.Now().UTC())
	require.NoError(t, err)
	return loan.ClearEvents()
}

func TestMakePayment_ReducesBalance(t *testing.T) {
	loan := activeLoan(t)
	loanRepo := &mockLoanRepo{
		findByIDFn: func(context.Context, string) (model.Loan, error) { return loan, nil },
	}
	pub := &mockPublisher{}
	uc := NewMakePaymentUseCase(loanRepo, pub)

	resp, err := uc.Execute(context.Background(), dto.MakePaymentRequest{
		LoanID: loan.ID(),
		Amount: decimal.NewFromInt(1_000),
	})
	require.NoError(t, err)

	assert.True(t, resp.OutstandingBalance.Equal(decimal.NewFromInt(11_000)))
	assert.Equal(t, valueobject.LoanStatusActive.String(), resp.LoanStatus)
	require.Len(t, loanRepo.saved, 1)
	assert.Len(t, pub.published, 1)
}

func TestMakePayment_FullPayoffMarksPaidOff(t *testing.T) {
	loan := activeLoan(t)
	loanRepo := &mockLoanRepo{
		findByIDFn: func(context.Context, string) (model.Loan, error) { return loan, nil },
	}
	pub := &mockPublisher{}
	uc := NewMakePaymentUseCase(loanRepo, pub)

	resp, err := uc.Execute(context.Background(), dto.MakePaymentRequest{
		LoanID: loan.ID(),
		Amount: decimal.NewFromInt(12_000),
	})
	require.NoError(t, err)

	assert.True(t, resp.OutstandingBalance.IsZero())
	assert.Equal(t, valueobject.LoanStatusPaidOff.String(), resp.LoanStatus)
	// PaymentReceived plus LoanPaidOff.
	assert.Len(t, pub.published, 2)
}

func TestMakePayment_OverpaymentRejected(t *testing.T) {
	loan := activeLoan(t)
	loanRepo := &mockLoanRepo{
		findByIDFn: func(context.Context, string) (model.Loan, error) { return loan, nil },
	}
	uc := NewMakePaymentUseCase(loanRepo, &mockPublisher{})

	_, err := uc.Execute(context.Background(), dto.MakePaymentRequest{
		LoanID: loan.ID(),
		Amount: decimal.NewFromInt(20_000),
	})
	require.Error(t, err)
	assert.Empty(t, loanRepo.saved)
}

func TestMakePayment_UnknownLoan(t *testing.T) {
	uc := NewMakePaymentUseCase(&mockLoanRepo{}, &mockPublisher{})

	_, err := uc.Execute(context.Background(), dto.MakePaymentRequest{
		LoanID: "missing",
		Amount: decimal.NewFromInt(100),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errNotFound)
}
