package kafka

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanbridge/origination-service/internal/application/dto"
	"github.com/loanbridge/origination-service/internal/domain/port"
	pkgkafka "github.com/loanbridge/origination-service/pkg/kafka"
)

type fakePaymentApplier struct {
	executeFn func(ctx context.Context, req dto.MakePaymentRequest) (dto.PaymentResponse, error)
	requests  []dto.MakePaymentRequest
}

func (f *fakePaymentApplier) Execute(ctx context.Context, req dto.MakePaymentRequest) (dto.PaymentResponse, error) {
	f.requests = append(f.requests, req)
	if f.executeFn != nil {
		return f.executeFn(ctx, req)
	}
	return dto.PaymentResponse{LoanID: req.LoanID, OutstandingBalance: decimal.Zero, LoanStatus: "PAID_OFF"}, nil
}

func newTestPaymentConsumer(applier *fakePaymentApplier) *PaymentConsumer {
	return &PaymentConsumer{
		payments: applier,
		logger:   slog.Default(),
	}
}

func TestPaymentConsumer_AppliesInstruction(t *testing.T) {
	applier := &fakePaymentApplier{}
	c := newTestPaymentConsumer(applier)

	err := c.handle(context.Background(), pkgkafka.Message{
		Key:   []byte("loan-1"),
		Value: []byte(`{"loan_id":"loan-1","amount":"250.50"}`),
	})
	require.NoError(t, err)

	require.Len(t, applier.requests, 1)
	assert.Equal(t, "loan-1", applier.requests[0].LoanID)
	assert.Equal(t, "250.5", applier.requests[0].Amount.String())
}

func TestPaymentConsumer_DropsMalformedPayload(t *testing.T) {
	applier := &fakePaymentApplier{}
	c := newTestPaymentConsumer(applier)

	err := c.handle(context.Background(), pkgkafka.Message{Value: []byte("not json")})
	require.NoError(t, err)
	assert.Empty(t, applier.requests)
}

func TestPaymentConsumer_DropsUnknownLoan(t *testing.T) {
	applier := &fakePaymentApplier{
		executeFn: func(context.Context, dto.MakePaymentRequest) (dto.PaymentResponse, error) {
			return dto.PaymentResponse{}, port.ErrNotFound
		},
	}
	c := newTestPaymentConsumer(applier)

	err := c.handle(context.Background(), pkgkafka.Message{
		Value: []byte(`{"loan_id":"missing","amount":"10"}`),
	})
	assert.NoError(t, err)
}

func TestPaymentConsumer_ReturnsTransientErrors(t *testing.T) {
	dbDown := errors.New("connection refused")
	applier := &fakePaymentApplier{
		executeFn: func(context.Context, dto.MakePaymentRequest) (dto.PaymentResponse, error) {
			return dto.PaymentResponse{}, dbDown
		},
	}
	c := newTestPaymentConsumer(applier)

	err := c.handle(context.Background(), pkgkafka.Message{
		Value: []byte(`{"loan_id":"loan-1","amount":"10"}`),
	})
	assert.ErrorIs(t, err, dbDown)
}
