package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/loanbridge/origination-service/internal/application/dto"
	"github.com/loanbridge/origination-service/internal/domain/port"
	"github.com/loanbridge/origination-service/internal/domain/valueobject"
	pkgkafka "github.com/loanbridge/origination-service/pkg/kafka"
)

// paymentApplier is the slice of the payment use case the consumer needs.
type paymentApplier interface {
	Execute(ctx context.Context, req dto.MakePaymentRequest) (dto.PaymentResponse, error)
}

// paymentInstruction is the wire shape produced by the payment gateway.
type paymentInstruction struct {
	LoanID string          `json:"loan_id"`
	Amount decimal.Decimal `json:"amount"`
}

// PaymentConsumer applies inbound payment instructions from the payment
// gateway topic to loans.
type PaymentConsumer struct {
	consumer *pkgkafka.Consumer
	payments paymentApplier
	logger   *slog.Logger
}

// NewPaymentConsumer creates a consumer for the given payments topic.
func NewPaymentConsumer(cfg pkgkafka.Config, topic string, payments paymentApplier, logger *slog.Logger) *PaymentConsumer {
	c := &PaymentConsumer{
		payments: payments,
		logger:   logger,
	}
	c.consumer = pkgkafka.NewConsumer(cfg, topic, c.handle, logger)
	return c
}

// Start blocks consuming payment instructions until the context is canceled.
func (c *PaymentConsumer) Start(ctx context.Context) error {
	return c.consumer.Start(ctx)
}

// Close closes the underlying reader.
func (c *PaymentConsumer) Close() error {
	return c.consumer.Close()
}

// handle applies one payment instruction. Domain rejections are logged and
// dropped so a bad instruction does not wedge the partition; only transient
// errors are returned for redelivery.
func (c *PaymentConsumer) handle(ctx context.Context, msg pkgkafka.Message) error {
	var instr paymentInstruction
	if err := json.Unmarshal(msg.Value, &instr); err != nil {
		c.logger.ErrorContext(ctx, "dropping malformed payment instruction", "error", err)
		return nil
	}

	resp, err := c.payments.Execute(ctx, dto.MakePaymentRequest{
		LoanID: instr.LoanID,
		Amount: instr.Amount,
	})
	switch {
	case err == nil:
		c.logger.InfoContext(ctx, "payment applied",
			"loan_id", resp.LoanID,
			"outstanding_balance", resp.OutstandingBalance.String(),
			"loan_status", resp.LoanStatus,
		)
		return nil
	case errors.Is(err, port.ErrNotFound),
		errors.Is(err, valueobject.ErrInvalidArgument),
		errors.Is(err, valueobject.ErrInvalidStatusTransition):
		c.logger.ErrorContext(ctx, "dropping unprocessable payment instruction",
			"loan_id", instr.LoanID,
			"error", err,
		)
		return nil
	default:
		return fmt.Errorf("apply payment to loan %s: %w", instr.LoanID, err)
	}
}
