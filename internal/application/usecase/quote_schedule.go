package usecase

import (
	"context"
	"fmt"

	"github.com/loanbridge/origination-service/internal/application/dto"
	"github.com/loanbridge/origination-service/internal/domain/model"
	"github.com/loanbridge/origination-service/internal/domain/port"
)

// QuoteScheduleUseCase produces amortization quotes. Results are cached by
// terms since the schedule is a pure function of its input.
type QuoteScheduleUseCase struct {
	cache port.QuoteCache
}

// NewQuoteScheduleUseCase wires dependencies. cache may be nil.
func NewQuoteScheduleUseCase(cache port.QuoteCache) *QuoteScheduleUseCase {
	return &QuoteScheduleUseCase{cache: cache}
}

// Execute computes the fixed-payment schedule for the requested terms.
func (uc *QuoteScheduleUseCase) Execute(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error) {
	terms := model.LoanTerms{
		Principal:         req.Principal,
		AnnualRatePercent: req.AnnualRatePercent,
		TermMonths:        req.TermMonths,
	}

	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, terms); ok {
			return ToQuoteResponse(cached), nil
		}
	}

	result, err := model.ComputeAmortization(terms)
	if err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("compute amortization: %w", err)
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, terms, result)
	}
	return ToQuoteResponse(result), nil
}

// ToQuoteResponse converts an amortization result into its transport shape.
func ToQuoteResponse(result model.AmortizationResult) dto.QuoteResponse {
	resp := dto.QuoteResponse{
		MonthlyPayment: result.MonthlyPayment,
		TotalPayment:   result.TotalPayment,
		TotalInterest:  result.TotalInterest,
		Schedule:       make([]dto.PaymentPeriodResponse, 0, len(result.Schedule)),
	}
	for _, p := range result.Schedule {
		resp.Schedule = append(resp.Schedule, dto.PaymentPeriodResponse{
			Period:           p.Period,
			Payment:          p.Payment,
			Principal:        p.PrincipalPortion,
			Interest:         p.InterestPortion,
			RemainingBalance: p.RemainingBalance,
		})
	}
	return resp
}
