package model

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/loanbridge/origination-service/internal/domain/valueobject"
)

// LoanTerms is the input to the amortization calculator.
type LoanTerms struct {
	// Principal is the amount borrowed. Must be positive.
	Principal decimal.Decimal
	// AnnualRatePercent is the nominal APR, e.g. 7.5 for 7.5%. Must be >= 0.
	AnnualRatePercent decimal.Decimal
	// TermMonths is the number of monthly installments. Must be >= 1.
	TermMonths int
}

// Validate checks the calculator invariants.
func (t LoanTerms) Validate() error {
	if t.Principal.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: principal must be positive, got %s", valueobject.ErrInvalidArgument, t.Principal)
	}
	if t.TermMonths < 1 {
		return fmt.Errorf("%w: term months must be at least 1, got %d", valueobject.ErrInvalidArgument, t.TermMonths)
	}
	if t.AnnualRatePercent.IsNegative() {
		return fmt.Errorf("%w: annual rate must not be negative, got %s", valueobject.ErrInvalidArgument, t.AnnualRatePercent)
	}
	return nil
}

// PaymentPeriod is one row of an amortization schedule.
type PaymentPeriod struct {
	// Period is the 1-based month number.
	Period int
	// Payment is the total installment due this period.
	Payment decimal.Decimal
	// PrincipalPortion is the part of the payment that reduces the balance.
	PrincipalPortion decimal.Decimal
	// InterestPortion is the part of the payment owed as interest.
	InterestPortion decimal.Decimal
	// RemainingBalance is the balance after this period's payment.
	RemainingBalance decimal.Decimal
}

// AmortizationResult is the aggregate output of the calculator.
type AmortizationResult struct {
	MonthlyPayment decimal.Decimal
	TotalPayment   decimal.Decimal
	TotalInterest  decimal.Decimal
	Schedule       []PaymentPeriod
}

// ComputeAmortization computes a standard fixed-payment amortization schedule.
//
// The calculation uses:
//
//	monthlyRate = annualRatePercent / 100 / 12
//	payment     = P * r * (1+r)^n / ((1+r)^n - 1)
//
// The power term is evaluated in float64; all monetary arithmetic is decimal.
// The final period's principal portion absorbs the accumulated rounding
// residue so the balance lands on exactly zero and the principal portions sum
// back to the original principal. TotalPayment and TotalInterest are summed
// from the reconciled schedule, so they reflect what is actually paid rather
// than payment times term.
func ComputeAmortization(terms LoanTerms) (AmortizationResult, error) {
	if err := terms.Validate(); err != nil {
		return AmortizationResult{}, err
	}

	monthlyRate := terms.AnnualRatePercent.InexactFloat64() / 100.0 / 12.0
	n := terms.TermMonths

	var monthlyPayment decimal.Decimal
	if monthlyRate == 0 {
		// Zero-interest: even split.
		monthlyPayment = terms.Principal.Div(decimal.NewFromInt(int64(n))).Round(2)
	} else {
		factor := math.Pow(1+monthlyRate, float64(n))
		paymentFloat := terms.Principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
		monthlyPayment = decimal.NewFromFloat(paymentFloat).Round(2)
	}

	schedule := make([]PaymentPeriod, 0, n)
	remaining := terms.Principal
	monthlyRateDec := decimal.NewFromFloat(monthlyRate)
	totalPayment := decimal.Zero
	totalInterest := decimal.Zero

	for period := 1; period <= n; period++ {
		interest := remaining.Mul(monthlyRateDec).Round(2)
		principalPart := monthlyPayment.Sub(interest)
		payment := monthlyPayment

		// Last period: the remaining balance is repaid in full so rounding
		// drift never leaves a residual balance.
		if period == n {
			principalPart = remaining
			payment = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)
		if remaining.LessThan(decimal.Zero) {
			remaining = decimal.Zero
		}

		totalPayment = totalPayment.Add(payment)
		totalInterest = totalInterest.Add(interest)

		schedule = append(schedule, PaymentPeriod{
			Period:           period,
			Payment:          payment,
			PrincipalPortion: principalPart,
			InterestPortion:  interest,
			RemainingBalance: remaining,
		})
	}

	return AmortizationResult{
		MonthlyPayment: monthlyPayment,
		TotalPayment:   totalPayment,
		TotalInterest:  totalInterest,
		Schedule:       schedule,
	}, nil
}
