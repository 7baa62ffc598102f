package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/loanbridge/origination-service/internal/domain/valueobject"
)

// Defaults substituted at the call boundary when an applicant's financial
// profile is incomplete. The assessor itself never substitutes: it scores the
// input it is given, so the substitution stays visible and testable.
const DefaultCreditScore = 650

// DefaultAnnualIncome is the assumed annual income when none is supplied.
var DefaultAnnualIncome = decimal.NewFromInt(50_000)

// RiskInput carries the loan and applicant attributes that feed the scoring
// model. Purpose is informational only and does not affect the score.
type RiskInput struct {
	Amount       decimal.Decimal
	TermMonths   int
	Purpose      string
	CreditScore  int
	AnnualIncome decimal.Decimal
}

// Validate checks the assessor's input invariants.
func (in RiskInput) Validate() error {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive, got %s", valueobject.ErrInvalidArgument, in.Amount)
	}
	if in.TermMonths < 1 {
		return fmt.Errorf("%w: term months must be at least 1, got %d", valueobject.ErrInvalidArgument, in.TermMonths)
	}
	if in.CreditScore < 300 || in.CreditScore > 850 {
		return fmt.Errorf("%w: credit score %d outside plausible range [300,850]", valueobject.ErrInvalidArgument, in.CreditScore)
	}
	if in.AnnualIncome.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: annual income must be positive, got %s", valueobject.ErrInvalidArgument, in.AnnualIncome)
	}
	return nil
}

// RiskResult holds the outcome of a risk assessment.
type RiskResult struct {
	RiskScore      int
	RiskLevel      valueobject.RiskLevel
	Recommendation valueobject.Recommendation
	// Factors lists, in evaluation order, the thresholds that contributed to
	// the score.
	Factors []string
}

// RiskAssessor encapsulates the additive weighted scoring model.
type RiskAssessor struct{}

// NewRiskAssessor returns a new assessor instance.
func NewRiskAssessor() *RiskAssessor {
	return &RiskAssessor{}
}

// scoring thresholds
var (
	amountHigh   = decimal.NewFromInt(100_000)
	amountMedium = decimal.NewFromInt(50_000)
	dtiHigh      = decimal.NewFromFloat(0.4)
	dtiModerate  = decimal.NewFromFloat(0.3)
	twelve       = decimal.NewFromInt(12)
)

// Assess scores the input across four factor groups, evaluated in a fixed
// order: loan amount, term length, credit score, debt-to-income ratio.
//
// The debt-to-income ratio is (amount * 12) / (termMonths * annualIncome) —
// annualized loan amount relative to total income over the term window. This
// construction is deliberate and must not be replaced with the conventional
// monthly-payment-over-income ratio.
func (a *RiskAssessor) Assess(in RiskInput) (RiskResult, error) {
	if err := in.Validate(); err != nil {
		return RiskResult{}, err
	}

	score := 0
	factors := []string{}

	switch {
	case in.Amount.GreaterThan(amountHigh):
		score += 30
		factors = append(factors, "High loan amount")
	case in.Amount.GreaterThan(amountMedium):
		score += 15
		factors = append(factors, "Medium loan amount")
	}

	switch {
	case in.TermMonths > 60:
		score += 20
		factors = append(factors, "Long repayment term")
	case in.TermMonths > 36:
		score += 10
		factors = append(factors, "Medium repayment term")
	}

	switch {
	case in.CreditScore < 600:
		score += 40
		factors = append(factors, "Low credit score")
	case in.CreditScore < 700:
		score += 20
		factors = append(factors, "Fair credit score")
	}

	termIncome := decimal.NewFromInt(int64(in.TermMonths)).Mul(in.AnnualIncome)
	dti := in.Amount.Mul(twelve).Div(termIncome)
	switch {
	case dti.GreaterThan(dtiHigh):
		score += 25
		factors = append(factors, "High debt-to-income ratio")
	case dti.GreaterThan(dtiModerate):
		score += 15
		factors = append(factors, "Moderate debt-to-income ratio")
	}

	level, recommendation := classify(score)

	return RiskResult{
		RiskScore:      score,
		RiskLevel:      level,
		Recommendation: recommendation,
		Factors:        factors,
	}, nil
}

// classify maps a risk score onto the three decision tiers.
func classify(score int) (valueobject.RiskLevel, valueobject.Recommendation) {
	switch {
	case score <= 30:
		return valueobject.RiskLevelLow, valueobject.RecommendationApprove
	case score <= 60:
		return valueobject.RiskLevelMedium, valueobject.RecommendationReview
	default:
		return valueobject.RiskLevelHigh, valueobject.RecommendationReject
	}
}

// DegradedResult is the fail-closed assessment returned when an external
// scoring collaborator cannot complete. A denial-leaning decision is the safe
// default for a financial pipeline; this must never silently become
// LOW/APPROVE.
func DegradedResult() RiskResult {
	return RiskResult{
		RiskScore:      75,
		RiskLevel:      valueobject.RiskLevelHigh,
		Recommendation: valueobject.RecommendationReview,
		Factors:        []string{"Assessment service unavailable"},
	}
}
