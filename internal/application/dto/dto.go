package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// SubmitApplicationRequest carries the data needed to submit a new loan
// application. CreditScore and AnnualIncome are optional; zero values are
// replaced with the documented defaults at the usecase boundary.
type SubmitApplicationRequest struct {
	ApplicantID  string          `json:"applicant_id"`
	Amount       decimal.Decimal `json:"amount"`
	TermMonths   int             `json:"term_months"`
	Purpose      string          `json:"purpose"`
	CreditScore  int             `json:"credit_score,omitempty"`
	AnnualIncome decimal.Decimal `json:"annual_income,omitempty"`
}

// QuoteRequest carries loan terms for an amortization quote.
type QuoteRequest struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TermMonths        int             `json:"term_months"`
}

// AssessRiskRequest carries the inputs for a standalone risk assessment.
type AssessRiskRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	TermMonths   int             `json:"term_months"`
	Purpose      string          `json:"purpose"`
	CreditScore  int             `json:"credit_score,omitempty"`
	AnnualIncome decimal.Decimal `json:"annual_income,omitempty"`
}

// DisburseLoanRequest carries the data needed to disburse an approved loan.
type DisburseLoanRequest struct {
	ApplicationID     string          `json:"application_id"`
	BorrowerID        string          `json:"borrower_id"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
}

// MakePaymentRequest carries the data for a loan payment.
type MakePaymentRequest struct {
	LoanID string          `json:"loan_id"`
	Amount decimal.Decimal `json:"amount"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ApplicationResponse is the external representation of a loan application.
type ApplicationResponse struct {
	ID             string          `json:"id"`
	ApplicantID    string          `json:"applicant_id"`
	Amount         decimal.Decimal `json:"amount"`
	TermMonths     int             `json:"term_months"`
	Purpose        string          `json:"purpose"`
	Status         string          `json:"status"`
	RiskScore      int             `json:"risk_score"`
	RiskLevel      string          `json:"risk_level,omitempty"`
	Recommendation string          `json:"recommendation,omitempty"`
	RiskFactors    []string        `json:"risk_factors,omitempty"`
	DecisionReason string          `json:"decision_reason,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// RiskAssessmentResponse is the external representation of a risk result.
type RiskAssessmentResponse struct {
	RiskScore      int      `json:"risk_score"`
	RiskLevel      string   `json:"risk_level"`
	Recommendation string   `json:"recommendation"`
	Factors        []string `json:"factors"`
}

// PaymentPeriodResponse represents a single amortization schedule entry.
type PaymentPeriodResponse struct {
	Period           int             `json:"period"`
	Payment          decimal.Decimal `json:"payment"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// QuoteResponse is the external representation of an amortization result.
type QuoteResponse struct {
	MonthlyPayment decimal.Decimal         `json:"monthly_payment"`
	TotalPayment   decimal.Decimal         `json:"total_payment"`
	TotalInterest  decimal.Decimal         `json:"total_interest"`
	Schedule       []PaymentPeriodResponse `json:"schedule"`
}

// LoanResponse is the external representation of a loan.
type LoanResponse struct {
	ID                 string                  `json:"id"`
	ApplicationID      string                  `json:"application_id"`
	BorrowerID         string                  `json:"borrower_id"`
	Principal          decimal.Decimal         `json:"principal"`
	AnnualRatePercent  decimal.Decimal         `json:"annual_rate_percent"`
	TermMonths         int                     `json:"term_months"`
	Status             string                  `json:"status"`
	MonthlyPayment     decimal.Decimal         `json:"monthly_payment"`
	OutstandingBalance decimal.Decimal         `json:"outstanding_balance"`
	Schedule           []PaymentPeriodResponse `json:"schedule,omitempty"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

// PaymentResponse is the external representation of a payment result.
type PaymentResponse struct {
	LoanID             string          `json:"loan_id"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	LoanStatus         string          `json:"loan_status"`
}
