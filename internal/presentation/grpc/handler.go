package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/loanbridge/origination-service/internal/application/dto"
	"github.com/loanbridge/origination-service/internal/application/usecase"
	"github.com/loanbridge/origination-service/internal/domain/port"
	"github.com/loanbridge/origination-service/internal/domain/valueobject"
)

// OriginationHandler exposes origination operations over gRPC.
type OriginationHandler struct {
	UnimplementedOriginationServiceServer

	submitApp  *usecase.SubmitApplicationUseCase
	getApp     *usecase.GetApplicationUseCase
	quote      *usecase.QuoteScheduleUseCase
	assessRisk *usecase.AssessRiskUseCase
	disburse   *usecase.DisburseLoanUseCase
	getLoan    *usecase.GetLoanUseCase
	payment    *usecase.MakePaymentUseCase
}

// NewOriginationHandler creates a new handler with all use-case dependencies.
func NewOriginationHandler(
	submitApp *usecase.SubmitApplicationUseCase,
	getApp *usecase.GetApplicationUseCase,
	quote *usecase.QuoteScheduleUseCase,
	assessRisk *usecase.AssessRiskUseCase,
	disburse *usecase.DisburseLoanUseCase,
	getLoan *usecase.GetLoanUseCase,
	payment *usecase.MakePaymentUseCase,
) *OriginationHandler {
	return &OriginationHandler{
		submitApp:  submitApp,
		getApp:     getApp,
		quote:      quote,
		assessRisk: assessRisk,
		disburse:   disburse,
		getLoan:    getLoan,
		payment:    payment,
	}
}

// SubmitApplication handles a new loan application submission.
func (h *OriginationHandler) SubmitApplication(ctx context.Context, req *SubmitApplicationRequest) (*SubmitApplicationResponse, error) {
	amount, err := parseDecimal(req.Amount, "amount")
	if err != nil {
		return nil, err
	}
	income, err := parseOptionalDecimal(req.AnnualIncome, "annual_income")
	if err != nil {
		return nil, err
	}

	resp, err := h.submitApp.Execute(ctx, dto.SubmitApplicationRequest{
		ApplicantID:  req.ApplicantId,
		Amount:       amount,
		TermMonths:   int(req.TermMonths),
		Purpose:      req.Purpose,
		CreditScore:  int(req.CreditScore),
		AnnualIncome: income,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &SubmitApplicationResponse{Application: toApplicationMessage(resp)}, nil
}

// GetApplication retrieves a loan application by ID.
func (h *OriginationHandler) GetApplication(ctx context.Context, req *GetApplicationRequest) (*GetApplicationResponse, error) {
	resp, err := h.getApp.Execute(ctx, req.Id)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &GetApplicationResponse{Application: toApplicationMessage(resp)}, nil
}

// QuoteSchedule computes a fixed-payment amortization quote.
func (h *OriginationHandler) QuoteSchedule(ctx context.Context, req *QuoteScheduleRequest) (*QuoteScheduleResponse, error) {
	principal, err := parseDecimal(req.Principal, "principal")
	if err != nil {
		return nil, err
	}
	rate, err := parseDecimal(req.AnnualRatePercent, "annual_rate_percent")
	if err != nil {
		return nil, err
	}

	resp, err := h.quote.Execute(ctx, dto.QuoteRequest{
		Principal:         principal,
		AnnualRatePercent: rate,
		TermMonths:        int(req.TermMonths),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	out := &QuoteScheduleResponse{
		MonthlyPayment: resp.MonthlyPayment.String(),
		TotalPayment:   resp.TotalPayment.String(),
		TotalInterest:  resp.TotalInterest.String(),
		Schedule:       toScheduleMessage(resp.Schedule),
	}
	return out, nil
}

// AssessRisk runs a standalone risk assessment.
func (h *OriginationHandler) AssessRisk(ctx context.Context, req *AssessRiskRequest) (*AssessRiskResponse, error) {
	amount, err := parseDecimal(req.Amount, "amount")
	if err != nil {
		return nil, err
	}
	income, err := parseOptionalDecimal(req.AnnualIncome, "annual_income")
	if err != nil {
		return nil, err
	}

	resp, err := h.assessRisk.Execute(ctx, dto.AssessRiskRequest{
		Amount:       amount,
		TermMonths:   int(req.TermMonths),
		Purpose:      req.Purpose,
		CreditScore:  int(req.CreditScore),
		AnnualIncome: income,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &AssessRiskResponse{
		RiskScore:      int32(resp.RiskScore),
		RiskLevel:      resp.RiskLevel,
		Recommendation: resp.Recommendation,
		Factors:        resp.Factors,
	}, nil
}

// DisburseLoan disburses an approved application.
func (h *OriginationHandler) DisburseLoan(ctx context.Context, req *DisburseLoanRequest) (*DisburseLoanResponse, error) {
	rate, err := parseDecimal(req.AnnualRatePercent, "annual_rate_percent")
	if err != nil {
		return nil, err
	}

	resp, err := h.disburse.Execute(ctx, dto.DisburseLoanRequest{
		ApplicationID:     req.ApplicationId,
		BorrowerID:        req.BorrowerId,
		AnnualRatePercent: rate,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &DisburseLoanResponse{Loan: toLoanMessage(resp)}, nil
}

// GetLoan retrieves a loan by ID.
func (h *OriginationHandler) GetLoan(ctx context.Context, req *GetLoanRequest) (*GetLoanResponse, error) {
	resp, err := h.getLoan.Execute(ctx, req.Id, req.IncludeSchedule)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &GetLoanResponse{Loan: toLoanMessage(resp)}, nil
}

// MakePayment applies a payment to a loan.
func (h *OriginationHandler) MakePayment(ctx context.Context, req *MakePaymentRequest) (*MakePaymentResponse, error) {
	amount, err := parseDecimal(req.Amount, "amount")
	if err != nil {
		return nil, err
	}

	resp, err := h.payment.Execute(ctx, dto.MakePaymentRequest{
		LoanID: req.LoanId,
		Amount: amount,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &MakePaymentResponse{
		LoanId:             resp.LoanID,
		AmountPaid:         resp.AmountPaid.String(),
		OutstandingBalance: resp.OutstandingBalance.String(),
		LoanStatus:         resp.LoanStatus,
	}, nil
}

// ---------------------------------------------------------------------------
// conversion helpers
// ---------------------------------------------------------------------------

func parseDecimal(s, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "invalid %s: %q", field, s)
	}
	return d, nil
}

func parseOptionalDecimal(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, nil
	}
	return parseDecimal(s, field)
}

func toApplicationMessage(resp dto.ApplicationResponse) *Application {
	return &Application{
		Id:             resp.ID,
		ApplicantId:    resp.ApplicantID,
		Amount:         resp.Amount.String(),
		TermMonths:     int32(resp.TermMonths),
		Purpose:        resp.Purpose,
		Status:         resp.Status,
		RiskScore:      int32(resp.RiskScore),
		RiskLevel:      resp.RiskLevel,
		Recommendation: resp.Recommendation,
		RiskFactors:    resp.RiskFactors,
		DecisionReason: resp.DecisionReason,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}

func toLoanMessage(resp dto.LoanResponse) *Loan {
	return &Loan{
		Id:                 resp.ID,
		ApplicationId:      resp.ApplicationID,
		BorrowerId:         resp.BorrowerID,
		Principal:          resp.Principal.String(),
		AnnualRatePercent:  resp.AnnualRatePercent.String(),
		TermMonths:         int32(resp.TermMonths),
		Status:             resp.Status,
		MonthlyPayment:     resp.MonthlyPayment.String(),
		OutstandingBalance: resp.OutstandingBalance.String(),
		Schedule:           toScheduleMessage(resp.Schedule),
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}

func toScheduleMessage(schedule []dto.PaymentPeriodResponse) []*PaymentPeriod {
	if len(schedule) == 0 {
		return nil
	}
	out := make([]*PaymentPeriod, 0, len(schedule))
	for _, p := range schedule {
		out = append(out, &PaymentPeriod{
			Period:           int32(p.Period),
			Payment:          p.Payment.String(),
			Principal:        p.Principal.String(),
			Interest:         p.Interest.String(),
			RemainingBalance: p.RemainingBalance.String(),
		})
	}
	return out
}

// toStatusError maps domain errors onto gRPC status codes.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, valueobject.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, valueobject.ErrInvalidStatusTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, port.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
