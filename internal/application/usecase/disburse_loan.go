package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/loanbridge/origination-service/internal/application/dto"
	"github.com/loanbridge/origination-service/internal/domain/event"
	"github.com/loanbridge/origination-service/internal/domain/model"
	"github.com/loanbridge/origination-service/internal/domain/port"
	"github.com/loanbridge/origination-service/internal/domain/valueobject"
)

// DisburseLoanUseCase converts an approved application into an active loan.
// The loan row and the application status change are written in one
// transaction through the unit of work.
type DisburseLoanUseCase struct {
	appRepo   port.LoanApplicationRepository
	uow       port.UnitOfWork
	publisher port.EventPublisher
}

func NewDisburseLoanUseCase(
	appRepo port.LoanApplicationRepository,
	uow port.UnitOfWork,
	publisher port.EventPublisher,
) *DisburseLoanUseCase {
	return &DisburseLoanUseCase{appRepo: appRepo, uow: uow, publisher: publisher}
}

// Execute disburses an approved application: creates the loan, marks the
// application DISBURSED, persists both, and publishes the accumulated events.
func (uc *DisburseLoanUseCase) Execute(ctx context.Context, req dto.DisburseLoanRequest) (dto.LoanResponse, error) {
	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find application: %w", err)
	}
	if !app.Status().Equal(valueobject.ApplicationStatusApproved) {
		return dto.LoanResponse{}, fmt.Errorf("%w: application %s is %s, not %s",
			valueobject.ErrInvalidStatusTransition, app.ID(), app.Status(), valueobject.ApplicationStatusApproved)
	}

	now := time.Now().UTC()
	terms := model.LoanTerms{
		Principal:         app.Amount(),
		AnnualRatePercent: req.AnnualRatePercent,
		TermMonths:        app.TermMonths(),
	}

	loan, err := model.NewLoan(app.ID(), req.BorrowerID, terms, now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("create loan: %w", err)
	}

	app, err = app.MarkDisbursed(now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("mark disbursed: %w", err)
	}

	err = uc.uow.Execute(ctx, func(apps port.LoanApplicationRepository, loans port.LoanRepository) error {
		if err := loans.Save(ctx, loan); err != nil {
			return fmt.Errorf("save loan: %w", err)
		}
		if err := apps.Save(ctx, app); err != nil {
			return fmt.Errorf("save application: %w", err)
		}
		return nil
	})
	if err != nil {
		return dto.LoanResponse{}, err
	}

	all := append(append([]event.DomainEvent(nil), app.DomainEvents()...), loan.DomainEvents()...)
	if err := uc.publisher.Publish(ctx, all...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return ToLoanResponse(loan, false)
}

// ToLoanResponse converts a loan into its transport shape, optionally
// including the re-derived schedule.
func ToLoanResponse(loan model.Loan, withSchedule bool) (dto.LoanResponse, error) {
	resp := dto.LoanResponse{
		ID:                 loan.ID(),
		ApplicationID:      loan.ApplicationID(),
		BorrowerID:         loan.BorrowerID(),
		Principal:          loan.Terms().Principal,
		AnnualRatePercent:  loan.Terms().AnnualRatePercent,
		TermMonths:         loan.Terms().TermMonths,
		Status:             loan.Status().String(),
		MonthlyPayment:     loan.MonthlyPayment(),
		OutstandingBalance: loan.OutstandingBalance(),
		CreatedAt:          loan.CreatedAt(),
		UpdatedAt:          loan.UpdatedAt(),
	}
	if withSchedule {
		schedule, err := loan.Schedule()
		if err != nil {
			return dto.LoanResponse{}, fmt.Errorf("derive schedule: %w", err)
		}
		resp.Schedule = make([]dto.PaymentPeriodResponse, 0, len(schedule))
		for _, p := range schedule {
			resp.Schedule = append(resp.Schedule, dto.PaymentPeriodResponse{
				Period:           p.Period,
				Payment:          p.Payment,
				Principal:        p.PrincipalPortion,
				Interest:         p.InterestPortion,
				RemainingBalance: p.RemainingBalance,
			})
		}
	}
	return resp, nil
}
