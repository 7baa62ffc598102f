package usecase

import (
	"context"
	"fmt"

	"github.com/loanbridge/origination-service/internal/application/dto"
	"github.com/loanbridge/origination-service/internal/domain/port"
)

// GetLoanUseCase retrieves loans and their schedules.
type GetLoanUseCase struct {
	loanRepo port.LoanRepository
}

func NewGetLoanUseCase(loanRepo port.LoanRepository) *GetLoanUseCase {
	return &GetLoanUseCase{loanRepo: loanRepo}
}

// Execute fetches a loan by ID. withSchedule re-derives the amortization
// schedule from the stored terms.
func (uc *GetLoanUseCase) Execute(ctx context.Context, id string, withSchedule bool) (dto.LoanResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, id)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}
	return ToLoanResponse(loan, withSchedule)
}

// ByApplication fetches the loan created from a given application.
func (uc *GetLoanUseCase) ByApplication(ctx context.Context, applicationID string) (dto.LoanResponse, error) {
	loan, err := uc.loanRepo.FindByApplicationID(ctx, applicationID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan by application: %w", err)
	}
	return ToLoanResponse(loan, false)
}
