package usecase

import (
	"context"
	"fmt"

	"github.com/loanbridge/origination-service/internal/application/dto"
	"github.com/loanbridge/origination-service/internal/domain/port"
)

// GetApplicationUseCase retrieves loan applications.
type GetApplicationUseCase struct {
	appRepo port.LoanApplicationRepository
}

func NewGetApplicationUseCase(appRepo port.LoanApplicationRepository) *GetApplicationUseCase {
	return &GetApplicationUseCase{appRepo: appRepo}
}

// Execute fetches a single application by ID.
func (uc *GetApplicationUseCase) Execute(ctx context.Context, id string) (dto.ApplicationResponse, error) {
	app, err := uc.appRepo.FindByID(ctx, id)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}
	return ToApplicationResponse(app), nil
}

// ListByApplicant fetches all applications belonging to an applicant.
func (uc *GetApplicationUseCase) ListByApplicant(ctx context.Context, applicantID string) ([]dto.ApplicationResponse, error) {
	apps, err := uc.appRepo.FindByApplicantID(ctx, applicantID)
	if err != nil {
		return nil, fmt.Errorf("find applications: %w", err)
	}
	out := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, ToApplicationResponse(app))
	}
	return out, nil
}
