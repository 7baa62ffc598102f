package adapter

import (
	"context"

	"github.com/loanbridge/origination-service/internal/domain/service"
)

// StubRiskScorer is a development/test adapter that runs the in-process
// scoring engine behind the port.RiskScorer interface. It makes local
// environments behave like deployments with a live model service.
type StubRiskScorer struct {
	assessor *service.RiskAssessor
}

// NewStubRiskScorer creates a new stub adapter.
func NewStubRiskScorer() *StubRiskScorer {
	return &StubRiskScorer{assessor: service.NewRiskAssessor()}
}

// Score delegates to the deterministic in-process engine.
func (s *StubRiskScorer) Score(_ context.Context, in service.RiskInput) (service.RiskResult, error) {
	return s.assessor.Assess(in)
}
