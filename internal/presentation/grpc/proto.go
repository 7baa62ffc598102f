package grpc

// proto.go defines the gRPC server interface derived from
// loanbridge/origination/v1/origination.proto. This file serves as a stand-in
// for buf-generated code. Once `buf generate` is run, replace this file with
// the import from github.com/loanbridge/origination-service/api/gen/go/loanbridge/origination/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// Application mirrors loanbridge.origination.v1.Application. Monetary values
// travel as decimal strings.
type Application struct {
	Id             string   `json:"id"`
	ApplicantId    string   `json:"applicant_id"`
	Amount         string   `json:"amount"`
	TermMonths     int32    `json:"term_months"`
	Purpose        string   `json:"purpose"`
	Status         string   `json:"status"`
	RiskScore      int32    `json:"risk_score"`
	RiskLevel      string   `json:"risk_level,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
	RiskFactors    []string `json:"risk_factors,omitempty"`
	DecisionReason string   `json:"decision_reason,omitempty"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

// PaymentPeriod mirrors loanbridge.origination.v1.PaymentPeriod.
type PaymentPeriod struct {
	Period           int32  `json:"period"`
	Payment          string `json:"payment"`
	Principal        string `json:"principal"`
	Interest         string `json:"interest"`
	RemainingBalance string `json:"remaining_balance"`
}

// Loan mirrors loanbridge.origination.v1.Loan.
type Loan struct {
	Id                 string           `json:"id"`
	ApplicationId      string           `json:"application_id"`
	BorrowerId         string           `json:"borrower_id"`
	Principal          string           `json:"principal"`
	AnnualRatePercent  string           `json:"annual_rate_percent"`
	TermMonths         int32            `json:"term_months"`
	Status             string           `json:"status"`
	MonthlyPayment     string           `json:"monthly_payment"`
	OutstandingBalance string           `json:"outstanding_balance"`
	Schedule           []*PaymentPeriod `json:"schedule,omitempty"`
	CreatedAt          string           `json:"created_at"`
	UpdatedAt          string           `json:"updated_at"`
}

type SubmitApplicationRequest struct {
	ApplicantId  string `json:"applicant_id"`
	Amount       string `json:"amount"`
	TermMonths   int32  `json:"term_months"`
	Purpose      string `json:"purpose"`
	CreditScore  int32  `json:"credit_score,omitempty"`
	AnnualIncome string `json:"annual_income,omitempty"`
}

type SubmitApplicationResponse struct {
	Application *Application `json:"application"`
}

type GetApplicationRequest struct {
	Id string `json:"id"`
}

type GetApplicationResponse struct {
	Application *Application `json:"application"`
}

type QuoteScheduleRequest struct {
	Principal         string `json:"principal"`
	AnnualRatePercent string `json:"annual_rate_percent"`
	TermMonths        int32  `json:"term_months"`
}

type QuoteScheduleResponse struct {
	MonthlyPayment string           `json:"monthly_payment"`
	TotalPayment   string           `json:"total_payment"`
	TotalInterest  string           `json:"total_interest"`
	Schedule       []*PaymentPeriod `json:"schedule"`
}

type AssessRiskRequest struct {
	Amount       string `json:"amount"`
	TermMonths   int32  `json:"term_months"`
	Purpose      string `json:"purpose"`
	CreditScore  int32  `json:"credit_score,omitempty"`
	AnnualIncome string `json:"annual_income,omitempty"`
}

type AssessRiskResponse struct {
	RiskScore      int32    `json:"risk_score"`
	RiskLevel      string   `json:"risk_level"`
	Recommendation string   `json:"recommendation"`
	Factors        []string `json:"factors"`
}

type DisburseLoanRequest struct {
	ApplicationId     string `json:"application_id"`
	BorrowerId        string `json:"borrower_id"`
	AnnualRatePercent string `json:"annual_rate_percent"`
}

type DisburseLoanResponse struct {
	Loan *Loan `json:"loan"`
}

type GetLoanRequest struct {
	Id              string `json:"id"`
	IncludeSchedule bool   `json:"include_schedule,omitempty"`
}

type GetLoanResponse struct {
	Loan *Loan `json:"loan"`
}

type MakePaymentRequest struct {
	LoanId string `json:"loan_id"`
	Amount string `json:"amount"`
}

type MakePaymentResponse struct {
	LoanId             string `json:"loan_id"`
	AmountPaid         string `json:"amount_paid"`
	OutstandingBalance string `json:"outstanding_balance"`
	LoanStatus         string `json:"loan_status"`
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// OriginationServiceServer is the server API for OriginationService.
// It mirrors the proto-generated interface from loanbridge.origination.v1.OriginationService.
type OriginationServiceServer interface {
	SubmitApplication(context.Context, *SubmitApplicationRequest) (*SubmitApplicationResponse, error)
	GetApplication(context.Context, *GetApplicationRequest) (*GetApplicationResponse, error)
	QuoteSchedule(context.Context, *QuoteScheduleRequest) (*QuoteScheduleResponse, error)
	AssessRisk(context.Context, *AssessRiskRequest) (*AssessRiskResponse, error)
	DisburseLoan(context.Context, *DisburseLoanRequest) (*DisburseLoanResponse, error)
	GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error)
	MakePayment(context.Context, *MakePaymentRequest) (*MakePaymentResponse, error)
	mustEmbedUnimplementedOriginationServiceServer()
}

// UnimplementedOriginationServiceServer provides forward-compatible default implementations.
type UnimplementedOriginationServiceServer struct{}

func (UnimplementedOriginationServiceServer) SubmitApplication(context.Context, *SubmitApplicationRequest) (*SubmitApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitApplication not implemented")
}
func (UnimplementedOriginationServiceServer) GetApplication(context.Context, *GetApplicationRequest) (*GetApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetApplication not implemented")
}
func (UnimplementedOriginationServiceServer) QuoteSchedule(context.Context, *QuoteScheduleRequest) (*QuoteScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QuoteSchedule not implemented")
}
func (UnimplementedOriginationServiceServer) AssessRisk(context.Context, *AssessRiskRequest) (*AssessRiskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssessRisk not implemented")
}
func (UnimplementedOriginationServiceServer) DisburseLoan(context.Context, *DisburseLoanRequest) (*DisburseLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DisburseLoan not implemented")
}
func (UnimplementedOriginationServiceServer) GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoan not implemented")
}
func (UnimplementedOriginationServiceServer) MakePayment(context.Context, *MakePaymentRequest) (*MakePaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MakePayment not implemented")
}
func (UnimplementedOriginationServiceServer) mustEmbedUnimplementedOriginationServiceServer() {}

// RegisterOriginationServiceServer registers the OriginationServiceServer with the gRPC server.
func RegisterOriginationServiceServer(s *grpclib.Server, srv OriginationServiceServer) {
	s.RegisterService(&_OriginationService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _OriginationService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "loanbridge.origination.v1.OriginationService",
	HandlerType: (*OriginationServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "SubmitApplication", Handler: _OriginationService_SubmitApplication_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "GetApplication", Handler: _OriginationService_GetApplication_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "QuoteSchedule", Handler: _OriginationService_QuoteSchedule_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "AssessRisk", Handler: _OriginationService_AssessRisk_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "DisburseLoan", Handler: _OriginationService_DisburseLoan_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "GetLoan", Handler: _OriginationService_GetLoan_Handler},                     //nolint:revive // gRPC handler registration
		{MethodName: "MakePayment", Handler: _OriginationService_MakePayment_Handler},             //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_SubmitApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).SubmitApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanbridge.origination.v1.OriginationService/SubmitApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).SubmitApplication(ctx, req.(*SubmitApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_GetApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).GetApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanbridge.origination.v1.OriginationService/GetApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).GetApplication(ctx, req.(*GetApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_QuoteSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuoteScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).QuoteSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanbridge.origination.v1.OriginationService/QuoteSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).QuoteSchedule(ctx, req.(*QuoteScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_AssessRisk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AssessRiskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).AssessRisk(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanbridge.origination.v1.OriginationService/AssessRisk",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).AssessRisk(ctx, req.(*AssessRiskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_DisburseLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DisburseLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).DisburseLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanbridge.origination.v1.OriginationService/DisburseLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).DisburseLoan(ctx, req.(*DisburseLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_GetLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).GetLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanbridge.origination.v1.OriginationService/GetLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).GetLoan(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _OriginationService_MakePayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(MakePaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OriginationServiceServer).MakePayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanbridge.origination.v1.OriginationService/MakePayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OriginationServiceServer).MakePayment(ctx, req.(*MakePaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}
