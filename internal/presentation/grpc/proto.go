package grpc

// proto.go defines the gRPC server interface derived from
// ouestbank/lending/v1/lending.proto. This file serves as a stand-in for
// buf-generated code; messages ride the JSON codec so the application DTOs
// double as wire types. Once `buf generate` is run, replace this file with
// the import from github.com/ouestbank/lending-service/api/gen/go/ouestbank/lending/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ouestbank/lending-service/internal/application/dto"
)

// DeleteLoanResponse acknowledges the deletion of a loan demand.
type DeleteLoanResponse struct {
	LoanID string `json:"loan_id"`
}

// ListLoansResponse wraps a loan listing.
type ListLoansResponse struct {
	Loans []dto.LoanResponse `json:"loans"`
}

// InstallmentListResponse wraps an installment listing.
type InstallmentListResponse struct {
	Installments []dto.InstallmentResponse `json:"installments"`
}

// RepaymentListResponse wraps a repayment listing.
type RepaymentListResponse struct {
	Repayments []dto.RepaymentResponse `json:"repayments"`
}

// LendingServiceServer is the server API for LendingService.
// It mirrors the proto interface from ouestbank.lending.v1.LendingService.
type LendingServiceServer interface {
	SimulateLoan(context.Context, *dto.SimulateLoanRequest) (*dto.SimulationResponse, error)
	CreateApplication(context.Context, *dto.CreateApplicationRequest) (*dto.LoanResponse, error)
	ApproveLoan(context.Context, *dto.ApproveLoanRequest) (*dto.LoanResponse, error)
	RejectLoan(context.Context, *dto.RejectLoanRequest) (*dto.LoanResponse, error)
	DeleteLoan(context.Context, *dto.DeleteLoanRequest) (*DeleteLoanResponse, error)
	GetLoan(context.Context, *dto.GetLoanRequest) (*dto.LoanResponse, error)
	ListLoans(context.Context, *dto.ListLoansRequest) (*ListLoansResponse, error)
	GetSchedule(context.Context, *dto.GetScheduleRequest) (*InstallmentListResponse, error)
	ListUnpaid(context.Context, *dto.ListUnpaidRequest) (*InstallmentListResponse, error)
	ListOverdue(context.Context, *dto.ListOverdueRequest) (*InstallmentListResponse, error)
	RecordRepayment(context.Context, *dto.RecordRepaymentRequest) (*dto.RecordRepaymentResponse, error)
	ListRepayments(context.Context, *dto.ListRepaymentsRequest) (*RepaymentListResponse, error)
	MarkOverdue(context.Context, *dto.MarkOverdueRequest) (*dto.MarkOverdueResponse, error)
	mustEmbedUnimplementedLendingServiceServer()
}

// UnimplementedLendingServiceServer provides forward-compatible default implementations.
type UnimplementedLendingServiceServer struct{}

func (UnimplementedLendingServiceServer) SimulateLoan(context.Context, *dto.SimulateLoanRequest) (*dto.SimulationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SimulateLoan not implemented")
}
func (UnimplementedLendingServiceServer) CreateApplication(context.Context, *dto.CreateApplicationRequest) (*dto.LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateApplication not implemented")
}
func (UnimplementedLendingServiceServer) ApproveLoan(context.Context, *dto.ApproveLoanRequest) (*dto.LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApproveLoan not implemented")
}
func (UnimplementedLendingServiceServer) RejectLoan(context.Context, *dto.RejectLoanRequest) (*dto.LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RejectLoan not implemented")
}
func (UnimplementedLendingServiceServer) DeleteLoan(context.Context, *dto.DeleteLoanRequest) (*DeleteLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteLoan not implemented")
}
func (UnimplementedLendingServiceServer) GetLoan(context.Context, *dto.GetLoanRequest) (*dto.LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoan not implemented")
}
func (UnimplementedLendingServiceServer) ListLoans(context.Context, *dto.ListLoansRequest) (*ListLoansResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLoans not implemented")
}
func (UnimplementedLendingServiceServer) GetSchedule(context.Context, *dto.GetScheduleRequest) (*InstallmentListResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSchedule not implemented")
}
func (UnimplementedLendingServiceServer) ListUnpaid(context.Context, *dto.ListUnpaidRequest) (*InstallmentListResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListUnpaid not implemented")
}
func (UnimplementedLendingServiceServer) ListOverdue(context.Context, *dto.ListOverdueRequest) (*InstallmentListResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListOverdue not implemented")
}
func (UnimplementedLendingServiceServer) RecordRepayment(context.Context, *dto.RecordRepaymentRequest) (*dto.RecordRepaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordRepayment not implemented")
}
func (UnimplementedLendingServiceServer) ListRepayments(context.Context, *dto.ListRepaymentsRequest) (*RepaymentListResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRepayments not implemented")
}
func (UnimplementedLendingServiceServer) MarkOverdue(context.Context, *dto.MarkOverdueRequest) (*dto.MarkOverdueResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MarkOverdue not implemented")
}
func (UnimplementedLendingServiceServer) mustEmbedUnimplementedLendingServiceServer() {}

// RegisterLendingServiceServer registers the LendingServiceServer with the gRPC server.
func RegisterLendingServiceServer(s *grpclib.Server, srv LendingServiceServer) {
	s.RegisterService(&_LendingService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _LendingService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "ouestbank.lending.v1.LendingService",
	HandlerType: (*LendingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "SimulateLoan", Handler: _LendingService_SimulateLoan_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "CreateApplication", Handler: _LendingService_CreateApplication_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "ApproveLoan", Handler: _LendingService_ApproveLoan_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "RejectLoan", Handler: _LendingService_RejectLoan_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "DeleteLoan", Handler: _LendingService_DeleteLoan_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "GetLoan", Handler: _LendingService_GetLoan_Handler},                     //nolint:revive // gRPC handler registration
		{MethodName: "ListLoans", Handler: _LendingService_ListLoans_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "GetSchedule", Handler: _LendingService_GetSchedule_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "ListUnpaid", Handler: _LendingService_ListUnpaid_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "ListOverdue", Handler: _LendingService_ListOverdue_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "RecordRepayment", Handler: _LendingService_RecordRepayment_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "ListRepayments", Handler: _LendingService_ListRepayments_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "MarkOverdue", Handler: _LendingService_MarkOverdue_Handler},             //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_SimulateLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.SimulateLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).SimulateLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ouestbank.lending.v1.LendingService/SimulateLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).SimulateLoan(ctx, req.(*dto.SimulateLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_CreateApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.CreateApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).CreateApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ouestbank.lending.v1.LendingService/CreateApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).CreateApplication(ctx, req.(*dto.CreateApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_ApproveLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.ApproveLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).ApproveLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ouestbank.lending.v1.LendingService/ApproveLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).ApproveLoan(ctx, req.(*dto.ApproveLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_RejectLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.RejectLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).RejectLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ouestbank.lending.v1.LendingService/RejectLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).RejectLoan(ctx, req.(*dto.RejectLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_DeleteLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.DeleteLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).DeleteLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ouestbank.lending.v1.LendingService/DeleteLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).DeleteLoan(ctx, req.(*dto.DeleteLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_GetLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).GetLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ouestbank.lending.v1.LendingService/GetLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).GetLoan(ctx, req.(*dto.GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_ListLoans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.ListLoansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).ListLoans(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ouestbank.lending.v1.LendingService/ListLoans",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).ListLoans(ctx, req.(*dto.ListLoansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_GetSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.GetScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).GetSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ouestbank.lending.v1.LendingService/GetSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).GetSchedule(ctx, req.(*dto.GetScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_ListUnpaid_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.ListUnpaidRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).ListUnpaid(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ouestbank.lending.v1.LendingService/ListUnpaid",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).ListUnpaid(ctx, req.(*dto.ListUnpaidRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_ListOverdue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.ListOverdueRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).ListOverdue(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ouestbank.lending.v1.LendingService/ListOverdue",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).ListOverdue(ctx, req.(*dto.ListOverdueRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_RecordRepayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.RecordRepaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).RecordRepayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ouestbank.lending.v1.LendingService/RecordRepayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).RecordRepayment(ctx, req.(*dto.RecordRepaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_ListRepayments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.ListRepaymentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).ListRepayments(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ouestbank.lending.v1.LendingService/ListRepayments",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).ListRepayments(ctx, req.(*dto.ListRepaymentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_MarkOverdue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.MarkOverdueRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).MarkOverdue(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ouestbank.lending.v1.LendingService/MarkOverdue",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).MarkOverdue(ctx, req.(*dto.MarkOverdueRequest))
	}
	return interceptor(ctx, in, info, handler)
}
