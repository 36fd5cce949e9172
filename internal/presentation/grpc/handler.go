package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ouestbank/lending-service/internal/application/dto"
	"github.com/ouestbank/lending-service/internal/application/usecase"
	"github.com/ouestbank/lending-service/internal/domain/fault"
	"github.com/ouestbank/lending-service/pkg/auth"
)

// UseCases bundles the application layer for handler construction.
type UseCases struct {
	Simulate        *usecase.SimulateLoanUseCase
	CreateApp       *usecase.CreateApplicationUseCase
	Approve         *usecase.ApproveLoanUseCase
	Reject          *usecase.RejectLoanUseCase
	Delete          *usecase.DeleteLoanUseCase
	GetLoan         *usecase.GetLoanUseCase
	ListLoans       *usecase.ListLoansUseCase
	GetSchedule     *usecase.GetScheduleUseCase
	ListUnpaid      *usecase.ListUnpaidUseCase
	ListOverdue     *usecase.ListOverdueUseCase
	RecordRepayment *usecase.RecordRepaymentUseCase
	ListRepayments  *usecase.ListRepaymentsUseCase
	MarkOverdue     *usecase.MarkOverdueUseCase
}

// LendingHandler is the gRPC handler for lending operations. Decision fields
// left empty by the caller (approved_by, rejected_by, recorded_by) are filled
// from the authenticated token.
type LendingHandler struct {
	UnimplementedLendingServiceServer
	uc UseCases
}

// NewLendingHandler creates a new handler with all use-case dependencies.
func NewLendingHandler(uc UseCases) *LendingHandler {
	return &LendingHandler{uc: uc}
}

// SimulateLoan computes an amortization preview without persisting anything.
func (h *LendingHandler) SimulateLoan(ctx context.Context, req *dto.SimulateLoanRequest) (*dto.SimulationResponse, error) {
	resp, err := h.uc.Simulate.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// CreateApplication registers a new loan demand.
func (h *LendingHandler) CreateApplication(ctx context.Context, req *dto.CreateApplicationRequest) (*dto.LoanResponse, error) {
	resp, err := h.uc.CreateApp.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// ApproveLoan approves a pending demand and materializes its schedule.
func (h *LendingHandler) ApproveLoan(ctx context.Context, req *dto.ApproveLoanRequest) (*dto.LoanResponse, error) {
	in := *req
	if in.ApprovedBy == "" {
		in.ApprovedBy = auth.ActorFromContext(ctx)
	}
	resp, err := h.uc.Approve.Execute(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// RejectLoan refuses a pending demand.
func (h *LendingHandler) RejectLoan(ctx context.Context, req *dto.RejectLoanRequest) (*dto.LoanResponse, error) {
	in := *req
	if in.RejectedBy == "" {
		in.RejectedBy = auth.ActorFromContext(ctx)
	}
	resp, err := h.uc.Reject.Execute(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// DeleteLoan removes a demand that never entered repayment.
func (h *LendingHandler) DeleteLoan(ctx context.Context, req *dto.DeleteLoanRequest) (*DeleteLoanResponse, error) {
	if err := h.uc.Delete.Execute(ctx, *req); err != nil {
		return nil, toStatusError(err)
	}
	return &DeleteLoanResponse{LoanID: req.LoanID}, nil
}

// GetLoan retrieves a loan by ID or number.
func (h *LendingHandler) GetLoan(ctx context.Context, req *dto.GetLoanRequest) (*dto.LoanResponse, error) {
	resp, err := h.uc.GetLoan.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// ListLoans lists the portfolio, optionally filtered by client or status.
func (h *LendingHandler) ListLoans(ctx context.Context, req *dto.ListLoansRequest) (*ListLoansResponse, error) {
	loans, err := h.uc.ListLoans.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ListLoansResponse{Loans: loans}, nil
}

// GetSchedule returns the full amortization schedule of a loan.
func (h *LendingHandler) GetSchedule(ctx context.Context, req *dto.GetScheduleRequest) (*InstallmentListResponse, error) {
	installments, err := h.uc.GetSchedule.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &InstallmentListResponse{Installments: installments}, nil
}

// ListUnpaid returns the unsettled installments of a loan.
func (h *LendingHandler) ListUnpaid(ctx context.Context, req *dto.ListUnpaidRequest) (*InstallmentListResponse, error) {
	installments, err := h.uc.ListUnpaid.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &InstallmentListResponse{Installments: installments}, nil
}

// ListOverdue returns the overdue installments across the portfolio.
func (h *LendingHandler) ListOverdue(ctx context.Context, req *dto.ListOverdueRequest) (*InstallmentListResponse, error) {
	installments, err := h.uc.ListOverdue.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &InstallmentListResponse{Installments: installments}, nil
}

// RecordRepayment applies a payment to an installment.
func (h *LendingHandler) RecordRepayment(ctx context.Context, req *dto.RecordRepaymentRequest) (*dto.RecordRepaymentResponse, error) {
	in := *req
	if in.RecordedBy == "" {
		in.RecordedBy = auth.ActorFromContext(ctx)
	}
	resp, err := h.uc.RecordRepayment.Execute(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// ListRepayments returns the payment history of an installment or a loan.
func (h *LendingHandler) ListRepayments(ctx context.Context, req *dto.ListRepaymentsRequest) (*RepaymentListResponse, error) {
	repayments, err := h.uc.ListRepayments.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &RepaymentListResponse{Repayments: repayments}, nil
}

// MarkOverdue runs the portfolio-wide arrears sweep.
func (h *LendingHandler) MarkOverdue(ctx context.Context, req *dto.MarkOverdueRequest) (*dto.MarkOverdueResponse, error) {
	resp, err := h.uc.MarkOverdue.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// toStatusError maps domain failures onto gRPC status codes.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, fault.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, fault.ErrInvalidParameter):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, fault.ErrNotEligible), errors.Is(err, fault.ErrInvalidState):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, fault.ErrConcurrencyConflict):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
