package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/ouestbank/lending-service/internal/domain/event"
	"github.com/ouestbank/lending-service/internal/domain/fault"
	"github.com/ouestbank/lending-service/internal/domain/model"
	"github.com/ouestbank/lending-service/internal/domain/valueobject"
)

// --- Mock implementations ---

type mockLoanRepository struct {
	saveFunc           func(ctx context.Context, loan model.Loan) error
	saveApprovedFunc   func(ctx context.Context, loan model.Loan, installments []model.Installment) error
	findByIDFunc       func(ctx context.Context, id string) (model.Loan, error)
	findByNumberFunc   func(ctx context.Context, number string) (model.Loan, error)
	findByClientIDFunc func(ctx context.Context, clientID string) ([]model.Loan, error)
	savedLoans         []model.Loan
	savedApprovals     [][]model.Installment
	deletedIDs         []string
}

func (m *mockLoanRepository) Save(ctx context.Context, loan model.Loan) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, loan)
	}
	m.savedLoans = append(m.savedLoans, loan)
	return nil
}

func (m *mockLoanRepository) SaveApproved(ctx context.Context, loan model.Loan, installments []model.Installment) error {
	if m.saveApprovedFunc != nil {
		return m.saveApprovedFunc(ctx, loan, installments)
	}
	m.savedLoans = append(m.savedLoans, loan)
	m.savedApprovals = append(m.savedApprovals, installments)
	return nil
}

func (m *mockLoanRepository) Delete(_ context.Context, id string) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

func (m *mockLoanRepository) FindByID(ctx context.Context, id string) (model.Loan, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Loan{}, fmt.Errorf("%w: loan %s", fault.ErrNotFound, id)
}

func (m *mockLoanRepository) FindByNumber(ctx context.Context, number string) (model.Loan, error) {
	if m.findByNumberFunc != nil {
		return m.findByNumberFunc(ctx, number)
	}
	return model.Loan{}, fmt.Errorf("%w: loan number %s", fault.ErrNotFound, number)
}

func (m *mockLoanRepository) FindByClientID(ctx context.Context, clientID string) ([]model.Loan, error) {
	if m.findByClientIDFunc != nil {
		return m.findByClientIDFunc(ctx, clientID)
	}
	return nil, nil
}

func (m *mockLoanRepository) FindByStatus(_ context.Context, _ valueobject.LoanStatus) ([]model.Loan, error) {
	return nil, nil
}

func (m *mockLoanRepository) FindAll(_ context.Context) ([]model.Loan, error) {
	return nil, nil
}

type mockInstallmentRepository struct {
	saveFunc          func(ctx context.Context, inst model.Installment) error
	saveRepaymentFunc func(ctx context.Context, inst model.Installment, rep model.Repayment) error
	findByIDFunc      func(ctx context.Context, id string) (model.Installment, error)
	findByLoanIDFunc  func(ctx context.Context, loanID string) ([]model.Installment, error)
	findUnpaidFunc    func(ctx context.Context, loanID string) ([]model.Installment, error)
	findOverdueFunc   func(ctx context.Context, asOf time.Time) ([]model.Installment, error)
	findDueOnFunc     func(ctx context.Context, day time.Time) ([]model.Installment, error)
	savedInstallments []model.Installment
	savedRepayments   []model.Repayment
}

func (m *mockInstallmentRepository) Save(ctx context.Context, inst model.Installment) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, inst)
	}
	m.savedInstallments = append(m.savedInstallments, inst)
	return nil
}

func (m *mockInstallmentRepository) SaveRepayment(ctx context.Context, inst model.Installment, rep model.Repayment) error {
	if m.saveRepaymentFunc != nil {
		return m.saveRepaymentFunc(ctx, inst, rep)
	}
	m.savedInstallments = append(m.savedInstallments, inst)
	m.savedRepayments = append(m.savedRepayments, rep)
	return nil
}

func (m *mockInstallmentRepository) FindByID(ctx context.Context, id string) (model.Installment, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Installment{}, fmt.Errorf("%w: installment %s", fault.ErrNotFound, id)
}

func (m *mockInstallmentRepository) FindByLoanID(ctx context.Context, loanID string) ([]model.Installment, error) {
	if m.findByLoanIDFunc != nil {
		return m.findByLoanIDFunc(ctx, loanID)
	}
	return nil, nil
}

func (m *mockInstallmentRepository) FindUnpaidByLoanID(ctx context.Context, loanID string) ([]model.Installment, error) {
	if m.findUnpaidFunc != nil {
		return m.findUnpaidFunc(ctx, loanID)
	}
	return nil, nil
}

func (m *mockInstallmentRepository) FindOverdue(ctx context.Context, asOf time.Time) ([]model.Installment, error) {
	if m.findOverdueFunc != nil {
		return m.findOverdueFunc(ctx, asOf)
	}
	return nil, nil
}

func (m *mockInstallmentRepository) FindDueOn(ctx context.Context, day time.Time) ([]model.Installment, error) {
	if m.findDueOnFunc != nil {
		return m.findDueOnFunc(ctx, day)
	}
	return nil, nil
}

type mockRepaymentRepository struct {
	findByInstallmentIDFunc func(ctx context.Context, installmentID string) ([]model.Repayment, error)
	findByLoanIDFunc        func(ctx context.Context, loanID string) ([]model.Repayment, error)
}

func (m *mockRepaymentRepository) FindByInstallmentID(ctx context.Context, installmentID string) ([]model.Repayment, error) {
	if m.findByInstallmentIDFunc != nil {
		return m.findByInstallmentIDFunc(ctx, installmentID)
	}
	return nil, nil
}

func (m *mockRepaymentRepository) FindByLoanID(ctx context.Context, loanID string) ([]model.Repayment, error) {
	if m.findByLoanIDFunc != nil {
		return m.findByLoanIDFunc(ctx, loanID)
	}
	return nil, nil
}

type mockLoanTypeRepository struct {
	findByIDFunc func(ctx context.Context, id string) (model.LoanType, error)
}

func (m *mockLoanTypeRepository) FindByID(ctx context.Context, id string) (model.LoanType, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.LoanType{}, fmt.Errorf("%w: loan type %s", fault.ErrNotFound, id)
}

func (m *mockLoanTypeRepository) FindAll(_ context.Context) ([]model.LoanType, error) {
	return nil, nil
}

type mockClientDirectory struct {
	existsFunc func(ctx context.Context, clientID string) (bool, error)
}

func (m *mockClientDirectory) Exists(ctx context.Context, clientID string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, clientID)
	}
	return true, nil
}

type mockNumberGenerator struct {
	next int
}

func (m *mockNumberGenerator) NextLoanNumber(_ context.Context) (string, error) {
	m.next++
	return fmt.Sprintf("PRET-2025-%04d", m.next), nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}
