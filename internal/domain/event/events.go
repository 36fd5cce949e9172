package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ouestbank/lending-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Loan lifecycle events
// ---------------------------------------------------------------------------

// LoanApplicationReceived is raised when a new loan demand enters the system.
type LoanApplicationReceived struct {
	events.BaseEvent
	LoanNumber string          `json:"loan_number"`
	ClientID   string          `json:"client_id"`
	LoanTypeID string          `json:"loan_type_id"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	TermMonths int             `json:"term_months"`
}

func NewLoanApplicationReceived(
	loanID, loanNumber, clientID, loanTypeID string,
	amount decimal.Decimal, currency string, termMonths int,
) LoanApplicationReceived {
	return LoanApplicationReceived{
		BaseEvent:  events.NewBaseEvent("loan.application_received", loanID, "Loan"),
		LoanNumber: loanNumber,
		ClientID:   clientID,
		LoanTypeID: loanTypeID,
		Amount:     amount,
		Currency:   currency,
		TermMonths: termMonths,
	}
}

// LoanApproved is raised when a demand is approved and its schedule generated.
type LoanApproved struct {
	events.BaseEvent
	LoanNumber     string          `json:"loan_number"`
	ClientID       string          `json:"client_id"`
	ApprovedBy     string          `json:"approved_by,omitempty"`
	GrantedAmount  decimal.Decimal `json:"granted_amount"`
	Currency       string          `json:"currency"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalDue       decimal.Decimal `json:"total_due"`
	FirstDueDate   time.Time       `json:"first_due_date"`
	LastDueDate    time.Time       `json:"last_due_date"`
}

func NewLoanApproved(
	loanID, loanNumber, clientID, approvedBy string,
	grantedAmount decimal.Decimal, currency string,
	monthlyPayment, totalDue decimal.Decimal,
	firstDueDate, lastDueDate time.Time,
) LoanApproved {
	return LoanApproved{
		BaseEvent:      events.NewBaseEvent("loan.approved", loanID, "Loan"),
		LoanNumber:     loanNumber,
		ClientID:       clientID,
		ApprovedBy:     approvedBy,
		GrantedAmount:  grantedAmount,
		Currency:       currency,
		MonthlyPayment: monthlyPayment,
		TotalDue:       totalDue,
		FirstDueDate:   firstDueDate,
		LastDueDate:    lastDueDate,
	}
}

// LoanRejected is raised when a demand is refused.
type LoanRejected struct {
	events.BaseEvent
	LoanNumber string `json:"loan_number"`
	ClientID   string `json:"client_id"`
	RejectedBy string `json:"rejected_by,omitempty"`
	Reason     string `json:"reason"`
}

func NewLoanRejected(loanID, loanNumber, clientID, rejectedBy, reason string) LoanRejected {
	return LoanRejected{
		BaseEvent:  events.NewBaseEvent("loan.rejected", loanID, "Loan"),
		LoanNumber: loanNumber,
		ClientID:   clientID,
		RejectedBy: rejectedBy,
		Reason:     reason,
	}
}

// LoanInArrears is raised when a loan acquires its first late installment.
type LoanInArrears struct {
	events.BaseEvent
	LoanNumber string `json:"loan_number"`
	ClientID   string `json:"client_id"`
}

func NewLoanInArrears(loanID, loanNumber, clientID string) LoanInArrears {
	return LoanInArrears{
		BaseEvent:  events.NewBaseEvent("loan.in_arrears", loanID, "Loan"),
		LoanNumber: loanNumber,
		ClientID:   clientID,
	}
}

// LoanCompleted is raised when the last installment of a loan settles.
type LoanCompleted struct {
	events.BaseEvent
	LoanNumber string `json:"loan_number"`
	ClientID   string `json:"client_id"`
}

func NewLoanCompleted(loanID, loanNumber, clientID string) LoanCompleted {
	return LoanCompleted{
		BaseEvent:  events.NewBaseEvent("loan.completed", loanID, "Loan"),
		LoanNumber: loanNumber,
		ClientID:   clientID,
	}
}

// PenaltyApplied is raised when the penalty engine assesses a late fee.
type PenaltyApplied struct {
	events.BaseEvent
	LoanNumber    string          `json:"loan_number"`
	InstallmentID string          `json:"installment_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
}

func NewPenaltyApplied(loanID, loanNumber, installmentID string, amount decimal.Decimal, currency string) PenaltyApplied {
	return PenaltyApplied{
		BaseEvent:     events.NewBaseEvent("loan.penalty_applied", loanID, "Loan"),
		LoanNumber:    loanNumber,
		InstallmentID: installmentID,
		Amount:        amount,
		Currency:      currency,
	}
}

// ---------------------------------------------------------------------------
// Installment events
// ---------------------------------------------------------------------------

// RepaymentRecorded is raised for every repayment received, partial or full.
type RepaymentRecorded struct {
	events.BaseEvent
	InstallmentID string          `json:"installment_id"`
	Sequence      int             `json:"sequence"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAt        time.Time       `json:"paid_at"`
}

func NewRepaymentRecorded(loanID, installmentID string, sequence int, amount decimal.Decimal, paidAt time.Time) RepaymentRecorded {
	return RepaymentRecorded{
		BaseEvent:     events.NewBaseEvent("loan.repayment_recorded", loanID, "Loan"),
		InstallmentID: installmentID,
		Sequence:      sequence,
		Amount:        amount,
		PaidAt:        paidAt,
	}
}

// InstallmentPaid is raised when an installment settles in full.
type InstallmentPaid struct {
	events.BaseEvent
	InstallmentID string    `json:"installment_id"`
	Sequence      int       `json:"sequence"`
	FinalStatus   string    `json:"final_status"`
	PaidAt        time.Time `json:"paid_at"`
}

func NewInstallmentPaid(loanID, installmentID string, sequence int, finalStatus string, paidAt time.Time) InstallmentPaid {
	return InstallmentPaid{
		BaseEvent:     events.NewBaseEvent("loan.installment_paid", loanID, "Loan"),
		InstallmentID: installmentID,
		Sequence:      sequence,
		FinalStatus:   finalStatus,
		PaidAt:        paidAt,
	}
}
