package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// SimulateLoanRequest carries the parameters for a repayment simulation.
// MonthlyIncome is optional; when positive, the debt-service rule is applied.
// CustomRate is optional; when positive, it replaces the loan type's annual
// rate for the simulation run.
type SimulateLoanRequest struct {
	LoanTypeID    string          `json:"loan_type_id"`
	Amount        decimal.Decimal `json:"amount"`
	TermMonths    int             `json:"term_months"`
	CustomRate    decimal.Decimal `json:"custom_rate,omitempty"`
	MonthlyIncome decimal.Decimal `json:"monthly_income,omitempty"`
}

// CreateApplicationRequest carries the data for a new loan demand.
type CreateApplicationRequest struct {
	ClientID   string          `json:"client_id"`
	LoanTypeID string          `json:"loan_type_id"`
	Amount     decimal.Decimal `json:"amount"`
	TermMonths int             `json:"term_months"`
	Currency   string          `json:"currency,omitempty"`
}

// ApproveLoanRequest identifies a pending demand to approve.
type ApproveLoanRequest struct {
	LoanID     string `json:"loan_id"`
	ApprovedBy string `json:"approved_by,omitempty"`
}

// RejectLoanRequest identifies a pending demand to refuse.
type RejectLoanRequest struct {
	LoanID     string `json:"loan_id"`
	Reason     string `json:"reason"`
	RejectedBy string `json:"rejected_by,omitempty"`
}

// DeleteLoanRequest identifies a demand to delete.
type DeleteLoanRequest struct {
	LoanID string `json:"loan_id"`
}

// GetLoanRequest identifies a loan by ID or by its human-readable number.
type GetLoanRequest struct {
	LoanID     string `json:"loan_id,omitempty"`
	LoanNumber string `json:"loan_number,omitempty"`
}

// ListLoansRequest filters the loan portfolio. Empty filters list everything.
type ListLoansRequest struct {
	ClientID string `json:"client_id,omitempty"`
	Status   string `json:"status,omitempty"`
}

// GetScheduleRequest identifies the loan whose schedule to return.
type GetScheduleRequest struct {
	LoanID string `json:"loan_id"`
}

// ListUnpaidRequest identifies the loan whose unsettled installments to return.
type ListUnpaidRequest struct {
	LoanID string `json:"loan_id"`
}

// ListOverdueRequest bounds the portfolio-wide overdue scan. A zero AsOf
// means today.
type ListOverdueRequest struct {
	AsOf time.Time `json:"as_of,omitempty"`
}

// RecordRepaymentRequest carries a repayment against one installment.
// A zero PaidAt means now.
type RecordRepaymentRequest struct {
	InstallmentID string          `json:"installment_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAt        time.Time       `json:"paid_at,omitempty"`
	RecordedBy    string          `json:"recorded_by,omitempty"`
}

// ListRepaymentsRequest lists repayments for an installment or a whole loan.
type ListRepaymentsRequest struct {
	InstallmentID string `json:"installment_id,omitempty"`
	LoanID        string `json:"loan_id,omitempty"`
}

// MarkOverdueRequest triggers the overdue sweep. A zero AsOf means today.
type MarkOverdueRequest struct {
	AsOf time.Time `json:"as_of,omitempty"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ScheduleLineResponse represents one period of an amortization schedule.
type ScheduleLineResponse struct {
	Sequence         int             `json:"sequence"`
	DueDate          time.Time       `json:"due_date"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	Total            decimal.Decimal `json:"total"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// SimulationResponse is the outcome of a repayment simulation. Simulations
// are pure: nothing is persisted.
type SimulationResponse struct {
	LoanTypeID     string                 `json:"loan_type_id"`
	Amount         decimal.Decimal        `json:"amount"`
	TermMonths     int                    `json:"term_months"`
	AnnualRate     decimal.Decimal        `json:"annual_rate"`
	MonthlyPayment decimal.Decimal        `json:"monthly_payment"`
	TotalInterest  decimal.Decimal        `json:"total_interest"`
	TotalDue       decimal.Decimal        `json:"total_due"`
	ProcessingFee  decimal.Decimal        `json:"processing_fee"`
	CostOfCredit   decimal.Decimal        `json:"cost_of_credit"`
	Schedule       []ScheduleLineResponse `json:"schedule"`
}

// LoanResponse is the external representation of a loan.
type LoanResponse struct {
	ID              string          `json:"id"`
	Number          string          `json:"number"`
	ClientID        string          `json:"client_id"`
	LoanTypeID      string          `json:"loan_type_id"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	GrantedAmount   decimal.Decimal `json:"granted_amount"`
	TermMonths      int             `json:"term_months"`
	AnnualRate      decimal.Decimal `json:"annual_rate"`
	MonthlyPayment  decimal.Decimal `json:"monthly_payment"`
	TotalDue        decimal.Decimal `json:"total_due"`
	TotalPenalties  decimal.Decimal `json:"total_penalties"`
	ProcessingFee   decimal.Decimal `json:"processing_fee"`
	CostOfCredit    decimal.Decimal `json:"cost_of_credit"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	ProgressPercent decimal.Decimal `json:"progress_percent"`
	ApplicationDate time.Time       `json:"application_date"`
	ApprovalDate    *time.Time      `json:"approval_date,omitempty"`
	FirstDueDate    *time.Time      `json:"first_due_date,omitempty"`
	LastDueDate     *time.Time      `json:"last_due_date,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// InstallmentResponse is the external representation of a scheduled installment.
type InstallmentResponse struct {
	ID                string          `json:"id"`
	LoanID            string          `json:"loan_id"`
	Sequence          int             `json:"sequence"`
	DueDate           time.Time       `json:"due_date"`
	Principal         decimal.Decimal `json:"principal"`
	Interest          decimal.Decimal `json:"interest"`
	Total             decimal.Decimal `json:"total"`
	RemainingBalance  decimal.Decimal `json:"remaining_balance"`
	Status            string          `json:"status"`
	PaymentDate       *time.Time      `json:"payment_date,omitempty"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	PenaltyApplied    decimal.Decimal `json:"penalty_applied"`
	AmountOutstanding decimal.Decimal `json:"amount_outstanding"`
	DaysLate          int             `json:"days_late"`
}

// RepaymentResponse is the external representation of a repayment record.
type RepaymentResponse struct {
	ID            string          `json:"id"`
	InstallmentID string          `json:"installment_id"`
	LoanID        string          `json:"loan_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAt        time.Time       `json:"paid_at"`
	RecordedBy    string          `json:"recorded_by,omitempty"`
}

// RecordRepaymentResponse is the outcome of recording a repayment.
type RecordRepaymentResponse struct {
	Repayment   RepaymentResponse   `json:"repayment"`
	Installment InstallmentResponse `json:"installment"`
	LoanStatus  string              `json:"loan_status"`
}

// MarkOverdueResponse summarises one overdue sweep.
type MarkOverdueResponse struct {
	InstallmentsMarked   int             `json:"installments_marked"`
	InstallmentsDueToday int             `json:"installments_due_today"`
	LoansInArrears       int             `json:"loans_in_arrears"`
	PenaltiesAssessed    decimal.Decimal `json:"penalties_assessed"`
}
