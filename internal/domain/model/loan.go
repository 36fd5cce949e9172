package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ouestbank/lending-service/internal/domain/event"
	"github.com/ouestbank/lending-service/internal/domain/fault"
	"github.com/ouestbank/lending-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Loan aggregate root
// ---------------------------------------------------------------------------

// Loan is an immutable aggregate. Mutations return a new copy.
type Loan struct {
	id              string
	number          string
	clientID        string
	loanTypeID      string
	requestedAmount decimal.Decimal
	grantedAmount   decimal.Decimal
	termMonths      int
	annualRate      decimal.Decimal
	monthlyPayment  decimal.Decimal
	totalDue        decimal.Decimal
	totalPenalties  decimal.Decimal
	processingFee   decimal.Decimal
	currency        string
	status          valueobject.LoanStatus
	rejectionReason string
	applicationDate time.Time
	approvalDate    *time.Time
	firstDueDate    *time.Time
	lastDueDate     *time.Time
	version         int
	createdAt       time.Time
	updatedAt       time.Time
	domainEvents    []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewLoanDemand registers a new loan demand in EN_ATTENTE. The payment figures
// are frozen from the simulation run against the loan type's rate so that a
// later rate change on the product never alters an accepted demand.
func NewLoanDemand(
	id, number, clientID string,
	loanType LoanType,
	amount decimal.Decimal,
	termMonths int,
	currency string,
	now time.Time,
) (Loan, error) {
	if id == "" {
		return Loan{}, fmt.Errorf("%w: loan ID is required", fault.ErrInvalidParameter)
	}
	if number == "" {
		return Loan{}, fmt.Errorf("%w: loan number is required", fault.ErrInvalidParameter)
	}
	if clientID == "" {
		return Loan{}, fmt.Errorf("%w: client ID is required", fault.ErrInvalidParameter)
	}
	if currency == "" {
		return Loan{}, fmt.Errorf("%w: currency is required", fault.ErrInvalidParameter)
	}
	if err := loanType.CheckEligibility(amount, termMonths); err != nil {
		return Loan{}, err
	}

	payment, err := ComputeMonthlyPayment(amount, loanType.AnnualRate(), termMonths)
	if err != nil {
		return Loan{}, err
	}
	sched, err := ComputeSchedule(amount, loanType.AnnualRate(), termMonths, now)
	if err != nil {
		return Loan{}, err
	}

	loan := Loan{
		id:              id,
		number:          number,
		clientID:        clientID,
		loanTypeID:      loanType.ID(),
		requestedAmount: amount,
		grantedAmount:   amount,
		termMonths:      termMonths,
		annualRate:      loanType.AnnualRate(),
		monthlyPayment:  payment,
		totalDue:        sched.TotalDue,
		totalPenalties:  decimal.Zero,
		processingFee:   loanType.ProcessingFee(amount),
		currency:        currency,
		status:          valueobject.LoanStatusEnAttente,
		applicationDate: now,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}

	loan.domainEvents = append(loan.domainEvents, event.NewLoanApplicationReceived(
		id, number, clientID, loanType.ID(), amount, currency, termMonths,
	))

	return loan, nil
}

// ReconstructLoan rebuilds a Loan aggregate from persistence.
func ReconstructLoan(
	id, number, clientID, loanTypeID string,
	requestedAmount, grantedAmount decimal.Decimal,
	termMonths int,
	annualRate, monthlyPayment, totalDue, totalPenalties, processingFee decimal.Decimal,
	currency string,
	status valueobject.LoanStatus,
	rejectionReason string,
	applicationDate time.Time,
	approvalDate, firstDueDate, lastDueDate *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) Loan {
	return Loan{
		id:              id,
		number:          number,
		clientID:        clientID,
		loanTypeID:      loanTypeID,
		requestedAmount: requestedAmount,
		grantedAmount:   grantedAmount,
		termMonths:      termMonths,
		annualRate:      annualRate,
		monthlyPayment:  monthlyPayment,
		totalDue:        totalDue,
		totalPenalties:  totalPenalties,
		processingFee:   processingFee,
		currency:        currency,
		status:          status,
		rejectionReason: rejectionReason,
		applicationDate: applicationDate,
		approvalDate:    approvalDate,
		firstDueDate:    firstDueDate,
		lastDueDate:     lastDueDate,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// Approve moves EN_ATTENTE through the transient APPROUVE state into EN_COURS.
// The repayment schedule is recomputed from the frozen figures with the first
// installment due one month after the approval date; the computed schedule is
// returned so the caller can persist the installments atomically with the loan.
func (l Loan) Approve(approvedBy string, now time.Time) (Loan, Schedule, error) {
	approved, err := l.status.TransitionTo(valueobject.LoanStatusApprouve)
	if err != nil {
		return l, Schedule{}, fmt.Errorf("approve loan: %w", err)
	}
	active, err := approved.TransitionTo(valueobject.LoanStatusEnCours)
	if err != nil {
		return l, Schedule{}, fmt.Errorf("activate loan: %w", err)
	}

	firstDue := now.AddDate(0, 1, 0)
	sched, err := ComputeSchedule(l.grantedAmount, l.annualRate, l.termMonths, firstDue)
	if err != nil {
		return l, Schedule{}, err
	}
	lastDue := sched.Lines[len(sched.Lines)-1].DueDate

	next := l
	next.status = active
	next.monthlyPayment = sched.MonthlyPayment
	next.totalDue = sched.TotalDue
	next.approvalDate = &now
	next.firstDueDate = &firstDue
	next.lastDueDate = &lastDue
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanApproved(
		l.id, l.number, l.clientID, approvedBy, l.grantedAmount, l.currency,
		sched.MonthlyPayment, sched.TotalDue, firstDue, lastDue,
	))

	return next, sched, nil
}

// Reject moves EN_ATTENTE to the terminal REFUSE state. A reason is required.
func (l Loan) Reject(reason, rejectedBy string, now time.Time) (Loan, error) {
	refused, err := l.status.TransitionTo(valueobject.LoanStatusRefuse)
	if err != nil {
		return l, fmt.Errorf("reject loan: %w", err)
	}
	if reason == "" {
		return l, fmt.Errorf("%w: rejection reason is required", fault.ErrInvalidParameter)
	}

	next := l
	next.status = refused
	next.rejectionReason = reason
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanRejected(
		l.id, l.number, l.clientID, rejectedBy, reason,
	))
	return next, nil
}

// MarkInArrears transitions EN_COURS -> EN_RETARD.
func (l Loan) MarkInArrears(now time.Time) (Loan, error) {
	if l.status.Equal(valueobject.LoanStatusEnRetard) {
		return l, nil
	}
	late, err := l.status.TransitionTo(valueobject.LoanStatusEnRetard)
	if err != nil {
		return l, fmt.Errorf("mark loan in arrears: %w", err)
	}
	next := l
	next.status = late
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanInArrears(l.id, l.number, l.clientID))
	return next, nil
}

// ClearArrears transitions EN_RETARD back to EN_COURS once no late
// installment remains unsettled.
func (l Loan) ClearArrears(now time.Time) (Loan, error) {
	current, err := l.status.TransitionTo(valueobject.LoanStatusEnCours)
	if err != nil {
		return l, fmt.Errorf("clear arrears: %w", err)
	}
	next := l
	next.status = current
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	return next, nil
}

// AddPenalty accumulates a late penalty assessed on one of the loan's
// installments onto the loan's running total.
func (l Loan) AddPenalty(installmentID string, amount decimal.Decimal, now time.Time) (Loan, error) {
	if !l.status.IsActive() {
		return l, fmt.Errorf("%w: cannot assess penalties on a loan in status %s",
			fault.ErrInvalidState, l.status)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return l, fmt.Errorf("%w: penalty amount must be positive", fault.ErrInvalidParameter)
	}
	next := l
	next.totalPenalties = l.totalPenalties.Add(amount)
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewPenaltyApplied(
		l.id, l.number, installmentID, amount, l.currency,
	))
	return next, nil
}

// Complete transitions an active loan to the terminal TERMINE state once every
// installment is settled.
func (l Loan) Complete(now time.Time) (Loan, error) {
	done, err := l.status.TransitionTo(valueobject.LoanStatusTermine)
	if err != nil {
		return l, fmt.Errorf("complete loan: %w", err)
	}
	next := l
	next.status = done
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanCompleted(l.id, l.number, l.clientID))
	return next, nil
}

// ---------------------------------------------------------------------------
// Derived values
// ---------------------------------------------------------------------------

// CostOfCredit returns what the borrower pays beyond the granted amount:
// total interest plus the processing fee plus accumulated penalties.
func (l Loan) CostOfCredit() decimal.Decimal {
	return l.totalDue.Sub(l.grantedAmount).Add(l.processingFee).Add(l.totalPenalties)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) ID() string                        { return l.id }
func (l Loan) Number() string                    { return l.number }
func (l Loan) ClientID() string                  { return l.clientID }
func (l Loan) LoanTypeID() string                { return l.loanTypeID }
func (l Loan) RequestedAmount() decimal.Decimal  { return l.requestedAmount }
func (l Loan) GrantedAmount() decimal.Decimal    { return l.grantedAmount }
func (l Loan) TermMonths() int                   { return l.termMonths }
func (l Loan) AnnualRate() decimal.Decimal       { return l.annualRate }
func (l Loan) MonthlyPayment() decimal.Decimal   { return l.monthlyPayment }
func (l Loan) TotalDue() decimal.Decimal         { return l.totalDue }
func (l Loan) TotalPenalties() decimal.Decimal   { return l.totalPenalties }
func (l Loan) ProcessingFee() decimal.Decimal    { return l.processingFee }
func (l Loan) Currency() string                  { return l.currency }
func (l Loan) Status() valueobject.LoanStatus    { return l.status }
func (l Loan) RejectionReason() string           { return l.rejectionReason }
func (l Loan) ApplicationDate() time.Time        { return l.applicationDate }
func (l Loan) ApprovalDate() *time.Time          { return l.approvalDate }
func (l Loan) FirstDueDate() *time.Time          { return l.firstDueDate }
func (l Loan) LastDueDate() *time.Time           { return l.lastDueDate }
func (l Loan) Version() int                      { return l.version }
func (l Loan) CreatedAt() time.Time              { return l.createdAt }
func (l Loan) UpdatedAt() time.Time              { return l.updatedAt }
func (l Loan) DomainEvents() []event.DomainEvent { return l.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (l Loan) ClearEvents() Loan {
	next := l
	next.domainEvents = nil
	return next
}

func copyEvents(in []event.DomainEvent) []event.DomainEvent {
	if in == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(in))
	copy(out, in)
	return out
}
