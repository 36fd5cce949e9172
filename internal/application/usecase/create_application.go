package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ouestbank/lending-service/internal/application/dto"
	"github.com/ouestbank/lending-service/internal/domain/fault"
	"github.com/ouestbank/lending-service/internal/domain/model"
	"github.com/ouestbank/lending-service/internal/domain/port"
)

const defaultCurrency = "XOF"

// CreateApplicationUseCase registers a new loan demand in EN_ATTENTE.
type CreateApplicationUseCase struct {
	loans     port.LoanRepository
	loanTypes port.LoanTypeRepository
	clients   port.ClientDirectory
	numbers   port.NumberGenerator
	publisher port.EventPublisher
}

// NewCreateApplicationUseCase wires dependencies.
func NewCreateApplicationUseCase(
	loans port.LoanRepository,
	loanTypes port.LoanTypeRepository,
	clients port.ClientDirectory,
	numbers port.NumberGenerator,
	publisher port.EventPublisher,
) *CreateApplicationUseCase {
	return &CreateApplicationUseCase{
		loans:     loans,
		loanTypes: loanTypes,
		clients:   clients,
		numbers:   numbers,
		publisher: publisher,
	}
}

// Execute validates the client and the product bounds, freezes the repayment
// figures and persists the demand.
func (uc *CreateApplicationUseCase) Execute(ctx context.Context, req dto.CreateApplicationRequest) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	exists, err := uc.clients.Exists(ctx, req.ClientID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("check client: %w", err)
	}
	if !exists {
		return dto.LoanResponse{}, fmt.Errorf("%w: client %s", fault.ErrNotFound, req.ClientID)
	}

	loanType, err := uc.loanTypes.FindByID(ctx, req.LoanTypeID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("load loan type: %w", err)
	}

	number, err := uc.numbers.NextLoanNumber(ctx)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("generate loan number: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	loan, err := model.NewLoanDemand(
		uuid.New().String(), number, req.ClientID,
		loanType, req.Amount, req.TermMonths, currency, now,
	)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("create demand: %w", err)
	}

	if err := uc.loans.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(loan, nil), nil
}
