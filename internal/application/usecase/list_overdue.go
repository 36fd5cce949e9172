package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ouestbank/lending-service/internal/application/dto"
	"github.com/ouestbank/lending-service/internal/domain/port"
)

// ListOverdueUseCase scans the whole portfolio for overdue installments.
type ListOverdueUseCase struct {
	installments port.InstallmentRepository
}

// NewListOverdueUseCase wires dependencies.
func NewListOverdueUseCase(installments port.InstallmentRepository) *ListOverdueUseCase {
	return &ListOverdueUseCase{installments: installments}
}

// Execute returns every unsettled installment strictly past its due date as
// of the given day, across all loans, ordered by due date then sequence.
func (uc *ListOverdueUseCase) Execute(ctx context.Context, req dto.ListOverdueRequest) ([]dto.InstallmentResponse, error) {
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	installments, err := uc.installments.FindOverdue(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("load overdue installments: %w", err)
	}

	sort.Slice(installments, func(i, j int) bool {
		if installments[i].DueDate().Equal(installments[j].DueDate()) {
			return installments[i].Sequence() < installments[j].Sequence()
		}
		return installments[i].DueDate().Before(installments[j].DueDate())
	})
	return toInstallmentResponses(installments), nil
}
