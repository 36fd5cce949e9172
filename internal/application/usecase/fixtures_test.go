package usecase_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ouestbank/lending-service/internal/domain/model"
)

// --- Shared fixtures ---

var (
	demandDate   = time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)
	approvalDate = time.Date(2025, 2, 15, 14, 0, 0, 0, time.UTC)
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func consumerLoanType() model.LoanType {
	return model.ReconstructLoanType(
		"type-001", "CONSO", "Prêt consommation",
		d("0.12"), d("50000"), d("5000000"), 6, 60, d("0.01"), true,
	)
}

func pendingLoanFixture(t *testing.T) model.Loan {
	t.Helper()
	loan, err := model.NewLoanDemand(
		"loan-001", "PRET-2025-0001", "client-001",
		consumerLoanType(), d("120000"), 12, "XOF", demandDate,
	)
	require.NoError(t, err)
	return loan.ClearEvents()
}

func activeLoanFixture(t *testing.T) (model.Loan, []model.Installment) {
	t.Helper()
	approved, sched, err := pendingLoanFixture(t).Approve("admin-007", approvalDate)
	require.NoError(t, err)

	installments := make([]model.Installment, 0, len(sched.Lines))
	for _, line := range sched.Lines {
		inst, err := model.NewInstallment(fmt.Sprintf("inst-%03d", line.Sequence), approved.ID(), line, approvalDate)
		require.NoError(t, err)
		installments = append(installments, inst)
	}
	return approved.ClearEvents(), installments
}
