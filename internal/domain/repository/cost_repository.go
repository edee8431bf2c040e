package repository

import (
	"context"
	"time"

	"github.com/finops-tools/aws-cost-report/internal/domain/entity"
)

// CostRepository defines the interface for billing-side AWS interactions.
type CostRepository interface {
	// Cost Operations
	GetMonthlyServiceCosts(ctx context.Context, start, end time.Time) ([]entity.MonthlyServiceCosts, error)

	// Account Operations
	GetAccountID(ctx context.Context) (string, error)

	// Budget Operations
	GetBudgets(ctx context.Context) ([]entity.BudgetInfo, error)
}
