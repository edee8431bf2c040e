package aws

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/finops-tools/aws-cost-report/internal/domain/entity"
	"github.com/finops-tools/aws-cost-report/internal/domain/repository"
)

// CostExplorerAPI é o subconjunto do cliente Cost Explorer usado pelo
// repositório. Permite substituir o backend de billing nos testes.
type CostExplorerAPI interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}

// STSAPI é o subconjunto do cliente STS usado pelo repositório.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// BudgetsAPI é o subconjunto do cliente Budgets usado pelo repositório.
type BudgetsAPI interface {
	DescribeBudgets(ctx context.Context, params *budgets.DescribeBudgetsInput, optFns ...func(*budgets.Options)) (*budgets.DescribeBudgetsOutput, error)
}

// CostRepositoryImpl implementa o CostRepository sobre clientes injetados.
type CostRepositoryImpl struct {
	ce      CostExplorerAPI
	sts     STSAPI
	budgets BudgetsAPI
}

// NewCostRepository cria uma nova implementação do CostRepository com os
// clientes fornecidos. Os clientes são construídos no main e injetados aqui.
func NewCostRepository(ce CostExplorerAPI, stsClient STSAPI, budgetsClient BudgetsAPI) repository.CostRepository {
	return &CostRepositoryImpl{ce: ce, sts: stsClient, budgets: budgetsClient}
}

// NewCostRepositoryFromConfig cria o repositório a partir de uma aws.Config.
// Cost Explorer e Budgets são serviços globais servidos em us-east-1.
func NewCostRepositoryFromConfig(cfg aws.Config) repository.CostRepository {
	globalCfg := cfg.Copy()
	globalCfg.Region = "us-east-1"
	return NewCostRepository(
		costexplorer.NewFromConfig(globalCfg),
		sts.NewFromConfig(cfg),
		budgets.NewFromConfig(globalCfg),
	)
}

// GetMonthlyServiceCosts consulta o custo mensal por serviço para a janela
// [start, end), agrupado pela dimensão SERVICE com a métrica UnblendedCost.
func (r *CostRepositoryImpl) GetMonthlyServiceCosts(ctx context.Context, start, end time.Time) ([]entity.MonthlyServiceCosts, error) {
	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod: &ceTypes.DateInterval{
			Start: aws.String(start.Format("2006-01-02")),
			End:   aws.String(end.Format("2006-01-02")),
		},
		Granularity: ceTypes.GranularityMonthly,
		Metrics:     []string{"UnblendedCost"},
		GroupBy: []ceTypes.GroupDefinition{
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String("SERVICE")},
		},
	}

	result, err := r.ce.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get cost and usage: %w", err)
	}

	months := make([]entity.MonthlyServiceCosts, 0, len(result.ResultsByTime))
	for _, period := range result.ResultsByTime {
		if period.TimePeriod == nil || period.TimePeriod.Start == nil {
			continue
		}
		month := entity.MonthlyServiceCosts{
			PeriodStart: *period.TimePeriod.Start,
		}
		for _, group := range period.Groups {
			if len(group.Keys) == 0 {
				continue
			}
			metric, ok := group.Metrics["UnblendedCost"]
			if !ok || metric.Amount == nil {
				continue
			}
			cost, _ := strconv.ParseFloat(*metric.Amount, 64)
			month.Services = append(month.Services, entity.ServiceCost{
				ServiceName: group.Keys[0],
				Cost:        cost,
			})
		}
		months = append(months, month)
	}

	return months, nil
}

// GetAccountID resolve o ID da conta via STS.
func (r *CostRepositoryImpl) GetAccountID(ctx context.Context) (string, error) {
	result, err := r.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID: %w", err)
	}
	return *result.Account, nil
}

// GetBudgets lista os budgets da conta com gasto real e previsto.
func (r *CostRepositoryImpl) GetBudgets(ctx context.Context) ([]entity.BudgetInfo, error) {
	accountID, err := r.GetAccountID(ctx)
	if err != nil {
		return nil, err
	}

	result, err := r.budgets.DescribeBudgets(ctx, &budgets.DescribeBudgetsInput{
		AccountId: aws.String(accountID),
	})
	if err != nil {
		return nil, nil // Not a fatal error
	}

	budgetsData := []entity.BudgetInfo{}
	for _, budget := range result.Budgets {
		b := entity.BudgetInfo{Name: *budget.BudgetName}
		if budget.BudgetLimit != nil {
			b.Limit, _ = strconv.ParseFloat(*budget.BudgetLimit.Amount, 64)
		}
		if budget.CalculatedSpend != nil && budget.CalculatedSpend.ActualSpend != nil {
			b.Actual, _ = strconv.ParseFloat(*budget.CalculatedSpend.ActualSpend.Amount, 64)
		}
		if budget.CalculatedSpend != nil && budget.CalculatedSpend.ForecastedSpend != nil {
			b.Forecast, _ = strconv.ParseFloat(*budget.CalculatedSpend.ForecastedSpend.Amount, 64)
		}
		budgetsData = append(budgetsData, b)
	}

	return budgetsData, nil
}
