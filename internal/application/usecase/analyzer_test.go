package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finops-tools/aws-cost-report/internal/domain/entity"
	"github.com/finops-tools/aws-cost-report/internal/shared/types"
)

func TestAnalyzeCosts_Comparison(t *testing.T) {
	raw := []entity.MonthlyServiceCosts{
		{
			PeriodStart: "2024-05-01",
			Services: []entity.ServiceCost{
				{ServiceName: "EC2", Cost: 100.0},
				{ServiceName: "S3", Cost: 50.0},
			},
		},
		{
			PeriodStart: "2024-06-01",
			Services: []entity.ServiceCost{
				{ServiceName: "EC2", Cost: 120.0},
				{ServiceName: "S3", Cost: 40.0},
			},
		},
	}

	analysis, err := AnalyzeCosts(raw, 10)
	require.NoError(t, err)

	assert.Equal(t, "2024-06", analysis.CurrentMonth)
	assert.Equal(t, "2024-05", analysis.PreviousMonth)
	require.Len(t, analysis.Comparison, 2)

	ec2 := analysis.Comparison[0]
	assert.Equal(t, "EC2", ec2.ServiceName)
	assert.Equal(t, 120.0, ec2.Current)
	assert.Equal(t, 100.0, ec2.Previous)
	assert.Equal(t, 20.0, ec2.Change)
	assert.True(t, ec2.PercentDefined)
	assert.InDelta(t, 20.0, ec2.PercentChange, 1e-9)

	s3 := analysis.Comparison[1]
	assert.Equal(t, "S3", s3.ServiceName)
	assert.Equal(t, 40.0, s3.Current)
	assert.Equal(t, 50.0, s3.Previous)
	assert.Equal(t, -10.0, s3.Change)
	assert.True(t, s3.PercentDefined)
	assert.InDelta(t, -20.0, s3.PercentChange, 1e-9)
}

func TestAnalyzeCosts_PicksTwoMostRecentMonths(t *testing.T) {
	raw := []entity.MonthlyServiceCosts{
		{PeriodStart: "2024-01-01", Services: []entity.ServiceCost{{ServiceName: "EC2", Cost: 1}}},
		{PeriodStart: "2024-04-01", Services: []entity.ServiceCost{{ServiceName: "EC2", Cost: 4}}},
		{PeriodStart: "2024-02-01", Services: []entity.ServiceCost{{ServiceName: "EC2", Cost: 2}}},
		{PeriodStart: "2024-03-01", Services: []entity.ServiceCost{{ServiceName: "EC2", Cost: 3}}},
	}

	analysis, err := AnalyzeCosts(raw, 10)
	require.NoError(t, err)

	assert.Equal(t, "2024-04", analysis.CurrentMonth)
	assert.Equal(t, "2024-03", analysis.PreviousMonth)
}

func TestAnalyzeCosts_TopNTruncation(t *testing.T) {
	current := entity.MonthlyServiceCosts{PeriodStart: "2024-06-01"}
	previous := entity.MonthlyServiceCosts{PeriodStart: "2024-05-01"}
	for i := 0; i < 15; i++ {
		name := string(rune('A' + i))
		current.Services = append(current.Services, entity.ServiceCost{ServiceName: name, Cost: float64(i + 1)})
		previous.Services = append(previous.Services, entity.ServiceCost{ServiceName: name, Cost: 1})
	}

	analysis, err := AnalyzeCosts([]entity.MonthlyServiceCosts{previous, current}, 10)
	require.NoError(t, err)

	require.Len(t, analysis.Comparison, 10)
	for i := 1; i < len(analysis.Comparison); i++ {
		assert.GreaterOrEqual(t, analysis.Comparison[i-1].Current, analysis.Comparison[i].Current,
			"comparison must be sorted by current cost descending")
	}
	// O serviço mais caro (custo 15) lidera a lista
	assert.Equal(t, 15.0, analysis.Comparison[0].Current)
}

func TestAnalyzeCosts_ServiceAbsentFromPreviousMonth(t *testing.T) {
	raw := []entity.MonthlyServiceCosts{
		{PeriodStart: "2024-05-01", Services: []entity.ServiceCost{{ServiceName: "EC2", Cost: 10}}},
		{PeriodStart: "2024-06-01", Services: []entity.ServiceCost{
			{ServiceName: "EC2", Cost: 10},
			{ServiceName: "Amazon Bedrock", Cost: 30},
		}},
	}

	analysis, err := AnalyzeCosts(raw, 10)
	require.NoError(t, err)

	bedrock := analysis.Comparison[0]
	assert.Equal(t, "Amazon Bedrock", bedrock.ServiceName)
	assert.Equal(t, 0.0, bedrock.Previous)
	assert.Equal(t, 30.0, bedrock.Change)
	assert.False(t, bedrock.PercentDefined, "percent change against a zero baseline is undefined")
}

func TestAnalyzeCosts_InsufficientHistory(t *testing.T) {
	tests := []struct {
		name string
		raw  []entity.MonthlyServiceCosts
	}{
		{name: "no months", raw: nil},
		{name: "single month", raw: []entity.MonthlyServiceCosts{
			{PeriodStart: "2024-06-01", Services: []entity.ServiceCost{{ServiceName: "EC2", Cost: 1}}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AnalyzeCosts(tt.raw, 10)
			assert.ErrorIs(t, err, types.ErrInsufficientHistory)
		})
	}
}

func TestAnalyzeCosts_InvalidPeriodStart(t *testing.T) {
	raw := []entity.MonthlyServiceCosts{
		{PeriodStart: "not-a-date", Services: []entity.ServiceCost{{ServiceName: "EC2", Cost: 1}}},
	}

	_, err := AnalyzeCosts(raw, 10)
	assert.Error(t, err)
}
