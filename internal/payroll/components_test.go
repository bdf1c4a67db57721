package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveComponents_FixedBasicWithPercentageOfBasic(t *testing.T) {
	components := []Component{
		{Name: "Basic Salary", Category: "EARNING", ComputationType: "FIXED", FixedAmount: 15000},
		{Name: "Provident Fund", Category: "DEDUCTION", ComputationType: "PERCENTAGE", PercentageValue: 12, PercentageBase: "BASIC"},
	}

	res := ResolveComponents(components, 30000)

	assert.Equal(t, 15000.0, res.BasicSalary)
	assert.Equal(t, 15000.0, res.TotalEarnings)
	assert.Equal(t, 1800.0, res.TotalDeductions)
	assert.Len(t, res.Earnings, 1)
	assert.Len(t, res.Deductions, 1)
	assert.Equal(t, 1800.0, res.Deductions[0].Amount)
}

func TestResolveComponents_PercentageBasicOfWage(t *testing.T) {
	components := []Component{
		{Name: "Basic Salary", Category: "EARNING", ComputationType: "PERCENTAGE", PercentageValue: 50, PercentageBase: "WAGE"},
		{Name: "HRA", Category: "EARNING", ComputationType: "PERCENTAGE", PercentageValue: 40, PercentageBase: "BASIC"},
		{Name: "Transport", Category: "EARNING", ComputationType: "FIXED", FixedAmount: 1200},
	}

	res := ResolveComponents(components, 30000)

	assert.Equal(t, 15000.0, res.BasicSalary)
	assert.Equal(t, 15000.0, res.Earnings[0].Amount)
	assert.Equal(t, 6000.0, res.Earnings[1].Amount)
	assert.Equal(t, 1200.0, res.Earnings[2].Amount)
	assert.Equal(t, 22200.0, res.TotalEarnings)
	assert.Equal(t, 0.0, res.TotalDeductions)
}

func TestResolveComponents_NoBasicSalaryDefaultsToZeroBase(t *testing.T) {
	components := []Component{
		{Name: "HRA", Category: "EARNING", ComputationType: "PERCENTAGE", PercentageValue: 40, PercentageBase: "BASIC"},
	}

	res := ResolveComponents(components, 30000)

	assert.Equal(t, 0.0, res.BasicSalary)
	assert.Equal(t, 0.0, res.TotalEarnings)
}

func TestResolveComponents_RoundsEachAmount(t *testing.T) {
	components := []Component{
		{Name: "Basic Salary", Category: "EARNING", ComputationType: "PERCENTAGE", PercentageValue: 33.33, PercentageBase: "WAGE"},
	}

	res := ResolveComponents(components, 10000)

	// 10000 * 33.33% = 3333.0 exactly; force a fractional case too.
	assert.Equal(t, 3333.0, res.Earnings[0].Amount)

	res = ResolveComponents([]Component{
		{Name: "Levy", Category: "DEDUCTION", ComputationType: "PERCENTAGE", PercentageValue: 1.155, PercentageBase: "WAGE"},
	}, 10000)
	assert.Equal(t, 115.5, res.Deductions[0].Amount)
}

func TestResolveComponents_PartitionFollowsCategoryNotSign(t *testing.T) {
	components := []Component{
		{Name: "Adjustment", Category: "DEDUCTION", ComputationType: "FIXED", FixedAmount: 0},
		{Name: "Bonus", Category: "EARNING", ComputationType: "FIXED", FixedAmount: 500},
	}

	res := ResolveComponents(components, 30000)

	assert.Len(t, res.Deductions, 1)
	assert.Len(t, res.Earnings, 1)
	assert.Equal(t, "Adjustment", res.Deductions[0].Name)
}
