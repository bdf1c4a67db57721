package payroll

import "math"

const basicSalaryComponentName = "Basic Salary"

const (
	categoryEarning   = "EARNING"
	categoryDeduction = "DEDUCTION"
)

const (
	computationPercentage = "PERCENTAGE"
	computationFixed      = "FIXED"
)

const (
	percentageBaseWage  = "WAGE"
	percentageBaseBasic = "BASIC"
)

// Component is one configured salary component joined with its catalog
// type, in catalog sort order.
type Component struct {
	Name            string
	Category        string
	SortOrder       int
	ComputationType string
	PercentageValue float64
	PercentageBase  string
	FixedAmount     float64
}

type ComponentAmount struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type Resolution struct {
	BasicSalary     float64
	Earnings        []ComponentAmount
	Deductions      []ComponentAmount
	TotalEarnings   float64
	TotalDeductions float64
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ResolveComponents computes a concrete amount per configured component
// in two passes. Basic Salary resolves first because percentage
// components may use it as their base; the second pass then walks every
// component, Basic Salary included, recomputing the same value.
func ResolveComponents(components []Component, monthlyWage float64) Resolution {
	res := Resolution{
		Earnings:   []ComponentAmount{},
		Deductions: []ComponentAmount{},
	}

	for _, c := range components {
		if c.Name != basicSalaryComponentName {
			continue
		}
		if c.ComputationType == computationPercentage {
			res.BasicSalary = monthlyWage * c.PercentageValue / 100
		} else {
			res.BasicSalary = c.FixedAmount
		}
		break
	}

	for _, c := range components {
		var amount float64
		switch c.ComputationType {
		case computationPercentage:
			base := monthlyWage
			if c.PercentageBase == percentageBaseBasic {
				base = res.BasicSalary
			}
			amount = base * c.PercentageValue / 100
		case computationFixed:
			amount = c.FixedAmount
		}
		amount = round2(amount)

		entry := ComponentAmount{Name: c.Name, Category: c.Category, Amount: amount}
		if c.Category == categoryDeduction {
			res.Deductions = append(res.Deductions, entry)
			res.TotalDeductions += amount
		} else {
			res.Earnings = append(res.Earnings, entry)
			res.TotalEarnings += amount
		}
	}

	return res
}
