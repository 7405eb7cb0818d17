package txstats

import "github.com/shopspring/decimal"

// TotalRevenue sums the revenue of all records.
func TotalRevenue(records []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Revenue())
	}
	return total
}

// RevenueForCategory sums the revenue of records in the given category.
func RevenueForCategory(records []Transaction, category Category) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.Category == category {
			total = total.Add(r.Revenue())
		}
	}
	return total
}

// RevenueByCategory computes the revenue of every category present.
func RevenueByCategory(records []Transaction) map[Category]decimal.Decimal {
	totals := make(map[Category]decimal.Decimal)
	for _, r := range records {
		current, ok := totals[r.Category]
		if !ok {
			current = decimal.Zero
		}
		totals[r.Category] = current.Add(r.Revenue())
	}
	return totals
}
