package query

import (
	"math"

	"garment-orders/internal/models"
)

// Fallback labels shown on the summary cards when a line has no value, kept
// from the original back-office wording.
const (
	NoService = "Nessuno"
	NoSize    = "N/A"
)

// FinancialSummary is the payments-view money breakdown. totalAmount always
// equals paidAmount + remainingAmount exactly; sums are accumulated in
// integer cents to keep the partition drift-free.
type FinancialSummary struct {
	TotalAmount     float64 `json:"totalAmount"`
	PaidAmount      float64 `json:"paidAmount"`
	RemainingAmount float64 `json:"remainingAmount"`
}

func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func fromCents(c int64) float64 {
	return float64(c) / 100
}

// SummarizeFinances sums effective totals over an order set, partitioned by
// the paid flag.
func SummarizeFinances(orders []models.Order, normalized []Normalized) FinancialSummary {
	var total, paid int64
	for i, o := range orders {
		cents := toCents(normalized[i].EffectiveTotal)
		total += cents
		if o.Paid {
			paid += cents
		}
	}
	return FinancialSummary{
		TotalAmount:     fromCents(total),
		PaidAmount:      fromCents(paid),
		RemainingAmount: fromCents(total - paid),
	}
}

// SummarizeServices maps each observed service value to the total quantity
// across all lines. Legacy lines weigh in with quantity 1.
func SummarizeServices(normalized []Normalized) map[string]int {
	out := map[string]int{}
	for _, n := range normalized {
		for _, line := range n.Lines {
			label := line.Service
			if label == "" {
				label = NoService
			}
			out[label] += line.Quantity
		}
	}
	return out
}

// SummarizeSizes maps each observed size to the total quantity across all
// lines, same weighting rule as the service summary.
func SummarizeSizes(normalized []Normalized) map[string]int {
	out := map[string]int{}
	for _, n := range normalized {
		for _, line := range n.Lines {
			label := line.Size
			if label == "" {
				label = NoSize
			}
			out[label] += line.Quantity
		}
	}
	return out
}
