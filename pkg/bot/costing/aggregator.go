// Package costing turns a selected part list into a total cost summary,
// including the installation fee band charged by workshops.
package costing

import "freedbot-be/pkg/bot/retrieval"

// Rates holds the installation fee coefficients applied to the summed part
// price bounds.
type Rates struct {
	InstallMinRate float64
	InstallMaxRate float64
}

// DefaultRates mirrors the common 20-30% installation markup quoted by
// modification workshops.
func DefaultRates() Rates {
	return Rates{InstallMinRate: 0.20, InstallMaxRate: 0.30}
}

// Summary is the aggregated cost breakdown for a part selection.
type Summary struct {
	PartsMin   int64
	PartsMax   int64
	InstallMin int64
	InstallMax int64
	TotalMin   int64
	TotalMax   int64
}

// Aggregate sums the part price bounds and derives installation and total
// figures. Pure and order independent. A nil or empty selection yields zeros.
func Aggregate(parts []retrieval.Part, rates Rates) Summary {
	var s Summary
	for _, p := range parts {
		s.PartsMin += p.Price.Min
		s.PartsMax += p.Price.Max
	}
	s.InstallMin = int64(float64(s.PartsMin) * rates.InstallMinRate)
	s.InstallMax = int64(float64(s.PartsMax) * rates.InstallMaxRate)
	s.TotalMin = s.PartsMin + s.InstallMin
	s.TotalMax = s.PartsMax + s.InstallMax
	return s
}
