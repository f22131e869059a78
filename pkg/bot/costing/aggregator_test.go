package costing

import (
	"testing"

	"freedbot-be/pkg/bot/retrieval"
)

func TestAggregate(t *testing.T) {
	rates := DefaultRates()

	tests := []struct {
		name  string
		parts []retrieval.Part
		want  Summary
	}{
		{
			name:  "nil selection yields zeros",
			parts: nil,
			want:  Summary{},
		},
		{
			name:  "empty selection yields zeros",
			parts: []retrieval.Part{},
			want:  Summary{},
		},
		{
			name: "two parts",
			parts: []retrieval.Part{
				{Name: "Cold Air Intake", Price: retrieval.CostRange{Min: 100, Max: 200}},
				{Name: "Free Flow Muffler", Price: retrieval.CostRange{Min: 50, Max: 100}},
			},
			want: Summary{
				PartsMin:   150,
				PartsMax:   300,
				InstallMin: 30,
				InstallMax: 90,
				TotalMin:   180,
				TotalMax:   390,
			},
		},
		{
			name: "single part with zero-value price",
			parts: []retrieval.Part{
				{Name: "Sticker"},
			},
			want: Summary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.parts, rates)
			if got != tt.want {
				t.Errorf("Aggregate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := []retrieval.Part{
		{Price: retrieval.CostRange{Min: 1_000_000, Max: 2_500_000}},
		{Price: retrieval.CostRange{Min: 400_000, Max: 900_000}},
		{Price: retrieval.CostRange{Min: 7_000_000, Max: 12_000_000}},
	}
	b := []retrieval.Part{a[2], a[0], a[1]}

	if Aggregate(a, DefaultRates()) != Aggregate(b, DefaultRates()) {
		t.Error("summary depends on part order")
	}
}
