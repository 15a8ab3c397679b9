package services

import (
	"testing"

	"train-booking/models"
)

func passengers(n int) []models.PassengerEntry {
	out := make([]models.PassengerEntry, n)
	for i := range out {
		out[i] = models.NewPassengerEntry()
	}
	return out
}

func TestCalculateFare(t *testing.T) {
	tests := []struct {
		name       string
		passengers int
		class      string
		prices     map[string]int
		want       models.FareBreakdown
	}{
		{
			name:       "two passengers in 3A",
			passengers: 2,
			class:      "3A",
			prices:     map[string]int{"3A": 1200},
			want:       models.FareBreakdown{BaseFare: 2400, GST: 120, ConvenienceFee: 30, CateringCharge: 240, Total: 2790},
		},
		{
			name:       "executive class catering",
			passengers: 1,
			class:      ExecutiveClass,
			prices:     map[string]int{ExecutiveClass: 2000},
			want:       models.FareBreakdown{BaseFare: 2000, GST: 100, ConvenienceFee: 30, CateringCharge: 150, Total: 2280},
		},
		{
			name:       "gst half rounds up",
			passengers: 1,
			class:      "SL",
			prices:     map[string]int{"SL": 410},
			want:       models.FareBreakdown{BaseFare: 410, GST: 21, ConvenienceFee: 30, CateringCharge: 120, Total: 581},
		},
		{
			name:       "gst below half rounds down",
			passengers: 3,
			class:      "SL",
			prices:     map[string]int{"SL": 333},
			want:       models.FareBreakdown{BaseFare: 999, GST: 50, ConvenienceFee: 30, CateringCharge: 360, Total: 1439},
		},
		{
			name:       "no passengers",
			passengers: 0,
			class:      "3A",
			prices:     map[string]int{"3A": 1200},
		},
		{
			name:       "no class selected",
			passengers: 2,
			class:      "",
			prices:     map[string]int{"3A": 1200},
		},
		{
			name:       "class not sold",
			passengers: 2,
			class:      "1A",
			prices:     map[string]int{"3A": 1200},
		},
		{
			name:       "empty price table",
			passengers: 2,
			class:      "3A",
			prices:     map[string]int{},
		},
		{
			name:       "nil price table",
			passengers: 1,
			class:      "3A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateFare(passengers(tt.passengers), tt.class, tt.prices)
			if got != tt.want {
				t.Fatalf("got %+v want %+v", got, tt.want)
			}
		})
	}
}

func TestCalculateFareIsIdempotent(t *testing.T) {
	ps := passengers(4)
	prices := map[string]int{"2A": 1777}
	first := CalculateFare(ps, "2A", prices)
	second := CalculateFare(ps, "2A", prices)
	if first != second {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
	if first.Total != first.BaseFare+first.GST+first.ConvenienceFee+first.CateringCharge {
		t.Fatalf("total is not the sum of its parts: %+v", first)
	}
}
