package services

import (
	"testing"

	"train-booking/models"
)

func TestCalculateDuration(t *testing.T) {
	tests := []struct {
		dep, arr string
		want     string
		ok       bool
	}{
		{"06:00", "14:40", "8h 40m", true},
		{"17:10", "05:30", "12h 20m", true},
		{"23:59", "00:01", "0h 2m", true},
		{"10:00", "10:00", "0h 0m", true},
		{"1000", "12:00", "", false},
		{"10:xx", "12:00", "", false},
	}
	for _, tt := range tests {
		got, ok := CalculateDuration(tt.dep, tt.arr)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CalculateDuration(%s, %s) = %q, %v; want %q, %v", tt.dep, tt.arr, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEnrichWithRoute(t *testing.T) {
	train := models.TrainRecord{
		TrainNumber: "12309", Source: "NEW DELHI", Destination: "PATNA JN",
		DepartureTime: "17:10", ArrivalTime: "05:30", Duration: "stale",
	}
	detail := EnrichWithRoute(train)

	if len(detail.Route) != 2 {
		t.Fatalf("expected two stops, got %d", len(detail.Route))
	}
	first, last := detail.Route[0], detail.Route[1]
	if first.StationName != "NEW DELHI" || first.ArrivalTime != "N/A" || first.DepartureTime != "17:10" {
		t.Fatalf("unexpected first stop %+v", first)
	}
	if last.StationName != "PATNA JN" || last.ArrivalTime != "05:30" || last.DepartureTime != "N/A" {
		t.Fatalf("unexpected last stop %+v", last)
	}
	if detail.Duration != "12h 20m" {
		t.Fatalf("duration = %q", detail.Duration)
	}
	if train.Duration != "stale" {
		t.Fatalf("input record was modified")
	}
}
