package services

import (
	"bytes"
	"testing"
	"time"

	"train-booking/models"
)

func TestRenderTicket(t *testing.T) {
	booking := models.Booking{
		ID:     "6530f1c2a9",
		UserID: "7",
		TrainDetails: models.TrainDetails{
			TrainNumber: "12309", TrainName: "Rajdhani Express",
			From: "NEW DELHI", To: "PATNA JN", Date: "2026-11-02",
			DepartureTime: "17:10", ArrivalTime: "05:30", Duration: "12h 20m",
			TravelClass: "3A", Quota: "General",
		},
		Passengers: []models.PassengerEntry{
			{Name: "Asha", Age: 29, Gender: models.GenderFemale, Berth: models.BerthLower},
		},
		ContactInfo:    models.ContactInfo{Email: "asha@example.in", Phone: "9876543210"},
		PaymentSummary: CalculateFare([]models.PassengerEntry{{}}, "3A", map[string]int{"3A": 1200}),
		Status:         models.BookingConfirmed,
		CreatedAt:      time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC),
	}

	pdf, err := RenderTicket(booking)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
	if len(pdf) < 500 {
		t.Fatalf("suspiciously small PDF: %d bytes", len(pdf))
	}
}
