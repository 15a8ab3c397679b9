package services

import (
	"context"
	"testing"
	"time"

	"train-booking/models"
)

func TestNewBookingEvent(t *testing.T) {
	created := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	ev := newBookingEvent(&models.Booking{
		ID:             "bk-1",
		UserID:         "7",
		TrainDetails:   models.TrainDetails{TrainNumber: "12309", TravelClass: "3A", Date: "2026-11-02"},
		Passengers:     []models.PassengerEntry{{}, {}},
		ContactInfo:    models.ContactInfo{Email: "asha@example.in"},
		PaymentSummary: models.FareBreakdown{Total: 2790},
		Status:         models.BookingConfirmed,
		CreatedAt:      created,
	})

	want := bookingEvent{
		BookingID: "bk-1", UserID: "7", TrainNumber: "12309", TravelClass: "3A",
		Date: "2026-11-02", Status: models.BookingConfirmed, Passengers: 2, Total: 2790, Email: "asha@example.in", CreatedAt: created,
	}
	if ev != want {
		t.Fatalf("event = %+v\nwant %+v", ev, want)
	}
}

func TestNewBookingServiceDefaultsToNoop(t *testing.T) {
	svc := NewBookingService(nil, nil, nil)
	if _, ok := svc.Events.(NoopPublisher); !ok {
		t.Fatalf("expected NoopPublisher, got %T", svc.Events)
	}
	if err := svc.Events.BookingCreated(context.Background(), &models.Booking{}); err != nil {
		t.Fatalf("noop publish: %v", err)
	}
	if err := svc.Events.BookingCancelled(context.Background(), &models.Booking{}); err != nil {
		t.Fatalf("noop publish: %v", err)
	}
}
