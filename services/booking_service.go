package services

import (
	"context"
	"fmt"
	"time"

	"train-booking/domain"
	"train-booking/logger"
	"train-booking/metrics"
	"train-booking/models"
)

// TrainLookup finds the listing entry a booking is priced from
type TrainLookup interface {
	Record(ctx context.Context, trainNumber string) (*models.TrainRecord, error)
}

// BookingService confirms, cancels and looks up bookings
type BookingService struct {
	Store  BookingStore
	Trains TrainLookup
	Events EventPublisher
	Now    func() time.Time
}

func NewBookingService(store BookingStore, trains TrainLookup, events EventPublisher) *BookingService {
	if events == nil {
		events = NoopPublisher{}
	}
	return &BookingService{Store: store, Trains: trains, Events: events, Now: time.Now}
}

// Create validates the submitted form, prices it from the listing and stores a confirmed booking
func (s *BookingService) Create(ctx context.Context, userID string, req models.BookingRequest) (*models.Booking, error) {
	if req.TrainDetails.TrainNumber == "" {
		return nil, domain.ValidationError{Field: "trainDetails.trainNumber", Msg: "is required"}
	}
	record, err := s.Trains.Record(ctx, req.TrainDetails.TrainNumber)
	if err != nil {
		return nil, err
	}

	draft := draftFromRequest(req, *record)
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	details := draft.TrainDetails
	details.TravelClass = draft.SelectedClass

	booking := &models.Booking{
		UserID:         userID,
		TrainDetails:   details,
		Passengers:     draft.Passengers,
		ContactInfo:    draft.ContactInfo,
		PaymentSummary: draft.Fare(),
		Status:         models.BookingConfirmed,
		CreatedAt:      s.Now().UTC(),
	}

	if err := s.Store.Insert(ctx, booking); err != nil {
		metrics.Default.ErrorsCount.WithLabelValues("create_booking").Inc()
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	log := logger.GetLogger()
	log.Infow("Booking created",
		"booking_id", booking.ID, "user_id", userID,
		"train", details.TrainNumber, "class", details.TravelClass,
		"passengers", len(booking.Passengers), "total", booking.PaymentSummary.Total)

	metrics.Default.BookingsCreated.Inc()
	metrics.Default.BookingFare.Observe(float64(booking.PaymentSummary.Total))

	if err := s.Events.BookingCreated(ctx, booking); err != nil {
		metrics.Default.ErrorsCount.WithLabelValues("publish_booking").Inc()
		log.Errorw("Failed to publish booking event", "booking_id", booking.ID, "error", err)
	}

	return booking, nil
}

// ListForUser returns a user's bookings, newest first
func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.Store.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	return bookings, nil
}

// Cancel marks one of the user's confirmed bookings as cancelled
func (s *BookingService) Cancel(ctx context.Context, userID, id string) (*models.Booking, error) {
	booking, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingCancelled {
		return nil, domain.ConflictError{Resource: "booking", Msg: "already cancelled"}
	}

	if err := s.Store.UpdateStatus(ctx, booking.ID, models.BookingCancelled); err != nil {
		metrics.Default.ErrorsCount.WithLabelValues("cancel_booking").Inc()
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	booking.Status = models.BookingCancelled

	log := logger.GetLogger()
	log.Infow("Booking cancelled", "booking_id", booking.ID, "user_id", userID)
	metrics.Default.BookingsCancelled.Inc()

	if err := s.Events.BookingCancelled(ctx, booking); err != nil {
		metrics.Default.ErrorsCount.WithLabelValues("publish_booking").Inc()
		log.Errorw("Failed to publish booking event", "booking_id", booking.ID, "error", err)
	}

	return booking, nil
}

// Get returns one of the user's bookings. Bookings of other users are reported as missing.
func (s *BookingService) Get(ctx context.Context, userID, id string) (*models.Booking, error) {
	booking, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, domain.NotFoundError{Resource: "booking"}
	}
	return booking, nil
}

// draftFromRequest keeps the traveller's date, quota and class choice and takes
// everything else about the train, prices included, from the listing record.
func draftFromRequest(req models.BookingRequest, record models.TrainRecord) *BookingDraft {
	details := req.TrainDetails
	details.TrainName = record.TrainName
	details.From = record.Source
	details.To = record.Destination
	details.DepartureTime = record.DepartureTime
	details.ArrivalTime = record.ArrivalTime
	details.Duration = EnrichWithRoute(record).Duration
	if req.SelectedClass != "" {
		details.TravelClass = req.SelectedClass
	}
	draft := NewBookingDraft(details, record.Price, req.ContactInfo.Email)
	draft.Passengers = append([]models.PassengerEntry(nil), req.Passengers...)
	draft.ContactInfo = req.ContactInfo
	return draft
}

var bookings *BookingService

// InitBookingService sets the service used by the package level booking functions
func InitBookingService(s *BookingService) {
	bookings = s
}

// CreateBooking creates a new confirmed booking for a user
func CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (*models.Booking, error) {
	return bookings.Create(ctx, userID, req)
}

// GetUserBookings lists a user's bookings
func GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return bookings.ListForUser(ctx, userID)
}

// CancelBooking cancels one of a user's bookings
func CancelBooking(ctx context.Context, userID, id string) (*models.Booking, error) {
	return bookings.Cancel(ctx, userID, id)
}

// GetBooking retrieves one of a user's bookings
func GetBooking(ctx context.Context, userID, id string) (*models.Booking, error) {
	return bookings.Get(ctx, userID, id)
}
