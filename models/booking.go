package models

import "time"

// Gender of a passenger
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Valid reports whether g is one of the known genders
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Berth is a passenger's berth preference
type Berth string

const (
	BerthNoPreference Berth = "No Preference"
	BerthLower        Berth = "Lower"
	BerthMiddle       Berth = "Middle"
	BerthUpper        Berth = "Upper"
	BerthSideLower    Berth = "Side Lower"
	BerthSideUpper    Berth = "Side Upper"
)

// Valid reports whether b is one of the known berth preferences
func (b Berth) Valid() bool {
	switch b {
	case BerthNoPreference, BerthLower, BerthMiddle, BerthUpper, BerthSideLower, BerthSideUpper:
		return true
	}
	return false
}

// PassengerEntry is one row of the booking form
type PassengerEntry struct {
	Name   string `json:"name" bson:"name"`
	Age    int    `json:"age" bson:"age"` // 0 means not filled in
	Gender Gender `json:"gender" bson:"gender"`
	Berth  Berth  `json:"berth" bson:"berth"`
}

// NewPassengerEntry returns the blank row the form starts with
func NewPassengerEntry() PassengerEntry {
	return PassengerEntry{Gender: GenderMale, Berth: BerthNoPreference}
}

// ContactInfo is where the ticket is sent
type ContactInfo struct {
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
}

// TrainDetails is the train summary carried through a booking
type TrainDetails struct {
	TrainNumber   string `json:"trainNumber" bson:"trainNumber"`
	TrainName     string `json:"trainName" bson:"trainName"`
	From          string `json:"from" bson:"from"`
	To            string `json:"to" bson:"to"`
	Date          string `json:"date" bson:"date"`
	DepartureTime string `json:"departureTime" bson:"departureTime"`
	ArrivalTime   string `json:"arrivalTime" bson:"arrivalTime"`
	TravelClass   string `json:"travelClass" bson:"travelClass"`
	Quota         string `json:"quota" bson:"quota"`
	Duration      string `json:"duration" bson:"duration"`
}

// FareBreakdown is the itemised payment summary of a booking
type FareBreakdown struct {
	BaseFare       int `json:"baseFare" bson:"baseFare"`
	GST            int `json:"gst" bson:"gst"`
	ConvenienceFee int `json:"convenienceFee" bson:"convenienceFee"`
	CateringCharge int `json:"cateringCharge" bson:"cateringCharge"`
	Total          int `json:"total" bson:"total"`
}

// Booking statuses
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking is the persisted booking document
type Booking struct {
	ID             string           `json:"id" bson:"_id,omitempty"`
	UserID         string           `json:"userId" bson:"userId"`
	TrainDetails   TrainDetails     `json:"trainDetails" bson:"trainDetails"`
	Passengers     []PassengerEntry `json:"passengers" bson:"passengers"`
	ContactInfo    ContactInfo      `json:"contactInfo" bson:"contactInfo"`
	PaymentSummary FareBreakdown    `json:"paymentSummary" bson:"paymentSummary"`
	Status         string           `json:"status" bson:"status"`
	CreatedAt      time.Time        `json:"createdAt" bson:"createdAt"`
}

// BookingRequest represents a booking creation request. Prices are taken
// from the train listing, never from the client.
type BookingRequest struct {
	TrainDetails  TrainDetails     `json:"trainDetails" binding:"required"`
	SelectedClass string           `json:"selectedClass"`
	Passengers    []PassengerEntry `json:"passengers" binding:"required,min=1"`
	ContactInfo   ContactInfo      `json:"contactInfo"`
}

// FareRequest asks for a fare breakdown without booking
type FareRequest struct {
	Passengers    []PassengerEntry `json:"passengers"`
	SelectedClass string           `json:"selectedClass"`
	ClassPrice    map[string]int   `json:"classPrice"`
}

// BookingResponse represents a booking creation response
type BookingResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Booking *Booking `json:"booking,omitempty"`
}
