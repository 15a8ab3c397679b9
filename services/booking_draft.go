package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"train-booking/domain"
	"train-booking/models"
)

// BookingDraft is the booking form state for a single attempt
type BookingDraft struct {
	TrainDetails     models.TrainDetails
	Passengers       []models.PassengerEntry
	ContactInfo      models.ContactInfo
	SelectedClass    string
	AvailableClasses []string
	ClassPrice       map[string]int
}

// NewBookingDraft starts a booking with one blank passenger. The selected class
// is the train's requested class, else the first available class.
func NewBookingDraft(details models.TrainDetails, classPrice map[string]int, email string) *BookingDraft {
	prices := make(map[string]int, len(classPrice))
	available := make([]string, 0, len(classPrice))
	for code, price := range classPrice {
		prices[code] = price
		available = append(available, code)
	}
	sort.Strings(available)

	selected := details.TravelClass
	if selected == "" && len(available) > 0 {
		selected = available[0]
	}

	return &BookingDraft{
		TrainDetails:     details,
		Passengers:       []models.PassengerEntry{models.NewPassengerEntry()},
		ContactInfo:      models.ContactInfo{Email: email},
		SelectedClass:    selected,
		AvailableClasses: available,
		ClassPrice:       prices,
	}
}

func (d *BookingDraft) AddPassenger() {
	d.Passengers = append(d.Passengers, models.NewPassengerEntry())
}

// RemovePassenger drops the passenger at index. The last remaining passenger
// and out of range indexes are left alone.
func (d *BookingDraft) RemovePassenger(index int) {
	if len(d.Passengers) <= 1 || index < 0 || index >= len(d.Passengers) {
		return
	}
	d.Passengers = append(d.Passengers[:index:index], d.Passengers[index+1:]...)
}

// UpdatePassenger sets one form field of a passenger. Unknown fields and
// indexes are ignored.
func (d *BookingDraft) UpdatePassenger(index int, field, value string) {
	if index < 0 || index >= len(d.Passengers) {
		return
	}
	p := &d.Passengers[index]
	switch field {
	case "name":
		p.Name = value
	case "age":
		age, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			age = 0
		}
		p.Age = age
	case "gender":
		p.Gender = models.Gender(value)
	case "berth":
		p.Berth = models.Berth(value)
	}
}

func (d *BookingDraft) UpdateContactInfo(field, value string) {
	switch field {
	case "email":
		d.ContactInfo.Email = value
	case "phone":
		d.ContactInfo.Phone = value
	}
}

func (d *BookingDraft) SelectClass(code string) {
	d.SelectedClass = code
}

// Fare is the current payment summary of the draft
func (d *BookingDraft) Fare() models.FareBreakdown {
	return CalculateFare(d.Passengers, d.SelectedClass, d.ClassPrice)
}

// Validate checks the draft is complete enough to be booked
func (d *BookingDraft) Validate() error {
	if len(d.Passengers) == 0 {
		return domain.ValidationError{Field: "passengers", Msg: "at least one passenger is required"}
	}
	for i, p := range d.Passengers {
		if strings.TrimSpace(p.Name) == "" {
			return domain.ValidationError{Field: fmt.Sprintf("passengers[%d].name", i), Msg: "is required"}
		}
		if p.Age <= 0 {
			return domain.ValidationError{Field: fmt.Sprintf("passengers[%d].age", i), Msg: "is required"}
		}
		if !p.Gender.Valid() {
			return domain.ValidationError{Field: fmt.Sprintf("passengers[%d].gender", i), Msg: "unknown gender " + string(p.Gender)}
		}
		if !p.Berth.Valid() {
			return domain.ValidationError{Field: fmt.Sprintf("passengers[%d].berth", i), Msg: "unknown berth " + string(p.Berth)}
		}
	}
	if strings.TrimSpace(d.ContactInfo.Email) == "" {
		return domain.ValidationError{Field: "contactInfo.email", Msg: "is required"}
	}
	if strings.TrimSpace(d.ContactInfo.Phone) == "" {
		return domain.ValidationError{Field: "contactInfo.phone", Msg: "is required"}
	}
	if _, ok := d.ClassPrice[d.SelectedClass]; !ok {
		return domain.ValidationError{Field: "selectedClass", Msg: fmt.Sprintf("class %q is not sold on this train", d.SelectedClass)}
	}
	return nil
}
