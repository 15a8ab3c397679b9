package services

import (
	"math"

	"train-booking/models"
)

const (
	// ExecutiveClass is the only class with the higher catering charge
	ExecutiveClass = "Executive Class"

	gstRate           = 0.05
	convenienceFee    = 30
	cateringStandard  = 120
	cateringExecutive = 150
)

// CalculateFare itemises the fare of a booking. Incomplete input (no passengers,
// no class, or no price for the class) yields the zero breakdown.
func CalculateFare(passengers []models.PassengerEntry, selectedClass string, classPrice map[string]int) models.FareBreakdown {
	if len(passengers) == 0 || selectedClass == "" || len(classPrice) == 0 {
		return models.FareBreakdown{}
	}
	price, ok := classPrice[selectedClass]
	if !ok {
		return models.FareBreakdown{}
	}

	count := len(passengers)
	baseFare := price * count
	// math.Round on the float product matches the browser's Math.round for non-negative fares
	gst := int(math.Round(float64(baseFare) * gstRate))

	perHead := cateringStandard
	if selectedClass == ExecutiveClass {
		perHead = cateringExecutive
	}
	catering := perHead * count

	return models.FareBreakdown{
		BaseFare:       baseFare,
		GST:            gst,
		ConvenienceFee: convenienceFee,
		CateringCharge: catering,
		Total:          baseFare + gst + convenienceFee + catering,
	}
}
