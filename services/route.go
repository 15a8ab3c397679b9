package services

import (
	"fmt"
	"strconv"
	"strings"

	"train-booking/models"
)

const notApplicable = "N/A"

// EnrichWithRoute adds a two stop route and a computed duration to a listing record.
func EnrichWithRoute(train models.TrainRecord) models.TrainDetail {
	detail := models.TrainDetail{
		TrainRecord: train,
		Route: []models.RouteStop{
			{
				StationName:   train.Source,
				ArrivalTime:   notApplicable,
				DepartureTime: train.DepartureTime,
			},
			{
				StationName:   train.Destination,
				ArrivalTime:   train.ArrivalTime,
				DepartureTime: notApplicable,
			},
		},
	}
	if d, ok := CalculateDuration(train.DepartureTime, train.ArrivalTime); ok {
		detail.Duration = d
	}
	return detail
}

// CalculateDuration formats the time between two HH:MM clock times as "Xh Ym".
// An arrival earlier than the departure is taken to be on the next day.
func CalculateDuration(departure, arrival string) (string, bool) {
	dep, ok := minutesOfDay(departure)
	if !ok {
		return "", false
	}
	arr, ok := minutesOfDay(arrival)
	if !ok {
		return "", false
	}
	if arr < dep {
		arr += 24 * 60
	}
	total := arr - dep
	return fmt.Sprintf("%dh %dm", total/60, total%60), true
}

func minutesOfDay(hhmm string) (int, bool) {
	h, m, found := strings.Cut(strings.TrimSpace(hhmm), ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return hour*60 + minute, true
}
