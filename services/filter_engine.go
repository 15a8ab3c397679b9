package services

import (
	"strconv"
	"strings"

	"train-booking/models"
)

// Departure time buckets, half-open hour ranges
var departureBuckets = map[string][2]int{
	"00:00 - 06:00": {0, 6},
	"06:00 - 12:00": {6, 12},
	"12:00 - 18:00": {12, 18},
	"18:00 - 24:00": {18, 24},
}

// filterStage keeps a record when it returns true
type filterStage func(models.TrainRecord) bool

// ApplyFilters narrows allTrains to the records matching params and selection.
// Stages run in a fixed order and each one passes everything when inactive.
// The input slice is never modified; the result keeps the input order.
func ApplyFilters(allTrains []models.TrainRecord, params models.SearchParams, selection models.FilterSelection) []models.TrainRecord {
	filtered := make([]models.TrainRecord, len(allTrains))
	copy(filtered, allTrains)

	for _, stage := range buildStages(params, selection) {
		if stage == nil {
			continue
		}
		filtered = keep(filtered, stage)
	}
	return filtered
}

func buildStages(params models.SearchParams, selection models.FilterSelection) []filterStage {
	return []filterStage{
		routeStage(params.From, params.To),
		explicitClassStage(params.TravelClass),
		classCheckboxStage(checked(selection.TravelClass)),
		trainTypeStage(checked(selection.TrainType)),
		departureStage(checked(selection.DepartureTime)),
	}
}

func keep(trains []models.TrainRecord, stage filterStage) []models.TrainRecord {
	out := make([]models.TrainRecord, 0, len(trains))
	for _, t := range trains {
		if stage(t) {
			out = append(out, t)
		}
	}
	return out
}

func routeStage(from, to string) filterStage {
	if from == "" || to == "" {
		return nil
	}
	from, to = strings.ToLower(from), strings.ToLower(to)
	return func(t models.TrainRecord) bool {
		return strings.Contains(strings.ToLower(t.Source), from) &&
			strings.Contains(strings.ToLower(t.Destination), to)
	}
}

func explicitClassStage(travelClass string) filterStage {
	if travelClass == "" || travelClass == models.AllClasses {
		return nil
	}
	return func(t models.TrainRecord) bool {
		return t.HasClass(travelClass)
	}
}

// Records without a price map are rejected here as well as by the explicit
// class stage, so they can be excluded twice over.
func classCheckboxStage(classes []string) filterStage {
	if len(classes) == 0 {
		return nil
	}
	return func(t models.TrainRecord) bool {
		for _, c := range classes {
			if t.HasClass(c) {
				return true
			}
		}
		return false
	}
}

func trainTypeStage(types []string) filterStage {
	if len(types) == 0 {
		return nil
	}
	lowered := make([]string, len(types))
	for i, tt := range types {
		lowered[i] = strings.ToLower(tt)
	}
	return func(t models.TrainRecord) bool {
		name := strings.ToLower(t.TrainName)
		for _, tt := range lowered {
			if strings.Contains(name, tt) {
				return true
			}
		}
		return false
	}
}

func departureStage(labels []string) filterStage {
	if len(labels) == 0 {
		return nil
	}
	return func(t models.TrainRecord) bool {
		hour := departureHour(t.DepartureTime)
		for _, label := range labels {
			bucket, ok := departureBuckets[label]
			if ok && hour >= bucket[0] && hour < bucket[1] {
				return true
			}
		}
		return false
	}
}

// departureHour returns the hour of an HH:MM string, or -1 if it does not parse.
func departureHour(hhmm string) int {
	h, _, _ := strings.Cut(hhmm, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return -1
	}
	return hour
}

func checked(category map[string]bool) []string {
	var out []string
	for key, on := range category {
		if on {
			out = append(out, key)
		}
	}
	return out
}

// DefaultFilterSelection returns every known checkbox, unchecked.
func DefaultFilterSelection() models.FilterSelection {
	return models.FilterSelection{
		TravelClass: map[string]bool{
			"1A": false, "2A": false, "3A": false, "SL": false, "2S": false, "CC": false,
		},
		TrainType: map[string]bool{
			"Rajdhani": false, "Shatabdi": false, "Vande Bharat": false,
		},
		DepartureTime: map[string]bool{
			"00:00 - 06:00": false,
			"06:00 - 12:00": false,
			"12:00 - 18:00": false,
			"18:00 - 24:00": false,
		},
	}
}

// ToggleFilter returns a copy of selection with one known checkbox flipped.
// Unknown categories and keys leave the copy unchanged.
func ToggleFilter(selection models.FilterSelection, category, value string) models.FilterSelection {
	next := CloneFilterSelection(selection)
	var target map[string]bool
	switch category {
	case models.FilterTravelClass:
		target = next.TravelClass
	case models.FilterTrainType:
		target = next.TrainType
	case models.FilterDepartureTime:
		target = next.DepartureTime
	}
	if current, ok := target[value]; ok {
		target[value] = !current
	}
	return next
}

// ClearFilters returns a copy of selection with every checkbox unchecked.
func ClearFilters(selection models.FilterSelection) models.FilterSelection {
	next := CloneFilterSelection(selection)
	for _, category := range []map[string]bool{next.TravelClass, next.TrainType, next.DepartureTime} {
		for key := range category {
			category[key] = false
		}
	}
	return next
}

// CloneFilterSelection returns a deep copy so callers can keep a value snapshot.
func CloneFilterSelection(selection models.FilterSelection) models.FilterSelection {
	return models.FilterSelection{
		TravelClass:   cloneFlags(selection.TravelClass),
		TrainType:     cloneFlags(selection.TrainType),
		DepartureTime: cloneFlags(selection.DepartureTime),
	}
}

func cloneFlags(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
