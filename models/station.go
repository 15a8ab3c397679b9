package models

// Station is a station name seen in the listing snapshot, used for autocomplete
type Station struct {
	Name string `json:"name"`
}
