package models

// AllClasses is the travel class sentinel meaning "no class constraint"
const AllClasses = "All Classes"

// Filter categories understood by services.ToggleFilter
const (
	FilterTravelClass   = "travelClass"
	FilterTrainType     = "trainType"
	FilterDepartureTime = "departureTime"
)

// SearchParams is what the user typed into the search form
type SearchParams struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Date        string `json:"date"`        // display only
	TravelClass string `json:"travelClass"` // class code or AllClasses
	Quota       string `json:"quota"`       // display only
}

// FilterSelection holds the checkbox state of the results sidebar
type FilterSelection struct {
	TravelClass   map[string]bool `json:"travelClass"`
	TrainType     map[string]bool `json:"trainType"`
	DepartureTime map[string]bool `json:"departureTime"`
}

// SearchRequest represents a train search query
type SearchRequest struct {
	Params  SearchParams     `json:"params"`
	Filters *FilterSelection `json:"filters"`
}

// SearchResponse represents the filtered listing
type SearchResponse struct {
	Count  int           `json:"count"`
	Trains []TrainRecord `json:"trains"`
}

// ToggleFilterRequest flips one checkbox of a selection
type ToggleFilterRequest struct {
	Filters  FilterSelection `json:"filters"`
	Category string          `json:"category" binding:"required"`
	Value    string          `json:"value" binding:"required"`
}
