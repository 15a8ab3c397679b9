package models

// TrainRecord is one entry of the remote train listing
type TrainRecord struct {
	TrainNumber     string         `json:"train_number"`
	TrainName       string         `json:"train_name"`
	Source          string         `json:"source"`
	Destination     string         `json:"destination"`
	DepartureTime   string         `json:"departure_time"` // HH:MM, 24h
	ArrivalTime     string         `json:"arrival_time"`   // HH:MM, 24h
	Duration        string         `json:"duration"`
	DaysOfOperation []string       `json:"days_of_operation"`
	Price           map[string]int `json:"price"` // class code -> fare; empty means no seats
}

// HasClass reports whether the record sells the given class code.
func (t TrainRecord) HasClass(code string) bool {
	if t.Price == nil {
		return false
	}
	_, ok := t.Price[code]
	return ok
}

// RouteStop is a stop in an enriched train's route
type RouteStop struct {
	StationName   string `json:"station_name"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureTime string `json:"departure_time"`
}

// TrainDetail is a listing record enriched with its route and computed duration
type TrainDetail struct {
	TrainRecord
	Route []RouteStop `json:"route"`
}

// TrainListing is the envelope returned by the listing endpoint
type TrainListing struct {
	Data []TrainRecord `json:"data"`
}
