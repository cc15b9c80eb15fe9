package models

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin        ValidationError = "origin is required"
	ErrMissingDestination   ValidationError = "destination is required"
	ErrMissingDepartureDate ValidationError = "departure_date is required"
	ErrMissingCheckIn       ValidationError = "check_in is required"
	ErrMissingCheckOut      ValidationError = "check_out is required"
	ErrMissingStartDate     ValidationError = "start_date is required"
)

type FlightFilters struct {
	PriceMin    *float64 `json:"price_min,omitempty"`
	PriceMax    *float64 `json:"price_max,omitempty"`
	MaxStops    *int     `json:"max_stops,omitempty"`
	Airlines    []string `json:"airlines,omitempty"`
	MaxDuration *int     `json:"max_duration,omitempty"`
}

type FlightSearchParams struct {
	Origin        string         `json:"origin"`
	Destination   string         `json:"destination"`
	DepartureDate string         `json:"departure_date"`
	ReturnDate    *string        `json:"return_date,omitempty"`
	Passengers    int            `json:"passengers"`
	CabinClass    string         `json:"cabin_class"`
	Filters       *FlightFilters `json:"filters,omitempty"`
	SortBy        string         `json:"sort_by,omitempty"`
	SortOrder     string         `json:"sort_order,omitempty"`
}

func (p *FlightSearchParams) Validate() error {
	if p.Origin == "" {
		return ErrMissingOrigin
	}
	if p.Destination == "" {
		return ErrMissingDestination
	}
	if p.DepartureDate == "" {
		return ErrMissingDepartureDate
	}
	if p.Passengers <= 0 {
		p.Passengers = 1
	}
	if p.CabinClass == "" {
		p.CabinClass = "economy"
	}
	if p.SortBy == "" {
		p.SortBy = "price"
	}
	if p.SortOrder == "" {
		p.SortOrder = "asc"
	}
	return nil
}

type Airline struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type FlightStop struct {
	Airport         string `json:"airport"`
	City            string `json:"city"`
	DurationMinutes int    `json:"duration_minutes"`
}

type FlightResult struct {
	ID              string       `json:"id"`
	Airline         Airline      `json:"airline"`
	FlightNumber    string       `json:"flight_number"`
	Origin          Location     `json:"origin"`
	Destination     Location     `json:"destination"`
	DepartureTime   string       `json:"departure_time"`
	ArrivalTime     string       `json:"arrival_time"`
	DurationMinutes int          `json:"duration_minutes"`
	Stops           []FlightStop `json:"stops,omitempty"`
	CabinClass      string       `json:"cabin_class"`
	Aircraft        string       `json:"aircraft"`
	AvailableSeats  int          `json:"available_seats"`
	Amenities       []string     `json:"amenities,omitempty"`
	Price           Price        `json:"price"`
	Source          string       `json:"source"`
}
