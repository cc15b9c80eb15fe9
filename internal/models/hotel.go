package models

type GuestCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Rooms    int `json:"rooms"`
}

type HotelFilters struct {
	Stars         []int    `json:"stars,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	PropertyTypes []string `json:"property_types,omitempty"`
	PriceMin      *float64 `json:"price_min,omitempty"`
	PriceMax      *float64 `json:"price_max,omitempty"`
	MaxDistanceKm *float64 `json:"max_distance_km,omitempty"`
}

type HotelSearchParams struct {
	Destination string        `json:"destination"`
	CheckIn     string        `json:"check_in"`
	CheckOut    string        `json:"check_out"`
	Guests      GuestCounts   `json:"guests"`
	Filters     *HotelFilters `json:"filters,omitempty"`
	SortBy      string        `json:"sort_by,omitempty"`
	SortOrder   string        `json:"sort_order,omitempty"`
}

func (p *HotelSearchParams) Validate() error {
	if p.Destination == "" {
		return ErrMissingDestination
	}
	if p.CheckIn == "" {
		return ErrMissingCheckIn
	}
	if p.CheckOut == "" {
		return ErrMissingCheckOut
	}
	if p.Guests.Adults <= 0 {
		p.Guests.Adults = 2
	}
	if p.Guests.Rooms <= 0 {
		p.Guests.Rooms = 1
	}
	if p.SortBy == "" {
		p.SortBy = "price"
	}
	if p.SortOrder == "" {
		p.SortOrder = "asc"
	}
	return nil
}

type RoomType struct {
	Name        string  `json:"name"`
	MaxGuests   int     `json:"max_guests"`
	PriceFactor float64 `json:"price_factor"`
}

type HotelResult struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Stars            int            `json:"stars"`
	Rating           float64        `json:"rating"`
	ReviewCount      int            `json:"review_count"`
	PropertyType     string         `json:"property_type"`
	Address          string         `json:"address"`
	Location         Location       `json:"location"`
	DistanceKm       float64        `json:"distance_km"`
	Amenities        []string       `json:"amenities,omitempty"`
	RoomTypes        []RoomType     `json:"room_types,omitempty"`
	Nights           int            `json:"nights"`
	PricePerNight    Price          `json:"price_per_night"`
	TotalPrice       Price          `json:"total_price"`
	Breakdown        PriceBreakdown `json:"breakdown"`
	FreeCancellation bool           `json:"free_cancellation"`
	Source           string         `json:"source"`
}
