package models

type ActivityFilters struct {
	Categories  []string `json:"categories,omitempty"`
	PriceMin    *float64 `json:"price_min,omitempty"`
	PriceMax    *float64 `json:"price_max,omitempty"`
	MaxDuration *float64 `json:"max_duration_hours,omitempty"`
	MinRating   *float64 `json:"min_rating,omitempty"`
}

type ActivitySearchParams struct {
	Destination  string           `json:"destination"`
	StartDate    string           `json:"start_date"`
	EndDate      *string          `json:"end_date,omitempty"`
	Participants int              `json:"participants"`
	Filters      *ActivityFilters `json:"filters,omitempty"`
	SortBy       string           `json:"sort_by,omitempty"`
	SortOrder    string           `json:"sort_order,omitempty"`
}

func (p *ActivitySearchParams) Validate() error {
	if p.Destination == "" {
		return ErrMissingDestination
	}
	if p.StartDate == "" {
		return ErrMissingStartDate
	}
	if p.Participants <= 0 {
		p.Participants = 1
	}
	if p.SortBy == "" {
		p.SortBy = "price"
	}
	if p.SortOrder == "" {
		p.SortOrder = "asc"
	}
	return nil
}

type ActivityResult struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	DurationHours float64  `json:"duration_hours"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Popularity    int      `json:"popularity"`
	Schedule      []string `json:"schedule,omitempty"`
	MeetingPoint  string   `json:"meeting_point"`
	Location      Location `json:"location"`
	PricePerHead  Price    `json:"price_per_person"`
	TotalPrice    Price    `json:"total_price"`
	Source        string   `json:"source"`
}
