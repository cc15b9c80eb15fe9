package filter

import (
	"sort"
	"strings"

	"github.com/fauzanhilmi/travelmock/internal/models"
)

// Pure filtering and sorting over generated result sets. Applied after
// generation and before the envelope is built.

func Flights(flights []models.FlightResult, filters *models.FlightFilters, sortBy, sortOrder string) []models.FlightResult {
	result := flights
	if filters != nil {
		result = make([]models.FlightResult, 0, len(flights))
		for _, f := range flights {
			if matchesFlight(f, filters) {
				result = append(result, f)
			}
		}
	}
	return sortFlights(result, sortBy, sortOrder)
}

func matchesFlight(f models.FlightResult, filters *models.FlightFilters) bool {
	if filters.PriceMin != nil && f.Price.Amount < *filters.PriceMin {
		return false
	}
	if filters.PriceMax != nil && f.Price.Amount > *filters.PriceMax {
		return false
	}
	if filters.MaxStops != nil && len(f.Stops) > *filters.MaxStops {
		return false
	}
	if len(filters.Airlines) > 0 {
		found := false
		for _, code := range filters.Airlines {
			if strings.EqualFold(f.Airline.Code, code) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filters.MaxDuration != nil && f.DurationMinutes > *filters.MaxDuration {
		return false
	}
	return true
}

func sortFlights(flights []models.FlightResult, sortBy, sortOrder string) []models.FlightResult {
	ascending := strings.ToLower(sortOrder) != "desc"

	switch strings.ToLower(sortBy) {
	case "duration":
		sort.Slice(flights, func(i, j int) bool {
			if ascending {
				return flights[i].DurationMinutes < flights[j].DurationMinutes
			}
			return flights[i].DurationMinutes > flights[j].DurationMinutes
		})
	case "departure":
		sort.Slice(flights, func(i, j int) bool {
			if ascending {
				return flights[i].DepartureTime < flights[j].DepartureTime
			}
			return flights[i].DepartureTime > flights[j].DepartureTime
		})
	default: // price
		sort.Slice(flights, func(i, j int) bool {
			if ascending {
				return flights[i].Price.Amount < flights[j].Price.Amount
			}
			return flights[i].Price.Amount > flights[j].Price.Amount
		})
	}
	return flights
}

func Hotels(hotels []models.HotelResult, filters *models.HotelFilters, sortBy, sortOrder string) []models.HotelResult {
	result := hotels
	if filters != nil {
		result = make([]models.HotelResult, 0, len(hotels))
		for _, h := range hotels {
			if matchesHotel(h, filters) {
				result = append(result, h)
			}
		}
	}
	return sortHotels(result, sortBy, sortOrder)
}

func matchesHotel(h models.HotelResult, filters *models.HotelFilters) bool {
	if len(filters.Stars) > 0 {
		found := false
		for _, s := range filters.Stars {
			if h.Stars == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(filters.Amenities) > 0 && !intersects(h.Amenities, filters.Amenities) {
		return false
	}
	if len(filters.PropertyTypes) > 0 {
		found := false
		for _, pt := range filters.PropertyTypes {
			if strings.EqualFold(h.PropertyType, pt) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filters.PriceMin != nil && h.PricePerNight.Amount < *filters.PriceMin {
		return false
	}
	if filters.PriceMax != nil && h.PricePerNight.Amount > *filters.PriceMax {
		return false
	}
	if filters.MaxDistanceKm != nil && h.DistanceKm > *filters.MaxDistanceKm {
		return false
	}
	return true
}

func intersects(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

func sortHotels(hotels []models.HotelResult, sortBy, sortOrder string) []models.HotelResult {
	ascending := strings.ToLower(sortOrder) != "desc"

	switch strings.ToLower(sortBy) {
	case "rating":
		sort.Slice(hotels, func(i, j int) bool {
			if ascending {
				return hotels[i].Rating < hotels[j].Rating
			}
			return hotels[i].Rating > hotels[j].Rating
		})
	case "popularity":
		sort.Slice(hotels, func(i, j int) bool {
			if ascending {
				return hotels[i].ReviewCount < hotels[j].ReviewCount
			}
			return hotels[i].ReviewCount > hotels[j].ReviewCount
		})
	default: // price
		sort.Slice(hotels, func(i, j int) bool {
			if ascending {
				return hotels[i].PricePerNight.Amount < hotels[j].PricePerNight.Amount
			}
			return hotels[i].PricePerNight.Amount > hotels[j].PricePerNight.Amount
		})
	}
	return hotels
}

func Activities(activities []models.ActivityResult, filters *models.ActivityFilters, sortBy, sortOrder string) []models.ActivityResult {
	result := activities
	if filters != nil {
		result = make([]models.ActivityResult, 0, len(activities))
		for _, a := range activities {
			if matchesActivity(a, filters) {
				result = append(result, a)
			}
		}
	}
	return sortActivities(result, sortBy, sortOrder)
}

func matchesActivity(a models.ActivityResult, filters *models.ActivityFilters) bool {
	if len(filters.Categories) > 0 {
		found := false
		for _, cat := range filters.Categories {
			if strings.EqualFold(a.Category, cat) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filters.PriceMin != nil && a.PricePerHead.Amount < *filters.PriceMin {
		return false
	}
	if filters.PriceMax != nil && a.PricePerHead.Amount > *filters.PriceMax {
		return false
	}
	if filters.MaxDuration != nil && a.DurationHours > *filters.MaxDuration {
		return false
	}
	if filters.MinRating != nil && a.Rating < *filters.MinRating {
		return false
	}
	return true
}

func sortActivities(activities []models.ActivityResult, sortBy, sortOrder string) []models.ActivityResult {
	ascending := strings.ToLower(sortOrder) != "desc"

	switch strings.ToLower(sortBy) {
	case "rating":
		sort.Slice(activities, func(i, j int) bool {
			if ascending {
				return activities[i].Rating < activities[j].Rating
			}
			return activities[i].Rating > activities[j].Rating
		})
	case "popularity":
		sort.Slice(activities, func(i, j int) bool {
			if ascending {
				return activities[i].Popularity < activities[j].Popularity
			}
			return activities[i].Popularity > activities[j].Popularity
		})
	default: // price
		sort.Slice(activities, func(i, j int) bool {
			if ascending {
				return activities[i].PricePerHead.Amount < activities[j].PricePerHead.Amount
			}
			return activities[i].PricePerHead.Amount > activities[j].PricePerHead.Amount
		})
	}
	return activities
}
