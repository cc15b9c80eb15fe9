package mock

import (
	"encoding/json"

	"github.com/fauzanhilmi/travelmock/internal/models"
	"github.com/fauzanhilmi/travelmock/internal/services/data"
)

type airportSet struct {
	Airports []models.Location `json:"airports"`
}

type airlineInfo struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	PriceFactor float64  `json:"price_factor"`
	Aircraft    []string `json:"aircraft"`
}

type airlineSet struct {
	Airlines []airlineInfo `json:"airlines"`
}

type hotelEntry struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Stars            int      `json:"stars"`
	Rating           float64  `json:"rating"`
	ReviewCount      int      `json:"review_count"`
	PropertyType     string   `json:"property_type"`
	Address          string   `json:"address"`
	DistanceKm       float64  `json:"distance_km"`
	BasePrice        float64  `json:"base_price"`
	Amenities        []string `json:"amenities"`
	FreeCancellation bool     `json:"free_cancellation"`
}

type hotelCatalog struct {
	Currency string          `json:"currency"`
	Center   models.Location `json:"center"`
	Hotels   []hotelEntry    `json:"hotels"`
}

type hotelCatalogSet struct {
	Catalogs map[string]hotelCatalog `json:"catalogs"`
}

type activityEntry struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	DurationHours float64  `json:"duration_hours"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Popularity    int      `json:"popularity"`
	BasePrice     float64  `json:"base_price"`
	Schedule      []string `json:"schedule"`
	MeetingPoint  string   `json:"meeting_point"`
}

type activityCatalog struct {
	Currency   string          `json:"currency"`
	Activities []activityEntry `json:"activities"`
}

type activityCatalogSet struct {
	Catalogs map[string]activityCatalog `json:"catalogs"`
}

type activityTemplate struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	DurationHours float64 `json:"duration_hours"`
	BasePrice     float64 `json:"base_price"`
	MeetingPoint  string  `json:"meeting_point"`
}

type taxonomySet struct {
	Amenities      []string          `json:"amenities"`
	PropertyTypes  []string          `json:"property_types"`
	RoomTypes      []models.RoomType `json:"room_types"`
	HotelNameParts struct {
		Prefixes []string `json:"prefixes"`
		Suffixes []string `json:"suffixes"`
	} `json:"hotel_name_parts"`
	ActivityTemplates []activityTemplate `json:"activity_templates"`
}

func loadAirports() ([]models.Location, error) {
	var set airportSet
	if err := json.Unmarshal(data.Airports, &set); err != nil {
		return nil, err
	}
	return set.Airports, nil
}

func loadAirlines() ([]airlineInfo, error) {
	var set airlineSet
	if err := json.Unmarshal(data.Airlines, &set); err != nil {
		return nil, err
	}
	return set.Airlines, nil
}

func loadHotelCatalogs() (map[string]hotelCatalog, error) {
	var set hotelCatalogSet
	if err := json.Unmarshal(data.Hotels, &set); err != nil {
		return nil, err
	}
	return set.Catalogs, nil
}

func loadActivityCatalogs() (map[string]activityCatalog, error) {
	var set activityCatalogSet
	if err := json.Unmarshal(data.Activities, &set); err != nil {
		return nil, err
	}
	return set.Catalogs, nil
}

func loadTaxonomies() (taxonomySet, error) {
	var set taxonomySet
	err := json.Unmarshal(data.Taxonomies, &set)
	return set, err
}
