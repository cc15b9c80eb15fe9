package mock

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/fauzanhilmi/travelmock/internal/filter"
	"github.com/fauzanhilmi/travelmock/internal/models"
	"github.com/fauzanhilmi/travelmock/internal/services"
)

type HotelService struct {
	sim      *simulator
	catalogs map[string]hotelCatalog
	tax      taxonomySet
}

func NewHotelService(cfg *services.ConfigStore, opts ...Option) (*HotelService, error) {
	catalogs, err := loadHotelCatalogs()
	if err != nil {
		return nil, err
	}
	tax, err := loadTaxonomies()
	if err != nil {
		return nil, err
	}
	return &HotelService{
		sim:      newSimulator(cfg, opts...),
		catalogs: catalogs,
		tax:      tax,
	}, nil
}

func (s *HotelService) Search(ctx context.Context, params models.HotelSearchParams) models.Response[[]models.HotelResult] {
	start := time.Now()

	if err := params.Validate(); err != nil {
		return models.Fail[[]models.HotelResult](err.Error(), sinceMs(start))
	}

	s.sim.wait()
	if s.sim.injectFailure() {
		return models.Fail[[]models.HotelResult]("hotel provider temporarily unavailable", sinceMs(start))
	}

	r := s.sim.fork()
	cat := s.lookupCatalog(r, params.Destination)

	now := s.sim.now()
	checkIn := parseDate(params.CheckIn, now)
	checkOut := parseDate(params.CheckOut, now)
	nights := nightsBetween(checkIn, checkOut)

	results := make([]models.HotelResult, 0, len(cat.Hotels))
	for _, h := range cat.Hotels {
		results = append(results, s.buildResult(r, cat, h, params, checkIn, nights))
	}

	results = filter.Hotels(results, params.Filters, params.SortBy, params.SortOrder)
	return models.Ok(results, sinceMs(start))
}

func (s *HotelService) GetDetails(ctx context.Context, id string) models.Response[models.HotelResult] {
	start := time.Now()

	s.sim.wait()
	if s.sim.injectFailure() {
		return models.Fail[models.HotelResult]("hotel provider temporarily unavailable", sinceMs(start))
	}

	now := s.sim.now()
	checkIn := now.AddDate(0, 0, 30)
	params := models.HotelSearchParams{Guests: models.GuestCounts{Adults: 2, Rooms: 1}}

	for _, cat := range s.catalogs {
		for _, h := range cat.Hotels {
			if h.ID == id {
				r := s.sim.fork()
				return models.Ok(s.buildResult(r, cat, h, params, checkIn, 1), sinceMs(start))
			}
		}
	}

	// Unknown ids are re-synthesized deterministically, mirroring search
	// results for destinations outside the curated catalogs.
	r := rand.New(rand.NewSource(seedFromID(id)))
	cat := hotelCatalog{Currency: "USD", Center: models.Location{City: "Unknown"}}
	h := s.synthesizeHotel(r, 1)
	h.ID = id
	return models.Ok(s.buildResult(r, cat, h, params, checkIn, 1), sinceMs(start))
}

// CheckAvailability samples a heuristic availability rate: base 85%,
// reduced for near-term check-ins, long stays and weekend arrivals.
func (s *HotelService) CheckAvailability(ctx context.Context, id, checkIn, checkOut string) models.Response[bool] {
	start := time.Now()

	s.sim.wait()
	if s.sim.injectFailure() {
		return models.Fail[bool]("hotel provider temporarily unavailable", sinceMs(start))
	}

	now := s.sim.now()
	in := parseDate(checkIn, now)
	out := parseDate(checkOut, now)
	nights := nightsBetween(in, out)

	rate := 0.85
	switch d := daysUntil(in, now); {
	case d < 7:
		rate -= 0.25
	case d < 14:
		rate -= 0.10
	}
	if nights > 7 {
		rate -= 0.10
	}
	if isWeekendStart(in) {
		rate -= 0.05
	}
	if rate < 0.05 {
		rate = 0.05
	}

	available := s.sim.float64() < rate
	return models.Ok(available, sinceMs(start))
}

// lookupCatalog matches known cities by case-insensitive substring in
// either direction; unknown destinations get a synthesized catalog.
func (s *HotelService) lookupCatalog(r *rand.Rand, destination string) hotelCatalog {
	q := strings.ToLower(strings.TrimSpace(destination))
	if s.sim.realistic() {
		for city, cat := range s.catalogs {
			if strings.Contains(q, city) || strings.Contains(city, q) {
				return cat
			}
		}
	}

	count := 5 + r.Intn(8)
	hotels := make([]hotelEntry, 0, count)
	for i := 0; i < count; i++ {
		hotels = append(hotels, s.synthesizeHotel(r, i+1))
	}
	return hotelCatalog{
		Currency: "USD",
		Center:   models.Location{Name: "City Center", City: strings.Title(q)},
		Hotels:   hotels,
	}
}

func (s *HotelService) synthesizeHotel(r *rand.Rand, seq int) hotelEntry {
	prefixes := s.tax.HotelNameParts.Prefixes
	suffixes := s.tax.HotelNameParts.Suffixes
	name := "City Hotel"
	if len(prefixes) > 0 && len(suffixes) > 0 {
		name = prefixes[r.Intn(len(prefixes))] + " " + suffixes[r.Intn(len(suffixes))]
	}

	stars := 2 + r.Intn(4)
	propertyType := "hotel"
	if len(s.tax.PropertyTypes) > 0 {
		propertyType = s.tax.PropertyTypes[r.Intn(len(s.tax.PropertyTypes))]
	}

	amenityCount := 2 + r.Intn(5)
	amenities := make([]string, 0, amenityCount)
	for _, idx := range r.Perm(len(s.tax.Amenities))[:min(amenityCount, len(s.tax.Amenities))] {
		amenities = append(amenities, s.tax.Amenities[idx])
	}

	return hotelEntry{
		ID:               fmt.Sprintf("htl-gen-%03d", seq),
		Name:             name,
		Stars:            stars,
		Rating:           math.Round((3.4+r.Float64()*1.5)*10) / 10,
		ReviewCount:      200 + r.Intn(9000),
		PropertyType:     propertyType,
		Address:          fmt.Sprintf("%d Main Street", 1+r.Intn(400)),
		DistanceKm:       math.Round((0.3+r.Float64()*14.5)*10) / 10,
		BasePrice:        float64(60 + r.Intn(220)),
		Amenities:        amenities,
		FreeCancellation: r.Float64() < 0.6,
	}
}

func (s *HotelService) buildResult(r *rand.Rand, cat hotelCatalog, h hotelEntry, params models.HotelSearchParams, checkIn time.Time, nights int) models.HotelResult {
	perNight := s.nightlyRate(r, h, params, checkIn, nights)

	rooms := params.Guests.Rooms
	if rooms < 1 {
		rooms = 1
	}
	stayBase := perNight * float64(nights) * float64(rooms)
	breakdown := models.NewPriceBreakdown(stayBase)

	roomTypes := s.tax.RoomTypes
	if len(roomTypes) > 3 {
		roomTypes = roomTypes[:3]
	}

	return models.HotelResult{
		ID:               h.ID,
		Name:             h.Name,
		Stars:            h.Stars,
		Rating:           h.Rating,
		ReviewCount:      h.ReviewCount,
		PropertyType:     h.PropertyType,
		Address:          h.Address,
		Location:         cat.Center,
		DistanceKm:       h.DistanceKm,
		Amenities:        h.Amenities,
		RoomTypes:        roomTypes,
		Nights:           nights,
		PricePerNight:    models.NewPrice(perNight, cat.Currency),
		TotalPrice:       models.NewPrice(breakdown.Total, cat.Currency),
		Breakdown:        breakdown,
		FreeCancellation: h.FreeCancellation,
		Source:           models.SourceAPI,
	}
}

// nightlyRate composes the pricing multipliers: star quality, location
// premium, stay-length discount, last-minute surcharge, weekend check-in,
// multi-room discount, then the optional fluctuation. Rounded to the
// nearest currency unit.
func (s *HotelService) nightlyRate(r *rand.Rand, h hotelEntry, params models.HotelSearchParams, checkIn time.Time, nights int) float64 {
	rate := h.BasePrice
	rate *= 0.6 + 0.4*float64(h.Stars)

	switch {
	case h.DistanceKm < 2:
		rate *= 1.25
	case h.DistanceKm > 10:
		rate *= 0.85
	}

	switch {
	case nights > 14:
		rate *= 0.85
	case nights > 7:
		rate *= 0.90
	}

	switch d := daysUntil(checkIn, s.sim.now()); {
	case d < 3:
		rate *= 1.30
	case d < 7:
		rate *= 1.20
	case d < 14:
		rate *= 1.10
	}

	if isWeekendStart(checkIn) {
		rate *= 1.15
	}
	if params.Guests.Rooms >= 3 {
		rate *= 0.95
	}

	return math.Round(s.sim.fluctuate(r, rate))
}

var _ services.HotelService = (*HotelService)(nil)
