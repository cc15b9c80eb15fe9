package mock

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"

	"github.com/fauzanhilmi/travelmock/internal/filter"
	"github.com/fauzanhilmi/travelmock/internal/models"
	"github.com/fauzanhilmi/travelmock/internal/services"
)

type FlightService struct {
	sim      *simulator
	airports []models.Location
	airlines []airlineInfo
}

func NewFlightService(cfg *services.ConfigStore, opts ...Option) (*FlightService, error) {
	airports, err := loadAirports()
	if err != nil {
		return nil, err
	}
	airlines, err := loadAirlines()
	if err != nil {
		return nil, err
	}
	return &FlightService{
		sim:      newSimulator(cfg, opts...),
		airports: airports,
		airlines: airlines,
	}, nil
}

func (s *FlightService) Search(ctx context.Context, params models.FlightSearchParams) models.Response[[]models.FlightResult] {
	start := time.Now()

	if err := params.Validate(); err != nil {
		return models.Fail[[]models.FlightResult](err.Error(), sinceMs(start))
	}

	s.sim.wait()
	if s.sim.injectFailure() {
		return models.Fail[[]models.FlightResult]("flight provider temporarily unavailable", sinceMs(start))
	}

	r := s.sim.fork()
	origin := s.lookupAirport(r, params.Origin)
	dest := s.lookupAirport(r, params.Destination)

	count := 5 + r.Intn(8)
	results := make([]models.FlightResult, 0, count)
	for i := 0; i < count; i++ {
		results = append(results, s.generate(r, origin, dest, params))
	}

	results = filter.Flights(results, params.Filters, params.SortBy, params.SortOrder)
	return models.Ok(results, sinceMs(start))
}

func (s *FlightService) GetDetails(ctx context.Context, id string) models.Response[models.FlightResult] {
	start := time.Now()

	s.sim.wait()
	if s.sim.injectFailure() {
		return models.Fail[models.FlightResult]("flight provider temporarily unavailable", sinceMs(start))
	}

	// Results are generated fresh per call and never cached, so details
	// are re-synthesized deterministically from the id.
	r := rand.New(rand.NewSource(seedFromID(id)))
	origin := s.airports[r.Intn(len(s.airports))]
	dest := s.airports[r.Intn(len(s.airports))]
	for dest.Code == origin.Code {
		dest = s.airports[r.Intn(len(s.airports))]
	}

	params := models.FlightSearchParams{
		Origin:        origin.Code,
		Destination:   dest.Code,
		DepartureDate: s.sim.now().AddDate(0, 0, 14+r.Intn(45)).Format(dateLayout),
		Passengers:    1,
		CabinClass:    "economy",
	}
	result := s.generate(r, origin, dest, params)
	result.ID = id
	return models.Ok(result, sinceMs(start))
}

// lookupAirport matches code, name or city case-insensitively; unknown
// queries synthesize a plausible airport so searches never dead-end.
func (s *FlightService) lookupAirport(r *rand.Rand, query string) models.Location {
	q := strings.ToLower(strings.TrimSpace(query))
	if s.sim.realistic() {
		for _, a := range s.airports {
			if strings.EqualFold(a.Code, q) ||
				strings.Contains(strings.ToLower(a.City), q) ||
				strings.Contains(strings.ToLower(a.Name), q) {
				return a
			}
		}
	}

	code := strings.ToUpper(q + "XXX")[:3]
	return models.Location{
		Code:      code,
		Name:      strings.Title(q) + " International Airport",
		City:      strings.Title(q),
		Country:   "Unknown",
		Latitude:  -60 + r.Float64()*120,
		Longitude: -180 + r.Float64()*360,
	}
}

func (s *FlightService) generate(r *rand.Rand, origin, dest models.Location, params models.FlightSearchParams) models.FlightResult {
	airline := s.airlines[r.Intn(len(s.airlines))]
	aircraft := airline.Aircraft[r.Intn(len(airline.Aircraft))]

	distKm := origin.DistanceKm(dest)
	if distKm < 100 {
		distKm = 400 + r.Float64()*2000
	}

	depDate := parseDate(params.DepartureDate, s.sim.now())
	depTime := depDate.Add(time.Duration(5+r.Intn(17))*time.Hour + time.Duration(5*r.Intn(12))*time.Minute)

	durationMin := int(distKm/820*60) + 45
	stops := s.generateStops(r, origin, dest, distKm)
	for _, st := range stops {
		durationMin += st.DurationMinutes
	}
	arrTime := depTime.Add(time.Duration(durationMin) * time.Minute)

	price := s.price(r, airline, distKm, len(stops), depDate, depTime, params)

	return models.FlightResult{
		ID:              fmt.Sprintf("flt-%s%s-%s", strings.ToLower(origin.Code), strings.ToLower(dest.Code), strings.ToLower(randToken(r, upperLetters+digits, 6))),
		Airline:         models.Airline{Code: airline.Code, Name: airline.Name},
		FlightNumber:    fmt.Sprintf("%s%d", airline.Code, 100+r.Intn(900)),
		Origin:          origin,
		Destination:     dest,
		DepartureTime:   depTime.Format("2006-01-02T15:04"),
		ArrivalTime:     arrTime.Format("2006-01-02T15:04"),
		DurationMinutes: durationMin,
		Stops:           stops,
		CabinClass:      params.CabinClass,
		Aircraft:        aircraft,
		AvailableSeats:  3 + r.Intn(40),
		Amenities:       cabinAmenities(params.CabinClass),
		Price:           models.NewPrice(price, "USD"),
		Source:          models.SourceAPI,
	}
}

func (s *FlightService) generateStops(r *rand.Rand, origin, dest models.Location, distKm float64) []models.FlightStop {
	var n int
	draw := r.Float64()
	if distKm > 3000 {
		switch {
		case draw < 0.40:
			n = 0
		case draw < 0.85:
			n = 1
		default:
			n = 2
		}
	} else if draw > 0.75 {
		n = 1
	}

	stops := make([]models.FlightStop, 0, n)
	for i := 0; i < n; i++ {
		hub := s.airports[r.Intn(len(s.airports))]
		if hub.Code == origin.Code || hub.Code == dest.Code {
			continue
		}
		stops = append(stops, models.FlightStop{
			Airport:         hub.Code,
			City:            hub.City,
			DurationMinutes: 60 + r.Intn(90),
		})
	}
	return stops
}

// price computes a per-passenger fare: distance base, cabin and carrier
// multipliers, date-proximity and weekend surcharges, connection discount,
// then the optional fluctuation.
func (s *FlightService) price(r *rand.Rand, airline airlineInfo, distKm float64, stops int, depDate, depTime time.Time, params models.FlightSearchParams) float64 {
	base := 45 + distKm*0.11
	base *= cabinFactor(params.CabinClass)
	base *= airline.PriceFactor

	switch d := daysUntil(depDate, s.sim.now()); {
	case d <= 7:
		base *= 1.35
	case d <= 14:
		base *= 1.18
	case d <= 30:
		base *= 1.05
	}

	if isWeekendStart(depDate) {
		base *= 1.10
	}
	if h := depTime.Hour(); h < 6 || h > 21 {
		base *= 0.90
	}
	for i := 0; i < stops; i++ {
		base *= 0.92
	}

	return s.sim.fluctuate(r, base)
}

func cabinFactor(class string) float64 {
	switch strings.ToLower(class) {
	case "premium_economy":
		return 1.45
	case "business":
		return 2.8
	case "first":
		return 4.5
	default:
		return 1.0
	}
}

func cabinAmenities(class string) []string {
	switch strings.ToLower(class) {
	case "business", "first":
		return []string{"wifi", "power_outlet", "entertainment", "lie_flat_seat", "lounge_access", "meal"}
	case "premium_economy":
		return []string{"wifi", "power_outlet", "entertainment", "extra_legroom", "meal"}
	default:
		return []string{"wifi", "entertainment"}
	}
}

func seedFromID(id string) int64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return int64(h.Sum64())
}

var _ services.FlightService = (*FlightService)(nil)
