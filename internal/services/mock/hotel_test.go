package mock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fauzanhilmi/travelmock/internal/models"
	"github.com/fauzanhilmi/travelmock/internal/services"
)

func newHotelService(t *testing.T, cfg services.MockConfig, opts ...Option) *HotelService {
	t.Helper()
	svc, err := NewHotelService(services.NewConfigStore(cfg), opts...)
	require.NoError(t, err)
	return svc
}

func searchHotels(t *testing.T, svc *HotelService, params models.HotelSearchParams) []models.HotelResult {
	t.Helper()
	resp := svc.Search(context.Background(), params)
	require.True(t, resp.Success, resp.Error)
	require.NotNil(t, resp.Data)
	return *resp.Data
}

func findHotel(t *testing.T, results []models.HotelResult, name string) models.HotelResult {
	t.Helper()
	for _, h := range results {
		if h.Name == name {
			return h
		}
	}
	t.Fatalf("hotel %q not in results", name)
	return models.HotelResult{}
}

func TestSearchKnownCityUsesCuratedCatalog(t *testing.T) {
	svc := newHotelService(t, instantConfig(), seededOpts(10)...)

	results := searchHotels(t, svc, models.HotelSearchParams{
		Destination: "New York",
		CheckIn:     "2025-10-06",
		CheckOut:    "2025-10-09",
	})

	require.Len(t, results, 8)
	plaza := findHotel(t, results, "The Plaza Hotel")
	assert.Equal(t, 5, plaza.Stars)
	assert.Equal(t, "htl-nyc-001", plaza.ID)
	assert.Equal(t, "USD", plaza.PricePerNight.Currency)
	assert.Equal(t, models.SourceAPI, plaza.Source)
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	svc := newHotelService(t, instantConfig(), seededOpts(11)...)

	results := searchHotels(t, svc, models.HotelSearchParams{
		Destination: "new york city",
		CheckIn:     "2025-10-06",
		CheckOut:    "2025-10-09",
	})
	assert.Len(t, results, 8)
}

func TestSearchUnknownCitySynthesizesCatalog(t *testing.T) {
	svc := newHotelService(t, instantConfig(), seededOpts(12)...)

	results := searchHotels(t, svc, models.HotelSearchParams{
		Destination: "Ulaanbaatar",
		CheckIn:     "2025-10-06",
		CheckOut:    "2025-10-09",
	})

	assert.GreaterOrEqual(t, len(results), 5)
	assert.LessOrEqual(t, len(results), 12)
	for _, h := range results {
		assert.NotEmpty(t, h.Name)
		assert.Positive(t, h.PricePerNight.Amount)
	}
}

func TestRealisticDataOffSkipsCuratedCatalogs(t *testing.T) {
	cfg := instantConfig()
	cfg.EnableRealisticData = false
	svc := newHotelService(t, cfg, seededOpts(13)...)

	results := searchHotels(t, svc, models.HotelSearchParams{
		Destination: "New York",
		CheckIn:     "2025-10-06",
		CheckOut:    "2025-10-09",
	})

	for _, h := range results {
		assert.Regexp(t, `^htl-gen-`, h.ID)
	}
}

// Deterministic scenario: fluctuation off, fixed clock, a month of lead
// time, Monday check-in. The Plaza (5 stars, 0.8 km out) must carry its
// star multiplier and center premium over a 3-star suburban property.
func TestPlazaOutpricesSuburbanThreeStar(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	svc := newHotelService(t, instantConfig(), WithRand(newSeededRand(13)), fixedClock(now))

	results := searchHotels(t, svc, models.HotelSearchParams{
		Destination: "New York",
		CheckIn:     "2025-09-01",
		CheckOut:    "2025-09-04",
		Guests:      models.GuestCounts{Rooms: 1},
	})

	plaza := findHotel(t, results, "The Plaza Hotel")
	suburban := findHotel(t, results, "Hampton Inn Brooklyn Downtown")

	// 420 * (0.6 + 0.4*5) * 1.25, no stay/last-minute/weekend factors.
	assert.Equal(t, 1365.0, plaza.PricePerNight.Amount)
	// 139 * (0.6 + 0.4*3) * 0.85.
	assert.Equal(t, 213.0, suburban.PricePerNight.Amount)
	assert.Greater(t, plaza.PricePerNight.Amount, suburban.PricePerNight.Amount)

	assert.Equal(t, 3, plaza.Nights)
	assert.InDelta(t, plaza.PricePerNight.Amount*3, plaza.Breakdown.BasePrice, 0.001)
}

func TestPricingSurcharges(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	svc := newHotelService(t, instantConfig(), WithRand(newSeededRand(14)), fixedClock(now))

	base := searchHotels(t, svc, models.HotelSearchParams{
		Destination: "New York", CheckIn: "2025-09-01", CheckOut: "2025-09-04",
	})
	lastMinute := searchHotels(t, svc, models.HotelSearchParams{
		Destination: "New York", CheckIn: "2025-08-04", CheckOut: "2025-08-07",
	})
	weekend := searchHotels(t, svc, models.HotelSearchParams{
		Destination: "New York", CheckIn: "2025-09-05", CheckOut: "2025-09-08",
	})
	longStay := searchHotels(t, svc, models.HotelSearchParams{
		Destination: "New York", CheckIn: "2025-09-01", CheckOut: "2025-09-11",
	})

	name := "The Plaza Hotel"
	baseRate := findHotel(t, base, name).PricePerNight.Amount
	assert.Greater(t, findHotel(t, lastMinute, name).PricePerNight.Amount, baseRate)
	assert.Greater(t, findHotel(t, weekend, name).PricePerNight.Amount, baseRate)
	assert.Less(t, findHotel(t, longStay, name).PricePerNight.Amount, baseRate)
}

func TestBreakdownAlwaysConsistent(t *testing.T) {
	svc := newHotelService(t, instantConfig(), seededOpts(15)...)

	for _, dest := range []string{"New York", "Paris", "Tokyo", "Nowhereville"} {
		results := searchHotels(t, svc, models.HotelSearchParams{
			Destination: dest,
			CheckIn:     "2025-10-03",
			CheckOut:    "2025-10-10",
			Guests:      models.GuestCounts{Rooms: 2},
		})
		for _, h := range results {
			b := h.Breakdown
			assert.InDelta(t, b.BasePrice+b.Taxes+b.Fees, b.Total, 0.001, "%s/%s", dest, h.Name)
			assert.InDelta(t, b.Total, h.TotalPrice.Amount, 0.001)
		}
	}
}

func TestInvertedDateRangeClampsToOneNight(t *testing.T) {
	svc := newHotelService(t, instantConfig(), seededOpts(16)...)

	results := searchHotels(t, svc, models.HotelSearchParams{
		Destination: "Paris",
		CheckIn:     "2025-10-09",
		CheckOut:    "2025-10-06",
	})
	for _, h := range results {
		assert.Equal(t, 1, h.Nights)
	}
}

func TestHotelFilters(t *testing.T) {
	svc := newHotelService(t, instantConfig(), seededOpts(17)...)

	fiveStar := searchHotels(t, svc, models.HotelSearchParams{
		Destination: "New York", CheckIn: "2025-10-06", CheckOut: "2025-10-09",
		Filters: &models.HotelFilters{Stars: []int{5}},
	})
	require.NotEmpty(t, fiveStar)
	for _, h := range fiveStar {
		assert.Equal(t, 5, h.Stars)
	}

	maxDist := 2.0
	central := searchHotels(t, svc, models.HotelSearchParams{
		Destination: "New York", CheckIn: "2025-10-06", CheckOut: "2025-10-09",
		Filters: &models.HotelFilters{MaxDistanceKm: &maxDist},
	})
	require.NotEmpty(t, central)
	for _, h := range central {
		assert.LessOrEqual(t, h.DistanceKm, maxDist)
	}

	spa := searchHotels(t, svc, models.HotelSearchParams{
		Destination: "New York", CheckIn: "2025-10-06", CheckOut: "2025-10-09",
		Filters: &models.HotelFilters{Amenities: []string{"spa"}},
	})
	require.NotEmpty(t, spa)
	for _, h := range spa {
		assert.Contains(t, h.Amenities, "spa")
	}
}

func TestHotelSorting(t *testing.T) {
	svc := newHotelService(t, instantConfig(), seededOpts(18)...)

	byPrice := searchHotels(t, svc, models.HotelSearchParams{
		Destination: "New York", CheckIn: "2025-10-06", CheckOut: "2025-10-09",
	})
	for i := 1; i < len(byPrice); i++ {
		assert.LessOrEqual(t, byPrice[i-1].PricePerNight.Amount, byPrice[i].PricePerNight.Amount)
	}

	byRating := searchHotels(t, svc, models.HotelSearchParams{
		Destination: "New York", CheckIn: "2025-10-06", CheckOut: "2025-10-09",
		SortBy: "rating", SortOrder: "desc",
	})
	for i := 1; i < len(byRating); i++ {
		assert.GreaterOrEqual(t, byRating[i-1].Rating, byRating[i].Rating)
	}
}

func TestGetDetailsKnownID(t *testing.T) {
	svc := newHotelService(t, instantConfig(), seededOpts(19)...)

	resp := svc.GetDetails(context.Background(), "htl-par-001")
	require.True(t, resp.Success)
	assert.Equal(t, "Le Meurice", resp.Data.Name)
	assert.Equal(t, "EUR", resp.Data.PricePerNight.Currency)
}

func TestGetDetailsUnknownIDSynthesizes(t *testing.T) {
	svc := newHotelService(t, instantConfig(), seededOpts(20)...)

	first := svc.GetDetails(context.Background(), "htl-zzz-042")
	second := svc.GetDetails(context.Background(), "htl-zzz-042")
	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.Equal(t, "htl-zzz-042", first.Data.ID)
	assert.Equal(t, first.Data.Name, second.Data.Name)
	assert.Equal(t, first.Data.Stars, second.Data.Stars)
}

func TestAvailabilityRateFarOut(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newHotelService(t, instantConfig(), WithRand(newSeededRand(21)), fixedClock(now))

	// Monday check-in, 61 days out, 3 nights: base 85% rate applies.
	available := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		resp := svc.CheckAvailability(context.Background(), "htl-nyc-001", "2025-03-03", "2025-03-06")
		require.True(t, resp.Success)
		if *resp.Data {
			available++
		}
	}
	rate := float64(available) / trials
	assert.InDelta(t, 0.85, rate, 0.05)
}

func TestAvailabilityRateDropsForLastMinute(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newHotelService(t, instantConfig(), WithRand(newSeededRand(22)), fixedClock(now))

	// Monday check-in five days out: 85% - 25% = 60%.
	available := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		resp := svc.CheckAvailability(context.Background(), "htl-nyc-001", "2025-01-06", "2025-01-09")
		require.True(t, resp.Success)
		if *resp.Data {
			available++
		}
	}
	rate := float64(available) / trials
	assert.InDelta(t, 0.60, rate, 0.05)
	assert.Less(t, rate, 0.75)
}
