package mock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fauzanhilmi/travelmock/internal/models"
	"github.com/fauzanhilmi/travelmock/internal/services"
)

func newActivityService(t *testing.T, cfg services.MockConfig, opts ...Option) *ActivityService {
	t.Helper()
	svc, err := NewActivityService(services.NewConfigStore(cfg), opts...)
	require.NoError(t, err)
	return svc
}

func searchActivities(t *testing.T, svc *ActivityService, params models.ActivitySearchParams) []models.ActivityResult {
	t.Helper()
	resp := svc.Search(context.Background(), params)
	require.True(t, resp.Success, resp.Error)
	require.NotNil(t, resp.Data)
	return *resp.Data
}

func TestActivitySearchKnownCity(t *testing.T) {
	svc := newActivityService(t, instantConfig(), seededOpts(40)...)

	results := searchActivities(t, svc, models.ActivitySearchParams{
		Destination: "Tokyo",
		StartDate:   "2025-11-01",
	})

	require.Len(t, results, 4)
	names := make([]string, 0, len(results))
	for _, a := range results {
		names = append(names, a.Name)
		assert.Equal(t, "JPY", a.PricePerHead.Currency)
		assert.Equal(t, "Tokyo", a.Location.City)
		assert.Equal(t, models.SourceAPI, a.Source)
	}
	assert.Contains(t, names, "TeamLab Planets Admission")
}

func TestActivitySearchUnknownCitySynthesizes(t *testing.T) {
	svc := newActivityService(t, instantConfig(), seededOpts(41)...)

	results := searchActivities(t, svc, models.ActivitySearchParams{
		Destination: "Reykjavik",
		StartDate:   "2025-11-01",
	})

	assert.GreaterOrEqual(t, len(results), 5)
	assert.LessOrEqual(t, len(results), 12)
	for _, a := range results {
		assert.NotEmpty(t, a.Category)
		assert.Positive(t, a.PricePerHead.Amount)
	}
}

func TestActivityGroupDiscount(t *testing.T) {
	svc := newActivityService(t, instantConfig(), seededOpts(42)...)

	solo := searchActivities(t, svc, models.ActivitySearchParams{
		Destination: "Paris", StartDate: "2025-11-01", Participants: 1,
	})
	group := searchActivities(t, svc, models.ActivitySearchParams{
		Destination: "Paris", StartDate: "2025-11-01", Participants: 10,
	})

	soloPrice := findActivity(t, solo, "Louvre Skip-the-Line Tour").PricePerHead.Amount
	groupPrice := findActivity(t, group, "Louvre Skip-the-Line Tour").PricePerHead.Amount
	assert.InDelta(t, soloPrice*0.8, groupPrice, 0.01)
}

func TestActivityTotalScalesWithParticipants(t *testing.T) {
	svc := newActivityService(t, instantConfig(), seededOpts(43)...)

	results := searchActivities(t, svc, models.ActivitySearchParams{
		Destination: "Paris", StartDate: "2025-11-01", Participants: 3,
	})
	for _, a := range results {
		assert.InDelta(t, a.PricePerHead.Amount*3, a.TotalPrice.Amount, 0.01)
	}
}

func TestActivityFilters(t *testing.T) {
	svc := newActivityService(t, instantConfig(), seededOpts(44)...)

	food := searchActivities(t, svc, models.ActivitySearchParams{
		Destination: "New York", StartDate: "2025-11-01",
		Filters: &models.ActivityFilters{Categories: []string{"food"}},
	})
	require.NotEmpty(t, food)
	for _, a := range food {
		assert.Equal(t, "food", a.Category)
	}

	minRating := 4.6
	topRated := searchActivities(t, svc, models.ActivitySearchParams{
		Destination: "New York", StartDate: "2025-11-01",
		Filters: &models.ActivityFilters{MinRating: &minRating},
	})
	for _, a := range topRated {
		assert.GreaterOrEqual(t, a.Rating, minRating)
	}
}

func TestActivityGetDetailsKnownID(t *testing.T) {
	svc := newActivityService(t, instantConfig(), seededOpts(45)...)

	resp := svc.GetDetails(context.Background(), "act-nyc-002")
	require.True(t, resp.Success)
	assert.Equal(t, "Broadway Show Evening Ticket", resp.Data.Name)
	assert.Equal(t, "entertainment", resp.Data.Category)
}

func findActivity(t *testing.T, results []models.ActivityResult, name string) models.ActivityResult {
	t.Helper()
	for _, a := range results {
		if a.Name == name {
			return a
		}
	}
	t.Fatalf("activity %q not in results", name)
	return models.ActivityResult{}
}
