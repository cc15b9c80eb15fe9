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

type ActivityService struct {
	sim      *simulator
	catalogs map[string]activityCatalog
	tax      taxonomySet
}

func NewActivityService(cfg *services.ConfigStore, opts ...Option) (*ActivityService, error) {
	catalogs, err := loadActivityCatalogs()
	if err != nil {
		return nil, err
	}
	tax, err := loadTaxonomies()
	if err != nil {
		return nil, err
	}
	return &ActivityService{
		sim:      newSimulator(cfg, opts...),
		catalogs: catalogs,
		tax:      tax,
	}, nil
}

func (s *ActivityService) Search(ctx context.Context, params models.ActivitySearchParams) models.Response[[]models.ActivityResult] {
	start := time.Now()

	if err := params.Validate(); err != nil {
		return models.Fail[[]models.ActivityResult](err.Error(), sinceMs(start))
	}

	s.sim.wait()
	if s.sim.injectFailure() {
		return models.Fail[[]models.ActivityResult]("activity provider temporarily unavailable", sinceMs(start))
	}

	r := s.sim.fork()
	cat, city := s.lookupCatalog(r, params.Destination)
	startDate := parseDate(params.StartDate, s.sim.now())

	results := make([]models.ActivityResult, 0, len(cat.Activities))
	for _, a := range cat.Activities {
		results = append(results, s.buildResult(r, cat.Currency, city, a, params, startDate))
	}

	results = filter.Activities(results, params.Filters, params.SortBy, params.SortOrder)
	return models.Ok(results, sinceMs(start))
}

func (s *ActivityService) GetDetails(ctx context.Context, id string) models.Response[models.ActivityResult] {
	start := time.Now()

	s.sim.wait()
	if s.sim.injectFailure() {
		return models.Fail[models.ActivityResult]("activity provider temporarily unavailable", sinceMs(start))
	}

	now := s.sim.now()
	params := models.ActivitySearchParams{Participants: 1}

	for city, cat := range s.catalogs {
		for _, a := range cat.Activities {
			if a.ID == id {
				r := s.sim.fork()
				return models.Ok(s.buildResult(r, cat.Currency, city, a, params, now.AddDate(0, 0, 30)), sinceMs(start))
			}
		}
	}

	r := rand.New(rand.NewSource(seedFromID(id)))
	a := s.synthesizeActivity(r, 1)
	a.ID = id
	return models.Ok(s.buildResult(r, "USD", "Unknown", a, params, now.AddDate(0, 0, 30)), sinceMs(start))
}

func (s *ActivityService) lookupCatalog(r *rand.Rand, destination string) (activityCatalog, string) {
	q := strings.ToLower(strings.TrimSpace(destination))
	if s.sim.realistic() {
		for city, cat := range s.catalogs {
			if strings.Contains(q, city) || strings.Contains(city, q) {
				return cat, strings.Title(city)
			}
		}
	}

	count := 5 + r.Intn(8)
	activities := make([]activityEntry, 0, count)
	for i := 0; i < count; i++ {
		activities = append(activities, s.synthesizeActivity(r, i+1))
	}
	return activityCatalog{Currency: "USD", Activities: activities}, strings.Title(q)
}

func (s *ActivityService) synthesizeActivity(r *rand.Rand, seq int) activityEntry {
	tpl := activityTemplate{Name: "City Discovery Tour", Category: "sightseeing", DurationHours: 2, BasePrice: 35, MeetingPoint: "Tourist office"}
	if len(s.tax.ActivityTemplates) > 0 {
		tpl = s.tax.ActivityTemplates[r.Intn(len(s.tax.ActivityTemplates))]
	}

	schedules := [][]string{
		{"09:00", "14:00"},
		{"10:00"},
		{"08:30", "11:30", "15:00"},
		{"18:00"},
	}

	return activityEntry{
		ID:            fmt.Sprintf("act-gen-%03d", seq),
		Name:          tpl.Name,
		Category:      tpl.Category,
		Description:   fmt.Sprintf("Locally guided %s experience.", tpl.Category),
		DurationHours: tpl.DurationHours,
		Rating:        math.Round((3.6+r.Float64()*1.3)*10) / 10,
		ReviewCount:   50 + r.Intn(6000),
		Popularity:    30 + r.Intn(70),
		BasePrice:     tpl.BasePrice,
		Schedule:      schedules[r.Intn(len(schedules))],
		MeetingPoint:  tpl.MeetingPoint,
	}
}

func (s *ActivityService) buildResult(r *rand.Rand, currency, city string, a activityEntry, params models.ActivitySearchParams, startDate time.Time) models.ActivityResult {
	perHead := s.pricePerHead(r, a, params, startDate)

	participants := params.Participants
	if participants < 1 {
		participants = 1
	}

	return models.ActivityResult{
		ID:            a.ID,
		Name:          a.Name,
		Category:      a.Category,
		Description:   a.Description,
		DurationHours: a.DurationHours,
		Rating:        a.Rating,
		ReviewCount:   a.ReviewCount,
		Popularity:    a.Popularity,
		Schedule:      a.Schedule,
		MeetingPoint:  a.MeetingPoint,
		Location:      models.Location{City: city},
		PricePerHead:  models.NewPrice(perHead, currency),
		TotalPrice:    models.NewPrice(perHead*float64(participants), currency),
		Source:        models.SourceAPI,
	}
}

// pricePerHead: category base scaled by duration, rating premium, group
// discount and date proximity, then the optional fluctuation.
func (s *ActivityService) pricePerHead(r *rand.Rand, a activityEntry, params models.ActivitySearchParams, startDate time.Time) float64 {
	price := a.BasePrice
	price *= 1 + a.DurationHours/20
	if a.Rating >= 4.5 {
		price *= 1.10
	}

	switch {
	case params.Participants >= 10:
		price *= 0.80
	case params.Participants >= 5:
		price *= 0.90
	}

	switch d := daysUntil(startDate, s.sim.now()); {
	case d < 3:
		price *= 1.20
	case d < 7:
		price *= 1.10
	}

	return math.Round(s.sim.fluctuate(r, price)*100) / 100
}

var _ services.ActivityService = (*ActivityService)(nil)
