package cache

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fauzanhilmi/travelmock/internal/models"
)

func TestKeyIsStableForEqualParams(t *testing.T) {
	a := models.HotelSearchParams{Destination: "Paris", CheckIn: "2027-06-01", CheckOut: "2027-06-05"}
	b := models.HotelSearchParams{Destination: "Paris", CheckIn: "2027-06-01", CheckOut: "2027-06-05"}

	assert.Equal(t, Key("hotels", a), Key("hotels", b))
}

func TestKeyVariesWithParamsAndPrefix(t *testing.T) {
	a := models.HotelSearchParams{Destination: "Paris", CheckIn: "2027-06-01", CheckOut: "2027-06-05"}
	b := a
	b.Destination = "London"

	assert.NotEqual(t, Key("hotels", a), Key("hotels", b))
	assert.NotEqual(t, Key("hotels", a), Key("flights", a))
}

func TestKeyShape(t *testing.T) {
	key := Key("flights", models.FlightSearchParams{Origin: "JFK", Destination: "LHR"})
	assert.Regexp(t, regexp.MustCompile(`^flights:[0-9a-f]{64}$`), key)
}

func TestNoOpCacheNeverHits(t *testing.T) {
	c := NewNoOpCache()
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", []byte("v")))
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	assert.NoError(t, c.Close())
}
