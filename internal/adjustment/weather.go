package adjustment

import (
	"context"
	"time"

	"github.com/wanderplan/travel-planner-backend/internal/pkg/random"
)

// Provider fetches a weather snapshot for a destination. The shipped
// implementation is a mock with bounded random values; a production
// deployment replaces it with a real weather feed behind the same
// interface.
type Provider interface {
	Current(ctx context.Context, location string) (*Weather, error)
}

// Conditions the mock provider draws from.
var conditions = []string{"Sunny", "Partly Cloudy", "Cloudy", "Rainy"}

const forecastDays = 5

type mockProvider struct {
	rng random.Source
	now func() time.Time
}

// NewMockProvider returns a weather provider producing bounded random
// snapshots: temperature 20-35°C, humidity 40-80%, wind 5-25 km/h,
// precipitation 0-20mm over a five-day forecast.
func NewMockProvider(rng random.Source) Provider {
	return &mockProvider{rng: rng, now: time.Now}
}

func (p *mockProvider) Current(ctx context.Context, location string) (*Weather, error) {
	w := &Weather{
		Location:    location,
		Temperature: 20 + p.rng.IntN(16),
		Condition:   conditions[p.rng.IntN(len(conditions))],
		Humidity:    40 + p.rng.IntN(41),
		WindSpeed:   5 + p.rng.IntN(21),
	}

	base := p.now()
	for i := 0; i < forecastDays; i++ {
		w.Forecast = append(w.Forecast, ForecastDay{
			Date:          base.AddDate(0, 0, i).Format("2006-01-02"),
			Temperature:   20 + p.rng.IntN(16),
			Condition:     conditions[p.rng.IntN(len(conditions))],
			Precipitation: p.rng.IntN(21),
		})
	}
	return w, nil
}
