package adjustment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wanderplan/travel-planner-backend/internal/itinerary"
)

// stubProvider returns a fixed weather snapshot.
type stubProvider struct {
	weather Weather
}

func (p *stubProvider) Current(ctx context.Context, location string) (*Weather, error) {
	w := p.weather
	w.Location = location
	return &w, nil
}

// stubSource returns fixed values, pinning the closure rule.
type stubSource struct {
	f float64
}

func (s *stubSource) IntN(n int) int { return 0 }
func (s *stubSource) Float64() float64 { return s.f }

func generateWith(t *testing.T, w Weather, f float64) []Adjustment {
	t.Helper()
	svc := NewService(&stubProvider{weather: w}, &stubSource{f: f})
	adjustments, err := svc.Generate(context.Background(), "Goa")
	require.NoError(t, err)
	return adjustments
}

func calmWeather() Weather {
	return Weather{
		Temperature: 25,
		Condition:   "Sunny",
		Forecast:    []ForecastDay{{Precipitation: 2}, {Precipitation: 5}},
	}
}

func TestGenerate_CalmWeatherNoAdjustments(t *testing.T) {
	adjustments := generateWith(t, calmWeather(), 0.1)
	assert.Empty(t, adjustments)
}

func TestGenerate_RainyCondition(t *testing.T) {
	w := calmWeather()
	w.Condition = "Rainy"

	adjustments := generateWith(t, w, 0.1)
	require.Len(t, adjustments, 1)
	assert.Equal(t, TypeWeather, adjustments[0].Type)
	assert.Equal(t, SeverityMedium, adjustments[0].Severity)
	assert.Len(t, adjustments[0].Alternatives, 3)
}

func TestGenerate_HeavyForecastPrecipitation(t *testing.T) {
	w := calmWeather()
	w.Forecast = append(w.Forecast, ForecastDay{Precipitation: 15})

	adjustments := generateWith(t, w, 0.1)
	require.Len(t, adjustments, 1)
	assert.Equal(t, TypeWeather, adjustments[0].Type)
	assert.Equal(t, SeverityMedium, adjustments[0].Severity)
}

func TestGenerate_ExtremeHeat(t *testing.T) {
	w := calmWeather()
	w.Temperature = 36

	adjustments := generateWith(t, w, 0.1)
	require.Len(t, adjustments, 1)
	assert.Equal(t, TypeWeather, adjustments[0].Type)
	assert.Equal(t, SeverityHigh, adjustments[0].Severity)
	assert.Len(t, adjustments[0].Alternatives, 2)
}

func TestGenerate_RulesFireIndependently(t *testing.T) {
	w := calmWeather()
	w.Condition = "Rainy"
	w.Temperature = 38

	adjustments := generateWith(t, w, 0.9)
	require.Len(t, adjustments, 3)
	assert.Equal(t, SeverityMedium, adjustments[0].Severity)
	assert.Equal(t, SeverityHigh, adjustments[1].Severity)
	assert.Equal(t, TypeClosure, adjustments[2].Type)
}

func TestGenerate_ClosureGatedByProbability(t *testing.T) {
	// Float64 above 1-0.3 fires the closure rule.
	adjustments := generateWith(t, calmWeather(), 0.9)
	require.Len(t, adjustments, 1)
	assert.Equal(t, TypeClosure, adjustments[0].Type)

	adjustments = generateWith(t, calmWeather(), 0.5)
	assert.Empty(t, adjustments)
}

func testDocument() *itinerary.Document {
	return &itinerary.Document{
		Days: []itinerary.DayPlan{
			{
				Day: 1,
				Activities: []itinerary.Activity{
					{Description: "Beach visits and water sports at Baga"},
				},
			},
			{
				Day: 2,
				Activities: []itinerary.Activity{
					{Description: "Cooking class at a local home"},
				},
			},
		},
	}
}

func TestApply_AnnotatesMatchingDaysOnly(t *testing.T) {
	doc := testDocument()
	svc := NewService(&stubProvider{}, &stubSource{})

	svc.Apply(doc, []Adjustment{rainAdjustment()})

	require.Len(t, doc.Days[0].Adjustments, 1)
	ann := doc.Days[0].Adjustments[0]
	assert.Equal(t, "weather", ann.Type)
	assert.Equal(t, "medium", ann.Severity)
	assert.Equal(t, "Weather alert", ann.Message)
	assert.Len(t, ann.Alternatives, 3)

	assert.Empty(t, doc.Days[1].Adjustments)
}

func TestApply_MatchingIsCaseInsensitive(t *testing.T) {
	doc := testDocument()
	doc.Days[1].Activities[0].Description = "Guided TREKKING in the ghats"
	svc := NewService(&stubProvider{}, &stubSource{})

	svc.Apply(doc, []Adjustment{rainAdjustment()})

	assert.Len(t, doc.Days[0].Adjustments, 1)
	assert.Len(t, doc.Days[1].Adjustments, 1)
}

func TestApply_ReplacesPreviousAnnotations(t *testing.T) {
	doc := testDocument()
	svc := NewService(&stubProvider{}, &stubSource{})

	svc.Apply(doc, []Adjustment{rainAdjustment()})
	require.Len(t, doc.Days[0].Adjustments, 1)

	// The next cycle reports nothing; stale annotations must be dropped.
	svc.Apply(doc, nil)
	assert.Empty(t, doc.Days[0].Adjustments)
}

func TestAlertMessage(t *testing.T) {
	assert.Equal(t, "Weather alert", alertMessage(TypeWeather))
	assert.Equal(t, "Last minute alert", alertMessage(TypeLastMinute))
}

func TestRefresher_SkipsOverlappingCycles(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	r := NewRefresher(time.Minute, zap.NewNop(), func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.True(t, r.RunOnce(context.Background()))
	}()

	<-started
	assert.False(t, r.RunOnce(context.Background()))

	close(release)
	wg.Wait()
}

func TestRefresher_ReleasesLockBetweenCycles(t *testing.T) {
	r := NewRefresher(time.Minute, zap.NewNop(), func(ctx context.Context) error { return nil })
	assert.True(t, r.RunOnce(context.Background()))
	assert.True(t, r.RunOnce(context.Background()))
}
