package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/travel-planner-backend/internal/itinerary"
	"github.com/wanderplan/travel-planner-backend/internal/pkg/random"
)

func testContainer() *Container {
	return NewContainer(Config{
		ShareBaseURL:              "http://localhost:8080",
		ExportSigningSecret:       "test-secret",
		ExportLinkTTL:             time.Hour,
		BcryptCost:                4,
		AdjustmentRefreshInterval: time.Minute,
		Random:                    random.NewSource(9),
	})
}

func TestNewContainer_WiresAllServices(t *testing.T) {
	c := testContainer()

	require.NotNil(t, c.Router)
	assert.NotNil(t, c.InventoryService)
	assert.NotNil(t, c.BookingService)
	assert.NotNil(t, c.AdjustmentService)
	assert.NotNil(t, c.ShareService)
}

func TestNewContainer_DefaultsRefreshInterval(t *testing.T) {
	c := NewContainer(Config{Random: random.NewSource(9)})
	assert.Equal(t, defaultRefreshInterval, c.refreshInterval)
}

func TestNewAdjustmentRefresher_RefreshesDocument(t *testing.T) {
	c := testContainer()

	doc := &itinerary.Document{
		Days: []itinerary.DayPlan{
			{
				Day: 1,
				Activities: []itinerary.Activity{
					{Description: "Beach visits and snorkelling"},
				},
				Adjustments: []itinerary.Annotation{{Type: "weather", Message: "stale"}},
			},
		},
	}

	r := c.NewAdjustmentRefresher("Goa", doc)
	require.True(t, r.RunOnce(context.Background()))

	// The stale annotation is always replaced; whether new ones appear
	// depends on the generated weather.
	for _, ann := range doc.Days[0].Adjustments {
		assert.NotEqual(t, "stale", ann.Message)
		assert.NotEmpty(t, ann.Severity)
	}
}
