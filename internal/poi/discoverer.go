package poi

import (
	"context"
	"fmt"
	"strings"

	"github.com/wanderplan/travel-planner-backend/internal/pkg/random"
)

// Discoverer resolves a free-text query into 6-9 points of interest. The
// real implementation calls a generative-AI service; the mock fabricates
// results from templates.
type Discoverer interface {
	Discover(ctx context.Context, query string) ([]POI, error)
}

type poiTemplate struct {
	name        string
	description string
	poiType     Type
	review      string
}

var poiTemplates = []poiTemplate{
	{"City Heritage Museum", "A compact museum tracing the city's history through textiles, coins and photographs.", TypeAttraction, "Well curated and rarely crowded. The textile gallery alone is worth the ticket."},
	{"Old Fort Ramparts", "Sunset views over the old town from the restored fort walls.", TypeAttraction, "Go an hour before sunset and walk the full circuit. Stunning."},
	{"Spice Market Walk", "A guided morning walk through the wholesale spice lanes.", TypeActivity, "Our guide knew every vendor by name. Came home with a bag full of spices."},
	{"Riverside Cafe", "Quiet cafe with filter coffee and river views.", TypeCafe, "Great coffee, slow service, perfect views. Bring a book."},
	{"Darbar Thali House", "Unlimited regional thali served on banana leaf.", TypeRestaurant, "The best meal of our trip, and the most affordable too."},
	{"Lakeview Homestay", "Family-run homestay with home-cooked breakfast.", TypeAccommodation, "Felt like staying with relatives. The breakfast spread is enormous."},
	{"Night Bazaar", "Street food and handicraft stalls that open after dark.", TypeOther, "Chaotic in the best way. Try the kulfi at the last stall."},
	{"Botanical Garden Trail", "A shaded walking trail through a colonial-era garden.", TypeActivity, "Peaceful escape from the traffic. The orchid house is lovely."},
	{"Artisan Quarter", "Workshops where you can watch weavers and potters at work.", TypeAttraction, "Bought directly from the weavers. Prices were fair and the stories were free."},
}

type mockDiscoverer struct {
	rng random.Source
}

// NewMockDiscoverer returns a Discoverer that fabricates 6-9 POIs around
// the queried locale.
func NewMockDiscoverer(rng random.Source) Discoverer {
	return &mockDiscoverer{rng: rng}
}

func (d *mockDiscoverer) Discover(ctx context.Context, query string) ([]POI, error) {
	locale := localeFrom(query)
	count := 6 + d.rng.IntN(4)

	pois := make([]POI, 0, count)
	for i := 0; i < count; i++ {
		t := poiTemplates[i%len(poiTemplates)]
		pois = append(pois, POI{
			Name:        t.name,
			Location:    locale,
			Description: t.description,
			Type:        t.poiType,
			ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s-%d/600/400", strings.ReplaceAll(strings.ToLower(locale), " ", "-"), i),
			ImageHint:   t.name,
			Review:      t.review,
		})
	}
	return pois, nil
}

// localeFrom extracts a display locale from queries like "cafes in Jaipur".
func localeFrom(query string) string {
	q := strings.TrimSpace(query)
	lower := strings.ToLower(q)
	if idx := strings.LastIndex(lower, " in "); idx >= 0 {
		return strings.TrimSpace(q[idx+4:])
	}
	if idx := strings.LastIndex(lower, " near "); idx >= 0 {
		return strings.TrimSpace(q[idx+6:])
	}
	return q
}
