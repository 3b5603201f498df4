package poi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/travel-planner-backend/internal/pkg/random"
)

func TestMockDiscoverer_CountAndLocale(t *testing.T) {
	d := NewMockDiscoverer(random.NewSource(3))

	pois, err := d.Discover(context.Background(), "best cafes in Jaipur")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(pois), 6)
	assert.LessOrEqual(t, len(pois), 9)
	for _, p := range pois {
		assert.Equal(t, "Jaipur", p.Location)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.NotEmpty(t, p.Type)
		assert.NotEmpty(t, p.ImageURL)
		assert.NotEmpty(t, p.Review)
	}
}

func TestLocaleFrom(t *testing.T) {
	assert.Equal(t, "Jaipur", localeFrom("cafes in Jaipur"))
	assert.Equal(t, "Old Delhi", localeFrom("street food near Old Delhi"))
	assert.Equal(t, "Hampi", localeFrom("Hampi"))
	// The last marker wins for compound queries.
	assert.Equal(t, "Agra", localeFrom("places to eat in Delhi in Agra"))
}

func TestService_RejectsEmptyQuery(t *testing.T) {
	svc := NewService(NewMockDiscoverer(random.NewSource(3)))

	_, err := svc.Discover(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrQueryRequired)
}
