package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_CategoryAndDateAreExact(t *testing.T) {
	repo := NewMemoryRepository(DefaultSeed())

	items, err := repo.Search(context.Background(), Filter{Category: CategoryHotel, Date: "2024-01-15"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Taj Palace Hotel", items[0].Name)

	items, err = repo.Search(context.Background(), Filter{Category: CategoryHotel, Date: "2024-01-16"})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSearch_LocationIsCaseInsensitiveSubstring(t *testing.T) {
	repo := NewMemoryRepository(DefaultSeed())

	items, err := repo.Search(context.Background(), Filter{
		Category: CategoryFlight,
		Date:     "2024-01-15",
		Location: "mumBAI",
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "flight-001", items[0].ID)

	// "delhi" matches "Mumbai to Delhi" as a substring.
	items, err = repo.Search(context.Background(), Filter{
		Category: CategoryFlight,
		Date:     "2024-01-15",
		Location: "delhi",
	})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestSearch_ExcludesNonAvailableItems(t *testing.T) {
	seed := DefaultSeed()
	seed[0].Status = StatusBooked
	repo := NewMemoryRepository(seed)

	items, err := repo.Search(context.Background(), Filter{Category: CategoryHotel, Date: "2024-01-15"})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSearch_PreservesInsertionOrder(t *testing.T) {
	seed := []*Item{
		{ID: "a", Category: CategoryActivity, Date: "2024-01-16", Status: StatusAvailable},
		{ID: "b", Category: CategoryActivity, Date: "2024-01-16", Status: StatusAvailable},
		{ID: "c", Category: CategoryActivity, Date: "2024-01-16", Status: StatusAvailable},
	}
	repo := NewMemoryRepository(seed)

	items, err := repo.Search(context.Background(), Filter{Category: CategoryActivity, Date: "2024-01-16"})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
	assert.Equal(t, "c", items[2].ID)
}

func TestGetByID(t *testing.T) {
	repo := NewMemoryRepository(DefaultSeed())

	item, err := repo.GetByID(context.Background(), "train-001")
	require.NoError(t, err)
	assert.Equal(t, "Rajdhani Express", item.Name)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
