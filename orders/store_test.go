package orders_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/shortlink-org/shop/orders"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fixedClock() time.Time {
	return time.Date(2024, time.March, 1, 10, 30, 0, 123456789, time.FixedZone("CET", 3600))
}

func TestStoreSequentialIDs(t *testing.T) {
	store := orders.NewStore(orders.WithClock(fixedClock))

	first := store.Create(orders.Fields{"userId": 5, "productId": 9})
	second := store.Create(orders.Fields{"userId": 6, "productId": 1})

	require.Equal(t, 1, first.ID)
	require.Equal(t, 2, second.ID)
	require.Equal(t, 5, first.UserID)
	require.Equal(t, 9, first.ProductID)
	require.Equal(t, time.Date(2024, time.March, 1, 9, 30, 0, 123000000, time.UTC), first.Timestamp)

	require.Equal(t, []orders.Order{first, second}, store.List())
}

func TestStoreMissingFields(t *testing.T) {
	store := orders.NewStore()

	order := store.Create(orders.Fields{})

	require.Equal(t, 1, order.ID)
	require.Nil(t, order.UserID)
	require.Nil(t, order.ProductID)
}

func TestStoreListIsCopy(t *testing.T) {
	store := orders.NewStore()
	store.Create(orders.Fields{"userId": "a"})

	list := store.List()
	list[0].ID = 100

	require.Equal(t, 1, store.List()[0].ID)
}

func TestStoreConcurrentCreatorsGetDistinctIDs(t *testing.T) {
	const writers = 64

	store := orders.NewStore()

	var g errgroup.Group

	ids := make([]int, writers)

	for i := range writers {
		g.Go(func() error {
			ids[i] = store.Create(orders.Fields{"userId": i}).ID

			return nil
		})
	}

	require.NoError(t, g.Wait())

	sort.Ints(ids)

	for i, id := range ids {
		require.Equal(t, i+1, id)
	}

	list := store.List()
	require.Len(t, list, writers)

	for i, order := range list {
		require.Equal(t, i+1, order.ID, "insertion order follows id order")
	}
}
