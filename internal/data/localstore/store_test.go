package localstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchenkiosk/internal/data"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func openStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	s, err := Open(t.TempDir(), WithClock(clock.now))
	require.NoError(t, err)
	return s, clock
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestTimers_CreateCountsDownAndFinishes(t *testing.T) {
	ctx := context.Background()
	s, clock := openStore(t)

	tm, err := s.CreateTimer(ctx, 300, "  ")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimerName, tm.Name)
	assert.Equal(t, data.TimerRunning, tm.Status)

	clock.advance(100 * time.Second)
	timers, err := s.ListTimers(ctx)
	require.NoError(t, err)
	require.Len(t, timers, 1)
	assert.Equal(t, 200, timers[0].RemainingSec)

	clock.advance(250 * time.Second)
	timers, err = s.ListTimers(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.TimerFinished, timers[0].Status)
	assert.Equal(t, 0, timers[0].RemainingSec)
	assert.Empty(t, data.ActiveTimers(timers))
}

func TestTimers_CreateRejectsNonPositive(t *testing.T) {
	s, _ := openStore(t)
	_, err := s.CreateTimer(context.Background(), 0, "x")
	assert.ErrorIs(t, err, data.ErrInvalid)
}

func TestTimers_PauseAndResume(t *testing.T) {
	ctx := context.Background()
	s, clock := openStore(t)
	tm, err := s.CreateTimer(ctx, 120, "Tea")
	require.NoError(t, err)

	clock.advance(20 * time.Second)
	paused, err := s.PauseTimer(ctx, tm.ID)
	require.NoError(t, err)
	assert.Equal(t, data.TimerPaused, paused.Status)
	assert.Equal(t, 100, paused.RemainingSec)
	assert.Nil(t, paused.StartedAt)

	// Time passing while paused does not count.
	clock.advance(time.Hour)
	timers, err := s.ListTimers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, timers[0].RemainingSec)

	again, err := s.PauseTimer(ctx, tm.ID)
	require.NoError(t, err)
	assert.Equal(t, data.TimerPaused, again.Status)

	_, err = s.StartTimer(ctx, tm.ID)
	require.NoError(t, err)
	clock.advance(30 * time.Second)
	timers, err = s.ListTimers(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.TimerRunning, timers[0].Status)
	assert.Equal(t, 70, timers[0].RemainingSec)
}

func TestTimers_DeleteAndNotFound(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	tm, err := s.CreateTimer(ctx, 60, "")
	require.NoError(t, err)

	require.NoError(t, s.DeleteTimer(ctx, tm.ID))
	assert.ErrorIs(t, s.DeleteTimer(ctx, tm.ID), data.ErrNotFound)
	_, err = s.StartTimer(ctx, "nope")
	assert.ErrorIs(t, err, data.ErrNotFound)
}

func TestTimers_ListedInCreationOrder(t *testing.T) {
	ctx := context.Background()
	s, clock := openStore(t)
	for _, name := range []string{"a", "b", "c"} {
		_, err := s.CreateTimer(ctx, 600, name)
		require.NoError(t, err)
		clock.advance(time.Second)
	}
	timers, err := s.ListTimers(ctx)
	require.NoError(t, err)
	require.Len(t, timers, 3)
	assert.Equal(t, "a", timers[0].Name)
	assert.Equal(t, "c", timers[2].Name)
}

func TestShopping_AddCreatesProductAndCategory(t *testing.T) {
	ctx := context.Background()
	s, clock := openStore(t)

	it, err := s.AddItem(ctx, " Milk ", "Dairy")
	require.NoError(t, err)
	assert.Equal(t, "Milk", it.Name)
	assert.Equal(t, "Dairy", it.Category)
	assert.Equal(t, "1", it.Quantity)

	clock.advance(time.Second)
	// Known product keeps its original category.
	again, err := s.AddItem(ctx, "milk", "")
	require.NoError(t, err)
	assert.Equal(t, it.ProductID, again.ProductID)
	assert.Equal(t, "Dairy", again.Category)

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, it.ID, items[0].ID)

	cats, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Dairy", cats[0].Name)
}

func TestShopping_Validation(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	_, err := s.AddItem(ctx, "   ", "")
	assert.ErrorIs(t, err, data.ErrInvalid)

	it, err := s.AddItem(ctx, "eggs", "")
	require.NoError(t, err)
	assert.ErrorIs(t, s.UpdateQuantity(ctx, it.ID, " "), data.ErrInvalid)
	require.NoError(t, s.UpdateQuantity(ctx, it.ID, " 12 "))

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, "12", items[0].Quantity)

	require.NoError(t, s.DeleteItem(ctx, it.ID))
	assert.ErrorIs(t, s.DeleteItem(ctx, it.ID), data.ErrNotFound)
	items, err = s.ListItems(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestProducts_Autocomplete(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	for _, n := range []string{"Oat milk", "Milk", "Bread", "Buttermilk"} {
		_, err := s.AddItem(ctx, n, "")
		require.NoError(t, err)
	}

	got, err := s.Autocomplete(ctx, "MILK")
	require.NoError(t, err)
	names := make([]string, len(got))
	for i, p := range got {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"Buttermilk", "Milk", "Oat milk"}, names)

	empty, err := s.Autocomplete(ctx, " ")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProducts_UpdateAndByCategory(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	it, err := s.AddItem(ctx, "Apples", "")
	require.NoError(t, err)

	p, err := s.UpdateProduct(ctx, it.ProductID, "Green apples", "Fruit")
	require.NoError(t, err)
	assert.Equal(t, "Green apples", p.Name)
	assert.Equal(t, "Fruit", p.CategoryName)

	fruit, err := s.ProductsByCategory(ctx, "fruit")
	require.NoError(t, err)
	require.Len(t, fruit, 1)

	p, err = s.UpdateProduct(ctx, it.ProductID, "", "")
	require.NoError(t, err)
	assert.Equal(t, "Green apples", p.Name)
	assert.Empty(t, p.CategoryName)

	require.NoError(t, s.DeleteProduct(ctx, p.ID))
	all, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	_, err = s.UpdateProduct(ctx, p.ID, "x", "")
	assert.ErrorIs(t, err, data.ErrNotFound)
}

func TestCategories_CRUD(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)

	c, err := s.CreateCategory(ctx, "Bakery")
	require.NoError(t, err)
	_, err = s.CreateCategory(ctx, "bakery")
	assert.ErrorIs(t, err, data.ErrInvalid)
	_, err = s.CreateCategory(ctx, "")
	assert.ErrorIs(t, err, data.ErrInvalid)

	_, err = s.AddItem(ctx, "Rye", "Bakery")
	require.NoError(t, err)

	renamed, err := s.UpdateCategory(ctx, c.ID, "Bread & Cakes")
	require.NoError(t, err)
	assert.Equal(t, "Bread & Cakes", renamed.Name)

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Bread & Cakes", products[0].CategoryName)

	require.NoError(t, s.DeleteCategory(ctx, c.ID))
	products, err = s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products[0].CategoryName)
	assert.ErrorIs(t, s.DeleteCategory(ctx, c.ID), data.ErrNotFound)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	_, err = s.AddItem(ctx, "Coffee", "Drinks")
	require.NoError(t, err)

	reopened, err := Open(dir)
	require.NoError(t, err)
	items, err := reopened.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Coffee", items[0].Name)
}
