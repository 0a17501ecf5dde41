package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveTimers_FiltersAndOrders(t *testing.T) {
	in := []Timer{
		{ID: "a", Status: TimerIdle},
		{ID: "b", Status: TimerFinished},
		{ID: "c", Status: TimerPaused},
		{ID: "d", Status: TimerRunning},
		{ID: "e", Status: TimerRunning},
	}
	out := ActiveTimers(in)
	ids := make([]string, len(out))
	for i, tm := range out {
		ids[i] = tm.ID
	}
	assert.Equal(t, []string{"d", "e", "c", "a"}, ids)
}

func TestGroupByCategory(t *testing.T) {
	items := []ShoppingItem{
		{Name: "milk", Category: "Dairy"},
		{Name: "nails"},
		{Name: "apples", Category: "fruit"},
		{Name: "cheese", Category: "Dairy"},
		{Name: "tape", Category: "  "},
	}
	groups := GroupByCategory(items, func(i ShoppingItem) string { return i.Category }, "Other")
	require.Len(t, groups, 3)
	assert.Equal(t, "Dairy", groups[0].Category)
	assert.Equal(t, "milk", groups[0].Items[0].Name)
	assert.Equal(t, "cheese", groups[0].Items[1].Name)
	assert.Equal(t, "fruit", groups[1].Category)
	assert.Equal(t, "Other", groups[2].Category)
	assert.Len(t, groups[2].Items, 2)
}

func TestGroupByCategory_Empty(t *testing.T) {
	groups := GroupByCategory(nil, func(p Product) string { return p.CategoryName }, "Other")
	assert.Empty(t, groups)
}

func TestContainsItem(t *testing.T) {
	items := []ShoppingItem{{Name: "Milk", Category: "Dairy"}, {Name: "Bread"}}
	assert.True(t, ContainsItem(items, "milk", "dairy"))
	assert.True(t, ContainsItem(items, " bread ", ""))
	assert.False(t, ContainsItem(items, "milk", ""))
	assert.False(t, ContainsItem(items, "eggs", "Dairy"))
}

func TestFindCategory(t *testing.T) {
	cats := []Category{{ID: "c1", Name: "Dairy"}, {ID: "c2", Name: "Bakery"}}
	c, ok := FindCategory(cats, " dairy ")
	require.True(t, ok)
	assert.Equal(t, "c1", c.ID)
	_, ok = FindCategory(cats, "Fruit")
	assert.False(t, ok)
}

func TestStepQuantity(t *testing.T) {
	tests := []struct {
		in    string
		delta int
		want  string
		ok    bool
	}{
		{"2", 1, "3", true},
		{"", 1, "2", true},
		{"2", -1, "1", true},
		{"1", -1, "1", false},
		{"0.5kg", 1, "1.5kg", true},
		{"1.1", -1, "0.1", true},
		{"3 pcs", -1, "2 pcs", true},
		{"a pinch", 1, "a pinch", false},
	}
	for _, tt := range tests {
		got, ok := StepQuantity(tt.in, tt.delta)
		assert.Equal(t, tt.want, got, "StepQuantity(%q, %d)", tt.in, tt.delta)
		assert.Equal(t, tt.ok, ok, "StepQuantity(%q, %d)", tt.in, tt.delta)
	}
}
