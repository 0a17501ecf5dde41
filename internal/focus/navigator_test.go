package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresTargets(t *testing.T) {
	n, err := New[string]()
	assert.Nil(t, n)
	assert.ErrorIs(t, err, ErrNoTargets)

	assert.Panics(t, func() { MustNew[int]() })
}

func TestNavigator_NextWraps(t *testing.T) {
	n := MustNew("yes", "no")
	assert.Equal(t, 0, n.Index())
	assert.Equal(t, "yes", n.Current())

	n.Next()
	assert.Equal(t, 1, n.Index())
	assert.Equal(t, "no", n.Current())

	n.Next()
	assert.Equal(t, 0, n.Index())
}

func TestNavigator_PrevWraps(t *testing.T) {
	n := MustNew(1, 2, 3)
	n.Prev()
	assert.Equal(t, 2, n.Index())
	n.Prev()
	assert.Equal(t, 1, n.Index())
}

func TestNavigator_NextNTimesReturnsToStart(t *testing.T) {
	for size := 1; size <= 8; size++ {
		items := make([]int, size)
		for start := 0; start < size; start++ {
			n := MustNew(items...)
			n.SetIndex(start)
			for i := 0; i < size; i++ {
				n.Next()
			}
			assert.Equal(t, start, n.Index(), "size=%d start=%d", size, start)
		}
	}
}

func TestNavigator_PrevInvertsNext(t *testing.T) {
	for size := 1; size <= 8; size++ {
		items := make([]int, size)
		for start := 0; start < size; start++ {
			n := MustNew(items...)
			n.SetIndex(start)
			n.Next()
			n.Prev()
			assert.Equal(t, start, n.Index())
			n.Prev()
			n.Next()
			assert.Equal(t, start, n.Index())
		}
	}
}

func TestNavigator_SetIndexNormalizes(t *testing.T) {
	n := MustNew("a", "b", "c")
	n.SetIndex(4)
	assert.Equal(t, 1, n.Index())
	n.SetIndex(-1)
	assert.Equal(t, 2, n.Index())
	n.Reset()
	assert.Equal(t, 0, n.Index())
}

func TestNavigator_ItemsIsCopy(t *testing.T) {
	src := []string{"a", "b"}
	n, err := New(src...)
	require.NoError(t, err)
	src[0] = "z"
	items := n.Items()
	items[1] = "y"
	assert.Equal(t, []string{"a", "b"}, n.Items())
	assert.Equal(t, 2, n.Len())
}
