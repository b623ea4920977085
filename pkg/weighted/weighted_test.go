package weighted

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always yields the same float, letting tests force the
// roll onto interval boundaries.
type fixedSource struct{ v float64 }

func (s fixedSource) Float64() float64 { return s.v }

func testOptions() []Option {
	return []Option{
		{ID: 1, Label: "TV", Weight: 30},
		{ID: 2, Label: "Coupon", Weight: 25},
		{ID: 3, Label: "Mug", Weight: 20},
		{ID: 4, Label: "Sticker", Weight: 15},
		{ID: 5, Label: "Gift Card", Weight: 8},
		{ID: 6, Label: "Jackpot", Weight: 2},
	}
}

func TestPickWith_Fairness(t *testing.T) {
	const draws = 200000
	opts := testOptions()
	src := rand.New(rand.NewSource(42))

	counts := make(map[int64]int, len(opts))
	for i := 0; i < draws; i++ {
		got, err := PickWith(src, opts)
		require.NoError(t, err)
		counts[got.ID]++
	}

	// Weights sum to 100, so weight/100 is the expected frequency.
	// Tolerance is 1.5 percentage points.
	for _, o := range opts {
		observed := float64(counts[o.ID]) / draws * 100
		assert.InDelta(t, o.Weight, observed, 1.5,
			"option %q: observed %.2f%%, expected %.2f%%", o.Label, observed, o.Weight)
	}
}

func TestPickWith_AlwaysReturnsMember(t *testing.T) {
	opts := []Option{
		{ID: 1, Label: "a", Weight: 0.1},
		{ID: 2, Label: "b", Weight: 99.9},
		{ID: 3, Label: "c", Weight: 0},
	}
	ids := map[int64]bool{1: true, 2: true, 3: true}
	src := rand.New(rand.NewSource(7))

	for i := 0; i < 10000; i++ {
		got, err := PickWith(src, opts)
		require.NoError(t, err)
		require.True(t, ids[got.ID], "draw returned option outside the input list: %+v", got)
	}
}

func TestPickWith_Boundaries(t *testing.T) {
	opts := testOptions()

	t.Run("roll at exact upper boundary returns last option", func(t *testing.T) {
		got, err := PickWith(fixedSource{v: 1.0}, opts)
		require.NoError(t, err)
		assert.Equal(t, opts[len(opts)-1].ID, got.ID)
	})

	t.Run("roll of zero returns first option", func(t *testing.T) {
		got, err := PickWith(fixedSource{v: 0}, opts)
		require.NoError(t, err)
		assert.Equal(t, opts[0].ID, got.ID)
	})

	t.Run("roll inside an inner interval", func(t *testing.T) {
		// total = 100; a roll of 0.31*100 = 31 lands in the second
		// interval [30, 55).
		got, err := PickWith(fixedSource{v: 0.31}, opts)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.ID)
	})
}

func TestPickWith_DegradedInput(t *testing.T) {
	t.Run("empty list fails fast", func(t *testing.T) {
		_, err := PickWith(fixedSource{}, nil)
		assert.ErrorIs(t, err, ErrNoOptions)

		_, err = Pick([]Option{})
		assert.ErrorIs(t, err, ErrNoOptions)
	})

	t.Run("all-zero weights fall back to the first option", func(t *testing.T) {
		opts := []Option{
			{ID: 1, Label: "a", Weight: 0},
			{ID: 2, Label: "b", Weight: 0},
		}
		src := rand.New(rand.NewSource(1))
		for i := 0; i < 100; i++ {
			got, err := PickWith(src, opts)
			require.NoError(t, err)
			assert.Equal(t, int64(1), got.ID)
		}
	})

	t.Run("negative weights are treated as zero", func(t *testing.T) {
		opts := []Option{
			{ID: 1, Label: "a", Weight: -5},
			{ID: 2, Label: "b", Weight: 10},
		}
		src := rand.New(rand.NewSource(2))
		for i := 0; i < 1000; i++ {
			got, err := PickWith(src, opts)
			require.NoError(t, err)
			assert.Equal(t, int64(2), got.ID)
		}
	})
}

func TestPick_UsesWholeList(t *testing.T) {
	opts := []Option{
		{ID: 1, Label: "a", Weight: 50},
		{ID: 2, Label: "b", Weight: 50},
	}
	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		got, err := Pick(opts)
		require.NoError(t, err)
		seen[got.ID] = true
	}
	assert.True(t, seen[1] && seen[2], "both options should be reachable, saw %v", seen)
}
