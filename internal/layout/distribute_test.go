package layout

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/domain/models"
)

func ids(cols [][]models.GalleryItem) [][]string {
	out := make([][]string, len(cols))
	for i, col := range cols {
		out[i] = []string{}
		for _, item := range col {
			out[i] = append(out[i], item.ID)
		}
	}
	return out
}

func TestDistribute_PreservesCountAndMembership(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 10, 23, 64} {
		for columns := 1; columns <= 4; columns++ {
			t.Run(fmt.Sprintf("%d items in %d columns", n, columns), func(t *testing.T) {
				items := Classify(makeItems(n))
				for i := range items {
					items[i].Featured = i%4 == 1
				}

				cols := Distribute(items, columns)
				require.Len(t, cols, columns)

				got := make([]string, 0, n)
				for _, col := range cols {
					for _, item := range col {
						got = append(got, item.ID)
					}
				}
				want := make([]string, 0, n)
				for _, item := range items {
					want = append(want, item.ID)
				}
				sort.Strings(got)
				sort.Strings(want)

				assert.Equal(t, want, got)
			})
		}
	}
}

func TestDistribute_FeaturedRoundRobin(t *testing.T) {
	items := Classify(makeItems(8))
	for _, i := range []int{1, 3, 4, 6} {
		items[i].Featured = true
	}

	cols := Distribute(items, 3)

	assert.Equal(t, "item-1", cols[0][0].ID)
	assert.Equal(t, "item-3", cols[1][0].ID)
	assert.Equal(t, "item-4", cols[2][0].ID)
	assert.Equal(t, "item-6", cols[0][1].ID)
}

func TestDistribute_TiesGoToLowestColumn(t *testing.T) {
	items := []models.GalleryItem{
		{ID: "a", Size: models.SizeMedium},
		{ID: "b", Size: models.SizeMedium},
		{ID: "c", Size: models.SizeMedium},
	}

	cols := Distribute(items, 3)

	assert.Equal(t, [][]string{{"a"}, {"b"}, {"c"}}, ids(cols))
}

func TestDistribute_NonPositiveColumns(t *testing.T) {
	items := Classify(makeItems(5))

	cols := Distribute(items, 0)

	require.Len(t, cols, 1)
	assert.Len(t, cols[0], 5)
}

func TestDistribute_EndToEnd(t *testing.T) {
	items := Classify(makeItems(10))
	items[2].Featured = true

	require.Equal(t, models.SizeLarge, items[0].Size)
	require.Equal(t, models.SizeLarge, items[7].Size)

	d := NewDistributor(DefaultHeights)
	cols := d.Distribute(items, 3)

	require.Len(t, cols, 3)
	assert.Equal(t, "item-2", cols[0][0].ID)
	assert.Equal(t, [][]string{
		{"item-2", "item-4", "item-8"},
		{"item-0", "item-5", "item-6", "item-9"},
		{"item-1", "item-3", "item-7"},
	}, ids(cols))
	assert.Equal(t, []int{1064, 1312, 1064}, d.ColumnHeights(cols))
}

func TestDistribute_GreedyStaysWithinOneLargeTile(t *testing.T) {
	items := Classify(makeItems(10))
	items[2].Featured = true
	heights := DefaultHeights
	d := NewDistributor(heights)
	limit := heights.Large + heights.Gap

	// Replay the placement one item at a time and check the spread after each.
	for n := 1; n <= len(items); n++ {
		cols := d.Distribute(items[:n], 3)
		hs := d.ColumnHeights(cols)

		lo, hi := hs[0], hs[0]
		for _, h := range hs {
			lo = min(lo, h)
			hi = max(hi, h)
		}
		assert.LessOrEqual(t, hi-lo, limit, "after %d items: %v", n, hs)
	}
}

func TestHeightTable_Validate(t *testing.T) {
	assert.NoError(t, DefaultHeights.Validate())

	bad := DefaultHeights
	bad.Small = bad.Medium + 1
	assert.ErrorIs(t, bad.Validate(), ErrHeightOrder)

	bad = DefaultHeights
	bad.Gap = -1
	assert.Error(t, bad.Validate())
}

func TestHeightTable_Estimate(t *testing.T) {
	h := DefaultHeights

	assert.Equal(t, 408, h.Estimate(models.GalleryItem{Featured: true, Size: models.SizeSmall}))
	assert.Equal(t, 408, h.Estimate(models.GalleryItem{Size: models.SizeLarge}))
	assert.Equal(t, 328, h.Estimate(models.GalleryItem{Size: models.SizeMedium}))
	assert.Equal(t, 248, h.Estimate(models.GalleryItem{Size: models.SizeSmall}))
	assert.Equal(t, 328, h.Estimate(models.GalleryItem{}))
}
