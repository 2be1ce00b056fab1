package autosearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page, index int
		want        Rank
	}{
		{1, 0, Rank{TotalRank: 1, WebPage: 1, RankInWebPage: 1}},
		{1, 39, Rank{TotalRank: 40, WebPage: 1, RankInWebPage: 40}},
		{1, 40, Rank{TotalRank: 41, WebPage: 2, RankInWebPage: 1}},
		{1, 99, Rank{TotalRank: 100, WebPage: 3, RankInWebPage: 20}},
		{2, 0, Rank{TotalRank: 101, WebPage: 3, RankInWebPage: 21}},
		{3, 99, Rank{TotalRank: 300, WebPage: 8, RankInWebPage: 20}},
		{10, 99, Rank{TotalRank: 1000, WebPage: 25, RankInWebPage: 40}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Remap(tt.page, tt.index), "page=%d index=%d", tt.page, tt.index)
	}
}

func TestRemap_Consistency(t *testing.T) {
	t.Parallel()

	for page := 1; page <= 25; page++ {
		for idx := 0; idx < ItemsPerAPIPage; idx++ {
			r := Remap(page, idx)
			assert.Equal(t, r.TotalRank, (r.WebPage-1)*ItemsPerWebPage+r.RankInWebPage)
			assert.GreaterOrEqual(t, r.RankInWebPage, 1)
			assert.LessOrEqual(t, r.RankInWebPage, ItemsPerWebPage)
		}
	}
}

func TestRemapWith(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Rank{TotalRank: 11, WebPage: 3, RankInWebPage: 1}, RemapWith(2, 0, 10, 5))
}
