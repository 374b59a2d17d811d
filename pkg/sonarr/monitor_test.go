package sonarr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplySeasonSelection(t *testing.T) {
	base := func() []Season {
		return []Season{
			{SeasonNumber: 0, Monitored: true},
			{SeasonNumber: 1, Monitored: true},
			{SeasonNumber: 2, Monitored: false},
			{SeasonNumber: 3, Monitored: true},
		}
	}

	tests := []struct {
		name      string
		selection []int
		want      map[int]bool
	}{
		{
			name:      "nil leaves defaults untouched",
			selection: nil,
			want:      map[int]bool{0: true, 1: true, 2: false, 3: true},
		},
		{
			name:      "explicit selection overrides everything",
			selection: []int{2, 3},
			want:      map[int]bool{0: false, 1: false, 2: true, 3: true},
		},
		{
			name:      "empty selection unmonitors all",
			selection: []int{},
			want:      map[int]bool{0: false, 1: false, 2: false, 3: false},
		},
		{
			name:      "specials forced off even when selected",
			selection: []int{0, 1},
			want:      map[int]bool{0: false, 1: true, 2: false, 3: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seasons := base()
			ApplySeasonSelection(seasons, tt.selection)

			got := make(map[int]bool, len(seasons))
			for _, s := range seasons {
				got[s.SeasonNumber] = s.Monitored
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
