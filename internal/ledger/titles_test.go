package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arenabets/arenabot/internal/domain"
)

func TestCheckTitles(t *testing.T) {
	tests := []struct {
		name   string
		player domain.Player
		want   []string
	}{
		{
			name:   "empty inventory",
			player: domain.Player{},
			want:   nil,
		},
		{
			name:   "one finger below threshold",
			player: domain.Player{Items: map[string]int{domain.ItemSukunaFinger: 1}},
			want:   nil,
		},
		{
			name:   "two fingers earn cursed host",
			player: domain.Player{Items: map[string]int{domain.ItemSukunaFinger: 2}},
			want:   []string{TitleCursedHost},
		},
		{
			name:   "three gokumonkyo earn warden",
			player: domain.Player{Items: map[string]int{domain.ItemGokumonkyo: 3}},
			want:   []string{TitlePrisonRealmWarden},
		},
		{
			name: "both thresholds at once",
			player: domain.Player{Items: map[string]int{
				domain.ItemSukunaFinger: 5,
				domain.ItemGokumonkyo:   3,
			}},
			want: []string{TitleCursedHost, TitlePrisonRealmWarden},
		},
		{
			name: "held titles are not re-awarded",
			player: domain.Player{
				Items:  map[string]int{domain.ItemSukunaFinger: 4},
				Titles: []string{TitleCursedHost},
			},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckTitles(&tt.player))
		})
	}
}
