package runner

import (
	"testing"

	"github.com/vovakirdan/gensyn-runner/internal/core"
)

func TestAutopilotDecide(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want core.Action
	}{
		{
			name: "starts from menu",
			snap: Snapshot{Status: StatusMenu.String()},
			want: core.ActionConfirm,
		},
		{
			name: "restarts after game over",
			snap: Snapshot{Status: StatusGameOver.String()},
			want: core.ActionRestart,
		},
		{
			name: "buys the first affordable offer",
			snap: Snapshot{
				Status: StatusShop.String(),
				Score:  1200,
				Offers: []ShopItem{{ID: ItemImmortal, Cost: 3000}, {ID: ItemHeal, Cost: 1000}},
			},
			want: core.ActionBuy2,
		},
		{
			name: "leaves the shop when broke",
			snap: Snapshot{
				Status: StatusShop.String(),
				Offers: []ShopItem{{ID: ItemHeal, Cost: 1000}},
			},
			want: core.ActionConfirm,
		},
		{
			name: "dodges an obstacle",
			snap: Snapshot{
				Status:    StatusPlaying.String(),
				LaneCount: 3,
				Player:    PlayerView{Lane: -1},
				Objects:   []TrackObject{{Type: ObjectObstacle, Lane: -1, Z: -10, Active: true}},
			},
			want: core.ActionRight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewAutopilot(1).Decide(tt.snap)
			if !in.Has(tt.want) {
				t.Errorf("Decide() = %v, expected %v", in.Actions, tt.want)
			}
		})
	}
}
