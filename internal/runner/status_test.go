package runner

import "testing"

func TestNextStatus(t *testing.T) {
	tests := []struct {
		from    Status
		trigger Trigger
		want    Status
		ok      bool
	}{
		{StatusMenu, TriggerStart, StatusPlaying, true},
		{StatusMenu, TriggerRestart, StatusMenu, false},
		{StatusPlaying, TriggerEnterShop, StatusShop, true},
		{StatusPlaying, TriggerLivesDepleted, StatusGameOver, true},
		{StatusPlaying, TriggerLevelsCleared, StatusVictory, true},
		{StatusPlaying, TriggerStart, StatusPlaying, false},
		{StatusShop, TriggerCloseShop, StatusPlaying, true},
		{StatusShop, TriggerLivesDepleted, StatusShop, false},
		{StatusGameOver, TriggerRestart, StatusPlaying, true},
		{StatusGameOver, TriggerStart, StatusGameOver, false},
		{StatusVictory, TriggerRestart, StatusPlaying, true},
	}

	for _, tt := range tests {
		got, ok := NextStatus(tt.from, tt.trigger)
		if ok != tt.ok {
			t.Errorf("NextStatus(%v, %v) ok = %v, expected %v", tt.from, tt.trigger, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("NextStatus(%v, %v) = %v, expected %v", tt.from, tt.trigger, got, tt.want)
		}
	}
}

func TestOnlyPlayingSimulates(t *testing.T) {
	for _, s := range []Status{StatusMenu, StatusPlaying, StatusShop, StatusGameOver, StatusVictory} {
		if got := s.Simulates(); got != (s == StatusPlaying) {
			t.Errorf("%v.Simulates() = %v", s, got)
		}
	}
}
