package core

import "testing"

func TestInputFrameLaneLatestWins(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionRight)

	if f.Has(ActionLeft) {
		t.Error("Right should replace a queued Left")
	}
	if f.LaneDelta() != 1 {
		t.Errorf("LaneDelta() = %d, expected 1", f.LaneDelta())
	}

	f.Set(ActionLeft)
	if f.LaneDelta() != -1 {
		t.Errorf("LaneDelta() = %d, expected -1", f.LaneDelta())
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Set(ActionJump)
	f.Set(ActionShield)

	if len(f.Actions) != 2 {
		t.Errorf("expected 2 queued actions, got %d", len(f.Actions))
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set on zero frame should allocate")
	}
	f.Set(ActionNone)
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be stored")
	}
}

func TestBuySlot(t *testing.T) {
	if ActionBuy1.BuySlot() != 0 || ActionBuy3.BuySlot() != 2 {
		t.Error("wrong buy slots")
	}
	if ActionJump.BuySlot() != -1 {
		t.Error("non-buy action should map to -1")
	}
}

func TestClassifyGesture(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   Action
	}{
		{"swipe right", 80, 5, ActionRight},
		{"swipe left", -45, 10, ActionLeft},
		{"swipe up", 3, -60, ActionJump},
		{"swipe down ignored", 0, 60, ActionNone},
		{"short horizontal", 25, 2, ActionNone},
		{"exactly threshold", 30, 0, ActionNone},
		{"tap", 4, -6, ActionShield},
		{"tap at zero", 0, 0, ActionShield},
		{"diagonal equal axes", 40, -40, ActionNone},
		{"between tap and swipe", 15, 12, ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyGesture(tc.dx, tc.dy); got != tc.want {
				t.Errorf("ClassifyGesture(%v, %v) = %v, expected %v", tc.dx, tc.dy, got, tc.want)
			}
		})
	}
}
