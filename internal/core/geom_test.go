package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
		{-5, -1, 9, -1}, // negative floor
		{3, 5, 2, 5},    // crossed bounds keep the floor
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestRuntimeConfigTickRate(t *testing.T) {
	if got := (RuntimeConfig{}).TickRateOrDefault(); got != DefaultTickRate {
		t.Errorf("TickRateOrDefault() on zero config = %d, expected %d", got, DefaultTickRate)
	}
	if got := (RuntimeConfig{TickRate: -4}).TickRateOrDefault(); got != DefaultTickRate {
		t.Errorf("TickRateOrDefault() on negative rate = %d, expected %d", got, DefaultTickRate)
	}
	if got := (RuntimeConfig{TickRate: 30}).TickRateOrDefault(); got != 30 {
		t.Errorf("TickRateOrDefault() = %d, expected 30", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("DefaultConfig() screen = %dx%d, expected 80x24", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.TickRate != DefaultTickRate || cfg.Seed != 0 {
		t.Errorf("DefaultConfig() = %+v, expected default tick rate and clock seed", cfg)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if len(f.Actions) != 0 {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Set/Has mismatch")
	}

	f.Clear()
	if f.Has(ActionLeft) || len(f.Actions) != 0 {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionDrop) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionDrop)
	if !zero.Has(ActionDrop) {
		t.Error("Set on zero frame should allocate")
	}
}
