package utils

import "testing"

func TestShouldRepeat(t *testing.T) {
	tests := []struct {
		duration int
		want     bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{KeyRepeatDelayTicks, false},
		{KeyRepeatDelayTicks + 1, false},
		{KeyRepeatDelayTicks + KeyRepeatIntervalTicks, true},
		{KeyRepeatDelayTicks + 2*KeyRepeatIntervalTicks, true},
		{KeyRepeatDelayTicks + 2*KeyRepeatIntervalTicks + 1, false},
	}

	for _, tt := range tests {
		if got := ShouldRepeat(tt.duration); got != tt.want {
			t.Errorf("ShouldRepeat(%d) = %v, want %v", tt.duration, got, tt.want)
		}
	}
}

func TestDragManagerInitialState(t *testing.T) {
	dm := NewDragManager()

	if dm.GetState() != DragStateNone {
		t.Errorf("Expected initial state to be DragStateNone, got %v", dm.GetState())
	}
	if dm.IsActive() {
		t.Error("Expected IsActive to be false initially")
	}
	if dm.GetInfo().TouchID != -1 {
		t.Errorf("Expected TouchID -1, got %d", dm.GetInfo().TouchID)
	}
}

func TestDragManagerReset(t *testing.T) {
	dm := NewDragManager()
	dm.begin(100, 200, -1, false)

	if !dm.IsActive() {
		t.Fatal("Expected drag to be active after begin")
	}
	if x, y := dm.Position(); x != 100 || y != 200 {
		t.Errorf("Position() = (%d, %d), want (100, 200)", x, y)
	}

	dm.Reset()

	info := dm.GetInfo()
	if info.State != DragStateNone || info.StartX != 0 || info.CurrentY != 0 {
		t.Errorf("Expected zeroed drag info after reset, got %+v", info)
	}
}
