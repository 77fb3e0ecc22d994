package systems

import (
	"testing"

	"github.com/decker502/heartcatch/pkg/components"
)

// TestCountdown_LostAfterFifteenTicks 15 次倒计时且分数为 0 -> 第 15 次后 Lost
func TestCountdown_LostAfterFifteenTicks(t *testing.T) {
	w := newCatchWorld(nil)

	for tick := 1; tick <= 14; tick++ {
		if w.countdown.Tick() {
			t.Fatalf("tick %d should not lose", tick)
		}
		if w.state().Phase != components.PhaseRunning {
			t.Fatalf("tick %d: phase %v", tick, w.state().Phase)
		}
	}

	if !w.countdown.Tick() {
		t.Fatal("15th tick should report Lost")
	}
	if w.state().Phase != components.PhaseLost || w.state().TimeRemaining != 0 {
		t.Errorf("unexpected state %+v", *w.state())
	}

	// 之后的 Tick 是空操作
	if w.countdown.Tick() {
		t.Error("tick after Lost must not report Lost again")
	}
	if w.state().TimeRemaining != 0 {
		t.Errorf("time must stay at 0, got %d", w.state().TimeRemaining)
	}
}

func TestCountdown_StopsAfterWon(t *testing.T) {
	w := newCatchWorld(nil)
	state := w.state()
	for i := 0; i < w.cfg.TargetScore; i++ {
		state.RecordCatch()
	}

	for i := 0; i < 20; i++ {
		w.countdown.Tick()
	}
	if state.Phase != components.PhaseWon {
		t.Errorf("expected Won to stick, got %v", state.Phase)
	}
	if state.TimeRemaining != w.cfg.SessionSeconds {
		t.Errorf("countdown must stop after Won, remaining = %d", state.TimeRemaining)
	}
}
