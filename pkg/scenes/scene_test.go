package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeScene struct {
	updates int
	exits   int
}

func (f *fakeScene) Update(deltaTime float64)  { f.updates++ }
func (f *fakeScene) Draw(screen *ebiten.Image) {}
func (f *fakeScene) OnExit()                   { f.exits++ }

type plainScene struct{ updates int }

func (p *plainScene) Update(deltaTime float64)  { p.updates++ }
func (p *plainScene) Draw(screen *ebiten.Image) {}

func TestSceneManagerSwitchCallsOnExit(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Fatal("new manager should have no scene")
	}
	sm.Update(1.0 / 60.0) // 无场景时不 panic

	first := &fakeScene{}
	sm.SwitchTo(first)
	sm.Update(1.0 / 60.0)
	if first.updates != 1 {
		t.Errorf("first scene updates = %d, want 1", first.updates)
	}

	second := &plainScene{}
	sm.SwitchTo(second)
	if first.exits != 1 {
		t.Errorf("first scene exits = %d, want 1", first.exits)
	}
	sm.Update(1.0 / 60.0)
	if first.updates != 1 || second.updates != 1 {
		t.Errorf("only the active scene should update: first=%d second=%d", first.updates, second.updates)
	}

	// 不实现 Exiter 的场景被替换时也安全
	sm.SwitchTo(first)
	if sm.GetCurrentScene() != first {
		t.Error("GetCurrentScene should return the scene just switched to")
	}
	t.Logf("✓ SwitchTo notifies the outgoing scene exactly once")
}
