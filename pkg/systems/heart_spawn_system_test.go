package systems

import (
	"testing"

	"github.com/decker502/heartcatch/pkg/components"
	"github.com/decker502/heartcatch/pkg/config"
	"github.com/decker502/heartcatch/pkg/ecs"
)

func TestHeartSpawn_CreatesOneHeartAtTop(t *testing.T) {
	w := newCatchWorld(nil)

	id, ok := w.spawner.Spawn()
	if !ok {
		t.Fatal("spawn should succeed")
	}

	pos, found := ecs.GetComponent[*components.PositionComponent](w.em, id)
	if !found {
		t.Fatal("spawned heart should have a position")
	}
	if pos.Y != -10 {
		t.Errorf("spawn y: got %.1f, want -10", pos.Y)
	}
	if pos.X < 0 || pos.X >= 90 {
		t.Errorf("spawn x %.2f outside [0, 90)", pos.X)
	}
	if len(w.hearts()) != 1 {
		t.Errorf("expected exactly 1 heart, got %d", len(w.hearts()))
	}

	heart, _ := ecs.GetComponent[*components.HeartComponent](w.em, id)
	if heart.Sequence != 1 {
		t.Errorf("first heart sequence: got %d, want 1", heart.Sequence)
	}
}

func TestHeartSpawn_XRange(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	cfg.MaxActiveHearts = 0
	w := newCatchWorld(cfg)

	for i := 0; i < 1000; i++ {
		id, _ := w.spawner.Spawn()
		pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
		if pos.X < 0 || pos.X >= 90 {
			t.Fatalf("spawn x %.4f outside [0, 90)", pos.X)
		}
	}
	if w.spawner.SpawnedCount() != 1000 {
		t.Errorf("SpawnedCount: got %d, want 1000", w.spawner.SpawnedCount())
	}
}

func TestHeartSpawn_CapSkipsSpawn(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	cfg.MaxActiveHearts = 3
	w := newCatchWorld(cfg)

	for i := 0; i < 3; i++ {
		if _, ok := w.spawner.Spawn(); !ok {
			t.Fatalf("spawn %d should succeed below cap", i+1)
		}
	}
	if _, ok := w.spawner.Spawn(); ok {
		t.Error("spawn at cap should be skipped")
	}
	if w.spawner.ActiveCount() != 3 {
		t.Errorf("ActiveCount: got %d, want 3", w.spawner.ActiveCount())
	}

	// 移除一颗后可以再生成
	w.em.DestroyEntity(w.hearts()[0])
	if _, ok := w.spawner.Spawn(); !ok {
		t.Error("spawn should succeed once a heart is marked for removal")
	}
}

func TestHeartSpawn_Reset(t *testing.T) {
	w := newCatchWorld(nil)
	w.spawner.Spawn()
	w.spawner.Spawn()

	w.spawner.Reset()
	if w.spawner.SpawnedCount() != 0 {
		t.Errorf("SpawnedCount after reset: got %d", w.spawner.SpawnedCount())
	}
}
