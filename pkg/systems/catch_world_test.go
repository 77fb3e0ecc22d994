package systems

import (
	"math/rand"

	"github.com/decker502/heartcatch/pkg/components"
	"github.com/decker502/heartcatch/pkg/config"
	"github.com/decker502/heartcatch/pkg/ecs"
)

// catchWorld 测试用的小游戏世界
type catchWorld struct {
	em        *ecs.EntityManager
	cfg       *config.CatchConfig
	catcher   ecs.EntityID
	phase     ecs.EntityID
	input     *CatcherInputSystem
	spawner   *HeartSpawnSystem
	fall      *HeartFallSystem
	countdown *CountdownSystem
}

func newCatchWorld(cfg *config.CatchConfig) *catchWorld {
	if cfg == nil {
		cfg = config.DefaultCatchConfig()
	}
	em := ecs.NewEntityManager()
	catcher := NewCatcherEntity(em, cfg)
	phase := em.CreateEntity()
	ecs.AddComponent(em, phase, components.NewCatchPhaseComponent(cfg.TargetScore, cfg.SessionSeconds))

	return &catchWorld{
		em:        em,
		cfg:       cfg,
		catcher:   catcher,
		phase:     phase,
		input:     NewCatcherInputSystem(em, catcher),
		spawner:   NewHeartSpawnSystem(em, cfg, rand.New(rand.NewSource(1))),
		fall:      NewHeartFallSystem(em, cfg, catcher, phase),
		countdown: NewCountdownSystem(em, phase),
	}
}

func (w *catchWorld) state() *components.CatchPhaseComponent {
	phase, _ := ecs.GetComponent[*components.CatchPhaseComponent](w.em, w.phase)
	return phase
}

func (w *catchWorld) heartY(id ecs.EntityID) (float64, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, id)
	if !ok {
		return 0, false
	}
	return pos.Y, true
}

func (w *catchWorld) hearts() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.HeartComponent](w.em)
}
