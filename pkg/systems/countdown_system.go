package systems

import (
	"log"

	"github.com/decker502/heartcatch/pkg/components"
	"github.com/decker502/heartcatch/pkg/ecs"
)

// CountdownSystem 每秒调用一次，推进剩余时间
type CountdownSystem struct {
	entityManager *ecs.EntityManager
	phaseEntity   ecs.EntityID
}

// NewCountdownSystem 创建倒计时系统
func NewCountdownSystem(em *ecs.EntityManager, phaseEntity ecs.EntityID) *CountdownSystem {
	return &CountdownSystem{
		entityManager: em,
		phaseEntity:   phaseEntity,
	}
}

// Tick 倒计时一秒
// 返回 true 表示本次触发了 Lost；终态下是空操作
func (s *CountdownSystem) Tick() bool {
	phase, ok := ecs.GetComponent[*components.CatchPhaseComponent](s.entityManager, s.phaseEntity)
	if !ok || !phase.IsRunning() {
		return false
	}

	lost := phase.CountDown()
	if lost {
		log.Printf("[CountdownSystem] Time up with score %d/%d -> %v", phase.Score, phase.Target, phase.Phase)
	}
	return lost
}
