package systems

import (
	"github.com/decker502/heartcatch/pkg/components"
	"github.com/decker502/heartcatch/pkg/ecs"
)

// TypewriterSystem 按固定间隔逐字显示文本
type TypewriterSystem struct {
	entityManager *ecs.EntityManager
}

// NewTypewriterSystem 创建打字机系统
func NewTypewriterSystem(em *ecs.EntityManager) *TypewriterSystem {
	return &TypewriterSystem{entityManager: em}
}

// Update 推进所有已开始的打字机
func (s *TypewriterSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.TypewriterComponent](s.entityManager) {
		tw, _ := ecs.GetComponent[*components.TypewriterComponent](s.entityManager, id)
		if !tw.Started || tw.IsComplete {
			continue
		}

		tw.Elapsed += deltaTime
		for tw.Revealed < len(tw.Runes) && tw.Elapsed >= tw.Interval {
			tw.Elapsed -= tw.Interval
			tw.Revealed++
		}

		if tw.Revealed >= len(tw.Runes) {
			tw.IsComplete = true
			if tw.OnComplete != nil {
				tw.OnComplete()
			}
		}
	}
}

// Start 开始显示
func (s *TypewriterSystem) Start(id ecs.EntityID) {
	if tw, ok := ecs.GetComponent[*components.TypewriterComponent](s.entityManager, id); ok {
		tw.Started = true
	}
}
