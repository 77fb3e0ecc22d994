package systems

import (
	"github.com/decker502/heartcatch/pkg/components"
	"github.com/decker502/heartcatch/pkg/ecs"
)

// DriftHeartSystem 推进装饰爱心
type DriftHeartSystem struct {
	entityManager *ecs.EntityManager
}

// NewDriftHeartSystem 创建装饰爱心系统
func NewDriftHeartSystem(em *ecs.EntityManager) *DriftHeartSystem {
	return &DriftHeartSystem{entityManager: em}
}

// NewDriftHeart 在 (x, y) 创建一颗装饰爱心
func NewDriftHeart(em *ecs.EntityManager, x, y float64, drift components.DriftHeartComponent) ecs.EntityID {
	id := em.CreateEntity()
	drift.StartX, drift.StartY = x, y
	ecs.AddComponent(em, id, &drift)
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	return id
}

// Update 移动装饰爱心，到期的销毁或循环
func (s *DriftHeartSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.DriftHeartComponent, *components.PositionComponent](s.entityManager) {
		drift, _ := ecs.GetComponent[*components.DriftHeartComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if drift.Delay > 0 {
			drift.Delay -= deltaTime
			continue
		}

		drift.Age += deltaTime
		pos.X += drift.VelocityX * deltaTime
		pos.Y += drift.VelocityY * deltaTime

		if drift.Age < drift.Lifetime {
			continue
		}
		if drift.Repeat {
			drift.Age = 0
			pos.X, pos.Y = drift.StartX, drift.StartY
			continue
		}
		s.entityManager.DestroyEntity(id)
	}

	s.entityManager.RemoveMarkedEntities()
}
