package systems

import (
	"log"

	"github.com/decker502/heartcatch/pkg/components"
	"github.com/decker502/heartcatch/pkg/config"
	"github.com/decker502/heartcatch/pkg/ecs"
)

// StepResult 单帧模拟的结果，渲染层据此播放反馈
type StepResult struct {
	Caught []ecs.EntityID // 本帧被接住的爱心，按到达顺序
	Pruned []ecs.EntityID // 本帧掉出场外的爱心
	Won    bool           // 本帧是否达成胜利
}

// HeartFallSystem 每帧推进所有爱心并判定接住/掉落
//
// 每帧处理顺序（按爱心到达顺序逐个处理）：
//  1. y += fallSpeed
//  2. 位于接住区间且在桶的水平范围内 -> 计分并移除
//  3. 否则 y >= pruneY -> 静默移除，不扣分
//
// 接住与掉落对同一颗爱心互斥。被移除的实体在本帧结束时统一清理，
// 因此下一帧不会再看到它们。
type HeartFallSystem struct {
	entityManager *ecs.EntityManager
	catcherEntity ecs.EntityID
	phaseEntity   ecs.EntityID

	fallSpeed float64
	catchBand config.Band
	halfWidth float64
	pruneY    float64
}

// NewHeartFallSystem 创建下落模拟系统
func NewHeartFallSystem(em *ecs.EntityManager, cfg *config.CatchConfig, catcherEntity, phaseEntity ecs.EntityID) *HeartFallSystem {
	return &HeartFallSystem{
		entityManager: em,
		catcherEntity: catcherEntity,
		phaseEntity:   phaseEntity,
		fallSpeed:     cfg.FallSpeed,
		catchBand:     cfg.CatchBand,
		halfWidth:     cfg.CatcherHalfWidth,
		pruneY:        cfg.PruneY,
	}
}

// Step 执行一帧模拟
// 阶段不是 Running 时什么都不做（幂等）
func (s *HeartFallSystem) Step() StepResult {
	var result StepResult

	phase, ok := ecs.GetComponent[*components.CatchPhaseComponent](s.entityManager, s.phaseEntity)
	if !ok || !phase.IsRunning() {
		return result
	}

	catcher, ok := ecs.GetComponent[*components.CatcherComponent](s.entityManager, s.catcherEntity)
	if !ok {
		log.Printf("[HeartFallSystem] WARNING: catcher entity %d missing", s.catcherEntity)
		return result
	}

	for _, id := range ecs.GetEntitiesWith2[*components.HeartComponent, *components.PositionComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		pos.Y += s.fallSpeed

		if phase.IsRunning() && s.isCaught(pos, catcher.Position) {
			s.entityManager.DestroyEntity(id)
			result.Caught = append(result.Caught, id)
			if phase.RecordCatch() {
				result.Won = true
				log.Printf("[HeartFallSystem] Target %d reached -> %v", phase.Target, phase.Phase)
			}
			continue
		}

		if pos.Y >= s.pruneY {
			s.entityManager.DestroyEntity(id)
			result.Pruned = append(result.Pruned, id)
		}
	}

	s.entityManager.RemoveMarkedEntities()
	return result
}

// isCaught 接住判定，两个区间都是开区间
func (s *HeartFallSystem) isCaught(pos *components.PositionComponent, catcherX float64) bool {
	if !s.catchBand.Contains(pos.Y) {
		return false
	}
	return pos.X > catcherX-s.halfWidth && pos.X < catcherX+s.halfWidth
}
