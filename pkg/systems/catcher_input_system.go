package systems

import (
	"log"

	"github.com/decker502/heartcatch/pkg/components"
	"github.com/decker502/heartcatch/pkg/config"
	"github.com/decker502/heartcatch/pkg/ecs"
)

// CatcherInputSystem 把离散（方向键）和连续（指针/触摸）输入统一为桶的位置
//
// 不做排队也不做插值：最后一次写入生效。
// 它是 CatcherComponent.Position 的唯一写入者。
type CatcherInputSystem struct {
	entityManager *ecs.EntityManager
	catcherEntity ecs.EntityID
}

// NewCatcherInputSystem 创建输入系统
func NewCatcherInputSystem(em *ecs.EntityManager, catcherEntity ecs.EntityID) *CatcherInputSystem {
	return &CatcherInputSystem{
		entityManager: em,
		catcherEntity: catcherEntity,
	}
}

// NewCatcherEntity 创建桶实体，初始位置取自配置
func NewCatcherEntity(em *ecs.EntityManager, cfg *config.CatchConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CatcherComponent{
		Position: cfg.Catcher.Initial,
		Min:      cfg.Catcher.Min,
		Max:      cfg.Catcher.Max,
		Step:     cfg.Catcher.Step,
	})
	return id
}

// MoveLeft 向左移动一步
func (s *CatcherInputSystem) MoveLeft() {
	if catcher := s.catcher(); catcher != nil {
		s.set(catcher, catcher.Position-catcher.Step)
	}
}

// MoveRight 向右移动一步
func (s *CatcherInputSystem) MoveRight() {
	if catcher := s.catcher(); catcher != nil {
		s.set(catcher, catcher.Position+catcher.Step)
	}
}

// PointTo 将指针在游戏区域内的像素坐标线性映射为桶位置
//
// 参数:
//   - fieldX: 指针相对游戏区域左边缘的像素坐标
//   - fieldWidth: 游戏区域像素宽度，非正值时忽略本次输入
func (s *CatcherInputSystem) PointTo(fieldX, fieldWidth float64) {
	if fieldWidth <= 0 {
		return
	}
	if catcher := s.catcher(); catcher != nil {
		s.set(catcher, fieldX/fieldWidth*config.FieldPercent)
	}
}

// SetPosition 直接设置位置（重开一局时复位）
func (s *CatcherInputSystem) SetPosition(position float64) {
	if catcher := s.catcher(); catcher != nil {
		s.set(catcher, position)
	}
}

// Position 当前桶位置
func (s *CatcherInputSystem) Position() float64 {
	if catcher := s.catcher(); catcher != nil {
		return catcher.Position
	}
	return 0
}

func (s *CatcherInputSystem) catcher() *components.CatcherComponent {
	catcher, ok := ecs.GetComponent[*components.CatcherComponent](s.entityManager, s.catcherEntity)
	if !ok {
		log.Printf("[CatcherInputSystem] WARNING: catcher entity %d has no CatcherComponent", s.catcherEntity)
		return nil
	}
	return catcher
}

func (s *CatcherInputSystem) set(catcher *components.CatcherComponent, position float64) {
	catcher.Position = clamp(position, catcher.Min, catcher.Max)
}

// clamp 将 v 限制在 [lo, hi]
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
