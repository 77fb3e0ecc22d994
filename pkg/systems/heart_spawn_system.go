package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/heartcatch/pkg/components"
	"github.com/decker502/heartcatch/pkg/config"
	"github.com/decker502/heartcatch/pkg/ecs"
)

// HeartSpawnSystem 在游戏区域顶部生成爱心
//
// 生成节奏由调度器驱动（每个间隔调用一次 Spawn），本系统只负责创建实体。
// 它只追加实体，从不修改或删除已有爱心。
type HeartSpawnSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	spawnY        float64 // 初始 Y
	maxX          float64 // X ∈ [0, maxX)
	maxActive     int     // 0 表示不限制
	spawned       int     // 本局已生成数量
}

// NewHeartSpawnSystem 创建生成系统
// rng 为 nil 时使用随机种子
func NewHeartSpawnSystem(em *ecs.EntityManager, cfg *config.CatchConfig, rng *rand.Rand) *HeartSpawnSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	log.Printf("[HeartSpawnSystem] Initialized with interval=%dms, x=[0, %.0f), y=%.0f, cap=%d",
		cfg.SpawnIntervalMs, cfg.SpawnMaxX, cfg.SpawnY, cfg.MaxActiveHearts)
	return &HeartSpawnSystem{
		entityManager: em,
		rng:           rng,
		spawnY:        cfg.SpawnY,
		maxX:          cfg.SpawnMaxX,
		maxActive:     cfg.MaxActiveHearts,
	}
}

// Spawn 生成一颗爱心
// 达到上限时跳过，返回 false
func (s *HeartSpawnSystem) Spawn() (ecs.EntityID, bool) {
	if s.maxActive > 0 && s.ActiveCount() >= s.maxActive {
		log.Printf("[HeartSpawnSystem] Active heart cap %d reached, skipping spawn", s.maxActive)
		return ecs.InvalidEntity, false
	}

	x := s.rng.Float64() * s.maxX
	return s.SpawnAt(x), true
}

// SpawnAt 在指定 X 生成爱心，不检查上限
func (s *HeartSpawnSystem) SpawnAt(x float64) ecs.EntityID {
	s.spawned++

	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.HeartComponent{Sequence: s.spawned})
	ecs.AddComponent(s.entityManager, id, &components.PositionComponent{X: x, Y: s.spawnY})

	log.Printf("[HeartSpawnSystem] Spawned heart %d (#%d) at x=%.1f", id, s.spawned, x)
	return id
}

// ActiveCount 当前仍在场上的爱心数量（不含已标记删除的）
func (s *HeartSpawnSystem) ActiveCount() int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.HeartComponent](s.entityManager) {
		if !s.entityManager.IsMarkedForDestroy(id) {
			count++
		}
	}
	return count
}

// SpawnedCount 本局累计生成数量
func (s *HeartSpawnSystem) SpawnedCount() int {
	return s.spawned
}

// Reset 重置计数（新一局）
func (s *HeartSpawnSystem) Reset() {
	s.spawned = 0
}
