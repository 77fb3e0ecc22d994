package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/heartcatch/pkg/components"
	"github.com/decker502/heartcatch/pkg/config"
	"github.com/decker502/heartcatch/pkg/ecs"
	"github.com/decker502/heartcatch/pkg/systems"
)

// 调度器驱动名称
const (
	driverFrame     = "frame"
	driverSpawn     = "spawn"
	driverCountdown = "countdown"
)

// CatchSession 一局接爱心小游戏的控制器
//
// 拥有本局的全部状态（实体、桶、阶段记录）和三个周期驱动：
// 每帧模拟、生成、每秒倒计时。生命周期：
//
//	NewCatchSession -> Start -> (Update ...) -> Won/Lost -> Dismiss
//	Restart = Stop + 重置 + Start
//
// 驱动按 帧模拟 -> 生成 -> 倒计时 的顺序注册，因此同一次 Update 中
// 分数达标与时间耗尽同时发生时，Won 优先。
type CatchSession struct {
	config *config.CatchConfig

	entityManager *ecs.EntityManager
	scheduler     *Scheduler

	catcherEntity ecs.EntityID
	phaseEntity   ecs.EntityID

	inputSystem     *systems.CatcherInputSystem
	spawnSystem     *systems.HeartSpawnSystem
	fallSystem      *systems.HeartFallSystem
	countdownSystem *systems.CountdownSystem

	rng *rand.Rand

	// 回调（由外部提供，均可为 nil）
	onStep    func(systems.StepResult)
	onFinish  func(components.CatchPhase)
	onRestart func()

	dismissed bool
}

// SessionOption 会话构造选项
type SessionOption func(*CatchSession)

// WithRand 指定随机源（测试用固定种子）
func WithRand(rng *rand.Rand) SessionOption {
	return func(s *CatchSession) {
		s.rng = rng
	}
}

// WithStepListener 每帧模拟后回调，用于播放接住音效等反馈
func WithStepListener(fn func(systems.StepResult)) SessionOption {
	return func(s *CatchSession) {
		s.onStep = fn
	}
}

// WithFinishListener 进入终态时回调一次
func WithFinishListener(fn func(components.CatchPhase)) SessionOption {
	return func(s *CatchSession) {
		s.onFinish = fn
	}
}

// WithRestartCallback 玩家关闭结算浮层时调用（无参数）
// 之后的导航由调用方决定
func WithRestartCallback(fn func()) SessionOption {
	return func(s *CatchSession) {
		s.onRestart = fn
	}
}

// NewCatchSession 创建一局处于 Running、尚未启动驱动的会话
// cfg 为 nil 时使用默认参数
func NewCatchSession(cfg *config.CatchConfig, opts ...SessionOption) *CatchSession {
	if cfg == nil {
		cfg = config.DefaultCatchConfig()
	}

	s := &CatchSession{
		config:        cfg,
		entityManager: ecs.NewEntityManager(),
		scheduler:     NewScheduler(),
	}
	for _, opt := range opts {
		opt(s)
	}

	em := s.entityManager
	s.catcherEntity = systems.NewCatcherEntity(em, cfg)
	s.phaseEntity = em.CreateEntity()
	ecs.AddComponent(em, s.phaseEntity, components.NewCatchPhaseComponent(cfg.TargetScore, cfg.SessionSeconds))

	s.inputSystem = systems.NewCatcherInputSystem(em, s.catcherEntity)
	s.spawnSystem = systems.NewHeartSpawnSystem(em, cfg, s.rng)
	s.fallSystem = systems.NewHeartFallSystem(em, cfg, s.catcherEntity, s.phaseEntity)
	s.countdownSystem = systems.NewCountdownSystem(em, s.phaseEntity)

	s.scheduler.EveryFrame(driverFrame, s.stepFrame)
	s.scheduler.Every(driverSpawn, cfg.SpawnInterval(), s.spawnHeart)
	s.scheduler.Every(driverCountdown, time.Second, s.tickCountdown)

	log.Printf("[CatchSession] Created: target=%d, duration=%ds", cfg.TargetScore, cfg.SessionSeconds)
	return s
}

// Start 启动三个驱动
// 已进入终态的会话需要 Restart 而不是 Start
func (s *CatchSession) Start() {
	if s.phase().IsTerminal() {
		log.Printf("[CatchSession] Start ignored: session already %v", s.phase().Phase)
		return
	}
	s.scheduler.Start()
	log.Printf("[CatchSession] Started")
}

// Stop 同时取消全部驱动；可重复调用，未启动时也安全
func (s *CatchSession) Stop() {
	if s.scheduler.IsRunning() {
		log.Printf("[CatchSession] Stopped")
	}
	s.scheduler.Stop()
}

// Restart 停止、重置全部状态并重新启动
func (s *CatchSession) Restart() {
	s.Stop()
	s.reset()
	s.Start()
}

func (s *CatchSession) reset() {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith1[*components.HeartComponent](em) {
		em.DestroyEntity(id)
	}
	em.RemoveMarkedEntities()

	s.phase().Reset(s.config.TargetScore, s.config.SessionSeconds)
	s.inputSystem.SetPosition(s.config.Catcher.Initial)
	s.spawnSystem.Reset()
	s.dismissed = false

	log.Printf("[CatchSession] Reset: score=0, time=%ds, catcher=%.0f",
		s.config.SessionSeconds, s.config.Catcher.Initial)
}

// Update 推进 deltaTime 秒；驱动停止后是空操作
func (s *CatchSession) Update(deltaTime float64) {
	s.scheduler.Advance(deltaTime)
}

// MoveLeft 方向键左
func (s *CatchSession) MoveLeft() {
	s.inputSystem.MoveLeft()
}

// MoveRight 方向键右
func (s *CatchSession) MoveRight() {
	s.inputSystem.MoveRight()
}

// PointTo 指针/触摸位置（相对游戏区域的像素坐标与区域宽度）
func (s *CatchSession) PointTo(fieldX, fieldWidth float64) {
	s.inputSystem.PointTo(fieldX, fieldWidth)
}

// Dismiss 玩家关闭结算浮层
// 仅在终态下有效，重启回调最多调用一次
func (s *CatchSession) Dismiss() {
	if !s.phase().IsTerminal() || s.dismissed {
		return
	}
	s.dismissed = true
	log.Printf("[CatchSession] Result dismissed (%v)", s.phase().Phase)
	if s.onRestart != nil {
		s.onRestart()
	}
}

// Phase 当前阶段
func (s *CatchSession) Phase() components.CatchPhase {
	return s.phase().Phase
}

// IsFinished 是否已进入终态
func (s *CatchSession) IsFinished() bool {
	return s.phase().IsTerminal()
}

// Finished 返回终态；仍在进行中时 ok 为 false
func (s *CatchSession) Finished() (phase components.CatchPhase, ok bool) {
	p := s.phase()
	return p.Phase, p.IsTerminal()
}

// IsRunning 驱动是否在运行
func (s *CatchSession) IsRunning() bool {
	return s.scheduler.IsRunning()
}

// Config 本局参数
func (s *CatchSession) Config() *config.CatchConfig {
	return s.config
}

// HeartView 渲染用的爱心快照
type HeartView struct {
	ID ecs.EntityID
	X  float64
	Y  float64
}

// Snapshot 渲染用的只读快照
type Snapshot struct {
	Phase         components.CatchPhase
	Score         int
	Target        int
	TimeRemaining int
	Catcher       float64
	Hearts        []HeartView // 按到达顺序
}

// Snapshot 生成当前状态快照
// 返回值与内部状态不共享内存
func (s *CatchSession) Snapshot() Snapshot {
	phase := s.phase()
	snap := Snapshot{
		Phase:         phase.Phase,
		Score:         phase.Score,
		Target:        phase.Target,
		TimeRemaining: phase.TimeRemaining,
		Catcher:       s.inputSystem.Position(),
	}

	ids := ecs.GetEntitiesWith2[*components.HeartComponent, *components.PositionComponent](s.entityManager)
	snap.Hearts = make([]HeartView, 0, len(ids))
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		snap.Hearts = append(snap.Hearts, HeartView{ID: id, X: pos.X, Y: pos.Y})
	}
	return snap
}

// ============================================================================
// 驱动回调
// ============================================================================

func (s *CatchSession) stepFrame() {
	result := s.fallSystem.Step()
	if s.onStep != nil && (len(result.Caught) > 0 || len(result.Pruned) > 0 || result.Won) {
		s.onStep(result)
	}
	if result.Won {
		s.finish()
	}
}

func (s *CatchSession) spawnHeart() {
	if !s.phase().IsRunning() {
		return
	}
	s.spawnSystem.Spawn()
}

func (s *CatchSession) tickCountdown() {
	if s.countdownSystem.Tick() {
		s.finish()
	}
}

// finish 进入终态：停止全部驱动并通知监听者
func (s *CatchSession) finish() {
	s.scheduler.Stop()
	phase := s.phase()
	log.Printf("[CatchSession] Finished: %v with score %d/%d, %ds left",
		phase.Phase, phase.Score, phase.Target, phase.TimeRemaining)
	if s.onFinish != nil {
		s.onFinish(phase.Phase)
	}
}

func (s *CatchSession) phase() *components.CatchPhaseComponent {
	phase, _ := ecs.GetComponent[*components.CatchPhaseComponent](s.entityManager, s.phaseEntity)
	return phase
}
