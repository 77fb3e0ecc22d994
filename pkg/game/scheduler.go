package game

import (
	"log"
	"time"
)

// Scheduler 单线程协作式调度器
//
// 所有驱动（每帧驱动与定时驱动）都由宿主循环调用 Advance 推进：
// Ebitengine 的 Update 或终端前端的主循环。回调在 Advance 内同步执行，
// 彼此不会重叠，因此不需要加锁。
//
// 驱动在创建会话时注册一次；Stop 会同时取消全部驱动，Start 重新武装。
// 这保证每个会话中每种驱动最多只有一个实例在运行。
type Scheduler struct {
	drivers []*Driver
	running bool
}

// Driver 单个周期驱动
type Driver struct {
	name     string
	interval float64 // 秒；0 表示每帧触发
	elapsed  float64
	fn       func()
}

// Name 驱动名称
func (d *Driver) Name() string {
	return d.name
}

// NewScheduler 创建停止状态的调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		drivers: make([]*Driver, 0, 3),
	}
}

// EveryFrame 注册每次 Advance 都触发一次的驱动
func (s *Scheduler) EveryFrame(name string, fn func()) *Driver {
	return s.register(name, 0, fn)
}

// Every 注册按固定间隔触发的驱动
// 第一次触发发生在启动后满一个间隔时
func (s *Scheduler) Every(name string, interval time.Duration, fn func()) *Driver {
	if interval <= 0 {
		log.Printf("[Scheduler] WARNING: driver %q has non-positive interval %v, treating as per-frame", name, interval)
		return s.register(name, 0, fn)
	}
	return s.register(name, interval.Seconds(), fn)
}

func (s *Scheduler) register(name string, interval float64, fn func()) *Driver {
	d := &Driver{name: name, interval: interval, fn: fn}
	s.drivers = append(s.drivers, d)
	return d
}

// Start 启动全部驱动，已在运行时无效果
func (s *Scheduler) Start() {
	if s.running {
		return
	}
	for _, d := range s.drivers {
		d.elapsed = 0
	}
	s.running = true
}

// Stop 取消全部驱动
// 可重复调用；从未 Start 过也可以调用
func (s *Scheduler) Stop() {
	if !s.running {
		return
	}
	s.running = false
	for _, d := range s.drivers {
		d.elapsed = 0
	}
}

// IsRunning 调度器是否在运行
func (s *Scheduler) IsRunning() bool {
	return s.running
}

// Advance 推进 deltaTime 秒
//
// 驱动按注册顺序处理。回调中调用 Stop 会立即生效：
// 同一次 Advance 中后续的驱动不再触发。
// 定时驱动在 deltaTime 跨越多个间隔时会补触发多次。
func (s *Scheduler) Advance(deltaTime float64) {
	if !s.running {
		return
	}

	for _, d := range s.drivers {
		if !s.running {
			return
		}

		if d.interval == 0 {
			d.fn()
			continue
		}

		d.elapsed += deltaTime
		for s.running && d.elapsed >= d.interval {
			d.elapsed -= d.interval
			d.fn()
		}
	}
}
