package ecs

import (
	"reflect"
	"slices"
)

// EntityID 实体唯一标识
// 单调递增且永不复用，因此 ID 顺序即创建（到达）顺序
type EntityID uint64

// InvalidEntity 保留的无效 ID
const InvalidEntity EntityID = 0

// EntityManager 管理一局游戏内的全部实体与组件
//
// 所有方法都假定在同一逻辑线程上调用（Ebitengine 的 Update 或终端主循环），
// 因此内部不加锁。
type EntityManager struct {
	nextID uint64
	// EntityID -> 组件类型 -> 组件实例
	components map[EntityID]map[reflect.Type]any
	// 本帧标记删除、尚未清理的实体
	entitiesToDestroy []EntityID
	destroyMarks      map[EntityID]struct{}
}

// NewEntityManager 创建空的实体管理器，ID 从 1 开始
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1,
		components:        make(map[EntityID]map[reflect.Type]any),
		entitiesToDestroy: make([]EntityID, 0),
		destroyMarks:      make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回其 ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// DestroyEntity 标记实体待删除，真正删除发生在 RemoveMarkedEntities
// 重复标记同一实体只记录一次
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, exists := em.components[id]; !exists {
		return
	}
	if _, marked := em.destroyMarks[id]; marked {
		return
	}
	em.destroyMarks[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsMarkedForDestroy 实体是否已被标记删除
func (em *EntityManager) IsMarkedForDestroy(id EntityID) bool {
	_, marked := em.destroyMarks[id]
	return marked
}

// Exists 实体是否仍存在（含已标记但未清理的实体）
func (em *EntityManager) Exists(id EntityID) bool {
	_, exists := em.components[id]
	return exists
}

// AddComponent 为实体添加组件，同类型组件会被覆盖
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent 移除实体的指定类型组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent 按类型获取组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有指定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, found := em.GetComponent(id, componentType)
	return found
}

// RemoveMarkedEntities 清理所有标记删除的实体，返回清理数量
func (em *EntityManager) RemoveMarkedEntities() int {
	removed := len(em.entitiesToDestroy)
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
		delete(em.destroyMarks, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
	return removed
}

// Clear 删除全部实体（重开一局时使用）
// ID 计数器不回退，旧 ID 不会被新实体复用
func (em *EntityManager) Clear() {
	clear(em.components)
	clear(em.destroyMarks)
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// EntityCount 当前实体数量（含已标记未清理的实体）
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// GetEntitiesWith 查询拥有全部指定组件类型的实体
// 结果按 ID 升序，即按创建顺序
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	slices.Sort(result)
	return result
}

// ============================================================================
// 泛型辅助函数
// ============================================================================

// AddComponent 泛型版本的组件添加
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.AddComponent(id, component)
}

// GetComponent 泛型版本的组件获取，省去调用方的类型断言
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, found := em.GetComponent(id, reflect.TypeFor[T]())
	if !found {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponent 泛型版本的组件检查
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, reflect.TypeFor[T]())
}

// GetEntitiesWith1 查询拥有组件 T 的实体（按创建顺序）
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(reflect.TypeFor[T]())
}

// GetEntitiesWith2 查询同时拥有组件 T1、T2 的实体（按创建顺序）
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(reflect.TypeFor[T1](), reflect.TypeFor[T2]())
}
