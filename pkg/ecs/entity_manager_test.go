package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestGenericComponentHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 1, Y: 2})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("GetComponent should find *testPositionComponent")
	}
	pos.Y = 42

	again, _ := GetComponent[*testPositionComponent](em, id)
	if again.Y != 42 {
		t.Errorf("Component should be shared by pointer, got Y=%.0f", again.Y)
	}

	if HasComponent[*testVelocityComponent](em, id) {
		t.Error("Entity should not have velocity component")
	}
	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("GetComponent should report missing velocity component")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should still exist before cleanup")
	}
	if !em.IsMarkedForDestroy(id) {
		t.Error("Entity should be marked for destroy")
	}

	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Expected 1 removed entity, got %d", removed)
	}
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.IsMarkedForDestroy(id) {
		t.Error("Destroy mark should be cleared after cleanup")
	}
}

func TestDestroyEntityTwiceCountsOnce(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Double destroy should be removed once, got %d", removed)
	}

	// 已删除实体再次标记无效果
	em.DestroyEntity(id)
	if removed := em.RemoveMarkedEntities(); removed != 0 {
		t.Errorf("Destroying a removed entity should be a no-op, got %d", removed)
	}
}

func TestGetEntitiesWithIsOrderedByCreation(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 50)
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
		ids = append(ids, id)
	}

	got := GetEntitiesWith1[*testPositionComponent](em)
	if len(got) != len(ids) {
		t.Fatalf("Expected %d entities, got %d", len(ids), len(got))
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Fatalf("Entity order mismatch at %d: got %d, want %d", i, got[i], ids[i])
		}
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testVelocityComponent{})

	both := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("Expected only id1 with both components, got %v", both)
	}

	posEntities := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	if len(posEntities) != 2 {
		t.Errorf("Expected 2 entities with Position component, got %d", len(posEntities))
	}
}

func TestClearKeepsIDsMonotonic(t *testing.T) {
	em := NewEntityManager()
	first := em.CreateEntity()
	em.CreateEntity()
	em.DestroyEntity(first)

	em.Clear()

	if em.EntityCount() != 0 {
		t.Errorf("Expected no entities after Clear, got %d", em.EntityCount())
	}
	if em.RemoveMarkedEntities() != 0 {
		t.Error("Clear should drop pending destroy marks")
	}

	next := em.CreateEntity()
	if next <= first {
		t.Errorf("IDs must not be reused after Clear: got %d after %d", next, first)
	}
}
