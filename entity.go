package stage

import "fmt"

// Entity is a lightweight handle pairing an EntityID with the Scene it lives
// in. It does not own the scene and becomes meaningless once its id is
// destroyed; a later CreateEntity may hand the same id to a new entity.
type Entity struct {
	scene *Scene
	ID    EntityID
}

// NewEntity allocates a new entity in s and returns a handle to it.
func NewEntity(s *Scene) (Entity, error) {
	id, err := s.CreateEntity()
	if err != nil {
		return Entity{ID: InvalidEntity, scene: s}, err
	}
	return Entity{ID: id, scene: s}, nil
}

// Entity wraps an existing id of s without allocating.
func (s *Scene) Entity(id EntityID) Entity {
	return Entity{ID: id, scene: s}
}

// Scene returns the scene the handle refers to.
func (e Entity) Scene() *Scene { return e.scene }

// Valid reports whether the handle holds an id other than InvalidEntity.
func (e Entity) Valid() bool { return e.ID != InvalidEntity }

// Alive reports whether the handle's id is live in its scene.
func (e Entity) Alive() bool { return e.scene != nil && e.scene.IsAlive(e.ID) }

// Destroy destroys the entity. It is a no-op if the entity is not live.
func (e Entity) Destroy() {
	e.mustHaveScene("Destroy")
	e.scene.DestroyEntity(e.ID)
}

func (e Entity) String() string {
	if e.ID == InvalidEntity {
		return "Entity(invalid)"
	}
	return fmt.Sprintf("Entity(%d)", e.ID)
}

func (e Entity) mustHaveScene(op string) {
	if e.scene == nil {
		panic("stage: Entity." + op + " on handle without scene")
	}
}

// Add forwards to AddComponent.
func Add[T any](e Entity, val T) *T {
	e.mustHaveScene("Add")
	return AddComponent(e.scene, e.ID, val)
}

// Get forwards to GetComponent.
func Get[T any](e Entity) *T {
	e.mustHaveScene("Get")
	return GetComponent[T](e.scene, e.ID)
}

// TryGet forwards to TryGetComponent.
func TryGet[T any](e Entity) (*T, bool) {
	e.mustHaveScene("TryGet")
	return TryGetComponent[T](e.scene, e.ID)
}

// Has forwards to HasComponent.
func Has[T any](e Entity) bool {
	e.mustHaveScene("Has")
	return HasComponent[T](e.scene, e.ID)
}

// Remove forwards to RemoveComponent.
func Remove[T any](e Entity) {
	e.mustHaveScene("Remove")
	RemoveComponent[T](e.scene, e.ID)
}
