// Package stage provides a fixed-capacity Entity-Component storage engine.
//
// A Scene holds every live entity, one fixed-size component pool per
// component type in use and a signature bitmask per entity slot. Entity IDs
// are dense and reused: the lowest free slot is always allocated first, so an
// EntityID must not be retained past the destruction of its entity.
//
// Scenes are not safe for concurrent use. All access to a Scene, its Entity
// handles and its views must happen on one goroutine.
package stage

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/edwinsyarief/stage/internal/bitvec"
	"github.com/rotisserie/eris"
)

// EntityID is a dense index into a Scene's entity slots.
type EntityID uint32

// InvalidEntity is the sentinel for "no entity".
const InvalidEntity EntityID = math.MaxUint32

// Scene owns the component pools, the per-entity signature table and the
// set of available entity slots.
type Scene struct {
	pools      []*pool     // indexed by ComponentTypeID, grown on first use
	signatures []Signature // one per entity slot
	free       *bitvec.V   // set bit = slot available
	registry   *Registry
	logger     *slog.Logger
	events     *EventBus
	resources  Resources
	main       EntityID
	maxTypes   int
	closed     bool
}

// NewScene creates a scene with room for maxEntities live entities. The
// capacity is fixed for the life of the scene. It panics if maxEntities is
// outside [1, MaxEntitiesLimit].
func NewScene(maxEntities int, opts ...Option) *Scene {
	if maxEntities < 1 || maxEntities > MaxEntitiesLimit {
		panic(fmt.Sprintf("stage: max entities %d outside [1, %d]", maxEntities, MaxEntitiesLimit))
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Scene{
		pools:      make([]*pool, 0, 16),
		signatures: make([]Signature, maxEntities),
		free:       bitvec.New(maxEntities, true),
		registry:   cfg.registry,
		logger:     cfg.logger,
		events:     cfg.events,
		main:       InvalidEntity,
		maxTypes:   cfg.maxComponentTypes,
	}
	s.logger.Debug("scene created", "max_entities", maxEntities, "max_component_types", s.maxTypes)
	return s
}

// NewDefaultScene creates a scene with DefaultMaxEntities slots.
func NewDefaultScene(opts ...Option) *Scene {
	return NewScene(DefaultMaxEntities, opts...)
}

// Capacity returns the maximum number of live entities.
func (s *Scene) Capacity() int {
	return len(s.signatures)
}

// Len returns the number of live entities.
func (s *Scene) Len() int {
	return s.free.Len() - s.free.Count()
}

// IsAlive reports whether id refers to a live entity.
func (s *Scene) IsAlive(id EntityID) bool {
	return int64(id) < int64(len(s.signatures)) && !s.free.IsSet(int(id))
}

// Registry returns the registry the scene resolves component types with.
func (s *Scene) Registry() *Registry {
	return s.registry
}

// Logger returns the scene's logger.
func (s *Scene) Logger() *slog.Logger {
	return s.logger
}

// Events returns the event bus lifecycle events are published on, or nil.
func (s *Scene) Events() *EventBus {
	return s.events
}

// Resources returns the scene's singleton resource store.
func (s *Scene) Resources() *Resources {
	return &s.resources
}

// Signature returns the component signature of id. Non-live ids have an
// empty signature.
func (s *Scene) Signature(id EntityID) Signature {
	if !s.IsAlive(id) {
		return Signature{}
	}
	return s.signatures[id]
}

// CreateEntity marks the lowest available slot live and returns its id. When
// every slot is live it returns InvalidEntity and an error matching
// ErrNoAvailableEntity.
func (s *Scene) CreateEntity() (EntityID, error) {
	if s.closed {
		return InvalidEntity, eris.Wrap(ErrSceneClosed, "create entity")
	}
	i := s.free.NextSet(0)
	if i < 0 {
		s.logger.Warn("entity capacity exhausted", "capacity", s.Capacity())
		return InvalidEntity, eris.Wrapf(ErrNoAvailableEntity, "capacity %d", s.Capacity())
	}
	s.free.Unset(i)
	id := EntityID(i)
	if s.events != nil {
		Publish(s.events, EntityCreated{Entity: id})
	}
	return id, nil
}

// DestroyEntity resets every component attached to id, in ascending type
// order, and returns the slot to the free set. It is a no-op for ids that
// are not live.
func (s *Scene) DestroyEntity(id EntityID) {
	if !s.IsAlive(id) {
		return
	}
	sig := &s.signatures[id]
	for c := sig.next(0); c >= 0; c = sig.next(c + 1) {
		s.detach(id, ComponentTypeID(c))
	}
	s.free.Set(int(id))
	if s.main == id {
		s.main = InvalidEntity
	}
	if s.events != nil {
		Publish(s.events, EntityDestroyed{Entity: id})
	}
}

// Clear destroys every live entity in ascending id order.
func (s *Scene) Clear() {
	for i := s.free.NextUnset(0); i >= 0; i = s.free.NextUnset(i + 1) {
		s.DestroyEntity(EntityID(i))
	}
}

// Close destroys every live entity and releases all component pools. The
// scene cannot allocate entities afterwards.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.Clear()
	var footprint uintptr
	for _, p := range s.pools {
		if p == nil {
			continue
		}
		footprint += p.bytes()
		p.release()
	}
	s.pools = nil
	s.resources.Clear()
	s.closed = true
	s.logger.Debug("scene closed", "released_bytes", footprint)
}

// MainEntity returns the cached main entity, or an Entity holding
// InvalidEntity when none is set.
func (s *Scene) MainEntity() Entity {
	return Entity{ID: s.main, scene: s}
}

// SetMainEntity caches id as the scene's main entity. InvalidEntity clears
// the cache. It panics if id is neither live nor InvalidEntity.
func (s *Scene) SetMainEntity(id EntityID) {
	if id != InvalidEntity {
		s.mustBeAlive(id, "SetMainEntity")
	}
	s.main = id
}

// detach resets the slot of component c for id and clears its bit.
func (s *Scene) detach(id EntityID, c ComponentTypeID) {
	s.pools[c].reset(id)
	s.signatures[id].Unset(c)
	if s.events != nil {
		Publish(s.events, ComponentRemoved{Entity: id, Type: c})
	}
}

// pool returns the pool for c, or nil if c has never been used in s.
func (s *Scene) pool(c ComponentTypeID) *pool {
	if int(c) >= len(s.pools) {
		return nil
	}
	return s.pools[c]
}

// poolFor returns the pool for info, allocating it on first use.
func (s *Scene) poolFor(info *typeInfo) *pool {
	if int(info.id) >= s.maxTypes {
		panic(fmt.Sprintf("stage: component %s has type id %d, scene allows %d types", info.typ, info.id, s.maxTypes))
	}
	if n := int(info.id) + 1; n > len(s.pools) {
		s.pools = append(s.pools, make([]*pool, n-len(s.pools))...)
	}
	p := s.pools[info.id]
	if p == nil {
		p = newPool(info, s.Capacity())
		s.pools[info.id] = p
		s.logger.Debug("component pool allocated",
			"component", info.typ.String(),
			"type_id", info.id,
			"bytes", p.bytes())
	}
	return p
}

func (s *Scene) mustBeAlive(id EntityID, op string) {
	if !s.IsAlive(id) {
		panic(fmt.Sprintf("stage: %s on non-live entity %d", op, id))
	}
}
