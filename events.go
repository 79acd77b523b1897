package stage

import "reflect"

// MaxEventTypes is the number of distinct event types an EventBus accepts.
const MaxEventTypes = 256

// EntityCreated is published after an entity slot becomes live.
type EntityCreated struct {
	Entity EntityID
}

// EntityDestroyed is published after an entity's components have been
// removed and its slot returned to the free set.
type EntityDestroyed struct {
	Entity EntityID
}

// ComponentAdded is published after a component is stored on an entity,
// including when it replaces an existing value of the same type.
type ComponentAdded struct {
	Entity EntityID
	Type   ComponentTypeID
}

// ComponentRemoved is published after a component is detached, either
// explicitly or while its entity is destroyed.
type ComponentRemoved struct {
	Entity EntityID
	Type   ComponentTypeID
}

// EventBus is a synchronous, type-keyed publish/subscribe hub. Handlers run
// on the publishing goroutine in subscription order. The zero value is ready
// to use.
type EventBus struct {
	eventTypeMap    map[reflect.Type]uint8
	handlers        [MaxEventTypes][]any
	nextEventTypeID int
}

// Subscribe registers handler for events of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	id := bus.eventTypeID(reflect.TypeFor[T]())
	if cap(bus.handlers[id]) == 0 {
		bus.handlers[id] = make([]any, 0, 4)
	}
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish calls every handler subscribed to T with event.
func Publish[T any](bus *EventBus, event T) {
	id, ok := bus.eventTypeMap[reflect.TypeFor[T]()]
	if !ok {
		return
	}
	for _, h := range bus.handlers[id] {
		h.(func(T))(event)
	}
}

// eventTypeID retrieves or assigns an id for t.
func (bus *EventBus) eventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	if bus.nextEventTypeID >= MaxEventTypes {
		panic("stage: too many event types")
	}
	id := uint8(bus.nextEventTypeID)
	bus.nextEventTypeID++
	bus.eventTypeMap[t] = id
	return id
}
