package stage

import (
	"fmt"
	"log/slog"
)

const (
	// DefaultMaxEntities is the entity capacity used by NewDefaultScene.
	DefaultMaxEntities = 4096
	// MaxEntitiesLimit is the largest capacity a Scene accepts. The top of
	// the uint32 range is reserved for InvalidEntity.
	MaxEntitiesLimit = 1 << 24
)

// Option configures a Scene at construction time.
type Option func(*config)

type config struct {
	logger            *slog.Logger
	events            *EventBus
	registry          *Registry
	maxComponentTypes int
}

func defaultConfig() config {
	return config{
		logger:            slog.New(slog.DiscardHandler),
		registry:          defaultRegistry,
		maxComponentTypes: MaxComponentTypes,
	}
}

// WithLogger sets the structured logger used by the scene. A nil logger
// keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithEventBus makes the scene publish lifecycle events (EntityCreated,
// EntityDestroyed, ComponentAdded, ComponentRemoved) on bus.
func WithEventBus(bus *EventBus) Option {
	return func(c *config) {
		c.events = bus
	}
}

// WithRegistry resolves component types through r instead of the default
// process-wide registry.
func WithRegistry(r *Registry) Option {
	return func(c *config) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithMaxComponentTypes caps the ComponentTypeIDs the scene will store.
// Using a component type whose id is at or above n panics. It panics if n is
// outside [1, MaxComponentTypes].
func WithMaxComponentTypes(n int) Option {
	if n < 1 || n > MaxComponentTypes {
		panic(fmt.Sprintf("stage: max component types %d outside [1, %d]", n, MaxComponentTypes))
	}
	return func(c *config) {
		c.maxComponentTypes = n
	}
}
