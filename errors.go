package stage

import "github.com/rotisserie/eris"

var (
	// ErrNoAvailableEntity is returned by CreateEntity when every entity
	// slot of the scene is live.
	ErrNoAvailableEntity = eris.New("stage: no available entity slots")
	// ErrSceneClosed is returned when allocating from a scene after Close.
	ErrSceneClosed = eris.New("stage: scene closed")
	// ErrNoCurrentScene is returned by Current when no scene has been set.
	ErrNoCurrentScene = eris.New("stage: no current scene")
)
