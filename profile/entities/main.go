// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/stage"
	"github.com/pkg/profile"
)

type position struct {
	X, Y int64
}

type velocity struct {
	X, Y int64
}

func main() {
	rounds := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

// run churns a full scene: fill every slot, integrate once, destroy all.
func run(rounds, iters, numEntities int) {
	for range rounds {
		s := stage.NewScene(numEntities)
		for range iters {
			for {
				id, err := s.CreateEntity()
				if err != nil {
					break
				}
				stage.AddComponent(s, id, position{})
				stage.AddComponent(s, id, velocity{X: 1, Y: 1})
			}
			v := stage.NewView2[position, velocity](s)
			for v.Next() {
				p, vel := v.Get()
				p.X += vel.X
				p.Y += vel.Y
			}
			s.Clear()
		}
		s.Close()
	}
}
