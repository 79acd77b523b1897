// Profiling:
// go build ./profile/views
// go tool pprof -http=":8000" -nodefraction=0.001 ./views cpu.pprof

package main

import (
	"github.com/edwinsyarief/stage"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 1000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

// run iterates a four-component view over a scene where every other entity
// is missing comp4, so the scan has to skip half the slots.
func run(rounds, iters, numEntities int) {
	for range rounds {
		s := stage.NewScene(numEntities)
		for i := range numEntities {
			id, err := s.CreateEntity()
			if err != nil {
				panic(err)
			}
			stage.AddComponent(s, id, comp1{})
			stage.AddComponent(s, id, comp2{V: 1, W: 1})
			stage.AddComponent(s, id, comp3{})
			if i%2 == 0 {
				stage.AddComponent(s, id, comp4{})
			}
		}
		v := stage.NewView4[comp1, comp2, comp3, comp4](s)
		for range iters {
			v.Reset()
			for v.Next() {
				c1, c2, _, _ := v.Get()
				c1.V += c2.V
				c1.W += c2.W
			}
		}
		s.Close()
	}
}
