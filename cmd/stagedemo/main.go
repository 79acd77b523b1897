// stagedemo draws a small lit scene in the terminal: a camera, a sun, a
// wandering lamp and a ring of orbiting meshes. Build:
//
//	go build -o stagedemo ./cmd/stagedemo
//
// Usage:
//
//	./stagedemo [--entities 64] [--fps 20] [--log stagedemo.log] [--debug]
//
// Press q or Esc to quit.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/edwinsyarief/stage"
	"github.com/edwinsyarief/stage/component"
	"github.com/edwinsyarief/stage/linear"
	"github.com/edwinsyarief/stage/render"
	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"
)

func main() {
	entities := flag.Int("entities", 64, "Scene capacity")
	fps := flag.Int("fps", 20, "Frames per second")
	logFile := flag.String("log", "", "Write structured logs to this file")
	debug := flag.Bool("debug", false, "Log at debug level")
	flag.Parse()

	logger, closeLog, err := newLogger(*logFile, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", eris.ToString(err, false))
		os.Exit(1)
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", eris.ToString(eris.Wrap(err, "create screen"), false))
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", eris.ToString(eris.Wrap(err, "init screen"), false))
		os.Exit(1)
	}
	defer screen.Fini()

	s := stage.NewScene(*entities, stage.WithLogger(logger))
	defer s.Close()
	if err := populate(s); err != nil {
		logger.Error("populate scene", "err", eris.ToJSON(err, false))
	}
	run(screen, s, render.NewRenderer(screen, logger), time.Second/time.Duration(max(*fps, 1)))
}

// newLogger returns a text logger writing to path, or a discarding logger
// when path is empty. The terminal itself is owned by the screen.
func newLogger(path string, debug bool) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "open log file %q", path)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), func() { f.Close() }, nil
}

// orbit moves an entity on a circle around Center in the XY plane.
type orbit struct {
	Center linear.V3
	Radius float32
	Speed  float32 // radians per second
	Angle  float32
}

// wander bounces an entity between two X positions.
type wander struct {
	MinX, MaxX float32
	Speed      float32
}

var ring = []struct {
	glyph  string
	albedo component.Color
}{
	{"🪐", 0xd8b26e},
	{"*", 0xffffff},
	{"o", 0x6fa8dc},
	{"@", 0xe06666},
	{"#", 0x93c47d},
	{"%", 0x8e7cc3},
}

// populate fills s with a camera, two lights and as many orbiting meshes as
// fit. Running out of slots stops population without failing the demo.
func populate(s *stage.Scene) error {
	cam, err := stage.NewEntity(s)
	if err != nil {
		return eris.Wrap(err, "create camera")
	}
	stage.Add(cam, component.NewTransform(linear.V3{}))
	stage.Add(cam, component.RenderCamera{Zoom: 1})

	sun, err := stage.NewEntity(s)
	if err != nil {
		return eris.Wrap(err, "create sun")
	}
	stage.Add(sun, component.NewTransform(linear.V3{}))
	stage.Add(sun, component.DirectionalLight{Direction: linear.V3{0, 1, -1}, Color: 0xfff4e0, Intensity: 0.3})

	lamp, err := stage.NewEntity(s)
	if err != nil {
		return eris.Wrap(err, "create lamp")
	}
	stage.Add(lamp, component.NewTransform(linear.V3{-12, 0, 0}))
	stage.Add(lamp, component.PointLight{Color: 0xffd966, Intensity: 1.2, Range: 10})
	stage.Add(lamp, component.Mesh{Name: "lamp", Glyph: "+"})
	stage.Add(lamp, component.Material{Albedo: 0xffd966, Emissive: true})
	stage.Add(lamp, wander{MinX: -12, MaxX: 12, Speed: 6})

	for i := 0; ; i++ {
		e, err := stage.NewEntity(s)
		if err != nil {
			if eris.Is(err, stage.ErrNoAvailableEntity) {
				s.Logger().Info("scene full", "meshes", i)
				return nil
			}
			return err
		}
		r := ring[i%len(ring)]
		o := orbit{
			Radius: 3 + float32(i/len(ring))*2,
			Speed:  0.8 / float32(1+i/len(ring)),
			Angle:  float32(i%len(ring)) * 2 * math.Pi / float32(len(ring)),
		}
		stage.Add(e, component.NewTransform(o.position()))
		stage.Add(e, component.Mesh{Name: fmt.Sprintf("mesh-%d", i), Glyph: r.glyph})
		stage.Add(e, component.Material{Albedo: r.albedo})
		stage.Add(e, o)
	}
}

func (o *orbit) position() linear.V3 {
	sin, cos := math.Sincos(float64(o.Angle))
	// Terminal cells are about twice as tall as wide.
	return linear.AddV3(o.Center, linear.V3{o.Radius * 2 * float32(cos), o.Radius * float32(sin), 0})
}

// step advances every animated entity by dt seconds.
func step(s *stage.Scene, dt float32) {
	stage.NewView2[component.Transform, orbit](s).Each(func(t *component.Transform, o *orbit) {
		o.Angle = float32(math.Mod(float64(o.Angle+o.Speed*dt), 2*math.Pi))
		t.Position = o.position()
	})
	stage.NewView2[component.Transform, wander](s).Each(func(t *component.Transform, w *wander) {
		t.Position[0] += w.Speed * dt
		switch {
		case t.Position[0] > w.MaxX:
			t.Position[0], w.Speed = w.MaxX, -w.Speed
		case t.Position[0] < w.MinX:
			t.Position[0], w.Speed = w.MinX, -w.Speed
		}
	})
}

// quitKey reports whether ev asks the demo to exit.
func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// run draws frames at the given interval until a quit key is pressed or the
// screen is finalized.
func run(screen tcell.Screen, s *stage.Scene, r *render.Renderer, interval time.Duration) {
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if quitKey(ev) {
					return
				}
			}
		case now := <-ticker.C:
			step(s, float32(now.Sub(last).Seconds()))
			last = now
			r.Draw(s)
			screen.Show()
		}
	}
}
