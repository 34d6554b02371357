package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particle-storm/audio"
	"github.com/lixenwraith/particle-storm/camera"
	"github.com/lixenwraith/particle-storm/parameter"
	"github.com/lixenwraith/particle-storm/render"
	"github.com/lixenwraith/particle-storm/sim"
)

const helpLine = "g/G:gravity  b/B:bounce  f/F:friction  s/S:size  move:impulse  wheel:orbit  space:pause  r:reset  m:mute  q:quit"

type config struct {
	particles  int
	fps        int
	workers    int
	separation float64
	mute       bool
}

func parseFlags() config {
	var cfg config
	flag.IntVar(&cfg.particles, "particles", parameter.ParticleCountDefault, "particle pool size")
	flag.IntVar(&cfg.fps, "fps", parameter.FPSDefault, "target frames per second")
	flag.IntVar(&cfg.workers, "workers", 0, "pass dispatch workers (0 = one per CPU)")
	flag.Float64Var(&cfg.separation, "separation", parameter.SeparationDefault, "seed grid spacing in world units")
	flag.BoolVar(&cfg.mute, "mute", false, "start with audio cues muted")
	flag.Parse()
	return cfg
}

// App owns the screen, the particle pool, and the live tuning state. All
// event and frame handling runs on the single run() goroutine; only the pass
// dispatch inside sim fans out.
type App struct {
	screen tcell.Screen
	buf    *render.Buffer
	cue    *audio.Cue

	store      *sim.Store
	dispatcher *sim.Dispatcher
	params     sim.Params
	orbit      *camera.Orbit

	cfg           config
	width, height int
	paused        bool

	frames  int
	fpsMark time.Time
	fps     float64
}

func NewApp(cfg config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)

	a := &App{
		screen:     screen,
		cue:        audio.NewCue(cfg.mute),
		store:      sim.NewStore(cfg.particles),
		dispatcher: sim.NewDispatcher(cfg.workers),
		params:     sim.DefaultParams(),
		orbit:      camera.NewOrbit(),
		cfg:        cfg,
		fpsMark:    time.Now(),
	}
	a.width, a.height = screen.Size()
	a.buf = render.NewBuffer(a.width, a.height)

	sim.Seed(a.store, cfg.separation, a.dispatcher)

	// Non-fatal, demo runs silent without a sound device
	if err := a.cue.Init(); err != nil {
		log.Printf("audio init failed, cues disabled: %v", err)
	}

	return a, nil
}

func (a *App) cleanup() {
	a.cue.Close()
	a.screen.Fini()
}

func (a *App) view() camera.View {
	return camera.NewView(a.orbit, a.width, a.height)
}

// handleMouse routes wheel ticks to the orbit and motion to the impulse pass
func (a *App) handleMouse(ev *tcell.EventMouse) {
	btns := ev.Buttons()
	switch {
	case btns&tcell.WheelUp != 0:
		a.orbit.ApplyWheel(-parameter.CameraWheelNotch)
	case btns&tcell.WheelDown != 0:
		a.orbit.ApplyWheel(parameter.CameraWheelNotch)
	default:
		if a.paused {
			return
		}
		x, y := ev.Position()
		if hit, ok := a.view().PickGround(x, y); ok {
			sim.Impulse(a.store, sim.PointerTarget(hit), a.dispatcher)
			a.cue.Impulse()
		}
	}
}

// handleKey applies the parameter panel bindings; returns false to quit.
// Lowercase steps a value down, uppercase up; everything clamps to the
// documented ranges.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'g':
		a.params.Gravity -= parameter.GravityStep
	case 'G':
		a.params.Gravity += parameter.GravityStep
	case 'b':
		a.params.Bounce -= parameter.BounceStep
	case 'B':
		a.params.Bounce += parameter.BounceStep
	case 'f':
		a.params.Friction -= parameter.FrictionStep
	case 'F':
		a.params.Friction += parameter.FrictionStep
	case 's':
		a.params.Size -= parameter.SizeStep
	case 'S':
		a.params.Size += parameter.SizeStep
	case ' ':
		a.paused = !a.paused
	case 'r':
		sim.Seed(a.store, a.cfg.separation, a.dispatcher)
	case 'm':
		a.cue.ToggleMute()
	}
	a.params = a.params.Clamp()
	return true
}

func (a *App) handleResize() {
	a.width, a.height = a.screen.Size()
	a.buf.Resize(a.width, a.height)
	a.screen.Sync()
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.handleResize()
	}
	return true
}

func (a *App) statusLine() string {
	s := fmt.Sprintf("grav %+.5f  bounce %.2f  fric %.3f  size %.2f  n=%d  %3.0f fps",
		a.params.Gravity, a.params.Bounce, a.params.Friction, a.params.Size,
		a.store.Len(), a.fps)
	if a.paused {
		s += "  [PAUSED]"
	}
	if a.cue.Muted() {
		s += "  [MUTE]"
	}
	return s
}

// frame advances the simulation one step and repaints. The integrate
// dispatch completes before any drawing starts.
func (a *App) frame() {
	if !a.paused {
		sim.Integrate(a.store, a.params, a.dispatcher)
	}

	vw := a.view()
	a.buf.Clear()
	render.DrawGrid(a.buf, vw)
	render.DrawParticles(a.buf, a.store, vw, a.params.Size)
	render.DrawHUD(a.buf, a.statusLine(), helpLine)
	a.buf.Flush(a.screen)

	a.frames++
	if since := time.Since(a.fpsMark); since >= time.Second {
		a.fps = float64(a.frames) / since.Seconds()
		a.frames = 0
		a.fpsMark = time.Now()
	}
}

func (a *App) run() {
	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.frame()
		}
	}
}

func main() {
	cfg := parseFlags()
	if cfg.fps < 1 {
		cfg.fps = parameter.FPSDefault
	}

	app, err := NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}
