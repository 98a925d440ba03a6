// Package app runs the interactive demo: it wires an audio source into
// the sync engine, registers a small scene of sprites, and drives the
// update loop with keyboard control.
package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/eiannone/keyboard"
	"golang.org/x/term"

	"github.com/SickDinner/Uho-sub002/internal/engine"
	"github.com/SickDinner/Uho-sub002/internal/scene"
	"github.com/SickDinner/Uho-sub002/internal/source"
)

// Config configures the demo runtime.
type Config struct {
	Source       source.Source
	SourceLabel  string
	AnalysisRate float64
	TargetFPS    float64
	Preset       string
	PaulaMode    bool
	Workers      int
	UseSDL       bool
	Log          *log.Logger
}

type inputEvent int

const (
	inputEventCyclePreset inputEvent = iota
	inputEventTogglePaula
	inputEventQuit
)

// App ties together the engine, a demo scene, and terminal output.
type App struct {
	cfg         Config
	eng         *engine.Engine
	sprites     []*scene.Sprite
	particles   *scene.Particles
	window      *scene.Window
	presets     []string
	presetIdx   int
	last        time.Time
	inputEvents chan inputEvent
	log         *log.Logger
}

// New constructs the demo application around cfg.Source.
func New(cfg Config) (*App, error) {
	if cfg.TargetFPS <= 0 {
		cfg.TargetFPS = 60
	}
	if cfg.Log == nil {
		cfg.Log = log.New(os.Stdout, "", log.LstdFlags)
	}
	presets := engine.PresetNames()
	if len(presets) == 0 {
		return nil, fmt.Errorf("no style presets registered")
	}

	particles := scene.NewParticles(cfg.Log)
	eng, err := engine.New(engine.Config{
		Source:       cfg.Source,
		AnalysisRate: cfg.AnalysisRate,
		PaulaMode:    cfg.PaulaMode,
		Particles:    particles,
		Workers:      cfg.Workers,
		Log:          cfg.Log,
	})
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	app := &App{
		cfg:       cfg,
		eng:       eng,
		particles: particles,
		presets:   presets,
		log:       cfg.Log,
	}
	for i, name := range presets {
		if name == cfg.Preset {
			app.presetIdx = i
			break
		}
	}

	if err := app.buildScene(); err != nil {
		eng.Close()
		return nil, err
	}

	if cfg.UseSDL {
		window, err := scene.OpenWindow("audiosync", 960, 540)
		if err != nil {
			cfg.Log.Printf("scene window unavailable: %v", err)
		} else {
			app.window = window
		}
	}
	return app, nil
}

// Engine exposes the underlying engine, e.g. for the web stats server.
func (a *App) Engine() *engine.Engine {
	return a.eng
}

func (a *App) buildScene() error {
	cfg, ok := engine.Preset(a.presets[a.presetIdx])
	if !ok {
		return fmt.Errorf("unknown preset %q", a.presets[a.presetIdx])
	}

	positions := [][2]float64{{240, 270}, {480, 270}, {720, 270}}
	for i, pos := range positions {
		sprite := scene.NewSprite(fmt.Sprintf("sprite-%d", i+1), pos[0], pos[1])
		a.sprites = append(a.sprites, sprite)
		if err := a.eng.AddSyncTarget(sprite.Name, sprite, cfg); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) applyPreset(name string) {
	cfg, ok := engine.Preset(name)
	if !ok {
		return
	}
	// Re-adding rebinds the response config; the fresh baseline capture
	// is harmless because sprites settle back onto their baseline.
	for _, sprite := range a.sprites {
		_ = a.eng.AddSyncTarget(sprite.Name, sprite, cfg)
	}
	a.log.Printf("[app] preset -> %s", name)
}

// Run drives the engine at the target frame rate until the context is
// cancelled or the user quits.
func (a *App) Run(ctx context.Context) error {
	frameDuration := time.Duration(float64(time.Second) / a.cfg.TargetFPS)
	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	inputCtx, cancelInput := context.WithCancel(ctx)
	defer cancelInput()
	a.startInputListener(inputCtx)

	a.log.Printf("[app] source=%s rate=%.0fHz preset=%s paula=%v (q quit, r preset, p paula)",
		a.cfg.SourceLabel, a.eng.Stats().AnalysisRate, a.presets[a.presetIdx], a.eng.PaulaMode())

	a.last = time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case evt, ok := <-a.inputEvents:
			if !ok {
				a.inputEvents = nil
				continue
			}
			switch evt {
			case inputEventCyclePreset:
				a.presetIdx = (a.presetIdx + 1) % len(a.presets)
				a.applyPreset(a.presets[a.presetIdx])
			case inputEventTogglePaula:
				a.eng.SetPaulaMode(!a.eng.PaulaMode())
				a.log.Printf("[app] paula mode -> %v", a.eng.PaulaMode())
			case inputEventQuit:
				return nil
			}
		case <-ticker.C:
			if err := a.step(); err != nil {
				return err
			}
		}
	}
}

// Close releases the engine and any open window.
func (a *App) Close() error {
	if a.window != nil {
		a.window.Close()
	}
	return a.eng.Close()
}

func (a *App) step() error {
	now := time.Now()
	delta := now.Sub(a.last)
	if delta <= 0 {
		delta = time.Duration(float64(time.Second) / a.cfg.TargetFPS)
	}
	a.last = now

	a.eng.Update(delta)

	if a.window != nil {
		if err := a.window.Draw(a.sprites); err != nil {
			return fmt.Errorf("scene draw: %w", err)
		}
	}

	a.printStatus()
	return nil
}

func (a *App) printStatus() {
	stats := a.eng.Stats()
	f := stats.Features
	beat := " "
	if f.BeatDetected {
		beat = "*"
	}
	sparkles, explosions := a.particles.Counts()
	line := fmt.Sprintf("\r[%s] bass=%.2f mids=%.2f treble=%.2f rms=%.2f bpm=%5.1f %s fx=%d/%d | %s",
		a.presets[a.presetIdx], f.Bass, f.Mids, f.Treble, f.RMS, stats.BPM, beat,
		sparkles, explosions, a.sprites[0].Status())
	fmt.Print(fitLine(line, terminalWidth()))
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0
	}
	return w
}

func fitLine(text string, width int) string {
	if width <= 0 {
		return text
	}
	if len(text) >= width {
		return text[:width]
	}
	return text + strings.Repeat(" ", width-len(text))
}

func (a *App) startInputListener(ctx context.Context) {
	if err := keyboard.Open(); err != nil {
		a.log.Printf("keyboard input disabled: %v", err)
		a.inputEvents = nil
		return
	}

	events := make(chan inputEvent, 16)
	a.inputEvents = events

	closeOnce := &sync.Once{}
	go func() {
		<-ctx.Done()
		closeOnce.Do(func() {
			_ = keyboard.Close()
		})
	}()

	go func() {
		defer close(events)
		defer closeOnce.Do(func() {
			_ = keyboard.Close()
		})
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			select {
			case <-ctx.Done():
				return
			default:
			}
			switch {
			case key == keyboard.KeyEsc || key == keyboard.KeyCtrlC:
				events <- inputEventQuit
				return
			case char == 'q' || char == 'Q':
				events <- inputEventQuit
				return
			case char == 'r' || char == 'R':
				select {
				case events <- inputEventCyclePreset:
				default:
				}
			case char == 'p' || char == 'P':
				select {
				case events <- inputEventTogglePaula:
				default:
				}
			}
		}
	}()
}
