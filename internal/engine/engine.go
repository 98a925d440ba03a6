package engine

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/SickDinner/Uho-sub002/internal/analyzer"
	"github.com/SickDinner/Uho-sub002/internal/source"
	"github.com/SickDinner/Uho-sub002/internal/worker"
)

// Config configures a sync engine.
type Config struct {
	// Source supplies one audio frame per analysis tick. Required.
	Source source.Source
	// AnalysisRate is the analysis cadence in Hz (default 60).
	AnalysisRate float64
	// PaulaMode enables the 8-bit band shaping stage.
	PaulaMode bool
	// Particles receives burst requests; nil drops them.
	Particles ParticleEmitter
	// Workers > 0 dispatches per-target mapping across a worker pool.
	Workers int
	Log     *log.Logger
}

// Stats is a point-in-time summary of the engine.
type Stats struct {
	Frames       uint64            `json:"frameCounter"`
	AnalysisRate float64           `json:"analysisRate"`
	Targets      int               `json:"targetCount"`
	BPM          float64           `json:"currentBPM"`
	Features     analyzer.Features `json:"features"`
}

// Engine runs the feature-extraction pipeline once per analysis tick and
// maps the resulting features onto every registered target. It keeps its
// own monotone clock advanced by Update deltas, so hosts may drive it at
// any cadence.
type Engine struct {
	mu    sync.RWMutex
	clock time.Duration

	src      source.Source
	agg      *analyzer.Aggregator
	spectral *analyzer.SpectralAnalyzer
	temporal analyzer.TemporalAnalyzer
	beat     *analyzer.BeatDetector
	reg      *registry

	paula     bool
	particles ParticleEmitter
	pool      *worker.Pool
	log       *log.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New constructs an engine for the given source.
func New(cfg Config) (*Engine, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("engine: nil audio source")
	}
	if cfg.Log == nil {
		cfg.Log = log.New(os.Stderr, "", log.LstdFlags)
	}

	e := &Engine{
		src:       cfg.Source,
		agg:       analyzer.NewAggregator(cfg.AnalysisRate),
		spectral:  analyzer.NewSpectralAnalyzer(),
		beat:      analyzer.NewBeatDetector(),
		reg:       newRegistry(),
		paula:     cfg.PaulaMode,
		particles: cfg.Particles,
		log:       cfg.Log,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if cfg.Workers > 0 {
		e.pool = worker.NewPool(cfg.Workers, cfg.Workers*2)
	}
	return e, nil
}

// AddSyncTarget registers obj under key with the given response config,
// capturing the object's current state as its baseline. Re-adding an
// existing key overwrites it with a fresh baseline.
func (e *Engine) AddSyncTarget(key string, obj any, cfg SyncConfig) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reg.add(key, obj, cfg)
}

// RemoveSyncTarget unregisters a target, cancelling any running beat
// transient. Removing an absent key is a no-op.
func (e *Engine) RemoveSyncTarget(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reg.remove(key)
}

// Update advances the engine clock by dt and, when the analysis throttle
// fires, runs one full analysis pass and maps every registered target.
func (e *Engine) Update(dt time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if dt > 0 {
		e.clock += dt
	}
	if !e.agg.Tick(e.clock) {
		return
	}

	frame := e.src.Read()
	sp := e.spectral.Analyze(frame.Spectrum, e.src.SampleRate(), e.paula)
	wf := e.temporal.Analyze(frame.Waveform)
	beat, strength, bpm := e.beat.Detect(e.clock, sp.Bass, sp.Mids, sp.Treble)

	f := analyzer.Features{
		Bass:             sp.Bass,
		Mids:             sp.Mids,
		Treble:           sp.Treble,
		RMS:              wf.RMS,
		Peak:             wf.Peak,
		ZCR:              wf.ZCR,
		BeatDetected:     beat,
		BeatStrength:     strength,
		BPM:              bpm,
		SpectralCentroid: sp.Centroid,
		SpectralRolloff:  sp.Rolloff,
		MFCC:             sp.MFCC,
	}
	f.Clamp()
	e.agg.Publish(f)

	e.dispatch(f)
}

// dispatch maps the published features onto every target. Targets are
// independent, so with a pool configured they run in parallel; each job
// touches only its own target.
func (e *Engine) dispatch(f analyzer.Features) {
	targets := e.reg.snapshot()
	if e.pool == nil || len(targets) < 2 {
		for _, t := range targets {
			e.applyTarget(t, f)
		}
		return
	}

	var wg sync.WaitGroup
	for _, t := range targets {
		wg.Add(1)
		e.pool.Submit(func() {
			defer wg.Done()
			e.applyTarget(t, f)
		})
	}
	wg.Wait()
}

func (e *Engine) applyTarget(t *target, f analyzer.Features) {
	now := e.clock.Seconds()
	applyContinuous(t, t.config.Bass, f.Bass, now, e.randFloat, e.particles)
	applyContinuous(t, t.config.Mids, f.Mids, now, e.randFloat, e.particles)
	applyContinuous(t, t.config.Treble, f.Treble, now, e.randFloat, e.particles)

	if f.BeatDetected && t.config.Beat.Property != PropertyNone {
		t.anim = newBeatAnimation(e.clock, t.config.Beat, f.BeatStrength)
	}
	if t.anim != nil && t.anim.advance(e.clock, t, e.particles) {
		t.anim = nil
	}
}

// Features returns a snapshot of the most recently published frame.
func (e *Engine) Features() analyzer.Features {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.agg.Features()
}

// Stats returns a point-in-time engine summary.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	f := e.agg.Features()
	return Stats{
		Frames:       e.agg.Frames(),
		AnalysisRate: e.agg.Rate(),
		Targets:      e.reg.len(),
		BPM:          f.BPM,
		Features:     f,
	}
}

// SetPaulaMode toggles the 8-bit band shaping stage at runtime.
func (e *Engine) SetPaulaMode(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paula = on
}

// PaulaMode reports whether the shaping stage is active.
func (e *Engine) PaulaMode() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.paula
}

// Close releases the worker pool, if any.
func (e *Engine) Close() error {
	if e.pool != nil {
		e.pool.Close()
	}
	return nil
}

// randFloat hands out uniform randoms safely under parallel dispatch.
func (e *Engine) randFloat() float64 {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.Float64()
}
