package scene

import (
	"log"
	"sync"
)

// Particles is a bookkeeping particle service for demos and tests: it
// counts burst requests and optionally logs them. Safe for concurrent
// use, as the engine may dispatch targets in parallel.
type Particles struct {
	mu         sync.Mutex
	log        *log.Logger
	sparkles   int
	explosions int
}

// NewParticles creates an emitter; logger may be nil for silent counting.
func NewParticles(logger *log.Logger) *Particles {
	return &Particles{log: logger}
}

// Sparkle records a sparkle burst request.
func (p *Particles) Sparkle(x, y float64, count int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sparkles += count
	if p.log != nil {
		p.log.Printf("[particles] sparkle x%d at (%.1f,%.1f)", count, x, y)
	}
}

// Explode records an explosion request.
func (p *Particles) Explode(x, y float64, strength float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.explosions++
	if p.log != nil {
		p.log.Printf("[particles] explosion %.2f at (%.1f,%.1f)", strength, x, y)
	}
}

// Counts returns the total sparkles and explosions requested so far.
func (p *Particles) Counts() (sparkles, explosions int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sparkles, p.explosions
}
