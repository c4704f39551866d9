package engine

import (
	"sync"
	"time"
)

// System is an interface that all systems must implement
type System interface {
	Update(dt time.Duration)
	Priority() int // Lower values run first
}

// World runs the scene systems in priority order once per frame
type World struct {
	mu      sync.RWMutex
	systems []System
	frames  uint64
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		systems: make([]System, 0),
	}
}

// AddSystem adds a system to the world and sorts by priority
// Systems of equal priority keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort systems by priority (bubble sort is fine for small number of systems)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of the ordered system list
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems
func (w *World) Update(dt time.Duration) {
	systems := w.Systems()
	for _, system := range systems {
		system.Update(dt)
	}

	w.mu.Lock()
	w.frames++
	w.mu.Unlock()
}

// Frames returns how many updates have run
func (w *World) Frames() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.frames
}
