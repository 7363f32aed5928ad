package engine

import "fmt"

// Pipeline runs systems in priority order once per tick
// It holds nothing but the order; all state lives in the stores systems mutate
type Pipeline struct {
	systems []System
}

// NewPipeline creates a pipeline from systems, sorted by priority
func NewPipeline(systems ...System) *Pipeline {
	p := &Pipeline{systems: make([]System, 0, len(systems))}
	for _, s := range systems {
		p.Add(s)
	}
	return p
}

// Add inserts a system keeping priority order, equal priorities keep insertion order
func (p *Pipeline) Add(system System) {
	p.systems = append(p.systems, system)

	// Bubble sort, small N
	for i := 0; i < len(p.systems)-1; i++ {
		for j := 0; j < len(p.systems)-i-1; j++ {
			if p.systems[j].Priority() > p.systems[j+1].Priority() {
				p.systems[j], p.systems[j+1] = p.systems[j+1], p.systems[j]
			}
		}
	}
}

// Systems returns a copy of the ordered systems
func (p *Pipeline) Systems() []System {
	result := make([]System, len(p.systems))
	copy(result, p.systems)
	return result
}

// Tick runs every system once, stopping at the first error
func (p *Pipeline) Tick() error {
	for _, s := range p.systems {
		if err := s.Update(); err != nil {
			return fmt.Errorf("system %s: %w", s.Name(), err)
		}
	}
	return nil
}
