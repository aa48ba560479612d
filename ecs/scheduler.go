package ecs

type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

type scheduled struct {
	system System
	when   func(w *World) bool
}

// Scheduler runs systems in insertion order. Systems added with AddWhen are
// skipped for a frame when their condition is false.
type Scheduler struct {
	systems []scheduled
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	s.AddWhen(nil, system)
}

func (s *Scheduler) AddWhen(when func(w *World) bool, system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, scheduled{system: system, when: when})
}

func (s *Scheduler) Update(w *World) {
	for _, sc := range s.systems {
		if sc.when != nil && !sc.when(w) {
			continue
		}
		sc.system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	for _, sc := range s.systems {
		systems = append(systems, sc.system)
	}
	return systems
}
