package loop

import (
	"fmt"
	"log"

	"github.com/milk9111/platformer/ecs/system"
)

// Loop drives a Simulation one tick per frame from a FrameScheduler. The
// next frame is requested only after the current tick has finished, and a
// tick that panics is rolled back so the world never shows half of one.
type Loop struct {
	sim     *Simulation
	frames  FrameScheduler
	handle  FrameHandle
	running bool
	err     error
	faults  int
}

func NewLoop(sim *Simulation, frames FrameScheduler) *Loop {
	return &Loop{sim: sim, frames: frames}
}

// Start begins requesting frames. Calling it on a running loop is a no-op.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.schedule()
}

// Stop cancels the outstanding frame request.
func (l *Loop) Stop() {
	l.running = false
	if l.handle != 0 {
		l.frames.CancelFrame(l.handle)
		l.handle = 0
	}
}

func (l *Loop) Running() bool {
	return l.running
}

// Err returns the most recent tick fault, if any.
func (l *Loop) Err() error {
	return l.err
}

// Faults returns how many ticks were rolled back.
func (l *Loop) Faults() int {
	return l.faults
}

func (l *Loop) schedule() {
	l.handle = l.frames.RequestFrame(l.frame)
}

func (l *Loop) frame() {
	l.handle = 0
	if !l.running {
		return
	}
	l.step()
	if l.running {
		l.schedule()
	}
}

func (l *Loop) step() {
	w := l.sim.World()
	snapshot := system.CaptureState(w)
	defer func() {
		if r := recover(); r != nil {
			system.RestoreState(w, snapshot)
			w.Events().Drain()
			l.faults++
			l.err = fmt.Errorf("loop: tick %d rolled back: %v", l.sim.Ticks()+1, r)
			log.Print(l.err)
		}
	}()
	l.sim.Tick()
}
