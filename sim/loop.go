package sim

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/automoto/doomerang-arena/logger"
)

// Loop steps a Sim in real time at a fixed tick rate.
type Loop struct {
	sim      *Sim
	tickRate int
	onTick   func(*Sim) bool
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a loop running tickRate ticks per second. A non-positive
// rate falls back to 60.
func NewLoop(s *Sim, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		sim:      s,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// OnTick registers a callback run after every tick. Returning false stops
// the loop.
func (l *Loop) OnTick(fn func(*Sim) bool) {
	l.onTick = fn
}

// Run blocks until ctx is cancelled, Stop is called or the tick callback
// asks to stop. It returns ctx.Err() when cancelled and nil otherwise.
func (l *Loop) Run(ctx context.Context) error {
	log := logger.For("loop")
	dt := 1 / float64(l.tickRate)
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.WithField("tick_rate", l.tickRate).Info("game loop started")

	for {
		select {
		case <-ctx.Done():
			log.Info("game loop cancelled")
			return ctx.Err()
		case <-l.stopChan:
			log.Info("game loop stopped")
			return nil
		case <-ticker.C:
			l.sim.Step(dt)
			if l.onTick != nil && !l.onTick(l.sim) {
				log.WithFields(logrus.Fields{
					"tick": l.sim.Arena().Tick,
				}).Info("game loop finished")
				return nil
			}
		}
	}
}

// Stop ends a running loop. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}
