// Package clock owns tick scheduling for the session engine. The engine
// itself never sleeps; the driver watches its run state and delivers one
// Tick per interval while a session is running.
package clock

import (
	"log"
	"sync"
	"time"

	"pomodoro/internal/core/engine"
	"pomodoro/internal/core/model"
)

// Driver delivers periodic ticks to an engine while it is running. At
// most one ticker goroutine exists per driver: entering the running
// state cancels any stale one before scheduling anew, and leaving it
// halts the goroutine.
type Driver struct {
	mu          sync.Mutex
	engine      *engine.Engine
	interval    time.Duration
	stopCh      chan struct{}
	unsubscribe func()
	closed      bool
}

// New creates a driver bound to sessionEngine and aligns it with the
// engine's current run state.
func New(sessionEngine *engine.Engine, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = time.Second
	}
	driver := &Driver{
		engine:   sessionEngine,
		interval: interval,
	}
	driver.unsubscribe = sessionEngine.Subscribe(driver.observe)
	driver.observe(sessionEngine.Snapshot())
	return driver
}

// Close halts ticking and detaches from the engine.
func (driver *Driver) Close() {
	driver.mu.Lock()
	if driver.closed {
		driver.mu.Unlock()
		return
	}
	driver.closed = true
	stopCh := driver.stopCh
	driver.stopCh = nil
	unsubscribe := driver.unsubscribe
	driver.unsubscribe = nil
	driver.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}
	if unsubscribe != nil {
		unsubscribe()
	}
}

func (driver *Driver) observe(snapshot model.Snapshot) {
	if snapshot.Session.RunState == model.RunRunning {
		driver.startTicking()
	} else {
		driver.stopTicking()
	}
}

func (driver *Driver) startTicking() {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	if driver.closed || driver.stopCh != nil {
		return
	}
	stopCh := make(chan struct{})
	driver.stopCh = stopCh
	go driver.run(stopCh)
}

func (driver *Driver) stopTicking() {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	if driver.stopCh != nil {
		close(driver.stopCh)
		driver.stopCh = nil
	}
}

func (driver *Driver) run(stopCh <-chan struct{}) {
	ticker := time.NewTicker(driver.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			// Tick guards on run state itself, so a tick racing a
			// pause or stop is a harmless no-op.
			if _, err := driver.engine.Tick(); err != nil {
				log.Printf("tick: %v", err)
			}
		}
	}
}
