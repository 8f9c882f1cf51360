package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

// ErrCascade indicates a runaway chain of same-tick session completions,
// which only a degenerate configuration can produce.
var ErrCascade = errors.New("session completion cascade limit reached")

// cascadeLimit caps chained completions handled within one Tick call.
const cascadeLimit = 1000

// Store persists the statistics record. Load reports absence with its
// second return value; Save is best-effort and may fail without
// affecting the engine.
type Store interface {
	Load() (model.Statistics, bool, error)
	Save(stats model.Statistics) error
}

// Listener receives a state snapshot after every mutation.
type Listener func(snapshot model.Snapshot)

type subscription struct {
	id       int
	listener Listener
}

// Engine is the pomodoro session state machine. It owns the
// configuration, the current session state and the statistics record;
// commands are serialized and each state-affecting command emits exactly
// one notification.
type Engine struct {
	mu        sync.Mutex
	config    model.Config
	session   model.SessionState
	stats     model.Statistics
	store     Store
	subs      []subscription
	nextSubID int
}

// New creates an engine with the provided configuration and loads the
// statistics record from store. A missing or unreadable record leaves
// the engine with empty in-memory statistics; a stored record from a
// previous day keeps its lifetime totals but drops the daily session log.
func New(config model.Config, store Store) *Engine {
	engine := &Engine{
		config:  config,
		session: model.NewSessionState(config),
		stats:   model.NewStatistics(time.Now()),
		store:   store,
	}

	if store != nil {
		stats, found, err := store.Load()
		if err != nil {
			log.Printf("load statistics: %v (starting empty)", err)
		} else if found {
			engine.stats = stats
		}
	}
	engine.stats.RolloverIfStale(time.Now())

	return engine
}

// Subscribe registers an observer. The returned function removes it and
// is safe to call more than once.
func (engine *Engine) Subscribe(listener Listener) (unsubscribe func()) {
	engine.mu.Lock()
	id := engine.nextSubID
	engine.nextSubID++
	engine.subs = append(engine.subs, subscription{id: id, listener: listener})
	engine.mu.Unlock()

	return func() {
		engine.mu.Lock()
		defer engine.mu.Unlock()
		for i, sub := range engine.subs {
			if sub.id == id {
				engine.subs = append(engine.subs[:i], engine.subs[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns a deep copy of the current state.
func (engine *Engine) Snapshot() model.Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked()
}

// Start begins or resumes the countdown. A no-op while already running.
func (engine *Engine) Start() {
	engine.mu.Lock()
	if engine.session.RunState == model.RunRunning {
		engine.mu.Unlock()
		return
	}
	engine.session.RunState = model.RunRunning
	snapshot := engine.snapshotLocked()
	engine.mu.Unlock()

	engine.notify(snapshot)
}

// Pause freezes the countdown, keeping the remaining time. A no-op
// unless running.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	if engine.session.RunState != model.RunRunning {
		engine.mu.Unlock()
		return
	}
	engine.session.RunState = model.RunPaused
	snapshot := engine.snapshotLocked()
	engine.mu.Unlock()

	engine.notify(snapshot)
}

// Stop halts the countdown and restores the full duration of the
// current session kind. The kind and cycle position are kept.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	engine.session.RunState = model.RunIdle
	engine.session.Remaining = engine.config.DurationFor(engine.session.Kind)
	snapshot := engine.snapshotLocked()
	engine.mu.Unlock()

	engine.notify(snapshot)
}

// ResetAll restores the construction-time session state under the
// current configuration. Statistics are untouched.
func (engine *Engine) ResetAll() {
	engine.mu.Lock()
	engine.session = model.NewSessionState(engine.config)
	snapshot := engine.snapshotLocked()
	engine.mu.Unlock()

	engine.notify(snapshot)
}

// Reconfigure replaces the configuration wholesale. The remaining time
// of the current session is reset to the new full duration of its kind;
// run state and cycle position are kept. An invalid configuration is
// rejected and the prior one retained.
func (engine *Engine) Reconfigure(config model.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	engine.mu.Lock()
	engine.config = config
	engine.session.Remaining = config.DurationFor(engine.session.Kind)
	engine.session.TotalCycles = config.CyclesBeforeLongBreak
	snapshot := engine.snapshotLocked()
	engine.mu.Unlock()

	engine.notify(snapshot)
	return nil
}

// Tick advances the countdown by one second. It reports whether a
// session completed during this call. While not running it mutates
// nothing and reports false.
//
// A completion is handled synchronously within the same call: accrual,
// session-kind transition, auto-start policy and persistence all happen
// before Tick returns. If auto-start keeps the engine running on a
// degenerate zero-length session, completions chain within this call up
// to cascadeLimit, after which the engine idles and a configuration
// error is returned.
func (engine *Engine) Tick() (completed bool, err error) {
	engine.mu.Lock()
	if engine.session.RunState != model.RunRunning {
		engine.mu.Unlock()
		return false, nil
	}

	engine.session.Remaining -= time.Second
	if engine.session.Remaining > 0 {
		snapshot := engine.snapshotLocked()
		engine.mu.Unlock()
		engine.notify(snapshot)
		return false, nil
	}

	chained := 0
	for engine.session.Remaining <= 0 && engine.session.RunState == model.RunRunning {
		if chained >= cascadeLimit {
			engine.session.RunState = model.RunIdle
			engine.session.Remaining = engine.config.DurationFor(engine.session.Kind)
			err = fmt.Errorf("%w (%d in one tick): check the configured durations", ErrCascade, cascadeLimit)
			break
		}
		engine.completeSessionLocked()
		chained++
	}
	snapshot := engine.snapshotLocked()
	engine.mu.Unlock()

	engine.notify(snapshot)
	return true, err
}

// Flush writes the statistics record synchronously. Used on shutdown.
func (engine *Engine) Flush() error {
	if engine.store == nil {
		return nil
	}
	engine.mu.Lock()
	stats := engine.stats.Clone()
	engine.mu.Unlock()
	return engine.store.Save(stats)
}

// completeSessionLocked runs the completion algorithm for the session
// that just reached zero: accrue statistics with the configured (not
// elapsed) duration, advance the session kind, apply the auto-start
// policy and persist the record.
func (engine *Engine) completeSessionLocked() {
	finished := engine.session.Kind
	duration := engine.config.DurationFor(finished)
	now := time.Now()

	if finished == model.SessionWork {
		engine.stats.TotalWorkTime += duration
		engine.stats.SessionsCompleted++
		engine.session.CompletedWorkSessions++
		engine.stats.TodaySessions = append(engine.stats.TodaySessions, model.SessionLogEntry{
			Kind:      model.LogWork,
			Timestamp: now,
			Duration:  duration,
		})
	} else {
		// Short and long breaks collapse to a single log kind.
		engine.stats.TotalBreakTime += duration
		engine.session.CompletedBreakSessions++
		engine.stats.TodaySessions = append(engine.stats.TodaySessions, model.SessionLogEntry{
			Kind:      model.LogBreak,
			Timestamp: now,
			Duration:  duration,
		})
	}

	if finished == model.SessionWork {
		if engine.session.Cycle >= engine.config.CyclesBeforeLongBreak {
			engine.session.Kind = model.SessionLongBreak
			engine.session.Cycle = 1
		} else {
			engine.session.Kind = model.SessionShortBreak
			engine.session.Cycle++
		}
	} else {
		engine.session.Kind = model.SessionWork
	}
	engine.session.Remaining = engine.config.DurationFor(engine.session.Kind)

	autoStart := (finished == model.SessionWork && engine.config.AutoStartBreaks) ||
		(finished != model.SessionWork && engine.config.AutoStartWork)
	if autoStart {
		engine.session.RunState = model.RunRunning
	} else {
		engine.session.RunState = model.RunIdle
	}

	engine.persistLocked()
}

// persistLocked hands a copy of the statistics to the store without
// blocking the state machine on the write.
func (engine *Engine) persistLocked() {
	if engine.store == nil {
		return
	}
	stats := engine.stats.Clone()
	go func() {
		if err := engine.store.Save(stats); err != nil {
			log.Printf("save statistics: %v", err)
		}
	}()
}

func (engine *Engine) snapshotLocked() model.Snapshot {
	return model.Snapshot{
		Config:     engine.config,
		Session:    engine.session,
		Statistics: engine.stats.Clone(),
	}
}

func (engine *Engine) notify(snapshot model.Snapshot) {
	engine.mu.Lock()
	subs := append([]subscription(nil), engine.subs...)
	engine.mu.Unlock()

	for _, sub := range subs {
		sub.listener(snapshot)
	}
}
