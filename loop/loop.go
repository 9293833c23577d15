// Package loop provides the per-frame render loop that drives a particle field.
//
// The host (raylib window, tcell screen or headless runner) calls Frame once
// per display refresh. The loop decides whether the field's tick actually runs:
// it must be started, visible and not destroyed. Calls are expected from a
// single goroutine; a Frame that arrives while a tick is running is dropped.
package loop

import (
	"fmt"
	"log/slog"
)

// TickFunc advances and renders a field by one frame.
type TickFunc func()

// Loop gates a TickFunc behind start/stop, visibility and destroy state.
type Loop struct {
	name    string
	tick    TickFunc
	release func()

	running   bool
	visible   bool
	destroyed bool
	inTick    bool

	frames uint64 // ticks actually run
	failed uint64 // ticks that panicked
}

// Option configures a Loop.
type Option func(*Loop)

// WithRelease registers a function that frees the field's drawing surface.
// It runs once, on the first Destroy.
func WithRelease(release func()) Option {
	return func(l *Loop) {
		l.release = release
	}
}

// New creates a stopped, visible loop.
func New(name string, tick TickFunc, opts ...Option) *Loop {
	l := &Loop{
		name:    name,
		tick:    tick,
		visible: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start begins running ticks. Particle state is not reset, so Start after
// Stop resumes where the field left off. Start after Destroy is ignored.
func (l *Loop) Start() {
	if l.destroyed {
		return
	}
	l.running = true
}

// Stop prevents any further tick, including one the host is about to
// request. Safe to call repeatedly.
func (l *Loop) Stop() {
	l.running = false
}

// Destroy stops the loop and releases the drawing surface. Safe to call
// repeatedly and after Stop.
func (l *Loop) Destroy() {
	l.Stop()
	if l.destroyed {
		return
	}
	l.destroyed = true
	if l.release != nil {
		l.release()
	}
}

// SetVisible pauses (false) or resumes (true) ticking without changing the
// started state. Used for offscreen, minimised or unfocused surfaces.
func (l *Loop) SetVisible(visible bool) {
	l.visible = visible
}

// Frame runs one tick if the loop is started, visible and not destroyed.
// It reports whether the tick ran. A panicking tick is logged and the loop
// keeps going on the next frame.
func (l *Loop) Frame() (ran bool) {
	if !l.running || !l.visible || l.destroyed || l.inTick {
		return false
	}

	l.inTick = true
	defer func() {
		l.inTick = false
		if r := recover(); r != nil {
			l.failed++
			slog.Warn("frame failed",
				"loop", l.name,
				"frame", l.frames,
				"error", fmt.Sprint(r),
			)
			ran = false
		}
	}()

	l.tick()
	l.frames++
	return true
}

// Name returns the loop's name.
func (l *Loop) Name() string { return l.name }

// Running reports whether the loop is started.
func (l *Loop) Running() bool { return l.running }

// Visible reports the last visibility signal.
func (l *Loop) Visible() bool { return l.visible }

// Destroyed reports whether Destroy was called.
func (l *Loop) Destroyed() bool { return l.destroyed }

// Frames returns the number of ticks that completed.
func (l *Loop) Frames() uint64 { return l.frames }

// Failed returns the number of ticks that panicked.
func (l *Loop) Failed() uint64 { return l.failed }
