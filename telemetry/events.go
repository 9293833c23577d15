// Package telemetry tracks particle field activity and frame timings and
// writes them as CSV.
package telemetry

// EventType identifies telemetry events.
type EventType uint8

const (
	EventTrailSpawn EventType = iota
	EventResize
	EventThemeChange
	EventPause
	EventResume
	EventFrameError
)

var eventNames = [...]string{
	EventTrailSpawn:  "trail_spawn",
	EventResize:      "resize",
	EventThemeChange: "theme_change",
	EventPause:       "pause",
	EventResume:      "resume",
	EventFrameError:  "frame_error",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event is a single occurrence on the page.
type Event struct {
	Type  EventType
	Frame int64
	Count int    // particles emitted, for trail spawns
	Loop  string // loop name, for pause/resume/error
}

// NewTrailSpawnEvent records n trail particles emitted in one tick.
func NewTrailSpawnEvent(frame int64, n int) Event {
	return Event{Type: EventTrailSpawn, Frame: frame, Count: n}
}

// NewResizeEvent records a viewport size change.
func NewResizeEvent(frame int64) Event {
	return Event{Type: EventResize, Frame: frame}
}

// NewThemeChangeEvent records a theme switch.
func NewThemeChangeEvent(frame int64) Event {
	return Event{Type: EventThemeChange, Frame: frame}
}

// NewPauseEvent records a loop stopping.
func NewPauseEvent(frame int64, loop string) Event {
	return Event{Type: EventPause, Frame: frame, Loop: loop}
}

// NewResumeEvent records a loop starting.
func NewResumeEvent(frame int64, loop string) Event {
	return Event{Type: EventResume, Frame: frame, Loop: loop}
}

// NewFrameErrorEvent records a recovered tick failure.
func NewFrameErrorEvent(frame int64, loop string) Event {
	return Event{Type: EventFrameError, Frame: frame, Loop: loop}
}
