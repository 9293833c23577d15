package theme

// Subscriber receives theme changes.
type Subscriber interface {
	SetTheme(t Theme)
}

// SubscriberFunc adapts a function to Subscriber.
type SubscriberFunc func(t Theme)

// SetTheme calls f(t).
func (f SubscriberFunc) SetTheme(t Theme) { f(t) }

// Broadcaster fans the current theme out to every subscriber.
// Subscribers are notified synchronously, in registration order.
type Broadcaster struct {
	current Theme
	subs    []Subscriber
}

// NewBroadcaster creates a broadcaster starting at the given theme.
func NewBroadcaster(initial Theme) *Broadcaster {
	return &Broadcaster{current: initial}
}

// Current returns the active theme.
func (b *Broadcaster) Current() Theme {
	return b.current
}

// Subscribe registers s and immediately sends it the current theme.
func (b *Broadcaster) Subscribe(s Subscriber) {
	b.subs = append(b.subs, s)
	s.SetTheme(b.current)
}

// Set changes the theme. Subscribers are only notified on an actual change.
func (b *Broadcaster) Set(t Theme) {
	if t == b.current {
		return
	}
	b.current = t
	for _, s := range b.subs {
		s.SetTheme(t)
	}
}

// Toggle flips between dark and light and returns the new theme.
func (b *Broadcaster) Toggle() Theme {
	b.Set(b.current.Toggle())
	return b.current
}
