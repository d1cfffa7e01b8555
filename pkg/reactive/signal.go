package reactive

import "reflect"

// signalBase provides type-erased subscriber management.
// It is embedded in Signal[T] and Memo[T] to share subscription logic.
type signalBase struct {
	id uint64

	// subs are the listeners subscribed to this signal.
	// A signal never owns its subscribers; edges are cut from the
	// subscriber side when it re-tracks or is disposed.
	subs []Listener

	// version counts accepted writes. Two value-equal writes in a row
	// bump it once, not twice.
	version uint64
}

// subscribe adds a listener to this signal's subscribers.
// Deduplicates by listener ID to prevent double-subscription.
func (s *signalBase) subscribe(l Listener) {
	if l == nil {
		return
	}

	lid := l.ID()
	for _, existing := range s.subs {
		if existing.ID() == lid {
			return
		}
	}

	s.subs = append(s.subs, l)
}

// unsubscribe removes a listener from this signal's subscribers.
func (s *signalBase) unsubscribe(l Listener) {
	if l == nil {
		return
	}

	lid := l.ID()
	for i, existing := range s.subs {
		if existing.ID() == lid {
			// Remove by swapping with last element (order doesn't matter)
			s.subs[i] = s.subs[len(s.subs)-1]
			s.subs = s.subs[:len(s.subs)-1]
			return
		}
	}
}

// notifySubscribers pushes dirty marks to all subscribers.
// Iterates over a copy: marking a memo dirty recurses into its own
// subscribers, which may re-track and mutate subscription lists.
func (s *signalBase) notifySubscribers() {
	subs := make([]Listener, len(s.subs))
	copy(subs, s.subs)

	for _, sub := range subs {
		sub.MarkDirty()
	}
}

// track registers the bidirectional edge between this signal and the
// currently tracking subscriber, if any.
func (s *signalBase) track() {
	if listener := getCurrentListener(); listener != nil {
		s.subscribe(listener)
		if st, ok := listener.(sourceTracker); ok {
			st.addSource(s)
		}
	}
}

// getID returns the unique identifier for this signal.
func (s *signalBase) getID() uint64 {
	return s.id
}

// Signal is a reactive value container.
// Reading a Signal's value during a tracked context (memo computation or
// effect execution) automatically subscribes the current listener to
// receive notifications when the value changes.
type Signal[T any] struct {
	base signalBase

	// value is the current signal value.
	value T

	// equal is the equality function used to determine if the value changed.
	// If nil, uses default equality checking.
	equal func(T, T) bool
}

// NewSignal creates a new signal with the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		base: signalBase{
			id: nextID(),
		},
		value: initial,
	}
}

// Get returns the current value and subscribes the current listener.
// If called during a tracked context (memo computation or effect
// execution), the current listener will be notified when this signal's
// value changes. Reads with no active listener are always legal and
// simply don't register.
func (s *Signal[T]) Get() T {
	s.base.track()
	return s.value
}

// Peek returns the current value without subscribing, regardless of
// tracking state.
func (s *Signal[T]) Peek() T {
	return s.value
}

// Set updates the signal's value and notifies subscribers if the value
// changed. Writing a value equal to the current one (NaN included; a value
// always equals itself) stores nothing and notifies nobody. Outside a
// batch, pending effects are flushed before Set returns.
func (s *Signal[T]) Set(value T) {
	if s.equals(s.value, value) {
		return
	}
	s.value = value
	s.base.version++
	stats.SignalWrites.Add(1)

	s.base.notifySubscribers()
	maybeFlush()
}

// Update reads and updates the signal's value in one step.
// The function receives the current value and returns the new value.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// Version returns the number of accepted writes to this signal.
func (s *Signal[T]) Version() uint64 {
	return s.base.version
}

// WithEquals returns the signal configured with a custom equality function.
// This is useful for custom types where reflect.DeepEqual is too expensive
// or has incorrect semantics.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.base.id
}

// equals checks if two values are equal using the configured equality function.
func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals provides type-appropriate equality checking.
// Uses == for common comparable types and reflect.DeepEqual for others.
// Floats get Object.is semantics: NaN equals NaN, so a NaN payload can
// never re-trigger its own subscribers.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint:
		return av == any(b).(uint)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	case float32:
		bv := any(b).(float32)
		return av == bv || (av != av && bv != bv)
	case float64:
		bv := any(b).(float64)
		return av == bv || (av != av && bv != bv)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		// Fall back to reflect.DeepEqual for slices, maps, structs, etc.
		return reflect.DeepEqual(a, b)
	}
}
