package motion

import "time"

type subscription struct {
	id int
	fn func(dt time.Duration)
}

// Frames fans a frame tick out to subscribers in subscription order.
// Owners must cancel their subscription when they are disposed.
type Frames struct {
	subs   []subscription
	nextID int
}

// NewFrames creates an empty frame hub.
func NewFrames() *Frames {
	return &Frames{}
}

// Subscribe registers fn for every Step and returns its cancel function.
// Cancel is idempotent.
func (f *Frames) Subscribe(fn func(dt time.Duration)) (cancel func()) {
	f.nextID++
	id := f.nextID
	f.subs = append(f.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range f.subs {
			if s.id == id {
				f.subs = append(f.subs[:i], f.subs[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of live subscriptions.
func (f *Frames) Len() int { return len(f.subs) }

// Step calls every subscriber with dt. Subscribers may cancel themselves
// (or others) during the call.
func (f *Frames) Step(dt time.Duration) {
	if len(f.subs) == 0 {
		return
	}
	subs := make([]subscription, len(f.subs))
	copy(subs, f.subs)
	for _, s := range subs {
		if f.live(s.id) {
			s.fn(dt)
		}
	}
}

func (f *Frames) live(id int) bool {
	for _, s := range f.subs {
		if s.id == id {
			return true
		}
	}
	return false
}
