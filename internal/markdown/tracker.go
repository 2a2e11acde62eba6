package markdown

import "sync"

// Tracker resolves the "active" heading while a reader scrolls a document.
// Consumers feed it visibility transitions for observed anchor ids (wired to
// whatever intersection mechanism the host UI provides); the most recently
// visible heading wins and stays active until another heading becomes
// visible. The tracker is event driven, not polled.
type Tracker struct {
	mu       sync.Mutex
	observed map[string]bool
	visible  map[string]bool
	active   string
	subs     map[int]func(activeID string)
	nextSub  int
}

// NewTracker constructs a tracker for the supplied anchor ids. Further ids
// can be registered later via Observe.
func NewTracker(ids ...string) *Tracker {
	t := &Tracker{
		observed: map[string]bool{},
		visible:  map[string]bool{},
		subs:     map[int]func(string){},
	}
	for _, id := range ids {
		t.observed[id] = true
	}
	return t
}

// Observe registers an anchor id for tracking. Unobserved ids are ignored by
// SetVisible.
func (t *Tracker) Observe(id string) {
	if id == "" {
		return
	}
	t.mu.Lock()
	t.observed[id] = true
	t.mu.Unlock()
}

// SetVisible records a visibility transition for an observed heading. A
// heading entering the intersection band becomes the active heading; leaving
// it does not clear the selection, matching reading behaviour where the last
// passed heading stays highlighted.
func (t *Tracker) SetVisible(id string, visible bool) {
	t.mu.Lock()
	if !t.observed[id] {
		t.mu.Unlock()
		return
	}
	t.visible[id] = visible

	changed := false
	if visible && t.active != id {
		t.active = id
		changed = true
	}
	var notify []func(string)
	active := t.active
	if changed {
		notify = make([]func(string), 0, len(t.subs))
		for _, fn := range t.subs {
			notify = append(notify, fn)
		}
	}
	t.mu.Unlock()

	for _, fn := range notify {
		fn(active)
	}
}

// Active returns the currently highlighted anchor id, empty when nothing has
// intersected yet.
func (t *Tracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Subscribe registers a callback fired whenever the active heading changes.
// The returned cancel func removes the subscription.
func (t *Tracker) Subscribe(fn func(activeID string)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	t.mu.Lock()
	id := t.nextSub
	t.nextSub++
	t.subs[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}
