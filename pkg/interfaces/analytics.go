package interfaces

import "context"

// Properties carries arbitrary event or profile attributes forwarded to the
// analytics backend.
type Properties map[string]any

// Tracker forwards product analytics to an external collaborator. Calls are
// best effort: implementations must never surface transport failures to the
// caller, logging a warning and dropping the event instead.
type Tracker interface {
	// Capture records a named event. Implementations attach a client
	// timestamp before forwarding.
	Capture(ctx context.Context, event string, props Properties)
	// Identify promotes the current visitor to a known user keyed by
	// distinctID (typically an email address). The promotion is one way;
	// only Reset discards it.
	Identify(ctx context.Context, distinctID string, props Properties)
	// DistinctID returns the identifier events are currently attributed to:
	// the promoted id when identified, the anonymous visitor id otherwise.
	DistinctID() string
	// Reset discards the current identity, anonymous id included, and seeds
	// a fresh visitor identifier.
	Reset() error
}
