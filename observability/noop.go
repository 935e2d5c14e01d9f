package observability

// NoOpObserver discards every event.
type NoOpObserver struct{}

// ObserveOperation does nothing.
func (n *NoOpObserver) ObserveOperation(ctx OperationContext) {}

// NewNoOpObserver creates a new NoOpObserver.
func NewNoOpObserver() Observer {
	return &NoOpObserver{}
}

// Multi fans an event out to several observers, skipping nil entries.
type Multi []Observer

// ObserveOperation forwards ctx to every observer in order.
func (m Multi) ObserveOperation(ctx OperationContext) {
	for _, o := range m {
		if o != nil {
			o.ObserveOperation(ctx)
		}
	}
}

// Combine returns a single Observer for the given observers.
// It returns nil when no non-nil observer is given so callers keep their
// cheap nil check.
func Combine(observers ...Observer) Observer {
	var out Multi
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	default:
		return out
	}
}
