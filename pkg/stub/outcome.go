package stub

import "context"

// Outcome is the deferred-completion value returned by Stub.Invoke.
//
// Outcomes are pre-resolved: the result is fixed when the Outcome is created,
// and Done is already closed. Callers that await a result still observe
// asynchronous resolution, but there is no coordination, ordering, or
// cancellation between outcomes.
type Outcome struct {
	done    chan struct{}
	payload any
	err     error
}

func newOutcome(payload any, err error) *Outcome {
	done := make(chan struct{})
	close(done)
	return &Outcome{done: done, payload: payload, err: err}
}

// Done returns a channel that is closed once the outcome is resolved.
// For outcomes produced by a Stub it is always already closed.
func (o *Outcome) Done() <-chan struct{} {
	return o.done
}

// Await returns the resolved payload or the rejection error. The context is
// honored for callers that race resolution against a deadline, although a
// stub outcome never blocks.
func (o *Outcome) Await(ctx context.Context) (any, error) {
	// A resolved outcome wins even when the context is already done.
	select {
	case <-o.done:
		return o.payload, o.err
	default:
	}
	select {
	case <-o.done:
		return o.payload, o.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
