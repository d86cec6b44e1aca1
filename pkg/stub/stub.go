package stub

import (
	"io"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Payload is a generic Web API response body. The zero configuration of every
// stub resolves with DefaultPayload.
type Payload map[string]any

// DefaultPayload returns the minimal success body an unconfigured stub
// resolves with.
func DefaultPayload() Payload {
	return Payload{"ok": true}
}

// Call is one recorded invocation of a stub.
type Call struct {
	ID   string
	Args []any
	At   time.Time
}

type result struct {
	payload any
	err     error
}

// Stub is a call-recording stand-in for a single callable member.
type Stub struct {
	name   string
	logger *slog.Logger

	mu    sync.Mutex
	calls []Call
	queue []result
	def   *result
}

// Option configures a Stub at construction time.
type Option func(*Stub)

// WithLogger makes the stub emit a debug record for every invocation.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Stub) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a stand-in with the given name. The name is informational only,
// typically the Web API path of the operation the stub replaces.
func New(name string, opts ...Option) *Stub {
	s := &Stub{
		name:   name,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the stand-in's name.
func (s *Stub) Name() string {
	return s.name
}

// Invoke records a call and returns its pre-resolved outcome. One-shot
// results are consumed first, then the sticky override, then the default
// success payload.
func (s *Stub) Invoke(args ...any) *Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	call := Call{ID: uuid.NewString(), Args: args, At: time.Now()}
	s.calls = append(s.calls, call)
	s.logger.Debug("stub invoked",
		"stub", s.name,
		"call_id", call.ID,
		"args", len(args),
	)

	if len(s.queue) > 0 {
		r := s.queue[0]
		s.queue = s.queue[1:]
		return newOutcome(r.payload, r.err)
	}
	if s.def != nil {
		return newOutcome(s.def.payload, s.def.err)
	}
	return newOutcome(DefaultPayload(), nil)
}

// ResolveWith makes every subsequent call resolve with payload.
func (s *Stub) ResolveWith(payload any) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.def = &result{payload: payload}
	return s
}

// RejectWith makes every subsequent call fail with err.
func (s *Stub) RejectWith(err error) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.def = &result{err: err}
	return s
}

// ResolveOnceWith queues a payload for exactly one subsequent call.
func (s *Stub) ResolveOnceWith(payload any) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, result{payload: payload})
	return s
}

// RejectOnceWith queues an error for exactly one subsequent call.
func (s *Stub) RejectOnceWith(err error) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, result{err: err})
	return s
}

// Calls returns a copy of every recorded invocation, oldest first.
func (s *Stub) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount returns the number of recorded invocations.
func (s *Stub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// LastCall returns the most recent invocation, or nil if the stub has never
// been called.
func (s *Stub) LastCall() *Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return nil
	}
	call := s.calls[len(s.calls)-1]
	return &call
}

// CalledWith reports whether any recorded invocation had exactly the given
// arguments.
func (s *Stub) CalledWith(args ...any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, call := range s.calls {
		if len(call.Args) != len(args) {
			continue
		}
		if reflect.DeepEqual(call.Args, args) {
			return true
		}
	}
	return false
}

// Reset clears all recorded calls and response configuration, returning the
// stub to its default always-succeed behavior.
func (s *Stub) Reset() *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
	s.queue = nil
	s.def = nil
	return s
}
