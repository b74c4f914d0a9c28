package event

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Subject keeps an ordered list of observers and notifies them of events.
// Each Subject owns its list; subjects never share observers.
type Subject struct {
	mu        sync.Mutex
	name      string
	observers []*Subscription
}

// NewSubject creates a subject. The name is used as the source of events
// that do not carry one.
func NewSubject(name string) *Subject {
	return &Subject{name: name}
}

// Name returns the subject name.
func (s *Subject) Name() string {
	return s.name
}

// Attach adds an observer to the end of the notification order.
// Attaching the same observer twice delivers each event to it twice.
func (s *Subject) Attach(o Observer) (*Subscription, error) {
	if o == nil {
		return nil, ErrNilObserver
	}

	sub := &Subscription{
		id:       uuid.NewString(),
		observer: o,
		subject:  s,
	}

	s.mu.Lock()
	s.observers = append(s.observers, sub)
	s.mu.Unlock()
	return sub, nil
}

// AttachFunc adds a function observer.
func (s *Subject) AttachFunc(fn func(ctx context.Context, e Event) error) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilObserver
	}
	return s.Attach(ObserverFunc(fn))
}

// Detach removes a subscription. Returns false if it was not attached.
func (s *Subject) Detach(sub *Subscription) bool {
	if sub == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.Index(s.observers, sub)
	if idx < 0 {
		return false
	}
	// Build a new slice so snapshots held by in-flight Notify calls stay intact
	s.observers = slices.Delete(slices.Clone(s.observers), idx, idx+1)
	return true
}

// Len returns the number of attached observers.
func (s *Subject) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}

// Notify delivers e to every observer attached when the call starts.
// Delivery stops early only if ctx is cancelled.
func (s *Subject) Notify(ctx context.Context, e Event) error {
	if e.Metadata.Source == "" {
		e.Metadata.Source = s.name
	}

	s.mu.Lock()
	snapshot := s.observers
	s.mu.Unlock()

	var errs []error
	for _, sub := range snapshot {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := sub.deliver(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Subscription is an attached observer.
type Subscription struct {
	id       string
	observer Observer
	subject  *Subject
}

// ID returns the unique subscription identifier.
func (sub *Subscription) ID() string {
	return sub.id
}

// Cancel detaches the subscription from its subject.
// Safe to call multiple times.
func (sub *Subscription) Cancel() {
	sub.subject.Detach(sub)
}

func (sub *Subscription) deliver(ctx context.Context, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: subscription %s: %v", ErrObserverPanic, sub.id, r)
		}
	}()
	return sub.observer.Update(ctx, e)
}
