// Package event provides a minimal subject/observer implementation.
//
// A Subject owns its subscriber list. Observers are attached and detached
// explicitly and are notified in attachment order:
//
//	subject := event.NewSubject("buffer")
//
//	sub, _ := subject.Attach(event.ObserverFunc(func(ctx context.Context, e event.Event) error {
//	    fmt.Println(e.Type)
//	    return nil
//	}))
//	defer sub.Cancel()
//
//	subject.Notify(ctx, event.New(event.TypeAppended, payload))
//
// # Notification
//
// Notify delivers to a snapshot of the subscriber list taken when the call
// starts. Observers may attach or detach (including themselves) while being
// notified; the change takes effect from the next Notify. Errors and panics
// from observers do not stop delivery to the remaining observers; they are
// joined and returned.
package event
